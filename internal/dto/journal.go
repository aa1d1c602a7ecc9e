package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/atithihms/hotel_books_app/internal/core/domain"
)

// DraftLine is one candidate debit or credit of a journal draft. Lines
// reference accounts by name; the poster resolves them against the chart of
// accounts.
type DraftLine struct {
	AccountName string          `json:"accountName" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalDraft is a candidate journal entry handed to the poster. The
// (SourceType, SourceID) pair is the idempotency key: posting the same draft
// twice yields the originally stored journal.
type JournalDraft struct {
	SourceType domain.SourceType `json:"sourceType" binding:"required"`
	SourceID   string            `json:"sourceID" binding:"required"`
	Narration  string            `json:"narration" binding:"required"`
	Date       time.Time         `json:"date"`
	Lines      []DraftLine       `json:"lines" binding:"required,min=2"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID  string         `json:"journalID"`
	PostedAt   time.Time      `json:"postedAt"`
	Narration  string         `json:"narration"`
	SourceType string         `json:"sourceType"`
	SourceID   string         `json:"sourceID"`
	Lines      []LineResponse `json:"lines,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ListJournalsParams holds parameters for listing journals.
type ListJournalsParams struct {
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// ListJournalsResponse is a page of journals plus the token for the next page.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// PostingResult reports the outcome of translating and posting a business
// event. A failed balance check is surfaced as a warning, not an error: the
// originating guest-facing action must still succeed.
type PostingResult struct {
	Posted  bool             `json:"posted"`
	Journal *JournalResponse `json:"journal,omitempty"`
	Warning string           `json:"warning,omitempty"`
}

// ToLineResponse converts a domain.JournalLine to its DTO.
func ToLineResponse(l *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Debit:     l.Debit,
		Credit:    l.Credit,
	}
}

// ToJournalResponse converts a domain.Journal (with any loaded lines) to its DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:  j.JournalID,
		PostedAt:   j.PostedAt,
		Narration:  j.Narration,
		SourceType: string(j.SourceType),
		SourceID:   j.SourceID,
		CreatedAt:  j.CreatedAt,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(j.Lines))
		for i := range j.Lines {
			resp.Lines[i] = ToLineResponse(&j.Lines[i])
		}
	}
	return resp
}
