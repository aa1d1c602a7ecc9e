package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atithihms/hotel_books_app/internal/apperrors"
	portssvc "github.com/atithihms/hotel_books_app/internal/core/ports/services"
	"github.com/atithihms/hotel_books_app/internal/dto"
	"github.com/atithihms/hotel_books_app/internal/middleware"
)

// journalHandler handles HTTP requests for the journal store.
type journalHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newJournalHandler(postingService portssvc.PostingSvcFacade) *journalHandler {
	return &journalHandler{postingService: postingService}
}

func registerJournalRoutes(v1 *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newJournalHandler(postingService)
	journals := v1.Group("/journals")
	{
		journals.POST("", h.postJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/reverse", h.reverseJournal)
	}
}

// postJournal godoc
// @Summary Post a manual journal entry
// @Description Validates a balanced draft and appends it to the ledger. Reposting the same (sourceType, sourceID) returns the original entry.
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.JournalDraft true "Journal draft"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced draft"
// @Failure 500 {object} map[string]string "Ledger account not configured"
// @Router /journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var draft dto.JournalDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		logger.Warn("Failed to bind JSON for postJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.postingService.Post(c.Request.Context(), draft, caller)
	if err != nil {
		h.writePostingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// writePostingError maps posting failures for callers submitting drafts
// directly. Unlike source events, a manual draft has no guest-facing action
// to protect, so an unbalanced draft is a plain 400.
func (h *journalHandler) writePostingError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unknownAccount *apperrors.UnknownAccountError
	switch {
	case errors.As(err, &unknownAccount):
		logger.Error("Journal references an unconfigured ledger account", slog.String("account", unknownAccount.AccountName))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Ledger account not configured: %s", unknownAccount.AccountName)})
	case errors.Is(err, apperrors.ErrUnbalanced):
		logger.Warn("Rejected unbalanced journal draft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error posting journal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to post journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal"})
	}
}

// getJournal godoc
// @Summary Get a journal entry with its lines
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.postingService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		logger.Error("Failed to get journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists journals newest first with token pagination, optionally bounded by posting date
// @Tags journals
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param next_token query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid date or token"
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, err := parsePeriodParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := dto.ListJournalsParams{From: from, To: to, Limit: limit}
	if token := c.Query("next_token"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.postingService.ListJournals(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// reverseJournal godoc
// @Summary Reverse a journal entry
// @Description Posts a new journal with debit and credit roles swapped; the original entry is never edited
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID to reverse"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Journal cannot be reversed"
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /journals/{journalID}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.postingService.Reverse(c.Request.Context(), journalID, caller)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Refused journal reversal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reverse journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse journal"})
		}
		return
	}

	logger.Info("Journal reversed", slog.String("original_journal_id", journalID), slog.String("reversal_journal_id", journal.JournalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// parsePeriodParams reads the optional start_date/end_date query params. The
// end bound is pushed to the end of its day so a single-day range covers the
// whole day.
func parsePeriodParams(c *gin.Context) (*time.Time, *time.Time, error) {
	const layout = "2006-01-02"
	var from, to *time.Time

	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", s)
		}
		from = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse(layout, s)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", s)
		}
		endOfDay := t.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("start_date must not be after end_date")
	}
	return from, to, nil
}
