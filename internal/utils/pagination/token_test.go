package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	postedAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)
	journalID := "b7f2c3a1-9f4e-4d2a-8a1b-0c5d6e7f8a9b"

	token := EncodeToken(postedAt, journalID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedPostedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, postedAt, decodedPostedAt, "Posted at should match after decode")
	assert.Equal(t, journalID, decodedID, "Journal ID should match after decode")

	// Current time round-trips through RFC3339Nano
	now := time.Now().UTC()
	nowToken := EncodeToken(now, journalID)
	decodedNow, _, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded timestamp without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Invalid timestamp
	invalidDateToken := "bm90YWRhdGV8am91cm5hbC0x" // Base64 encoded "notadate|journal-1"
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for invalid timestamp format")
	assert.Contains(t, err.Error(), "posted_at parse", "Error should mention timestamp parsing issue")

	// Empty journal ID
	emptyIDToken := EncodeToken(time.Now().UTC(), "")
	_, _, err = DecodeToken(emptyIDToken)
	assert.Error(t, err, "Should return an error for an empty journal ID")
}
