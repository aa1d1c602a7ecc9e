package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded token from the posting timestamp and
// journal ID of the last row on a page. The journal ID breaks ties between
// journals posted at the same instant.
func EncodeToken(postedAt time.Time, journalID string) string {
	tokenStr := fmt.Sprintf("%s|%s", postedAt.Format(timeFormat), journalID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into the posting timestamp
// and journal ID.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	postedAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (posted_at parse): %w", err)
	}
	if parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (empty journal id)")
	}

	return postedAt, parts[1], nil
}
