package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// IdempotencyTTL is how long a cached response remains replayable. After it
// lapses the persistent transaction history still blocks duplicates, but the
// original response body can no longer be replayed verbatim.
const IdempotencyTTL = 24 * time.Hour

var idempotencyKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidIdempotencyKey reports whether a client-supplied key is acceptable.
// The character set is restricted so keys embed safely into cache keys and
// log lines.
func ValidIdempotencyKey(key string) bool {
	return idempotencyKeyPattern.MatchString(key)
}

// BuildIdempotencyKey scopes a client key to one account and endpoint, so
// the same client key used for different operations never collides.
func BuildIdempotencyKey(accountID uuid.UUID, endpoint, clientKey string) string {
	return fmt.Sprintf("%s:%s:%s", accountID, endpoint, clientKey)
}

// IdempotencyRecord is a cached response for a completed request, replayed
// on retries with the same key.
type IdempotencyRecord struct {
	Key        string    `json:"key"`
	StatusCode int       `json:"status_code"`
	Response   []byte    `json:"response"`
	CreatedAt  time.Time `json:"created_at"`
}
