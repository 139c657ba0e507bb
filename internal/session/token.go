package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Prefix is the literal marker every valid admin session token starts with.
// The route gate and the auth handlers both reject anything without it.
const Prefix = "admin_session_"

// CookieName is the cookie the admin UI stores the token under.
const CookieName = "admin_session"

// TTL is how long an issued token stays valid.
const TTL = 24 * time.Hour

const suffixLen = 9
const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var ErrMalformed = errors.New("malformed session token")

// Issue returns a new token of the form admin_session_<unixMillis>_<random>.
// The random suffix is 9 base36 characters. This is not a cryptographic token;
// validity is ultimately decided by the session store and the embedded timestamp.
func Issue() string {
	return fmt.Sprintf("%s%d_%s", Prefix, time.Now().UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	b := make([]byte, suffixLen)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// IssuedAt extracts the issue time embedded in the token text. The token splits
// on "_" into at least 3 segments and segment 2 must be an epoch-millis integer,
// otherwise ErrMalformed is returned.
func IssuedAt(token string) (time.Time, error) {
	parts := strings.Split(token, "_")
	if len(parts) < 3 {
		return time.Time{}, ErrMalformed
	}
	millis, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return time.Time{}, ErrMalformed
	}
	return time.UnixMilli(millis), nil
}

// HasPrefix reports whether the token carries the required admin_session_ marker.
func HasPrefix(token string) bool {
	return strings.HasPrefix(token, Prefix)
}

// IsExpired reports whether the token's embedded timestamp is more than TTL
// before now. Returns ErrMalformed when the timestamp cannot be extracted.
func IsExpired(token string, now time.Time) (bool, error) {
	issued, err := IssuedAt(token)
	if err != nil {
		return false, err
	}
	return now.Sub(issued) >= TTL, nil
}

// ExpiresAt returns the expiry implied by the token's embedded timestamp.
func ExpiresAt(token string) (time.Time, error) {
	issued, err := IssuedAt(token)
	if err != nil {
		return time.Time{}, err
	}
	return issued.Add(TTL), nil
}
