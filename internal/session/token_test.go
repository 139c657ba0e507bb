package session_test

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/AgriPanel/AP-Backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^admin_session_\d+_[0-9a-z]{9}$`)

func TestIssueFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		token := session.Issue()
		assert.Regexp(t, tokenPattern, token)
	}
}

func TestIssuedAtRoundTrip(t *testing.T) {
	before := time.Now().Add(-time.Second)
	token := session.Issue()
	after := time.Now().Add(time.Second)

	issued, err := session.IssuedAt(token)
	require.NoError(t, err)
	assert.True(t, issued.After(before) && issued.Before(after),
		"issued %v not between %v and %v", issued, before, after)
}

func TestIssuedAtMalformed(t *testing.T) {
	cases := []string{
		"",
		"admin_session",            // only 2 segments
		"admin_session_notamillis", // segment 2 not an integer
		"admin_session_notamillis_abc123def",
		"bogus",
	}
	for _, token := range cases {
		_, err := session.IssuedAt(token)
		assert.ErrorIs(t, err, session.ErrMalformed, "token %q", token)
	}
}

// A token with the wrong prefix but a parseable timestamp segment still yields
// a timestamp: prefix enforcement is the caller's job, not the codec's.
func TestIssuedAtIgnoresPrefix(t *testing.T) {
	_, err := session.IssuedAt("other_prefix_1700000000000_abcdefghi")
	assert.NoError(t, err)
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, session.HasPrefix(session.Issue()))
	assert.False(t, session.HasPrefix("session_admin_123_abc"))
	assert.False(t, session.HasPrefix(""))
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	fresh := fmt.Sprintf("admin_session_%d_abcdefghi", now.Add(-time.Hour).UnixMilli())
	stale := fmt.Sprintf("admin_session_%d_abcdefghi", now.Add(-25*time.Hour).UnixMilli())

	expired, err := session.IsExpired(fresh, now)
	require.NoError(t, err)
	assert.False(t, expired)

	expired, err = session.IsExpired(stale, now)
	require.NoError(t, err)
	assert.True(t, expired)

	_, err = session.IsExpired("admin_session_garbage_abc", now)
	assert.ErrorIs(t, err, session.ErrMalformed)
}

func TestExpiresAt(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	token := fmt.Sprintf("admin_session_%d_abcdefghi", issued.UnixMilli())

	expires, err := session.ExpiresAt(token)
	require.NoError(t, err)
	assert.WithinDuration(t, issued.Add(24*time.Hour), expires, time.Millisecond)
}
