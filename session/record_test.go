package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/accounted4/go-accounted4/session"
)

func TestRecord_Expired(t *testing.T) {
	record := &session.Record{
		CreatedAt:   1000,
		AccessToken: "token",
		ExpiresIn:   60,
	}

	t.Run("one second before expiry", func(t *testing.T) {
		require.False(t, record.Expired(time.Unix(1059, 0)))
	})

	t.Run("expires exactly on the boundary", func(t *testing.T) {
		require.True(t, record.Expired(time.Unix(1060, 0)))
	})

	t.Run("after expiry", func(t *testing.T) {
		require.True(t, record.Expired(time.Unix(2000, 0)))
	})

	t.Run("zero expires_in never expires", func(t *testing.T) {
		eternal := &session.Record{CreatedAt: 1000, AccessToken: "token"}
		require.False(t, eternal.Expired(time.Unix(1<<40, 0)))
	})

	t.Run("nil record is not expired", func(t *testing.T) {
		var r *session.Record
		require.False(t, r.Expired(time.Unix(1000, 0)))
	})
}

func TestRecord_Authenticated(t *testing.T) {
	now := time.Unix(1030, 0)

	t.Run("valid token", func(t *testing.T) {
		r := &session.Record{CreatedAt: 1000, AccessToken: "token", ExpiresIn: 60}
		require.True(t, r.Authenticated(now))
	})

	t.Run("expired token", func(t *testing.T) {
		r := &session.Record{CreatedAt: 1000, AccessToken: "token", ExpiresIn: 10}
		require.False(t, r.Authenticated(now))
	})

	t.Run("missing access token", func(t *testing.T) {
		r := &session.Record{CreatedAt: 1000, RefreshToken: "refresh"}
		require.False(t, r.Authenticated(now))
	})

	t.Run("nil record", func(t *testing.T) {
		var r *session.Record
		require.False(t, r.Authenticated(now))
	})
}

func TestMerge(t *testing.T) {
	old := &session.Record{
		CreatedAt:    1000,
		Provider:     "spotify",
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		ExpiresIn:    60,
	}

	t.Run("updated fields win", func(t *testing.T) {
		merged := session.Merge(old, &session.Record{
			CreatedAt:   2000,
			Provider:    "spotify",
			AccessToken: "new-access",
			ExpiresIn:   120,
		})
		require.Equal(t, int64(2000), merged.CreatedAt)
		require.Equal(t, "new-access", merged.AccessToken)
		require.Equal(t, int64(120), merged.ExpiresIn)
	})

	t.Run("missing refresh token is kept from the old record", func(t *testing.T) {
		merged := session.Merge(old, &session.Record{CreatedAt: 2000, AccessToken: "new-access"})
		require.Equal(t, "old-refresh", merged.RefreshToken)
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		updated := &session.Record{AccessToken: "new-access"}
		session.Merge(old, updated)
		require.Equal(t, "old-access", old.AccessToken)
		require.Empty(t, updated.RefreshToken)
	})

	t.Run("nil old returns updated", func(t *testing.T) {
		updated := &session.Record{AccessToken: "new-access"}
		require.Same(t, updated, session.Merge(nil, updated))
	})

	t.Run("nil updated returns old", func(t *testing.T) {
		require.Same(t, old, session.Merge(old, nil))
	})
}
