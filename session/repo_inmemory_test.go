package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accounted4/go-accounted4/session"
)

func TestInMemoryRepo(t *testing.T) {
	ctx := context.Background()
	repo := session.NewInMemoryRepo()

	t.Run("unknown session yields zero state", func(t *testing.T) {
		state, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		require.Equal(t, session.State{}, state)
	})

	t.Run("upsert then get", func(t *testing.T) {
		want := session.State{
			Token:        &session.Record{Provider: "discord", AccessToken: "token"},
			PostAuthPath: "/user/info",
		}
		require.NoError(t, repo.Upsert(ctx, "sid-1", want))

		got, err := repo.Get(ctx, "sid-1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "sid-1", session.State{PostAuthPath: "/other"}))

		got, err := repo.Get(ctx, "sid-1")
		require.NoError(t, err)
		require.Nil(t, got.Token)
		require.Equal(t, "/other", got.PostAuthPath)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "sid-1"))

		got, err := repo.Get(ctx, "sid-1")
		require.NoError(t, err)
		require.Equal(t, session.State{}, got)
	})

	t.Run("delete unknown session is not an error", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "never-existed"))
	})

	t.Run("empty session ID is rejected", func(t *testing.T) {
		_, err := repo.Get(ctx, "")
		require.Error(t, err)
		require.Error(t, repo.Upsert(ctx, "", session.State{}))
		require.Error(t, repo.Delete(ctx, ""))
	})
}
