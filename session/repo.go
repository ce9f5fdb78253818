package session

import "context"

// Repo is the server-side persistence the middleware depends on. The state
// must survive at least across the authorization code round trip to the
// identity provider.
//
// Get returns the zero State, not an error, for an unknown session ID: an
// absent session and a never-authenticated session are the same thing to the
// gate. Implementations must allow concurrent access; concurrent writes to
// the same session are last-writer-wins.
type Repo interface {
	Get(ctx context.Context, sessionID string) (State, error)
	Upsert(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}
