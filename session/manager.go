package session

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/accounted4/go-accounted4/internal/errors"
)

const (
	// cookieName is the cookie that carries the visitor's session ID.
	cookieName = "accounted4_session"
	sidKey     = "sid"
)

// Manager pairs the cookie that identifies a visitor with the Repo that
// holds their state server-side. The cookie carries only a random session
// ID, signed so it cannot be forged; everything else lives in the Repo.
type Manager struct {
	cookies *sessions.CookieStore
	repo    Repo
}

// NewManager builds a Manager. The secret signs the session cookie and must
// be stable across restarts or every visitor gets logged out.
func NewManager(secret []byte, repo Repo) *Manager {
	cs := sessions.NewCookieStore(secret)
	// SameSite must stay Lax: the cookie has to survive the top-level
	// redirect back from the identity provider.
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{cookies: cs, repo: repo}
}

// SessionID returns the visitor's session ID, minting one and setting the
// cookie on first contact. A cookie that fails to decode is treated as
// absent.
func (m *Manager) SessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, _ := m.cookies.Get(r, cookieName)
	if sid, ok := sess.Values[sidKey].(string); ok && sid != "" {
		return sid, nil
	}

	sid := uuid.NewString()
	sess.Values[sidKey] = sid
	if err := sess.Save(r, w); err != nil {
		return "", errors.Wrapf(errors.ErrSessionStore, "saving session cookie: %v", err)
	}
	return sid, nil
}

// Load resolves the request's session ID and fetches its state.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (string, State, error) {
	sid, err := m.SessionID(w, r)
	if err != nil {
		return "", State{}, err
	}
	state, err := m.repo.Get(r.Context(), sid)
	if err != nil {
		return sid, State{}, err
	}
	return sid, state, nil
}

// Save writes the state back to the repository.
func (m *Manager) Save(ctx context.Context, sessionID string, state State) error {
	return m.repo.Upsert(ctx, sessionID, state)
}

// Destroy drops the server-side state for a session.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	return m.repo.Delete(ctx, sessionID)
}
