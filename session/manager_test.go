package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accounted4/go-accounted4/session"
)

func newTestManager() *session.Manager {
	return session.NewManager([]byte("test-secret"), session.NewInMemoryRepo())
}

// carryCookies copies the cookies a previous response set onto a new request,
// the way a browser would.
func carryCookies(t *testing.T, from *httptest.ResponseRecorder, to *http.Request) {
	t.Helper()
	for _, c := range from.Result().Cookies() {
		to.AddCookie(c)
	}
}

func TestManager_SessionID(t *testing.T) {
	m := newTestManager()

	t.Run("first contact mints an ID and sets the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		sid, err := m.SessionID(w, r)
		require.NoError(t, err)
		require.NotEmpty(t, sid)
		require.NotEmpty(t, w.Result().Cookies())
	})

	t.Run("returning cookie keeps the same ID", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		sid1, err := m.SessionID(w1, r1)
		require.NoError(t, err)

		w2 := httptest.NewRecorder()
		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		carryCookies(t, w1, r2)
		sid2, err := m.SessionID(w2, r2)
		require.NoError(t, err)
		require.Equal(t, sid1, sid2)
	})

	t.Run("tampered cookie is treated as absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "accounted4_session", Value: "forged"})

		sid, err := m.SessionID(w, r)
		require.NoError(t, err)
		require.NotEmpty(t, sid)
	})
}

func TestManager_LoadAndSave(t *testing.T) {
	m := newTestManager()

	w1 := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/user/info", nil)
	sid, state, err := m.Load(w1, r1)
	require.NoError(t, err)
	require.Equal(t, session.State{}, state)

	state.Token = &session.Record{Provider: "github", AccessToken: "token"}
	state.PostAuthPath = "/user/info"
	require.NoError(t, m.Save(r1.Context(), sid, state))

	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/user/info", nil)
	carryCookies(t, w1, r2)
	sid2, loaded, err := m.Load(w2, r2)
	require.NoError(t, err)
	require.Equal(t, sid, sid2)
	require.Equal(t, state, loaded)
}

func TestManager_Destroy(t *testing.T) {
	m := newTestManager()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	sid, _, err := m.Load(w, r)
	require.NoError(t, err)
	require.NoError(t, m.Save(r.Context(), sid, session.State{PostAuthPath: "/somewhere"}))

	require.NoError(t, m.Destroy(context.Background(), sid))

	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	carryCookies(t, w, r2)
	_, state, err := m.Load(w2, r2)
	require.NoError(t, err)
	require.Equal(t, session.State{}, state)
}
