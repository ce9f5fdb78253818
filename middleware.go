package accounted4

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/accounted4/go-accounted4/internal/errors"
	"github.com/accounted4/go-accounted4/internal/metrics"
	"github.com/accounted4/go-accounted4/providers"
	"github.com/accounted4/go-accounted4/session"
)

// ChainMiddleware applies middleware to a handler in reverse order, so the
// first middleware listed is the outermost.
func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// Auth gates a route on the default provider.
func (a *Accounted4) Auth() func(http.HandlerFunc) http.HandlerFunc {
	return a.AuthWith(a.defaultProvider)
}

// AuthWith gates a route on a specific provider. The decision is recomputed
// on every request from the session record alone:
//
//   - a valid access token lets the request through untouched;
//   - an expired (or missing) token with a refresh token is refreshed via
//     the provider that owns the record, then let through;
//   - anything else records the requested path in the session and redirects
//     to the provider's authorization URL.
//
// A failed or unsupported refresh falls through to re-authorization rather
// than failing the request; the visitor just logs in again.
func (a *Accounted4) AuthWith(providerName string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			target, ok := a.providers[strings.ToLower(providerName)]
			if !ok {
				a.errorHandler(w, r, errors.Wrapf(errors.ErrProviderNotFound, "gate provider %q", providerName))
				return
			}

			sid, state, err := a.sessions.Load(w, r)
			if err != nil {
				a.errorHandler(w, r, err)
				return
			}

			if state.Token.Authenticated(time.Now()) {
				log.Debug().
					Str("session", sid).
					Str("provider", state.Token.Provider).
					Msg("session authenticated")
				next(w, r)
				return
			}

			if state.Token != nil && state.Token.RefreshToken != "" {
				if a.tryRefresh(r.Context(), sid, &state) {
					next(w, r)
					return
				}
			}

			// Unauthenticated: remember where the visitor was headed, then
			// send them to the provider.
			state.PostAuthPath = r.URL.RequestURI()
			if err := a.sessions.Save(r.Context(), sid, state); err != nil {
				a.errorHandler(w, r, err)
				return
			}

			metrics.AuthRedirects.WithLabelValues(target.Name()).Inc()
			log.Info().
				Str("session", sid).
				Str("provider", target.Name()).
				Msg("session not authenticated")
			http.Redirect(w, r, target.AuthorizationURL(), http.StatusFound)
		}
	}
}

// tryRefresh attempts the refresh transition for a record that is expired
// but carries a refresh token. Any failure leaves the session as it was and
// reports false, which sends the visitor back through authorization.
func (a *Accounted4) tryRefresh(ctx context.Context, sid string, state *session.State) bool {
	owner, ok := a.providers[state.Token.Provider]
	if !ok {
		log.Warn().
			Str("session", sid).
			Str("provider", state.Token.Provider).
			Msg("session record owned by unregistered provider")
		return false
	}

	refresher, ok := owner.(providers.Refresher)
	if !ok {
		metrics.Refreshes.WithLabelValues(owner.Name(), metrics.OutcomeError).Inc()
		log.Warn().
			Str("session", sid).
			Str("provider", owner.Name()).
			Err(errors.ErrRefreshUnsupported).
			Msg("token expired")
		return false
	}

	updated, err := refresher.Refresh(ctx, state.Token)
	if err != nil {
		metrics.Refreshes.WithLabelValues(owner.Name(), metrics.OutcomeError).Inc()
		log.Error().
			Str("session", sid).
			Str("provider", owner.Name()).
			Err(err).
			Msg("token refresh failed")
		return false
	}

	state.Token = session.Merge(state.Token, updated)
	if err := a.sessions.Save(ctx, sid, *state); err != nil {
		log.Error().Str("session", sid).Err(err).Msg("saving refreshed session")
		return false
	}

	metrics.Refreshes.WithLabelValues(owner.Name(), metrics.OutcomeOK).Inc()
	log.Debug().
		Str("session", sid).
		Str("provider", owner.Name()).
		Msg("session token refreshed")
	return true
}
