package accounted4

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/accounted4/go-accounted4/internal/errors"
	"github.com/accounted4/go-accounted4/internal/metrics"
)

// RouteCallbackPattern is the single inbound route the middleware owns. The
// path segment selects the provider that initiated the authorization.
const RouteCallbackPattern = "/accounted4/{providerName}"

// RegisterRoutes registers the OAuth callback route on the host mux.
func (a *Accounted4) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+RouteCallbackPattern, a.CallbackHandler())
}

// CallbackHandler handles the redirect back from an identity provider,
// completing the code exchange and returning the visitor to the path they
// originally requested.
func (a *Accounted4) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		// A provider-side denial carries error instead of code. Surface it
		// before resolving the provider so a mangled callback cannot mask
		// the denial. The session is left untouched.
		if errParam := query.Get("error"); errParam != "" {
			a.errorHandler(w, r, errors.Wrapf(errors.ErrAuthorizationDenied, "%s: %s", errParam, query.Get("error_description")))
			return
		}

		name := strings.ToLower(r.PathValue("providerName"))
		provider, ok := a.providers[name]
		if !ok {
			a.errorHandler(w, r, errors.Wrapf(errors.ErrProviderNotFound, "callback for %q", name))
			return
		}

		sid, state, err := a.sessions.Load(w, r)
		if err != nil {
			a.errorHandler(w, r, err)
			return
		}

		record, err := provider.CompleteAuthorization(r.Context(), query)
		if err != nil {
			metrics.CodeExchanges.WithLabelValues(name, metrics.OutcomeError).Inc()
			a.errorHandler(w, r, err)
			return
		}

		state.Token = record
		if err := a.sessions.Save(r.Context(), sid, state); err != nil {
			a.errorHandler(w, r, err)
			return
		}

		metrics.CodeExchanges.WithLabelValues(name, metrics.OutcomeOK).Inc()
		log.Info().
			Str("session", sid).
			Str("provider", name).
			Msg("authorization completed")

		target := state.PostAuthPath
		if target == "" {
			target = "/"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}
