// Package accounted4 is a session-based "log in with provider" middleware.
//
// It redirects unauthenticated visitors to a configured OAuth2 identity
// provider, exchanges the returned authorization code for an access token,
// stores the token in the visitor's server-side session, and gates protected
// routes on that session, transparently refreshing expired tokens when the
// provider supports it.
package accounted4

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/accounted4/go-accounted4/internal/errors"
	"github.com/accounted4/go-accounted4/providers"
	"github.com/accounted4/go-accounted4/session"
)

// Config is consumed once at construction; the resulting Accounted4 is
// immutable. Changing the base URL after construction would desynchronize
// every registered redirect URI, so adding or reconfiguring providers means
// building a new Accounted4.
type Config struct {
	// Hostname is the externally visible host name, without scheme or
	// port. Required.
	Hostname string

	// Port the application is reached on externally. Defaults to 443 when
	// UseHTTPS is set, 80 otherwise.
	Port int

	// UseHTTPS selects the https scheme for the base URL.
	UseHTTPS bool

	// DefaultProvider is the provider the gate redirects to when a route
	// does not name one explicitly. Required, and must have an options
	// block in Providers.
	DefaultProvider string

	// Providers maps provider names to their options. Every referenced
	// provider must have a block here; construction fails otherwise.
	Providers map[string]providers.Options

	// ErrorHandler receives every per-request failure. Defaults to
	// DefaultErrorHandler.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// Accounted4 is the provider registry plus the authentication gate. Build
// one at startup with New and register its callback route on the host mux.
type Accounted4 struct {
	providers       map[string]providers.Provider
	defaultProvider string
	baseURL         string
	sessions        *session.Manager
	errorHandler    func(w http.ResponseWriter, r *http.Request, err error)
}

// New validates the configuration and constructs every referenced provider.
// Configuration problems (missing hostname, default provider without an
// options block, provider missing client credentials) fail here, not at
// request time.
func New(cfg Config, sessions *session.Manager) (*Accounted4, error) {
	if cfg.Hostname == "" {
		return nil, errors.ErrMissingHostname
	}
	if cfg.DefaultProvider == "" {
		return nil, errors.ErrMissingDefaultProvider
	}

	port := cfg.Port
	if port == 0 {
		if cfg.UseHTTPS {
			port = 443
		} else {
			port = 80
		}
	}
	baseURL := BuildBaseURL(cfg.Hostname, cfg.UseHTTPS, port)

	defaultName := strings.ToLower(cfg.DefaultProvider)
	if _, ok := cfg.Providers[defaultName]; !ok {
		return nil, errors.Wrapf(errors.ErrMissingProviderOptions, "default provider %q", defaultName)
	}

	table := make(map[string]providers.Provider, len(cfg.Providers))
	for name, opts := range cfg.Providers {
		name = strings.ToLower(name)
		p, err := providers.New(name, baseURL, opts)
		if err != nil {
			return nil, err
		}
		table[name] = p
		log.Info().
			Str("provider", name).
			Str("redirect_uri", p.RedirectURI()).
			Msg("registered provider")
	}

	errorHandler := cfg.ErrorHandler
	if errorHandler == nil {
		errorHandler = DefaultErrorHandler
	}

	return &Accounted4{
		providers:       table,
		defaultProvider: defaultName,
		baseURL:         baseURL,
		sessions:        sessions,
		errorHandler:    errorHandler,
	}, nil
}

// BuildBaseURL assembles scheme://hostname[:port], omitting the port when it
// is the scheme's default (80 for http, 443 for https).
func BuildBaseURL(hostname string, useHTTPS bool, port int) string {
	scheme, defaultPort := "http", 80
	if useHTTPS {
		scheme, defaultPort = "https", 443
	}
	if port == defaultPort {
		return fmt.Sprintf("%s://%s", scheme, hostname)
	}
	return fmt.Sprintf("%s://%s:%d", scheme, hostname, port)
}

// BaseURL is the externally visible base URL every redirect URI derives
// from.
func (a *Accounted4) BaseURL() string {
	return a.baseURL
}

// Provider looks up a registered provider by name.
func (a *Accounted4) Provider(name string) (providers.Provider, bool) {
	p, ok := a.providers[strings.ToLower(name)]
	return p, ok
}

// DefaultErrorHandler maps the error taxonomy onto plain HTTP statuses and
// logs the failure. Hosts with their own error rendering should supply
// Config.ErrorHandler instead.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errors.ErrProviderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errors.ErrAuthorizationDenied):
		status = http.StatusUnauthorized
	case errors.Is(err, errors.ErrUpstreamExchange), errors.Is(err, errors.ErrRefreshFailed):
		status = http.StatusBadGateway
	}

	log.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	http.Error(w, http.StatusText(status), status)
}
