// Package providers implements the identity providers that take part in the
// authorization code flow: building an authorization URL, exchanging an
// authorization code for a token, and, where the provider supports it,
// exchanging a refresh token for a new one.
package providers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/internal/errors"
	"github.com/accounted4/go-accounted4/session"
)

// CallbackPathPrefix is the inbound route prefix every provider's redirect
// URI is built from: {baseURL}/accounted4/{name}. It must exactly match what
// the identity provider has on file or the exchange is rejected upstream.
const CallbackPathPrefix = "/accounted4/"

// Provider is one configured identity service.
type Provider interface {
	// Name is the stable lowercase identifier, used both as the session
	// record's provider field and as the callback URL path segment.
	Name() string

	// AuthorizationURL is the fully assembled URL a browser is redirected
	// to. It is built once at construction and never changes.
	AuthorizationURL() string

	// RedirectURI is {baseURL}/accounted4/{name}.
	RedirectURI() string

	// CompleteAuthorization exchanges the authorization code carried in
	// the callback query parameters for a token record. When the query
	// carries an error parameter instead, it fails with
	// ErrAuthorizationDenied. The session is never touched here; the
	// caller decides where the record goes.
	CompleteAuthorization(ctx context.Context, query url.Values) (*session.Record, error)
}

// Refresher is implemented by providers that can exchange a refresh token
// for a new access token.
type Refresher interface {
	Provider

	// Refresh exchanges the current record's refresh token for a new
	// record. The caller merges the result into the existing record; the
	// current record is never modified.
	Refresh(ctx context.Context, current *session.Record) (*session.Record, error)
}

// base carries what every bundled provider shares: credentials, endpoints,
// the assembled authorization URL and the client used for token calls.
type base struct {
	name       string
	oauth      *oauth2.Config
	authURL    string
	refreshURL string

	// header is sent on every token request; omitCredentials drops
	// client_id/client_secret from request bodies for providers that
	// authenticate with a Basic header instead.
	header          http.Header
	omitCredentials bool

	client   *http.Client
	mapToken MapFunc
}

func newBase(name, baseURL string, opts Options, endpoint oauth2.Endpoint, mandatoryScope string, extras []oauth2.AuthCodeOption) (*base, error) {
	if opts.ClientID == "" {
		return nil, errors.Wrapf(errors.ErrMissingClientID, "provider %s", name)
	}
	if opts.ClientSecret == "" {
		return nil, errors.Wrapf(errors.ErrMissingClientSecret, "provider %s", name)
	}

	// The scope string is pre-assembled and passed as a single element so
	// an empty scope still produces a scope= parameter.
	cfg := &oauth2.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		Endpoint:     endpoint,
		RedirectURL:  baseURL + CallbackPathPrefix + name,
		Scopes:       []string{scopeString(mandatoryScope, opts.Scopes)},
	}

	return &base{
		name:       name,
		oauth:      cfg,
		authURL:    cfg.AuthCodeURL("", extras...),
		refreshURL: endpoint.TokenURL,
		client:     opts.httpClient(),
		mapToken:   defaultTokenMap,
	}, nil
}

// scopeString prefixes the provider's mandatory scope and appends the
// caller's scopes, space-joined and trimmed. Scopes are not de-duplicated;
// callers must not repeat the mandatory scope.
func scopeString(mandatory string, scopes []string) string {
	joined := strings.Join(scopes, " ")
	if mandatory == "" {
		return strings.TrimSpace(joined)
	}
	return strings.TrimSpace(mandatory + " " + joined)
}

func (b *base) Name() string             { return b.name }
func (b *base) AuthorizationURL() string { return b.authURL }
func (b *base) RedirectURI() string      { return b.oauth.RedirectURL }

// CompleteAuthorization performs the shared code→token exchange.
func (b *base) CompleteAuthorization(ctx context.Context, query url.Values) (*session.Record, error) {
	if errParam := query.Get("error"); errParam != "" {
		return nil, errors.Wrapf(errors.ErrAuthorizationDenied, "provider %s: %s: %s", b.name, errParam, query.Get("error_description"))
	}

	form := url.Values{
		"code":         {query.Get("code")},
		"redirect_uri": {b.oauth.RedirectURL},
		"grant_type":   {"authorization_code"},
	}
	if !b.omitCredentials {
		form.Set("client_id", b.oauth.ClientID)
		form.Set("client_secret", b.oauth.ClientSecret)
	}

	return exchangeCode(ctx, b.client, b.oauth.Endpoint.TokenURL, form, b.header, b.name, b.mapToken)
}

// refreshExchange is the shared refresh-token exchange. Only providers that
// support refresh expose it through a Refresh method.
func (b *base) refreshExchange(ctx context.Context, current *session.Record) (*session.Record, error) {
	if current == nil || current.RefreshToken == "" {
		return nil, errors.Wrapf(errors.ErrRefreshFailed, "provider %s: no refresh token", b.name)
	}

	form := url.Values{
		"refresh_token": {current.RefreshToken},
		"grant_type":    {"refresh_token"},
	}
	if !b.omitCredentials {
		form.Set("client_id", b.oauth.ClientID)
		form.Set("client_secret", b.oauth.ClientSecret)
	}

	return exchangeRefresh(ctx, b.client, b.refreshURL, form, b.header, b.name, b.mapToken)
}
