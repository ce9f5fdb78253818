package providers

import "net/http"

// Options configures one provider. ClientID and ClientSecret are required;
// everything else is provider specific and ignored by providers that do not
// use it.
type Options struct {
	ClientID     string
	ClientSecret string

	// Scopes are appended after the provider's mandatory scopes,
	// space-joined. No de-duplication is performed.
	Scopes []string

	// Tenant selects the Microsoft login authority: consumers,
	// organizations or common. Defaults to consumers.
	Tenant string

	// Prompt controls how DigitalOcean asks the user to authorize their
	// account. Defaults to select_account.
	Prompt string

	// MaxAuthAge is DigitalOcean's maximum age, in seconds, of a user's
	// signed-in session before re-authentication is required.
	MaxAuthAge int

	// ShowDialog forces Spotify to re-show the approval dialog on every
	// login.
	ShowDialog bool

	// ForceVerify forces Twitch to re-verify the authorization on every
	// login.
	ForceVerify bool

	// Login pre-fills the GitHub account to sign in with.
	Login string

	// AllowSignup controls whether GitHub offers account sign-up during
	// login. nil leaves GitHub's default in place.
	AllowSignup *bool

	// HTTPClient overrides the default 10s-timeout client for token
	// endpoint calls.
	HTTPClient *http.Client
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return defaultHTTPClient
}
