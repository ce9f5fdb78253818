package providers

import (
	"time"

	"github.com/accounted4/go-accounted4/session"
)

// TokenResponse is the parsed JSON body returned by a provider token
// endpoint, for both code and refresh exchanges.
//
// Microsoft, Twitch and Spotify can report failures inside an otherwise
// successful body; Error and ErrorDescription capture those.
type TokenResponse struct {
	// AccessToken is the opaque bearer credential.
	AccessToken string `json:"access_token"`

	// TokenType is normally "bearer".
	TokenType string `json:"token_type,omitempty"`

	// RefreshToken is only present for providers (and scopes) that allow
	// refreshing. Some providers omit it from refresh responses.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresIn is the token lifetime in seconds. Zero means the provider
	// did not state an expiry.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// Scope echoes the granted scopes, space-separated.
	Scope string `json:"scope,omitempty"`

	// Error and ErrorDescription are set when the provider embeds a
	// failure in a 200 response.
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// MapFunc turns a raw token response into the record stored in the session.
type MapFunc func(providerName string, resp TokenResponse) *session.Record

// timeNow is a test seam.
var timeNow = time.Now

// defaultTokenMap is the schema every bundled provider uses: createdAt is
// stamped now, the provider name recorded, and the token fields copied over
// when present.
func defaultTokenMap(providerName string, resp TokenResponse) *session.Record {
	return &session.Record{
		CreatedAt:    timeNow().Unix(),
		Provider:     providerName,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}
}
