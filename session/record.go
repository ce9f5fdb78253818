package session

import "time"

// Record is the token state kept for one visitor session. A record without
// an AccessToken is never treated as authenticated. ExpiresIn of zero means
// the token does not expire and is never refreshed.
type Record struct {
	// CreatedAt is the unix timestamp (seconds) the record was written.
	CreatedAt int64 `json:"created_at"`

	// Provider is the lowercase name of the provider that owns this record.
	Provider string `json:"provider"`

	// AccessToken is the opaque bearer credential.
	AccessToken string `json:"access_token"`

	// RefreshToken, when present, allows a new access token to be obtained
	// without re-prompting the visitor.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresIn is the token's validity in seconds from CreatedAt.
	ExpiresIn int64 `json:"expires_in,omitempty"`
}

// Authenticated reports whether the record carries a usable access token at
// the given instant.
func (r *Record) Authenticated(now time.Time) bool {
	return r != nil && r.AccessToken != "" && !r.Expired(now)
}

// Expired reports whether the token has outlived ExpiresIn. The boundary is
// inclusive: a token with ExpiresIn of 60 is expired exactly 60 seconds
// after CreatedAt.
func (r *Record) Expired(now time.Time) bool {
	if r == nil || r.ExpiresIn == 0 {
		return false
	}
	return now.Unix() >= r.CreatedAt+r.ExpiresIn
}

// Merge reconciles a refreshed record with the previous one, field by field:
// a field from updated wins when set, otherwise the old value is kept. Some
// providers omit refresh_token from refresh responses; merging keeps the
// original one usable. Neither input is modified.
func Merge(old, updated *Record) *Record {
	if old == nil {
		return updated
	}
	if updated == nil {
		return old
	}
	merged := *old
	if updated.CreatedAt != 0 {
		merged.CreatedAt = updated.CreatedAt
	}
	if updated.Provider != "" {
		merged.Provider = updated.Provider
	}
	if updated.AccessToken != "" {
		merged.AccessToken = updated.AccessToken
	}
	if updated.RefreshToken != "" {
		merged.RefreshToken = updated.RefreshToken
	}
	if updated.ExpiresIn != 0 {
		merged.ExpiresIn = updated.ExpiresIn
	}
	return &merged
}

// State is everything the middleware persists per session: the token record
// and the path the visitor originally requested before being sent to the
// provider.
type State struct {
	Token        *Record `json:"token,omitempty"`
	PostAuthPath string  `json:"post_auth_path,omitempty"`
}
