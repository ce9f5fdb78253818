package providers

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/session"
)

const NameGoogle = "google"

// https://developers.google.com/identity/protocols/oauth2/web-server
var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// Google always requests the openid scope. A refresh token is only issued
// when the caller requests offline access through its scopes.
type Google struct {
	*base
}

func NewGoogle(baseURL string, opts Options) (*Google, error) {
	b, err := newBase(NameGoogle, baseURL, opts, googleEndpoint, "openid", nil)
	if err != nil {
		return nil, err
	}
	return &Google{base: b}, nil
}

var _ Refresher = (*Google)(nil)

func (p *Google) Refresh(ctx context.Context, current *session.Record) (*session.Record, error) {
	return p.refreshExchange(ctx, current)
}
