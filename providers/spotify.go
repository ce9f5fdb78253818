package providers

import (
	"context"
	"encoding/base64"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/session"
)

const NameSpotify = "spotify"

// https://developer.spotify.com/documentation/general/guides/authorization/code-flow/
var spotifyEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.spotify.com/authorize",
	TokenURL: "https://accounts.spotify.com/api/token",
}

// Spotify authenticates token requests with a Basic authorization header
// instead of credentials in the body. Refresh responses omit the refresh
// token; the session merge keeps the original one.
type Spotify struct {
	*base
}

func NewSpotify(baseURL string, opts Options) (*Spotify, error) {
	var extras []oauth2.AuthCodeOption
	if opts.ShowDialog {
		extras = append(extras, oauth2.SetAuthURLParam("show_dialog", "true"))
	}

	b, err := newBase(NameSpotify, baseURL, opts, spotifyEndpoint, "", extras)
	if err != nil {
		return nil, err
	}

	basic := base64.StdEncoding.EncodeToString([]byte(opts.ClientID + ":" + opts.ClientSecret))
	b.header = http.Header{"Authorization": {"Basic " + basic}}
	b.omitCredentials = true

	return &Spotify{base: b}, nil
}

var _ Refresher = (*Spotify)(nil)

func (p *Spotify) Refresh(ctx context.Context, current *session.Record) (*session.Record, error) {
	return p.refreshExchange(ctx, current)
}
