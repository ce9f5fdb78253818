package providers

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/session"
)

const NameTwitch = "twitch"

// https://dev.twitch.tv/docs/authentication/getting-tokens-oauth/#authorization-code-grant-flow
var twitchEndpoint = oauth2.Endpoint{
	AuthURL:  "https://id.twitch.tv/oauth2/authorize",
	TokenURL: "https://id.twitch.tv/oauth2/token",
}

// Twitch can embed failures in a 200 token response; the exchange helper
// rejects those.
type Twitch struct {
	*base
}

func NewTwitch(baseURL string, opts Options) (*Twitch, error) {
	var extras []oauth2.AuthCodeOption
	if opts.ForceVerify {
		extras = append(extras, oauth2.SetAuthURLParam("force_verify", "true"))
	}

	b, err := newBase(NameTwitch, baseURL, opts, twitchEndpoint, "", extras)
	if err != nil {
		return nil, err
	}
	return &Twitch{base: b}, nil
}

var _ Refresher = (*Twitch)(nil)

func (p *Twitch) Refresh(ctx context.Context, current *session.Record) (*session.Record, error) {
	return p.refreshExchange(ctx, current)
}
