package providers

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/session"
)

const NameDiscord = "discord"

// https://discord.com/developers/docs/topics/oauth2
var discordEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/api/v8/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

// Discord always requests the identify scope.
type Discord struct {
	*base
}

func NewDiscord(baseURL string, opts Options) (*Discord, error) {
	b, err := newBase(NameDiscord, baseURL, opts, discordEndpoint, "identify", nil)
	if err != nil {
		return nil, err
	}
	return &Discord{base: b}, nil
}

var _ Refresher = (*Discord)(nil)

func (p *Discord) Refresh(ctx context.Context, current *session.Record) (*session.Record, error) {
	return p.refreshExchange(ctx, current)
}
