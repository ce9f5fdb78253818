package providers

import (
	"context"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/session"
)

const NameDigitalOcean = "digitalocean"

// https://docs.digitalocean.com/reference/api/oauth-api/
var digitalOceanEndpoint = oauth2.Endpoint{
	AuthURL:  "https://cloud.digitalocean.com/v1/oauth/authorize",
	TokenURL: "https://cloud.digitalocean.com/v1/oauth/token",
}

// DigitalOcean always requests the read scope. The refresh endpoint is the
// token endpoint.
type DigitalOcean struct {
	*base
}

func NewDigitalOcean(baseURL string, opts Options) (*DigitalOcean, error) {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "select_account"
	}
	extras := []oauth2.AuthCodeOption{oauth2.SetAuthURLParam("prompt", prompt)}
	if opts.MaxAuthAge > 0 {
		extras = append(extras, oauth2.SetAuthURLParam("max_auth_age", strconv.Itoa(opts.MaxAuthAge)))
	}

	b, err := newBase(NameDigitalOcean, baseURL, opts, digitalOceanEndpoint, "read", extras)
	if err != nil {
		return nil, err
	}
	return &DigitalOcean{base: b}, nil
}

var _ Refresher = (*DigitalOcean)(nil)

func (p *DigitalOcean) Refresh(ctx context.Context, current *session.Record) (*session.Record, error) {
	return p.refreshExchange(ctx, current)
}
