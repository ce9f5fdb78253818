package providers

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/session"
)

const NameMicrosoft = "microsoft"

const microsoftDefaultTenant = "consumers"

// https://docs.microsoft.com/en-us/azure/active-directory/develop/v2-oauth2-auth-code-flow
func microsoftEndpoint(tenant string) oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:  fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/authorize", tenant),
		TokenURL: fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenant),
	}
}

// Microsoft always requests the openid scope. The login authority is
// selected by Options.Tenant (consumers, organizations or common). Failed
// exchanges can come back as error fields in a 200 body; the exchange
// helper rejects those. Refreshing requires the offline_access scope.
type Microsoft struct {
	*base
}

func NewMicrosoft(baseURL string, opts Options) (*Microsoft, error) {
	tenant := opts.Tenant
	if tenant == "" {
		tenant = microsoftDefaultTenant
	}

	b, err := newBase(NameMicrosoft, baseURL, opts, microsoftEndpoint(tenant), "openid", nil)
	if err != nil {
		return nil, err
	}
	return &Microsoft{base: b}, nil
}

var _ Refresher = (*Microsoft)(nil)

func (p *Microsoft) Refresh(ctx context.Context, current *session.Record) (*session.Record, error) {
	return p.refreshExchange(ctx, current)
}
