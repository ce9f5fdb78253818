package providers

import (
	"net/http"
	"strconv"

	"golang.org/x/oauth2"

	"github.com/accounted4/go-accounted4/internal/utils"
)

const NameGitHub = "github"

// https://docs.github.com/en/developers/apps/building-oauth-apps/authorizing-oauth-apps
var githubEndpoint = oauth2.Endpoint{
	AuthURL:  "https://github.com/login/oauth/authorize",
	TokenURL: "https://github.com/login/oauth/access_token",
}

// GitHub has no mandatory scopes and no refresh capability: OAuth app
// tokens do not expire. The token endpoint answers with query-string
// encoding unless asked for JSON.
type GitHub struct {
	*base
}

func NewGitHub(baseURL string, opts Options) (*GitHub, error) {
	var extras []oauth2.AuthCodeOption
	if opts.Login != "" {
		extras = append(extras, oauth2.SetAuthURLParam("login", opts.Login))
	}
	if opts.AllowSignup != nil {
		extras = append(extras, oauth2.SetAuthURLParam("allow_signup", strconv.FormatBool(utils.Value(opts.AllowSignup))))
	}

	b, err := newBase(NameGitHub, baseURL, opts, githubEndpoint, "", extras)
	if err != nil {
		return nil, err
	}
	b.header = http.Header{"Accept": {"application/json"}}
	return &GitHub{base: b}, nil
}
