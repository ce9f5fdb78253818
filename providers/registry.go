package providers

import (
	"sort"
	"strings"

	"github.com/accounted4/go-accounted4/internal/errors"
)

// Factory builds a provider from the application's base URL and the
// provider's options block.
type Factory func(baseURL string, opts Options) (Provider, error)

// factories is the closed set of bundled providers.
var factories = map[string]Factory{
	NameDiscord:      func(baseURL string, opts Options) (Provider, error) { return NewDiscord(baseURL, opts) },
	NameGitHub:       func(baseURL string, opts Options) (Provider, error) { return NewGitHub(baseURL, opts) },
	NameGoogle:       func(baseURL string, opts Options) (Provider, error) { return NewGoogle(baseURL, opts) },
	NameMicrosoft:    func(baseURL string, opts Options) (Provider, error) { return NewMicrosoft(baseURL, opts) },
	NameSpotify:      func(baseURL string, opts Options) (Provider, error) { return NewSpotify(baseURL, opts) },
	NameTwitch:       func(baseURL string, opts Options) (Provider, error) { return NewTwitch(baseURL, opts) },
	NameDigitalOcean: func(baseURL string, opts Options) (Provider, error) { return NewDigitalOcean(baseURL, opts) },
}

// New constructs the named provider. Unknown names fail with
// ErrProviderNotFound.
func New(name, baseURL string, opts Options) (Provider, error) {
	factory, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrProviderNotFound, "%q", name)
	}
	return factory(baseURL, opts)
}

// Names lists the bundled provider names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
