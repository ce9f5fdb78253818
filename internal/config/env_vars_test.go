package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/accounted4/go-accounted4/internal/config"
)

func TestEnvVars_Defaults(t *testing.T) {
	c := config.New()

	require.Equal(t, "accounted4", c.GetAppName())
	require.Equal(t, ":8080", c.GetListenAddr())
	require.Equal(t, "localhost", c.GetHostname())
	require.Equal(t, 8080, c.GetPublicPort())
	require.False(t, c.GetUseHTTPS())
	require.Equal(t, "memory", c.GetSessionBackend())
	require.Equal(t, 168*time.Hour, c.GetSessionTTL())
	require.Empty(t, c.GetEnabledProviders())
}

func TestEnvVars_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PUBLIC_PORT", "443")
	t.Setenv("HOSTNAME", "myapp.com")
	t.Setenv("USE_HTTPS", "true")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("PROVIDERS", "GitHub, spotify")
	t.Setenv("DEFAULT_PROVIDER", "github")

	c := config.New()

	require.Equal(t, ":9000", c.GetListenAddr())
	require.Equal(t, 443, c.GetPublicPort())
	require.Equal(t, "myapp.com", c.GetHostname())
	require.True(t, c.GetUseHTTPS())
	require.Equal(t, "redis", c.GetSessionBackend())
	require.Equal(t, 24*time.Hour, c.GetSessionTTL())
	require.Equal(t, []string{"github", "spotify"}, c.GetEnabledProviders())
	require.Equal(t, "github", c.GetDefaultProvider())
}

func TestEnvVars_GetProviderOptions(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "spotify-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "spotify-secret")
	t.Setenv("SPOTIFY_SCOPES", "user-read-email user-library-read")
	t.Setenv("SPOTIFY_SHOW_DIALOG", "true")
	t.Setenv("GITHUB_CLIENT_ID", "github-id")
	t.Setenv("GITHUB_CLIENT_SECRET", "github-secret")
	t.Setenv("GITHUB_ALLOW_SIGNUP", "false")

	c := config.New()

	spotify := c.GetProviderOptions("spotify")
	require.Equal(t, "spotify-id", spotify.ClientID)
	require.Equal(t, "spotify-secret", spotify.ClientSecret)
	require.Equal(t, []string{"user-read-email", "user-library-read"}, spotify.Scopes)
	require.True(t, spotify.ShowDialog)
	require.Nil(t, spotify.AllowSignup)

	github := c.GetProviderOptions("github")
	require.Equal(t, "github-id", github.ClientID)
	require.NotNil(t, github.AllowSignup)
	require.False(t, *github.AllowSignup)
}
