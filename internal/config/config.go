package config

import (
	"time"

	"github.com/accounted4/go-accounted4/providers"
)

type Config interface {
	ServerConfig
	SessionConfig
	ProvidersConfig
}

type ServerConfig interface {
	GetAppName() string
	GetListenAddr() string
	GetHostname() string
	GetPublicPort() int
	GetUseHTTPS() bool
	GetEnv() string
}

type SessionConfig interface {
	GetSessionSecret() string
	GetSessionBackend() string
	GetRedisAddr() string
	GetRedisDB() int
	GetSessionTTL() time.Duration
}

type ProvidersConfig interface {
	GetDefaultProvider() string
	GetEnabledProviders() []string
	GetProviderOptions(name string) providers.Options
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
