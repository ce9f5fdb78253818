package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/accounted4/go-accounted4/internal/utils"
	"github.com/accounted4/go-accounted4/providers"
)

const (
	portEnvVar       = "PORT"
	appNameVar       = "APP_NAME"
	hostnameVar      = "HOSTNAME"
	publicPortVar    = "PUBLIC_PORT"
	useHTTPSVar      = "USE_HTTPS"
	sessionSecretVar = "SESSION_SECRET"
	sessionStoreVar  = "SESSION_STORE"
	redisAddrVar     = "REDIS_ADDR"
	redisDBVar       = "REDIS_DB"
	sessionTTLVar    = "SESSION_TTL"
	defProviderVar   = "DEFAULT_PROVIDER"
	providersVar     = "PROVIDERS"
)

type EnvVars struct{}

var _ Config = mainConfig{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "accounted4")
}

func (EnvVars) GetListenAddr() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetHostname() string {
	return GetEnv(hostnameVar, "localhost")
}

func (e EnvVars) GetPublicPort() int {
	port, err := strconv.Atoi(GetEnv(publicPortVar, strings.TrimPrefix(e.GetListenAddr(), ":")))
	if err != nil {
		return 0
	}
	return port
}

func (EnvVars) GetUseHTTPS() bool {
	return GetEnv(useHTTPSVar, "false") == "true"
}

func (EnvVars) GetEnv() string {
	return GetEnv("ENV", "DEV")
}

func (EnvVars) GetSessionSecret() string {
	return GetEnv(sessionSecretVar, "")
}

// GetSessionBackend selects the session store, "memory" or "redis".
func (EnvVars) GetSessionBackend() string {
	return strings.ToLower(GetEnv(sessionStoreVar, "memory"))
}

func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "localhost:6379")
}

func (EnvVars) GetRedisDB() int {
	db, err := strconv.Atoi(GetEnv(redisDBVar, "0"))
	if err != nil {
		return 0
	}
	return db
}

func (EnvVars) GetSessionTTL() time.Duration {
	ttl, err := time.ParseDuration(GetEnv(sessionTTLVar, "168h"))
	if err != nil {
		return 168 * time.Hour
	}
	return ttl
}

func (EnvVars) GetDefaultProvider() string {
	return GetEnv(defProviderVar, "")
}

// GetEnabledProviders reads the comma separated PROVIDERS list.
func (EnvVars) GetEnabledProviders() []string {
	raw := GetEnv(providersVar, "")
	if raw == "" {
		return nil
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// GetProviderOptions reads a provider's options from <NAME>_CLIENT_ID,
// <NAME>_CLIENT_SECRET and the optional per provider extras.
func (EnvVars) GetProviderOptions(name string) providers.Options {
	prefix := strings.ToUpper(name)
	opts := providers.Options{
		ClientID:     GetEnv(prefix+"_CLIENT_ID", ""),
		ClientSecret: GetEnv(prefix+"_CLIENT_SECRET", ""),
		Tenant:       GetEnv(prefix+"_TENANT", ""),
		Prompt:       GetEnv(prefix+"_PROMPT", ""),
		Login:        GetEnv(prefix+"_LOGIN", ""),
		ShowDialog:   GetEnv(prefix+"_SHOW_DIALOG", "") == "true",
		ForceVerify:  GetEnv(prefix+"_FORCE_VERIFY", "") == "true",
	}
	if scopes := GetEnv(prefix+"_SCOPES", ""); scopes != "" {
		opts.Scopes = strings.Fields(scopes)
	}
	if age, err := strconv.Atoi(GetEnv(prefix+"_MAX_AUTH_AGE", "")); err == nil {
		opts.MaxAuthAge = age
	}
	if signup := GetEnv(prefix+"_ALLOW_SIGNUP", ""); signup != "" {
		opts.AllowSignup = utils.Ptr(signup == "true")
	}
	return opts
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
