package cli

import (
	"os"
)

const (
	// EnvConfig overrides the default document path.
	EnvConfig = "MAMDANI_CONFIG"
	// EnvRedisAddr enables the redis record store for servers.
	EnvRedisAddr = "MAMDANI_REDIS_ADDR"

	defaultConfig = "mamdani.yaml"
)

// Options are the settings shared by every command.
type Options struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	JSON        bool
	Concurrency int

	// Record persistence. RedisAddr wins over RecordsDir.
	RedisAddr  string
	RecordTTL  string
	RecordsDir string
}

// DefaultConfigPath returns the document path used when --config is not given.
func DefaultConfigPath() string {
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return defaultConfig
}

// DefaultRedisAddr returns the redis address from the environment, if any.
func DefaultRedisAddr() string {
	return os.Getenv(EnvRedisAddr)
}
