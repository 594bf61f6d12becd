package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Auth       Auth
	Argon2     Argon2
	Push       Push
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

// Auth configures the token engine. PrivateKeyPath points at a PKCS#8 PEM
// Ed25519 key; the verification key is derived from it.
type Auth struct {
	PrivateKeyPath   string
	AccessTTLMinutes int
	RefreshTTLDays   int
	TotpIssuer       string
}

// Argon2 holds the argon2id parameters used for password hashing.
type Argon2 struct {
	Time     uint32
	MemoryKB uint32
	Threads  uint8
}

// Push configures the best-effort notification webhook. An empty Endpoint
// disables push entirely.
type Push struct {
	Endpoint string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	applyDefaults(&c)
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Auth.AccessTTLMinutes == 0 {
		c.Auth.AccessTTLMinutes = 15
	}
	if c.Auth.RefreshTTLDays == 0 {
		c.Auth.RefreshTTLDays = 30
	}
	if c.Auth.TotpIssuer == "" {
		c.Auth.TotpIssuer = "missive"
	}
	if c.Argon2.Time == 0 {
		c.Argon2.Time = 1
	}
	if c.Argon2.MemoryKB == 0 {
		c.Argon2.MemoryKB = 64 * 1024
	}
	if c.Argon2.Threads == 0 {
		c.Argon2.Threads = 4
	}
}
