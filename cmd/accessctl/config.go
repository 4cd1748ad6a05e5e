package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

const (
	defaultURL     = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
)

var errNoToken = errors.New("no token: set --token or ACCESS_TOKEN")

// Config holds the resolved client settings.
type Config struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"-"`
}

// LoadConfig resolves settings with precedence flag > env > file > default.
func LoadConfig(cmd *cobra.Command) *Config {
	cfg := &Config{}
	loadConfigFile(cfg)

	if v := os.Getenv("ACCESS_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("ACCESS_TOKEN"); v != "" {
		cfg.Token = v
	}

	if v, _ := cmd.Flags().GetString("url"); v != "" {
		cfg.URL = v
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		cfg.Token = v
	}
	cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")

	if cfg.URL == "" {
		cfg.URL = defaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

func loadConfigFile(cfg *Config) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(home, ".access", "config.yaml"))
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, cfg)
}

// Session returns an authenticated SDK session or errNoToken.
func (c *Config) Session() (*accesssdk.Session, error) {
	if c.Token == "" {
		return nil, errNoToken
	}
	return c.Client().WithToken(c.Token), nil
}

func (c *Config) Client() *accesssdk.SDKClient {
	return accesssdk.NewSDKClient(c.URL)
}
