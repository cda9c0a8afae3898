package config

import (
	"strings"

	"emperror.dev/errors"
	"github.com/caarlos0/env/v11"
)

const (
	ErrMissingToken = errors.Sentinel("GH_TOKEN environment variable not set.")
	ErrMissingOrg   = errors.Sentinel("no organization configured: set GH_ORG or pass --org")
)

type Config struct {
	// GithubToken needs read access to repository contents, teams and
	// collaborators of the audited repositories.
	GithubToken string `env:"GH_TOKEN"`
	Org         string `env:"GH_ORG"`
	APIURL      string `env:"GH_API_URL"`
}

// Load reads the configuration from the environment. A missing or blank
// token is an error.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}

	cfg.GithubToken = strings.TrimSpace(cfg.GithubToken)
	if cfg.GithubToken == "" {
		return nil, ErrMissingToken
	}

	return &cfg, nil
}

// RequireOrg checks that an organization is set for org-wide runs.
func (c *Config) RequireOrg() error {
	if strings.TrimSpace(c.Org) == "" {
		return ErrMissingOrg
	}
	return nil
}
