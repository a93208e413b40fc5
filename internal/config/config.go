// Package config loads optional defaults for create-prev-app from YAML.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nomoyu/create-prev-app/internal/scaffold"
)

// PathEnv names a config file when --config is not given.
const PathEnv = "CREATE_PREV_APP_CONFIG"

type Config struct {
	// PackageManager is empty unless configured; detection then falls back
	// to the user agent.
	PackageManager string
	Styles         string
	Git            Git
}

type Git struct {
	Enabled     bool
	Binary      bool
	Message     string
	AuthorName  string
	AuthorEmail string
}

func DefaultConfig() Config {
	return Config{
		Styles: scaffold.DefaultStyles,
		Git: Git{
			Enabled: true,
			Message: scaffold.DefaultCommitMessage,
		},
	}
}

// PathFromCLIorEnv prefers the flag value over the environment.
func PathFromCLIorEnv(cli string, getenv func(string) string) string {
	if strings.TrimSpace(cli) != "" {
		return cli
	}
	if getenv == nil {
		return ""
	}
	return strings.TrimSpace(getenv(PathEnv))
}

// Load reads path and applies it over DefaultConfig. An empty path yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if y.Prev.PackageManager != "" {
		pm, err := scaffold.ParsePackageManager(y.Prev.PackageManager)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.PackageManager = string(pm)
	}
	if y.Prev.Styles != "" {
		cfg.Styles = y.Prev.Styles
	}
	if y.Prev.Git.Enabled != nil {
		cfg.Git.Enabled = *y.Prev.Git.Enabled
	}
	if y.Prev.Git.Binary != nil {
		cfg.Git.Binary = *y.Prev.Git.Binary
	}
	if y.Prev.Git.Message != "" {
		cfg.Git.Message = y.Prev.Git.Message
	}
	cfg.Git.AuthorName = y.Prev.Git.AuthorName
	cfg.Git.AuthorEmail = y.Prev.Git.AuthorEmail

	return cfg, nil
}

type yamlConfig struct {
	Prev struct {
		PackageManager string `yaml:"package_manager"`
		Styles         string `yaml:"styles"`

		Git struct {
			Enabled     *bool  `yaml:"enabled"`
			Binary      *bool  `yaml:"binary"`
			Message     string `yaml:"message"`
			AuthorName  string `yaml:"author_name"`
			AuthorEmail string `yaml:"author_email"`
		} `yaml:"git"`
	} `yaml:"prev"`
}
