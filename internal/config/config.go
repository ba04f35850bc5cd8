package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	BackendURL    string `toml:"backend_url"`
	DBPath        string `toml:"db_path"`
	UseTestEmails bool   `toml:"use_test_emails"`
	ListenAddr    string `toml:"listen_addr"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BackendURL:    "http://localhost:8000",
		DBPath:        filepath.Join(home, ".config", "mailswipe", "mailswipe.db"),
		UseTestEmails: true,
		ListenAddr:    ":8000",
	}

	cfgPath := filepath.Join(home, ".config", "mailswipe", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
