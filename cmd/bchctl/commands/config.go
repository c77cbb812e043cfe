package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/renproject/checkdigit/server"
)

type fileConfig struct {
	Listen      string `toml:"listen"`
	LogLevel    string `toml:"log_level"`
	ReadTimeout string `toml:"read_timeout"`
	Metrics     bool   `toml:"metrics"`
}

type serveConfig struct {
	Server   server.Config
	LogLevel string
}

func defaultServeConfig() serveConfig {
	return serveConfig{
		Server:   server.DefaultConfig(),
		LogLevel: "info",
	}
}

// loadServeConfig overlays the keys defined in the file at path on the
// defaults. An empty path gives the defaults.
func loadServeConfig(path string) (serveConfig, error) {
	cfg := defaultServeConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return serveConfig{}, fmt.Errorf("load serve config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return serveConfig{}, fmt.Errorf("load serve config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("listen") {
		listen := strings.TrimSpace(raw.Listen)
		if listen == "" {
			return serveConfig{}, fmt.Errorf("parse listen: empty address")
		}
		cfg.Server.Listen = listen
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("read_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ReadTimeout))
		if err != nil {
			return serveConfig{}, fmt.Errorf("parse read_timeout: %w", err)
		}
		if d <= 0 {
			return serveConfig{}, fmt.Errorf("parse read_timeout: expected a positive duration: got %v", d)
		}
		cfg.Server.ReadTimeout = d
	}

	if meta.IsDefined("metrics") {
		cfg.Server.Metrics = raw.Metrics
	}

	return cfg, nil
}
