package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	ModeConsole = "console"
	ModeHTTP    = "http"
	ModeAll     = "all"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"     envDefault:"localhost:8080"`
	LogLvl         string        `env:"LOG_LVL"         envDefault:"info"`
	Mode           string        `env:"RUN_MODE"        envDefault:"all"`
	ReportInterval time.Duration `env:"REPORT_INTERVAL" envDefault:"1m"`
}

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.Mode, "m", cfg.Mode, "run mode: console, http or all")
	flag.DurationVar(&cfg.ReportInterval, "i", cfg.ReportInterval, "metrics report interval, 0 disables")
	flag.Parse()

	cfg.Mode = normalizeMode(cfg.Mode)

	return cfg, nil
}

func (c *Config) ConsoleEnabled() bool {
	return c.Mode == ModeConsole || c.Mode == ModeAll
}

func (c *Config) HTTPEnabled() bool {
	return c.Mode == ModeHTTP || c.Mode == ModeAll
}

func normalizeMode(mode string) string {
	switch mode = strings.ToLower(strings.TrimSpace(mode)); mode {
	case ModeConsole, ModeHTTP:
		return mode
	default:
		return ModeAll
	}
}
