package main

import (
	"flag"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/adrian-miasik/eat-or-yeet/catalog"
	"github.com/adrian-miasik/eat-or-yeet/constants"
)

// Config holds sandbox settings; environment first, flags override
type Config struct {
	CatalogPath string        `env:"EOY_CATALOG"`
	ScoreToWin  int           `env:"EOY_WIN_SCORE" envDefault:"100"`
	Tick        time.Duration `env:"EOY_TICK" envDefault:"50ms"`
	Spawn       time.Duration `env:"EOY_SPAWN" envDefault:"1500ms"`
	Sound       bool          `env:"EOY_SOUND" envDefault:"true"`
	Volume      float64       `env:"EOY_VOLUME" envDefault:"0.5"`
	Debug       bool          `env:"EOY_DEBUG"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

func loadConfig(args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("eat-or-yeet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "TOML food catalog (built-in foods when empty)")
	fs.IntVar(&cfg.ScoreToWin, "win", cfg.ScoreToWin, "Score needed to win")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "Game logic tick interval")
	fs.DurationVar(&cfg.Spawn, "spawn", cfg.Spawn, "Food spawn interval")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play collection sounds")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound volume, 0 to 1")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}

	if cfg.ScoreToWin <= 0 {
		cfg.ScoreToWin = constants.DefaultScoreToWin
	}
	if cfg.Tick <= 0 {
		return cfg, errors.Errorf("tick must be positive, got %v", cfg.Tick)
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return cfg, errors.Errorf("volume must be within [0, 1], got %v", cfg.Volume)
	}
	if cfg.Spawn <= 0 {
		return cfg, errors.Errorf("spawn must be positive, got %v", cfg.Spawn)
	}
	return cfg, nil
}

// loadCatalog returns the built-in foods unless a catalog file is configured
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}
