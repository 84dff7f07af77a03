package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingBotToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	BotToken        string
	DatabasePath    string
	Players         []string
	ShuffleSeed     int64
	DecisionTimeout time.Duration
	Debug           bool
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		DatabasePath:    os.Getenv("DATABASE_PATH"),
		Players:         []string{"Player"},
		DecisionTimeout: 2 * time.Minute,
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "./blackjack.db"
	}

	if v := os.Getenv("PLAYERS"); v != "" {
		names, err := splitNames(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PLAYERS: %w", err)
		}
		cfg.Players = names
	}

	if v := os.Getenv("SHUFFLE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUFFLE_SEED: %w", err)
		}
		cfg.ShuffleSeed = seed
	}

	if v := os.Getenv("DECISION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DECISION_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("DECISION_TIMEOUT must be positive, got %s", d)
		}
		cfg.DecisionTimeout = d
	}

	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// RequireBotToken is checked by the Telegram front end only.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrMissingBotToken
	}
	return nil
}

// splitNames parses a comma separated roster. Names must be unique since
// results are reported per name.
func splitNames(s string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate name %q", n)
		}
		seen[n] = true
		names = append(names, n)
	}
	if len(names) == 0 {
		return nil, errors.New("no names")
	}
	return names, nil
}
