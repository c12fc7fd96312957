// Package config handles configuration for the bot process: defaults,
// environment (optionally seeded from a dotenv file), a JSON overlay and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamfinder/internal/flagx"
)

// Limits bounds the free-text and multi-select form fields.
type Limits struct {
	RiotIDMax    int `env:"RIOT_ID_MAX"`
	AgeMin       int `env:"AGE_MIN"`
	AgeMax       int `env:"AGE_MAX"`
	RolesMax     int `env:"ROLES_MAX"`
	RolesTextMax int `env:"ROLES_TEXT_MAX"`
	AgentsMax    int `env:"AGENTS_MAX"`
	BioMax       int `env:"BIO_MAX"`
	ContactMax   int `env:"CONTACT_MAX"`
}

// Config holds runtime settings for the bot.
//
// Fields:
//   - BotToken: messaging platform API token.
//   - DatabaseDSN: postgres:// URL for PostgreSQL, anything else is a SQLite file path.
//   - ModeratorChatID: chat where new applications are posted for review.
//   - PublicChannel: channel username (e.g. "@valorant_team") for approved posts.
//   - OwnerID: platform id of the user allowed to manage moderators.
//   - OpsAddr: bind address for /metrics and /healthz; empty disables it.
//   - SessionTTL / SessionCapacity: idle expiry and size of the session store.
//   - RateLimit / RateBurst: per-user inbound actions per second.
type Config struct {
	BotToken        string        `env:"BOT_TOKEN"`
	DatabaseDSN     string        `env:"DATABASE_URL"`
	ModeratorChatID int64         `env:"MODERATOR_CHAT_ID"`
	PublicChannel   string        `env:"PUBLIC_CHANNEL_ID"`
	OwnerID         int64         `env:"BOT_OWNER_ID"`
	OpsAddr         string        `env:"OPS_ADDR"`
	LogLevel        string        `env:"LOG_LEVEL"`
	PollTimeout     time.Duration `env:"POLL_TIMEOUT"`
	SessionTTL      time.Duration `env:"SESSION_TTL"`
	SessionCapacity int           `env:"SESSION_CAPACITY"`
	RateLimit       float64       `env:"RATE_LIMIT"`
	RateBurst       int           `env:"RATE_BURST"`
	Limits          Limits        `envPrefix:"LIMIT_"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "teamfinder.db"
	c.LogLevel = "info"
	c.PollTimeout = 60 * time.Second
	c.SessionTTL = 24 * time.Hour
	c.SessionCapacity = 10000
	c.RateLimit = 2
	c.RateBurst = 5
	c.Limits = Limits{
		RiotIDMax:    50,
		AgeMin:       13,
		AgeMax:       100,
		RolesMax:     4,
		RolesTextMax: 100,
		AgentsMax:    8,
		BioMax:       500,
		ContactMax:   25,
	}
}

// Validate reports settings the bot cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.BotToken == "" {
		errs = append(errs, errors.New("bot token is not set"))
	}
	if c.OwnerID == 0 {
		errs = append(errs, errors.New("bot owner id is not set"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is not set"))
	}
	if c.Limits.AgeMin > c.Limits.AgeMax {
		errs = append(errs, fmt.Errorf("age bounds inverted: %d > %d", c.Limits.AgeMin, c.Limits.AgeMax))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config from defaults, then the environment, then an
// optional JSON file and finally command-line flags. args excludes the
// program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, flagx.EnvFile(args)); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
