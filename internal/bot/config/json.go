package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/teamfinder/internal/timex"
)

// JsonLimits mirrors Limits for JSON files.
type JsonLimits struct {
	RiotIDMax    int `json:"riot_id_max"`
	AgeMin       int `json:"age_min"`
	AgeMax       int `json:"age_max"`
	RolesMax     int `json:"roles_max"`
	RolesTextMax int `json:"roles_text_max"`
	AgentsMax    int `json:"agents_max"`
	BioMax       int `json:"bio_max"`
	ContactMax   int `json:"contact_max"`
}

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so they may be written as "30s" or as nanoseconds.
type JsonConfig struct {
	BotToken        string         `json:"bot_token"`
	DatabaseDSN     string         `json:"database_dsn"`
	ModeratorChatID int64          `json:"moderator_chat_id"`
	PublicChannel   string         `json:"public_channel"`
	OwnerID         int64          `json:"owner_id"`
	OpsAddr         string         `json:"ops_addr"`
	LogLevel        string         `json:"log_level"`
	PollTimeout     timex.Duration `json:"poll_timeout"`
	SessionTTL      timex.Duration `json:"session_ttl"`
	SessionCapacity int            `json:"session_capacity"`
	RateLimit       float64        `json:"rate_limit"`
	RateBurst       int            `json:"rate_burst"`
	Limits          JsonLimits     `json:"limits"`
}

// parseJson overlays the fields present in path onto config. Zero values in
// the file are treated as absent. An empty path loads nothing.
func parseJson(config *Config, path string) error {
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}

	setString(&config.BotToken, c.BotToken)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.PublicChannel, c.PublicChannel)
	setString(&config.OpsAddr, c.OpsAddr)
	setString(&config.LogLevel, c.LogLevel)
	setNumber(&config.ModeratorChatID, c.ModeratorChatID)
	setNumber(&config.OwnerID, c.OwnerID)
	setNumber(&config.PollTimeout, c.PollTimeout.Duration)
	setNumber(&config.SessionTTL, c.SessionTTL.Duration)
	setNumber(&config.SessionCapacity, c.SessionCapacity)
	setNumber(&config.RateLimit, c.RateLimit)
	setNumber(&config.RateBurst, c.RateBurst)

	l := &config.Limits
	setNumber(&l.RiotIDMax, c.Limits.RiotIDMax)
	setNumber(&l.AgeMin, c.Limits.AgeMin)
	setNumber(&l.AgeMax, c.Limits.AgeMax)
	setNumber(&l.RolesMax, c.Limits.RolesMax)
	setNumber(&l.RolesTextMax, c.Limits.RolesTextMax)
	setNumber(&l.AgentsMax, c.Limits.AgentsMax)
	setNumber(&l.BioMax, c.Limits.BioMax)
	setNumber(&l.ContactMax, c.Limits.ContactMax)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setNumber[T ~int | ~int64 | ~float64](dst *T, v T) {
	if v != 0 {
		*dst = v
	}
}
