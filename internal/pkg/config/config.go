package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the immutable run configuration. It is built once at startup and
// passed into each stage; no stage reads process environment on its own.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Provider   ProviderConfig   `yaml:"provider"`
	Annotation AnnotationConfig `yaml:"annotation"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" default:"text" validate:"oneof=text json"`
}

// ProviderConfig describes the odds provider query: which leagues to pull,
// which region/markets, and which bookmakers are considered at all.
type ProviderConfig struct {
	BaseURL    string        `yaml:"base_url" default:"https://api.the-odds-api.com" validate:"required,url"`
	APIKey     string        `yaml:"api_key" validate:"required"`
	Leagues    []string      `yaml:"leagues" validate:"min=1"`
	Region     string        `yaml:"region" default:"eu"`
	Markets    []string      `yaml:"markets" default:"[\"h2h\",\"totals\"]" validate:"min=1"`
	Bookmakers []string      `yaml:"bookmakers" validate:"min=1"`
	Timeout    time.Duration `yaml:"timeout" default:"15s"`
}

type AnnotationConfig struct {
	APIKey             string        `yaml:"api_key" validate:"required"`
	Model              string        `yaml:"model" default:"gpt-4o-mini"`
	Timeout            time.Duration `yaml:"timeout" default:"20s"`
	RationaleMaxTokens int           `yaml:"rationale_max_tokens" default:"70" validate:"gt=0"`
	DisableRanking     bool          `yaml:"disable_ranking"`
}

type TelegramConfig struct {
	BotToken       string        `yaml:"bot_token" validate:"required"`
	FreeChannel    string        `yaml:"free_channel" validate:"required"`
	PremiumChannel string        `yaml:"premium_channel" validate:"required"`
	SendInterval   time.Duration `yaml:"send_interval" default:"2s"`
}

// PipelineConfig carries the freshness, uniqueness and tiering policy knobs
// that used to be separate code paths in the script era.
type PipelineConfig struct {
	HorizonHours          int      `yaml:"horizon_hours" default:"48" validate:"oneof=24 48 72"`
	EndOfDay              bool     `yaml:"end_of_day"`
	DedupMode             string   `yaml:"dedup_mode" default:"selection" validate:"oneof=match selection"`
	MinOdds               float64  `yaml:"min_odds" default:"1.70" validate:"gte=1.0"`
	MaxPicks              int      `yaml:"max_picks" default:"10" validate:"gt=0"`
	MinPicks              int      `yaml:"min_picks" default:"3" validate:"gt=0"`
	MarqueeClubs          []string `yaml:"marquee_clubs"`
	DisplayUTCOffsetHours int      `yaml:"display_utc_offset_hours" validate:"gte=-12,lte=14"`
	UseSampleFallback     bool     `yaml:"use_sample_fallback"`
	PremiumCTA            string   `yaml:"premium_cta" default:"Subscribe for early access to every pick."`
}

// Load reads the YAML file, applies environment overrides for credentials and
// channels, fills defaults and validates. A missing required credential fails
// here, before any network call is made.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvOverrides()

	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &config, nil
}

// applyEnvOverrides lets deployment secrets come from the environment instead
// of the config file. A set variable wins over the file value.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ODDS_API_KEY"); v != "" {
		c.Provider.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Annotation.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("FREE_CHANNEL"); v != "" {
		c.Telegram.FreeChannel = v
	}
	if v := os.Getenv("PREMIUM_CHANNEL"); v != "" {
		c.Telegram.PremiumChannel = v
	}
}

// Horizon returns the forward eligibility window as a duration.
func (p PipelineConfig) Horizon() time.Duration {
	return time.Duration(p.HorizonHours) * time.Hour
}
