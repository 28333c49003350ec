// Package config loads the screener configuration from a file, the environment
// and command-line flags.
//
// Precedence follows viper: flags bound with BindPFlag, then RESUME_SCREENER_*
// environment variables, then the config file, then defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/skills"
)

const (
	// EnvPrefix prefixes every environment override, e.g. RESUME_SCREENER_STORE_DSN.
	EnvPrefix = "RESUME_SCREENER"
	// DefaultName is the config file looked up in the working directory when none is given.
	DefaultName = "resume-screener"
)

// Config is the full application configuration.
type Config struct {
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Matching MatchingConfig `mapstructure:"matching"`
	Ranking  RankingConfig  `mapstructure:"ranking"`
	Store    StoreConfig    `mapstructure:"store"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

type ScoringConfig struct {
	Weights                   scoring.Weights `mapstructure:"weights"`
	PenalizeOverqualification bool            `mapstructure:"penalize_overqualification"`
}

type MatchingConfig struct {
	Policy string `mapstructure:"policy" validate:"oneof=strict lenient"`
}

type RankingConfig struct {
	// Parallelism caps concurrent candidate evaluations; 0 uses GOMAXPROCS.
	Parallelism int `mapstructure:"parallelism" validate:"gte=0"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory sqlite postgres"`
	DSN    string `mapstructure:"dsn"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit      float64  `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst      int      `mapstructure:"rate_burst" validate:"gte=0"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadMB    int      `mapstructure:"max_upload_mb" validate:"gte=1"`
	// APIKeys are "name=key" entries required on every route but /health.
	APIKeys []string `mapstructure:"api_keys"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	w := scoring.DefaultWeights()
	v.SetDefault("scoring.weights.skill", w.Skill)
	v.SetDefault("scoring.weights.experience", w.Experience)
	v.SetDefault("scoring.weights.education", w.Education)
	v.SetDefault("scoring.weights.project", w.Project)
	v.SetDefault("scoring.penalize_overqualification", false)

	v.SetDefault("matching.policy", string(skills.PolicyStrict))
	v.SetDefault("ranking.parallelism", 0)

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.dsn", "resume-screener.db")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_upload_mb", 10)
	v.SetDefault("server.api_keys", []string{})

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// Load reads the configuration into a validated Config. An explicit path must
// exist; without one a resume-screener.{yaml,json,toml} in the working
// directory is used when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := Decode(v.AllSettings())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode converts a settings map into a Config. Strings such as "0.5" or
// "true" from the environment are converted to the field types.
func Decode(settings map[string]any) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.Scoring.Weights.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Warnings lists suspicious but accepted settings.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.Scoring.Weights.SumsToOne() {
		warnings = append(warnings, fmt.Sprintf("scoring weights sum to %.4f, not 1.0; final scores will be clamped to [0,100]", c.Scoring.Weights.Sum()))
	}
	if c.Store.Driver == "memory" {
		warnings = append(warnings, "memory store selected; scores are lost when the process exits")
	}
	return warnings
}

// MatchingPolicy returns the configured skill matching policy.
func (c *Config) MatchingPolicy() skills.Policy {
	p, err := skills.ParsePolicy(c.Matching.Policy)
	if err != nil {
		return skills.PolicyStrict
	}
	return p
}

// ExperienceOptions returns the experience scorer options.
func (c *Config) ExperienceOptions() scoring.ExperienceOptions {
	return scoring.ExperienceOptions{PenalizeOverqualification: c.Scoring.PenalizeOverqualification}
}

// NewScorer builds a scorer from the configured policy, weights and options.
func (c *Config) NewScorer() *scoring.Scorer {
	return scoring.NewScorer(
		skills.NewMatcher(c.MatchingPolicy()),
		c.Scoring.Weights,
		scoring.WithExperienceOptions(c.ExperienceOptions()),
	)
}
