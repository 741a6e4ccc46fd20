// file: internal/config/config.go
// version: 2.0.0
// guid: 7b8c9d0e-1f2a-3b4c-5d6e-7f8a9b0c1d2e

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jdfalk/rankcheck/internal/models"
)

// EnvPrefix namespaces environment overrides, e.g. RANKCHECK_MATCHING_FUZZY_THRESHOLD.
const EnvPrefix = "RANKCHECK"

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Host               string
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
	MaxBodyBytes       int64
	MaxBatchBodyBytes  int64
	// A zero CacheTTL disables the verdict cache.
	CacheTTL     time.Duration
	CacheEntries int
	// An empty BasicAuthUsername disables authentication.
	BasicAuthUsername string
	BasicAuthPassword string
}

// Config holds application configuration
type Config struct {
	LogLevel string
	Matching models.MatchingOptions
	Server   ServerConfig
}

var AppConfig Config

// SetDefaults registers every key with its default value.
func SetDefaults() {
	d := models.DefaultMatchingOptions()
	viper.SetDefault("log_level", "info")

	viper.SetDefault("matching.case_sensitive", d.CaseSensitive)
	viper.SetDefault("matching.fuzzy_enabled", d.FuzzyEnabled)
	viper.SetDefault("matching.exact_phrase_only", d.ExactPhraseOnly)
	viper.SetDefault("matching.preserve_special_chars", d.PreserveSpecialChars)
	viper.SetDefault("matching.min_word_length", d.MinWordLength)
	viper.SetDefault("matching.fuzzy_threshold", d.FuzzyThreshold)
	viper.SetDefault("matching.min_confidence", d.MinConfidence)
	viper.SetDefault("matching.include_snippets", d.IncludeSnippets)
	viper.SetDefault("matching.include_urls", d.IncludeURLs)
	viper.SetDefault("matching.find_all_occurrences", d.FindAllOccurrences)
	viper.SetDefault("matching.include_near_matches", d.IncludeNearMatches)
	viper.SetDefault("matching.max_additional_occurrences", d.MaxAdditionalOccurrences)
	viper.SetDefault("matching.max_near_matches", d.MaxNearMatches)
	viper.SetDefault("matching.field_weights.title", d.FieldWeights.Title)
	viper.SetDefault("matching.field_weights.snippet", d.FieldWeights.Snippet)
	viper.SetDefault("matching.field_weights.url", d.FieldWeights.URL)
	viper.SetDefault("matching.fuzzy_weights.levenshtein", d.FuzzyWeights.Levenshtein)
	viper.SetDefault("matching.fuzzy_weights.token", d.FuzzyWeights.Token)
	viper.SetDefault("matching.fuzzy_weights.char", d.FuzzyWeights.Char)
	viper.SetDefault("matching.partial_weights.ratio", d.PartialWeights.Ratio)
	viper.SetDefault("matching.partial_weights.similarity", d.PartialWeights.Similarity)
	viper.SetDefault("matching.partial_weights.proximity", d.PartialWeights.Proximity)

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.idle_timeout", "60s")
	viper.SetDefault("server.rate_limit_per_minute", 120)
	viper.SetDefault("server.rate_limit_burst", 20)
	viper.SetDefault("server.max_body_bytes", 1<<20)
	viper.SetDefault("server.max_batch_body_bytes", 8<<20)
	viper.SetDefault("server.cache_ttl", "5m")
	viper.SetDefault("server.cache_entries", 1024)
	viper.SetDefault("server.basic_auth_username", "")
	viper.SetDefault("server.basic_auth_password", "")
}

// InitConfig initializes the application configuration
func InitConfig() error {
	SetDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	opts, err := MatchingOptions()
	if err != nil {
		return err
	}

	AppConfig = Config{
		LogLevel: strings.ToLower(viper.GetString("log_level")),
		Matching: opts,
		Server: ServerConfig{
			Host:               viper.GetString("server.host"),
			Port:               viper.GetString("server.port"),
			ReadTimeout:        viper.GetDuration("server.read_timeout"),
			WriteTimeout:       viper.GetDuration("server.write_timeout"),
			IdleTimeout:        viper.GetDuration("server.idle_timeout"),
			RateLimitPerMinute: viper.GetInt("server.rate_limit_per_minute"),
			RateLimitBurst:     viper.GetInt("server.rate_limit_burst"),
			MaxBodyBytes:       viper.GetInt64("server.max_body_bytes"),
			MaxBatchBodyBytes:  viper.GetInt64("server.max_batch_body_bytes"),
			CacheTTL:           viper.GetDuration("server.cache_ttl"),
			CacheEntries:       viper.GetInt("server.cache_entries"),
			BasicAuthUsername:  viper.GetString("server.basic_auth_username"),
			BasicAuthPassword:  viper.GetString("server.basic_auth_password"),
		},
	}
	if AppConfig.LogLevel == "" {
		AppConfig.LogLevel = "info"
	}
	return nil
}

// MatchingOptions reads the matching.* keys and validates them.
func MatchingOptions() (models.MatchingOptions, error) {
	opts := models.MatchingOptions{
		CaseSensitive:            viper.GetBool("matching.case_sensitive"),
		FuzzyEnabled:             viper.GetBool("matching.fuzzy_enabled"),
		ExactPhraseOnly:          viper.GetBool("matching.exact_phrase_only"),
		PreserveSpecialChars:     viper.GetBool("matching.preserve_special_chars"),
		MinWordLength:            viper.GetInt("matching.min_word_length"),
		FuzzyThreshold:           viper.GetFloat64("matching.fuzzy_threshold"),
		MinConfidence:            viper.GetFloat64("matching.min_confidence"),
		IncludeSnippets:          viper.GetBool("matching.include_snippets"),
		IncludeURLs:              viper.GetBool("matching.include_urls"),
		FindAllOccurrences:       viper.GetBool("matching.find_all_occurrences"),
		IncludeNearMatches:       viper.GetBool("matching.include_near_matches"),
		MaxAdditionalOccurrences: viper.GetInt("matching.max_additional_occurrences"),
		MaxNearMatches:           viper.GetInt("matching.max_near_matches"),
		FieldWeights: models.FieldWeights{
			Title:   viper.GetFloat64("matching.field_weights.title"),
			Snippet: viper.GetFloat64("matching.field_weights.snippet"),
			URL:     viper.GetFloat64("matching.field_weights.url"),
		},
		FuzzyWeights: models.FuzzyWeights{
			Levenshtein: viper.GetFloat64("matching.fuzzy_weights.levenshtein"),
			Token:       viper.GetFloat64("matching.fuzzy_weights.token"),
			Char:        viper.GetFloat64("matching.fuzzy_weights.char"),
		},
		PartialWeights: models.PartialWeights{
			Ratio:      viper.GetFloat64("matching.partial_weights.ratio"),
			Similarity: viper.GetFloat64("matching.partial_weights.similarity"),
			Proximity:  viper.GetFloat64("matching.partial_weights.proximity"),
		},
	}
	if err := opts.Validate(); err != nil {
		return models.MatchingOptions{}, fmt.Errorf("invalid matching configuration: %w", err)
	}
	return opts, nil
}

// DebugEnabled reports whether debug logging was requested.
func DebugEnabled() bool {
	return AppConfig.LogLevel == "debug"
}
