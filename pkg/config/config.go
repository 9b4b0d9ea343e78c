package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"misteri/pkg/logger"
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string

	RecipeAPIBaseURL  string
	ProfileAPIBaseURL string
	ProfileAPIToken   string
	UpstreamTimeout   time.Duration

	GachaDraws       int
	GachaMaxDraws    int
	GachaConcurrency int

	RequestTimeout time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	RateLimitRequests   int
	RateLimitWindow     time.Duration
	RateLimitTrustProxy bool

	KafkaBrokers              []string
	KafkaTopic                string
	KafkaProducerCompression  string
	KafkaProducerRequireAcks  int
	KafkaProducerMaxAttempts  int
	KafkaProducerBatchTimeout time.Duration

	Log *logger.Logger
}

// Load reads the configuration from the environment, exits the process on
// invalid values and logs the effective settings.
func Load(serviceName string) *Config {
	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads every setting without validating or building a logger.
func FromEnv() *Config {
	return &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		RecipeAPIBaseURL:  strings.TrimSuffix(getEnvStr(EnvRecipeAPIBaseURL, DefaultRecipeAPIBaseURL), "/"),
		ProfileAPIBaseURL: strings.TrimSuffix(getEnvStr(EnvProfileAPIBaseURL, DefaultProfileAPIBaseURL), "/"),
		ProfileAPIToken:   getEnvStr(EnvProfileAPIToken, ""),
		UpstreamTimeout:   getEnvDuration(EnvUpstreamTimeout, DefaultUpstreamTimeout),

		GachaDraws:       getEnvNum(EnvGachaDraws, DefaultGachaDraws),
		GachaMaxDraws:    getEnvNum(EnvGachaMaxDraws, DefaultGachaMaxDraws),
		GachaConcurrency: getEnvNum(EnvGachaConcurrency, DefaultGachaConcurrency),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		RateLimitRequests:   getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:     getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		RateLimitTrustProxy: getEnvBool(EnvRateLimitTrustProxy, DefaultRateLimitTrustProxy),

		KafkaBrokers:              getEnvList(EnvKafkaBrokers),
		KafkaTopic:                getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),
		KafkaProducerCompression:  getEnvStr(EnvKafkaProducerCompression, DefaultKafkaProducerCompression),
		KafkaProducerRequireAcks:  getEnvNum(EnvKafkaProducerRequireAcks, DefaultKafkaProducerRequireAcks),
		KafkaProducerMaxAttempts:  getEnvNum(EnvKafkaProducerMaxAttempts, DefaultKafkaProducerMaxAttempts),
		KafkaProducerBatchTimeout: getEnvDuration(EnvKafkaProducerBatchTimeout, DefaultKafkaProducerBatchTimeout),
	}
}

// EventsEnabled reports whether a Kafka cluster is configured.
func (cfg *Config) EventsEnabled() bool {
	return len(cfg.KafkaBrokers) > 0
}

func (cfg *Config) Validate() error {
	var errors []string
	validate := validator.New()

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if err := validate.Var(cfg.RecipeAPIBaseURL, "required,http_url"); err != nil {
		errors = append(errors, fmt.Sprintf("RecipeAPIBaseURL must be an http(s) URL, got: %q", cfg.RecipeAPIBaseURL))
	}
	if err := validate.Var(cfg.ProfileAPIBaseURL, "required,http_url"); err != nil {
		errors = append(errors, fmt.Sprintf("ProfileAPIBaseURL must be an http(s) URL, got: %q", cfg.ProfileAPIBaseURL))
	}
	if err := validate.Var(cfg.LogLevel, "oneof=debug info warn error"); err != nil {
		errors = append(errors, fmt.Sprintf("LogLevel must be one of debug, info, warn, error, got: %s", cfg.LogLevel))
	}
	if err := validate.Var(cfg.LogFormat, "oneof=json text"); err != nil {
		errors = append(errors, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
	}

	if cfg.UpstreamTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("UpstreamTimeout must be positive, got: %s", cfg.UpstreamTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.GachaMaxDraws <= 0 {
		errors = append(errors, fmt.Sprintf("GachaMaxDraws must be positive, got: %d", cfg.GachaMaxDraws))
	}
	if cfg.GachaDraws <= 0 || cfg.GachaDraws > cfg.GachaMaxDraws {
		errors = append(errors, fmt.Sprintf("GachaDraws (%d) must be between 1 and GachaMaxDraws (%d)", cfg.GachaDraws, cfg.GachaMaxDraws))
	}
	if cfg.GachaConcurrency <= 0 {
		errors = append(errors, fmt.Sprintf("GachaConcurrency must be positive, got: %d", cfg.GachaConcurrency))
	}

	if cfg.RateLimitRequests < 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests cannot be negative, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive when rate limiting is on, got: %s", cfg.RateLimitWindow))
	}

	if cfg.EventsEnabled() {
		if cfg.KafkaTopic == "" {
			errors = append(errors, "KafkaTopic cannot be empty when KafkaBrokers is set")
		}
		if err := validate.Var(cfg.KafkaProducerCompression, "oneof=gzip snappy lz4 zstd"); err != nil {
			errors = append(errors, fmt.Sprintf("KafkaProducerCompression must be gzip, snappy, lz4 or zstd, got: %s", cfg.KafkaProducerCompression))
		}
		if cfg.KafkaProducerMaxAttempts <= 0 {
			errors = append(errors, fmt.Sprintf("KafkaProducerMaxAttempts must be positive, got: %d", cfg.KafkaProducerMaxAttempts))
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"recipe_api_base_url", cfg.RecipeAPIBaseURL,
		"profile_api_base_url", cfg.ProfileAPIBaseURL,
		"upstream_timeout", cfg.UpstreamTimeout,
		"gacha_draws", cfg.GachaDraws,
		"gacha_max_draws", cfg.GachaMaxDraws,
		"gacha_concurrency", cfg.GachaConcurrency,
		"request_timeout", cfg.RequestTimeout,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"rate_limit_trust_proxy", cfg.RateLimitTrustProxy,
		"profile_api_authenticated", cfg.ProfileAPIToken != "",
		"events_enabled", cfg.EventsEnabled(),
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_topic", cfg.KafkaTopic,
	)
}

// NormalizeGachaDraws maps a requested draw count onto the configured range;
// zero or negative means the default.
func (cfg *Config) NormalizeGachaDraws(count int) int {
	if count <= 0 {
		return cfg.GachaDraws
	}
	return min(count, cfg.GachaMaxDraws)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
