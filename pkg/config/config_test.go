package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:                     "8080",
		LogLevel:                 "info",
		LogFormat:                "json",
		RecipeAPIBaseURL:         DefaultRecipeAPIBaseURL,
		ProfileAPIBaseURL:        DefaultProfileAPIBaseURL,
		UpstreamTimeout:          time.Second,
		GachaDraws:               10,
		GachaMaxDraws:            25,
		GachaConcurrency:         5,
		RequestTimeout:           time.Second,
		ReadTimeout:              time.Second,
		WriteTimeout:             time.Second,
		IdleTimeout:              time.Second,
		ShutdownTimeout:          time.Second,
		KafkaTopic:               DefaultKafkaTopic,
		KafkaProducerCompression: "snappy",
		KafkaProducerMaxAttempts: 3,
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{EnvPort, EnvRecipeAPIBaseURL, EnvGachaDraws, EnvKafkaBrokers} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.RecipeAPIBaseURL != DefaultRecipeAPIBaseURL {
		t.Errorf("RecipeAPIBaseURL = %q", cfg.RecipeAPIBaseURL)
	}
	if cfg.GachaDraws != DefaultGachaDraws {
		t.Errorf("GachaDraws = %d, want %d", cfg.GachaDraws, DefaultGachaDraws)
	}
	if cfg.EventsEnabled() {
		t.Error("events should be disabled without brokers")
	}
	if cfg.RateLimitTrustProxy {
		t.Error("forwarded headers should not be trusted by default")
	}
}

func TestFromEnv_RateLimitTrustProxy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"false", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvRateLimitTrustProxy, tt.value)
			if got := FromEnv().RateLimitTrustProxy; got != tt.want {
				t.Errorf("RateLimitTrustProxy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvRecipeAPIBaseURL, "http://localhost:3000/api/")
	t.Setenv(EnvUpstreamTimeout, "2s")
	t.Setenv(EnvGachaDraws, "not-a-number")
	t.Setenv(EnvKafkaBrokers, " kafka-1:9092, ,kafka-2:9092 ")

	cfg := FromEnv()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.RecipeAPIBaseURL != "http://localhost:3000/api" {
		t.Errorf("trailing slash should be trimmed, got %q", cfg.RecipeAPIBaseURL)
	}
	if cfg.UpstreamTimeout != 2*time.Second {
		t.Errorf("UpstreamTimeout = %s", cfg.UpstreamTimeout)
	}
	if cfg.GachaDraws != DefaultGachaDraws {
		t.Errorf("unparsable number should fall back, got %d", cfg.GachaDraws)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "kafka-1:9092" || cfg.KafkaBrokers[1] != "kafka-2:9092" {
		t.Errorf("KafkaBrokers = %v", cfg.KafkaBrokers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "0" }, "Port must be between"},
		{"bad recipe url", func(c *Config) { c.RecipeAPIBaseURL = "themealdb" }, "RecipeAPIBaseURL"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
		{"draws above max", func(c *Config) { c.GachaDraws = 30 }, "GachaDraws (30)"},
		{"zero concurrency", func(c *Config) { c.GachaConcurrency = 0 }, "GachaConcurrency"},
		{"zero timeout", func(c *Config) { c.UpstreamTimeout = 0 }, "UpstreamTimeout"},
		{
			"kafka compression checked only with brokers",
			func(c *Config) { c.KafkaProducerCompression = "brotli" },
			"",
		},
		{
			"bad kafka compression",
			func(c *Config) {
				c.KafkaBrokers = []string{"localhost:9092"}
				c.KafkaProducerCompression = "brotli"
			},
			"KafkaProducerCompression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNormalizeGachaDraws(t *testing.T) {
	cfg := validConfig()

	tests := []struct {
		in, want int
	}{
		{0, 10},
		{-3, 10},
		{4, 4},
		{25, 25},
		{100, 25},
	}
	for _, tt := range tests {
		if got := cfg.NormalizeGachaDraws(tt.in); got != tt.want {
			t.Errorf("NormalizeGachaDraws(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimitRequests = -1
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "RateLimitRequests") {
		t.Errorf("expected RateLimitRequests error, got %v", err)
	}

	cfg = validConfig()
	cfg.RateLimitRequests = 10
	cfg.RateLimitWindow = 0
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "RateLimitWindow") {
		t.Errorf("expected RateLimitWindow error, got %v", err)
	}
}
