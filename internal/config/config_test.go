package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"FAQ_CACHE_TTL", "FAQ_MIN_SCORE", "KEYWORD_FUZZY_THRESHOLD", "CACHE_WARM_INTERVAL", "RATE_LIMIT_MAX"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.FAQCacheTTL != 5*time.Minute {
		t.Errorf("FAQCacheTTL = %v, want 5m", cfg.FAQCacheTTL)
	}
	if cfg.FAQMinScore != 0.5 {
		t.Errorf("FAQMinScore = %v, want 0.5", cfg.FAQMinScore)
	}
	if cfg.KeywordFuzzyThreshold != 0.6 {
		t.Errorf("KeywordFuzzyThreshold = %v, want 0.6", cfg.KeywordFuzzyThreshold)
	}
	if cfg.CacheWarmInterval != 0 {
		t.Errorf("CacheWarmInterval = %v, want 0", cfg.CacheWarmInterval)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %v, want 100", cfg.RateLimitMax)
	}
}

func TestLoadDoesNotEnableSeedingByDefault(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SEED_DEV_DATA", "")

	cfg := Load()

	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.IsDev() || cfg.SeedDevData {
		t.Errorf("dev seeding enabled by default: IsDev=%v SeedDevData=%v", cfg.IsDev(), cfg.SeedDevData)
	}

	t.Setenv("ENV", "dev")
	if !Load().IsDev() {
		t.Error("ENV=dev should be a development environment")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FAQ_CACHE_TTL", "30s")
	t.Setenv("FAQ_MIN_SCORE", "1.25")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg := Load()

	if cfg.FAQCacheTTL != 30*time.Second {
		t.Errorf("FAQCacheTTL = %v, want 30s", cfg.FAQCacheTTL)
	}
	if cfg.FAQMinScore != 1.25 {
		t.Errorf("FAQMinScore = %v, want 1.25", cfg.FAQMinScore)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax with invalid value = %v, want default 100", cfg.RateLimitMax)
	}
}

func TestHasGoogleCredentials(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{"none", Config{}, false},
		{"credentials file", Config{GoogleCredentialsFile: "/etc/sa.json"}, true},
		{"api key", Config{GoogleAPIKey: "key"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.HasGoogleCredentials(); got != tt.expected {
				t.Errorf("HasGoogleCredentials() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseYAMLConfig(t *testing.T) {
	data := []byte(`
intents:
  finance: FeesIntent
responses:
  unknown: "No idea, sorry."
`)

	cfg, err := ParseYAMLConfig(data)
	if err != nil {
		t.Fatalf("ParseYAMLConfig() error = %v", err)
	}
	if cfg.Intents.Finance != "FeesIntent" {
		t.Errorf("Intents.Finance = %q, want FeesIntent", cfg.Intents.Finance)
	}
	if cfg.Intents.Dashboard != "DashboardIntent" {
		t.Errorf("Intents.Dashboard = %q, want default", cfg.Intents.Dashboard)
	}
	if cfg.Responses.Unknown != "No idea, sorry." {
		t.Errorf("Responses.Unknown = %q", cfg.Responses.Unknown)
	}
	if cfg.Responses.Finance == "" {
		t.Error("Responses.Finance should fall back to the default template")
	}
}

func TestLoadYAMLConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", t.TempDir()+"/missing.yaml")

	cfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	if cfg.Intents.Attendance != "AttendanceIntent" {
		t.Errorf("Intents.Attendance = %q, want default", cfg.Intents.Attendance)
	}
}
