package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"media": map[string]any{
			"bucketURL":     "",
			"publicBaseURL": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketURL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("BcryptCost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if cfg.Token.AccessTTL != 15*time.Minute {
		t.Fatalf("AccessTTL = %s, want 15m", cfg.Token.AccessTTL)
	}
	if cfg.Token.RefreshTTL != 7*24*time.Hour {
		t.Fatalf("RefreshTTL = %s, want 168h", cfg.Token.RefreshTTL)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.BcryptCost = 12
	cfg.Token.AccessTTL = time.Hour
	cfg.Token.RefreshTTL = 30 * 24 * time.Hour
	cfg.ApplyDefaults()

	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("BcryptCost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Token.AccessTTL != time.Hour {
		t.Fatalf("AccessTTL = %s, want 1h", cfg.Token.AccessTTL)
	}
	if cfg.Token.RefreshTTL != 30*24*time.Hour {
		t.Fatalf("RefreshTTL = %s, want 720h", cfg.Token.RefreshTTL)
	}
}
