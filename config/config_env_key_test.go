package config

import (
	"net/url"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"marketplace": map[string]any{
			"baseUrl": "http://localhost:8000",
		},
		"identity": map[string]any{
			"baseUrl": "http://localhost:8000/auth",
		},
		"session": map[string]any{
			"storagePath":   "data",
			"secureCookies": true,
		},
		"guard": map[string]any{
			"verifyRemote": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MARKETPLACE_BASEURL", want: "marketplace.baseUrl"},
		{envKey: "IDENTITY_BASEURL", want: "identity.baseUrl"},
		{envKey: "SESSION_STORAGEPATH", want: "session.storagePath"},
		{envKey: "SESSION_SECURECOOKIES", want: "session.secureCookies"},
		{envKey: "GUARD_VERIFYREMOTE", want: "guard.verifyRemote"},
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

// The identity and marketplace clients append their own endpoint paths, so
// the configured base URLs must stay bare hosts.
func TestSampleConfig_BaseURLsCarryNoPath(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("load sample config: %v", err)
	}

	for name, raw := range map[string]string{
		"identity":    cfg.Identity.BaseURL,
		"marketplace": cfg.Marketplace.BaseURL,
	} {
		parsed, err := url.Parse(raw)
		if err != nil {
			t.Fatalf("%s baseUrl %q: %v", name, raw, err)
		}
		if parsed.Path != "" && parsed.Path != "/" {
			t.Fatalf("%s baseUrl %q must not carry a path", name, raw)
		}
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session == nil || cfg.Guard == nil {
		t.Fatal("applyDefaults must materialize the session and guard sections")
	}
	if cfg.Session.StoragePath != defaultSessionDir {
		t.Fatalf("storagePath = %q, want %q", cfg.Session.StoragePath, defaultSessionDir)
	}
	if cfg.Session.AccessTTL != 15*time.Minute {
		t.Fatalf("accessTtl = %s, want 15m", cfg.Session.AccessTTL)
	}
	if cfg.Session.RefreshTTL != 30*24*time.Hour {
		t.Fatalf("refreshTtl = %s, want 720h", cfg.Session.RefreshTTL)
	}
	if len(cfg.Guard.PublicPaths) == 0 {
		t.Fatal("guard must default to the public auth pages")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{
			StoragePath: "/var/lib/dealerdesk",
			AccessTTL:   5 * time.Minute,
		},
		Guard: &GuardConfig{PublicPaths: []string{"/public"}},
	}
	applyDefaults(cfg)

	if cfg.Session.StoragePath != "/var/lib/dealerdesk" {
		t.Fatalf("storagePath overwritten: %q", cfg.Session.StoragePath)
	}
	if cfg.Session.AccessTTL != 5*time.Minute {
		t.Fatalf("accessTtl overwritten: %s", cfg.Session.AccessTTL)
	}
	if len(cfg.Guard.PublicPaths) != 1 || cfg.Guard.PublicPaths[0] != "/public" {
		t.Fatalf("publicPaths overwritten: %v", cfg.Guard.PublicPaths)
	}
}
