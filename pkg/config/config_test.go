package config

import (
	"strings"
	"testing"
	"time"
)

const minimalConfig = `
session:
  secret: "0123456789abcdef0123456789abcdef"
auth:
  domain: "miniapp.example.com"
worldid:
  app_id: "app_staging_123"
`

func TestParse_AppliesDefaults(t *testing.T) {
	t.Setenv(EnvSessionSecret, "")
	t.Setenv(EnvDatabasePassword, "")
	t.Setenv(EnvWorldIDAppID, "")

	cfg, err := Parse([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Server.Port != 8081 {
		t.Fatalf("expected default port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Session.TTL != 168*time.Hour {
		t.Fatalf("expected default session ttl 168h, got %s", cfg.Session.TTL)
	}
	if cfg.Streak.Timezone != "UTC" {
		t.Fatalf("expected default timezone UTC, got %q", cfg.Streak.Timezone)
	}
	if cfg.Compliance.MinimumAge != 18 {
		t.Fatalf("expected minimum age 18, got %d", cfg.Compliance.MinimumAge)
	}
	want := []string{"US", "FR", "TR", "CN", "KR", "SG"}
	if strings.Join(cfg.Compliance.RestrictedCountries, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected restricted countries: %v", cfg.Compliance.RestrictedCountries)
	}
	if cfg.Auth.NonceTTL != 5*time.Minute {
		t.Fatalf("expected nonce ttl 5m, got %s", cfg.Auth.NonceTTL)
	}
}

func TestParse_OverridesAndNormalizesCountries(t *testing.T) {
	t.Setenv(EnvSessionSecret, "")
	t.Setenv(EnvDatabasePassword, "s3cret")
	t.Setenv(EnvWorldIDAppID, "")

	doc := minimalConfig + `
server:
  port: 9000
  read_timeout: 5s
compliance:
  restricted_countries: ["us", " gb "]
streak:
  timezone: "Europe/Berlin"
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Password != "s3cret" {
		t.Fatalf("expected password from env, got %q", cfg.Database.Password)
	}
	if got := strings.Join(cfg.Compliance.RestrictedCountries, ","); got != "US,GB" {
		t.Fatalf("expected normalized countries US,GB, got %s", got)
	}
	loc, err := cfg.Streak.Location()
	if err != nil {
		t.Fatalf("Location() failed: %v", err)
	}
	if loc.String() != "Europe/Berlin" {
		t.Fatalf("unexpected location %s", loc)
	}
}

func TestParse_RejectsShortSessionSecret(t *testing.T) {
	t.Setenv(EnvSessionSecret, "too-short")
	t.Setenv(EnvWorldIDAppID, "")

	_, err := Parse([]byte(minimalConfig))
	if err == nil {
		t.Fatal("expected validation error for short session secret")
	}
	if !strings.Contains(err.Error(), "Secret") {
		t.Fatalf("expected error to name the secret field, got %v", err)
	}
}

func TestParse_RejectsUnknownTimezone(t *testing.T) {
	t.Setenv(EnvSessionSecret, "")
	t.Setenv(EnvWorldIDAppID, "")

	_, err := Parse([]byte(minimalConfig + "\nstreak:\n  timezone: \"Mars/Olympus\"\n"))
	if err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestParse_WorldIDAppIDRequiredWhenEnabled(t *testing.T) {
	t.Setenv(EnvSessionSecret, "")
	t.Setenv(EnvWorldIDAppID, "")

	doc := `
session:
  secret: "0123456789abcdef0123456789abcdef"
auth:
  domain: "miniapp.example.com"
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Fatal("expected error when worldid is enabled without app_id")
	}

	if _, err := Parse([]byte(doc + "worldid:\n  enabled: false\n")); err != nil {
		t.Fatalf("expected disabled worldid to pass validation, got %v", err)
	}
}

func TestLoadAPIServer_ExampleConfig(t *testing.T) {
	t.Setenv(EnvSessionSecret, "")
	t.Setenv(EnvDatabasePassword, "")
	t.Setenv(EnvWorldIDAppID, "")

	cfg, err := LoadAPIServer("../../config.example.yaml")
	if err != nil {
		t.Fatalf("LoadAPIServer() failed: %v", err)
	}
	if cfg.WorldID.Enabled {
		t.Fatal("expected World ID to be disabled in the example config")
	}
	if cfg.Auth.ChainID != 480 || cfg.Streak.MaxRetries != 3 {
		t.Fatalf("unexpected example config %+v", cfg)
	}
}
