package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/venues")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PageSize != 5 {
		t.Fatalf("expected default page size 5, got %d", cfg.PageSize)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token TTL 24h, got %s", cfg.TokenTTL)
	}
	if cfg.StorageBucket != "venue-pictures" {
		t.Fatalf("unexpected default bucket: %s", cfg.StorageBucket)
	}
}

func TestLoadRejectsMalformedTokenTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_TTL", "twenty-four-hours")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed JWT_TTL")
	}
}

func TestLoadRejectsNonPositiveTokenTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_TTL", "-1h")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative JWT_TTL")
	}
}

func TestLoadRequiresCoreSettings(t *testing.T) {
	cases := []string{"DATABASE_URL", "JWT_SECRET", "STORAGE_ENDPOINT"}

	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(missing, "")

			if _, err := Load(); err == nil {
				t.Fatalf("expected error when %s is unset", missing)
			}
		})
	}
}
