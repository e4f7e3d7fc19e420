package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"token": map[string]any{
			"expiresIn": "24h",
			"secret":    "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
		"env": map[string]any{
			"serviceName": "taskboard",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "TOKEN_EXPIRESIN", want: "token.expiresIn"},
		{envKey: "TOKEN_SECRET", want: "token.secret"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
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
	var cfg Config
	cfg.applyDefaults()

	if cfg.HTTP.Port != 4000 {
		t.Fatalf("default port = %d, want 4000", cfg.HTTP.Port)
	}
	if cfg.Env.Env != "development" {
		t.Fatalf("default env = %q, want development", cfg.Env.Env)
	}
	if cfg.Token.Secret != DefaultTokenSecret {
		t.Fatalf("default secret = %q, want %q", cfg.Token.Secret, DefaultTokenSecret)
	}
	if cfg.Token.ExpiresIn.Hours() != 24 {
		t.Fatalf("default token TTL = %v, want 24h", cfg.Token.ExpiresIn)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("default bcrypt cost = %d, want 10", cfg.Auth.BcryptCost)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	var cfg Config
	cfg.HTTP.Port = 8080
	cfg.Token.Secret = "real_secret"
	cfg.Auth.BcryptCost = 12
	cfg.applyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Fatalf("port overwritten: %d", cfg.HTTP.Port)
	}
	if cfg.Token.Secret != "real_secret" {
		t.Fatalf("secret overwritten: %q", cfg.Token.Secret)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("bcrypt cost overwritten: %d", cfg.Auth.BcryptCost)
	}
}
