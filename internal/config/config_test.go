package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("QUERY_SERVICE_URL", "")
	t.Setenv("ALPHA_VANTAGE_API_KEY", "")
	t.Setenv("CLASSIFIER_MODE", "")

	cfg := LoadConfig()
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.QueryServiceURL != "http://localhost:8082" {
		t.Errorf("unexpected query service URL %s", cfg.QueryServiceURL)
	}
	if cfg.DefaultTenantID != "DEFAULT" {
		t.Errorf("expected DEFAULT tenant, got %s", cfg.DefaultTenantID)
	}
	if cfg.ClassifierMode != ClassifierRules {
		t.Errorf("expected rules classifier default, got %s", cfg.ClassifierMode)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("QUERY_SERVICE_URL", "http://query:8082")
	t.Setenv("ALPHA_VANTAGE_API_KEY", "secret")
	t.Setenv("CLASSIFIER_MODE", "llm")

	cfg := LoadConfig()
	if cfg.QueryServiceURL != "http://query:8082" {
		t.Errorf("unexpected query service URL %s", cfg.QueryServiceURL)
	}
	if cfg.MarketDataAPIKey != "secret" {
		t.Errorf("expected key from env, got %s", cfg.MarketDataAPIKey)
	}
	if cfg.ClassifierMode != ClassifierLLM {
		t.Errorf("expected llm classifier, got %s", cfg.ClassifierMode)
	}
}
