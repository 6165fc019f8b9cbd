package config

import (
	"pulsar/pkg/config"
)

// Config stores environment configuration for the Pulsar agent service.
type Config struct {
	Port             string
	QueryServiceURL  string
	MarketDataAPIKey string
	MarketDataAPIURL string
	DefaultTenantID  string
	ClassifierMode   string
	LLMProvider      string
	LLMModel         string
	LLMAPIKey        string
	LLMAPIURL        string
	WebUIEnabled     bool
}

// Classifier modes.
const (
	ClassifierRules = "rules"
	ClassifierLLM   = "llm"
)

// LoadConfig loads the Pulsar configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Port:             config.GetEnv("PORT", "8000"),
		QueryServiceURL:  config.GetEnv("QUERY_SERVICE_URL", "http://localhost:8082"),
		MarketDataAPIKey: config.GetEnv("ALPHA_VANTAGE_API_KEY", ""),
		MarketDataAPIURL: config.GetEnv("ALPHA_VANTAGE_API_URL", ""),
		DefaultTenantID:  config.GetEnv("DEFAULT_TENANT_ID", "DEFAULT"),
		ClassifierMode:   config.GetEnv("CLASSIFIER_MODE", ClassifierRules),
		LLMProvider:      config.GetEnv("LLM_PROVIDER", ""),
		LLMModel:         config.GetEnv("LLM_MODEL", ""),
		LLMAPIKey:        config.GetEnv("LLM_API_KEY", ""),
		LLMAPIURL:        config.GetEnv("LLM_API_URL", ""),
		WebUIEnabled:     config.GetEnvBool("WEBUI_ENABLED", true),
	}
}
