package main

import (
	"pulsar/internal/agent"
	pulsarconfig "pulsar/internal/config"
	"pulsar/internal/gateway"
	"pulsar/internal/tools"
	"pulsar/internal/webui"
	"pulsar/pkg/clients/alphavantage"
	"pulsar/pkg/clients/queryservice"
	"pulsar/pkg/config"
	"pulsar/pkg/llm"
	"pulsar/pkg/logging"
	"pulsar/pkg/monitoring"
	"pulsar/pkg/server"
	"pulsar/pkg/version"

	"github.com/gin-gonic/gin"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("pulsar")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Pulsar (Market Data Chat Gateway)")

	cfg := pulsarconfig.LoadConfig()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("pulsar", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("pulsar", version.Version, version.GitCommit)

	// Add health checks
	healthChecker.AddCheck("query_service", monitoring.HTTPServiceHealthCheck("query_service", cfg.QueryServiceURL+"/health"))
	healthChecker.AddCheck("configuration", monitoring.ConfigurationHealthCheck(map[string]string{
		"QUERY_SERVICE_URL": cfg.QueryServiceURL,
		"DEFAULT_TENANT_ID": cfg.DefaultTenantID,
	}))

	// Data tool clients
	queryClient := queryservice.NewClient(cfg.QueryServiceURL)
	var marketOpts []alphavantage.Option
	if cfg.MarketDataAPIURL != "" {
		marketOpts = append(marketOpts, alphavantage.WithBaseURL(cfg.MarketDataAPIURL))
	}
	marketClient := alphavantage.NewClient(cfg.MarketDataAPIKey, marketOpts...)

	historical := tools.NewHistoricalTool(queryClient, cfg.DefaultTenantID)
	intraday := tools.NewIntradayTool(marketClient)

	classifier, err := buildClassifier(cfg, historical, intraday)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize classifier")
	}
	logger.WithField("mode", cfg.ClassifierMode).Info("Classifier initialized")

	routingAgent, err := agent.New(agent.Config{
		Classifier: classifier,
		Historical: historical,
		Intraday:   intraday,
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize agent")
	}

	// Setup router
	router := server.SetupServiceRouter(logger, "pulsar", healthChecker, metricsCollector)
	gateway.RegisterRoutes(router, gateway.NewChatHandler(routingAgent, logger))

	if cfg.WebUIEnabled {
		uiHandler := webui.Handler(webui.Config{
			APIURL:          config.GetEnv("PUBLIC_API_URL", ""),
			DefaultTenantID: cfg.DefaultTenantID,
		})
		router.NoRoute(gin.WrapH(uiHandler))
		logger.Info("Web dashboard enabled at /")
	}

	// Start server with graceful shutdown
	serverConfig := server.DefaultConfig("pulsar", cfg.Port)
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}
}

func buildClassifier(cfg pulsarconfig.Config, toolset ...tools.Tool) (agent.Classifier, error) {
	switch cfg.ClassifierMode {
	case pulsarconfig.ClassifierLLM:
		provider, err := llm.NewProvider(llm.Config{
			Provider: cfg.LLMProvider,
			Model:    cfg.LLMModel,
			APIKey:   cfg.LLMAPIKey,
			APIURL:   cfg.LLMAPIURL,
		})
		if err != nil {
			return nil, err
		}
		return agent.NewLLMClassifier(provider, toolset...), nil
	default:
		return agent.NewRuleClassifier(), nil
	}
}
