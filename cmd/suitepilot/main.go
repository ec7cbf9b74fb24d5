// SuitePilot control plane server. Provides the chat HTTP API, runs the
// specialist agents behind the coordinator, and governs every NetSuite
// side effect through the tool dispatcher.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/api"
	"github.com/suiteops/suitepilot/pkg/assertions"
	"github.com/suiteops/suitepilot/pkg/config"
	"github.com/suiteops/suitepilot/pkg/coordinator"
	"github.com/suiteops/suitepilot/pkg/database"
	"github.com/suiteops/suitepilot/pkg/governance"
	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/netsuite"
	"github.com/suiteops/suitepilot/pkg/resolver"
	"github.com/suiteops/suitepilot/pkg/sandbox"
	"github.com/suiteops/suitepilot/pkg/services"
	"github.com/suiteops/suitepilot/pkg/tools"
	"github.com/suiteops/suitepilot/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	auditService := services.NewAuditService(dbClient.Client)
	workspaceService := services.NewWorkspaceService(dbClient.Client)
	changesetService := services.NewChangesetService(dbClient.Client)
	policyService := services.NewPolicyService(dbClient.Client)
	runService := services.NewRunService(dbClient.Client)
	mappingService := services.NewMappingService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Governance: rate limiter, metrics, and the audited executor
	limiter := governance.NewRateLimiter(nil)
	metrics := governance.NewMetrics(nil)
	governor := governance.NewGovernor(limiter, auditService, metrics)

	// 5. LLM client
	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "family", cfg.LLM.Family, "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "family", cfg.LLM.Family, "model", cfg.LLM.DefaultModel)

	// 6. NetSuite query backend: the stub is always wired for demo tools,
	// the real REST client only in rest mode.
	stub := netsuite.NewStubExecutor()
	var queries tools.QueryExecutor = stub
	if cfg.NetSuite.Mode == config.ModeREST {
		key, err := cfg.SecretKey()
		if err != nil {
			slog.Error("Failed to load NetSuite secret key", "error", err)
			os.Exit(1)
		}
		secrets, err := netsuite.NewSecretStore(key)
		if err != nil {
			slog.Error("Failed to initialize secret store", "error", err)
			os.Exit(1)
		}
		creds := netsuite.NewStaticCredentialSource(secrets, cfg.NetSuite.Credentials)
		queries = netsuite.NewRESTClient(creds)
		slog.Info("NetSuite REST client initialized", "tenants", len(cfg.NetSuite.Credentials))
	} else {
		slog.Info("NetSuite stub executor active")
	}

	// 7. Sandbox runner, assertions, and the deploy gate
	runner := sandbox.NewRunner(dbClient.Client, runService, auditService, metrics, nil)
	assertionExecutor := assertions.NewExecutor(dbClient.Client, runService, auditService, policyService, queries)
	gate := assertions.NewGate(runService, auditService)

	// 8. Tool catalog, registry, and dispatcher
	catalog := &tools.Catalog{
		Workspaces: workspaceService,
		Changesets: changesetService,
		Queries:    queries,
		QueryStub:  stub,
		Recon:      netsuite.NewRecon(queries),
		Reports:    netsuite.NewExporter(queries),
		Scheduler:  netsuite.NewMemoryScheduler(),
		Runs:       runner,
		Assertions: assertionExecutor,
		Gate:       gate,
	}
	registry, err := tools.NewRegistry(catalog.Descriptors())
	if err != nil {
		slog.Error("Failed to build tool registry", "error", err)
		os.Exit(1)
	}
	remote := tools.NewRemoteClient(cfg.Connectors, version.AppName, version.GitCommit)
	defer func() {
		if err := remote.Close(); err != nil {
			slog.Error("Error closing connector sessions", "error", err)
		}
	}()
	dispatcher := tools.NewDispatcher(registry, governor, remote)
	slog.Info("Tool dispatcher initialized",
		"local_tools", len(catalog.Descriptors()),
		"connectors", len(cfg.Connectors))

	// 9. Specialist agents and the coordinator
	deps := agent.Deps{
		Client:     llmClient,
		Registry:   registry,
		Dispatcher: dispatcher,
		Workspaces: workspaceService,
	}
	specialists := make([]*agent.Specialist, 0, len(cfg.Agents))
	for _, agentCfg := range cfg.Agents {
		specialists = append(specialists, agent.New(agentCfg, deps))
	}
	entityResolver := resolver.New(mappingService, llmClient)
	coord := coordinator.New(llmClient, specialists, policyService, entityResolver, cfg.Coordinator.TokenBudget)
	slog.Info("Coordinator initialized", "agents", len(specialists))

	// 10. HTTP server
	httpServer := api.NewServer(cfg, dbClient, coord, changesetService, auditService)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("SuitePilot started", "version", version.Full())

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}
