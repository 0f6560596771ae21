// Nexus orchestrator server — provides the HTTP API, runs the operation
// coordinator and task runner, and streams monitoring events.
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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/trilogy-group/nexus-agents/pkg/api"
	"github.com/trilogy-group/nexus-agents/pkg/artifacts"
	"github.com/trilogy-group/nexus-agents/pkg/cleanup"
	"github.com/trilogy-group/nexus-agents/pkg/config"
	"github.com/trilogy-group/nexus-agents/pkg/coordinator"
	"github.com/trilogy-group/nexus-agents/pkg/database"
	"github.com/trilogy-group/nexus-agents/pkg/dok"
	"github.com/trilogy-group/nexus-agents/pkg/events"
	"github.com/trilogy-group/nexus-agents/pkg/gateway"
	"github.com/trilogy-group/nexus-agents/pkg/ledger"
	"github.com/trilogy-group/nexus-agents/pkg/llm"
	"github.com/trilogy-group/nexus-agents/pkg/mcp"
	"github.com/trilogy-group/nexus-agents/pkg/orchestrator"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	"github.com/trilogy-group/nexus-agents/pkg/version"
)

// sysexits-style codes so operators can tell configuration mistakes apart
// from unreachable dependencies in pod restart loops.
const (
	exitOK          = 0
	exitConfig      = 64
	exitUnavailable = 69
	exitInternal    = 70
	exitInterrupt   = 130
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	os.Exit(run())
}

// run holds the real main so deferred cleanup still executes on every
// exit path.
func run() int {
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

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Nexus",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"providers", stats.Providers,
		"enabled_providers", stats.EnabledProviders,
		"queues", stats.Queues)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return exitConfig
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitUnavailable
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	taskService := services.NewTaskService(dbClient.Client)
	operationService := services.NewOperationService(dbClient.Client)
	dokService := services.NewDOKService(dbClient.Client)
	sourceService := services.NewSourceService(dbClient.Client)
	entityService := services.NewEntityService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	warningsService := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB(), cfg.Bus)
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second, cfg.Bus.KeepaliveInterval)

	// NotifyListener holds a dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		return exitUnavailable
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Search provider infrastructure. Startup fails when any enabled
	// provider cannot connect — prevents silently broken configs.
	mcpFactory := mcp.NewClientFactory(cfg.ProviderRegistry)
	mcpClient, err := mcpFactory.CreateEnabledClient(ctx)
	if err != nil {
		slog.Error("Search provider startup validation failed", "error", err)
		return exitUnavailable
	}
	defer func() {
		if err := mcpClient.Close(); err != nil {
			slog.Error("Error closing provider client", "error", err)
		}
	}()
	if failed := mcpClient.FailedProviders(); len(failed) > 0 {
		slog.Error("Search providers failed startup validation", "failed_providers", failed)
		return exitUnavailable
	}
	slog.Info("Search providers validated", "count", stats.EnabledProviders)

	var healthMonitor *mcp.HealthMonitor
	if stats.EnabledProviders > 0 {
		healthMonitor = mcp.NewHealthMonitor(mcpFactory, cfg.ProviderRegistry, warningsService)
		healthMonitor.Start(ctx)
		defer healthMonitor.Stop()
		slog.Info("Provider health monitor started")
	}

	// 6. LLM sidecar client. grpc.NewClient dials lazily; the connection
	// happens on the first call.
	var llmClient *llm.Client
	if cfg.LLM.ServiceAddr != "" {
		llmClient, err = llm.NewClient(cfg.LLM)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.ServiceAddr, "error", err)
			return exitUnavailable
		}
		defer func() {
			if err := llmClient.Close(); err != nil {
				slog.Error("Error closing LLM client", "error", err)
			}
		}()
		slog.Info("LLM client initialized", "addr", cfg.LLM.ServiceAddr)
	} else {
		slog.Warn("LLM_SERVICE_ADDR not configured, completions will degrade")
	}

	gw := gateway.NewGateway(cfg.ProviderRegistry, mcpClient, llmClient, healthMonitor,
		gateway.RetryPolicy{MaxAttempts: 3, BackoffBase: 500 * time.Millisecond})

	// 7. Coordinator over the operation ledger
	opLedger := ledger.New(dbClient.Client, cfg.Pipeline.MaxEvidenceBytes, nil)
	coord := coordinator.New(podID, cfg.Coordinator, opLedger, eventPublisher, nil)
	coord.Start(ctx)

	// 8. Pipelines and task runner
	store := artifacts.NewStore(cfg.Storage.Root, dbClient.Client, eventPublisher, nil)
	engine := dok.NewEngine(gw, dokService, cfg.Pipeline, nil)
	orch := orchestrator.New(podID, coord, gw, engine, orchestrator.Services{
		Tasks:    taskService,
		Sources:  sourceService,
		DOK:      dokService,
		Entities: entityService,
		Projects: projectService,
	}, store, eventPublisher, cfg.Pipeline, nil)

	runner := orchestrator.NewRunner(podID, orch, taskService, cfg.Runner, nil)
	if recovered, err := runner.RecoverOrphans(ctx); err != nil {
		slog.Error("Failed to recover orphaned tasks", "error", err)
		// Non-fatal — the next sweep retries
	} else if recovered > 0 {
		slog.Info("Recovered orphaned tasks", "count", recovered)
	}
	runner.Start(ctx)

	// 9. Retention sweep
	retention := cleanup.NewService(cfg.Retention, taskService, eventService, nil)
	retention.Start(ctx)
	defer retention.Stop()

	// 10. HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	apiServer := api.NewServer(api.Services{
		Tasks:      taskService,
		Operations: operationService,
		DOK:        dokService,
		Sources:    sourceService,
		Entities:   entityService,
		Projects:   projectService,
		Warnings:   warningsService,
	}, orch, store, connManager, dbClient, nil)
	apiServer.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Nexus started successfully",
		"pod_id", podID,
		"workers", cfg.Coordinator.WorkerCount)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := exitOK
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
		if sig == syscall.SIGINT {
			exitCode = exitInterrupt
		}
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		exitCode = exitInternal
	}

	// 12. Graceful shutdown. Runner first so no new tasks are claimed, then
	// the coordinator drains in-flight operations.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Coordinator.GracefulShutdownTimeout)
	defer cancel()

	if err := runner.Stop(shutdownCtx); err != nil {
		slog.Warn("Runner shutdown timeout exceeded — running tasks will be orphan-recovered")
	} else {
		slog.Info("Runner stopped gracefully")
	}

	coord.Stop()
	slog.Info("Coordinator stopped")

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return exitCode
}
