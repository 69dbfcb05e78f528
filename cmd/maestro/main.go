// Maestro runtime server. Hosts the conversation state machine, the agent
// registry, the execution engine, and the streaming HTTP API the gateway
// talks to.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/api"
	"github.com/maestro-ai/maestro/pkg/approval"
	"github.com/maestro-ai/maestro/pkg/config"
	"github.com/maestro-ai/maestro/pkg/database"
	"github.com/maestro-ai/maestro/pkg/engine"
	"github.com/maestro-ai/maestro/pkg/events"
	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/runtime"
	"github.com/maestro-ai/maestro/pkg/services"
	"github.com/maestro-ai/maestro/pkg/session"
	"github.com/maestro-ai/maestro/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting maestro runtime",
		"version", version.Full(),
		"http_port", cfg.HTTPPort)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// Eventing
	bus := events.NewBus()
	metrics := events.NewMetricsCollector()
	detach := metrics.Attach(bus)
	defer detach()

	// Domain services. Multi-step writes go through the unit of work so
	// transaction timings land in the metrics.
	uow := services.NewUnitOfWork(dbClient.Client, logger, metrics)
	conversationService := services.NewConversationService(dbClient.Client, uow)
	planService := services.NewPlanService(dbClient.Client, uow)
	approvalService := services.NewApprovalService(dbClient.Client)
	contextService := services.NewAgentContextService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	auditLog := events.NewAuditLog(eventService, bus)

	// Approval policy
	policy := approval.DefaultPolicy()
	if cfg.ApprovalPolicyPath != "" {
		policy, err = approval.LoadPolicy(cfg.ApprovalPolicyPath)
		if err != nil {
			logger.Error("Failed to load approval policy",
				"path", cfg.ApprovalPolicyPath, "error", err)
			os.Exit(1)
		}
		logger.Info("Approval policy loaded", "path", cfg.ApprovalPolicyPath)
	}
	approvalManager := approval.NewManager(policy, approvalService, auditLog)

	// LLM client and agents.
	// grpc.NewClient dials lazily; the connection happens on the first RPC.
	llmClient, err := agent.NewGRPCLLMClient(cfg.LLMProxyURL, cfg.LiteLLMAPIKey)
	if err != nil {
		logger.Error("Failed to initialize LLM client", "addr", cfg.LLMProxyURL, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			logger.Error("Error closing LLM client", "error", err)
		}
	}()

	registry := agent.NewRegistry()
	for _, agentType := range []string{agent.TypeCoder, agent.TypeDebug, agent.TypeExplain} {
		registry.Register(agent.NewLLMAgent(agentType, llmClient, cfg.DefaultModel))
	}
	classifier := agent.NewClassifier(llmClient, cfg.DefaultModel)
	architect := agent.NewArchitect(llmClient, cfg.DefaultModel)

	// Execution engine
	dedup := engine.NewDeduplicator(cfg.DedupTTL, cfg.DedupMaxEntries)
	executor := engine.NewSubtaskExecutor(planService, conversationService, registry, approvalManager, nil, logger)
	execEngine := engine.NewEngine(planService, executor, approvalManager, dedup, cfg.MaxParallelTasks, logger)

	// Session state
	locks := session.NewLockManager()
	machine := fsm.NewOrchestrator(runtime.NewContextPersister(contextService), logger)

	coordinator := runtime.NewCoordinator(runtime.Config{
		Locks:         locks,
		Machine:       machine,
		Conversations: conversationService,
		Plans:         planService,
		Contexts:      contextService,
		Approvals:     approvalManager,
		Engine:        execEngine,
		Registry:      registry,
		Classifier:    classifier,
		Architect:     architect,
		Audit:         auditLog,
		Logger:        logger,
		StreamTimeout: cfg.AgentStreamTimeout,
	})

	janitorCtx, janitorCancel := context.WithCancel(ctx)
	defer janitorCancel()
	janitor := runtime.NewJanitor(conversationService, locks, machine,
		cfg.ConversationTTL, cfg.CleanupInterval, logger)
	go janitor.Run(janitorCtx)

	server := api.NewServer(api.ServerConfig{
		Coordinator:    coordinator,
		Conversations:  conversationService,
		Contexts:       contextService,
		Approvals:      approvalManager,
		EventStore:     eventService,
		Metrics:        metrics,
		Audit:          auditLog,
		Registry:       registry,
		DB:             dbClient,
		Logger:         logger,
		InternalAPIKey: cfg.InternalAPIKey,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Maestro runtime stopped")
}
