// Package api exposes the runtime over HTTP: the streaming message
// endpoint consumed by the gateway, plus read-only session, approval, and
// observability routes.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/approval"
	"github.com/maestro-ai/maestro/pkg/database"
	"github.com/maestro-ai/maestro/pkg/events"
	"github.com/maestro-ai/maestro/pkg/runtime"
	"github.com/maestro-ai/maestro/pkg/services"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	coordinator   *runtime.Coordinator
	conversations *services.ConversationService
	contexts      *services.AgentContextService
	approvals     *approval.Manager
	eventStore    *services.EventService
	metrics       *events.MetricsCollector
	audit         *events.AuditLog
	registry      *agent.Registry
	db            *database.Client
	logger        *slog.Logger

	internalAPIKey string
}

// ServerConfig carries the Server's dependencies.
type ServerConfig struct {
	Coordinator    *runtime.Coordinator
	Conversations  *services.ConversationService
	Contexts       *services.AgentContextService
	Approvals      *approval.Manager
	EventStore     *services.EventService
	Metrics        *events.MetricsCollector
	Audit          *events.AuditLog
	Registry       *agent.Registry
	DB             *database.Client
	Logger         *slog.Logger
	InternalAPIKey string
}

// NewServer creates a new API server
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		coordinator:    cfg.Coordinator,
		conversations:  cfg.Conversations,
		contexts:       cfg.Contexts,
		approvals:      cfg.Approvals,
		eventStore:     cfg.EventStore,
		metrics:        cfg.Metrics,
		audit:          cfg.Audit,
		registry:       cfg.Registry,
		db:             cfg.DB,
		logger:         cfg.Logger,
		internalAPIKey: cfg.InternalAPIKey,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))

	r.GET("/health", s.Health)

	internal := r.Group("/", InternalAuth(s.internalAPIKey))
	{
		internal.POST("/agent/message/stream", s.StreamMessage)
		internal.GET("/agents", s.ListAgents)
		internal.GET("/agents/:session_id/current", s.GetCurrentAgent)
		internal.GET("/sessions", s.ListSessions)
		internal.POST("/sessions", s.CreateSession)
		internal.GET("/sessions/:session_id/history", s.GetSessionHistory)
		internal.GET("/sessions/:session_id/pending-approvals", s.ListPendingApprovals)
		internal.GET("/events/metrics", s.GetMetrics)
		internal.GET("/events/metrics/session/:session_id", s.GetSessionMetrics)
		internal.GET("/events/metrics/sessions", s.GetSessionActivity)
		internal.GET("/events/audit-log", s.GetAuditLog)
		internal.GET("/events/stats", s.GetEventStats)
		internal.GET("/events/session/:session_id", s.ListSessionEvents)
	}

	return r
}

// Health handles GET /health
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
