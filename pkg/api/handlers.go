package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/pkg/models"
)

// ListAgents handles GET /agents
func (s *Server) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": s.registry.Types()})
}

// GetCurrentAgent handles GET /agents/:session_id/current
func (s *Server) GetCurrentAgent(c *gin.Context) {
	sessionID := c.Param("session_id")

	ac, err := s.contexts.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id":   ac.SessionID,
		"active_agent": ac.ActiveAgent,
		"fsm_state":    ac.FSMState,
	})
}

// ListSessions handles GET /sessions
func (s *Server) ListSessions(c *gin.Context) {
	limit := intQuery(c, "limit", 0)

	sessions, err := s.conversations.ListSessions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// CreateSession handles POST /sessions. Sessions are also created lazily on
// the first streamed message; this exists for clients that want the id up
// front.
func (s *Server) CreateSession(c *gin.Context) {
	conv, _, err := s.conversations.GetOrCreate(c.Request.Context(), uuid.New().String())
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// GetSessionHistory handles GET /sessions/:session_id/history
func (s *Server) GetSessionHistory(c *gin.Context) {
	sessionID := c.Param("session_id")
	limit := intQuery(c, "limit", 0)

	messages, err := s.conversations.GetHistory(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"messages":   messages,
	})
}

// ListPendingApprovals handles GET /sessions/:session_id/pending-approvals
func (s *Server) ListPendingApprovals(c *gin.Context) {
	sessionID := c.Param("session_id")

	var kind *models.ApprovalKind
	if k := c.Query("kind"); k != "" {
		ak := models.ApprovalKind(k)
		if ak != models.ApprovalKindTool && ak != models.ApprovalKindPlan {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be tool or plan"})
			return
		}
		kind = &ak
	}

	pending, err := s.approvals.ListPending(c.Request.Context(), sessionID, kind)
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"approvals":  pending,
	})
}

// GetMetrics handles GET /events/metrics
func (s *Server) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}

// GetSessionMetrics handles GET /events/metrics/session/:session_id
func (s *Server) GetSessionMetrics(c *gin.Context) {
	sessionID := c.Param("session_id")

	stats, err := s.eventStore.StatsForSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"by_type":    stats,
	})
}

// GetSessionActivity handles GET /events/metrics/sessions
func (s *Server) GetSessionActivity(c *gin.Context) {
	activity, err := s.eventStore.SessionActivity(c.Request.Context())
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"by_session": activity})
}

// GetAuditLog handles GET /events/audit-log
func (s *Server) GetAuditLog(c *gin.Context) {
	limit := intQuery(c, "limit", 100)
	c.JSON(http.StatusOK, gin.H{"events": s.audit.Recent(limit)})
}

// GetEventStats handles GET /events/stats
func (s *Server) GetEventStats(c *gin.Context) {
	stats, err := s.eventStore.Stats(c.Request.Context())
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"by_type": stats})
}

// ListSessionEvents handles GET /events/session/:session_id
func (s *Server) ListSessionEvents(c *gin.Context) {
	sessionID := c.Param("session_id")
	afterID := intQuery(c, "after_id", 0)
	limit := intQuery(c, "limit", 100)

	evs, err := s.eventStore.ListBySession(c.Request.Context(), sessionID, afterID, limit)
	if err != nil {
		c.JSON(mapServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"events":     evs,
	})
}

func intQuery(c *gin.Context, key string, defaultVal int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
