package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-ai/maestro/pkg/models"
)

// heartbeatInterval keeps intermediaries from closing an idle stream while
// the runtime waits on a slow model.
const heartbeatInterval = 15 * time.Second

// StreamMessage handles POST /agent/message/stream. The response is an SSE
// stream of runtime events; the final frame is always "data: [DONE]".
func (s *Server) StreamMessage(c *gin.Context) {
	var req models.AgentMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Message.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sessionID, stream := s.coordinator.ProcessMessage(ctx, &req)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Header().Set("X-Session-ID", sessionID)
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case event, ok := <-stream:
			if !ok {
				fmt.Fprint(c.Writer, "data: [DONE]\n\n")
				c.Writer.Flush()
				return
			}
			if err := writeSSE(c.Writer, event); err != nil {
				s.logger.Warn("failed to write stream event",
					"session_id", sessionID, "error", err)
				return
			}
			c.Writer.Flush()
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// writeSSE emits one event as an "event:" / "data:" frame pair.
func writeSSE(w gin.ResponseWriter, event models.StreamEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal stream event: %w", err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.EventType(), payload)
	return err
}
