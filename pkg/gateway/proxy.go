package gateway

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/maestro-ai/maestro/pkg/models"
)

// placeholderPrefix marks client-chosen temporary session ids. They are
// never forwarded; the runtime assigns the real id.
const placeholderPrefix = "new_"

// doneSentinel terminates an SSE stream.
const doneSentinel = "[DONE]"

// HandleWS upgrades the connection and runs the per-session proxy loop.
// The socket survives runtime errors; only a client disconnect or a dead
// connection ends it.
func (g *Gateway) HandleWS(c *gin.Context) {
	sessionID := c.Param("session_id")

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ws := &wsConn{conn: conn}

	stop := make(chan struct{})
	defer close(stop)
	go g.keepalive(ws, stop)

	if strings.HasPrefix(sessionID, placeholderPrefix) {
		sessionID = ""
	}

	g.logger.Info("websocket connected", "session_id", sessionID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn("websocket read failed", "session_id", sessionID, "error", err)
			}
			return
		}

		msg, err := models.DecodeClientMessage(raw)
		if err != nil {
			g.sendError(ws, err.Error())
			continue
		}

		sessionID = g.proxyMessage(c.Request.Context(), ws, sessionID, msg)
	}
}

func (g *Gateway) keepalive(ws *wsConn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := ws.Ping(); err != nil {
				return
			}
		case <-stop:
			return
		}
	}
}

// proxyMessage forwards one client message to the runtime and streams the
// response back. It returns the (possibly newly learned) session id.
func (g *Gateway) proxyMessage(parentCtx context.Context, ws *wsConn, sessionID string, msg *models.ClientMessage) string {
	ctx, cancel := context.WithTimeout(parentCtx, g.streamTimeout)
	defer cancel()

	body, err := json.Marshal(models.AgentMessageRequest{
		SessionID: sessionID,
		Message:   *msg,
	})
	if err != nil {
		g.sendError(ws, fmt.Sprintf("failed to encode message: %v", err))
		return sessionID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.agentURL+"/agent/message/stream", bytes.NewReader(body))
	if err != nil {
		g.sendError(ws, fmt.Sprintf("failed to build request: %v", err))
		return sessionID
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if g.internalKey != "" {
		req.Header.Set("X-Internal-Auth", g.internalKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.sendError(ws, fmt.Sprintf("Agent connection failed: %v", err))
		return sessionID
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused, then report and stay
		// connected.
		io.Copy(io.Discard, resp.Body)
		g.sendError(ws, fmt.Sprintf("Agent error: %d", resp.StatusCode))
		return sessionID
	}

	return g.forwardStream(ws, sessionID, resp.Body)
}

// forwardStream parses the SSE body line by line and forwards each data
// record over the socket. A session_info record updates the session id.
func (g *Gateway) forwardStream(ws *wsConn, sessionID string, body io.Reader) string {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), maxMessageSize)

	eventName := ""
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			eventName = ""
		case strings.HasPrefix(line, ":"):
			// Heartbeat comment.
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			if eventName == "done" {
				return sessionID
			}
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == doneSentinel {
				return sessionID
			}
			var err error
			sessionID, err = g.forwardRecord(ws, sessionID, data)
			if err != nil {
				// The socket is dead. Stop reading so the caller's context
				// cancel aborts the upstream request.
				g.logger.Warn("client write failed, aborting stream",
					"session_id", sessionID, "error", err)
				return sessionID
			}
		}
	}
	if err := scanner.Err(); err != nil {
		g.sendError(ws, fmt.Sprintf("Agent stream failed: %v", err))
	}
	return sessionID
}

func (g *Gateway) forwardRecord(ws *wsConn, sessionID, data string) (string, error) {
	var record map[string]any
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		g.logger.Warn("dropping malformed stream record",
			"session_id", sessionID, "error", err)
		return sessionID, nil
	}
	dropNullKeys(record)

	if record["type"] == models.EventTypeSessionInfo {
		if id, ok := record["session_id"].(string); ok && id != "" {
			sessionID = id
		}
	}

	if err := ws.WriteJSON(record); err != nil {
		return sessionID, err
	}
	return sessionID, nil
}

// dropNullKeys removes top-level null values so clients never see explicit
// nulls for omitted fields.
func dropNullKeys(record map[string]any) {
	for k, v := range record {
		if v == nil {
			delete(record, k)
		}
	}
}

func (g *Gateway) sendError(ws *wsConn, content string) {
	if err := ws.WriteJSON(models.NewError(content, false)); err != nil {
		g.logger.Warn("failed to send error frame", "error", err)
	}
}
