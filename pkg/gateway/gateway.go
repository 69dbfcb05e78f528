// Package gateway bridges client WebSockets to the runtime's SSE streaming
// endpoint. It validates inbound frames, proxies them to the runtime, and
// forwards stream events back over the socket. It never interprets
// conversation state.
package gateway

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// writeWait is the deadline for a single socket write.
	writeWait = 10 * time.Second

	// pongWait is how long the socket may stay silent before it is
	// considered dead. Pings go out at pingPeriod.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512 * 1024
)

// Gateway proxies WebSocket clients to the runtime.
type Gateway struct {
	agentURL      string
	internalKey   string
	streamTimeout time.Duration
	httpClient    *http.Client
	upgrader      websocket.Upgrader
	logger        *slog.Logger
}

// Config carries gateway settings.
type Config struct {
	AgentURL       string
	InternalAPIKey string
	StreamTimeout  time.Duration
	Logger         *slog.Logger
}

// New creates a new Gateway
func New(cfg Config) *Gateway {
	if cfg.StreamTimeout <= 0 {
		cfg.StreamTimeout = 5 * time.Minute
	}
	return &Gateway{
		agentURL:      strings.TrimRight(cfg.AgentURL, "/"),
		internalKey:   cfg.InternalAPIKey,
		streamTimeout: cfg.StreamTimeout,
		httpClient: &http.Client{
			// No overall timeout: SSE responses stay open for the whole
			// stream. Per-request contexts bound each proxy call.
			Timeout: 0,
		},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The gateway fronts browser clients behind the OAuth proxy;
			// origin enforcement happens there.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: cfg.Logger,
	}
}

// Router builds the gin engine: the WebSocket endpoint plus a reverse
// proxy for the runtime's REST routes.
func (g *Gateway) Router() (*gin.Engine, error) {
	target, err := url.Parse(g.agentURL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	baseDirector := proxy.Director
	proxy.Director = func(req *http.Request) {
		baseDirector(req)
		if g.internalKey != "" {
			req.Header.Set("X-Internal-Auth", g.internalKey)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ws/:session_id", g.HandleWS)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	forward := func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}
	r.GET("/agents", forward)
	r.GET("/agents/:session_id/current", forward)
	r.GET("/sessions", forward)
	r.POST("/sessions", forward)
	r.GET("/sessions/:session_id/history", forward)
	r.GET("/sessions/:session_id/pending-approvals", forward)
	r.GET("/events/metrics", forward)
	r.GET("/events/metrics/session/:session_id", forward)
	r.GET("/events/metrics/sessions", forward)
	r.GET("/events/audit-log", forward)
	r.GET("/events/stats", forward)
	r.GET("/events/session/:session_id", forward)

	return r, nil
}

// wsConn wraps a socket with a write lock so the ping ticker and the proxy
// loop can both write.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *wsConn) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteJSON(v)
}

func (w *wsConn) Ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}
