package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeRuntime records stream requests and plays back a scripted SSE body.
type fakeRuntime struct {
	mu        sync.Mutex
	requests  []models.AgentMessageRequest
	responses []sseResponse
}

type sseResponse struct {
	status int
	body   string
}

func (f *fakeRuntime) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/agent/message/stream", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var req models.AgentMessageRequest
		_ = json.Unmarshal(raw, &req)

		f.mu.Lock()
		f.requests = append(f.requests, req)
		resp := f.responses[0]
		if len(f.responses) > 1 {
			f.responses = f.responses[1:]
		}
		f.mu.Unlock()

		if resp.status != http.StatusOK {
			w.WriteHeader(resp.status)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, resp.body)
	})
	return mux
}

func (f *fakeRuntime) request(i int) models.AgentMessageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

func (f *fakeRuntime) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func dialGateway(t *testing.T, runtime *fakeRuntime, path string) *websocket.Conn {
	t.Helper()

	upstream := httptest.NewServer(runtime.handler())
	t.Cleanup(upstream.Close)

	g := New(Config{
		AgentURL:      upstream.URL,
		StreamTimeout: 5 * time.Second,
		Logger:        slog.Default(),
	})
	router, err := g.Router()
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func sendFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(v))
}

func sseBody(records ...string) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString("data: " + r + "\n\n")
	}
	b.WriteString("data: [DONE]\n\n")
	return b.String()
}

func TestStreamForwardedToSocket(t *testing.T) {
	runtime := &fakeRuntime{responses: []sseResponse{{
		status: http.StatusOK,
		body: "event: session_info\n" +
			"data: {\"type\":\"session_info\",\"session_id\":\"sess-42\"}\n\n" +
			": heartbeat\n\n" +
			"event: assistant_message\n" +
			"data: {\"type\":\"assistant_message\",\"token\":\"hi\",\"is_final\":true}\n\n" +
			"data: [DONE]\n\n",
	}}}
	conn := dialGateway(t, runtime, "/ws/new_abc")

	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "hello"})

	info := readFrame(t, conn)
	assert.Equal(t, "session_info", info["type"])
	assert.Equal(t, "sess-42", info["session_id"])

	msg := readFrame(t, conn)
	assert.Equal(t, "assistant_message", msg["type"])
	assert.Equal(t, "hi", msg["token"])

	// The placeholder id was never forwarded.
	assert.Equal(t, "", runtime.request(0).SessionID)
}

func TestHarvestedSessionIDUsedOnNextMessage(t *testing.T) {
	ok := sseResponse{status: http.StatusOK, body: sseBody(
		`{"type":"session_info","session_id":"sess-42"}`,
	)}
	runtime := &fakeRuntime{responses: []sseResponse{ok, ok}}
	conn := dialGateway(t, runtime, "/ws/new_abc")

	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "first"})
	readFrame(t, conn)
	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "second"})
	readFrame(t, conn)

	require.Eventually(t, func() bool { return runtime.requestCount() == 2 },
		2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "", runtime.request(0).SessionID)
	assert.Equal(t, "sess-42", runtime.request(1).SessionID)
}

func TestRuntimeErrorKeepsSocketOpen(t *testing.T) {
	runtime := &fakeRuntime{responses: []sseResponse{
		{status: http.StatusInternalServerError},
		{status: http.StatusOK, body: sseBody(`{"type":"assistant_message","token":"ok","is_final":true}`)},
	}}
	conn := dialGateway(t, runtime, "/ws/sess-1")

	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "boom"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Equal(t, "Agent error: 500", frame["content"])

	// The connection survives; the next message goes through.
	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "retry"})
	frame = readFrame(t, conn)
	assert.Equal(t, "assistant_message", frame["type"])
}

func TestMalformedClientFrameRejectedInPlace(t *testing.T) {
	runtime := &fakeRuntime{responses: []sseResponse{
		{status: http.StatusOK, body: sseBody(`{"type":"assistant_message","token":"ok","is_final":true}`)},
	}}
	conn := dialGateway(t, runtime, "/ws/sess-1")

	// Missing content fails validation; nothing reaches the runtime.
	sendFrame(t, conn, map[string]any{"type": "user_message"})
	frame := readFrame(t, conn)
	assert.Equal(t, "error", frame["type"])
	assert.Equal(t, 0, runtime.requestCount())

	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "valid"})
	frame = readFrame(t, conn)
	assert.Equal(t, "assistant_message", frame["type"])
}

func TestNullKeysDroppedFromRecords(t *testing.T) {
	runtime := &fakeRuntime{responses: []sseResponse{
		{status: http.StatusOK, body: sseBody(`{"type":"tool_call","call_id":"c1","arguments":null}`)},
	}}
	conn := dialGateway(t, runtime, "/ws/sess-1")

	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "x"})
	frame := readFrame(t, conn)
	assert.Equal(t, "tool_call", frame["type"])
	_, present := frame["arguments"]
	assert.False(t, present)
}

func TestDropNullKeys(t *testing.T) {
	record := map[string]any{"a": nil, "b": "keep", "c": 0}
	dropNullKeys(record)
	assert.Equal(t, map[string]any{"b": "keep", "c": 0}, record)
}

func TestClientDisconnectCancelsUpstreamStream(t *testing.T) {
	upstreamDone := make(chan struct{})
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(upstreamDone)
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				io.WriteString(w, "data: {\"type\":\"assistant_message\",\"token\":\"x\",\"is_final\":false}\n\n")
				flusher.Flush()
			case <-r.Context().Done():
				return
			}
		}
	}))
	t.Cleanup(upstream.Close)

	g := New(Config{
		AgentURL:      upstream.URL,
		StreamTimeout: 30 * time.Second,
		Logger:        slog.Default(),
	})
	router, err := g.Router()
	require.NoError(t, err)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/sess-1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "user_message", "content": "go"}))
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))

	// Dropping the socket must abort the upstream request, not leave it
	// streaming into a dead connection.
	conn.Close()

	select {
	case <-upstreamDone:
	case <-time.After(5 * time.Second):
		t.Fatal("upstream stream was not cancelled after client disconnect")
	}
}

func TestRealSessionIDForwardedAsIs(t *testing.T) {
	runtime := &fakeRuntime{responses: []sseResponse{
		{status: http.StatusOK, body: sseBody(`{"type":"assistant_message","token":"ok","is_final":true}`)},
	}}
	conn := dialGateway(t, runtime, "/ws/sess-77")

	sendFrame(t, conn, map[string]any{"type": "user_message", "content": "x"})
	readFrame(t, conn)

	assert.Equal(t, "sess-77", runtime.request(0).SessionID)
}
