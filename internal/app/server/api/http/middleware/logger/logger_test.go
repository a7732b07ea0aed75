package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func newTestAPI(t *testing.T, buf *bytes.Buffer) humatest.TestAPI {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mw := New(log).Middleware()

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{mw},
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.OK = true
		return out, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "broken",
		Method:      http.MethodGet,
		Path:        "/broken",
		Middlewares: huma.Middlewares{mw},
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		return nil, huma.Error502BadGateway("upstream down")
	})
	return api
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestMiddleware_AssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	resp := newTestAPI(t, &buf).Get("/ping")
	require.Equal(t, http.StatusOK, resp.Code)

	id := resp.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "ping", entry["operation"])
	assert.Equal(t, "http_logger", entry["component"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestMiddleware_KeepsIncomingID(t *testing.T) {
	var buf bytes.Buffer
	resp := newTestAPI(t, &buf).Get("/ping", RequestIDHeader+": req-42")

	assert.Equal(t, "req-42", resp.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-42", lastEntry(t, &buf)["request_id"])
}

func TestMiddleware_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	resp := newTestAPI(t, &buf).Get("/broken")
	require.Equal(t, http.StatusBadGateway, resp.Code)

	assert.Equal(t, "ERROR", lastEntry(t, &buf)["level"])
}
