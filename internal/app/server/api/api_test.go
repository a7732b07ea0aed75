package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"carcost/internal/app/server/api/http/middleware/logger"
	"carcost/internal/domain/garage"
	"carcost/internal/infrastructure/storage/memory"
)

type staticVehicles struct{}

func (staticVehicles) Makes(context.Context) ([]string, error) {
	return []string{"HONDA"}, nil
}

func (staticVehicles) Models(context.Context, string) ([]string, error) {
	return []string{"Civic"}, nil
}

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("database is locked")
}
func (brokenKV) Set(context.Context, string, string) error { return errors.New("database is locked") }
func (brokenKV) Delete(context.Context, string) error      { return errors.New("database is locked") }

func newServer(t *testing.T, kv garage.KeyValue) *httptest.Server {
	t.Helper()

	log := slog.Default()
	store := garage.NewStore(kv, "garage", log)
	mux := New(Deps{
		Garage:   store,
		Vehicles: staticVehicles{},
		Probe:    KeyProbe(kv, "garage"),
	}, log)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_Routes(t *testing.T) {
	srv := newServer(t, memory.New())

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{http.MethodPost, "/api/v1/garage", `{"make":"HONDA","model":"Civic"}`, http.StatusCreated},
		{http.MethodGet, "/api/v1/garage", "", http.StatusOK},
		{http.MethodPut, "/api/v1/garage/0/cost", `{"insurance":100}`, http.StatusOK},
		{http.MethodGet, "/api/v1/garage/chart", "", http.StatusOK},
		{http.MethodPost, "/api/v1/cost/estimate", `{"loan":"200"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/vehicles/makes", "", http.StatusOK},
		{http.MethodGet, "/api/v1/vehicles/makes/HONDA/models", "", http.StatusOK},
		{http.MethodDelete, "/api/v1/garage/0", "", http.StatusOK},
		{http.MethodDelete, "/api/v1/garage", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(logger.RequestIDHeader))
		})
	}
}

func TestNew_KeepsIncomingRequestID(t *testing.T) {
	srv := newServer(t, memory.New())

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set(logger.RequestIDHeader, "abc-123")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(logger.RequestIDHeader))
}

func TestNew_DegradedStorage(t *testing.T) {
	srv := newServer(t, brokenKV{})

	resp, err := srv.Client().Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Load деградирует до пустого гаража вместо ошибки
	resp, err = srv.Client().Get(srv.URL + "/api/v1/garage")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
