package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-traffic-news/internal/models"
	logctx "github.com/pribylovaa/go-traffic-news/pkg/log"
	"github.com/stretchr/testify/require"
)

type stubNews struct {
	runID       string
	hasDeadline bool
}

func (s *stubNews) Collect(ctx context.Context, _ models.NewsRequest) ([]models.News, int, error) {
	s.runID = logctx.RunID(ctx)
	_, s.hasDeadline = ctx.Deadline()
	return nil, 0, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRouter_WiresMiddleware(t *testing.T) {
	t.Parallel()

	svc := &stubNews{}
	h := NewRouter(svc, Options{Logger: quietLogger(), Timeout: time.Second})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/news/BB", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	rid := rr.Header().Get("X-Request-Id")
	_, err := uuid.Parse(rid)
	require.NoError(t, err)
	require.Equal(t, rid, svc.runID)
	require.True(t, svc.hasDeadline)
}

func TestNewRouter_BasePath(t *testing.T) {
	t.Parallel()

	h := NewRouter(&stubNews{}, Options{Logger: quietLogger(), BasePath: "/api"})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/states", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/states", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewRouter_NoTimeoutWhenZero(t *testing.T) {
	t.Parallel()

	svc := &stubNews{}
	h := NewRouter(svc, Options{Logger: quietLogger()})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/news/HH", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, svc.hasDeadline)
}

type countingObs struct{ routes []string }

func (c *countingObs) ObserveHTTP(route, _ string, _ int, _ time.Duration) {
	c.routes = append(c.routes, route)
}

func TestNewRouter_Metrics(t *testing.T) {
	t.Parallel()

	obs := &countingObs{}
	h := NewRouter(&stubNews{}, Options{Logger: quietLogger(), Metrics: obs})

	for _, target := range []string{"/news/BB", "/news/BE", "/states"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	require.Equal(t, []string{"/news/{state}", "/news/{state}", "/states"}, obs.routes)
}
