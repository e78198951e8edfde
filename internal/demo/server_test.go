package demo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/mcao2/reviews-browser/internal/reviews"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHandlerMissingAppID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/reviews_by_app", nil)
	w := httptest.NewRecorder()

	NewHandler(zap.NewNop()).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerReady(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/ready", nil)
	w := httptest.NewRecorder()

	NewHandler(nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "API is ready", w.Body.String())
}

func TestDemoServerWithClient(t *testing.T) {
	srv, err := Start(zap.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, srv.Close()) }()

	transport := &http.Transport{}
	defer transport.CloseIdleConnections()
	client := reviews.NewClient(
		reviews.WithBaseURL(srv.URL()),
		reviews.WithHTTPClient(&http.Client{Transport: transport}),
	)
	ctx := context.Background()

	t.Run("populated app", func(t *testing.T) {
		got, err := client.FetchByApp(ctx, AppWeather)
		require.NoError(t, err)
		assert.Len(t, got, 5)

		sum, ok := reviews.Summarize(got)
		require.True(t, ok)
		assert.Equal(t, "3.6", sum.AverageLabel())
	})

	t.Run("empty app", func(t *testing.T) {
		got, err := client.FetchByApp(ctx, AppQuiet)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("null payload", func(t *testing.T) {
		got, err := client.FetchByApp(ctx, AppNull)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown app", func(t *testing.T) {
		got, err := client.FetchByApp(ctx, "com.unknown")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("broken backend", func(t *testing.T) {
		_, err := client.FetchByApp(ctx, AppBroken)
		var statusErr *reviews.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	})
}

func TestQuickAppsCoverCatalog(t *testing.T) {
	ids := make(map[string]bool)
	for _, app := range QuickApps {
		ids[app.ID] = true
	}
	for id := range catalog(time.Now()) {
		assert.True(t, ids[id], "catalog app %s missing from quick apps", id)
	}
}
