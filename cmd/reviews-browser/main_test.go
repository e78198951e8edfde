package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mcao2/reviews-browser/internal/browse"
	"github.com/mcao2/reviews-browser/internal/demo"
	"github.com/mcao2/reviews-browser/internal/reviews"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("REVIEWS_BROWSER_CONFIG", path)
	t.Setenv("REVIEWS_API_URL", "")
	t.Setenv("REVIEWS_REQUEST_TIMEOUT", "")
	t.Setenv("REVIEWS_LOG_FILE", "")
	t.Setenv("REVIEWS_THEME", "")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInitWritesExampleConfig(t *testing.T) {
	path := isolateConfig(t)

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quick_apps:")
}

func TestFetchAgainstBackend(t *testing.T) {
	isolateConfig(t)
	srv := httptest.NewServer(demo.NewHandler(zap.NewNop()))
	defer srv.Close()

	out, err := execute(t, "fetch", "--base-url", srv.URL, demo.AppWeather)
	require.NoError(t, err)

	assert.Contains(t, out, "App: "+demo.AppWeather)
	assert.Contains(t, out, "Total Reviews: 5")
	assert.Contains(t, out, "Average Rating: 3.6")
	assert.Contains(t, out, "Distribution: 5★: 2, 4★: 1, 3★: 1, 1★: 1")
	assert.Contains(t, out, "Anonymous")
}

func TestFetchJSON(t *testing.T) {
	isolateConfig(t)
	srv := httptest.NewServer(demo.NewHandler(zap.NewNop()))
	defer srv.Close()

	out, err := execute(t, "fetch", "--json", "--base-url", srv.URL, demo.AppNotes)
	require.NoError(t, err)

	var payload struct {
		AppID   string           `json:"app_id"`
		Reviews []reviews.Review `json:"reviews"`
		Summary struct {
			Count   int     `json:"count"`
			Average float64 `json:"average"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, demo.AppNotes, payload.AppID)
	assert.Len(t, payload.Reviews, 2)
	assert.Equal(t, 2, payload.Summary.Count)
	assert.Equal(t, 4.0, payload.Summary.Average)
}

func TestFetchWithDemoBackend(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "fetch", "--demo", demo.AppQuiet)
	require.NoError(t, err)
	assert.Contains(t, out, "No reviews found for this app.")
}

func TestFetchFailure(t *testing.T) {
	isolateConfig(t)
	srv := httptest.NewServer(demo.NewHandler(zap.NewNop()))
	defer srv.Close()

	_, err := execute(t, "fetch", "--base-url", srv.URL, demo.AppBroken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), browse.MessageFetchFailed)
}

func TestRunFetchRejectsBlankID(t *testing.T) {
	var out bytes.Buffer
	err := runFetch(context.Background(), reviews.NewClient(), "   ", false, &out)

	require.ErrorIs(t, err, browse.ErrInvalidAppID)
	assert.Empty(t, out.String())
}

func TestFetchRequiresAppID(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "fetch")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "accepts 1 arg"))
}
