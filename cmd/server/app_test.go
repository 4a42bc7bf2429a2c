package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/yijing-api/internal/api/shared"
	"github.com/phrazzld/yijing-api/internal/config"
	"github.com/phrazzld/yijing-api/internal/domain"
	"github.com/phrazzld/yijing-api/internal/events"
	"github.com/phrazzld/yijing-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 8080, LogLevel: "debug"},
		Dataset: config.DatasetConfig{DefaultHexagram: 1},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) (*application, *logger.TestLogBuffer) {
	t.Helper()
	l, buf := logger.NewTestLogger(t)
	app, err := newApplication(cfg, l)
	require.NoError(t, err)
	return app, buf
}

func serveRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewApplication_BadDatasetPath(t *testing.T) {
	cfg := testConfig()
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "missing.yaml")

	l, _ := logger.NewTestLogger(t)
	app, err := newApplication(cfg, l)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApplication_DefaultMissingFromDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexagrams.yaml")
	data := "hexagrams:\n  - number: 64\n    name: \"Творчество\"\n    interpretation: \"Сила.\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg := testConfig()
	cfg.Dataset.Path = path
	app, buf := newTestApp(t, cfg)

	assert.Equal(t, 1, app.dataset.Len())
	logger.AssertLogContains(t, buf, "default hexagram missing from dataset")

	router := app.setupRouter()
	w := serveRequest(t, router, http.MethodPost, "/api/readings/interpret",
		`{"lines":[{"position":1},{"position":2},{"position":3},{"position":4},{"position":5},{"position":6}]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Health(t *testing.T) {
	app, _ := newTestApp(t, testConfig())
	w := serveRequest(t, app.setupRouter(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","hexagrams":64}`, w.Body.String())
	assert.Len(t, w.Header().Get(shared.TraceIDHeader), 32)
}

func TestRouter_Hexagrams(t *testing.T) {
	app, _ := newTestApp(t, testConfig())
	router := app.setupRouter()

	w := serveRequest(t, router, http.MethodGet, "/api/hexagrams", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 64, list.Count)

	w = serveRequest(t, router, http.MethodGet, "/api/hexagrams/33", "")
	require.Equal(t, http.StatusOK, w.Code)
	var record domain.Hexagram
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Разорение", record.Name)

	w = serveRequest(t, router, http.MethodGet, "/api/hexagrams/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CastReading(t *testing.T) {
	app, buf := newTestApp(t, testConfig())
	router := app.setupRouter()

	w := serveRequest(t, router, http.MethodPost, "/api/readings",
		`{"question":"Стоит ли мне менять работу?","tags":["работа"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var reading domain.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	require.NoError(t, reading.Validate())
	assert.GreaterOrEqual(t, reading.HexagramNumber, 1)
	assert.LessOrEqual(t, reading.HexagramNumber, 64)
	assert.NotEmpty(t, reading.Interpretation.Now)
	assert.Equal(t, []string{"работа"}, reading.Tags)
	assert.True(t, strings.HasPrefix(reading.Summary, reading.HexagramName+": "))

	hasChanging := domain.HasChangingLines(reading.CastLines())
	assert.Equal(t, hasChanging, reading.SecondHexagramNumber != nil)
	assert.Equal(t, hasChanging, reading.Interpretation.Trend != nil)

	logger.AssertLogContains(t, buf, "reading recorded")
	logger.AssertLogContains(t, buf, reading.ID.String())
	logger.AssertLogNotContains(t, buf, "менять работу")
}

func TestRouter_InterpretCast(t *testing.T) {
	app, _ := newTestApp(t, testConfig())
	router := app.setupRouter()

	// all yin with a changing bottom line: hexagram 1 turning into 2
	body := `{"question":"Что меня ждёт?","lines":[
		{"is_yang":false,"is_changing":true,"position":1},
		{"position":2},{"position":3},{"position":4},{"position":5},{"position":6}]}`
	w := serveRequest(t, router, http.MethodPost, "/api/readings/interpret", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var reading domain.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.Equal(t, 1, reading.HexagramNumber)
	assert.Equal(t, "Исполнение", reading.HexagramName)
	require.NotNil(t, reading.SecondHexagramNumber)
	assert.Equal(t, 2, *reading.SecondHexagramNumber)
	assert.NotEmpty(t, reading.Interpretation.Trend)
	assert.LessOrEqual(t, len(reading.Interpretation.Changes), domain.MaxChangesSentences)

	w = serveRequest(t, router, http.MethodPost, "/api/readings/interpret", `{"lines":[{"position":1}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_Classify(t *testing.T) {
	app, _ := newTestApp(t, testConfig())
	w := serveRequest(t, app.setupRouter(), http.MethodPost, "/api/safety/classify",
		`{"question":"Мне нужен адвокат?"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"level":"legal"`)
}

func TestReadingJournal(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	journal := newReadingJournal(l)

	event, err := events.NewEvent(events.TypeReadingCast, map[string]string{"hexagram_name": ""})
	require.NoError(t, err)
	assert.Error(t, journal.HandleEvent(context.Background(), event))

	event = &events.Event{Type: events.TypeReadingCast, Payload: json.RawMessage(`not json`)}
	assert.Error(t, journal.HandleEvent(context.Background(), event))

	logger.AssertLogNotContains(t, buf, "reading recorded")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	app, buf := newTestApp(t, testConfig())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln, app.setupRouter()) }()

	url := fmt.Sprintf("http://%s/health", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, buf, "server shutdown completed")
}
