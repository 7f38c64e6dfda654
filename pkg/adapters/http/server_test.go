package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/stepline/internal/logging"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockController records calls and returns canned results.
type MockController struct {
	calls   []string
	paused  bool
	speed   float64
	err     error
	seekID  string
	helper  string
	enabled bool
}

func (m *MockController) record(name string) error {
	m.calls = append(m.calls, name)
	return m.err
}

func (m *MockController) SetPaused(ctx context.Context, paused bool) error {
	m.paused = paused
	return m.record("pause")
}
func (m *MockController) TogglePause(ctx context.Context) (bool, error) {
	m.paused = !m.paused
	return m.paused, m.record("toggle")
}
func (m *MockController) UpdateSpeed(ctx context.Context, multiplier float64) error {
	if multiplier <= 0 {
		return domain.ErrInvalidSpeed
	}
	m.speed = multiplier
	return m.record("speed")
}
func (m *MockController) Reset(ctx context.Context) error     { return m.record("reset") }
func (m *MockController) StepNext(ctx context.Context) error  { return m.record("next") }
func (m *MockController) StepBack(ctx context.Context) error  { return m.record("back") }
func (m *MockController) ReDrawAll(ctx context.Context) error { return m.record("redraw") }
func (m *MockController) LoadNextCheckpoint(ctx context.Context) (string, bool, error) {
	return m.seekID, m.seekID != "", m.record("cp-next")
}
func (m *MockController) LoadPreviousCheckpoint(ctx context.Context) (string, bool, error) {
	return m.seekID, m.seekID != "", m.record("cp-prev")
}
func (m *MockController) SetUsingHelperQueue(ctx context.Context, enabled bool) error {
	m.enabled = enabled
	return m.record("helper")
}
func (m *MockController) LoadCheckpointToHelper(ctx context.Context, id string) error {
	if id != "known" {
		return fmt.Errorf("figure %s: %w", id, domain.ErrCheckpointNotFound)
	}
	m.helper = id
	return m.record("load-helper")
}
func (m *MockController) Inspect(ctx context.Context) (domain.Inspection, error) {
	return domain.Inspection{Name: "demo", Paused: m.paused, Speed: m.speed}, m.err
}

func newTestServer(c *MockController) http.Handler {
	return NewServer(c, logging.NewNop()).Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Commands(t *testing.T) {
	c := &MockController{}
	h := newTestServer(c)

	for _, path := range []string{"/reset", "/redraw", "/step/next", "/step/back"} {
		rec := do(h, "POST", path, "")
		assert.Equal(t, http.StatusNoContent, rec.Code, path)
	}
	assert.Equal(t, []string{"reset", "redraw", "next", "back"}, c.calls)
}

func TestServer_Pause(t *testing.T) {
	c := &MockController{}
	h := newTestServer(c)

	rec := do(h, "POST", "/pause", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"paused":true}`, rec.Body.String())

	rec = do(h, "POST", "/pause", `{"paused":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"toggle", "pause"}, c.calls)

	rec = do(h, "POST", "/pause", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Speed(t *testing.T) {
	c := &MockController{}
	h := newTestServer(c)

	rec := do(h, "POST", "/speed", `{"multiplier":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2.0, c.speed)

	rec = do(h, "POST", "/speed", `{"multiplier":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Checkpoints(t *testing.T) {
	c := &MockController{seekID: "intro"}
	h := newTestServer(c)

	rec := do(h, "POST", "/checkpoints/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checkpoint":"intro","found":true}`, rec.Body.String())

	c.seekID = ""
	rec = do(h, "POST", "/checkpoints/previous", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"found":false}`, rec.Body.String())
}

func TestServer_Helper(t *testing.T) {
	c := &MockController{}
	h := newTestServer(c)

	rec := do(h, "POST", "/helper/known", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "known", c.helper)

	rec = do(h, "POST", "/helper/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, "POST", "/helper", `{"enabled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, c.calls, "helper")
}

func TestServer_StatusAndInfo(t *testing.T) {
	c := &MockController{speed: 1.5}
	h := newTestServer(c)

	rec := do(h, "GET", "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var in domain.Inspection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &in))
	assert.Equal(t, "demo", in.Name)
	assert.Equal(t, 1.5, in.Speed)

	rec = do(h, "GET", "/info", "")
	assert.Contains(t, rec.Body.String(), "stepline-http")

	rec = do(h, "GET", "/health", "")
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(h, "OPTIONS", "/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ControllerError(t *testing.T) {
	c := &MockController{err: fmt.Errorf("engine stopped")}
	rec := do(newTestServer(c), "POST", "/step/next", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "engine stopped")
}

func TestSubscribeEvents(t *testing.T) {
	s := NewServer(&MockController{}, logging.NewNop())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", ts.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	require.True(t, lines.Scan())
	assert.Equal(t, "event: ping", lines.Text())

	require.Eventually(t, func() bool { return s.Streams.Len() == 1 }, time.Second, 5*time.Millisecond)
	ev := domain.NewEvent(domain.EventGroupDraw, "axes")
	require.NoError(t, s.Publish(context.Background(), ev))

	var data string
	for lines.Scan() {
		if strings.HasPrefix(lines.Text(), "data: {") {
			data = strings.TrimPrefix(lines.Text(), "data: ")
			break
		}
	}
	var got domain.Event
	require.NoError(t, json.Unmarshal([]byte(data), &got))
	assert.Equal(t, domain.EventGroupDraw, got.Type)
	assert.Equal(t, "axes", got.UnitID)

	cancel()
	require.Eventually(t, func() bool { return s.Streams.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestServer_OpenAPI(t *testing.T) {
	h := newTestServer(&MockController{})

	rec := do(h, "GET", "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/helper/{id}")

	rec = do(h, "GET", "/swagger", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stepline API Documentation")

	sw, err := GetSwagger()
	require.NoError(t, err)
	for _, p := range []string{"/status", "/pause", "/speed", "/checkpoints/next", "/helper/{id}", "/events"} {
		assert.NotNil(t, sw.Paths.Value(p), p)
	}
}

func TestServer_ControllerNotReady(t *testing.T) {
	s := NewServer(nil, logging.NewNop())

	var h http.Handler
	require.NotPanics(t, func() { h = s.Handler() })

	for _, path := range []string{"/reset", "/step/next", "/checkpoints/previous", "/helper/known"} {
		rec := do(h, "POST", path, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
	rec := do(h, "GET", "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	s.Controller = &MockController{}
	rec = do(h, "POST", "/reset", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
