package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/service"
)

func TestClockHandlers_StateModeColor(t *testing.T) {
	mon := &mockMonitoring{state: arcclock.ClockState{
		ModeName:   "arc_analog",
		ColorIndex: 1,
		Color:      arcclock.ThemeColor{Name: "GREEN", R: 0, G: 255, B: 0},
	}}
	ck := &mockClock{
		nextModeResp: arcclock.ModePipBoy,
		cycleResp:    arcclock.ThemeColor{Name: "RED"},
	}
	s := &service.Service{
		Monitoring: mon,
		Clock:      ck,
	}
	r := newTestRouter(s)

	// GET state → 200 and state body
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clock/state", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}
	var st arcclock.ClockState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if st.ModeName != "arc_analog" || st.Color.Name != "GREEN" {
		t.Fatalf("unexpected state: %+v", st)
	}

	// POST /mode → 200, parses the mode name and includes state
	body := bytes.NewBufferString(`{"mode":"apple_rings"}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/mode", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("mode status=%d, body=%s", w.Code, w.Body.String())
	}
	if ck.setModeCalls != 1 || ck.lastSetMode != arcclock.ModeAppleRings {
		t.Fatalf("SetMode calls=%d last=%v", ck.setModeCalls, ck.lastSetMode)
	}
	var modeResp struct {
		Status string              `json:"status"`
		Mode   string              `json:"mode"`
		State  arcclock.ClockState `json:"state"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &modeResp)
	if modeResp.Status != statusModeSet || modeResp.Mode != "apple_rings" {
		t.Fatalf("bad mode response: %+v", modeResp)
	}
	if modeResp.State.ModeName != "arc_analog" {
		t.Fatalf("state missing/invalid in response: %+v", modeResp.State)
	}

	// POST /mode/next → 200 with the advanced mode
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/mode/next", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("next status=%d, body=%s", w.Code, w.Body.String())
	}
	if ck.nextModeCalls != 1 {
		t.Fatalf("NextMode calls=%d", ck.nextModeCalls)
	}
	_ = json.Unmarshal(w.Body.Bytes(), &modeResp)
	if modeResp.Mode != "pipboy" {
		t.Fatalf("bad next-mode response: %+v", modeResp)
	}

	// POST /color/cycle → 200 with the new color
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/color/cycle", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("cycle status=%d, body=%s", w.Code, w.Body.String())
	}
	if ck.cycleCalls != 1 {
		t.Fatalf("CycleColor calls=%d", ck.cycleCalls)
	}
	var colorResp struct {
		Status string              `json:"status"`
		Color  arcclock.ThemeColor `json:"color"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &colorResp)
	if colorResp.Status != statusColorCycled || colorResp.Color.Name != "RED" {
		t.Fatalf("bad color response: %+v", colorResp)
	}

	// POST /color/auto → 200, passes the flag through
	body = bytes.NewBufferString(`{"enabled":true}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/color/auto", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("auto status=%d, body=%s", w.Code, w.Body.String())
	}
	if ck.autoCalls != 1 || !ck.lastAuto {
		t.Fatalf("SetAutoWeatherColor calls=%d last=%v", ck.autoCalls, ck.lastAuto)
	}
}

func TestClockHandlers_BadRequests(t *testing.T) {
	s := &service.Service{
		Clock:      &mockClock{},
		Monitoring: &mockMonitoring{},
	}
	r := newTestRouter(s)

	// Unknown mode name → 400
	body := bytes.NewBufferString(`{"mode":"hologram"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clock/mode", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %d", w.Code)
	}

	// Missing mode field → 400
	body = bytes.NewBufferString(`{}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/mode", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing mode, got %d", w.Code)
	}

	// Missing enabled field → 400
	body = bytes.NewBufferString(`{}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/clock/color/auto", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing enabled, got %d", w.Code)
	}
}

func TestClockHandlers_StateError(t *testing.T) {
	s := &service.Service{
		Monitoring: &mockMonitoring{err: errors.New("boom")},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clock/state", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
