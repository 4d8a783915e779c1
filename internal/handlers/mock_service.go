package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/service"
)

// ---- Service Mocks ----

type mockClock struct {
	setModeErr   error
	nextModeErr  error
	cycleErr     error
	autoErr      error
	nextModeResp arcclock.Mode
	cycleResp    arcclock.ThemeColor

	lastSetMode   arcclock.Mode
	lastAuto      bool
	setModeCalls  int
	nextModeCalls int
	cycleCalls    int
	autoCalls     int
}

func (m *mockClock) SetMode(_ context.Context, mode arcclock.Mode) error {
	m.setModeCalls++
	m.lastSetMode = mode
	return m.setModeErr
}

func (m *mockClock) NextMode(context.Context) (arcclock.Mode, error) {
	m.nextModeCalls++
	return m.nextModeResp, m.nextModeErr
}

func (m *mockClock) CycleColor(context.Context) (arcclock.ThemeColor, error) {
	m.cycleCalls++
	return m.cycleResp, m.cycleErr
}

func (m *mockClock) SetAutoWeatherColor(_ context.Context, on bool) error {
	m.autoCalls++
	m.lastAuto = on
	return m.autoErr
}

type mockMonitoring struct {
	state arcclock.ClockState
	err   error
}

func (m *mockMonitoring) State(context.Context) (arcclock.ClockState, error) {
	return m.state, m.err
}

type mockEventLog struct {
	resp     []arcclock.DeviceEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(_ context.Context, f service.LogFilter) ([]arcclock.DeviceEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
