package service

import (
	"context"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/clock"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/repository"
)

// Clock exposes the control operations: mode changes and color cycling,
// the Go counterparts of the device's buttons.
type Clock interface {
	SetMode(ctx context.Context, m arcclock.Mode) error
	NextMode(ctx context.Context) (arcclock.Mode, error)
	CycleColor(ctx context.Context) (arcclock.ThemeColor, error)
	SetAutoWeatherColor(ctx context.Context, on bool) error
}

// Monitoring exposes the read-only device snapshot.
type Monitoring interface {
	State(ctx context.Context) (arcclock.ClockState, error)
}

// EventLog exposes the append-only device log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]arcclock.DeviceEvent, error)
}

// Ticker runs the once-a-second display loop.
// Stop via context cancellation in main() for graceful shutdown.
type Ticker interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services behind one handle for the handlers.
type Service struct {
	Clock
	Monitoring
	EventLog
	Ticker
}

// NewService wires the coordinator and repository layer into the aggregate.
func NewService(coord *Coordinator, repos *repository.Repository, source clock.Source) *Service {
	return &Service{
		Clock:      coord,
		Monitoring: coord,
		EventLog:   NewEventLogService(repos.EventRepo),
		Ticker:     NewTickerService(coord, source),
	}
}
