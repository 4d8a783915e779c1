package service

import (
	"context"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/clock"
)

// TickSink consumes one time sample per tick; implemented by Coordinator.
type TickSink interface {
	Tick(t arcclock.TimeSample)
}

// TickerService drives the display loop: sample the time source, hand the
// sample to the coordinator, repeat.
type TickerService struct {
	sink   TickSink
	source clock.Source
}

func NewTickerService(sink TickSink, source clock.Source) *TickerService {
	return &TickerService{sink: sink, source: source}
}

// Run ticks at the given interval until ctx is canceled. The first tick
// fires immediately so the display is not blank for a whole interval.
func (s *TickerService) Run(ctx context.Context, tick time.Duration) {
	s.sink.Tick(s.source.Sample())

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sink.Tick(s.source.Sample())
		}
	}
}
