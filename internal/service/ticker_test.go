package service

import (
	"context"
	"sync"
	"testing"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

type countingSink struct {
	mu      sync.Mutex
	samples []arcclock.TimeSample
}

func (c *countingSink) Tick(t arcclock.TimeSample) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, t)
}

func (c *countingSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.samples)
}

type fixedSource struct{ sample arcclock.TimeSample }

func (f fixedSource) Sample() arcclock.TimeSample { return f.sample }

func TestTickerService_TicksImmediatelyAndStopsOnCancel(t *testing.T) {
	sink := &countingSink{}
	svc := NewTickerService(sink, fixedSource{sample: arcclock.TimeSample{Hour: 1, Minute: 2, Second: 3}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	// Wait for the immediate tick plus at least one interval tick.
	deadline := time.After(time.Second)
	for sink.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("ticker produced %d ticks, want >= 2", sink.count())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}

	sink.mu.Lock()
	got := sink.samples[0]
	sink.mu.Unlock()
	if got.Hour != 1 || got.Minute != 2 || got.Second != 3 {
		t.Fatalf("unexpected sample: %+v", got)
	}
}
