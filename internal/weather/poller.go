package weather

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/logger"
)

// Fetcher is the part of Client the poller needs; swapped for a stub in tests.
type Fetcher interface {
	Fetch(ctx context.Context) (arcclock.WeatherSnapshot, error)
}

// Poller fetches weather on a fixed interval and hands each successful
// snapshot to onUpdate. A failed fetch is logged and the previous snapshot
// stays in effect; the display keeps showing stale data rather than blanking.
type Poller struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	interval  time.Duration
	onUpdate  func(arcclock.WeatherSnapshot)
	log       *logger.Logger
}

// NewPoller builds a Poller. interval below one minute is raised to the
// default of ten minutes.
func NewPoller(fetcher Fetcher, interval time.Duration, onUpdate func(arcclock.WeatherSnapshot), log *logger.Logger) *Poller {
	if interval < time.Minute {
		interval = 10 * time.Minute
	}
	return &Poller{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		interval:  interval,
		onUpdate:  onUpdate,
		log:       log,
	}
}

// Start runs one immediate fetch and then schedules the periodic job.
func (p *Poller) Start() error {
	_, err := p.scheduler.Every(int(p.interval.Minutes())).Minutes().Do(p.poll)
	if err != nil {
		return err
	}
	go p.poll()
	p.scheduler.StartAsync()
	return nil
}

// Stop cancels future polls. In-flight fetches finish on their own timeout.
func (p *Poller) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.log.Warnw("weather fetch failed, keeping previous snapshot", "error", err)
		return
	}
	p.log.Infow("weather updated",
		"condition", snap.ConditionCode,
		"temp", snap.Temperature,
		"description", snap.Description,
	)
	if p.onUpdate != nil {
		p.onUpdate(snap)
	}
}
