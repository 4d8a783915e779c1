package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/robegamesios/ArcReactorClock-sub000/internal/clock"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/display"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/handlers"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/logger"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/modes"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/repository"
	dbconn "github.com/robegamesios/ArcReactorClock-sub000/internal/repository/db"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/server"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/service"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/theme"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/weather"
)

const displayTick = 1 * time.Second

func main() {
	// load config.yml first so the log level applies
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// display hardware stand-ins
	fb := display.NewFramebuffer(
		viper.GetInt("display.width"),
		viper.GetInt("display.height"),
	)
	strip := display.NewStrip(viper.GetInt("led.count"))

	// wire dependencies
	repos := repository.NewRepository(db)
	coord := service.NewCoordinator(service.Params{
		Face:                modes.NewFace(fb),
		Themes:              theme.NewResolver(),
		LEDs:                strip,
		Repos:               repos,
		Log:                 log,
		RefreshEveryMinutes: viper.GetInt("display.refresh_minutes"),
		ZeroPolicy:          modes.ParseZeroPolicy(viper.GetString("display.zero_policy")),
		Units:               viper.GetString("weather.units"),
		VerticalOffset:      viper.GetInt("display.vertical_offset"),
		Background:          viper.GetString("display.background"),
	})
	src := clock.NewSystemSource(loadLocation(log), viper.GetBool("display.use_24_hour"))
	services := service.NewService(coord, repos, src)
	apiHandler := handlers.NewHandler(services, fb, log)

	// restore persisted settings before the first tick
	if err := coord.Restore(context.Background()); err != nil {
		log.Errorw("failed to restore settings, continuing with defaults", "err", err)
	}

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start the display loop (via composed service)
	go services.Ticker.Run(ctx, displayTick)

	// start the weather poller when a key is configured
	poller := startWeatherPoller(coord, log)
	if poller != nil {
		defer poller.Stop()
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "arcclock.db")
		dbPath = "arcclock.db"
	}
	return dbconn.InitDB(dbPath)
}

// loadLocation resolves the configured time zone; bad names fall back to local.
func loadLocation(log *logger.Logger) *time.Location {
	name := viper.GetString("display.timezone")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnw("unknown timezone, using local", "timezone", name, "err", err)
		return time.Local
	}
	return loc
}

// startWeatherPoller wires the OpenWeatherMap client when an API key is set.
func startWeatherPoller(coord *service.Coordinator, log *logger.Logger) *weather.Poller {
	apiKey := viper.GetString("weather.api_key")
	if apiKey == "" {
		log.Infow("weather.api_key not set; weather features disabled")
		return nil
	}

	client := weather.NewClient(nil,
		apiKey,
		viper.GetInt("weather.city_id"),
		viper.GetString("weather.units"),
	)
	poller := weather.NewPoller(client,
		time.Duration(viper.GetInt("weather.poll_minutes"))*time.Minute,
		coord.OnWeatherUpdated,
		log,
	)
	if err := poller.Start(); err != nil {
		log.Errorw("failed to start weather poller", "err", err)
		return nil
	}
	return poller
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
