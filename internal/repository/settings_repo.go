package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

const (
	clockSettingsRowID = 1

	insertOrUpdateSettingsSQL = `
		INSERT INTO clock_settings (id, background_index, clock_mode, vertical_offset, led_color, auto_weather_color, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			background_index=excluded.background_index,
			clock_mode=excluded.clock_mode,
			vertical_offset=excluded.vertical_offset,
			led_color=excluded.led_color,
			auto_weather_color=excluded.auto_weather_color,
			updated_at=excluded.updated_at
	`

	selectSettingsSQL = `
		SELECT id, background_index, clock_mode, vertical_offset, led_color, auto_weather_color, updated_at
		FROM clock_settings WHERE id=?
	`
)

// Save updates or inserts the clock_settings row (id always 1).
func (r *SettingsSQLite) Save(ctx context.Context, s arcclock.Settings) error {
	// ensure UpdatedAt is always persisted as UTC; set if zero
	tsUTC := s.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateSettingsSQL,
		clockSettingsRowID,
		s.BackgroundIndex,
		s.ClockMode,
		s.VerticalOffset,
		s.LEDColor,
		s.AutoWeatherColor,
		tsUTC,
	)
	return err
}

// Load fetches the single clock_settings row (id=1). A missing row returns
// the zero Settings, which the caller treats as factory defaults.
func (r *SettingsSQLite) Load(ctx context.Context) (arcclock.Settings, error) {
	row := r.db.QueryRowContext(ctx, selectSettingsSQL, clockSettingsRowID)

	var s arcclock.Settings
	if err := row.Scan(
		&s.ID,
		&s.BackgroundIndex,
		&s.ClockMode,
		&s.VerticalOffset,
		&s.LEDColor,
		&s.AutoWeatherColor,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return arcclock.Settings{}, nil // no settings yet
		}
		return arcclock.Settings{}, err
	}
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, nil
}
