package repository

import (
	"context"
	"database/sql"
	"time"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

type SettingsRepo interface {
	Save(ctx context.Context, s arcclock.Settings) error
	Load(ctx context.Context) (arcclock.Settings, error)
}

// ColorMemoryRepo remembers the theme color last used with each background
// image, so switching backgrounds restores the color the user picked for it.
type ColorMemoryRepo interface {
	Save(ctx context.Context, background string, colorIndex int) error
	Load(ctx context.Context, background string) (int, bool, error)
}

type EventRepo interface {
	Append(ctx context.Context, e arcclock.DeviceEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]arcclock.DeviceEvent, error)
}

type Repository struct {
	SettingsRepo SettingsRepo
	ColorMemory  ColorMemoryRepo
	EventRepo    EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SettingsRepo: NewSettingsSQLite(db),
		ColorMemory:  NewColorMemorySQLite(db),
		EventRepo:    NewEventSQLite(db),
	}
}
