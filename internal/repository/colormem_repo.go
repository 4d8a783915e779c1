package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

type ColorMemorySQLite struct {
	db *sql.DB
}

func NewColorMemorySQLite(db *sql.DB) *ColorMemorySQLite {
	return &ColorMemorySQLite{db: db}
}

const (
	insertOrUpdateColorSQL = `
		INSERT INTO background_colors (background, color_index, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(background) DO UPDATE SET
			color_index=excluded.color_index,
			updated_at=excluded.updated_at
	`

	selectColorSQL = `
		SELECT color_index FROM background_colors WHERE background=?
	`
)

// Save records the color index last used with the given background image.
func (r *ColorMemorySQLite) Save(ctx context.Context, background string, colorIndex int) error {
	background = strings.TrimSpace(background)
	if background == "" {
		return errors.New("empty background name")
	}
	_, err := r.db.ExecContext(ctx, insertOrUpdateColorSQL,
		background,
		colorIndex,
		time.Now().UTC(),
	)
	return err
}

// Load returns the remembered color index for a background. The second
// return value is false when no color has been stored for it yet.
func (r *ColorMemorySQLite) Load(ctx context.Context, background string) (int, bool, error) {
	row := r.db.QueryRowContext(ctx, selectColorSQL, strings.TrimSpace(background))

	var idx int
	if err := row.Scan(&idx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return idx, true, nil
}
