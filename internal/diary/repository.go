package diary

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles persistence of diary entries to SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository backed by an open connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert records a meal for a date, replacing any existing entry.
func (r *Repository) Upsert(ctx context.Context, date time.Time, mealName string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO diary_entries (day, meal) VALUES (?, ?)
		ON CONFLICT(day) DO UPDATE SET meal = excluded.meal`,
		Day(date).Format(DateFormat), mealName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert diary entry: %w", err)
	}
	return nil
}

// SaveAll records every entry of the given diary.
func (r *Repository) SaveAll(ctx context.Context, d *Diary) error {
	for _, date := range d.Dates() {
		name, _ := d.Get(date)
		if err := r.Upsert(ctx, date, name); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the entry for a date. Deleting an absent date is a no-op.
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM diary_entries WHERE day = ?`,
		Day(date).Format(DateFormat))
	if err != nil {
		return fmt.Errorf("failed to delete diary entry: %w", err)
	}
	return nil
}

// Load retrieves entries on or after start and strictly before end. A
// zero start or end leaves that side unbounded.
func (r *Repository) Load(ctx context.Context, start, end time.Time) (*Diary, error) {
	query := `SELECT day, meal FROM diary_entries`
	var args []any
	switch {
	case !start.IsZero() && !end.IsZero():
		query += ` WHERE day >= ? AND day < ?`
		args = append(args, Day(start).Format(DateFormat), Day(end).Format(DateFormat))
	case !start.IsZero():
		query += ` WHERE day >= ?`
		args = append(args, Day(start).Format(DateFormat))
	case !end.IsZero():
		query += ` WHERE day < ?`
		args = append(args, Day(end).Format(DateFormat))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query diary entries: %w", err)
	}
	defer rows.Close()

	d := New()
	for rows.Next() {
		var dayStr, mealName string
		if err := rows.Scan(&dayStr, &mealName); err != nil {
			return nil, fmt.Errorf("failed to scan diary entry: %w", err)
		}
		date, err := time.Parse(DateFormat, dayStr)
		if err != nil {
			return nil, fmt.Errorf("malformed diary date %q: %w", dayStr, err)
		}
		d.Add(date, mealName)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read diary entries: %w", err)
	}
	return d, nil
}

// LoadAll retrieves the full diary.
func (r *Repository) LoadAll(ctx context.Context) (*Diary, error) {
	return r.Load(ctx, time.Time{}, time.Time{})
}
