// Package store is the local calendar/reminders store that accepted cards
// are written into.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS events (
    id         TEXT PRIMARY KEY,
    title      TEXT NOT NULL,
    location   TEXT NOT NULL DEFAULT '',
    start_at   TEXT NOT NULL,
    end_at     TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    all_day    INTEGER NOT NULL DEFAULT 0,
    email_id   TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reminders (
    id         TEXT PRIMARY KEY,
    title      TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    due_at     TEXT NOT NULL DEFAULT '',
    priority   INTEGER NOT NULL DEFAULT 0,
    email_id   TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
`

type DB struct {
	db *sql.DB
}

func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

type Event struct {
	ID        string
	Title     string
	Location  string
	StartAt   time.Time
	EndAt     time.Time
	Notes     string
	AllDay    bool
	EmailID   string
	CreatedAt time.Time
}

type Reminder struct {
	ID        string
	Title     string
	Notes     string
	DueAt     *time.Time
	Priority  int
	EmailID   string
	CreatedAt time.Time
}

// SaveEvent writes an event, replacing any previous row with the same id so
// that redoing an undone save is idempotent.
func (d *DB) SaveEvent(ev Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO events (id, title, location, start_at, end_at, notes, all_day, email_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.Location,
		ev.StartAt.Format(time.RFC3339), ev.EndAt.Format(time.RFC3339),
		ev.Notes, boolInt(ev.AllDay), ev.EmailID, ev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func (d *DB) DeleteEvent(id string) error {
	if _, err := d.db.Exec("DELETE FROM events WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (d *DB) Events() ([]Event, error) {
	rows, err := d.db.Query(
		"SELECT id, title, location, start_at, end_at, notes, all_day, email_id, created_at FROM events ORDER BY start_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var startAt, endAt, createdAt string
		var allDay int
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Location, &startAt, &endAt, &ev.Notes, &allDay, &ev.EmailID, &createdAt); err != nil {
			return nil, err
		}
		ev.StartAt = parseTime(startAt)
		ev.EndAt = parseTime(endAt)
		ev.CreatedAt = parseTime(createdAt)
		ev.AllDay = allDay != 0
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (d *DB) EventCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

// SaveReminder writes a reminder; same replace semantics as SaveEvent.
func (d *DB) SaveReminder(rem Reminder) error {
	if rem.CreatedAt.IsZero() {
		rem.CreatedAt = time.Now()
	}
	due := ""
	if rem.DueAt != nil {
		due = rem.DueAt.Format(time.RFC3339)
	}
	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO reminders (id, title, notes, due_at, priority, email_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rem.ID, rem.Title, rem.Notes, due, rem.Priority, rem.EmailID, rem.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}
	return nil
}

func (d *DB) DeleteReminder(id string) error {
	if _, err := d.db.Exec("DELETE FROM reminders WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

func (d *DB) Reminders() ([]Reminder, error) {
	rows, err := d.db.Query(
		"SELECT id, title, notes, due_at, priority, email_id, created_at FROM reminders ORDER BY created_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		var rem Reminder
		var due, createdAt string
		if err := rows.Scan(&rem.ID, &rem.Title, &rem.Notes, &due, &rem.Priority, &rem.EmailID, &createdAt); err != nil {
			return nil, err
		}
		if due != "" {
			t := parseTime(due)
			rem.DueAt = &t
		}
		rem.CreatedAt = parseTime(createdAt)
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (d *DB) ReminderCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM reminders").Scan(&n)
	return n, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
