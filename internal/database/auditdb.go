package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/dh-archival/papercheck/internal/model"
)

// AuditDB stores per-journal run summaries in SQLite.
type AuditDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an AuditDB in dbDir.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, "papercheck.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite: mode=rw refuses to create new files, mode=rwc
	// allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports one writer; a single pooled connection avoids
	// SQLITE_BUSY churn during result saving.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// createTables creates the schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	schema := `
	-- Runs group the journal summaries of one invocation
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		command TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- One summary per journal per run
	CREATE TABLE IF NOT EXISTS journal_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		journal TEXT NOT NULL,
		command TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		case_counts TEXT NOT NULL,
		stats TEXT NOT NULL,
		counts TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_journal ON journal_reports(journal);
	CREATE INDEX IF NOT EXISTS idx_reports_command ON journal_reports(command);
	CREATE INDEX IF NOT EXISTS idx_reports_run ON journal_reports(run_id);
	`

	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// BeginRun records a new run and returns its ID.
func (adb *AuditDB) BeginRun(ctx context.Context, command string) (int64, error) {
	result, err := adb.db.ExecContext(ctx,
		"INSERT INTO runs (command) VALUES (?)", command)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return result.LastInsertId()
}

// SaveJournalReport persists one journal's summary under the given run.
func (adb *AuditDB) SaveJournalReport(ctx context.Context, runID int64, rep *model.JournalReport) error {
	caseJSON, err := json.Marshal(rep.Cases.CountsByName())
	if err != nil {
		return fmt.Errorf("failed to serialize case counts: %w", err)
	}
	statsJSON, err := json.Marshal(rep.Stats)
	if err != nil {
		return fmt.Errorf("failed to serialize stats: %w", err)
	}
	countsJSON, err := json.Marshal(rep.Counts)
	if err != nil {
		return fmt.Errorf("failed to serialize counts: %w", err)
	}

	_, err = adb.db.ExecContext(ctx, `
	INSERT INTO journal_reports (run_id, journal, command, case_counts, stats, counts)
	VALUES (?, ?, ?, ?, ?, ?)`,
		runID, rep.Journal, rep.Command,
		string(caseJSON), string(statsJSON), string(countsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal report: %w", err)
	}
	return nil
}

// StoredReport is one persisted journal summary.
type StoredReport struct {
	ID         int64
	RunID      int64
	Journal    string
	Command    string
	Timestamp  time.Time
	CaseCounts map[string]int
	Stats      model.StatCounters
	Counts     model.JournalCounts
}

// ErrNoHistory is returned when a journal has fewer stored runs than a
// comparison needs.
var ErrNoHistory = errors.New("not enough run history")

// JournalHistory returns the most recent stored summaries for a journal
// and command, newest first. A non-positive limit returns all history.
func (adb *AuditDB) JournalHistory(ctx context.Context, journal, command string, limit int) ([]StoredReport, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unlimited
	}
	rows, err := adb.db.QueryContext(ctx, `
	SELECT id, run_id, journal, command, timestamp, case_counts, stats, counts
	FROM journal_reports
	WHERE journal = ? AND command = ?
	ORDER BY id DESC
	LIMIT ?`, journal, command, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal history: %w", err)
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var (
			rep        StoredReport
			timestamp  string
			caseJSON   string
			statsJSON  string
			countsJSON string
		)
		if err := rows.Scan(&rep.ID, &rep.RunID, &rep.Journal, &rep.Command,
			&timestamp, &caseJSON, &statsJSON, &countsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan journal report: %w", err)
		}
		rep.Timestamp = parseTimestamp(timestamp)
		if err := json.Unmarshal([]byte(caseJSON), &rep.CaseCounts); err != nil {
			return nil, fmt.Errorf("failed to parse case counts: %w", err)
		}
		if err := json.Unmarshal([]byte(statsJSON), &rep.Stats); err != nil {
			return nil, fmt.Errorf("failed to parse stats: %w", err)
		}
		if err := json.Unmarshal([]byte(countsJSON), &rep.Counts); err != nil {
			return nil, fmt.Errorf("failed to parse counts: %w", err)
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}

// ListJournals returns every journal with stored history, sorted.
func (adb *AuditDB) ListJournals(ctx context.Context) ([]string, error) {
	rows, err := adb.db.QueryContext(ctx,
		"SELECT DISTINCT journal FROM journal_reports ORDER BY journal")
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	defer rows.Close()

	var journals []string
	for rows.Next() {
		var journal string
		if err := rows.Scan(&journal); err != nil {
			return nil, fmt.Errorf("failed to scan journal: %w", err)
		}
		journals = append(journals, journal)
	}
	return journals, rows.Err()
}

// timestampFormats contains the timestamp formats SQLite may return.
// More specific formats come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp parses a SQLite timestamp in any of the known formats,
// returning the zero time when none matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
