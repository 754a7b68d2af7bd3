// Package transcript records program runs and their diagnostics in a SQL
// database: a local sqlite file or a shared MySQL server.
package transcript

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	driverSQLite = "sqlite"
	driverMySQL  = "mysql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id          VARCHAR(36) PRIMARY KEY,
		program     TEXT NOT NULL,
		backend     VARCHAR(32) NOT NULL,
		started_at  BIGINT NOT NULL,
		finished_at BIGINT NOT NULL,
		output      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS diagnostics (
		run_id     VARCHAR(36) NOT NULL,
		seq        INTEGER NOT NULL,
		line       INTEGER NOT NULL,
		kind       VARCHAR(16) NOT NULL,
		message    TEXT NOT NULL,
		suppressed INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	)`,
}

// Run is one recorded execution.
type Run struct {
	ID          string
	Program     string
	Backend     string
	StartedAt   time.Time
	FinishedAt  time.Time
	Output      string
	Diagnostics []Diagnostic
}

// Diagnostic is one language error raised during a run. Suppressed errors
// were raised but not printed.
type Diagnostic struct {
	Seq        int
	Line       int
	Kind       string
	Message    string
	Suppressed bool
}

type Recorder struct {
	db     *sql.DB
	driver string
}

// NewRunID returns a fresh random run id.
func NewRunID() string {
	return uuid.NewString()
}

// ParseDSN splits a recorder DSN into a database/sql driver name and its
// data source. A DSN without a scheme is a sqlite file path.
func ParseDSN(dsn string) (driver, source string, err error) {
	switch {
	case dsn == "":
		return "", "", fmt.Errorf("empty transcript DSN")
	case strings.HasPrefix(dsn, "mysql://"):
		source = strings.TrimPrefix(dsn, "mysql://")
		if _, err := mysql.ParseDSN(source); err != nil {
			return "", "", fmt.Errorf("mysql DSN: %w", err)
		}
		return driverMySQL, source, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		source = strings.TrimPrefix(dsn, "sqlite://")
		if source == "" {
			return "", "", fmt.Errorf("sqlite DSN: missing path")
		}
		return driverSQLite, source, nil
	case strings.Contains(dsn, "://"):
		return "", "", fmt.Errorf("unsupported transcript DSN scheme: %s", dsn)
	}
	return driverSQLite, dsn, nil
}

// Open connects to the database named by dsn and creates the schema.
func Open(ctx context.Context, dsn string) (*Recorder, error) {
	driver, source, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("opening transcript database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to transcript database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating transcript schema: %w", err)
		}
	}
	return &Recorder{db: db, driver: driver}, nil
}

func (r *Recorder) Driver() string { return r.driver }

func (r *Recorder) Close() error {
	return r.db.Close()
}

// Record stores run and its diagnostics in one transaction. An empty run id
// is replaced with a fresh one.
func (r *Recorder) Record(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = NewRunID()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transcript: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, program, backend, started_at, finished_at, output) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Program, run.Backend, run.StartedAt.UnixNano(), run.FinishedAt.UnixNano(), run.Output)
	if err != nil {
		return "", fmt.Errorf("recording run %s: %w", run.ID, err)
	}

	for i, d := range run.Diagnostics {
		suppressed := 0
		if d.Suppressed {
			suppressed = 1
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO diagnostics (run_id, seq, line, kind, message, suppressed) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, d.Line, d.Kind, d.Message, suppressed)
		if err != nil {
			return "", fmt.Errorf("recording diagnostic %d of run %s: %w", i, run.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit transcript: %w", err)
	}
	return run.ID, nil
}

// Runs returns every recorded run, oldest first, without diagnostics.
func (r *Recorder) Runs(ctx context.Context) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, program, backend, started_at, finished_at, output FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started, finished int64
		if err := rows.Scan(&run.ID, &run.Program, &run.Backend, &started, &finished, &run.Output); err != nil {
			return nil, fmt.Errorf("reading run: %w", err)
		}
		run.StartedAt = time.Unix(0, started)
		run.FinishedAt = time.Unix(0, finished)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Diagnostics returns the diagnostics of one run in the order they were raised.
func (r *Recorder) Diagnostics(ctx context.Context, runID string) ([]Diagnostic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, line, kind, message, suppressed FROM diagnostics WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing diagnostics of %s: %w", runID, err)
	}
	defer rows.Close()

	var out []Diagnostic
	for rows.Next() {
		var d Diagnostic
		var suppressed int
		if err := rows.Scan(&d.Seq, &d.Line, &d.Kind, &d.Message, &suppressed); err != nil {
			return nil, fmt.Errorf("reading diagnostic: %w", err)
		}
		d.Suppressed = suppressed != 0
		out = append(out, d)
	}
	return out, rows.Err()
}
