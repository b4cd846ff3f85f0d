package sink

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// batchSize is how many facts a Store buffers before committing a
// transaction. Per-row autocommit makes SQLite bulk loads crawl.
const batchSize = 1000

// Store is a TripleSink that bulk-loads facts into a SQLite database.
// Each extraction gets a row in `runs` keyed by a random UUID; facts and
// prefix declarations reference it, so one database can hold the graphs
// of many modules.
type Store struct {
	db    *sql.DB
	tx    *sql.Tx
	runID string
	batch int
	count uint64
	err   error
}

var _ TripleSink = (*Store)(nil)

// NewStore opens (or creates) a SQLite database at dbPath with WAL mode
// enabled, migrates the schema, and registers a new run.
func NewStore(dbPath, baseIRI string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	runID := uuid.NewString()
	if _, err := db.Exec(
		"INSERT INTO runs (id, base_iri, created_at) VALUES (?, ?, ?)",
		runID, baseIRI, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("register run: %w", err)
	}
	return &Store{db: db, runID: runID}, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS runs (
  id              TEXT PRIMARY KEY,
  base_iri        TEXT NOT NULL,
  created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS facts (
  id              INTEGER PRIMARY KEY,
  run_id          TEXT NOT NULL REFERENCES runs(id),
  subject         TEXT NOT NULL,
  predicate       TEXT NOT NULL,
  object          TEXT NOT NULL,
  object_kind     TEXT NOT NULL,
  datatype        TEXT
);

CREATE TABLE IF NOT EXISTS prefixes (
  run_id          TEXT NOT NULL REFERENCES runs(id),
  prefix          TEXT NOT NULL,
  namespace       TEXT NOT NULL,
  PRIMARY KEY (run_id, prefix)
);

CREATE INDEX IF NOT EXISTS idx_facts_run ON facts(run_id);
CREATE INDEX IF NOT EXISTS idx_facts_subject ON facts(subject);
CREATE INDEX IF NOT EXISTS idx_facts_predicate ON facts(predicate);
CREATE INDEX IF NOT EXISTS idx_facts_object ON facts(object);
`

// RunID returns the UUID this sink's facts are recorded under.
func (s *Store) RunID() string { return s.runID }

// DB returns the underlying *sql.DB for ad hoc queries after Flush.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) insert(subject, predicate, object string, kind FactKind, datatype string) {
	if s.err != nil {
		return
	}
	if s.tx == nil {
		tx, err := s.db.Begin()
		if err != nil {
			s.err = fmt.Errorf("begin transaction: %w", err)
			return
		}
		s.tx = tx
	}
	var dt any
	if datatype != "" {
		dt = datatype
	}
	if _, err := s.tx.Exec(
		"INSERT INTO facts (run_id, subject, predicate, object, object_kind, datatype) VALUES (?, ?, ?, ?, ?, ?)",
		s.runID, subject, predicate, object, string(kind), dt,
	); err != nil {
		s.err = fmt.Errorf("insert fact: %w", err)
		s.tx.Rollback()
		s.tx = nil
		return
	}
	s.count++
	s.batch++
	if s.batch >= batchSize {
		if err := s.tx.Commit(); err != nil {
			s.err = fmt.Errorf("commit batch: %w", err)
		}
		s.tx = nil
		s.batch = 0
	}
}

func (s *Store) EmitIRI(subject, predicate, object string) {
	s.insert(subject, predicate, object, FactIRI, "")
}

func (s *Store) EmitLiteral(subject, predicate, value string) {
	s.insert(subject, predicate, value, FactLiteral, "")
}

func (s *Store) EmitTypedLiteral(subject, predicate, value, datatype string) {
	s.insert(subject, predicate, value, FactTyped, datatype)
}

func (s *Store) EmitBool(subject, predicate string, value bool) {
	s.insert(subject, predicate, strconv.FormatBool(value), FactBool, "")
}

func (s *Store) EmitInt(subject, predicate string, value int) {
	s.insert(subject, predicate, strconv.Itoa(value), FactInt, "")
}

func (s *Store) EmitLong(subject, predicate string, value int64) {
	s.insert(subject, predicate, strconv.FormatInt(value, 10), FactLong, "")
}

func (s *Store) AddPrefix(prefix, ns string) {
	if s.err != nil {
		return
	}
	if s.tx == nil {
		tx, err := s.db.Begin()
		if err != nil {
			s.err = fmt.Errorf("begin transaction: %w", err)
			return
		}
		s.tx = tx
	}
	if _, err := s.tx.Exec(
		"INSERT OR REPLACE INTO prefixes (run_id, prefix, namespace) VALUES (?, ?, ?)",
		s.runID, prefix, ns,
	); err != nil {
		s.err = fmt.Errorf("insert prefix: %w", err)
		s.tx.Rollback()
		s.tx = nil
	}
}

// Flush commits any open batch and reports the first error seen.
func (s *Store) Flush() error {
	if s.tx != nil {
		if err := s.tx.Commit(); err != nil && s.err == nil {
			s.err = fmt.Errorf("commit batch: %w", err)
		}
		s.tx = nil
		s.batch = 0
	}
	return s.err
}

func (s *Store) FactCount() uint64 { return s.count }

// Close flushes pending facts and closes the database.
func (s *Store) Close() error {
	flushErr := s.Flush()
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return flushErr
}
