// Copyright 2025 Antfly, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package feedback persists reader feedback in a local SQLite database.
package feedback

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/antflydb/litgrade/ent"
	entfeedback "github.com/antflydb/litgrade/ent/feedback"
	"go.uber.org/zap"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// MaxMessageLength is the longest accepted message, in runes.
const MaxMessageLength = 4000

var (
	// ErrEmptyMessage is returned when a feedback message is blank.
	ErrEmptyMessage = errors.New("feedback message is empty")

	// ErrMessageTooLong is returned when a message exceeds MaxMessageLength.
	ErrMessageTooLong = fmt.Errorf("feedback message exceeds %d characters", MaxMessageLength)
)

// Entry is one feedback submission.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
	// PredictionID optionally ties the feedback to a prediction.
	PredictionID string `json:"prediction_id,omitempty"`
	// Label optionally records the grade the reader expected.
	Label string `json:"label,omitempty"`
}

// Store is a feedback log backed by SQLite.
type Store struct {
	db     *sql.DB
	client *ent.Client
	logger *zap.Logger
}

// Open opens or creates the database at path, applies pragmas and runs
// auto-migration. Use ":memory:" for an in-memory store.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating feedback directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection and an in-memory database is private to
	// its connection, so the pool holds exactly one.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	logger.Debug("Opened feedback store", zap.String("path", path))
	return &Store{db: db, client: client, logger: logger.Named("feedback")}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database.
func (s *Store) Close() error {
	return s.client.Close()
}

// Add validates and stores e, assigning its ID and timestamp.
func (s *Store) Add(ctx context.Context, e Entry) (Entry, error) {
	e.Message = strings.TrimSpace(e.Message)
	if e.Message == "" {
		return Entry{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(e.Message) > MaxMessageLength {
		return Entry{}, ErrMessageTooLong
	}

	row, err := s.client.Feedback.Create().
		SetCreatedAt(time.Now().UTC()).
		SetMessage(e.Message).
		SetPredictionID(e.PredictionID).
		SetLabel(e.Label).
		Save(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("save feedback: %w", err)
	}
	e = entryFromRow(row)
	s.logger.Info("Stored feedback",
		zap.String("id", e.ID),
		zap.String("prediction_id", e.PredictionID),
		zap.Int("length", len(e.Message)))
	return e, nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	q := s.client.Feedback.Query().Order(ent.Desc(entfeedback.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	return entriesFromRows(rows), nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	n, err := s.client.Feedback.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}

// ExportCSV writes every entry, oldest first, as CSV with a header row.
// Newlines inside messages are flattened to spaces.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.client.Feedback.Query().Order(ent.Asc(entfeedback.FieldID)).All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query feedback: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "message", "id", "prediction_id", "label"}); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entriesFromRows(rows) {
		record := []string{
			e.CreatedAt.UTC().Format(time.RFC3339),
			strings.Join(strings.Fields(e.Message), " "),
			e.ID,
			e.PredictionID,
			e.Label,
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flushing csv: %w", err)
	}
	return len(rows), nil
}

func entryFromRow(row *ent.Feedback) Entry {
	return Entry{
		ID:           row.UUID.String(),
		CreatedAt:    row.CreatedAt,
		Message:      row.Message,
		PredictionID: row.PredictionID,
		Label:        row.Label,
	}
}

func entriesFromRows(rows []*ent.Feedback) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = entryFromRow(row)
	}
	return entries
}

// applyPragmas configures SQLite for a single-process writer.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
