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

package feedback

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "feedback", "feedback.db"), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_PragmasAndSchema(t *testing.T) {
	s := openTestStore(t)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var sync string
	require.NoError(t, s.DB().QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, "1", sync)

	var fk string
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, "1", fk)

	var table string
	require.NoError(t, s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'feedback'").Scan(&table))
	assert.Equal(t, "feedback", table)
	assert.NotNil(t, s.Client())
}

func TestOpen_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.db")
	ctx := context.Background()

	s, err := Open(path, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, Entry{Message: "Juda foydali dastur"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAdd(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	e, err := s.Add(ctx, Entry{Message: "  7-sinf deb chiqdi, aslida 8  ", PredictionID: "p-1", Label: "8"})
	require.NoError(t, err)
	assert.Len(t, e.ID, 36)
	assert.Equal(t, "7-sinf deb chiqdi, aslida 8", e.Message)
	assert.False(t, e.CreatedAt.IsZero())

	_, err = s.Add(ctx, Entry{Message: " \n\t "})
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = s.Add(ctx, Entry{Message: strings.Repeat("a", MaxMessageLength+1)})
	require.ErrorIs(t, err, ErrMessageTooLong)

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, e.ID, entries[0].ID)
	assert.Equal(t, "p-1", entries[0].PredictionID)
	assert.Equal(t, "8", entries[0].Label)
	assert.True(t, e.CreatedAt.Equal(entries[0].CreatedAt))
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, msg := range []string{"birinchi", "ikkinchi", "uchinchi"} {
		_, err := s.Add(ctx, Entry{Message: msg})
		require.NoError(t, err)
	}

	entries, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "uchinchi", entries[0].Message)
	assert.Equal(t, "ikkinchi", entries[1].Message)
}

func TestExportCSV(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.Add(ctx, Entry{Message: "Birinchi qator\nikkinchi qator"})
	require.NoError(t, err)
	_, err = s.Add(ctx, Entry{Message: `"Qo'shtirnoq", vergul`, Label: "9"})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := s.ExportCSV(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"timestamp", "message", "id", "prediction_id", "label"}, records[0])
	assert.Equal(t, "Birinchi qator ikkinchi qator", records[1][1])
	assert.Equal(t, `"Qo'shtirnoq", vergul`, records[2][1])
	assert.Equal(t, "9", records[2][4])
}

func TestOpen_InMemory(t *testing.T) {
	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
