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

package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"5/zumrad_va_qimmat.txt": "Bir bor ekan, bir yo'q ekan.",
		"5/alpomish.TXT":         "Alpomish dostoni.",
		"5/notes.md":             "skip me",
		"9/otkan_kunlar.txt":     "O'tkan kunlar",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("outside"), 0o644))
	return New(dir)
}

func TestList(t *testing.T) {
	lib := newTestLibrary(t)
	require.True(t, lib.Exists())

	items, err := lib.List("5")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "alpomish.TXT", items[0].Name)
	assert.Equal(t, "zumrad_va_qimmat.txt", items[1].Name)
	assert.Equal(t, "5", items[0].Grade)

	items, err = lib.List("7")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = lib.List("10")
	require.ErrorIs(t, err, ErrUnknownGrade)
}

func TestOverview(t *testing.T) {
	counts, err := newTestLibrary(t).Overview()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"5": 2, "6": 0, "7": 0, "8": 0, "9": 1}, counts)
}

func TestRead(t *testing.T) {
	lib := newTestLibrary(t)

	text, err := lib.Read("9", "otkan_kunlar.txt")
	require.NoError(t, err)
	assert.Equal(t, "O'tkan kunlar", text)

	for _, name := range []string{"missing.txt", "../secret.txt", "../../secret.txt", "notes.md"} {
		_, err := lib.Read("5", name)
		require.ErrorIs(t, err, ErrNotFound, name)
	}

	_, err = lib.Read("6", "anything.txt")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = lib.Read("4", "otkan_kunlar.txt")
	require.ErrorIs(t, err, ErrUnknownGrade)
}

func TestMissingLibrary(t *testing.T) {
	lib := New(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, lib.Exists())

	counts, err := lib.Overview()
	require.NoError(t, err)
	assert.Zero(t, counts["5"])
}
