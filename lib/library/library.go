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

// Package library serves the bundled reading texts stored as
// <dir>/<grade>/*.txt.
package library

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/antflydb/litgrade/lib/extraction"
)

var (
	// ErrUnknownGrade is returned for a grade outside Grades.
	ErrUnknownGrade = errors.New("unknown grade")

	// ErrNotFound is returned when a text does not exist.
	ErrNotFound = errors.New("library text not found")
)

// Grades are the grade folders the library knows about.
var Grades = []string{"5", "6", "7", "8", "9"}

// Item is one text in the library.
type Item struct {
	Grade string `json:"grade"`
	Name  string `json:"name"`
	Size  int64  `json:"size"`
}

// Library reads texts from a directory tree. A missing directory is an
// empty library.
type Library struct {
	dir string
}

// New returns a library rooted at dir.
func New(dir string) *Library {
	return &Library{dir: dir}
}

// Dir returns the root directory.
func (l *Library) Dir() string {
	return l.dir
}

// Exists reports whether the root directory exists.
func (l *Library) Exists() bool {
	info, err := os.Stat(l.dir)
	return err == nil && info.IsDir()
}

// List returns the .txt files of a grade sorted by name.
func (l *Library) List(grade string) ([]Item, error) {
	if !slices.Contains(Grades, grade) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrade, grade)
	}
	entries, err := os.ReadDir(filepath.Join(l.dir, grade))
	if errors.Is(err, fs.ErrNotExist) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing grade %s: %w", grade, err)
	}

	items := []Item{}
	for _, e := range entries {
		if e.IsDir() || !isText(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		items = append(items, Item{Grade: grade, Name: e.Name(), Size: info.Size()})
	}
	slices.SortFunc(items, func(a, b Item) int { return strings.Compare(a.Name, b.Name) })
	return items, nil
}

// Overview returns the number of texts per grade.
func (l *Library) Overview() (map[string]int, error) {
	out := make(map[string]int, len(Grades))
	for _, g := range Grades {
		items, err := l.List(g)
		if err != nil {
			return nil, err
		}
		out[g] = len(items)
	}
	return out, nil
}

// Read returns the text of grade/name. Names must be plain .txt filenames;
// the file is opened through an os.Root so it cannot escape the grade folder.
func (l *Library) Read(grade, name string) (string, error) {
	if !slices.Contains(Grades, grade) {
		return "", fmt.Errorf("%w: %q", ErrUnknownGrade, grade)
	}
	if !isText(name) || name != filepath.Base(name) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	root, err := os.OpenRoot(filepath.Join(l.dir, grade))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s/%s", ErrNotFound, grade, name)
		}
		return "", fmt.Errorf("opening grade %s: %w", grade, err)
	}
	defer func() { _ = root.Close() }()

	f, err := root.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s/%s", ErrNotFound, grade, name)
		}
		return "", fmt.Errorf("opening %s/%s: %w", grade, name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s/%s: %w", grade, name, err)
	}
	return extraction.Extract(data, extraction.FormatText)
}

func isText(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".txt")
}
