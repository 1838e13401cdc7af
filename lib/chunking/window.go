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

// Package chunking slides a fixed-size, fixed-stride window over a token
// sequence and rejoins each window into a text chunk.
package chunking

import (
	"errors"
	"fmt"
	"strings"
)

// Default window parameters, in tokens.
const (
	DefaultSize   = 400
	DefaultStride = 200
)

// ErrInvalidWindow is returned when the window size or stride is not positive.
var ErrInvalidWindow = errors.New("chunk size and stride must be positive")

// Mode selects what happens when the token sequence is shorter than one window.
type Mode int

const (
	// ModeStrict emits no chunk when no full window fits. Used for pre-flight
	// validation, which must reject short input rather than guess.
	ModeStrict Mode = iota

	// ModeLenient falls back to a single chunk holding every token when no
	// full window fits and at least one token exists. Used for inference so
	// that short texts still get scored.
	ModeLenient
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// WindowParams holds the window geometry. Stride <= Size yields overlapping
// chunks; Stride > Size leaves gaps between chunks.
type WindowParams struct {
	// Size is the number of tokens per chunk.
	Size int `json:"chunk_size"`
	// Stride is the distance between consecutive chunk start offsets.
	Stride int `json:"chunk_stride"`
}

// DefaultWindowParams returns the 400/200 window.
func DefaultWindowParams() WindowParams {
	return WindowParams{Size: DefaultSize, Stride: DefaultStride}
}

// Validate checks that both parameters are positive.
func (p WindowParams) Validate() error {
	if p.Size <= 0 || p.Stride <= 0 {
		return fmt.Errorf("%w: size=%d stride=%d", ErrInvalidWindow, p.Size, p.Stride)
	}
	return nil
}

// WithDefaults replaces zero fields with the defaults. Negative values are
// kept so that Validate still rejects them.
func (p WindowParams) WithDefaults() WindowParams {
	if p.Size == 0 {
		p.Size = DefaultSize
	}
	if p.Stride == 0 {
		p.Stride = DefaultStride
	}
	return p
}

// Offsets returns the start offset of every full window over n tokens.
func Offsets(n int, p WindowParams) []int {
	if n < p.Size || p.Size <= 0 || p.Stride <= 0 {
		return nil
	}
	offsets := make([]int, 0, (n-p.Size)/p.Stride+1)
	for i := 0; i <= n-p.Size; i += p.Stride {
		offsets = append(offsets, i)
	}
	return offsets
}

// Count returns the number of chunks MakeChunks would produce for n tokens
// without building them.
func Count(n int, p WindowParams, mode Mode) int {
	if p.Size <= 0 || p.Stride <= 0 {
		return 0
	}
	if n >= p.Size {
		return (n-p.Size)/p.Stride + 1
	}
	if mode == ModeLenient && n > 0 {
		return 1
	}
	return 0
}

// MakeChunks cuts tokens into windows of exactly p.Size tokens starting at
// offsets 0, p.Stride, 2*p.Stride, ... A trailing partial window is dropped.
// When no full window fits, the result depends on mode.
func MakeChunks(tokens []string, p WindowParams, mode Mode) ([]string, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	offsets := Offsets(len(tokens), p)
	if len(offsets) == 0 {
		if mode == ModeLenient && len(tokens) > 0 {
			return []string{strings.Join(tokens, " ")}, nil
		}
		return []string{}, nil
	}

	chunks := make([]string, len(offsets))
	for i, start := range offsets {
		chunks[i] = strings.Join(tokens[start:start+p.Size], " ")
	}
	return chunks, nil
}
