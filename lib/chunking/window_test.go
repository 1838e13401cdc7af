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

package chunking

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("t%d", i)
	}
	return tokens
}

func TestMakeChunks_InvalidWindow(t *testing.T) {
	for _, p := range []WindowParams{{0, 10}, {10, 0}, {-1, 5}, {5, -1}} {
		_, err := MakeChunks(makeTokens(20), p, ModeLenient)
		require.ErrorIs(t, err, ErrInvalidWindow, "params %+v", p)
	}
}

func TestMakeChunks_ShortInput(t *testing.T) {
	p := WindowParams{Size: 10, Stride: 5}
	for n := 0; n < p.Size; n++ {
		tokens := makeTokens(n)

		strict, err := MakeChunks(tokens, p, ModeStrict)
		require.NoError(t, err)
		assert.Empty(t, strict, "strict n=%d", n)
		assert.Equal(t, 0, Count(n, p, ModeStrict))

		lenient, err := MakeChunks(tokens, p, ModeLenient)
		require.NoError(t, err)
		if n == 0 {
			assert.Empty(t, lenient)
			assert.Equal(t, 0, Count(n, p, ModeLenient))
			continue
		}
		require.Len(t, lenient, 1, "lenient n=%d", n)
		assert.Equal(t, strings.Join(tokens, " "), lenient[0])
		assert.Len(t, strings.Fields(lenient[0]), n)
		assert.Equal(t, 1, Count(n, p, ModeLenient))
	}
}

func TestMakeChunks_ModesAgreeOnLongInput(t *testing.T) {
	params := []WindowParams{{1, 1}, {3, 1}, {4, 2}, {5, 5}, {5, 7}, {10, 3}}
	for _, p := range params {
		for n := p.Size; n < p.Size+25; n++ {
			tokens := makeTokens(n)
			strict, err := MakeChunks(tokens, p, ModeStrict)
			require.NoError(t, err)
			lenient, err := MakeChunks(tokens, p, ModeLenient)
			require.NoError(t, err)

			want := (n-p.Size)/p.Stride + 1
			assert.Equal(t, strict, lenient)
			assert.Len(t, strict, want, "n=%d params=%+v", n, p)
			assert.Equal(t, want, Count(n, p, ModeStrict))
			for _, c := range strict {
				assert.Len(t, strings.Fields(c), p.Size)
			}
		}
	}
}

func TestMakeChunks_ThousandTokens(t *testing.T) {
	tokens := makeTokens(1000)
	p := DefaultWindowParams()

	assert.Equal(t, []int{0, 200, 400, 600}, Offsets(len(tokens), p))

	chunks, err := MakeChunks(tokens, p, ModeLenient)
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	for _, c := range chunks {
		assert.Len(t, strings.Fields(c), 400)
	}

	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	assert.Equal(t, first[200:], second[:200], "consecutive chunks share 200 tokens")
	assert.Equal(t, "t0", first[0])
	assert.Equal(t, "t999", strings.Fields(chunks[3])[399])
}

func TestMakeChunks_FiftyTokens(t *testing.T) {
	tokens := makeTokens(50)
	p := DefaultWindowParams()

	lenient, err := MakeChunks(tokens, p, ModeLenient)
	require.NoError(t, err)
	require.Len(t, lenient, 1)
	assert.Len(t, strings.Fields(lenient[0]), 50)

	strict, err := MakeChunks(tokens, p, ModeStrict)
	require.NoError(t, err)
	assert.Empty(t, strict)
}

func TestMakeChunks_StrideLargerThanSize(t *testing.T) {
	chunks, err := MakeChunks(makeTokens(10), WindowParams{Size: 2, Stride: 4}, ModeStrict)
	require.NoError(t, err)
	assert.Equal(t, []string{"t0 t1", "t4 t5", "t8 t9"}, chunks)
}

func TestWindowParams_WithDefaults(t *testing.T) {
	assert.Equal(t, DefaultWindowParams(), WindowParams{}.WithDefaults())
	assert.Equal(t, WindowParams{Size: 100, Stride: 200}, WindowParams{Size: 100}.WithDefaults())
	assert.Equal(t, WindowParams{Size: -1, Stride: 200}, WindowParams{Size: -1}.WithDefaults())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "strict", ModeStrict.String())
	assert.Equal(t, "lenient", ModeLenient.String())
}
