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

package classification

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTfidfVectorizer_Transform(t *testing.T) {
	vec, err := NewTfidfVectorizer(TfidfConfig{
		Vocabulary: map[string]int{"kitob": 0, "maktab": 1, "a": 2},
		IDF:        []float64{1, 2, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, vec.Dim())

	out := vec.Transform([]string{"kitob kitob maktab a", "notanish"})
	require.Len(t, out, 2)

	// "a" is shorter than the minimum token length and is never counted.
	assert.Equal(t, []int{0, 1}, out[0].Indices)
	assert.InDelta(t, 1/math.Sqrt2, out[0].Values[0], 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, out[0].Values[1], 1e-12)
	assert.InDelta(t, 1.0, out[0].Norm2(), 1e-12)

	assert.Empty(t, out[1].Indices)
}

func TestTfidfVectorizer_SublinearAndNgrams(t *testing.T) {
	vec, err := NewTfidfVectorizer(TfidfConfig{
		Vocabulary:  map[string]int{"qora": 0, "qora kitob": 1, "kitob": 2},
		IDF:         []float64{1, 1, 1},
		NgramRange:  [2]int{1, 2},
		SublinearTF: true,
		Norm:        NormNone,
	})
	require.NoError(t, err)

	out := vec.Transform([]string{"qora kitob qora kitob"})[0]
	assert.Equal(t, []int{0, 1, 2}, out.Indices)
	want := 1 + math.Log(2)
	for _, v := range out.Values {
		assert.InDelta(t, want, v, 1e-12)
	}
}

func TestTfidfVectorizer_BinaryL1(t *testing.T) {
	vec, err := NewTfidfVectorizer(TfidfConfig{
		Vocabulary: map[string]int{"bir": 0, "ikki": 1},
		IDF:        []float64{1, 3},
		Binary:     true,
		Norm:       NormL1,
	})
	require.NoError(t, err)

	out := vec.Transform([]string{"bir bir bir ikki"})[0]
	assert.InDelta(t, 0.25, out.Values[0], 1e-12)
	assert.InDelta(t, 0.75, out.Values[1], 1e-12)
}

func TestNewTfidfVectorizer_Validation(t *testing.T) {
	_, err := NewTfidfVectorizer(TfidfConfig{})
	require.Error(t, err)

	_, err = NewTfidfVectorizer(TfidfConfig{Vocabulary: map[string]int{"x": 3}, IDF: []float64{1}})
	require.Error(t, err)

	_, err = NewTfidfVectorizer(TfidfConfig{Vocabulary: map[string]int{"x": 0}, IDF: []float64{1}, NgramRange: [2]int{2, 1}})
	require.Error(t, err)

	_, err = NewTfidfVectorizer(TfidfConfig{Vocabulary: map[string]int{"x": 0}, IDF: []float64{1}, Norm: "max"})
	require.Error(t, err)
}

func TestSparseVector_Dot(t *testing.T) {
	v := SparseVector{Indices: []int{0, 2, 9}, Values: []float64{1, 2, 100}}
	// Index 9 is past the weight row and contributes nothing.
	assert.InDelta(t, 1*3+2*4, v.Dot([]float64{3, 0, 4}), 1e-12)
}
