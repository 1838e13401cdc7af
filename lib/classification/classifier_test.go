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

func testVectorizer(t *testing.T) *TfidfVectorizer {
	t.Helper()
	vec, err := NewTfidfVectorizer(TfidfConfig{
		Vocabulary: map[string]int{"ertak": 0, "kitob": 1, "roman": 2, "falsafa": 3},
		IDF:        []float64{1, 1, 1, 1},
	})
	require.NoError(t, err)
	return vec
}

// testLogReg scores "ertak" towards grade 5, "roman" towards 7 and "falsafa"
// towards 9.
func testLogReg(t *testing.T) *LogisticRegression {
	t.Helper()
	lr, err := NewLogisticRegression(LinearConfig{
		Kind:    KindLogisticRegression,
		Classes: []string{"5", "7", "9"},
		Coef: [][]float64{
			{4, 0, -1, -2},
			{-1, 0, 4, 0},
			{-2, 0, 0, 4},
		},
		Intercept: []float64{0, 0, 0},
	})
	require.NoError(t, err)
	return lr
}

func testSVC(t *testing.T) *LinearSVC {
	t.Helper()
	svc, err := NewLinearSVC(LinearConfig{
		Kind:    KindLinearSVC,
		Classes: []string{"5", "7", "9"},
		Coef: [][]float64{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		Intercept: []float64{0, 0, 0},
	})
	require.NoError(t, err)
	return svc
}

func TestClassify_ModelUnavailable(t *testing.T) {
	_, err := Classify([]string{"ertak"}, nil, testLogReg(t))
	require.ErrorIs(t, err, ErrModelUnavailable)

	_, err = Classify([]string{"ertak"}, testVectorizer(t), nil)
	require.ErrorIs(t, err, ErrModelUnavailable)

	_, err = Vote([]string{"ertak"}, nil, testSVC(t))
	require.ErrorIs(t, err, ErrModelUnavailable)
}

func TestClassify_RowsSumToOne(t *testing.T) {
	chunks := []string{"ertak ertak kitob", "roman roman", "falsafa roman", "notanish so'zlar"}
	m, err := Classify(chunks, testVectorizer(t), testLogReg(t))
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 3, m.Cols())

	for i, row := range m {
		var sum float64
		for _, p := range row {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "row %d", i)
	}

	assert.Greater(t, m[0][0], m[0][1], "ertak chunk leans to grade 5")
	assert.Greater(t, m[1][1], m[1][0], "roman chunk leans to grade 7")
	assert.InDelta(t, 1.0/3, m[3][0], 1e-9, "unknown words give a uniform row")
}

func TestClassify_EmptyChunks(t *testing.T) {
	m, err := Classify(nil, testVectorizer(t), testLogReg(t))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestClassify_HardLabelClassifier(t *testing.T) {
	_, err := Classify([]string{"ertak"}, testVectorizer(t), testSVC(t))
	require.ErrorIs(t, err, ErrNoProbabilities)
}

func TestVote(t *testing.T) {
	res, err := Vote([]string{"roman", "ertak", "roman", "falsafa"}, testVectorizer(t), testSVC(t))
	require.NoError(t, err)
	assert.Equal(t, "7", res.Label)
	assert.Equal(t, 4, res.Chunks)
	assert.Equal(t, map[string]int{"5": 1, "7": 2, "9": 1}, res.Counts)
}

func TestVote_TieGoesToFirstClass(t *testing.T) {
	res, err := Vote([]string{"falsafa", "ertak"}, testVectorizer(t), testSVC(t))
	require.NoError(t, err)
	assert.Equal(t, "5", res.Label)
}

func TestVote_ProbabilisticClassifierAlsoVotes(t *testing.T) {
	res, err := Vote([]string{"falsafa falsafa", "falsafa"}, testVectorizer(t), testLogReg(t))
	require.NoError(t, err)
	assert.Equal(t, "9", res.Label)
}

func TestLogisticRegression_Binary(t *testing.T) {
	lr, err := NewLogisticRegression(LinearConfig{
		Classes:    []string{"5", "9"},
		Coef:       [][]float64{{0, 0, 0, 3}},
		Intercept:  []float64{0},
		MultiClass: MultiClassOVR,
	})
	require.NoError(t, err)

	x := testVectorizer(t).Transform([]string{"falsafa", "kitob"})
	proba, err := lr.PredictProba(x)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(-3)), proba[0][1], 1e-12)
	assert.InDelta(t, 0.5, proba[1][0], 1e-12)

	labels, err := lr.PredictLabels(x)
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "5"}, labels)
}

func TestLogisticRegression_BinaryMultinomial(t *testing.T) {
	lr, err := NewLogisticRegression(LinearConfig{
		Classes:   []string{"5", "9"},
		Coef:      [][]float64{{0, 0, 0, 1}},
		Intercept: []float64{0},
	})
	require.NoError(t, err)

	proba, err := lr.PredictProba(testVectorizer(t).Transform([]string{"falsafa", "kitob"}))
	require.NoError(t, err)
	assert.InDelta(t, 0.1192, proba[0][0], 1e-4)
	assert.InDelta(t, 0.8808, proba[0][1], 1e-4)
	assert.InDelta(t, 1/(1+math.Exp(2)), proba[0][0], 1e-12)
	assert.Equal(t, []float64{0.5, 0.5}, proba[1])
}

func TestLogisticRegression_OVRUnderflow(t *testing.T) {
	p := normalizedSigmoids([]float64{-800, -900, -1000})
	for _, v := range p {
		assert.False(t, math.IsNaN(v))
	}
	assert.InDelta(t, 1, p[0], 1e-12)
	assert.InDelta(t, 0, p[1]+p[2], 1e-12)

	lr, err := NewLogisticRegression(LinearConfig{
		Classes:    []string{"5", "7", "9"},
		Coef:       [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		Intercept:  []float64{-800, -900, -1000},
		MultiClass: MultiClassOVR,
	})
	require.NoError(t, err)
	m, err := Classify([]string{"ertak"}, testVectorizer(t), lr)
	require.NoError(t, err)
	assert.InDelta(t, 1, m[0][0], 1e-12)
}

type fixedProba struct {
	rows [][]float64
}

func (f fixedProba) Classes() []string { return []string{"5", "7"} }

func (f fixedProba) PredictProba(x []SparseVector) ([][]float64, error) {
	return f.rows, nil
}

func TestClassify_RejectsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		row  []float64
	}{
		{"nan", []float64{math.NaN(), 1}},
		{"inf", []float64{math.Inf(1), 0}},
		{"short sum", []float64{0.4, 0.5}},
		{"long sum", []float64{0.6, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify([]string{"ertak"}, testVectorizer(t), fixedProba{rows: [][]float64{tt.row}})
			require.ErrorIs(t, err, ErrInvalidDistribution)
		})
	}

	m, err := Classify([]string{"ertak"}, testVectorizer(t), fixedProba{rows: [][]float64{{0.25, 0.75 + 1e-12}}})
	require.NoError(t, err)
	assert.Len(t, m, 1)
}

func TestLogisticRegression_OVR(t *testing.T) {
	cfg := LinearConfig{
		Classes:    []string{"5", "7", "9"},
		Coef:       [][]float64{{1, 0, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}},
		Intercept:  []float64{0, 0, 0},
		MultiClass: MultiClassOVR,
	}
	lr, err := NewLogisticRegression(cfg)
	require.NoError(t, err)

	proba, err := lr.PredictProba(testVectorizer(t).Transform([]string{"ertak"}))
	require.NoError(t, err)
	s1, s0 := sigmoid(1), sigmoid(0)
	total := s1 + 2*s0
	assert.InDelta(t, s1/total, proba[0][0], 1e-12)
	assert.InDelta(t, s0/total, proba[0][1], 1e-12)
}

func TestNewLinearClassifier(t *testing.T) {
	base := LinearConfig{
		Classes:   []string{"5", "6"},
		Coef:      [][]float64{{1, 2}},
		Intercept: []float64{0},
	}

	clf, err := NewLinearClassifier(base)
	require.NoError(t, err)
	assert.IsType(t, &LogisticRegression{}, clf)

	base.Kind = KindLinearSVC
	clf, err = NewLinearClassifier(base)
	require.NoError(t, err)
	assert.IsType(t, &LinearSVC{}, clf)

	base.Kind = "random_forest"
	clf, err = NewLinearClassifier(base)
	require.Error(t, err)
	assert.Nil(t, clf)
}

func TestNewLinearModel_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  LinearConfig
	}{
		{"one class", LinearConfig{Classes: []string{"5"}, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{"coef rows", LinearConfig{Classes: []string{"5", "6", "7"}, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{"intercept", LinearConfig{Classes: []string{"5", "6"}, Coef: [][]float64{{1}}, Intercept: nil}},
		{"ragged", LinearConfig{Classes: []string{"5", "6", "7"}, Coef: [][]float64{{1}, {1, 2}, {1}}, Intercept: []float64{0, 0, 0}}},
		{"duplicate", LinearConfig{Classes: []string{"5", "5"}, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{"multi_class", LinearConfig{Classes: []string{"5", "6"}, Coef: [][]float64{{1}}, Intercept: []float64{0}, MultiClass: "crammer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLogisticRegression(tt.cfg)
			require.Error(t, err)
		})
	}
}

func TestSoftmax_Stable(t *testing.T) {
	p := softmax([]float64{1000, 1000, -1000})
	assert.InDelta(t, 0.5, p[0], 1e-12)
	assert.InDelta(t, 0.5, p[1], 1e-12)
	assert.InDelta(t, 0.0, p[2], 1e-12)
}
