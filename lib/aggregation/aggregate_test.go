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

package aggregation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grades = []string{"5", "6", "7", "8", "9"}

// randomRows returns n random distributions over k classes.
func randomRows(r *rand.Rand, n, k int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, k)
		var sum float64
		for j := range row {
			row[j] = r.Float64() + 1e-3
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
		rows[i] = row
	}
	return rows
}

func TestAggregate_ThreeRows(t *testing.T) {
	rows := [][]float64{{0.9, 0.1}, {0.8, 0.2}, {0.7, 0.3}}
	r, err := Aggregate(rows, []string{"5", "6"})
	require.NoError(t, err)

	require.Len(t, r.Mean, 2)
	assert.InDelta(t, 0.8, r.Mean[0].Probability, 1e-12)
	assert.InDelta(t, 0.2, r.Mean[1].Probability, 1e-12)
	assert.Equal(t, "5", r.Top)
	assert.InDelta(t, 0.8, r.Confidence, 1e-12)
	assert.Equal(t, LevelMedium, ConfidenceLevel(r.Confidence))
	assert.Len(t, r.Top3, 2)
}

func TestAggregate_SumsToOne(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.IntN(20)
		rows := randomRows(r, n, len(grades))
		agg, err := Aggregate(rows, grades)
		require.NoError(t, err)
		require.Len(t, agg.Mean, len(grades))
		require.Len(t, agg.Ranked, len(grades))

		var sum float64
		for _, lp := range agg.Mean {
			sum += lp.Probability
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	rows := randomRows(r, 12, len(grades))
	want, err := Mean(rows)
	require.NoError(t, err)

	for trial := 0; trial < 20; trial++ {
		shuffled := make([][]float64, len(rows))
		copy(shuffled, rows)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := Mean(shuffled)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for j := range want {
			assert.InDelta(t, want[j], got[j], 1e-12)
		}
	}
}

func TestAggregate_TiesKeepLabelOrder(t *testing.T) {
	rows := [][]float64{{0.1, 0.3, 0.3, 0.3}}
	labels := []string{"5", "7", "6", "9"}

	for run := 0; run < 10; run++ {
		r, err := Aggregate(rows, labels)
		require.NoError(t, err)
		assert.Equal(t, "7", r.Top)
		assert.Equal(t, []LabelProb{
			{Label: "7", Probability: 0.3},
			{Label: "6", Probability: 0.3},
			{Label: "9", Probability: 0.3},
		}, r.Top3)
		assert.Equal(t, "5", r.Ranked[3].Label)
	}
}

func TestAggregate_RankedDescending(t *testing.T) {
	rows := [][]float64{
		{0.05, 0.10, 0.50, 0.25, 0.10},
		{0.05, 0.20, 0.40, 0.25, 0.10},
	}
	r, err := Aggregate(rows, grades)
	require.NoError(t, err)

	assert.Equal(t, "7", r.Top)
	assert.InDelta(t, 0.45, r.Confidence, 1e-12)
	for i := 1; i < len(r.Ranked); i++ {
		assert.GreaterOrEqual(t, r.Ranked[i-1].Probability, r.Ranked[i].Probability)
	}
	require.Len(t, r.Top3, 3)
	assert.Equal(t, []string{"7", "8", "6"}, []string{r.Top3[0].Label, r.Top3[1].Label, r.Top3[2].Label})

	// Mean keeps the label order.
	assert.Equal(t, "5", r.Mean[0].Label)
}

func TestAggregate_Errors(t *testing.T) {
	_, err := Aggregate(nil, grades)
	require.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = Aggregate([][]float64{{}}, nil)
	require.ErrorIs(t, err, ErrEmptyMatrix)

	_, err = Aggregate([][]float64{{0.5, 0.5}, {1}}, []string{"5", "6"})
	require.Error(t, err)

	_, err = Aggregate([][]float64{{0.5, 0.5}}, []string{"5"})
	require.Error(t, err)
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		p    float64
		want Level
	}{
		{1.0, LevelHigh},
		{0.85, LevelHigh},
		{0.849999, LevelMedium},
		{0.8, LevelMedium},
		{0.70, LevelMedium},
		{0.69999, LevelLow},
		{0, LevelLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceLevel(tt.p), "p=%v", tt.p)
	}
}

func TestLevel_Comment(t *testing.T) {
	assert.Contains(t, LevelLow.Comment(), "more text")
	assert.NotEqual(t, LevelHigh.Comment(), LevelMedium.Comment())
}
