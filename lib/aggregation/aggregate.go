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

// Package aggregation combines per-chunk class distributions into a single
// ranked grade estimate.
package aggregation

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyMatrix is returned when there is nothing to aggregate.
var ErrEmptyMatrix = errors.New("probability matrix is empty")

// LabelProb pairs a class label with its probability.
type LabelProb struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Ranking is the aggregated result over all chunks.
type Ranking struct {
	// Mean holds the mean probability per label in the original label order.
	Mean []LabelProb `json:"-"`
	// Ranked holds every label sorted by descending probability.
	Ranked []LabelProb `json:"probabilities"`
	// Top is the highest-ranked label.
	Top string `json:"label"`
	// Confidence is the mean probability of Top.
	Confidence float64 `json:"confidence"`
	// Top3 holds the first three entries of Ranked, or fewer if fewer labels exist.
	Top3 []LabelProb `json:"top3"`
}

// Mean returns the column-wise arithmetic mean of rows. Every row has the
// same weight regardless of where its chunk sits in the text.
func Mean(rows [][]float64) ([]float64, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	k := len(rows[0])
	sum := make([]float64, k)
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), k)
		}
		for j, p := range row {
			sum[j] += p
		}
	}
	n := float64(len(rows))
	for j := range sum {
		sum[j] /= n
	}
	return sum, nil
}

// Aggregate averages rows and ranks labels by descending mean probability.
// Equal probabilities keep the order of labels, so repeated runs on the same
// input produce the same ranking.
func Aggregate(rows [][]float64, labels []string) (Ranking, error) {
	mean, err := Mean(rows)
	if err != nil {
		return Ranking{}, err
	}
	if len(labels) != len(mean) {
		return Ranking{}, fmt.Errorf("got %d labels for %d columns", len(labels), len(mean))
	}

	byLabel := make([]LabelProb, len(mean))
	for j, p := range mean {
		byLabel[j] = LabelProb{Label: labels[j], Probability: p}
	}
	return Rank(byLabel), nil
}

// Rank sorts a label distribution and derives the top label, confidence and
// top three entries. dist must not be empty.
func Rank(dist []LabelProb) Ranking {
	ranked := make([]LabelProb, len(dist))
	copy(ranked, dist)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Probability > ranked[b].Probability
	})

	return Ranking{
		Mean:       dist,
		Ranked:     ranked,
		Top:        ranked[0].Label,
		Confidence: ranked[0].Probability,
		Top3:       ranked[:min(3, len(ranked))],
	}
}
