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

// Package classification applies a fitted vectorizer and classifier to text
// chunks. The vectorizer turns each chunk into a sparse term-weight vector
// and the classifier maps vectors to a distribution over grade labels.
package classification

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrModelUnavailable is returned when the vectorizer or the classifier is
	// missing. Callers get no result rather than a partial one.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrNoProbabilities is returned by Classify when the classifier only
	// predicts hard labels. Callers fall back to Vote.
	ErrNoProbabilities = errors.New("classifier does not expose probabilities")

	// ErrInvalidDistribution is returned by Classify when a probability row
	// holds a non-finite value or does not sum to one.
	ErrInvalidDistribution = errors.New("invalid probability distribution")
)

// distributionTolerance bounds how far a probability row may sum from one.
const distributionTolerance = 1e-9

// Vectorizer transforms chunk texts into fixed-dimension feature vectors.
type Vectorizer interface {
	Transform(docs []string) []SparseVector
	Dim() int
}

// Classifier is a fitted model over a fixed, ordered label set.
type Classifier interface {
	Classes() []string
}

// ProbabilisticClassifier predicts one probability per class for each vector.
type ProbabilisticClassifier interface {
	Classifier
	PredictProba(x []SparseVector) ([][]float64, error)
}

// LabelPredictor predicts a single class label for each vector.
type LabelPredictor interface {
	Classifier
	PredictLabels(x []SparseVector) ([]string, error)
}

// Matrix holds one row per chunk and one column per class.
type Matrix [][]float64

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, or zero for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Classify vectorizes chunks and returns the class probability matrix. Rows
// follow the chunk order and columns follow clf.Classes().
func Classify(chunks []string, vec Vectorizer, clf Classifier) (Matrix, error) {
	if vec == nil || clf == nil {
		return nil, ErrModelUnavailable
	}
	proba, ok := clf.(ProbabilisticClassifier)
	if !ok {
		return nil, ErrNoProbabilities
	}
	if len(chunks) == 0 {
		return Matrix{}, nil
	}

	rows, err := proba.PredictProba(vec.Transform(chunks))
	if err != nil {
		return nil, fmt.Errorf("predicting probabilities: %w", err)
	}
	if len(rows) != len(chunks) {
		return nil, fmt.Errorf("classifier returned %d rows for %d chunks", len(rows), len(chunks))
	}
	k := len(clf.Classes())
	for i, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), k)
		}
		if err := checkDistribution(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return Matrix(rows), nil
}

func checkDistribution(row []float64) error {
	var sum float64
	for j, p := range row {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: column %d is %v", ErrInvalidDistribution, j, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > distributionTolerance {
		return fmt.Errorf("%w: sums to %v", ErrInvalidDistribution, sum)
	}
	return nil
}

// VoteResult is the outcome of hard-label majority voting.
type VoteResult struct {
	// Label is the plurality label.
	Label string
	// Counts holds the number of chunks predicted for each label.
	Counts map[string]int
	// Chunks is the number of chunks that voted.
	Chunks int
}

// Vote predicts one label per chunk and returns the plurality label. Ties go
// to the label that comes first in clf.Classes().
func Vote(chunks []string, vec Vectorizer, clf Classifier) (VoteResult, error) {
	if vec == nil || clf == nil {
		return VoteResult{}, ErrModelUnavailable
	}
	lp, ok := clf.(LabelPredictor)
	if !ok {
		return VoteResult{}, fmt.Errorf("classifier %T predicts neither probabilities nor labels", clf)
	}
	if len(chunks) == 0 {
		return VoteResult{Counts: map[string]int{}}, nil
	}

	labels, err := lp.PredictLabels(vec.Transform(chunks))
	if err != nil {
		return VoteResult{}, fmt.Errorf("predicting labels: %w", err)
	}

	counts := make(map[string]int, len(clf.Classes()))
	for _, l := range labels {
		counts[l]++
	}

	best, bestCount := "", -1
	for _, c := range clf.Classes() {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return VoteResult{Label: best, Counts: counts, Chunks: len(labels)}, nil
}
