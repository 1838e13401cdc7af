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
	"fmt"
	"math"
)

// Linear model kinds as stored in classifier.json.
const (
	KindLogisticRegression = "logistic_regression"
	KindLinearSVC          = "linear_svc"
)

// Multi-class strategies for logistic regression.
const (
	MultiClassMultinomial = "multinomial"
	MultiClassOVR         = "ovr"
)

// LinearConfig is the fitted state of a linear classifier as stored in
// classifier.json.
type LinearConfig struct {
	Kind       string      `json:"kind"`
	Classes    []string    `json:"classes"`
	Coef       [][]float64 `json:"coef"`
	Intercept  []float64   `json:"intercept"`
	MultiClass string      `json:"multi_class,omitempty"`
}

// linearModel holds the decision function shared by both linear kinds. A
// binary model stores a single weight row scoring the second class.
type linearModel struct {
	classes   []string
	coef      [][]float64
	intercept []float64
}

func newLinearModel(cfg LinearConfig) (linearModel, error) {
	k := len(cfg.Classes)
	if k < 2 {
		return linearModel{}, fmt.Errorf("classifier needs at least 2 classes, got %d", k)
	}
	rows := k
	if k == 2 {
		rows = 1
	}
	if len(cfg.Coef) != rows {
		return linearModel{}, fmt.Errorf("coef has %d rows, want %d for %d classes", len(cfg.Coef), rows, k)
	}
	if len(cfg.Intercept) != rows {
		return linearModel{}, fmt.Errorf("intercept has %d entries, want %d", len(cfg.Intercept), rows)
	}
	width := len(cfg.Coef[0])
	if width == 0 {
		return linearModel{}, fmt.Errorf("coef rows are empty")
	}
	for i, row := range cfg.Coef {
		if len(row) != width {
			return linearModel{}, fmt.Errorf("coef row %d has %d features, want %d", i, len(row), width)
		}
	}
	seen := make(map[string]struct{}, k)
	for _, c := range cfg.Classes {
		if _, dup := seen[c]; dup {
			return linearModel{}, fmt.Errorf("duplicate class %q", c)
		}
		seen[c] = struct{}{}
	}
	return linearModel{classes: cfg.Classes, coef: cfg.Coef, intercept: cfg.Intercept}, nil
}

// Classes returns the ordered class labels.
func (m linearModel) Classes() []string {
	return m.classes
}

// NumFeatures returns the width of the weight rows.
func (m linearModel) NumFeatures() int {
	return len(m.coef[0])
}

func (m linearModel) decision(x SparseVector) []float64 {
	scores := make([]float64, len(m.coef))
	for i, row := range m.coef {
		scores[i] = x.Dot(row) + m.intercept[i]
	}
	return scores
}

func (m linearModel) argmaxLabel(x SparseVector) string {
	scores := m.decision(x)
	if len(scores) == 1 {
		if scores[0] > 0 {
			return m.classes[1]
		}
		return m.classes[0]
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return m.classes[best]
}

func (m linearModel) predictLabels(x []SparseVector) []string {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = m.argmaxLabel(v)
	}
	return out
}

// LogisticRegression is a probabilistic linear classifier.
type LogisticRegression struct {
	linearModel
	multiClass string
}

var (
	_ ProbabilisticClassifier = (*LogisticRegression)(nil)
	_ LabelPredictor          = (*LogisticRegression)(nil)
)

// NewLogisticRegression validates cfg and returns the classifier.
func NewLogisticRegression(cfg LinearConfig) (*LogisticRegression, error) {
	lm, err := newLinearModel(cfg)
	if err != nil {
		return nil, err
	}
	mc := cfg.MultiClass
	switch mc {
	case "":
		mc = MultiClassMultinomial
	case MultiClassMultinomial, MultiClassOVR:
	default:
		return nil, fmt.Errorf("unknown multi_class %q", mc)
	}
	return &LogisticRegression{linearModel: lm, multiClass: mc}, nil
}

// PredictProba returns one distribution per vector. Multinomial models use
// softmax, one-vs-rest models normalize the per-class sigmoids. A binary
// multinomial model scores the pair as (-d, d).
func (l *LogisticRegression) PredictProba(x []SparseVector) ([][]float64, error) {
	out := make([][]float64, len(x))
	for i, v := range x {
		scores := l.decision(v)
		switch {
		case len(scores) == 1 && l.multiClass == MultiClassOVR:
			p := sigmoid(scores[0])
			out[i] = []float64{1 - p, p}
		case len(scores) == 1:
			out[i] = softmax([]float64{-scores[0], scores[0]})
		case l.multiClass == MultiClassOVR:
			out[i] = normalizedSigmoids(scores)
		default:
			out[i] = softmax(scores)
		}
	}
	return out, nil
}

// PredictLabels returns the most probable class for each vector.
func (l *LogisticRegression) PredictLabels(x []SparseVector) ([]string, error) {
	return l.predictLabels(x), nil
}

// LinearSVC is a linear classifier exposing only hard labels.
type LinearSVC struct {
	linearModel
}

var _ LabelPredictor = (*LinearSVC)(nil)

// NewLinearSVC validates cfg and returns the classifier.
func NewLinearSVC(cfg LinearConfig) (*LinearSVC, error) {
	lm, err := newLinearModel(cfg)
	if err != nil {
		return nil, err
	}
	return &LinearSVC{linearModel: lm}, nil
}

// PredictLabels returns the class with the highest decision score.
func (s *LinearSVC) PredictLabels(x []SparseVector) ([]string, error) {
	return s.predictLabels(x), nil
}

// NewLinearClassifier builds the classifier named by cfg.Kind.
func NewLinearClassifier(cfg LinearConfig) (Classifier, error) {
	switch cfg.Kind {
	case KindLogisticRegression, "":
		lr, err := NewLogisticRegression(cfg)
		if err != nil {
			return nil, err
		}
		return lr, nil
	case KindLinearSVC:
		svc, err := NewLinearSVC(cfg)
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unknown classifier kind %q", cfg.Kind)
	}
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func softmax(scores []float64) []float64 {
	maxScore := scores[0]
	for _, s := range scores[1:] {
		maxScore = math.Max(maxScore, s)
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// normalizedSigmoids falls back to softmax when every sigmoid underflows.
func normalizedSigmoids(scores []float64) []float64 {
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = sigmoid(s)
		sum += out[i]
	}
	if sum == 0 {
		return softmax(scores)
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
