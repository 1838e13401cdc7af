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

// Package modelstore loads the fitted vectorizer, classifier and label list
// from a model directory into an immutable Model shared by every request.
package modelstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/antflydb/litgrade/lib/classification"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// Artifact filenames inside a model directory.
const (
	VectorizerFilename = "vectorizer.json"
	ClassifierFilename = "classifier.json"
	LabelsFilename     = "labels.json"
)

// Model is the loaded vectorizer, classifier and ordered label list. It is
// never mutated after construction, so it is shared without locking.
type Model struct {
	Vectorizer classification.Vectorizer
	Classifier classification.Classifier
	// Labels are the display names of the classifier columns, in column order.
	Labels []string

	Dir      string
	Manifest *Manifest
	LoadedAt time.Time
}

// Info summarizes a model for the API.
type Info struct {
	Available     bool     `json:"available"`
	Labels        []string `json:"labels"`
	Classes       []string `json:"classes"`
	Classifier    string   `json:"classifier"`
	Probabilistic bool     `json:"probabilistic"`
	Features      int      `json:"features"`
	Name          string   `json:"name,omitempty"`
	LoadedAt      string   `json:"loaded_at,omitempty"`
}

// New checks that the three parts fit together and returns the model.
func New(vec classification.Vectorizer, clf classification.Classifier, labels []string) (*Model, error) {
	if vec == nil || clf == nil || len(labels) == 0 {
		return nil, classification.ErrModelUnavailable
	}
	classes := clf.Classes()
	if len(labels) != len(classes) {
		return nil, fmt.Errorf("%w: %d labels for %d classifier classes",
			classification.ErrModelUnavailable, len(labels), len(classes))
	}
	if w, ok := clf.(interface{ NumFeatures() int }); ok && w.NumFeatures() != vec.Dim() {
		return nil, fmt.Errorf("%w: classifier expects %d features, vectorizer produces %d",
			classification.ErrModelUnavailable, w.NumFeatures(), vec.Dim())
	}
	return &Model{
		Vectorizer: vec,
		Classifier: clf,
		Labels:     labels,
		LoadedAt:   time.Now(),
	}, nil
}

// Available reports whether the model can serve inference.
func (m *Model) Available() bool {
	return m != nil && m.Vectorizer != nil && m.Classifier != nil && len(m.Labels) > 0
}

// Probabilistic reports whether the classifier exposes class probabilities.
func (m *Model) Probabilistic() bool {
	if !m.Available() {
		return false
	}
	_, ok := m.Classifier.(classification.ProbabilisticClassifier)
	return ok
}

// LabelFor maps a classifier class to its display label.
func (m *Model) LabelFor(class string) string {
	for i, c := range m.Classifier.Classes() {
		if c == class {
			return m.Labels[i]
		}
	}
	return class
}

// Info returns a summary of the model. A nil model reports unavailable.
func (m *Model) Info() Info {
	if !m.Available() {
		return Info{Labels: []string{}, Classes: []string{}}
	}
	info := Info{
		Available:     true,
		Labels:        m.Labels,
		Classes:       m.Classifier.Classes(),
		Classifier:    fmt.Sprintf("%T", m.Classifier),
		Probabilistic: m.Probabilistic(),
		Features:      m.Vectorizer.Dim(),
		LoadedAt:      m.LoadedAt.UTC().Format(time.RFC3339),
	}
	switch m.Classifier.(type) {
	case *classification.LogisticRegression:
		info.Classifier = classification.KindLogisticRegression
	case *classification.LinearSVC:
		info.Classifier = classification.KindLinearSVC
	}
	if m.Manifest != nil {
		info.Name = m.Manifest.Name
	}
	return info
}

// Load reads the artifacts from dir. Every failure wraps
// classification.ErrModelUnavailable. When a manifest is present the
// artifact digests are verified before parsing.
func Load(dir string, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir == "" {
		return nil, fmt.Errorf("%w: no model directory configured", classification.ErrModelUnavailable)
	}

	for _, name := range ArtifactFiles() {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", classification.ErrModelUnavailable, name, err)
		}
	}

	manifest, err := LoadManifestFromDir(dir)
	switch {
	case err == nil:
		if err := manifest.Verify(dir); err != nil {
			return nil, fmt.Errorf("%w: %w", classification.ErrModelUnavailable, err)
		}
		logger.Debug("Verified model manifest",
			zap.String("name", manifest.Name),
			zap.Int("files", len(manifest.Files)))
	case errors.Is(err, os.ErrNotExist):
		manifest = nil
		logger.Debug("No model manifest, skipping digest verification", zap.String("dir", dir))
	default:
		return nil, fmt.Errorf("%w: %w", classification.ErrModelUnavailable, err)
	}

	var vecCfg classification.TfidfConfig
	if err := readJSON(filepath.Join(dir, VectorizerFilename), &vecCfg); err != nil {
		return nil, err
	}
	vec, err := classification.NewTfidfVectorizer(vecCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: vectorizer: %w", classification.ErrModelUnavailable, err)
	}

	var clfCfg classification.LinearConfig
	if err := readJSON(filepath.Join(dir, ClassifierFilename), &clfCfg); err != nil {
		return nil, err
	}
	clf, err := classification.NewLinearClassifier(clfCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: classifier: %w", classification.ErrModelUnavailable, err)
	}

	var labels []string
	if err := readJSON(filepath.Join(dir, LabelsFilename), &labels); err != nil {
		return nil, err
	}

	model, err := New(vec, clf, labels)
	if err != nil {
		return nil, err
	}
	model.Dir = dir
	model.Manifest = manifest

	logger.Info("Loaded grade model",
		zap.String("dir", dir),
		zap.Strings("labels", labels),
		zap.Int("features", vec.Dim()),
		zap.Bool("probabilistic", model.Probabilistic()))
	return model, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", classification.ErrModelUnavailable, filepath.Base(path), err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", classification.ErrModelUnavailable, filepath.Base(path), err)
	}
	return nil
}
