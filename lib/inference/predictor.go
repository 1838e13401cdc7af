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

// Package inference runs the full grade-estimation pipeline over raw text:
// normalize, tokenize, chunk, classify and aggregate.
package inference

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/antflydb/litgrade/lib/aggregation"
	"github.com/antflydb/litgrade/lib/chunking"
	"github.com/antflydb/litgrade/lib/classification"
	"github.com/antflydb/litgrade/lib/modelstore"
	"github.com/antflydb/litgrade/lib/textproc"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoChunksFormed is returned by the pre-flight check when the text is
	// shorter than one window.
	ErrNoChunksFormed = errors.New("no chunk could be formed: provide a longer text")

	// ErrEmptyInput is returned when the text contains no tokens at all.
	ErrEmptyInput = errors.New("text contains no words")
)

// Options controls a single prediction.
type Options struct {
	Window chunking.WindowParams
	// Transliterate converts Cyrillic text to Latin script before tokenizing.
	Transliterate bool
}

// Prediction is the result of one inference call.
type Prediction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	// Confidence is nil when the classifier only predicts hard labels.
	Confidence      *float64                `json:"confidence"`
	ConfidenceLevel aggregation.Level       `json:"confidence_level,omitempty"`
	Comment         string                  `json:"comment,omitempty"`
	Probabilities   []aggregation.LabelProb `json:"probabilities"`
	Top3            []aggregation.LabelProb `json:"top3"`
	// Votes is set instead of Probabilities for hard-label classifiers.
	Votes          map[string]int `json:"votes,omitempty"`
	NumChunks      int            `json:"num_chunks"`
	NumTokens      int            `json:"num_tokens"`
	ChunkSize      int            `json:"chunk_size"`
	ChunkStride    int            `json:"chunk_stride"`
	Transliterated bool           `json:"transliterated"`
	CacheHit       bool           `json:"cache_hit"`
}

// HasConfidence reports whether a probability-based confidence is available.
func (p *Prediction) HasConfidence() bool {
	return p.Confidence != nil
}

// Clone returns a deep copy of p so cached results can be handed out safely.
func (p *Prediction) Clone() *Prediction {
	c := *p
	if p.Confidence != nil {
		v := *p.Confidence
		c.Confidence = &v
	}
	c.Probabilities = append([]aggregation.LabelProb(nil), p.Probabilities...)
	c.Top3 = append([]aggregation.LabelProb(nil), p.Top3...)
	if p.Votes != nil {
		c.Votes = make(map[string]int, len(p.Votes))
		for k, v := range p.Votes {
			c.Votes[k] = v
		}
	}
	return &c
}

// Predictor runs inference against one immutable model. It holds no
// per-call state and is safe for concurrent use.
type Predictor struct {
	model             *modelstore.Model
	logger            *zap.Logger
	autoTransliterate bool
}

// NewPredictor creates a predictor. A nil or unavailable model is accepted;
// every call then fails with classification.ErrModelUnavailable.
func NewPredictor(model *modelstore.Model, autoTransliterate bool, logger *zap.Logger) *Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{
		model:             model,
		logger:            logger.Named("predictor"),
		autoTransliterate: autoTransliterate,
	}
}

// Model returns the model the predictor serves.
func (p *Predictor) Model() *modelstore.Model {
	return p.model
}

// Available reports whether inference can run.
func (p *Predictor) Available() bool {
	return p.model.Available()
}

// DefaultOptions returns the default window and the configured
// transliteration setting.
func (p *Predictor) DefaultOptions() Options {
	return Options{Window: chunking.DefaultWindowParams(), Transliterate: p.autoTransliterate}
}

// Predict estimates the grade of text using lenient chunking, so texts
// shorter than one window are still scored as a single chunk. Zero window
// fields take the 400/200 defaults.
func (p *Predictor) Predict(ctx context.Context, text string, params chunking.WindowParams) (*Prediction, error) {
	opts := p.DefaultOptions()
	opts.Window = params
	return p.PredictWithOptions(ctx, text, opts)
}

// PredictWithOptions is Predict with explicit transliteration control.
func (p *Predictor) PredictWithOptions(ctx context.Context, text string, opts Options) (*Prediction, error) {
	if !p.model.Available() {
		return nil, classification.ErrModelUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	window := opts.Window.WithDefaults()
	if err := window.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	text, transliterated := prepare(text, opts.Transliterate)
	tokens := textproc.Tokens(text)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	chunks, err := chunking.MakeChunks(tokens, window, chunking.ModeLenient)
	if err != nil {
		return nil, err
	}

	pred := &Prediction{
		ID:             uuid.NewString(),
		NumChunks:      len(chunks),
		NumTokens:      len(tokens),
		ChunkSize:      window.Size,
		ChunkStride:    window.Stride,
		Transliterated: transliterated,
	}

	m := p.model
	rows, err := classification.Classify(chunks, m.Vectorizer, m.Classifier)
	switch {
	case err == nil:
		ranking, err := aggregation.Aggregate(rows, m.Labels)
		if err != nil {
			return nil, fmt.Errorf("aggregating chunk probabilities: %w", err)
		}
		confidence := ranking.Confidence
		level := aggregation.ConfidenceLevel(confidence)
		pred.Label = ranking.Top
		pred.Confidence = &confidence
		pred.ConfidenceLevel = level
		pred.Comment = level.Comment()
		pred.Probabilities = ranking.Ranked
		pred.Top3 = ranking.Top3
	case errors.Is(err, classification.ErrNoProbabilities):
		vote, err := classification.Vote(chunks, m.Vectorizer, m.Classifier)
		if err != nil {
			return nil, fmt.Errorf("majority vote: %w", err)
		}
		pred.Label = m.LabelFor(vote.Label)
		pred.Votes = make(map[string]int, len(vote.Counts))
		for class, n := range vote.Counts {
			pred.Votes[m.LabelFor(class)] = n
		}
		pred.Comment = "Confidence unavailable: the model predicts labels only."
		pred.Probabilities = []aggregation.LabelProb{}
		pred.Top3 = []aggregation.LabelProb{}
	default:
		return nil, err
	}

	p.logger.Debug("Predicted grade",
		zap.String("id", pred.ID),
		zap.String("label", pred.Label),
		zap.Int("tokens", pred.NumTokens),
		zap.Int("chunks", pred.NumChunks),
		zap.Bool("transliterated", transliterated),
		zap.Duration("duration", time.Since(start)))
	return pred, nil
}

// Preview is the pre-flight result for a text.
type Preview struct {
	NumChunks int `json:"num_chunks"`
	NumTokens int `json:"num_tokens"`
}

// PreviewChunkCount counts the chunks strict chunking would form and fails
// with ErrNoChunksFormed when the text is shorter than one window.
func PreviewChunkCount(text string, params chunking.WindowParams) (int, error) {
	pv, err := PreviewText(text, params, false)
	return pv.NumChunks, err
}

// PreviewText is PreviewChunkCount that also reports the token count and
// optionally transliterates first.
func PreviewText(text string, params chunking.WindowParams, transliterate bool) (Preview, error) {
	window := params.WithDefaults()
	if err := window.Validate(); err != nil {
		return Preview{}, err
	}
	text, _ = prepare(text, transliterate)
	n := len(textproc.Tokens(text))
	pv := Preview{NumTokens: n, NumChunks: chunking.Count(n, window, chunking.ModeStrict)}
	if pv.NumChunks == 0 {
		return pv, fmt.Errorf("%w: %d tokens, chunk size %d", ErrNoChunksFormed, n, window.Size)
	}
	return pv, nil
}

func prepare(text string, transliterate bool) (string, bool) {
	if transliterate && textproc.HasCyrillic(text) {
		return textproc.ToLatin(text), true
	}
	return text, false
}
