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

package inference

import (
	"context"
	"strings"
	"testing"

	"github.com/antflydb/litgrade/lib/aggregation"
	"github.com/antflydb/litgrade/lib/chunking"
	"github.com/antflydb/litgrade/lib/classification"
	"github.com/antflydb/litgrade/lib/modelstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// repeatWords cycles through words until n tokens are produced.
func repeatWords(n int, words ...string) string {
	out := make([]string, n)
	for i := range out {
		out[i] = words[i%len(words)]
	}
	return strings.Join(out, " ")
}

func loadPredictor(t *testing.T) *Predictor {
	t.Helper()
	model, err := modelstore.Load("../../testdata/model", zaptest.NewLogger(t))
	require.NoError(t, err)
	return NewPredictor(model, true, zaptest.NewLogger(t))
}

func TestPredict_LongText(t *testing.T) {
	p := loadPredictor(t)
	text := repeatWords(1000, "Ertak,", "quyon", "tulki.")

	pred, err := p.Predict(context.Background(), text, chunking.WindowParams{Size: 400, Stride: 200})
	require.NoError(t, err)

	assert.NotEmpty(t, pred.ID)
	assert.Equal(t, "5", pred.Label)
	assert.Equal(t, 4, pred.NumChunks)
	assert.Equal(t, 1000, pred.NumTokens)
	require.True(t, pred.HasConfidence())
	assert.Greater(t, *pred.Confidence, aggregation.HighThreshold)
	assert.Equal(t, aggregation.LevelHigh, pred.ConfidenceLevel)
	assert.Len(t, pred.Probabilities, 5)
	require.Len(t, pred.Top3, 3)
	assert.Equal(t, "5", pred.Top3[0].Label)
	assert.False(t, pred.Transliterated)

	var sum float64
	for _, lp := range pred.Probabilities {
		sum += lp.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPredict_DefaultWindow(t *testing.T) {
	p := loadPredictor(t)
	pred, err := p.Predict(context.Background(), repeatWords(1000, "falsafa", "ruhiyat", "taqdir"), chunking.WindowParams{})
	require.NoError(t, err)
	assert.Equal(t, "9", pred.Label)
	assert.Equal(t, chunking.DefaultSize, pred.ChunkSize)
	assert.Equal(t, chunking.DefaultStride, pred.ChunkStride)
	assert.Equal(t, 4, pred.NumChunks)
}

func TestPredict_ShortTextScoredAsOneChunk(t *testing.T) {
	p := loadPredictor(t)
	text := repeatWords(50, "sarguzasht", "dengiz")

	pred, err := p.Predict(context.Background(), text, chunking.DefaultWindowParams())
	require.NoError(t, err)
	assert.Equal(t, 1, pred.NumChunks)
	assert.Equal(t, 50, pred.NumTokens)
	assert.Equal(t, "6", pred.Label)

	n, err := PreviewChunkCount(text, chunking.DefaultWindowParams())
	require.ErrorIs(t, err, ErrNoChunksFormed)
	assert.Zero(t, n)
}

func TestPredict_UnknownWordsTieOnFirstLabel(t *testing.T) {
	p := loadPredictor(t)
	pred, err := p.Predict(context.Background(), repeatWords(20, "lorem", "ipsum"), chunking.DefaultWindowParams())
	require.NoError(t, err)

	assert.Equal(t, "5", pred.Label)
	assert.InDelta(t, 0.2, *pred.Confidence, 1e-9)
	assert.Equal(t, aggregation.LevelLow, pred.ConfidenceLevel)
	assert.Equal(t, aggregation.LevelLow.Comment(), pred.Comment)
	assert.Equal(t, []string{"5", "6", "7"}, []string{pred.Top3[0].Label, pred.Top3[1].Label, pred.Top3[2].Label})
}

func TestPredict_Transliterates(t *testing.T) {
	p := loadPredictor(t)
	text := repeatWords(30, "Эртак", "қуён", "тулки")

	pred, err := p.Predict(context.Background(), text, chunking.DefaultWindowParams())
	require.NoError(t, err)
	assert.True(t, pred.Transliterated)
	assert.Equal(t, "5", pred.Label)

	pred, err = p.PredictWithOptions(context.Background(), text, Options{Transliterate: false})
	require.NoError(t, err)
	assert.False(t, pred.Transliterated)
	assert.InDelta(t, 0.2, *pred.Confidence, 1e-9)
}

func TestPredict_Errors(t *testing.T) {
	p := loadPredictor(t)
	ctx := context.Background()

	_, err := p.Predict(ctx, "  ...  !!! ", chunking.DefaultWindowParams())
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = p.Predict(ctx, "ertak", chunking.WindowParams{Size: -1, Stride: 200})
	require.ErrorIs(t, err, chunking.ErrInvalidWindow)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Predict(cancelled, "ertak", chunking.DefaultWindowParams())
	require.ErrorIs(t, err, context.Canceled)

	unavailable := NewPredictor(nil, false, nil)
	assert.False(t, unavailable.Available())
	_, err = unavailable.Predict(ctx, "ertak quyon", chunking.DefaultWindowParams())
	require.ErrorIs(t, err, classification.ErrModelUnavailable)
}

func TestPredict_IDsAreUnique(t *testing.T) {
	p := loadPredictor(t)
	a, err := p.Predict(context.Background(), "ertak quyon", chunking.DefaultWindowParams())
	require.NoError(t, err)
	b, err := p.Predict(context.Background(), "ertak quyon", chunking.DefaultWindowParams())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Probabilities, b.Probabilities)
}

func TestPredict_HardLabelClassifierVotes(t *testing.T) {
	vec, err := classification.NewTfidfVectorizer(classification.TfidfConfig{
		Vocabulary: map[string]int{"ertak": 0, "falsafa": 1},
		IDF:        []float64{1, 1},
	})
	require.NoError(t, err)
	svc, err := classification.NewLinearSVC(classification.LinearConfig{
		Kind:      classification.KindLinearSVC,
		Classes:   []string{"5", "9"},
		Coef:      [][]float64{{-1, 1}},
		Intercept: []float64{0},
	})
	require.NoError(t, err)
	model, err := modelstore.New(vec, svc, []string{"5-sinf", "9-sinf"})
	require.NoError(t, err)
	p := NewPredictor(model, false, zaptest.NewLogger(t))

	// Chunks at offsets 0 and 2 lean "ertak", the chunk at offset 4 leans "falsafa".
	text := "ertak ertak ertak ertak falsafa falsafa falsafa"
	pred, err := p.Predict(context.Background(), text, chunking.WindowParams{Size: 3, Stride: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, pred.NumChunks)
	assert.Equal(t, "5-sinf", pred.Label)
	assert.False(t, pred.HasConfidence())
	assert.Empty(t, pred.ConfidenceLevel)
	assert.Equal(t, map[string]int{"5-sinf": 2, "9-sinf": 1}, pred.Votes)
}

func TestPreviewChunkCount(t *testing.T) {
	text := repeatWords(1000, "so'z")

	n, err := PreviewChunkCount(repeatWords(1000, "soz"), chunking.DefaultWindowParams())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// "so'z" splits into two tokens.
	pv, err := PreviewText(text, chunking.DefaultWindowParams(), false)
	require.NoError(t, err)
	assert.Equal(t, 2000, pv.NumTokens)
	assert.Equal(t, 9, pv.NumChunks)

	_, err = PreviewChunkCount("bir ikki", chunking.WindowParams{Size: 3, Stride: 1})
	require.ErrorIs(t, err, ErrNoChunksFormed)

	_, err = PreviewChunkCount("bir ikki", chunking.WindowParams{Size: 3, Stride: -1})
	require.ErrorIs(t, err, chunking.ErrInvalidWindow)
}

func TestPrediction_Clone(t *testing.T) {
	conf := 0.9
	orig := &Prediction{
		Confidence:    &conf,
		Probabilities: []aggregation.LabelProb{{Label: "5", Probability: 0.9}},
		Votes:         map[string]int{"5": 1},
	}
	c := orig.Clone()
	*c.Confidence = 0.1
	c.Probabilities[0].Label = "6"
	c.Votes["5"] = 7

	assert.InDelta(t, 0.9, *orig.Confidence, 1e-12)
	assert.Equal(t, "5", orig.Probabilities[0].Label)
	assert.Equal(t, 1, orig.Votes["5"])
}
