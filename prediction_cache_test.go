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

package litgrade

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/antflydb/litgrade/lib/chunking"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/antflydb/litgrade/lib/modelstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestCache(t *testing.T, ttl time.Duration) *PredictionCache {
	t.Helper()
	model, err := modelstore.Load("testdata/model", zaptest.NewLogger(t))
	require.NoError(t, err)
	pc := NewPredictionCache(inference.NewPredictor(model, true, nil), ttl, zaptest.NewLogger(t))
	t.Cleanup(pc.Close)
	return pc
}

func TestPredictionCache_HitKeepsResultNewID(t *testing.T) {
	pc := newTestCache(t, time.Minute)
	opts := inference.Options{Window: chunking.DefaultWindowParams()}

	a, err := pc.Predict(context.Background(), "ertak quyon tulki", opts)
	require.NoError(t, err)
	b, err := pc.Predict(context.Background(), "ertak quyon tulki", opts)
	require.NoError(t, err)

	assert.False(t, a.CacheHit)
	assert.True(t, b.CacheHit)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Label, b.Label)

	// Mutating a returned prediction does not leak into the cache.
	b.Probabilities[0].Probability = 0
	c, err := pc.Predict(context.Background(), "ertak quyon tulki", opts)
	require.NoError(t, err)
	assert.NotZero(t, c.Probabilities[0].Probability)

	stats := pc.Stats()
	assert.EqualValues(t, 2, stats["hits"])
	assert.EqualValues(t, 1, stats["misses"])
}

func TestPredictionCache_KeyIncludesOptions(t *testing.T) {
	pc := newTestCache(t, time.Minute)
	text := "ertak quyon tulki"

	_, err := pc.Predict(context.Background(), text, inference.Options{})
	require.NoError(t, err)
	p, err := pc.Predict(context.Background(), text, inference.Options{Window: chunking.WindowParams{Size: 2, Stride: 1}})
	require.NoError(t, err)
	assert.False(t, p.CacheHit)
	assert.Equal(t, 2, p.NumChunks)

	// Zero window fields and explicit defaults share an entry.
	p, err = pc.Predict(context.Background(), text, inference.Options{Window: chunking.DefaultWindowParams()})
	require.NoError(t, err)
	assert.True(t, p.CacheHit)
}

func TestPredictionCache_Disabled(t *testing.T) {
	pc := newTestCache(t, 0)
	opts := inference.Options{}

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := pc.Predict(context.Background(), "falsafa ruhiyat", opts)
			if assert.NoError(t, err) {
				assert.False(t, p.CacheHit)
				ids[i] = p.ID
			}
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.EqualValues(t, 0, pc.Stats()["items"])
}

func TestPredictionCache_Errors(t *testing.T) {
	pc := newTestCache(t, time.Minute)
	_, err := pc.Predict(context.Background(), "...", inference.Options{})
	require.ErrorIs(t, err, inference.ErrEmptyInput)

	// Errors are not cached.
	_, err = pc.Predict(context.Background(), "...", inference.Options{})
	require.ErrorIs(t, err, inference.ErrEmptyInput)
	assert.EqualValues(t, 0, pc.Stats()["hits"])
}
