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
	"encoding/binary"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/antflydb/litgrade/lib/inference"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PredictionCacheTTL is the default TTL for cached predictions
const PredictionCacheTTL = 2 * time.Minute

// PredictionCache memoizes predictions for identical text and options and
// deduplicates concurrent identical requests. Every caller still receives
// its own prediction id.
type PredictionCache struct {
	predictor *inference.Predictor
	cache     *ttlcache.Cache[string, *inference.Prediction]
	sfGroup   singleflight.Group
	logger    *zap.Logger
	cancel    context.CancelFunc

	hits   atomic.Uint64
	misses atomic.Uint64
	sfHits atomic.Uint64
}

// NewPredictionCache wraps predictor. A non-positive ttl disables caching
// but keeps request deduplication.
func NewPredictionCache(predictor *inference.Predictor, ttl time.Duration, logger *zap.Logger) *PredictionCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	pc := &PredictionCache{
		predictor: predictor,
		logger:    logger,
		cancel:    cancel,
	}
	if ttl > 0 {
		pc.cache = ttlcache.New(
			ttlcache.WithTTL[string, *inference.Prediction](ttl),
			ttlcache.WithCapacity[string, *inference.Prediction](10_000),
		)
		go pc.cache.Start()
		go pc.logStats(ctx)
	}
	return pc
}

// Predict returns a cached prediction or computes and caches a new one.
func (pc *PredictionCache) Predict(ctx context.Context, text string, opts inference.Options) (*inference.Prediction, error) {
	opts.Window = opts.Window.WithDefaults()
	key := cacheKey(text, opts)

	if pc.cache != nil {
		if item := pc.cache.Get(key); item != nil {
			pc.hits.Add(1)
			RecordCacheHit("prediction")
			pred := item.Value().Clone()
			pred.ID = uuid.NewString()
			pred.CacheHit = true
			pc.logger.Debug("Prediction cache hit",
				zap.String("id", pred.ID),
				zap.String("label", pred.Label))
			return pred, nil
		}
	}

	result, err, shared := pc.sfGroup.Do(key, func() (any, error) {
		pc.misses.Add(1)
		RecordCacheMiss("prediction")

		pred, err := pc.predictor.PredictWithOptions(ctx, text, opts)
		if err != nil {
			return nil, err
		}
		if pc.cache != nil {
			pc.cache.Set(key, pred, ttlcache.DefaultTTL)
		}
		return pred, nil
	})
	if err != nil {
		return nil, err
	}

	pred := result.(*inference.Prediction).Clone()
	if shared {
		pc.sfHits.Add(1)
		pred.ID = uuid.NewString()
		pc.logger.Debug("Singleflight hit for prediction request", zap.String("id", pred.ID))
	}
	return pred, nil
}

// Close stops the cache.
func (pc *PredictionCache) Close() {
	pc.cancel()
	if pc.cache != nil {
		pc.cache.Stop()
	}
}

// Stats returns cache statistics.
func (pc *PredictionCache) Stats() map[string]any {
	items := 0
	if pc.cache != nil {
		items = pc.cache.Len()
	}
	return map[string]any{
		"hits":              pc.hits.Load(),
		"misses":            pc.misses.Load(),
		"singleflight_hits": pc.sfHits.Load(),
		"items":             items,
	}
}

func (pc *PredictionCache) logStats(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hits, misses := pc.hits.Load(), pc.misses.Load()
			if total := hits + misses; total > 0 {
				pc.logger.Info("Prediction cache stats",
					zap.Uint64("hits", hits),
					zap.Uint64("misses", misses),
					zap.Float64("hit_rate_pct", float64(hits)/float64(total)*100),
					zap.Int("items", pc.cache.Len()))
			}
		}
	}
}

// cacheKey hashes the window, the transliteration flag and the text.
func cacheKey(text string, opts inference.Options) string {
	h := xxhash.New()
	_, _ = h.WriteString(strconv.Itoa(opts.Window.Size))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(strconv.Itoa(opts.Window.Stride))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(strconv.FormatBool(opts.Transliterate))
	_, _ = h.WriteString("|")
	_, _ = h.WriteString(text)

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h.Sum64())
	return string(buf[:])
}
