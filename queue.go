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
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrQueueFull is returned when no slot is free and the wait queue is full.
	ErrQueueFull = errors.New("request queue is full")

	// ErrRequestTimeout is returned when a request waited longer than the
	// configured timeout for a slot.
	ErrRequestTimeout = errors.New("request timed out waiting in queue")
)

// RequestQueueConfig configures backpressure.
type RequestQueueConfig struct {
	// MaxConcurrentRequests is the number of requests processed at once
	// (0 = number of CPUs).
	MaxConcurrentRequests int
	// MaxQueueSize is the number of requests allowed to wait (0 = unbounded).
	MaxQueueSize int
	// RequestTimeout bounds the wait for a slot (0 = wait for the request
	// context only).
	RequestTimeout time.Duration
}

// QueueStats is a snapshot of the queue.
type QueueStats struct {
	MaxConcurrent  int    `json:"max_concurrent"`
	MaxQueueSize   int    `json:"max_queue_size"`
	CurrentActive  int64  `json:"current_active"`
	CurrentQueued  int64  `json:"current_queued"`
	TotalProcessed uint64 `json:"total_processed"`
	TotalRejected  uint64 `json:"total_rejected"`
	TotalTimedOut  uint64 `json:"total_timed_out"`
}

// RequestQueue limits concurrent inference with a weighted semaphore and a
// bounded number of waiters.
type RequestQueue struct {
	sem    *semaphore.Weighted
	config RequestQueueConfig
	logger *zap.Logger

	active    atomic.Int64
	queued    atomic.Int64
	processed atomic.Uint64
	rejected  atomic.Uint64
	timedOut  atomic.Uint64
}

// NewRequestQueue creates a queue.
func NewRequestQueue(config RequestQueueConfig, logger *zap.Logger) *RequestQueue {
	if config.MaxConcurrentRequests <= 0 {
		config.MaxConcurrentRequests = runtime.NumCPU()
	}
	if config.MaxQueueSize < 0 {
		config.MaxQueueSize = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("Request queue configured",
		zap.Int("max_concurrent", config.MaxConcurrentRequests),
		zap.Int("max_queue_size", config.MaxQueueSize),
		zap.Duration("request_timeout", config.RequestTimeout))
	return &RequestQueue{
		sem:    semaphore.NewWeighted(int64(config.MaxConcurrentRequests)),
		config: config,
		logger: logger,
	}
}

// Acquire waits for a processing slot. On success the returned release
// function must be called exactly once; extra calls are ignored.
func (q *RequestQueue) Acquire(ctx context.Context) (func(), error) {
	if q.sem.TryAcquire(1) {
		q.active.Add(1)
		return q.releaser(), nil
	}

	waiting := q.queued.Add(1)
	defer q.queued.Add(-1)
	if q.config.MaxQueueSize > 0 && waiting > int64(q.config.MaxQueueSize) {
		q.rejected.Add(1)
		q.logger.Debug("Rejecting request, queue full", zap.Int64("queued", waiting-1))
		return nil, ErrQueueFull
	}

	waitCtx := ctx
	if q.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, q.config.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := q.sem.Acquire(waitCtx, 1); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		q.timedOut.Add(1)
		return nil, ErrRequestTimeout
	}
	RecordQueueWaitTime(time.Since(start).Seconds())
	q.active.Add(1)
	return q.releaser(), nil
}

func (q *RequestQueue) releaser() func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			q.active.Add(-1)
			q.processed.Add(1)
			q.sem.Release(1)
		})
	}
}

// Stats returns a snapshot of the queue counters.
func (q *RequestQueue) Stats() QueueStats {
	return QueueStats{
		MaxConcurrent:  q.config.MaxConcurrentRequests,
		MaxQueueSize:   q.config.MaxQueueSize,
		CurrentActive:  q.active.Load(),
		CurrentQueued:  q.queued.Load(),
		TotalProcessed: q.processed.Load(),
		TotalRejected:  q.rejected.Load(),
		TotalTimedOut:  q.timedOut.Load(),
	}
}

// WriteQueueFullResponse writes a 503 asking the client to retry later.
func WriteQueueFullResponse(w http.ResponseWriter, retryAfter time.Duration) {
	secs := max(int(retryAfter.Seconds()), 1)
	w.Header().Set("Retry-After", strconv.Itoa(secs))
	writeError(w, http.StatusServiceUnavailable,
		fmt.Sprintf("server busy: request queue full, retry after %ds", secs))
}

// WriteTimeoutResponse writes a 504 for a request that never got a slot.
func WriteTimeoutResponse(w http.ResponseWriter) {
	writeError(w, http.StatusGatewayTimeout, "request timed out waiting in queue")
}
