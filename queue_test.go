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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRequestQueue_AcquireRelease(t *testing.T) {
	q := NewRequestQueue(RequestQueueConfig{MaxConcurrentRequests: 2}, zaptest.NewLogger(t))

	r1, err := q.Acquire(context.Background())
	require.NoError(t, err)
	r2, err := q.Acquire(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, q.Stats().CurrentActive)

	r1()
	r1() // idempotent
	r2()
	stats := q.Stats()
	assert.EqualValues(t, 0, stats.CurrentActive)
	assert.EqualValues(t, 2, stats.TotalProcessed)
}

func TestRequestQueue_Full(t *testing.T) {
	q := NewRequestQueue(RequestQueueConfig{MaxConcurrentRequests: 1, MaxQueueSize: 1}, zaptest.NewLogger(t))
	release, err := q.Acquire(context.Background())
	require.NoError(t, err)

	// One waiter fills the queue.
	var wg sync.WaitGroup
	wg.Add(1)
	waiterDone := make(chan error, 1)
	go func() {
		defer wg.Done()
		r, err := q.Acquire(context.Background())
		if err == nil {
			r()
		}
		waiterDone <- err
	}()
	require.Eventually(t, func() bool { return q.Stats().CurrentQueued == 1 }, time.Second, time.Millisecond)

	_, err = q.Acquire(context.Background())
	require.ErrorIs(t, err, ErrQueueFull)
	assert.EqualValues(t, 1, q.Stats().TotalRejected)

	release()
	wg.Wait()
	require.NoError(t, <-waiterDone)
}

func TestRequestQueue_Timeout(t *testing.T) {
	q := NewRequestQueue(RequestQueueConfig{MaxConcurrentRequests: 1, RequestTimeout: 20 * time.Millisecond}, zaptest.NewLogger(t))
	release, err := q.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	_, err = q.Acquire(context.Background())
	require.ErrorIs(t, err, ErrRequestTimeout)
	assert.EqualValues(t, 1, q.Stats().TotalTimedOut)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = q.Acquire(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
