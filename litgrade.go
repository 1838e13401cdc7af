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

// Package litgrade serves grade-level estimates for literary texts over HTTP.
package litgrade

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/antflydb/litgrade/lib/feedback"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/antflydb/litgrade/lib/library"
	"github.com/antflydb/litgrade/lib/modelstore"
	"go.uber.org/zap"
)

// LitgradeNode owns the loaded model and every collaborator the API uses.
type LitgradeNode struct {
	logger *zap.Logger
	config Config

	predictor *inference.Predictor
	cache     *PredictionCache
	feedback  *feedback.Store
	library   *library.Library

	// Request queue for backpressure control
	requestQueue *RequestQueue
}

// corsMiddleware adds permissive CORS headers for the Litgrade API
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, Accept, Origin")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bodyLimitMiddleware caps request bodies at limit bytes.
func bodyLimitMiddleware(limit int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}

// DefaultShutdownTimeout is the default time to wait for graceful shutdown
const DefaultShutdownTimeout = 30 * time.Second

// NewLitgradeNode loads the model and opens the feedback store. A model
// that fails to load is logged and leaves the node serving 503 for
// inference, so the library and feedback endpoints stay usable.
func NewLitgradeNode(config Config, zl *zap.Logger) (*LitgradeNode, error) {
	if zl == nil {
		zl = zap.NewNop()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	start := time.Now()
	model, err := modelstore.Load(config.ModelsDir, zl.Named("modelstore"))
	if err != nil {
		zl.Warn("Grade model unavailable, inference requests will be refused",
			zap.String("models_dir", config.ModelsDir),
			zap.Error(err))
	} else {
		RecordModelLoadDuration(time.Since(start).Seconds())
	}

	var store *feedback.Store
	if config.FeedbackDB != "" {
		store, err = feedback.Open(config.FeedbackDB, zl)
		if err != nil {
			return nil, fmt.Errorf("opening feedback store: %w", err)
		}
	}

	predictor := inference.NewPredictor(model, config.AutoTransliterate, zl)
	return &LitgradeNode{
		logger:    zl,
		config:    config,
		predictor: predictor,
		cache:     NewPredictionCache(predictor, config.CacheTTL, zl.Named("prediction-cache")),
		feedback:  store,
		library:   library.New(config.LibraryDir),
		requestQueue: NewRequestQueue(RequestQueueConfig{
			MaxConcurrentRequests: config.MaxConcurrentRequests,
			MaxQueueSize:          config.MaxQueueSize,
			RequestTimeout:        config.RequestTimeout,
		}, zl.Named("queue")),
	}, nil
}

// Ready reports whether the node can serve inference.
func (ln *LitgradeNode) Ready() bool {
	return ln.predictor.Available()
}

// Handler returns the root handler: health endpoints plus the validated,
// CORS-enabled API.
func (ln *LitgradeNode) Handler() (http.Handler, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := newRequestValidator(doc, ln.logger.Named("validator"))
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()

	// Health endpoints (outside /api prefix for k8s compatibility)
	rootMux.HandleFunc("GET /healthz", ln.handleHealthz)
	rootMux.HandleFunc("GET /readyz", ln.handleReadyz)

	rootMux.HandleFunc("GET /api/openapi.yaml", handleOpenAPI)
	rootMux.Handle("/api/", validator.middleware(NewLitgradeAPI(ln.logger, ln)))

	return corsMiddleware(bodyLimitMiddleware(ln.config.maxUploadBytes(), rootMux)), nil
}

// Close releases the cache and the feedback store.
func (ln *LitgradeNode) Close() error {
	ln.cache.Close()
	if ln.feedback != nil {
		return ln.feedback.Close()
	}
	return nil
}

// RunAsLitgrade starts the API server and blocks until ctx is cancelled.
// If readyC is non-nil, it will be closed when the server is ready to accept requests.
func RunAsLitgrade(ctx context.Context, zl *zap.Logger, config Config, readyC chan struct{}) {
	zl = zl.Named("litgrade")
	zl.Info("Starting litgrade node", zap.Any("config", config))

	u, err := url.Parse(config.ApiUrl)
	if err != nil {
		zl.Fatal("Invalid API URL", zap.String("url", config.ApiUrl), zap.Error(err))
	}

	node, err := NewLitgradeNode(config, zl)
	if err != nil {
		zl.Fatal("Failed to initialize litgrade node", zap.Error(err))
	}
	defer func() {
		if err := node.Close(); err != nil {
			zl.Warn("Closing node", zap.Error(err))
		}
	}()

	handler, err := node.Handler()
	if err != nil {
		zl.Fatal("Failed to build API handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              u.Host,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		zl.Info("Litgrade api server starting", zap.String("address", config.ApiUrl))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Signal readiness once the model is loaded and the server is starting
	if readyC != nil && node.Ready() {
		close(readyC)
	}

	// Wait for context cancellation or server error
	select {
	case err := <-serverErr:
		if err != nil {
			zl.Fatal("HTTP server error", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("Shutdown signal received, starting graceful shutdown...")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer shutdownCancel()

	// Stop accepting new connections
	srv.SetKeepAlivesEnabled(false)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Warn("Graceful shutdown failed, forcing close",
			zap.Error(err),
			zap.Duration("timeout", DefaultShutdownTimeout))
		_ = srv.Close()
	} else {
		zl.Info("Graceful shutdown completed successfully")
	}

	zl.Info("HTTP server stopped")
}
