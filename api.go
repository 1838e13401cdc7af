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

//go:generate go tool oapi-codegen --config=cfg.yaml ./openapi.yaml
package litgrade

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/antflydb/litgrade/lib/chunking"
	"github.com/antflydb/litgrade/lib/classification"
	"github.com/antflydb/litgrade/lib/extraction"
	"github.com/antflydb/litgrade/lib/feedback"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/antflydb/litgrade/lib/library"
	"github.com/antflydb/litgrade/lib/textproc"
	"github.com/bytedance/sonic/decoder"
	"github.com/bytedance/sonic/encoder"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LitgradeAPI implements the generated ServerInterface
type LitgradeAPI struct {
	logger *zap.Logger
	node   *LitgradeNode
}

// NewLitgradeAPI creates a new HTTP handler for the Litgrade API using generated code
func NewLitgradeAPI(logger *zap.Logger, node *LitgradeNode) http.Handler {
	api := &LitgradeAPI{
		logger: logger,
		node:   node,
	}
	return HandlerWithOptions(api, StdHTTPServerOptions{
		BaseRouter: http.NewServeMux(),
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err.Error())
		},
	})
}

// PredictGrade implements ServerInterface
func (t *LitgradeAPI) PredictGrade(w http.ResponseWriter, r *http.Request) {
	t.node.handleApiPredict(w, r)
}

// PredictGradeBatch implements ServerInterface
func (t *LitgradeAPI) PredictGradeBatch(w http.ResponseWriter, r *http.Request) {
	t.node.handleApiPredictBatch(w, r)
}

// PreviewChunks implements ServerInterface
func (t *LitgradeAPI) PreviewChunks(w http.ResponseWriter, r *http.Request) {
	t.node.handleApiPreview(w, r)
}

// ExtractText implements ServerInterface
func (t *LitgradeAPI) ExtractText(w http.ResponseWriter, r *http.Request, params ExtractTextParams) {
	t.node.handleApiExtract(w, r, params)
}

// SubmitFeedback implements ServerInterface
func (t *LitgradeAPI) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	t.node.handleApiFeedback(w, r)
}

// LibraryOverview implements ServerInterface
func (t *LitgradeAPI) LibraryOverview(w http.ResponseWriter, r *http.Request) {
	t.node.handleApiLibraryOverview(w, r)
}

// ListLibrary implements ServerInterface
func (t *LitgradeAPI) ListLibrary(w http.ResponseWriter, r *http.Request, grade string) {
	t.node.handleApiLibraryList(w, r, grade)
}

// ReadLibraryText implements ServerInterface
func (t *LitgradeAPI) ReadLibraryText(w http.ResponseWriter, r *http.Request, grade string, name string) {
	t.node.handleApiLibraryText(w, r, grade, name)
}

// GetModel implements ServerInterface
func (t *LitgradeAPI) GetModel(w http.ResponseWriter, r *http.Request) {
	window := t.node.config.Window()
	info := t.node.predictor.Model().Info()
	resp := ModelInfo{
		Available:     info.Available,
		Labels:        info.Labels,
		Classes:       info.Classes,
		Classifier:    info.Classifier,
		Probabilistic: info.Probabilistic,
		Features:      info.Features,
		ChunkSize:     window.Size,
		ChunkStride:   window.Stride,
	}
	if info.Name != "" {
		resp.Name = &info.Name
	}
	if info.LoadedAt != "" {
		resp.LoadedAt = &info.LoadedAt
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetVersion implements ServerInterface
func (t *LitgradeAPI) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	})
}

// handleOpenAPI serves the API description.
func handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(OpenAPISpec())
}

// handleApiPredict estimates the grade of one text.
func (ln *LitgradeNode) handleApiPredict(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()
	start := time.Now()
	const endpoint = "predict"

	if !ln.predictor.Available() {
		ln.fail(w, endpoint, start, classification.ErrModelUnavailable)
		return
	}

	release, ok := ln.acquire(w, r)
	if !ok {
		return
	}
	defer release()

	var req PredictRequest
	if err := decoder.NewStreamDecoder(r.Body).Decode(&req); err != nil {
		ln.failDecode(w, endpoint, start, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		ln.fail(w, endpoint, start, inference.ErrEmptyInput)
		return
	}

	pred, err := ln.cache.Predict(r.Context(), req.Text, ln.options(req.ChunkSize, req.ChunkStride, req.Transliterate))
	if err != nil {
		ln.fail(w, endpoint, start, err)
		return
	}
	recordPrediction(pred)

	ln.logger.Info("Predicted grade",
		zap.String("id", pred.ID),
		zap.String("label", pred.Label),
		zap.String("level", string(pred.ConfidenceLevel)),
		zap.Int("chunks", pred.NumChunks),
		zap.Bool("cache_hit", pred.CacheHit))
	ln.succeed(w, endpoint, start, http.StatusOK, pred)
}

// handleApiPredictBatch estimates every text concurrently. A failure on
// one text is reported in its item and does not fail the batch.
func (ln *LitgradeNode) handleApiPredictBatch(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()
	start := time.Now()
	const endpoint = "predict_batch"

	if !ln.predictor.Available() {
		ln.fail(w, endpoint, start, classification.ErrModelUnavailable)
		return
	}

	release, ok := ln.acquire(w, r)
	if !ok {
		return
	}
	defer release()

	var req BatchPredictRequest
	if err := decoder.NewStreamDecoder(r.Body).Decode(&req); err != nil {
		ln.failDecode(w, endpoint, start, err)
		return
	}
	if len(req.Texts) == 0 {
		ln.failMessage(w, endpoint, start, http.StatusBadRequest, "texts are required")
		return
	}

	opts := ln.options(req.ChunkSize, req.ChunkStride, req.Transliterate)
	if err := opts.Window.Validate(); err != nil {
		ln.fail(w, endpoint, start, err)
		return
	}

	results := make([]BatchItem, len(req.Texts))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range req.Texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				results[i] = BatchItem{Error: ptr(inference.ErrEmptyInput.Error())}
				return nil
			}
			pred, err := ln.cache.Predict(ctx, text, opts)
			if err != nil {
				results[i] = BatchItem{Error: ptr(err.Error())}
				return nil
			}
			recordPrediction(pred)
			results[i] = BatchItem{Prediction: (*Prediction)(pred)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		ln.fail(w, endpoint, start, err)
		return
	}

	ln.logger.Info("Predicted batch", zap.Int("texts", len(req.Texts)), zap.Duration("duration", time.Since(start)))
	ln.succeed(w, endpoint, start, http.StatusOK, BatchPredictResponse{Results: results})
}

// handleApiPreview counts full chunks without running inference.
func (ln *LitgradeNode) handleApiPreview(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()
	start := time.Now()
	const endpoint = "preview"

	var req PredictRequest
	if err := decoder.NewStreamDecoder(r.Body).Decode(&req); err != nil {
		ln.failDecode(w, endpoint, start, err)
		return
	}

	opts := ln.options(req.ChunkSize, req.ChunkStride, req.Transliterate)
	pv, err := inference.PreviewText(req.Text, opts.Window, opts.Transliterate)
	if err != nil {
		ln.fail(w, endpoint, start, err)
		return
	}
	ln.succeed(w, endpoint, start, http.StatusOK, PreviewResponse{
		NumChunks:   pv.NumChunks,
		NumTokens:   pv.NumTokens,
		ChunkSize:   opts.Window.Size,
		ChunkStride: opts.Window.Stride,
	})
}

// handleApiExtract returns the text of an uploaded document. The format
// comes from the format query parameter, falling back to Content-Type.
func (ln *LitgradeNode) handleApiExtract(w http.ResponseWriter, r *http.Request, params ExtractTextParams) {
	defer func() { _ = r.Body.Close() }()
	start := time.Now()
	const endpoint = "extract"

	var name string
	if params.Format != nil {
		name = *params.Format
	}
	if name == "" {
		name, _, _ = mime.ParseMediaType(r.Header.Get("Content-Type"))
	}
	format, err := extraction.ParseFormat(name)
	if err != nil {
		RecordExtraction(name, "unsupported")
		ln.fail(w, endpoint, start, err)
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		ln.failDecode(w, endpoint, start, err)
		return
	}

	text, err := extraction.Extract(data, format,
		extraction.WithMaxDecompressedBytes(ln.config.maxUploadBytes()))
	if err != nil {
		RecordExtraction(string(format), "failed")
		ln.fail(w, endpoint, start, err)
		return
	}
	if strings.TrimSpace(text) == "" {
		RecordExtraction(string(format), "empty")
		ln.fail(w, endpoint, start, inference.ErrEmptyInput)
		return
	}
	RecordExtraction(string(format), "ok")

	ln.logger.Debug("Extracted document",
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)),
		zap.Int("chars", len(text)))
	ln.succeed(w, endpoint, start, http.StatusOK, ExtractResponse{
		Text:      text,
		Cyrillic:  textproc.HasCyrillic(text),
		NumTokens: len(textproc.Tokens(text)),
	})
}

// handleApiFeedback stores a reader message.
func (ln *LitgradeNode) handleApiFeedback(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()
	start := time.Now()
	const endpoint = "feedback"

	if ln.feedback == nil {
		ln.failMessage(w, endpoint, start, http.StatusServiceUnavailable, "feedback is disabled")
		return
	}

	var req FeedbackRequest
	if err := decoder.NewStreamDecoder(r.Body).Decode(&req); err != nil {
		ln.failDecode(w, endpoint, start, err)
		return
	}

	entry, err := ln.feedback.Add(r.Context(), feedback.Entry{
		Message:      req.Message,
		PredictionID: deref(req.PredictionId),
		Label:        deref(req.Label),
	})
	if err != nil {
		ln.fail(w, endpoint, start, err)
		return
	}
	RecordFeedback()
	ln.succeed(w, endpoint, start, http.StatusCreated, FeedbackResponse{Id: entry.ID, CreatedAt: entry.CreatedAt})
}

func (ln *LitgradeNode) handleApiLibraryOverview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	counts, err := ln.library.Overview()
	if err != nil {
		ln.fail(w, "library", start, err)
		return
	}
	writeJSON(w, http.StatusOK, LibraryOverview{Available: ln.library.Exists(), Grades: counts})
}

func (ln *LitgradeNode) handleApiLibraryList(w http.ResponseWriter, r *http.Request, grade string) {
	start := time.Now()
	items, err := ln.library.List(grade)
	if err != nil {
		ln.fail(w, "library", start, err)
		return
	}
	list := LibraryList{Grade: grade, Items: make([]LibraryItem, len(items))}
	for i, it := range items {
		list.Items[i] = LibraryItem{Grade: it.Grade, Name: it.Name, Size: it.Size}
	}
	writeJSON(w, http.StatusOK, list)
}

func (ln *LitgradeNode) handleApiLibraryText(w http.ResponseWriter, r *http.Request, grade, name string) {
	start := time.Now()
	text, err := ln.library.Read(grade, name)
	if err != nil {
		ln.fail(w, "library", start, err)
		return
	}
	writeJSON(w, http.StatusOK, LibraryText{Grade: grade, Name: name, Text: text})
}

// options merges per-request settings with the configured defaults.
func (ln *LitgradeNode) options(size, stride *int, transliterate *bool) inference.Options {
	window := ln.config.Window()
	if size != nil && *size != 0 {
		window.Size = *size
	}
	if stride != nil && *stride != 0 {
		window.Stride = *stride
	}
	opts := inference.Options{Window: window, Transliterate: ln.config.AutoTransliterate}
	if transliterate != nil {
		opts.Transliterate = *transliterate
	}
	return opts
}

// acquire applies backpressure via the request queue. It writes the error
// response itself and reports false when no slot was granted.
func (ln *LitgradeNode) acquire(w http.ResponseWriter, r *http.Request) (func(), bool) {
	release, err := ln.requestQueue.Acquire(r.Context())
	UpdateQueueMetrics(ln.requestQueue.Stats())
	if err != nil {
		switch {
		case errors.Is(err, ErrQueueFull):
			RecordQueueRejection()
			WriteQueueFullResponse(w, 5*time.Second)
		case errors.Is(err, ErrRequestTimeout):
			RecordQueueTimeout()
			WriteTimeoutResponse(w)
		default:
			// Context cancelled
			writeError(w, http.StatusRequestTimeout, "request cancelled")
		}
		return nil, false
	}
	return func() {
		release()
		UpdateQueueMetrics(ln.requestQueue.Stats())
	}, true
}

func (ln *LitgradeNode) succeed(w http.ResponseWriter, endpoint string, start time.Time, status int, v any) {
	code := strconv.Itoa(status)
	RecordPredictRequest(endpoint, code)
	RecordRequestDuration(endpoint, code, time.Since(start).Seconds())
	writeJSON(w, status, v)
}

func (ln *LitgradeNode) fail(w http.ResponseWriter, endpoint string, start time.Time, err error) {
	status := StatusForError(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		ln.logger.Error("Request failed", zap.String("endpoint", endpoint), zap.Error(err))
	} else {
		ln.logger.Debug("Request rejected", zap.String("endpoint", endpoint), zap.Int("status", status), zap.Error(err))
	}
	ln.failMessage(w, endpoint, start, status, err.Error())
}

func (ln *LitgradeNode) failDecode(w http.ResponseWriter, endpoint string, start time.Time, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		ln.failMessage(w, endpoint, start, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		return
	}
	ln.failMessage(w, endpoint, start, http.StatusBadRequest, fmt.Sprintf("decoding request: %v", err))
}

func (ln *LitgradeNode) failMessage(w http.ResponseWriter, endpoint string, start time.Time, status int, msg string) {
	code := strconv.Itoa(status)
	RecordPredictRequest(endpoint, code)
	RecordRequestDuration(endpoint, code, time.Since(start).Seconds())
	writeError(w, status, msg)
}

// StatusForError maps pipeline errors to HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, classification.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, extraction.ErrFormatUnsupported):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, extraction.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, inference.ErrNoChunksFormed),
		errors.Is(err, inference.ErrEmptyInput),
		errors.Is(err, extraction.ErrExtractionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, chunking.ErrInvalidWindow),
		errors.Is(err, library.ErrUnknownGrade),
		errors.Is(err, feedback.ErrEmptyMessage),
		errors.Is(err, feedback.ErrMessageTooLong):
		return http.StatusBadRequest
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func recordPrediction(pred *inference.Prediction) {
	level := string(pred.ConfidenceLevel)
	if level == "" {
		level = "unavailable"
	}
	RecordPrediction(pred.Label, level, pred.NumChunks)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = encoder.NewStreamEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Error{Error: msg})
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
