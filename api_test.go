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
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antflydb/litgrade/lib/chunking"
	"github.com/antflydb/litgrade/lib/classification"
	"github.com/antflydb/litgrade/lib/extraction"
	"github.com/antflydb/litgrade/lib/feedback"
	"github.com/antflydb/litgrade/lib/inference"
	"github.com/antflydb/litgrade/lib/library"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func repeatWords(n int, words ...string) string {
	out := make([]string, n)
	for i := range out {
		out[i] = words[i%len(words)]
	}
	return strings.Join(out, " ")
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	libDir := filepath.Join(dir, "library")
	require.NoError(t, os.MkdirAll(filepath.Join(libDir, "5"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "5", "ertak.txt"), []byte("Bir bor ekan, bir yo'q ekan."), 0o644))

	cfg := DefaultConfig()
	cfg.ModelsDir = "testdata/model"
	cfg.LibraryDir = libDir
	cfg.FeedbackDB = filepath.Join(dir, "feedback", "feedback.db")
	cfg.MaxUploadMb = 1
	return cfg
}

type testServer struct {
	node *LitgradeNode
	srv  *httptest.Server
}

func newTestServer(t *testing.T, cfg Config) *testServer {
	t.Helper()
	node, err := NewLitgradeNode(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	handler, err := node.Handler()
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		_ = node.Close()
	})
	return &testServer{node: node, srv: srv}
}

func (ts *testServer) post(t *testing.T, path, contentType string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.srv.URL+path, contentType, bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (ts *testServer) postJSON(t *testing.T, path string, v any) *http.Response {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return ts.post(t, path, "application/json", data)
}

func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPredict(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	text := repeatWords(1000, "ertak", "quyon", "tulki")

	resp := ts.postJSON(t, "/api/predict", PredictRequest{Text: text})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeBody[inference.Prediction](t, resp)
	assert.Equal(t, "5", first.Label)
	assert.Equal(t, 4, first.NumChunks)
	assert.Equal(t, 400, first.ChunkSize)
	assert.Len(t, first.Top3, 3)
	require.NotNil(t, first.Confidence)
	assert.Equal(t, "high", string(first.ConfidenceLevel))
	assert.False(t, first.CacheHit)

	resp = ts.postJSON(t, "/api/predict", PredictRequest{Text: text})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody[inference.Prediction](t, resp)
	assert.True(t, second.CacheHit)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Probabilities, second.Probabilities)
}

func TestPredict_CustomWindowAndTransliteration(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	off := false

	resp := ts.postJSON(t, "/api/predict", PredictRequest{
		Text:        repeatWords(100, "Фалсафа", "руҳият", "тақдир"),
		ChunkSize:   ptr(40),
		ChunkStride: ptr(20),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pred := decodeBody[inference.Prediction](t, resp)
	assert.Equal(t, "9", pred.Label)
	assert.True(t, pred.Transliterated)
	assert.Equal(t, 4, pred.NumChunks)

	resp = ts.postJSON(t, "/api/predict", PredictRequest{
		Text:          repeatWords(100, "Фалсафа", "руҳият", "тақдир"),
		Transliterate: &off,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pred = decodeBody[inference.Prediction](t, resp)
	assert.False(t, pred.Transliterated)
	assert.Equal(t, "low", string(pred.ConfidenceLevel))
}

func TestPredict_Errors(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"missing text", `{}`, http.StatusBadRequest},
		{"negative chunk size", `{"text":"ertak","chunk_size":-5}`, http.StatusBadRequest},
		{"wrong type", `{"text":42}`, http.StatusBadRequest},
		{"blank text", `{"text":"   "}`, http.StatusUnprocessableEntity},
		{"punctuation only", `{"text":"?!..."}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.post(t, "/api/predict", "application/json", []byte(tt.body))
			assert.Equal(t, tt.status, resp.StatusCode)
			e := decodeBody[Error](t, resp)
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestPredict_ModelUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.ModelsDir = t.TempDir()
	ts := newTestServer(t, cfg)
	assert.False(t, ts.node.Ready())

	resp := ts.postJSON(t, "/api/predict", PredictRequest{Text: "ertak quyon"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = ts.postJSON(t, "/api/predict/batch", BatchPredictRequest{Texts: []string{"ertak"}})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = ts.get(t, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = ts.get(t, "/api/models")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info := decodeBody[ModelInfo](t, resp)
	assert.False(t, info.Available)

	// Preview needs no model.
	resp = ts.postJSON(t, "/api/preview", PredictRequest{Text: repeatWords(500, "soz")})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPredictBatch(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.postJSON(t, "/api/predict/batch", BatchPredictRequest{
		Texts: []string{
			repeatWords(600, "ertak", "quyon"),
			"  ",
			repeatWords(600, "tarix", "jamiyat"),
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[BatchPredictResponse](t, resp)
	require.Len(t, out.Results, 3)

	require.NotNil(t, out.Results[0].Prediction)
	assert.Equal(t, "5", out.Results[0].Prediction.Label)
	assert.Equal(t, 2, out.Results[0].Prediction.NumChunks)
	assert.Nil(t, out.Results[1].Prediction)
	assert.Equal(t, inference.ErrEmptyInput.Error(), deref(out.Results[1].Error))
	require.NotNil(t, out.Results[2].Prediction)
	assert.Equal(t, "8", out.Results[2].Prediction.Label)

	resp = ts.postJSON(t, "/api/predict/batch", BatchPredictRequest{Texts: []string{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPreview(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.postJSON(t, "/api/preview", PredictRequest{Text: repeatWords(1000, "soz")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pv := decodeBody[PreviewResponse](t, resp)
	assert.Equal(t, PreviewResponse{NumChunks: 4, NumTokens: 1000, ChunkSize: 400, ChunkStride: 200}, pv)

	resp = ts.postJSON(t, "/api/preview", PredictRequest{Text: repeatWords(50, "soz")})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	e := decodeBody[Error](t, resp)
	assert.Contains(t, e.Error, "no chunk could be formed")
}

func TestExtract(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.post(t, "/api/extract?format=txt", "application/octet-stream", []byte("Салом, дунё!"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody[ExtractResponse](t, resp)
	assert.Equal(t, "Салом, дунё!", out.Text)
	assert.True(t, out.Cyrillic)
	assert.Equal(t, 2, out.NumTokens)

	resp = ts.post(t, "/api/extract", "text/plain; charset=utf-8", []byte("Salom"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decodeBody[ExtractResponse](t, resp)
	assert.False(t, out.Cyrillic)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = io.WriteString(f, `<w:document xmlns:w="w"><w:body><w:p><w:r><w:t>Hikoya</w:t></w:r></w:p></w:body></w:document>`)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	resp = ts.post(t, "/api/extract?format=docx", "application/octet-stream", buf.Bytes())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hikoya", decodeBody[ExtractResponse](t, resp).Text)

	buf.Reset()
	zw = zip.NewWriter(&buf)
	f, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = io.WriteString(f, `<w:document xmlns:w="w"><w:body>`+strings.Repeat("<w:p><w:r><w:t>aaaa</w:t></w:r></w:p>", 60_000)+`</w:body></w:document>`)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.Less(t, buf.Len(), 1<<20)
	resp = ts.post(t, "/api/extract?format=docx", "application/octet-stream", buf.Bytes())
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	resp = ts.post(t, "/api/extract?format=rtf", "application/octet-stream", []byte("x"))
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	resp = ts.post(t, "/api/extract?format=pdf", "application/octet-stream", []byte("not a pdf"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = ts.post(t, "/api/extract?format=txt", "application/octet-stream", []byte("  \n "))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = ts.post(t, "/api/extract?format=txt", "application/octet-stream", bytes.Repeat([]byte("a"), 1<<20+1024))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestFeedback(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.postJSON(t, "/api/feedback", FeedbackRequest{Message: "Natija to'g'ri", PredictionId: ptr("abc"), Label: ptr("6")})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decodeBody[FeedbackResponse](t, resp)
	assert.NotEmpty(t, out.Id)
	assert.False(t, out.CreatedAt.IsZero())

	n, err := ts.node.feedback.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	resp = ts.postJSON(t, "/api/feedback", FeedbackRequest{Message: ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ts.postJSON(t, "/api/feedback", FeedbackRequest{Message: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFeedback_Disabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.FeedbackDB = ""
	ts := newTestServer(t, cfg)

	resp := ts.postJSON(t, "/api/feedback", FeedbackRequest{Message: "salom"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestLibrary(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.get(t, "/api/library")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	overview := decodeBody[LibraryOverview](t, resp)
	assert.True(t, overview.Available)
	assert.Equal(t, 1, overview.Grades["5"])

	resp = ts.get(t, "/api/library/5")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[LibraryList](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "ertak.txt", list.Items[0].Name)

	resp = ts.get(t, "/api/library/5/ertak.txt")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bir bor ekan, bir yo'q ekan.", decodeBody[LibraryText](t, resp).Text)

	resp = ts.get(t, "/api/library/5/missing.txt")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.get(t, "/api/library/11")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestModelsVersionAndHealth(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.get(t, "/api/models")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info := decodeBody[ModelInfo](t, resp)
	assert.True(t, info.Available)
	assert.True(t, info.Probabilistic)
	assert.Equal(t, classification.KindLogisticRegression, info.Classifier)
	assert.Equal(t, []string{"5", "6", "7", "8", "9"}, info.Labels)
	assert.Equal(t, 400, info.ChunkSize)

	resp = ts.get(t, "/api/version")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, Version, decodeBody[VersionResponse](t, resp).Version)

	resp = ts.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.get(t, "/readyz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decodeBody[ReadyResponse](t, resp)
	assert.True(t, ready.Model)
	assert.True(t, ready.Feedback)

	resp = ts.get(t, "/api/openapi.yaml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, testConfig(t))
	req, err := http.NewRequest(http.MethodOptions, ts.srv.URL+"/api/predict", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{classification.ErrModelUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", inference.ErrNoChunksFormed), http.StatusUnprocessableEntity},
		{inference.ErrEmptyInput, http.StatusUnprocessableEntity},
		{extraction.ErrExtractionFailed, http.StatusUnprocessableEntity},
		{extraction.ErrFormatUnsupported, http.StatusUnsupportedMediaType},
		{extraction.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge},
		{chunking.ErrInvalidWindow, http.StatusBadRequest},
		{library.ErrNotFound, http.StatusNotFound},
		{feedback.ErrEmptyMessage, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusForError(tt.err), tt.err.Error())
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.ChunkSize = -1
	require.ErrorIs(t, cfg.Validate(), chunking.ErrInvalidWindow)

	cfg = DefaultConfig()
	cfg.RequestTimeout = -time.Second
	require.ErrorContains(t, cfg.Validate(), "request_timeout")

	cfg = DefaultConfig()
	cfg.CacheTTL = -time.Minute
	require.ErrorContains(t, cfg.Validate(), "cache_ttl")

	cfg = DefaultConfig()
	cfg.CacheTTL, cfg.RequestTimeout = 0, 0
	require.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ChunkSize, cfg.ChunkStride = 0, 0
	assert.Equal(t, chunking.DefaultWindowParams(), cfg.Window())
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI()
	require.NoError(t, err)
	for _, path := range []string{"/api/predict", "/api/preview", "/api/extract", "/api/feedback", "/api/library/{grade}/{name}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestAcquire_UpdatesQueueGauges(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxConcurrentRequests = 1
	cfg.RequestTimeout = 20 * time.Millisecond
	ts := newTestServer(t, cfg)

	release, ok := ts.node.acquire(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/predict", nil))
	require.True(t, ok)
	assert.InDelta(t, 1, testutil.ToFloat64(queueActiveRequests), 0)

	rec := httptest.NewRecorder()
	_, ok = ts.node.acquire(rec, httptest.NewRequest(http.MethodPost, "/api/predict", nil))
	require.False(t, ok)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.InDelta(t, 0, testutil.ToFloat64(queueDepth), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(queueActiveRequests), 0)

	release()
	assert.InDelta(t, 0, testutil.ToFloat64(queueActiveRequests), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(queueDepth), 0)
}

func TestPredict_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, testConfig(t))

	resp := ts.postJSON(t, "/api/predict", PredictRequest{Text: strings.Repeat("ertak ", 250_000)})
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Contains(t, decodeBody[Error](t, resp).Error, "exceeds")
}
