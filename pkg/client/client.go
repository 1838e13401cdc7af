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

//go:generate go tool oapi-codegen --config=cfg.yaml ../../openapi.yaml

// Package client is a Go client for the Litgrade HTTP API, built on the
// generated oapi client.
package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antflydb/litgrade/lib/inference"
	"github.com/antflydb/litgrade/pkg/client/oapi"
	"github.com/bytedance/sonic"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("litgrade: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// LitgradeClient is a client for interacting with the Litgrade API.
type LitgradeClient struct {
	client  *oapi.ClientWithResponses
	baseURL string
}

// NewLitgradeClient creates a new client.
// The baseURL should be the server address (e.g., "http://localhost:11500").
// Operation paths already carry the /api prefix.
func NewLitgradeClient(baseURL string, httpClient *http.Client) (*LitgradeClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	serverURL := strings.TrimSuffix(baseURL, "/")

	client, err := oapi.NewClientWithResponses(serverURL, oapi.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return &LitgradeClient{
		client:  client,
		baseURL: serverURL,
	}, nil
}

// Client returns the underlying oapi-codegen client for direct API access.
func (c *LitgradeClient) Client() *oapi.ClientWithResponses {
	return c.client
}

// Predict estimates the grade of one text.
func (c *LitgradeClient) Predict(ctx context.Context, req oapi.PredictRequest) (*inference.Prediction, error) {
	resp, err := c.client.PredictGradeWithResponse(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return (*inference.Prediction)(resp.JSON200), nil
}

// PredictBatch estimates the grade of several texts.
func (c *LitgradeClient) PredictBatch(ctx context.Context, req oapi.BatchPredictRequest) ([]oapi.BatchItem, error) {
	resp, err := c.client.PredictGradeBatchWithResponse(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200.Results, nil
}

// Preview counts the full chunks a text forms.
func (c *LitgradeClient) Preview(ctx context.Context, req oapi.PredictRequest) (*oapi.PreviewResponse, error) {
	resp, err := c.client.PreviewChunksWithResponse(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200, nil
}

// Extract uploads a document and returns its text.
func (c *LitgradeClient) Extract(ctx context.Context, data []byte, format string) (*oapi.ExtractResponse, error) {
	params := &oapi.ExtractTextParams{}
	if format != "" {
		params.Format = &format
	}
	resp, err := c.client.ExtractTextWithBodyWithResponse(ctx, params, "application/octet-stream", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200, nil
}

// SubmitFeedback stores a feedback message.
func (c *LitgradeClient) SubmitFeedback(ctx context.Context, req oapi.FeedbackRequest) (*oapi.FeedbackResponse, error) {
	resp, err := c.client.SubmitFeedbackWithResponse(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON201 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON201, nil
}

// Library returns the number of texts per grade.
func (c *LitgradeClient) Library(ctx context.Context) (*oapi.LibraryOverview, error) {
	resp, err := c.client.LibraryOverviewWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200, nil
}

// LibraryText returns one text from the reading library.
func (c *LitgradeClient) LibraryText(ctx context.Context, grade, name string) (*oapi.LibraryText, error) {
	resp, err := c.client.ReadLibraryTextWithResponse(ctx, grade, name)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200, nil
}

// Model describes the model the server loaded.
func (c *LitgradeClient) Model(ctx context.Context) (*oapi.ModelInfo, error) {
	resp, err := c.client.GetModelWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200, nil
}

// Version returns the server build information.
func (c *LitgradeClient) Version(ctx context.Context) (*oapi.VersionResponse, error) {
	resp, err := c.client.GetVersionWithResponse(ctx)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	if resp.JSON200 == nil {
		return nil, apiError(resp.StatusCode(), resp.Body)
	}
	return resp.JSON200, nil
}

// apiError turns an unexpected response into an APIError, preferring the
// server's error message over the raw body.
func apiError(status int, body []byte) error {
	var e oapi.Error
	if sonic.Unmarshal(body, &e) != nil || e.Error == "" {
		e.Error = strings.TrimSpace(string(body))
	}
	return &APIError{StatusCode: status, Message: e.Error}
}
