// Package oapi provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 version v2.5.1 DO NOT EDIT.
package oapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antflydb/litgrade/lib/inference"
	"github.com/oapi-codegen/runtime"
)

// BatchItem defines model for BatchItem.
type BatchItem struct {
	Error      *string     `json:"error,omitempty"`
	Prediction *Prediction `json:"prediction,omitempty"`
}

// BatchPredictRequest defines model for BatchPredictRequest.
type BatchPredictRequest struct {
	ChunkSize     *int     `json:"chunk_size,omitempty"`
	ChunkStride   *int     `json:"chunk_stride,omitempty"`
	Texts         []string `json:"texts"`
	Transliterate *bool    `json:"transliterate,omitempty"`
}

// BatchPredictResponse defines model for BatchPredictResponse.
type BatchPredictResponse struct {
	Results []BatchItem `json:"results"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// ExtractResponse defines model for ExtractResponse.
type ExtractResponse struct {
	Cyrillic  bool   `json:"cyrillic"`
	NumTokens int    `json:"num_tokens"`
	Text      string `json:"text"`
}

// FeedbackRequest defines model for FeedbackRequest.
type FeedbackRequest struct {
	Label        *string `json:"label,omitempty"`
	Message      string  `json:"message"`
	PredictionId *string `json:"prediction_id,omitempty"`
}

// FeedbackResponse defines model for FeedbackResponse.
type FeedbackResponse struct {
	CreatedAt time.Time `json:"created_at"`
	Id        string    `json:"id"`
}

// LabelProb defines model for LabelProb.
type LabelProb struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// LibraryItem defines model for LibraryItem.
type LibraryItem struct {
	Grade string `json:"grade"`
	Name  string `json:"name"`
	Size  int64  `json:"size"`
}

// LibraryList defines model for LibraryList.
type LibraryList struct {
	Grade string        `json:"grade"`
	Items []LibraryItem `json:"items"`
}

// LibraryOverview defines model for LibraryOverview.
type LibraryOverview struct {
	Available bool           `json:"available"`
	Grades    map[string]int `json:"grades"`
}

// LibraryText defines model for LibraryText.
type LibraryText struct {
	Grade string `json:"grade"`
	Name  string `json:"name"`
	Text  string `json:"text"`
}

// ModelInfo defines model for ModelInfo.
type ModelInfo struct {
	Available     bool     `json:"available"`
	ChunkSize     int      `json:"chunk_size"`
	ChunkStride   int      `json:"chunk_stride"`
	Classes       []string `json:"classes"`
	Classifier    string   `json:"classifier"`
	Features      int      `json:"features"`
	Labels        []string `json:"labels"`
	LoadedAt      *string  `json:"loaded_at,omitempty"`
	Name          *string  `json:"name,omitempty"`
	Probabilistic bool     `json:"probabilistic"`
}

// PredictRequest defines model for PredictRequest.
type PredictRequest struct {
	ChunkSize     *int   `json:"chunk_size,omitempty"`
	ChunkStride   *int   `json:"chunk_stride,omitempty"`
	Text          string `json:"text"`
	Transliterate *bool  `json:"transliterate,omitempty"`
}

// Prediction defines model for Prediction.
type Prediction = inference.Prediction

// PreviewResponse defines model for PreviewResponse.
type PreviewResponse struct {
	ChunkSize   int `json:"chunk_size"`
	ChunkStride int `json:"chunk_stride"`
	NumChunks   int `json:"num_chunks"`
	NumTokens   int `json:"num_tokens"`
}

// VersionResponse defines model for VersionResponse.
type VersionResponse struct {
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Version   string `json:"version"`
}

// Grade defines model for Grade.
type Grade = string

// ExtractTextParams defines parameters for ExtractText.
type ExtractTextParams struct {
	// Format txt, docx or pdf; defaults to the Content-Type
	Format *string `form:"format,omitempty" json:"format,omitempty"`
}

// SubmitFeedbackJSONRequestBody defines body for SubmitFeedback for application/json ContentType.
type SubmitFeedbackJSONRequestBody = FeedbackRequest

// PredictGradeJSONRequestBody defines body for PredictGrade for application/json ContentType.
type PredictGradeJSONRequestBody = PredictRequest

// PredictGradeBatchJSONRequestBody defines body for PredictGradeBatch for application/json ContentType.
type PredictGradeBatchJSONRequestBody = BatchPredictRequest

// PreviewChunksJSONRequestBody defines body for PreviewChunks for application/json ContentType.
type PreviewChunksJSONRequestBody = PredictRequest

// RequestEditorFn  is the function signature for the RequestEditor callback function
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// Doer performs HTTP requests.
//
// The standard http.Client implements this interface.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client which conforms to the OpenAPI3 specification for this service.
type Client struct {
	// The endpoint of the server conforming to this interface, with scheme,
	// https://api.deepmap.com for example. This can contain a path relative
	// to the server, such as https://api.deepmap.com/dev-test, and all the
	// paths in the swagger spec will be appended to the server.
	Server string

	// Doer for performing requests, typically a *http.Client with any
	// customized settings, such as certificate chains.
	Client HttpRequestDoer

	// A list of callbacks for modifying requests which are generated before sending over
	// the network.
	RequestEditors []RequestEditorFn
}

// ClientOption allows setting custom parameters during construction
type ClientOption func(*Client) error

// Creates a new Client, with reasonable defaults
func NewClient(server string, opts ...ClientOption) (*Client, error) {
	// create a client with sane default values
	client := Client{
		Server: server,
	}
	// mutate client and add all optional params
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}
	// ensure the server URL always has a trailing slash
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}
	// create httpClient, if not already present
	if client.Client == nil {
		client.Client = &http.Client{}
	}
	return &client, nil
}

// WithHTTPClient allows overriding the default Doer, which is
// automatically created using http.Client. This is useful for tests.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *Client) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn allows setting up a callback function, which will be
// called right before sending the request. This can be used to mutate the request.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *Client) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// The interface specification for the client above.
type ClientInterface interface {
	// ExtractTextWithBody request with any body
	ExtractTextWithBody(ctx context.Context, params *ExtractTextParams, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error)

	// SubmitFeedbackWithBody request with any body
	SubmitFeedbackWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error)

	SubmitFeedback(ctx context.Context, body SubmitFeedbackJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error)

	// LibraryOverview request
	LibraryOverview(ctx context.Context, reqEditors ...RequestEditorFn) (*http.Response, error)

	// ListLibrary request
	ListLibrary(ctx context.Context, grade Grade, reqEditors ...RequestEditorFn) (*http.Response, error)

	// ReadLibraryText request
	ReadLibraryText(ctx context.Context, grade Grade, name string, reqEditors ...RequestEditorFn) (*http.Response, error)

	// GetModel request
	GetModel(ctx context.Context, reqEditors ...RequestEditorFn) (*http.Response, error)

	// PredictGradeWithBody request with any body
	PredictGradeWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error)

	PredictGrade(ctx context.Context, body PredictGradeJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error)

	// PredictGradeBatchWithBody request with any body
	PredictGradeBatchWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error)

	PredictGradeBatch(ctx context.Context, body PredictGradeBatchJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error)

	// PreviewChunksWithBody request with any body
	PreviewChunksWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error)

	PreviewChunks(ctx context.Context, body PreviewChunksJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error)

	// GetVersion request
	GetVersion(ctx context.Context, reqEditors ...RequestEditorFn) (*http.Response, error)
}

func (c *Client) ExtractTextWithBody(ctx context.Context, params *ExtractTextParams, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewExtractTextRequestWithBody(c.Server, params, contentType, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) SubmitFeedbackWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewSubmitFeedbackRequestWithBody(c.Server, contentType, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) SubmitFeedback(ctx context.Context, body SubmitFeedbackJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewSubmitFeedbackRequest(c.Server, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) LibraryOverview(ctx context.Context, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewLibraryOverviewRequest(c.Server)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) ListLibrary(ctx context.Context, grade Grade, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewListLibraryRequest(c.Server, grade)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) ReadLibraryText(ctx context.Context, grade Grade, name string, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewReadLibraryTextRequest(c.Server, grade, name)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) GetModel(ctx context.Context, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewGetModelRequest(c.Server)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) PredictGradeWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewPredictGradeRequestWithBody(c.Server, contentType, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) PredictGrade(ctx context.Context, body PredictGradeJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewPredictGradeRequest(c.Server, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) PredictGradeBatchWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewPredictGradeBatchRequestWithBody(c.Server, contentType, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) PredictGradeBatch(ctx context.Context, body PredictGradeBatchJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewPredictGradeBatchRequest(c.Server, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) PreviewChunksWithBody(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewPreviewChunksRequestWithBody(c.Server, contentType, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) PreviewChunks(ctx context.Context, body PreviewChunksJSONRequestBody, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewPreviewChunksRequest(c.Server, body)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

func (c *Client) GetVersion(ctx context.Context, reqEditors ...RequestEditorFn) (*http.Response, error) {
	req, err := NewGetVersionRequest(c.Server)
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	if err := c.applyEditors(ctx, req, reqEditors); err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

// NewExtractTextRequestWithBody generates requests for ExtractText with any type of body
func NewExtractTextRequestWithBody(server string, params *ExtractTextParams, contentType string, body io.Reader) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/extract")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	if params != nil {
		queryValues := queryURL.Query()

		if params.Format != nil {

			if queryFrag, err := runtime.StyleParamWithLocation("form", true, "format", runtime.ParamLocationQuery, *params.Format); err != nil {
				return nil, err
			} else if parsed, err := url.ParseQuery(queryFrag); err != nil {
				return nil, err
			} else {
				for k, v := range parsed {
					for _, v2 := range v {
						queryValues.Add(k, v2)
					}
				}
			}

		}

		queryURL.RawQuery = queryValues.Encode()
	}

	req, err := http.NewRequest("POST", queryURL.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", contentType)

	return req, nil
}

// NewSubmitFeedbackRequest calls the generic SubmitFeedback builder with application/json body
func NewSubmitFeedbackRequest(server string, body SubmitFeedbackJSONRequestBody) (*http.Request, error) {
	var bodyReader io.Reader
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	bodyReader = bytes.NewReader(buf)
	return NewSubmitFeedbackRequestWithBody(server, "application/json", bodyReader)
}

// NewSubmitFeedbackRequestWithBody generates requests for SubmitFeedback with any type of body
func NewSubmitFeedbackRequestWithBody(server string, contentType string, body io.Reader) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/feedback")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", queryURL.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", contentType)

	return req, nil
}

// NewLibraryOverviewRequest generates requests for LibraryOverview
func NewLibraryOverviewRequest(server string) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/library")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", queryURL.String(), nil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// NewListLibraryRequest generates requests for ListLibrary
func NewListLibraryRequest(server string, grade Grade) (*http.Request, error) {
	var err error

	var pathParam0 string

	pathParam0, err = runtime.StyleParamWithLocation("simple", false, "grade", runtime.ParamLocationPath, grade)
	if err != nil {
		return nil, err
	}

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/library/%s", pathParam0)
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", queryURL.String(), nil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// NewReadLibraryTextRequest generates requests for ReadLibraryText
func NewReadLibraryTextRequest(server string, grade Grade, name string) (*http.Request, error) {
	var err error

	var pathParam0 string

	pathParam0, err = runtime.StyleParamWithLocation("simple", false, "grade", runtime.ParamLocationPath, grade)
	if err != nil {
		return nil, err
	}

	var pathParam1 string

	pathParam1, err = runtime.StyleParamWithLocation("simple", false, "name", runtime.ParamLocationPath, name)
	if err != nil {
		return nil, err
	}

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/library/%s/%s", pathParam0, pathParam1)
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", queryURL.String(), nil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// NewGetModelRequest generates requests for GetModel
func NewGetModelRequest(server string) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/models")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", queryURL.String(), nil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

// NewPredictGradeRequest calls the generic PredictGrade builder with application/json body
func NewPredictGradeRequest(server string, body PredictGradeJSONRequestBody) (*http.Request, error) {
	var bodyReader io.Reader
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	bodyReader = bytes.NewReader(buf)
	return NewPredictGradeRequestWithBody(server, "application/json", bodyReader)
}

// NewPredictGradeRequestWithBody generates requests for PredictGrade with any type of body
func NewPredictGradeRequestWithBody(server string, contentType string, body io.Reader) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/predict")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", queryURL.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", contentType)

	return req, nil
}

// NewPredictGradeBatchRequest calls the generic PredictGradeBatch builder with application/json body
func NewPredictGradeBatchRequest(server string, body PredictGradeBatchJSONRequestBody) (*http.Request, error) {
	var bodyReader io.Reader
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	bodyReader = bytes.NewReader(buf)
	return NewPredictGradeBatchRequestWithBody(server, "application/json", bodyReader)
}

// NewPredictGradeBatchRequestWithBody generates requests for PredictGradeBatch with any type of body
func NewPredictGradeBatchRequestWithBody(server string, contentType string, body io.Reader) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/predict/batch")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", queryURL.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", contentType)

	return req, nil
}

// NewPreviewChunksRequest calls the generic PreviewChunks builder with application/json body
func NewPreviewChunksRequest(server string, body PreviewChunksJSONRequestBody) (*http.Request, error) {
	var bodyReader io.Reader
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	bodyReader = bytes.NewReader(buf)
	return NewPreviewChunksRequestWithBody(server, "application/json", bodyReader)
}

// NewPreviewChunksRequestWithBody generates requests for PreviewChunks with any type of body
func NewPreviewChunksRequestWithBody(server string, contentType string, body io.Reader) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/preview")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", queryURL.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", contentType)

	return req, nil
}

// NewGetVersionRequest generates requests for GetVersion
func NewGetVersionRequest(server string) (*http.Request, error) {
	var err error

	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}

	operationPath := fmt.Sprintf("/api/version")
	if operationPath[0] == '/' {
		operationPath = "." + operationPath
	}

	queryURL, err := serverURL.Parse(operationPath)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("GET", queryURL.String(), nil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (c *Client) applyEditors(ctx context.Context, req *http.Request, additionalEditors []RequestEditorFn) error {
	for _, r := range c.RequestEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	for _, r := range additionalEditors {
		if err := r(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// ClientWithResponses builds on ClientInterface to offer response payloads
type ClientWithResponses struct {
	ClientInterface
}

// NewClientWithResponses creates a new ClientWithResponses, which wraps
// Client with return type handling
func NewClientWithResponses(server string, opts ...ClientOption) (*ClientWithResponses, error) {
	client, err := NewClient(server, opts...)
	if err != nil {
		return nil, err
	}
	return &ClientWithResponses{client}, nil
}

// WithBaseURL overrides the baseURL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) error {
		newBaseURL, err := url.Parse(baseURL)
		if err != nil {
			return err
		}
		c.Server = newBaseURL.String()
		return nil
	}
}

// ClientWithResponsesInterface is the interface specification for the client with responses above.
type ClientWithResponsesInterface interface {
	// ExtractTextWithBodyWithResponse request with any body
	ExtractTextWithBodyWithResponse(ctx context.Context, params *ExtractTextParams, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*ExtractTextResponse, error)

	// SubmitFeedbackWithBodyWithResponse request with any body
	SubmitFeedbackWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*SubmitFeedbackResponse, error)

	SubmitFeedbackWithResponse(ctx context.Context, body SubmitFeedbackJSONRequestBody, reqEditors ...RequestEditorFn) (*SubmitFeedbackResponse, error)

	// LibraryOverviewWithResponse request
	LibraryOverviewWithResponse(ctx context.Context, reqEditors ...RequestEditorFn) (*LibraryOverviewResponse, error)

	// ListLibraryWithResponse request
	ListLibraryWithResponse(ctx context.Context, grade Grade, reqEditors ...RequestEditorFn) (*ListLibraryResponse, error)

	// ReadLibraryTextWithResponse request
	ReadLibraryTextWithResponse(ctx context.Context, grade Grade, name string, reqEditors ...RequestEditorFn) (*ReadLibraryTextResponse, error)

	// GetModelWithResponse request
	GetModelWithResponse(ctx context.Context, reqEditors ...RequestEditorFn) (*GetModelResponse, error)

	// PredictGradeWithBodyWithResponse request with any body
	PredictGradeWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*PredictGradeResponse, error)

	PredictGradeWithResponse(ctx context.Context, body PredictGradeJSONRequestBody, reqEditors ...RequestEditorFn) (*PredictGradeResponse, error)

	// PredictGradeBatchWithBodyWithResponse request with any body
	PredictGradeBatchWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*PredictGradeBatchResponse, error)

	PredictGradeBatchWithResponse(ctx context.Context, body PredictGradeBatchJSONRequestBody, reqEditors ...RequestEditorFn) (*PredictGradeBatchResponse, error)

	// PreviewChunksWithBodyWithResponse request with any body
	PreviewChunksWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*PreviewChunksResponse, error)

	PreviewChunksWithResponse(ctx context.Context, body PreviewChunksJSONRequestBody, reqEditors ...RequestEditorFn) (*PreviewChunksResponse, error)

	// GetVersionWithResponse request
	GetVersionWithResponse(ctx context.Context, reqEditors ...RequestEditorFn) (*GetVersionResponse, error)
}

type ExtractTextResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *ExtractResponse
	JSON413      *Error
	JSON415      *Error
	JSON422      *Error
}

// Status returns HTTPResponse.Status
func (r ExtractTextResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r ExtractTextResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type SubmitFeedbackResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON201      *FeedbackResponse
	JSON400      *Error
	JSON503      *Error
}

// Status returns HTTPResponse.Status
func (r SubmitFeedbackResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r SubmitFeedbackResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type LibraryOverviewResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *LibraryOverview
}

// Status returns HTTPResponse.Status
func (r LibraryOverviewResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r LibraryOverviewResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type ListLibraryResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *LibraryList
	JSON400      *Error
}

// Status returns HTTPResponse.Status
func (r ListLibraryResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r ListLibraryResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type ReadLibraryTextResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *LibraryText
	JSON404      *Error
}

// Status returns HTTPResponse.Status
func (r ReadLibraryTextResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r ReadLibraryTextResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type GetModelResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *ModelInfo
}

// Status returns HTTPResponse.Status
func (r GetModelResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r GetModelResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type PredictGradeResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *Prediction
	JSON400      *Error
	JSON422      *Error
	JSON503      *Error
}

// Status returns HTTPResponse.Status
func (r PredictGradeResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r PredictGradeResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type PredictGradeBatchResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *BatchPredictResponse
	JSON400      *Error
	JSON503      *Error
}

// Status returns HTTPResponse.Status
func (r PredictGradeBatchResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r PredictGradeBatchResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type PreviewChunksResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *PreviewResponse
	JSON400      *Error
	JSON422      *Error
}

// Status returns HTTPResponse.Status
func (r PreviewChunksResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r PreviewChunksResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

type GetVersionResponse struct {
	Body         []byte
	HTTPResponse *http.Response
	JSON200      *VersionResponse
}

// Status returns HTTPResponse.Status
func (r GetVersionResponse) Status() string {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.Status
	}
	return http.StatusText(0)
}

// StatusCode returns HTTPResponse.StatusCode
func (r GetVersionResponse) StatusCode() int {
	if r.HTTPResponse != nil {
		return r.HTTPResponse.StatusCode
	}
	return 0
}

// ExtractTextWithBodyWithResponse request with arbitrary body returning *ExtractTextResponse
func (c *ClientWithResponses) ExtractTextWithBodyWithResponse(ctx context.Context, params *ExtractTextParams, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*ExtractTextResponse, error) {
	rsp, err := c.ExtractTextWithBody(ctx, params, contentType, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseExtractTextResponse(rsp)
}

// SubmitFeedbackWithBodyWithResponse request with arbitrary body returning *SubmitFeedbackResponse
func (c *ClientWithResponses) SubmitFeedbackWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*SubmitFeedbackResponse, error) {
	rsp, err := c.SubmitFeedbackWithBody(ctx, contentType, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseSubmitFeedbackResponse(rsp)
}

func (c *ClientWithResponses) SubmitFeedbackWithResponse(ctx context.Context, body SubmitFeedbackJSONRequestBody, reqEditors ...RequestEditorFn) (*SubmitFeedbackResponse, error) {
	rsp, err := c.SubmitFeedback(ctx, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseSubmitFeedbackResponse(rsp)
}

// LibraryOverviewWithResponse request returning *LibraryOverviewResponse
func (c *ClientWithResponses) LibraryOverviewWithResponse(ctx context.Context, reqEditors ...RequestEditorFn) (*LibraryOverviewResponse, error) {
	rsp, err := c.LibraryOverview(ctx, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseLibraryOverviewResponse(rsp)
}

// ListLibraryWithResponse request returning *ListLibraryResponse
func (c *ClientWithResponses) ListLibraryWithResponse(ctx context.Context, grade Grade, reqEditors ...RequestEditorFn) (*ListLibraryResponse, error) {
	rsp, err := c.ListLibrary(ctx, grade, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseListLibraryResponse(rsp)
}

// ReadLibraryTextWithResponse request returning *ReadLibraryTextResponse
func (c *ClientWithResponses) ReadLibraryTextWithResponse(ctx context.Context, grade Grade, name string, reqEditors ...RequestEditorFn) (*ReadLibraryTextResponse, error) {
	rsp, err := c.ReadLibraryText(ctx, grade, name, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseReadLibraryTextResponse(rsp)
}

// GetModelWithResponse request returning *GetModelResponse
func (c *ClientWithResponses) GetModelWithResponse(ctx context.Context, reqEditors ...RequestEditorFn) (*GetModelResponse, error) {
	rsp, err := c.GetModel(ctx, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseGetModelResponse(rsp)
}

// PredictGradeWithBodyWithResponse request with arbitrary body returning *PredictGradeResponse
func (c *ClientWithResponses) PredictGradeWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*PredictGradeResponse, error) {
	rsp, err := c.PredictGradeWithBody(ctx, contentType, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParsePredictGradeResponse(rsp)
}

func (c *ClientWithResponses) PredictGradeWithResponse(ctx context.Context, body PredictGradeJSONRequestBody, reqEditors ...RequestEditorFn) (*PredictGradeResponse, error) {
	rsp, err := c.PredictGrade(ctx, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParsePredictGradeResponse(rsp)
}

// PredictGradeBatchWithBodyWithResponse request with arbitrary body returning *PredictGradeBatchResponse
func (c *ClientWithResponses) PredictGradeBatchWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*PredictGradeBatchResponse, error) {
	rsp, err := c.PredictGradeBatchWithBody(ctx, contentType, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParsePredictGradeBatchResponse(rsp)
}

func (c *ClientWithResponses) PredictGradeBatchWithResponse(ctx context.Context, body PredictGradeBatchJSONRequestBody, reqEditors ...RequestEditorFn) (*PredictGradeBatchResponse, error) {
	rsp, err := c.PredictGradeBatch(ctx, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParsePredictGradeBatchResponse(rsp)
}

// PreviewChunksWithBodyWithResponse request with arbitrary body returning *PreviewChunksResponse
func (c *ClientWithResponses) PreviewChunksWithBodyWithResponse(ctx context.Context, contentType string, body io.Reader, reqEditors ...RequestEditorFn) (*PreviewChunksResponse, error) {
	rsp, err := c.PreviewChunksWithBody(ctx, contentType, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParsePreviewChunksResponse(rsp)
}

func (c *ClientWithResponses) PreviewChunksWithResponse(ctx context.Context, body PreviewChunksJSONRequestBody, reqEditors ...RequestEditorFn) (*PreviewChunksResponse, error) {
	rsp, err := c.PreviewChunks(ctx, body, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParsePreviewChunksResponse(rsp)
}

// GetVersionWithResponse request returning *GetVersionResponse
func (c *ClientWithResponses) GetVersionWithResponse(ctx context.Context, reqEditors ...RequestEditorFn) (*GetVersionResponse, error) {
	rsp, err := c.GetVersion(ctx, reqEditors...)
	if err != nil {
		return nil, err
	}
	return ParseGetVersionResponse(rsp)
}

// ParseExtractTextResponse parses an HTTP response from a ExtractTextWithResponse call
func ParseExtractTextResponse(rsp *http.Response) (*ExtractTextResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &ExtractTextResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest ExtractResponse
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 413:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON413 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 415:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON415 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 422:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON422 = &dest

	}

	return response, nil
}

// ParseSubmitFeedbackResponse parses an HTTP response from a SubmitFeedbackWithResponse call
func ParseSubmitFeedbackResponse(rsp *http.Response) (*SubmitFeedbackResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &SubmitFeedbackResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 201:
		var dest FeedbackResponse
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON201 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 400:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON400 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 503:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON503 = &dest

	}

	return response, nil
}

// ParseLibraryOverviewResponse parses an HTTP response from a LibraryOverviewWithResponse call
func ParseLibraryOverviewResponse(rsp *http.Response) (*LibraryOverviewResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &LibraryOverviewResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest LibraryOverview
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	}

	return response, nil
}

// ParseListLibraryResponse parses an HTTP response from a ListLibraryWithResponse call
func ParseListLibraryResponse(rsp *http.Response) (*ListLibraryResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &ListLibraryResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest LibraryList
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 400:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON400 = &dest

	}

	return response, nil
}

// ParseReadLibraryTextResponse parses an HTTP response from a ReadLibraryTextWithResponse call
func ParseReadLibraryTextResponse(rsp *http.Response) (*ReadLibraryTextResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &ReadLibraryTextResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest LibraryText
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 404:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON404 = &dest

	}

	return response, nil
}

// ParseGetModelResponse parses an HTTP response from a GetModelWithResponse call
func ParseGetModelResponse(rsp *http.Response) (*GetModelResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &GetModelResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest ModelInfo
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	}

	return response, nil
}

// ParsePredictGradeResponse parses an HTTP response from a PredictGradeWithResponse call
func ParsePredictGradeResponse(rsp *http.Response) (*PredictGradeResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &PredictGradeResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest Prediction
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 400:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON400 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 422:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON422 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 503:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON503 = &dest

	}

	return response, nil
}

// ParsePredictGradeBatchResponse parses an HTTP response from a PredictGradeBatchWithResponse call
func ParsePredictGradeBatchResponse(rsp *http.Response) (*PredictGradeBatchResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &PredictGradeBatchResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest BatchPredictResponse
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 400:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON400 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 503:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON503 = &dest

	}

	return response, nil
}

// ParsePreviewChunksResponse parses an HTTP response from a PreviewChunksWithResponse call
func ParsePreviewChunksResponse(rsp *http.Response) (*PreviewChunksResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &PreviewChunksResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest PreviewResponse
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 400:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON400 = &dest

	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 422:
		var dest Error
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON422 = &dest

	}

	return response, nil
}

// ParseGetVersionResponse parses an HTTP response from a GetVersionWithResponse call
func ParseGetVersionResponse(rsp *http.Response) (*GetVersionResponse, error) {
	bodyBytes, err := io.ReadAll(rsp.Body)
	defer func() { _ = rsp.Body.Close() }()
	if err != nil {
		return nil, err
	}

	response := &GetVersionResponse{
		Body:         bodyBytes,
		HTTPResponse: rsp,
	}

	switch {
	case strings.Contains(rsp.Header.Get("Content-Type"), "json") && rsp.StatusCode == 200:
		var dest VersionResponse
		if err := json.Unmarshal(bodyBytes, &dest); err != nil {
			return nil, err
		}
		response.JSON200 = &dest

	}

	return response, nil
}
