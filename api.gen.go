//go:build go1.22

// Package litgrade provides primitives to interact with the openapi HTTP API.
//
// Code generated by github.com/oapi-codegen/oapi-codegen/v2 version v2.5.1 DO NOT EDIT.
package litgrade

import (
	"fmt"
	"net/http"
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

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Extract plain text from an uploaded document
	// (POST /api/extract)
	ExtractText(w http.ResponseWriter, r *http.Request, params ExtractTextParams)
	// Store reader feedback
	// (POST /api/feedback)
	SubmitFeedback(w http.ResponseWriter, r *http.Request)
	// Number of bundled texts per grade
	// (GET /api/library)
	LibraryOverview(w http.ResponseWriter, r *http.Request)
	// List the bundled texts of a grade
	// (GET /api/library/{grade})
	ListLibrary(w http.ResponseWriter, r *http.Request, grade Grade)
	// Read one bundled text
	// (GET /api/library/{grade}/{name})
	ReadLibraryText(w http.ResponseWriter, r *http.Request, grade Grade, name string)
	// Describe the loaded grade model
	// (GET /api/models)
	GetModel(w http.ResponseWriter, r *http.Request)
	// Estimate the grade of a text
	// (POST /api/predict)
	PredictGrade(w http.ResponseWriter, r *http.Request)
	// Estimate the grade of several texts
	// (POST /api/predict/batch)
	PredictGradeBatch(w http.ResponseWriter, r *http.Request)
	// Count the full chunks a text forms without running inference
	// (POST /api/preview)
	PreviewChunks(w http.ResponseWriter, r *http.Request)
	// Build information
	// (GET /api/version)
	GetVersion(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ExtractText operation middleware
func (siw *ServerInterfaceWrapper) ExtractText(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ExtractTextParams

	// ------------- Optional query parameter "format" -------------

	err = runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "format", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ExtractText(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SubmitFeedback operation middleware
func (siw *ServerInterfaceWrapper) SubmitFeedback(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SubmitFeedback(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// LibraryOverview operation middleware
func (siw *ServerInterfaceWrapper) LibraryOverview(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.LibraryOverview(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListLibrary operation middleware
func (siw *ServerInterfaceWrapper) ListLibrary(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "grade" -------------
	var grade Grade

	err = runtime.BindStyledParameterWithOptions("simple", "grade", r.PathValue("grade"), &grade, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "grade", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListLibrary(w, r, grade)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ReadLibraryText operation middleware
func (siw *ServerInterfaceWrapper) ReadLibraryText(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "grade" -------------
	var grade Grade

	err = runtime.BindStyledParameterWithOptions("simple", "grade", r.PathValue("grade"), &grade, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "grade", Err: err})
		return
	}

	// ------------- Path parameter "name" -------------
	var name string

	err = runtime.BindStyledParameterWithOptions("simple", "name", r.PathValue("name"), &name, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "name", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ReadLibraryText(w, r, grade, name)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetModel operation middleware
func (siw *ServerInterfaceWrapper) GetModel(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetModel(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PredictGrade operation middleware
func (siw *ServerInterfaceWrapper) PredictGrade(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PredictGrade(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PredictGradeBatch operation middleware
func (siw *ServerInterfaceWrapper) PredictGradeBatch(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PredictGradeBatch(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// PreviewChunks operation middleware
func (siw *ServerInterfaceWrapper) PreviewChunks(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PreviewChunks(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetVersion operation middleware
func (siw *ServerInterfaceWrapper) GetVersion(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetVersion(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{})
}

// ServeMux is an abstraction of http.ServeMux.
type ServeMux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type StdHTTPServerOptions struct {
	BaseURL          string
	BaseRouter       ServeMux
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, m ServeMux, baseURL string) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseURL:    baseURL,
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	m.HandleFunc("POST "+options.BaseURL+"/api/extract", wrapper.ExtractText)
	m.HandleFunc("POST "+options.BaseURL+"/api/feedback", wrapper.SubmitFeedback)
	m.HandleFunc("GET "+options.BaseURL+"/api/library", wrapper.LibraryOverview)
	m.HandleFunc("GET "+options.BaseURL+"/api/library/{grade}", wrapper.ListLibrary)
	m.HandleFunc("GET "+options.BaseURL+"/api/library/{grade}/{name}", wrapper.ReadLibraryText)
	m.HandleFunc("GET "+options.BaseURL+"/api/models", wrapper.GetModel)
	m.HandleFunc("POST "+options.BaseURL+"/api/predict", wrapper.PredictGrade)
	m.HandleFunc("POST "+options.BaseURL+"/api/predict/batch", wrapper.PredictGradeBatch)
	m.HandleFunc("POST "+options.BaseURL+"/api/preview", wrapper.PreviewChunks)
	m.HandleFunc("GET "+options.BaseURL+"/api/version", wrapper.GetVersion)

	return m
}
