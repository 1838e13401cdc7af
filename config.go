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
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/antflydb/litgrade/lib/chunking"
)

// Config holds the server settings. Field names match the viper keys.
type Config struct {
	// ApiUrl is the address the API listens on, e.g. http://localhost:11500.
	ApiUrl string `json:"api_url" mapstructure:"api_url"`

	// ModelsDir holds vectorizer.json, classifier.json and labels.json.
	ModelsDir string `json:"models_dir" mapstructure:"models_dir"`

	// LibraryDir holds the reading library as <grade>/*.txt.
	LibraryDir string `json:"library_dir" mapstructure:"library_dir"`

	// FeedbackDB is the SQLite file for reader feedback. Empty disables
	// the feedback endpoint.
	FeedbackDB string `json:"feedback_db" mapstructure:"feedback_db"`

	ChunkSize   int `json:"chunk_size" mapstructure:"chunk_size"`
	ChunkStride int `json:"chunk_stride" mapstructure:"chunk_stride"`

	// AutoTransliterate converts Cyrillic input to Latin before inference
	// unless a request says otherwise.
	AutoTransliterate bool `json:"auto_transliterate" mapstructure:"auto_transliterate"`

	// MaxConcurrentRequests bounds in-flight inference (0 = number of CPUs).
	MaxConcurrentRequests int `json:"max_concurrent_requests" mapstructure:"max_concurrent_requests"`
	// MaxQueueSize bounds requests waiting for a slot (0 = unbounded).
	MaxQueueSize int `json:"max_queue_size" mapstructure:"max_queue_size"`
	// RequestTimeout bounds the wait for a slot, e.g. "30s" (0 = none).
	RequestTimeout time.Duration `json:"request_timeout" mapstructure:"request_timeout"`

	// CacheTTL is how long predictions stay cached, e.g. "2m" (0 = off).
	CacheTTL time.Duration `json:"cache_ttl" mapstructure:"cache_ttl"`

	// MaxUploadMb caps request bodies.
	MaxUploadMb int `json:"max_upload_mb" mapstructure:"max_upload_mb"`
}

// Default configuration values.
const (
	DefaultApiUrl         = "http://localhost:11500"
	DefaultModelsDir      = "./models"
	DefaultLibraryDir     = "./library"
	DefaultFeedbackDB     = "./feedback/feedback.db"
	DefaultMaxQueueSize   = 64
	DefaultRequestTimeout = 30 * time.Second
	DefaultCacheTTL       = 2 * time.Minute
	DefaultMaxUploadMb    = 20
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		ApiUrl:            DefaultApiUrl,
		ModelsDir:         DefaultModelsDir,
		LibraryDir:        DefaultLibraryDir,
		FeedbackDB:        DefaultFeedbackDB,
		ChunkSize:         chunking.DefaultSize,
		ChunkStride:       chunking.DefaultStride,
		AutoTransliterate: true,
		MaxQueueSize:      DefaultMaxQueueSize,
		RequestTimeout:    DefaultRequestTimeout,
		CacheTTL:          DefaultCacheTTL,
		MaxUploadMb:       DefaultMaxUploadMb,
	}
}

// Window returns the default window for requests that do not set one.
func (c Config) Window() chunking.WindowParams {
	return chunking.WindowParams{Size: c.ChunkSize, Stride: c.ChunkStride}.WithDefaults()
}

// Validate checks the settings that would otherwise fail at first use.
func (c Config) Validate() error {
	var errs []error
	if _, err := url.Parse(c.ApiUrl); err != nil || c.ApiUrl == "" {
		errs = append(errs, fmt.Errorf("invalid api_url %q", c.ApiUrl))
	}
	if c.ChunkSize < 0 || c.ChunkStride < 0 {
		errs = append(errs, fmt.Errorf("%w: chunk_size=%d chunk_stride=%d",
			chunking.ErrInvalidWindow, c.ChunkSize, c.ChunkStride))
	}
	if c.MaxConcurrentRequests < 0 || c.MaxQueueSize < 0 {
		errs = append(errs, errors.New("max_concurrent_requests and max_queue_size must not be negative"))
	}
	if c.MaxUploadMb < 0 {
		errs = append(errs, errors.New("max_upload_mb must not be negative"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("invalid request_timeout %s: negative duration", c.RequestTimeout))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("invalid cache_ttl %s: negative duration", c.CacheTTL))
	}
	return errors.Join(errs...)
}

func (c Config) maxUploadBytes() int64 {
	if c.MaxUploadMb <= 0 {
		return DefaultMaxUploadMb << 20
	}
	return int64(c.MaxUploadMb) << 20
}
