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

// Package extraction pulls plain text out of uploaded documents.
package extraction

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrFormatUnsupported is returned for formats other than txt, docx and pdf.
	ErrFormatUnsupported = errors.New("unsupported document format")

	// ErrExtractionFailed is returned when a document cannot be read or holds
	// no extractable text.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrDocumentTooLarge is returned when a compressed document expands past
	// the configured limit.
	ErrDocumentTooLarge = errors.New("document exceeds size limit")
)

// DefaultMaxDecompressedBytes bounds the XML read out of a docx when no
// limit is given.
const DefaultMaxDecompressedBytes int64 = 20 << 20

type options struct {
	maxDecompressed int64
}

// Option configures Extract.
type Option func(*options)

// WithMaxDecompressedBytes caps how much a docx body may expand to.
// Non-positive values keep the default.
func WithMaxDecompressedBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDecompressed = n
		}
	}
}

// Format is a supported document format.
type Format string

const (
	FormatText Format = "txt"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatDOCX, FormatPDF}
}

// ParseFormat accepts a format name, an extension with or without the
// leading dot, or a MIME type.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	switch strings.TrimPrefix(s, ".") {
	case "txt", "text", "text/plain":
		return FormatText, nil
	case "docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FormatDOCX, nil
	case "pdf", "application/pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormatUnsupported, s)
}

// FormatFromFilename derives the format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrFormatUnsupported, name)
	}
	return ParseFormat(ext)
}

// Extract returns the text held in data. The result may be empty for an
// empty txt or docx; callers treat that as missing input. A PDF without a
// text layer fails with ErrExtractionFailed since OCR is not attempted.
func Extract(data []byte, format Format, opts ...Option) (string, error) {
	o := options{maxDecompressed: DefaultMaxDecompressedBytes}
	for _, opt := range opts {
		opt(&o)
	}
	switch format {
	case FormatText:
		return extractText(data)
	case FormatDOCX:
		return extractDOCX(data, o.maxDecompressed)
	case FormatPDF:
		return extractPDF(data)
	}
	return "", fmt.Errorf("%w: %q", ErrFormatUnsupported, string(format))
}
