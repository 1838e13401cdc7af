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

package extraction

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"txt":                       FormatText,
		".TXT":                      FormatText,
		"text/plain; charset=utf-8": FormatText,
		"docx":                      FormatDOCX,
		".pdf":                      FormatPDF,
		"application/pdf":           FormatPDF,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("doc")
	require.ErrorIs(t, err, ErrFormatUnsupported)
}

func TestFormatFromFilename(t *testing.T) {
	f, err := FormatFromFilename("Alpomish.DOCX")
	require.NoError(t, err)
	assert.Equal(t, FormatDOCX, f)

	_, err = FormatFromFilename("README")
	require.ErrorIs(t, err, ErrFormatUnsupported)

	_, err = FormatFromFilename("scan.png")
	require.ErrorIs(t, err, ErrFormatUnsupported)
}

func TestExtract_Text(t *testing.T) {
	got, err := Extract([]byte("Kecha kechqurun"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "Kecha kechqurun", got)

	got, err = Extract(append([]byte{0xEF, 0xBB, 0xBF}, "salom"...), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "salom", got)

	got, err = Extract([]byte("sa\xfflom"), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "salom", got)

	// UTF-16LE with byte order mark.
	got, err = Extract([]byte{0xFF, 0xFE, 'o', 0, 'k', 0}, FormatText)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	got, err = Extract(nil, FormatText)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_DOCX(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Bir bor ekan,</w:t></w:r><w:r><w:t xml:space="preserve"> bir yo'q ekan.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Ikkinchi</w:t><w:tab/><w:t>xatboshi</w:t></w:r></w:p>`)

	got, err := Extract(data, FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Bir bor ekan, bir yo'q ekan.\nIkkinchi\txatboshi", got)
}

func TestExtract_DOCXFailures(t *testing.T) {
	_, err := Extract([]byte("not a zip"), FormatDOCX)
	require.ErrorIs(t, err, ErrExtractionFailed)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = Extract(buf.Bytes(), FormatDOCX)
	require.ErrorIs(t, err, ErrExtractionFailed)

	_, err = Extract(buildDOCX(t, `<w:p><w:t>unclosed`), FormatDOCX)
	require.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_DOCXExpansionLimit(t *testing.T) {
	para := `<w:p><w:r><w:t>` + strings.Repeat("a", 4096) + `</w:t></w:r></w:p>`
	data := buildDOCX(t, strings.Repeat(para, 64))
	require.Less(t, len(data), 64<<10)

	_, err := Extract(data, FormatDOCX, WithMaxDecompressedBytes(64<<10))
	require.ErrorIs(t, err, ErrDocumentTooLarge)

	got, err := Extract(data, FormatDOCX, WithMaxDecompressedBytes(1<<20))
	require.NoError(t, err)
	assert.Len(t, strings.Split(got, "\n"), 64)
}

func TestExtract_PDFFailure(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.4 truncated"), FormatPDF)
	require.ErrorIs(t, err, ErrExtractionFailed)

	_, err = Extract(nil, FormatPDF)
	require.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract([]byte("x"), Format("rtf"))
	require.ErrorIs(t, err, ErrFormatUnsupported)
}
