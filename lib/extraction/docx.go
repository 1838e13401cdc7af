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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// extractDOCX reads the paragraphs of word/document.xml, one per line. The
// entry is read through a limit so a zip bomb fails once it expands past
// limit bytes.
func extractDOCX(data []byte, limit int64) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening docx: %w", ErrExtractionFailed, err)
	}
	f, err := zr.Open(docxBody)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExtractionFailed, docxBody, err)
	}
	defer func() { _ = f.Close() }()
	if st, err := f.Stat(); err == nil && st.Size() > limit {
		return "", fmt.Errorf("%w: %s expands to %d bytes, limit %d", ErrDocumentTooLarge, docxBody, st.Size(), limit)
	}
	lr := &io.LimitedReader{R: f, N: limit + 1}

	var (
		b      strings.Builder
		inText bool
	)
	dec := xml.NewDecoder(lr)
	for {
		tok, err := dec.Token()
		if lr.N <= 0 {
			return "", fmt.Errorf("%w: %s expands past %d bytes", ErrDocumentTooLarge, docxBody, limit)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parsing %s: %w", ErrExtractionFailed, docxBody, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
