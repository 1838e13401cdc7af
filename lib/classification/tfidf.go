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

package classification

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Norm names the row normalization applied after TF-IDF weighting.
type Norm string

const (
	NormL2   Norm = "l2"
	NormL1   Norm = "l1"
	NormNone Norm = "none"
)

// defaultMinTokenLength matches the usual word pattern of bag-of-words
// vectorizers, which ignores single-character tokens.
const defaultMinTokenLength = 2

// TfidfConfig is the fitted state of a TF-IDF vectorizer as stored in
// vectorizer.json.
type TfidfConfig struct {
	// Vocabulary maps each term (or space-joined n-gram) to its column.
	Vocabulary map[string]int `json:"vocabulary"`
	// IDF holds the inverse document frequency of every column.
	IDF []float64 `json:"idf"`
	// NgramRange is the inclusive [min, max] n-gram length. Defaults to [1, 1].
	NgramRange [2]int `json:"ngram_range"`
	// SublinearTF replaces tf with 1 + log(tf).
	SublinearTF bool `json:"sublinear_tf"`
	// Binary clips term counts to 1 before weighting.
	Binary bool `json:"binary"`
	// Norm is applied to each row. Defaults to l2.
	Norm Norm `json:"norm"`
	// MinTokenLength drops shorter tokens before counting. Defaults to 2.
	MinTokenLength int `json:"min_token_length"`
}

// TfidfVectorizer weights term counts by inverse document frequency. It is
// immutable after construction and safe for concurrent use.
type TfidfVectorizer struct {
	cfg TfidfConfig
}

var _ Vectorizer = (*TfidfVectorizer)(nil)

// NewTfidfVectorizer validates cfg, applies defaults and returns a vectorizer.
func NewTfidfVectorizer(cfg TfidfConfig) (*TfidfVectorizer, error) {
	if len(cfg.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer vocabulary is empty")
	}
	if len(cfg.IDF) == 0 {
		return nil, fmt.Errorf("vectorizer idf is empty")
	}
	for term, idx := range cfg.Vocabulary {
		if idx < 0 || idx >= len(cfg.IDF) {
			return nil, fmt.Errorf("vocabulary term %q has column %d outside idf range %d", term, idx, len(cfg.IDF))
		}
	}
	if cfg.NgramRange == [2]int{} {
		cfg.NgramRange = [2]int{1, 1}
	}
	if cfg.NgramRange[0] < 1 || cfg.NgramRange[1] < cfg.NgramRange[0] {
		return nil, fmt.Errorf("invalid ngram_range %v", cfg.NgramRange)
	}
	switch cfg.Norm {
	case "":
		cfg.Norm = NormL2
	case NormL1, NormL2, NormNone:
	default:
		return nil, fmt.Errorf("unknown norm %q", cfg.Norm)
	}
	if cfg.MinTokenLength <= 0 {
		cfg.MinTokenLength = defaultMinTokenLength
	}
	return &TfidfVectorizer{cfg: cfg}, nil
}

// Dim returns the number of feature columns.
func (t *TfidfVectorizer) Dim() int {
	return len(t.cfg.IDF)
}

// Transform vectorizes each document. Terms outside the vocabulary are
// ignored, so a document may map to the zero vector.
func (t *TfidfVectorizer) Transform(docs []string) []SparseVector {
	out := make([]SparseVector, len(docs))
	for i, doc := range docs {
		out[i] = t.transformOne(doc)
	}
	return out
}

func (t *TfidfVectorizer) transformOne(doc string) SparseVector {
	tokens := make([]string, 0, 64)
	for _, tok := range strings.Fields(doc) {
		if utf8.RuneCountInString(tok) >= t.cfg.MinTokenLength {
			tokens = append(tokens, tok)
		}
	}

	counts := make(map[int]float64)
	lo, hi := t.cfg.NgramRange[0], t.cfg.NgramRange[1]
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			term := tokens[i]
			if n > 1 {
				term = strings.Join(tokens[i:i+n], " ")
			}
			if idx, ok := t.cfg.Vocabulary[term]; ok {
				counts[idx]++
			}
		}
	}

	for idx, tf := range counts {
		switch {
		case t.cfg.Binary:
			tf = 1
		case t.cfg.SublinearTF:
			tf = 1 + math.Log(tf)
		}
		counts[idx] = tf * t.cfg.IDF[idx]
	}

	v := newSparseVector(counts)
	normalize(v, t.cfg.Norm)
	return v
}

func normalize(v SparseVector, norm Norm) {
	var denom float64
	switch norm {
	case NormL2:
		denom = v.Norm2()
	case NormL1:
		for _, x := range v.Values {
			denom += math.Abs(x)
		}
	default:
		return
	}
	if denom == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= denom
	}
}
