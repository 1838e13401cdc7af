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

// Package textproc turns raw literary text into the normalized word tokens
// consumed by the chunker, and handles script detection and Cyrillic to
// Latin transliteration for Uzbek and Russian input.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsWordRune reports whether r belongs to a word token: any Unicode letter,
// any Unicode number, or the underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Normalize lower-cases text, replaces every rune that is neither a word rune
// nor whitespace with a space, collapses whitespace runs to a single space and
// trims the result. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A Caser keeps state between calls, so it is never shared.
	lowered := cases.Lower(language.Und).String(text)

	cleaned := strings.Map(func(r rune) rune {
		if IsWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Join(strings.Fields(cleaned), " ")
}

// Tokenize returns every maximal run of word runes in order. Empty input
// yields an empty (non-nil) slice.
func Tokenize(normalized string) []string {
	tokens := strings.FieldsFunc(normalized, func(r rune) bool {
		return !IsWordRune(r)
	})
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// Tokens is Normalize followed by Tokenize.
func Tokens(text string) []string {
	return Tokenize(Normalize(text))
}
