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

package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t\n ", want: ""},
		{name: "lower cases", in: "Salom DUNYO", want: "salom dunyo"},
		{name: "punctuation becomes space", in: "Bir,ikki;uch!", want: "bir ikki uch"},
		{name: "collapses runs", in: "  a \n\n b\t\tc  ", want: "a b c"},
		{name: "keeps underscore and digits", in: "snake_case 42-ta", want: "snake_case 42 ta"},
		{name: "uzbek apostrophe splits", in: "O‘quvchi", want: "o quvchi"},
		{name: "modifier letter is a word rune", in: "Oʻzbek", want: "oʻzbek"},
		{name: "cyrillic", in: "Салом, Дунё!", want: "салом дунё"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!  It's   a test.",
		"Kitob — bilim manbai. «Otamdan qolgan dalalar»",
		"ΣΊΣΥΦΟΣ walks",
		"Салом, Дунё!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{}, Tokenize(""))
	assert.Equal(t, []string{"bir", "ikki", "uch"}, Tokenize("bir ikki uch"))
	assert.Equal(t, []string{"a", "b_c", "12"}, Tokenize("a, b_c...12"))
	assert.Equal(t, []string{"салом", "дунё"}, Tokens("Салом, дунё!"))
}

func TestTokens_Count(t *testing.T) {
	text := strings.Repeat("So'z, ", 1000)
	// "So'z" normalizes to "so z": two tokens per repetition.
	require.Len(t, Tokens(text), 2000)
}

func TestHasCyrillic(t *testing.T) {
	assert.False(t, HasCyrillic(""))
	assert.False(t, HasCyrillic("Oʻzbekiston"))
	assert.True(t, HasCyrillic("Ўзбекистон"))
	assert.True(t, HasCyrillic("mixed текст"))
}

func TestToLatin(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Салом дунё", want: "Salom dunyo"},
		{in: "ер", want: "yer"},
		{in: "поезд", want: "poyezd"},
		{in: "Шоир", want: "Shoir"},
		{in: "қўшиқ", want: "qoʻshiq"},
		{in: "ғалаба", want: "gʻalaba"},
		{in: "Ҳикоя", want: "Hikoya"},
		{in: "Latin only", want: "Latin only"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToLatin(tt.in), "input %q", tt.in)
	}
}

func TestToLatin_Idempotent(t *testing.T) {
	once := ToLatin("Китоб ўқиш фойдали.")
	assert.False(t, HasCyrillic(once))
	assert.Equal(t, once, ToLatin(once))
}
