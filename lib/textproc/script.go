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
	"unicode"
)

const (
	cyrillicFirst = '\u0400'
	cyrillicLast  = '\u04FF'
)

// HasCyrillic reports whether text contains any rune of the Cyrillic block.
func HasCyrillic(text string) bool {
	return strings.IndexFunc(text, isCyrillic) >= 0
}

func isCyrillic(r rune) bool {
	return r >= cyrillicFirst && r <= cyrillicLast
}

// latin holds the lower-case Latin spelling of each Cyrillic letter, following
// the 1995 Uzbek Latin alphabet with Russian-only letters mapped to their
// closest Uzbek reading.
var latin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "j", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "x", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sh", 'ъ': "ʼ",
	'ы': "i", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'ў': "oʻ", 'қ': "q", 'ғ': "gʻ", 'ҳ': "h",
}

// ToLatin transliterates Cyrillic letters to Latin. Text without Cyrillic is
// returned unchanged, so ToLatin is idempotent.
//
// "е" is written "ye" at the start of a word and after a vowel, as in
// "ер" -> "yer" and "поезд" -> "poyezd".
func ToLatin(text string) string {
	if !HasCyrillic(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	prev := rune(0)
	for _, r := range text {
		lower := unicode.ToLower(r)
		repl, ok := latin[lower]
		if !ok {
			b.WriteRune(r)
			prev = r
			continue
		}
		if lower == 'е' && (prev == 0 || !unicode.IsLetter(prev) || isVowel(unicode.ToLower(prev))) {
			repl = "ye"
		}
		if lower != r && repl != "" {
			repl = capitalize(repl)
		}
		b.WriteString(repl)
		prev = r
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'а', 'е', 'ё', 'и', 'о', 'у', 'ы', 'э', 'ю', 'я', 'ў',
		'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
