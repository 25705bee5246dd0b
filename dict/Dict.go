/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dict implements the reversible word-tokenization pre/post pass
// that sits in front of the statistical core: common lowercase English
// words collapse to single byte tokens in [129,255], freeing those codes
// for the PPM/mixer models to specialize on, with a capitalization-marker
// byte (128) restoring the one bit of case information that collapsing
// discards.
package dict

import (
	"strings"
	"unicode"
)

// CapMarker precedes a word token when the original word's first rune was
// upper case and the rest of the word otherwise matched the dictionary
// entry exactly.
const CapMarker = 128

// Words is the fixed, ordered vocabulary; token value for Words[i] is
// 129+i. Order matters: it is part of the wire contract between an
// encoder and a decoder built from this list.
var Words = []string{
	"the", "and", "have", "that", "of", "they", "be", "to",
	"with", "in", "was", "for", "this", "which", "from", "would",
	"not", "there", "she", "he", "their", "his", "are", "it",
	"were", "you", "will", "had", "but", "other", "is", "make",
	"said", "when", "about", "more", "them", "been", "one", "could",
	"what", "state", "her", "as", "all", "time", "on", "say",
	"than", "who", "these", "through", "years", "at", "first", "can",
	"into", "by", "before", "because", "only", "think", "year", "some",
	"we", "man", "take", "him", "out", "come", "should", "after",
	"people", "do", "has", "know", "like", "then", "different", "between",
	"did", "great", "work", "made", "or", "such", "where", "being",
	"little", "give", "over", "another", "most", "even", "find", "become",
	"also", "against", "found", "new", "many", "those", "called", "must",
	"look", "without", "number", "place", "world", "back", "still", "an",
	"long", "see", "use", "get", "much", "its", "well", "down",
	"follow", "during", "any", "just", "under", "right", "thing",
}

var wordIndex map[string]int

func init() {
	wordIndex = make(map[string]int, len(Words))

	for i, w := range Words {
		wordIndex[w] = i
	}
}

// Preprocess maps text into the token alphabet, replacing whole-word
// matches against Words with a single byte (129+index), or a
// CapMarker-prefixed token when only the leading rune's case differs.
// Runs outside the dictionary (including multi-byte runes) pass through
// as their raw UTF-8 encoding, matching the opaque-byte-source contract
// the core expects.
func Preprocess(text string) []byte {
	runes := []rune(text)
	n := len(runes)
	result := make([]byte, 0, n)
	i := 0

	for i < n {
		if unicode.IsLetter(runes[i]) {
			j := i

			for i < n && unicode.IsLetter(runes[i]) {
				i++
			}

			word := string(runes[j:i])
			lower := strings.ToLower(word)

			if idx, ok := wordIndex[lower]; ok {
				if word == lower {
					result = append(result, byte(129+idx))
				} else if firstUpperRestMatches(word, lower, runes[j]) {
					result = append(result, CapMarker, byte(129+idx))
				} else {
					result = append(result, []byte(word)...)
				}
			} else {
				result = append(result, []byte(word)...)
			}

			continue
		}

		ch := runes[i]

		if ch < 128 {
			result = append(result, byte(ch))
		} else {
			result = append(result, []byte(string(ch))...)
		}

		i++
	}

	return result
}

func firstUpperRestMatches(word, lower string, first rune) bool {
	if !unicode.IsUpper(first) {
		return false
	}

	wr := []rune(word)
	lr := []rune(lower)

	if len(wr) != len(lr) {
		return false
	}

	for i := 1; i < len(wr); i++ {
		if wr[i] != lr[i] {
			return false
		}
	}

	return true
}

// Unpreprocess reverses Preprocess, expanding word tokens (and any
// preceding CapMarker) back into their original text.
func Unpreprocess(data []byte) string {
	var sb strings.Builder
	capNext := false

	for _, b := range data {
		if b == CapMarker {
			capNext = true
			continue
		}

		if b >= 129 {
			word := Words[int(b)-129]

			if capNext {
				sb.WriteString(strings.ToUpper(word[:1]))
				sb.WriteString(word[1:])
				capNext = false
			} else {
				sb.WriteString(word)
			}

			continue
		}

		capNext = false
		sb.WriteByte(b)
	}

	return sb.String()
}
