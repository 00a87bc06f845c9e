// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package classifier

import (
	"slices"
	"strings"
)

// Boundary sets. All boundary characters are ASCII, so byte-wise checks are
// safe on UTF-8 text.
const (
	// WordBoundaries delimit single words.
	WordBoundaries = " ,.:;()[]\t\n"
	// PhraseBoundaries delimit ingredient phrases: word boundaries except
	// space and tab, so "whey protein isolate" is one phrase.
	PhraseBoundaries = ",.:;()[]\n"
)

// Span is a half-open byte range [Start, End) into a string.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.End - s.Start }

// In returns the text covered by s.
func (s Span) In(text string) string { return text[s.Start:s.End] }

// EnclosingSpan widens [start, end) to the nearest boundary characters on
// each side (or the start/end of text). Out-of-range offsets are clamped.
func EnclosingSpan(text string, start, end int, boundaries string) Span {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))

	for start > 0 && !isBoundary(text[start-1], boundaries) {
		start--
	}
	for end < len(text) && !isBoundary(text[end], boundaries) {
		end++
	}
	return Span{Start: start, End: end}
}

// IsWholeWord reports whether [start, end) is delimited by word boundaries
// or the edges of text.
func IsWholeWord(text string, start, end int) bool {
	if start > 0 && !isBoundary(text[start-1], WordBoundaries) {
		return false
	}
	if end < len(text) && !isBoundary(text[end], WordBoundaries) {
		return false
	}
	return true
}

// occurrences returns the start offset of every occurrence of kw in text,
// overlapping ones included.
func occurrences(text, kw string) []int {
	if kw == "" {
		return nil
	}
	var out []int
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], kw)
		if idx < 0 {
			break
		}
		out = append(out, from+idx)
		from += idx + 1
	}
	return out
}

// linkWords may stand between a base keyword and its qualifier, as in
// "whey protein isolate" or "isolat de protéines de soja".
var linkWords = map[string]bool{
	"protein": true, "proteins": true,
	"protéine": true, "protéines": true,
	"eiweiß": true, "eiweiss": true,
	"de": true, "des": true, "du": true,
}

// adjacentQualifier reports a qualifier in the words directly before or
// after [start, end). Link words are skipped; any other word, or the end
// of the ingredient phrase, stops the search. "whey and soy protein
// isolate" therefore leaves "whey" unqualified.
func adjacentQualifier(text string, start, end int, qualifiers []string) (string, bool) {
	phrase := EnclosingSpan(text, start, end, PhraseBoundaries)

	after := strings.Fields(text[end:phrase.End])
	if q, ok := firstQualifier(after, qualifiers); ok {
		return q, true
	}

	before := strings.Fields(text[phrase.Start:start])
	slices.Reverse(before)
	return firstQualifier(before, qualifiers)
}

func firstQualifier(words, qualifiers []string) (string, bool) {
	for _, w := range words {
		if q, ok := containsAny(w, qualifiers); ok {
			return q, true
		}
		if !linkWords[w] {
			break
		}
	}
	return "", false
}

func containsAny(s string, subs []string) (string, bool) {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return sub, true
		}
	}
	return "", false
}

func isBoundary(b byte, boundaries string) bool {
	return strings.IndexByte(boundaries, b) >= 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
