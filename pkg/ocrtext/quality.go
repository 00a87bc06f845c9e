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

package ocrtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quality issues reported by AssessQuality.
const (
	IssueEmpty        = "Empty text"
	IssueNoise        = "High noise ratio"
	IssueShort        = "Very short text"
	IssueNoSeparators = "No ingredient separators found"
	IssueUppercase    = "All uppercase"
)

// Quality is a heuristic assessment of OCR text.
type Quality struct {
	// Score is in [0, 1]; 0.7 or more is good enough to classify.
	Score                float64  `json:"score"`
	Issues               []string `json:"issues,omitempty"`
	LikelyIngredientList bool     `json:"likely_ingredient_list"`
}

var listMarkers = []string{
	"ingredient", "zutaten", "ingrédient", "ingredientes",
	"contains", "enthält", "contient",
}

const punctuationAllowed = ",.;:()-'"

// AssessQuality scores text for OCR noise, length, separators and casing.
func AssessQuality(text string) Quality {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Quality{Issues: []string{IssueEmpty}}
	}

	score := 1.0
	var issues []string

	var special int
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) && !strings.ContainsRune(punctuationAllowed, r) {
			special++
		}
	}
	if float64(special)/float64(n) > 0.1 {
		score -= 0.2
		issues = append(issues, IssueNoise)
	}

	if n < 20 {
		score -= 0.3
		issues = append(issues, IssueShort)
	}

	hasSeparator := strings.ContainsAny(text, ",;")
	if !hasSeparator && n > 50 {
		score -= 0.2
		issues = append(issues, IssueNoSeparators)
	}

	if n > 20 && text == strings.ToUpper(text) && strings.IndexFunc(text, unicode.IsLetter) >= 0 {
		score -= 0.1
		issues = append(issues, IssueUppercase)
	}

	lower := strings.ToLower(text)
	hasMarker := false
	for _, m := range listMarkers {
		if strings.Contains(lower, m) {
			hasMarker = true
			break
		}
	}
	if hasMarker {
		score += 0.1
	}

	return Quality{
		Score:                min(max(score, 0), 1),
		Issues:               issues,
		LikelyIngredientList: hasMarker || strings.Contains(text, ","),
	}
}
