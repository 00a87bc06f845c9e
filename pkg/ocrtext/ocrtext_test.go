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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean text unchanged", "Whey Protein Isolate, Milk", "Whey Protein Isolate, Milk"},
		{"hyphenated line break", "Whey Pro-\ntein Isolate", "Whey Protein Isolate"},
		{"hyphen with spaces around break", "Erbsen- \n  protein", "Erbsenprotein"},
		{"crlf and blank lines", "Zutaten:\r\n\r\nSoja,\rMilch", "Zutaten:\nSoja,\nMilch"},
		{"collapse spaces and tabs", "Soja  \t Milch", "Soja Milch"},
		{"digit for letter", "Wh3y prote1n, s0ja", "whey protein, soja"},
		{"rn for m", "rnilk, Rnolkenprotein", "milk, molkenprotein"},
		{"capital I for l", "Soy isoIate", "Soy isolate"},
		{"bullets and semicolons", "Milk • Soy; Pea", "Milk, Soy, Pea"},
		{"percentages dropped", "Whey protein (80%), cocoa (5,5 %)", "Whey protein, cocoa"},
		{"doubled separators", "Milk,, Soy, ,Pea", "Milk, Soy,Pea"},
		{"german sharp s", "Molkeneiweiss, Milcheiwelss", "Molkeneiweiß, Milcheiweiß"},
		{"french accents", "Proteines de lait, lactoserum", "protéines de lait, lactosérum"},
		{"protein term misreads", "Whcy protein, caesin, pca protein", "whey protein, casein, pea protein"},
		{"sova word only", "Sova, Sovanna", "soya, Sovanna"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preprocess(tt.in)
			assert.Equal(t, tt.in, got.Original)
			assert.Equal(t, tt.want, got.Processed)
		})
	}
}

func TestPreprocess_Corrections(t *testing.T) {
	got := Preprocess("Wh3y prote1n")
	require.Len(t, got.Corrections, 2)
	assert.Equal(t, "protein", got.Corrections[0].Replace)
	assert.Equal(t, "whey", got.Corrections[1].Replace)
	assert.Contains(t, got.Corrections[1].String(), "→ whey")

	assert.Empty(t, Preprocess("Whey protein, milk").Corrections, "correct words are not reported")
}

func TestPreprocess_Idempotent(t *testing.T) {
	in := "ZUTATEN: Wh3y Pro-\ntein lsolate (80%) • S0ja;; Molkeneiweiss"
	once := Preprocess(in).Processed
	twice := Preprocess(once)
	assert.Equal(t, once, twice.Processed)
	assert.Empty(t, twice.Corrections)
}

func TestAssessQuality(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		score  float64
		issues []string
		likely bool
	}{
		{
			name:   "good ingredient list",
			in:     "Ingredients: Whey Protein Isolate, Milk, Cocoa Powder, Natural Flavors",
			score:  1,
			likely: true,
		},
		{
			name:   "noise",
			in:     "x#@!%^",
			score:  0.5,
			issues: []string{IssueNoise, IssueShort},
		},
		{
			name:   "short",
			in:     "Milk",
			score:  0.7,
			issues: []string{IssueShort},
		},
		{
			name:   "no separators",
			in:     "whey protein isolate cocoa powder natural flavours sweetener sucralose",
			score:  0.8,
			issues: []string{IssueNoSeparators},
		},
		{
			name:   "all uppercase with marker",
			in:     "ZUTATEN: MOLKENPROTEIN, KAKAO",
			score:  1,
			issues: []string{IssueUppercase},
			likely: true,
		},
		{
			name:   "comma without marker",
			in:     "Soja, Reis",
			score:  0.7,
			issues: []string{IssueShort},
			likely: true,
		},
		{
			name:   "empty",
			in:     "",
			issues: []string{IssueEmpty},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessQuality(tt.in)
			assert.InDelta(t, tt.score, got.Score, 1e-9)
			assert.Equal(t, tt.issues, got.Issues)
			assert.Equal(t, tt.likely, got.LikelyIngredientList)
		})
	}
}
