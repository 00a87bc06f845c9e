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
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/proteinscan/pkg/catalog"
)

func TestEnclosingSpan(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		boundaries string
		want       string
	}{
		{"compound word", "molkenproteinisolat, weizen", 0, 13, WordBoundaries, "molkenproteinisolat"},
		{"middle of word", "wasser, sojaproteinisolat.", 8, 12, WordBoundaries, "sojaproteinisolat"},
		{"already whole", "soja, wasser", 0, 4, WordBoundaries, "soja"},
		{"phrase spans spaces", "zucker, whey protein isolate (20%)", 8, 12, PhraseBoundaries, " whey protein isolate "},
		{"word stops at space", "whey protein isolate", 0, 4, WordBoundaries, "whey"},
		{"brackets", "[erbsenprotein]", 1, 7, WordBoundaries, "erbsenprotein"},
		{"newline", "reis\nreismehl", 5, 9, WordBoundaries, "reismehl"},
		{"clamped", "soja", -3, 99, WordBoundaries, "soja"},
		{"empty text", "", 0, 0, WordBoundaries, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := EnclosingSpan(tt.text, tt.start, tt.end, tt.boundaries)
			assert.Equal(t, tt.want, sp.In(tt.text))
			assert.Equal(t, len(tt.want), sp.Len())
		})
	}
}

func TestAdjacentQualifier(t *testing.T) {
	quals := []string{"isolat", "isolate", "konzentrat", "concentrate"}

	tests := []struct {
		name string
		text string
		kw   string
		want string
	}{
		{"directly after", "whey isolate", "whey", "isolat"},
		{"after a link word", "whey protein isolate", "whey", "isolat"},
		{"before", "isolated soy protein", "soy protein", "isolat"},
		{"french order", "isolat de protéines de soja", "soja", "isolat"},
		{"conjunction stops", "whey and soy protein isolate", "whey", ""},
		{"german conjunction stops", "erbsen und sojaproteinisolat", "erbsen", ""},
		{"phrase end stops", "whey protein, isolate", "whey protein", ""},
		{"other word stops", "soy lecithin concentrate", "soy", ""},
		{"none", "pea protein", "pea protein", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := strings.Index(tt.text, tt.kw)
			require.GreaterOrEqual(t, start, 0)
			q, ok := adjacentQualifier(tt.text, start, start+len(tt.kw), quals)
			assert.Equal(t, tt.want, q)
			assert.Equal(t, tt.want != "", ok)
		})
	}
}

func TestIsWholeWord(t *testing.T) {
	tests := []struct {
		text       string
		start, end int
		want       bool
	}{
		{"pea, rice", 0, 3, true},
		{"peanut", 0, 3, false},
		{"chickpea", 5, 8, false},
		{"(pea)", 1, 4, true},
		{"eisen", 0, 2, false},
		{"ei;", 0, 2, true},
		{"hartweizen-grieß", 4, 10, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsWholeWord(tt.text, tt.start, tt.end), "%q[%d:%d]", tt.text, tt.start, tt.end)
	}
}

func TestOccurrences(t *testing.T) {
	assert.Equal(t, []int{0, 15}, occurrences("molkenprotein, molkenprotein", "molkenprotein"))
	assert.Equal(t, []int{0, 1, 2}, occurrences("aaaa", "aa"))
	assert.Nil(t, occurrences("soja", ""))
	assert.Nil(t, occurrences("soja", "erbsen"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "milchpulver, weizenmehl", Normalize("*Milch*pulver, _Weizen_mehl"))
	assert.Equal(t, "molkeneiweiß", Normalize("MOLKENEIWEIß"))
}

func TestExtractIngredients(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no marker", "soja, wasser", "soja, wasser"},
		{"german", "proteinriegel zutaten: soja, wasser", "soja, wasser"},
		{"spaced colon", "ingrédients : lait, sucre", "lait, sucre"},
		{"earliest marker wins", "ingredients: whey. zutaten: molke", "whey. zutaten: molke"},
		{"marker only", "ingredients:", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIngredients(tt.text))
		})
	}
}

func TestLabelSet(t *testing.T) {
	s := NewLabelSet(catalog.SoyProtein, catalog.WheyIsolate, catalog.SoyProtein)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(catalog.WheyIsolate))
	assert.False(t, s.Has(catalog.PeaProtein))
	assert.Equal(t, []catalog.Label{catalog.SoyProtein, catalog.WheyIsolate}, s.Sorted())

	assert.True(t, s.Equal(NewLabelSet(catalog.WheyIsolate, catalog.SoyProtein)))
	assert.False(t, s.Equal(NewLabelSet(catalog.WheyIsolate)))
	assert.False(t, s.Equal(NewLabelSet(catalog.WheyIsolate, catalog.PeaProtein)))

	var empty LabelSet
	assert.Zero(t, empty.Len())
	assert.True(t, empty.Equal(NewLabelSet()))
}

func TestLabelSet_JSON(t *testing.T) {
	data, err := json.Marshal(NewLabelSet(catalog.WheyIsolate, catalog.SoyProtein))
	require.NoError(t, err)
	assert.JSONEq(t, `["Soy Protein","Whey Isolate"]`, string(data))

	data, err = json.Marshal(LabelSet(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var back LabelSet
	require.NoError(t, json.Unmarshal([]byte(`["Pea Protein","Pea Protein"]`), &back))
	assert.True(t, NewLabelSet(catalog.PeaProtein).Equal(back))
}
