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

package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// MarkerKind groups exclusion markers.
type MarkerKind string

const (
	// MarkerTrace flags cross-contamination statements ("may contain traces of").
	MarkerTrace MarkerKind = "trace"
	// MarkerEmulsifier flags additives such as lecithin.
	MarkerEmulsifier MarkerKind = "emulsifier"
	// MarkerOil flags refined oils that carry no protein.
	MarkerOil MarkerKind = "oil"
	// MarkerStarch flags starches.
	MarkerStarch MarkerKind = "starch"
)

// Valid reports whether k is a known marker kind.
func (k MarkerKind) Valid() bool {
	switch k {
	case MarkerTrace, MarkerEmulsifier, MarkerOil, MarkerStarch:
		return true
	}
	return false
}

// Marker is one exclusion phrase.
type Marker struct {
	Phrase string     `yaml:"phrase" json:"phrase"`
	Kind   MarkerKind `yaml:"kind" json:"kind"`
}

// MarkerHit is a marker found in text. Start and End are byte offsets into
// the normalised text (see Normalize).
type MarkerHit struct {
	Marker
	Start int `json:"start"`
	End   int `json:"end"`
}

// Markers is the exclusion-marker vocabulary of a catalog.
type Markers struct {
	list []Marker
}

func newMarkers(in []Marker) (Markers, error) {
	out := make([]Marker, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, m := range in {
		phrase := Normalize(strings.TrimSpace(m.Phrase))
		if phrase == "" {
			return Markers{}, configError("Exclusion marker is empty",
				fmt.Sprintf("Marker #%d has no phrase", i+1),
				fmt.Errorf("%w: marker %d empty", ErrConfig, i+1))
		}
		if !m.Kind.Valid() {
			return Markers{}, configError("Exclusion marker kind is unknown",
				fmt.Sprintf("Marker %q has kind %q, expected trace, emulsifier, oil or starch", phrase, m.Kind),
				fmt.Errorf("%w: marker %q: kind %q", ErrConfig, phrase, m.Kind))
		}
		if _, ok := seen[phrase]; ok {
			continue
		}
		seen[phrase] = struct{}{}
		out = append(out, Marker{Phrase: phrase, Kind: m.Kind})
	}
	return Markers{list: out}, nil
}

// Len returns the number of markers.
func (m Markers) Len() int { return len(m.list) }

// List returns the markers in catalog order.
func (m Markers) List() []Marker {
	return append([]Marker(nil), m.list...)
}

// OfKind returns the phrases of one kind.
func (m Markers) OfKind(kind MarkerKind) []string {
	var out []string
	for _, mk := range m.list {
		if mk.Kind == kind {
			out = append(out, mk.Phrase)
		}
	}
	return out
}

// Find returns every occurrence of every marker phrase in text, ordered by
// position. Overlapping phrases are all reported, longest first at equal
// start.
func (m Markers) Find(text string) []MarkerHit {
	norm := Normalize(text)
	var hits []MarkerHit
	for _, mk := range m.list {
		from := 0
		for from <= len(norm) {
			idx := strings.Index(norm[from:], mk.Phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(mk.Phrase)
			hits = append(hits, MarkerHit{Marker: mk, Start: start, End: end})
			from = end
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Start != hits[j].Start {
			return hits[i].Start < hits[j].Start
		}
		return hits[i].End > hits[j].End
	})
	return hits
}

// Contains reports whether text contains any marker of kind.
func (m Markers) Contains(text string, kind MarkerKind) bool {
	norm := Normalize(text)
	for _, mk := range m.list {
		if mk.Kind == kind && strings.Contains(norm, mk.Phrase) {
			return true
		}
	}
	return false
}
