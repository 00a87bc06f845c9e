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
	"cmp"
	"slices"

	"github.com/kraklabs/proteinscan/pkg/catalog"
)

// Reason explains why an occurrence of a keyword did not count.
type Reason string

const (
	// ReasonQualifier: the enclosing word or phrase contains a qualifier
	// such as "isolat", so the occurrence belongs to a refined label.
	ReasonQualifier Reason = "qualifier"
	// ReasonNotWholeWord: a short keyword appeared inside a longer word.
	ReasonNotWholeWord Reason = "not_whole_word"
)

// Match is an accepted keyword occurrence. Offsets refer to Report.Text.
type Match struct {
	Label     catalog.Label `json:"label"`
	Keyword   string        `json:"keyword"`
	Span      Span          `json:"span"`
	Context   string        `json:"context"`
	WholeWord bool          `json:"whole_word"`
}

// Rejection is a keyword occurrence that did not count.
type Rejection struct {
	Label     catalog.Label `json:"label"`
	Keyword   string        `json:"keyword"`
	Span      Span          `json:"span"`
	Context   string        `json:"context"`
	Reason    Reason        `json:"reason"`
	Qualifier string        `json:"qualifier,omitempty"`
}

// Report is the detailed result of Explain.
type Report struct {
	// Text is the normalised text that was scanned.
	Text       string              `json:"text"`
	Matches    []Match             `json:"matches"`
	Rejections []Rejection         `json:"rejections,omitempty"`
	Markers    []catalog.MarkerHit `json:"markers,omitempty"`
}

// Labels returns the set of matched labels.
func (r Report) Labels() LabelSet {
	s := make(LabelSet, len(r.Matches))
	for _, m := range r.Matches {
		s[m.Label] = struct{}{}
	}
	return s
}

// Ordered returns the matched labels by position of their accepted match,
// earliest first. This is the ingredient order catalog.Score expects.
func (r Report) Ordered() []catalog.Label {
	ms := slices.Clone(r.Matches)
	slices.SortStableFunc(ms, func(a, b Match) int { return cmp.Compare(a.Span.Start, b.Span.Start) })
	out := make([]catalog.Label, len(ms))
	for i, m := range ms {
		out[i] = m.Label
	}
	return out
}

// Match returns the accepted match for label.
func (r Report) Match(label catalog.Label) (Match, bool) {
	for _, m := range r.Matches {
		if m.Label == label {
			return m, true
		}
	}
	return Match{}, false
}

// RejectionsFor returns the rejected occurrences recorded for label.
func (r Report) RejectionsFor(label catalog.Label) []Rejection {
	var out []Rejection
	for _, rj := range r.Rejections {
		if rj.Label == label {
			out = append(out, rj)
		}
	}
	return out
}

// InMarker returns the first exclusion-marker hit whose ingredient phrase
// also contains m. Curators use this to spot mentions inside trace warnings.
func (r Report) InMarker(m Match) (catalog.MarkerHit, bool) {
	phrase := EnclosingSpan(r.Text, m.Span.Start, m.Span.End, PhraseBoundaries)
	for _, h := range r.Markers {
		if h.Start >= phrase.Start && h.End <= phrase.End {
			return h, true
		}
	}
	return catalog.MarkerHit{}, false
}
