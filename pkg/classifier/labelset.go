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
	"sort"

	"github.com/kraklabs/proteinscan/pkg/catalog"
)

// LabelSet is a deduplicated set of labels. The zero value is an empty set.
type LabelSet map[catalog.Label]struct{}

// NewLabelSet returns a set holding labels.
func NewLabelSet(labels ...catalog.Label) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether l is in the set.
func (s LabelSet) Has(l catalog.Label) bool {
	_, ok := s[l]
	return ok
}

// Len returns the number of labels.
func (s LabelSet) Len() int { return len(s) }

// Sorted returns the labels in lexical order.
func (s LabelSet) Sorted() []catalog.Label {
	out := make([]catalog.Label, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the labels in lexical order as strings.
func (s LabelSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, l := range sorted {
		out[i] = string(l)
	}
	return out
}

// Equal reports whether both sets hold the same labels.
func (s LabelSet) Equal(other LabelSet) bool {
	if len(s) != len(other) {
		return false
	}
	for l := range s {
		if !other.Has(l) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array.
func (s LabelSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes an array of labels.
func (s *LabelSet) UnmarshalJSON(data []byte) error {
	var labels []catalog.Label
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = NewLabelSet(labels...)
	return nil
}
