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
	stderrors "errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/kraklabs/proteinscan/internal/errors"
)

// ErrConfig is wrapped by every catalog construction error.
var ErrConfig = stderrors.New("invalid catalog")

// Label identifies a protein source category, e.g. "Whey Isolate".
type Label string

// Entry is the construction input for one label. Incidental marks foods
// whose protein is a by-product, such as flours and grains.
type Entry struct {
	Label       Label    `yaml:"label" json:"label"`
	Keywords    []string `yaml:"keywords" json:"keywords"`
	PDCAAS      float64  `yaml:"pdcaas,omitempty" json:"pdcaas,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Incidental  bool     `yaml:"incidental,omitempty" json:"incidental,omitempty"`
}

// Info is the optional metadata attached to a label.
type Info struct {
	PDCAAS      float64
	Description string
	Incidental  bool
}

// Catalog is an immutable label to keyword mapping.
type Catalog struct {
	entries    []Entry
	index      map[Label]int
	base       map[string]struct{}
	baseOrder  []string
	qualifiers []string
	markers    Markers
}

// Option customises catalog construction.
type Option func(*options)

type options struct {
	base       []string
	qualifiers []string
	markers    []Marker
}

// WithBaseKeywords replaces the default base-keyword set.
func WithBaseKeywords(keywords ...string) Option {
	return func(o *options) { o.base = keywords }
}

// WithQualifiers replaces the default qualifier substrings.
// An empty list disables qualifier routing.
func WithQualifiers(qualifiers ...string) Option {
	return func(o *options) {
		if qualifiers == nil {
			qualifiers = []string{}
		}
		o.qualifiers = qualifiers
	}
}

// WithExclusionMarkers replaces the default exclusion-marker vocabulary.
func WithExclusionMarkers(markers ...Marker) Option {
	return func(o *options) {
		if markers == nil {
			markers = []Marker{}
		}
		o.markers = markers
	}
}

// Normalize returns s in the form used for matching: Unicode NFC, lower case.
// Keywords are normalised at construction and ingredient text is normalised
// before scanning, so "Molkeneiweiß" written with a decomposed umlaut still
// matches.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// RuneLen returns the length of a keyword in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// New validates entries and builds a Catalog.
//
// Keywords are trimmed, normalised and de-duplicated within a label while
// keeping their order. Construction fails with a config error if there are
// no entries, a label is blank or repeated, a label has no keywords, a
// keyword is blank after trimming, or a PDCAAS value is outside [0, 1].
func New(entries []Entry, opts ...Option) (*Catalog, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.base == nil {
		o.base = DefaultBaseKeywords()
	}
	if o.qualifiers == nil {
		o.qualifiers = DefaultQualifiers()
	}
	if o.markers == nil {
		o.markers = DefaultMarkers()
	}

	if len(entries) == 0 {
		return nil, configError("Catalog has no labels", "At least one label with keywords is required", ErrConfig)
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Label]int, len(entries)),
		base:    make(map[string]struct{}, len(o.base)),
	}

	for i, e := range entries {
		label := Label(strings.TrimSpace(string(e.Label)))
		if label == "" {
			return nil, configError("Catalog label is empty",
				fmt.Sprintf("Entry #%d has no label", i+1),
				fmt.Errorf("%w: entry %d: empty label", ErrConfig, i+1))
		}
		if _, dup := c.index[label]; dup {
			return nil, configError("Catalog label is duplicated",
				fmt.Sprintf("Label %q appears more than once", label),
				fmt.Errorf("%w: duplicate label %q", ErrConfig, label))
		}
		if len(e.Keywords) == 0 {
			return nil, configError("Catalog label has no keywords",
				fmt.Sprintf("Label %q has an empty keyword list", label),
				fmt.Errorf("%w: label %q: no keywords", ErrConfig, label))
		}
		if e.PDCAAS < 0 || e.PDCAAS > 1 {
			return nil, configError("Catalog PDCAAS out of range",
				fmt.Sprintf("Label %q has PDCAAS %.2f, expected a value between 0 and 1", label, e.PDCAAS),
				fmt.Errorf("%w: label %q: pdcaas %v", ErrConfig, label, e.PDCAAS))
		}

		keywords := make([]string, 0, len(e.Keywords))
		seen := make(map[string]struct{}, len(e.Keywords))
		for j, kw := range e.Keywords {
			n := Normalize(strings.TrimSpace(kw))
			if n == "" {
				return nil, configError("Catalog keyword is empty",
					fmt.Sprintf("Keyword #%d of label %q is empty after trimming", j+1, label),
					fmt.Errorf("%w: label %q: keyword %d empty", ErrConfig, label, j+1))
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			keywords = append(keywords, n)
		}

		c.index[label] = len(c.entries)
		c.entries = append(c.entries, Entry{
			Label:       label,
			Keywords:    keywords,
			PDCAAS:      e.PDCAAS,
			Description: strings.TrimSpace(e.Description),
			Incidental:  e.Incidental,
		})
	}

	for i, kw := range o.base {
		n := Normalize(strings.TrimSpace(kw))
		if n == "" {
			return nil, configError("Base keyword is empty",
				fmt.Sprintf("Base keyword #%d is empty after trimming", i+1),
				fmt.Errorf("%w: base keyword %d empty", ErrConfig, i+1))
		}
		if _, ok := c.base[n]; ok {
			continue
		}
		c.base[n] = struct{}{}
		c.baseOrder = append(c.baseOrder, n)
	}

	c.qualifiers = make([]string, 0, len(o.qualifiers))
	for i, q := range o.qualifiers {
		n := Normalize(strings.TrimSpace(q))
		if n == "" {
			return nil, configError("Qualifier is empty",
				fmt.Sprintf("Qualifier #%d is empty after trimming", i+1),
				fmt.Errorf("%w: qualifier %d empty", ErrConfig, i+1))
		}
		c.qualifiers = append(c.qualifiers, n)
	}

	markers, err := newMarkers(o.markers)
	if err != nil {
		return nil, err
	}
	c.markers = markers

	return c, nil
}

func configError(msg, cause string, err error) error {
	return errors.NewConfigError(msg, cause, "Fix the keyword catalog (see 'proteinscan catalog validate')", err)
}

// Len returns the number of labels.
func (c *Catalog) Len() int { return len(c.entries) }

// Labels returns all labels in catalog order.
func (c *Catalog) Labels() []Label {
	out := make([]Label, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Label
	}
	return out
}

// Has reports whether label is part of the catalog.
func (c *Catalog) Has(label Label) bool {
	_, ok := c.index[label]
	return ok
}

// Keywords returns the normalised keywords of label in catalog order,
// or nil if the label is unknown.
func (c *Catalog) Keywords(label Label) []string {
	i, ok := c.index[label]
	if !ok {
		return nil
	}
	return append([]string(nil), c.entries[i].Keywords...)
}

// Info returns the metadata of label.
func (c *Catalog) Info(label Label) (Info, bool) {
	i, ok := c.index[label]
	if !ok {
		return Info{}, false
	}
	e := c.entries[i]
	return Info{PDCAAS: e.PDCAAS, Description: e.Description, Incidental: e.Incidental}, true
}

// IsBase reports whether keyword is in the base-keyword set.
// The keyword is normalised before lookup.
func (c *Catalog) IsBase(keyword string) bool {
	_, ok := c.base[Normalize(strings.TrimSpace(keyword))]
	return ok
}

// BaseKeywords returns the base-keyword set in insertion order.
func (c *Catalog) BaseKeywords() []string {
	return append([]string(nil), c.baseOrder...)
}

// Qualifiers returns the qualifier substrings.
func (c *Catalog) Qualifiers() []string {
	return append([]string(nil), c.qualifiers...)
}

// Markers returns the exclusion-marker vocabulary.
func (c *Catalog) Markers() Markers {
	return c.markers
}

// Entries returns a deep copy of the catalog entries in order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		e.Keywords = append([]string(nil), e.Keywords...)
		out[i] = e
	}
	return out
}

// ForEach calls fn for every label with its keywords, in catalog order.
// The keyword slice is shared with the catalog and must not be modified.
// The matcher uses this to avoid copying keyword lists per call.
func (c *Catalog) ForEach(fn func(label Label, keywords []string)) {
	for _, e := range c.entries {
		fn(e.Label, e.Keywords)
	}
}
