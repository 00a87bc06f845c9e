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
	"log/slog"
	"runtime"

	"github.com/kraklabs/proteinscan/pkg/catalog"
)

// Classifier detects protein-source labels in ingredient text.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	cat            *catalog.Catalog
	logger         *slog.Logger
	extractSection bool
	workers        int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for debug tracing of rejected matches.
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSectionExtraction controls whether only the text after an
// "ingredients:"-style marker is classified. Enabled by default.
func WithSectionExtraction(on bool) Option {
	return func(c *Classifier) { c.extractSection = on }
}

// WithWorkers sets the parallelism of ClassifyBatch. Values below 1 mean
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New returns a Classifier for cat.
func New(cat *catalog.Catalog, opts ...Option) *Classifier {
	c := &Classifier{
		cat:            cat,
		logger:         slog.Default(),
		extractSection: true,
		workers:        runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the catalog the classifier matches against.
func (c *Classifier) Catalog() *catalog.Catalog { return c.cat }

// Workers returns the batch parallelism.
func (c *Classifier) Workers() int { return c.workers }

// Classify returns the labels present in text. Any input is valid; empty or
// unrecognised text yields an empty set.
func (c *Classifier) Classify(text string) LabelSet {
	return c.scan(text, false).Labels()
}

// Explain classifies text and returns the full match trace: accepted matches,
// rejected occurrences with their reason, and exclusion-marker hits.
// Explain(text).Labels() equals Classify(text).
func (c *Classifier) Explain(text string) Report {
	r := c.scan(text, true)
	r.Markers = c.cat.Markers().Find(r.Text)
	return r
}

func (c *Classifier) prepare(text string) string {
	n := Normalize(text)
	if c.extractSection {
		n = ExtractIngredients(n)
	}
	return n
}

// scan runs the matcher. With trace set, rejected occurrences are recorded.
func (c *Classifier) scan(text string, trace bool) Report {
	r := Report{Text: c.prepare(text)}
	if r.Text == "" {
		return r
	}
	qualifiers := c.cat.Qualifiers()

	c.cat.ForEach(func(label catalog.Label, keywords []string) {
		for _, kw := range keywords {
			m, rejected, ok := c.matchKeyword(r.Text, label, kw, qualifiers)
			if trace {
				r.Rejections = append(r.Rejections, rejected...)
			}
			if ok {
				r.Matches = append(r.Matches, m)
				return
			}
		}
	})
	return r
}

// matchKeyword applies the boundary rules to every occurrence of kw.
//
// Whole-word occurrences are tried first. Keywords of three characters or
// fewer never match inside a longer word. For base keywords, a whole-word
// occurrence is checked for qualifiers in the words right next to it (see
// adjacentQualifier) and a compound occurrence across its enclosing word; a
// qualified occurrence is rejected and the next one is tried.
func (c *Classifier) matchKeyword(text string, label catalog.Label, kw string, qualifiers []string) (Match, []Rejection, bool) {
	offsets := occurrences(text, kw)
	if len(offsets) == 0 {
		return Match{}, nil, false
	}

	base := c.cat.IsBase(kw)
	short := catalog.RuneLen(kw) <= 3
	var rejected []Rejection

	for _, start := range offsets {
		end := start + len(kw)
		if !IsWholeWord(text, start, end) {
			continue
		}
		phrase := EnclosingSpan(text, start, end, PhraseBoundaries)
		if base {
			if q, found := adjacentQualifier(text, start, end, qualifiers); found {
				rejected = append(rejected, c.reject(text, label, kw, start, end, phrase, ReasonQualifier, q))
				continue
			}
		}
		return c.accept(text, label, kw, start, end, phrase, true), rejected, true
	}

	for _, start := range offsets {
		end := start + len(kw)
		if IsWholeWord(text, start, end) {
			continue
		}
		word := EnclosingSpan(text, start, end, WordBoundaries)
		if short {
			rejected = append(rejected, c.reject(text, label, kw, start, end, word, ReasonNotWholeWord, ""))
			continue
		}
		if base {
			if q, found := containsAny(word.In(text), qualifiers); found {
				rejected = append(rejected, c.reject(text, label, kw, start, end, word, ReasonQualifier, q))
				continue
			}
		}
		return c.accept(text, label, kw, start, end, word, false), rejected, true
	}

	return Match{}, rejected, false
}

func (c *Classifier) accept(text string, label catalog.Label, kw string, start, end int, ctx Span, whole bool) Match {
	return Match{
		Label:     label,
		Keyword:   kw,
		Span:      Span{Start: start, End: end},
		Context:   ctx.In(text),
		WholeWord: whole,
	}
}

func (c *Classifier) reject(text string, label catalog.Label, kw string, start, end int, ctx Span, reason Reason, qualifier string) Rejection {
	r := Rejection{
		Label:     label,
		Keyword:   kw,
		Span:      Span{Start: start, End: end},
		Context:   ctx.In(text),
		Reason:    reason,
		Qualifier: qualifier,
	}
	c.logger.Debug("classify.keyword.rejected",
		"label", string(label),
		"keyword", kw,
		"reason", string(reason),
		"context", r.Context,
	)
	return r
}
