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

// Package classifier finds protein sources in free-form ingredient text.
//
// The matcher is boundary aware. Text is normalised (NFC, lower case,
// emphasis characters removed) and, by default, cut down to the part after
// an "Ingredients:" / "Zutaten:" / "Ingrédients:" header. Then every label
// of the catalog is checked independently, keywords in catalog order, and
// the first accepted keyword settles the label:
//
//  1. Keywords of at most three characters ("pea", "ei", "soy") only match
//     as whole words, so "peanut" and "Eisen" stay clean.
//  2. Longer keywords try a whole-word match first, then a substring match
//     for German-style compounds ("weizen" in "Weizenvollkornmehl").
//  3. Base keywords (catalog.IsBase) are validated: if the enclosing word,
//     or the enclosing ingredient phrase for a whole-word hit, contains a
//     qualifier such as "isolat", the occurrence is rejected and belongs to
//     the refined label ("Molkenproteinisolat" is Whey Isolate, not Whey
//     Concentrate).
//
// Every occurrence of a keyword is examined, so a rejected compound does not
// hide a later plain mention.
//
// # Usage
//
//	c := classifier.New(catalog.Default())
//	labels := c.Classify("Zutaten: Molkenproteinisolat, Weizen")
//	labels.Has(catalog.WheyIsolate)  // true
//	labels.Has(catalog.WheatProtein) // true
//
// Explain returns the same decision with every accepted and rejected
// occurrence and the exclusion markers found in the text:
//
//	report := c.Explain("May contain traces of milk")
//	for _, m := range report.Matches {
//	    fmt.Println(m.Label, m.Keyword, m.Context)
//	}
//
// # Concurrency
//
// A Classifier holds no mutable state. Classify and Explain are pure and
// safe to call from many goroutines. ClassifyBatch fans out with an errgroup
// limited to WithWorkers goroutines and records Prometheus metrics; the
// single-text methods record nothing.
package classifier
