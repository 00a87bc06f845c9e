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

// Package catalog holds the keyword data used to recognise protein sources
// in ingredient text.
//
// A Catalog maps each protein label ("Whey Isolate", "Pea Protein") to an
// ordered list of surface keywords in English, German and French. It also
// carries the base-keyword set (short or ambiguous keywords whose substring
// matches must be validated), the qualifier substrings that route a base
// keyword to a refined label ("isolat", "konzentrat", ...) and the
// exclusion-marker vocabulary (trace warnings, emulsifiers, oils, starch).
//
// # Immutability
//
// A Catalog is built once with New, Load or Default and never changes
// afterwards. Accessors return copies, so a *Catalog can be shared by any
// number of goroutines without locking.
//
// # Construction Errors
//
// Invalid data is rejected at construction with a config error
// (internal/errors.UserError with ExitConfig) that wraps ErrConfig:
//
//	cat, err := catalog.New([]catalog.Entry{{Label: "Soy Protein"}})
//	if errors.Is(err, catalog.ErrConfig) {
//	    // label has no keywords
//	}
//
// # YAML Format
//
//	labels:
//	  - label: Whey Isolate
//	    pdcaas: 1.0
//	    keywords: [whey protein isolate, molkenproteinisolat]
//	base_keywords: [whey, molkenprotein]
//	qualifiers: [isolat, konzentrat, concentrate]
//	exclusion_markers:
//	  - {phrase: may contain, kind: trace}
//
// Omitted base_keywords, qualifiers or exclusion_markers fall back to the
// built-in defaults.
//
// # Exclusion Markers
//
// Markers are vocabulary, not a filter. The matcher in pkg/classifier never
// consults them; they exist so curators and evaluation reports can see when
// a protein mention sits inside a "may contain traces of" statement.
package catalog
