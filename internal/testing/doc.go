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

// Package testing provides fixtures for proteinscan tests outside the
// catalog and corpus packages themselves.
//
// # Catalogs
//
// SmallCatalog builds a two-family catalog (whey and pea, generic and
// isolate) that is easy to reason about in assertions:
//
//	cat := testing.SmallCatalog(t)
//	c := classifier.New(cat)
//
// NewTestCatalog builds any catalog and fails the test on a config error.
//
// # Files
//
// WriteCatalogFile and WriteCorpusFile serialise fixtures into t.TempDir()
// and return the path, for code that takes file names:
//
//	path := testing.WriteCorpusFile(t, dir,
//	    testing.NewCase("c1", "Erbsenprotein", []catalog.Label{"Pea Protein"}, nil),
//	)
//
// # Logging
//
// CaptureLogger returns a debug-level text logger writing into a buffer, for
// asserting on event names.
package testing
