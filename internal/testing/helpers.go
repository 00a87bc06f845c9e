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

package testing

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/corpus"
)

// Labels of SmallCatalog.
const (
	Whey        catalog.Label = "Whey"
	WheyIsolate catalog.Label = "Whey Isolate"
	Pea         catalog.Label = "Pea"
	PeaIsolate  catalog.Label = "Pea Isolate"
)

// NewTestCatalog builds a catalog and fails the test if it is invalid.
func NewTestCatalog(t testing.TB, entries []catalog.Entry, opts ...catalog.Option) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(entries, opts...)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

// SmallCatalog returns a whey/pea catalog with generic and isolate labels.
// "whey" and "pea" are base keywords; "trace" markers are the only ones.
func SmallCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	return NewTestCatalog(t,
		[]catalog.Entry{
			{Label: Whey, Keywords: []string{"whey", "whey protein", "molkenprotein"}, PDCAAS: 1},
			{Label: WheyIsolate, Keywords: []string{"whey protein isolate", "molkenproteinisolat"}, PDCAAS: 1},
			{Label: Pea, Keywords: []string{"pea", "pea protein", "erbsenprotein"}, PDCAAS: 0.82},
			{Label: PeaIsolate, Keywords: []string{"pea protein isolate", "erbsenproteinisolat"}, PDCAAS: 0.85},
		},
		catalog.WithBaseKeywords("whey", "whey protein", "molkenprotein", "pea", "pea protein", "erbsenprotein"),
		catalog.WithQualifiers("isolat", "isolate"),
		catalog.WithExclusionMarkers(catalog.Marker{Phrase: "may contain", Kind: catalog.MarkerTrace}),
	)
}

// NewCase builds a corpus case with manual source.
func NewCase(id, ingredients string, detected, notDetected []catalog.Label) corpus.Case {
	if detected == nil {
		detected = []catalog.Label{}
	}
	if notDetected == nil {
		notDetected = []catalog.Label{}
	}
	return corpus.Case{
		ID:                  id,
		Name:                id,
		Source:              corpus.SourceManual,
		Ingredients:         ingredients,
		ExpectedDetected:    detected,
		ExpectedNotDetected: notDetected,
	}
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteCatalogFile writes cat as YAML to dir/catalog.yaml.
func WriteCatalogFile(t testing.TB, dir string, cat *catalog.Catalog) string {
	t.Helper()

	data, err := catalog.Marshal(cat)
	if err != nil {
		t.Fatalf("failed to marshal catalog: %v", err)
	}
	return WriteFile(t, dir, "catalog.yaml", string(data))
}

// WriteCorpusFile writes the cases as a corpus to dir/protein_test_cases.json.
func WriteCorpusFile(t testing.TB, dir string, cases ...corpus.Case) string {
	t.Helper()

	path := filepath.Join(dir, "protein_test_cases.json")
	f := &corpus.File{Description: "test corpus", Version: "1.0", Cases: cases}
	if err := corpus.SaveFile(path, f); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	return path
}

// CaptureLogger returns a debug-level text logger and the buffer it writes to.
func CaptureLogger(t testing.TB) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
