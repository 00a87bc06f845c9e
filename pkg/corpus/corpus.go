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

package corpus

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/pkg/catalog"
)

// NeedsEvaluation is the placeholder label of a case whose expected labels
// have not been curated yet.
const NeedsEvaluation catalog.Label = "NEEDS_EVALUATION"

// Known case sources.
const (
	SourceManual        = "manual"
	SourceOpenFoodFacts = "openfoodfacts"
	SourceTraining      = "openfoodfacts_training"
)

// ErrInvalid is wrapped by every corpus parse or validation error.
var ErrInvalid = stderrors.New("invalid test corpus")

// Case is one labelled ingredient text.
type Case struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Source              string          `json:"source"`
	Barcode             string          `json:"barcode,omitempty"`
	Ingredients         string          `json:"ingredients"`
	ExpectedDetected    []catalog.Label `json:"expected_detected"`
	ExpectedNotDetected []catalog.Label `json:"expected_not_detected"`
	Notes               string          `json:"notes,omitempty"`
}

// Pending reports whether the case still awaits curation.
func (c Case) Pending() bool {
	for _, l := range c.ExpectedDetected {
		if l == NeedsEvaluation {
			return true
		}
	}
	return false
}

// File is a test corpus document.
type File struct {
	Description string `json:"description"`
	Version     string `json:"version"`
	Cases       []Case `json:"test_cases"`
}

// Load decodes and validates a corpus from r.
func Load(r io.Reader) (*File, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.NewConfigError(
			"Cannot parse test corpus",
			err.Error(),
			"Check the JSON syntax of the corpus file",
			fmt.Errorf("%w: %w", ErrInvalid, err),
		)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads a corpus from path.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(
				"Test corpus not found",
				fmt.Sprintf("No file at %s", path),
				"Run 'proteinscan init' or pass --corpus with an existing file",
			)
		}
		return nil, errors.NewIOError("Cannot read test corpus", err.Error(), "Check that the path is a readable file", err)
	}
	defer func() { _ = fh.Close() }()

	f, err := Load(fh)
	if err != nil {
		var ue *errors.UserError
		if stderrors.As(err, &ue) {
			ue.Cause = fmt.Sprintf("%s: %s", path, ue.Cause)
		}
		return nil, err
	}
	return f, nil
}

// Validate checks that every case has a unique, non-empty id.
func (f *File) Validate() error {
	seen := make(map[string]int, len(f.Cases))
	for i, c := range f.Cases {
		if c.ID == "" {
			return errors.NewConfigError(
				"Test case has no id",
				fmt.Sprintf("Case #%d (%q) has an empty id", i+1, c.Name),
				"Give every test case a unique id",
				fmt.Errorf("%w: case %d: empty id", ErrInvalid, i+1),
			)
		}
		if prev, dup := seen[c.ID]; dup {
			return errors.NewConfigError(
				"Duplicate test case id",
				fmt.Sprintf("Id %q is used by case #%d and case #%d", c.ID, prev+1, i+1),
				"Give every test case a unique id",
				fmt.Errorf("%w: duplicate id %q", ErrInvalid, c.ID),
			)
		}
		seen[c.ID] = i
	}
	return nil
}

// Save writes f as indented JSON. Non-ASCII text is written as is.
func Save(w io.Writer, f *File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	return nil
}

// SaveFile writes f to path atomically.
func SaveFile(path string, f *File) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".corpus-*.json")
	if err != nil {
		return errors.NewIOError("Cannot write test corpus", err.Error(), "Check directory permissions", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Save(tmp, f); err != nil {
		_ = tmp.Close()
		return errors.NewIOError("Cannot write test corpus", err.Error(), "Check free disk space", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewIOError("Cannot write test corpus", err.Error(), "Check free disk space", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.NewIOError("Cannot write test corpus", err.Error(), "Check directory permissions", err)
	}
	return nil
}

// Upsert adds tc, replacing any case with the same id in place.
func (f *File) Upsert(tc Case) {
	for i := range f.Cases {
		if f.Cases[i].ID == tc.ID {
			f.Cases[i] = tc
			return
		}
	}
	f.Cases = append(f.Cases, tc)
}

// Find returns the case with id.
func (f *File) Find(id string) (Case, bool) {
	for _, c := range f.Cases {
		if c.ID == id {
			return c, true
		}
	}
	return Case{}, false
}

// UnknownLabels returns expected labels that cat does not define, in order
// of first appearance. The NEEDS_EVALUATION placeholder is ignored.
func (f *File) UnknownLabels(cat *catalog.Catalog) []catalog.Label {
	seen := map[catalog.Label]bool{}
	var out []catalog.Label
	check := func(l catalog.Label) {
		if l == NeedsEvaluation || seen[l] || cat.Has(l) {
			return
		}
		seen[l] = true
		out = append(out, l)
	}
	for _, c := range f.Cases {
		for _, l := range c.ExpectedDetected {
			check(l)
		}
		for _, l := range c.ExpectedNotDetected {
			check(l)
		}
	}
	return out
}
