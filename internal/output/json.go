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

// Package output writes the machine-readable (--json) form of proteinscan
// command results.
//
// Ingredient text is full of '&', '<' and '>' ("salt & pepper"), so HTML
// escaping is off everywhere:
//
//	if err := output.JSONTo(os.Stdout, report); err != nil {
//	    errors.FatalError(err, true)
//	}
//
// Batch classification streams one compact object per input line with
// JSONLines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONTo writes data as 2-space indented JSON to w.
func JSONTo(w io.Writer, data any) error {
	enc := newEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// JSONCompactTo writes data as a single JSON line to w.
func JSONCompactTo(w io.Writer, data any) error {
	if err := newEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// JSONLines writes each item as one compact JSON line, stopping at the
// first encoding error.
func JSONLines[T any](w io.Writer, items []T) error {
	enc := newEncoder(w)
	for i, item := range items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("JSON encoding failed at line %d: %w", i+1, err)
		}
	}
	return nil
}

func newEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
