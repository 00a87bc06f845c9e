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
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/proteinscan/internal/errors"
)

// file is the YAML representation of a catalog. Pointer slices distinguish
// an omitted section (use defaults) from an explicit empty list.
type file struct {
	Labels           []Entry   `yaml:"labels"`
	BaseKeywords     *[]string `yaml:"base_keywords,omitempty"`
	Qualifiers       *[]string `yaml:"qualifiers,omitempty"`
	ExclusionMarkers *[]Marker `yaml:"exclusion_markers,omitempty"`
}

// Load parses a YAML catalog from r. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, configError("Catalog file is empty", "The YAML document has no content", fmt.Errorf("%w: empty document", ErrConfig))
		}
		return nil, configError("Cannot parse keyword catalog", err.Error(), fmt.Errorf("%w: %w", ErrConfig, err))
	}

	var opts []Option
	if f.BaseKeywords != nil {
		opts = append(opts, WithBaseKeywords(append([]string{}, *f.BaseKeywords...)...))
	}
	if f.Qualifiers != nil {
		opts = append(opts, WithQualifiers(append([]string{}, *f.Qualifiers...)...))
	}
	if f.ExclusionMarkers != nil {
		opts = append(opts, WithExclusionMarkers(append([]Marker{}, *f.ExclusionMarkers...)...))
	}
	return New(f.Labels, opts...)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return nil, errors.NewNotFoundError(
				"Keyword catalog not found",
				fmt.Sprintf("No file at %s", path),
				"Run 'proteinscan init' or pass --catalog with an existing file",
			)
		case os.IsPermission(err):
			return nil, errors.NewPermissionError(
				"Cannot read keyword catalog",
				fmt.Sprintf("Permission denied for %s", path),
				"Check the file permissions",
				err,
			)
		}
		return nil, errors.NewIOError("Cannot read keyword catalog", err.Error(), "Check that the path is a readable file", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		var ue *errors.UserError
		if stderrors.As(err, &ue) {
			ue.Cause = fmt.Sprintf("%s: %s", path, ue.Cause)
		}
		return nil, err
	}
	return c, nil
}

// Marshal renders c as YAML with every section written out explicitly.
func Marshal(c *Catalog) ([]byte, error) {
	base := c.BaseKeywords()
	quals := c.Qualifiers()
	markers := c.Markers().List()
	f := file{
		Labels:           c.Entries(),
		BaseKeywords:     &base,
		Qualifiers:       &quals,
		ExclusionMarkers: &markers,
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}
