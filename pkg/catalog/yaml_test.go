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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/proteinscan/internal/errors"
)

const sampleYAML = `
labels:
  - label: Whey Isolate
    pdcaas: 1.0
    keywords: [whey protein isolate, Molkenproteinisolat]
  - label: Whey Concentrate
    keywords: [whey protein, whey]
base_keywords: [whey, whey protein]
qualifiers: [isolat]
exclusion_markers:
  - {phrase: may contain, kind: trace}
`

func TestLoad(t *testing.T) {
	cat, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []Label{"Whey Isolate", "Whey Concentrate"}, cat.Labels())
	assert.Equal(t, []string{"whey protein isolate", "molkenproteinisolat"}, cat.Keywords("Whey Isolate"))
	assert.Equal(t, []string{"whey", "whey protein"}, cat.BaseKeywords())
	assert.Equal(t, []string{"isolat"}, cat.Qualifiers())
	assert.Equal(t, 1, cat.Markers().Len())
}

func TestLoad_OmittedSectionsUseDefaults(t *testing.T) {
	cat, err := Load(strings.NewReader("labels:\n  - label: Soy Protein\n    keywords: [soja]\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultQualifiers(), cat.Qualifiers())
	assert.True(t, cat.IsBase("erbsen"))
	assert.Equal(t, len(DefaultMarkers()), cat.Markers().Len())
}

func TestLoad_ExplicitEmptyQualifiers(t *testing.T) {
	cat, err := Load(strings.NewReader("labels:\n  - label: Soy Protein\n    keywords: [soja]\nqualifiers: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cat.Qualifiers())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty document", ""},
		{"unknown field", "labels:\n  - label: Soy\n    keywords: [soja]\n    synonyms: [soya]\n"},
		{"malformed", "labels: [\n"},
		{"no keywords", "labels:\n  - label: Soy\n"},
		{"no labels", "qualifiers: [isolat]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, ErrConfig))
			assert.Equal(t, errors.ExitConfig, errors.ExitCodeOf(err))
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ExitNotFound, errors.ExitCodeOf(err))
}

func TestLoadFile_ParseErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("labels: [\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)

	var ue *errors.UserError
	require.True(t, stderrors.As(err, &ue))
	assert.Contains(t, ue.Cause, path)
}

func TestMarshal_RoundTripsDefault(t *testing.T) {
	orig := Default()

	data, err := Marshal(orig)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("labels:")))

	back, err := Load(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, orig.Labels(), back.Labels())
	assert.Equal(t, orig.Entries(), back.Entries())
	assert.Equal(t, orig.BaseKeywords(), back.BaseKeywords())
	assert.Equal(t, orig.Qualifiers(), back.Qualifiers())
	assert.Equal(t, orig.Markers().List(), back.Markers().List())
}
