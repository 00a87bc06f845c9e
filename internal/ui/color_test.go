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

package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func noColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })
}

func TestInitColors(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	InitColors(true)
	assert.True(t, color.NoColor)
	InitColors(false)
	assert.False(t, color.NoColor)
}

func TestPrinters(t *testing.T) {
	noColor(t)

	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"success", func(b *bytes.Buffer) { Successf(b, "%d cases passed", 3) }, "✓ 3 cases passed\n"},
		{"warning", func(b *bytes.Buffer) { Warningf(b, "unknown label %q", "Algae") }, "⚠ unknown label \"Algae\"\n"},
		{"error", func(b *bytes.Buffer) { Errorf(b, "case %s failed", "manual_001") }, "✗ case manual_001 failed\n"},
		{"info", func(b *bytes.Buffer) { Infof(b, "catalog: %s", "default") }, "ℹ catalog: default\n"},
		{"header", func(b *bytes.Buffer) { Header(b, "Zusammenfassung") }, "Zusammenfassung\n===============\n"},
		{"header counts runes", func(b *bytes.Buffer) { Header(b, "Résumé") }, "Résumé\n======\n"},
		{"subheader", func(b *bytes.Buffer) { SubHeader(b, "Matches:") }, "Matches:\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestInlineHelpers(t *testing.T) {
	noColor(t)

	assert.Equal(t, "Labels:", Label("Labels:"))
	assert.Equal(t, "/tmp/cases.json", DimText("/tmp/cases.json"))
	assert.Equal(t, "42", CountText(42))
	assert.Equal(t, "Whey Isolate, Soy Protein", LabelList([]string{"Whey Isolate", "Soy Protein"}))
	assert.Equal(t, "(none)", LabelList[string](nil))
}

func TestOutcome(t *testing.T) {
	noColor(t)

	assert.Equal(t, "PASS", Outcome(true, false))
	assert.Equal(t, "FAIL", Outcome(false, false))
	assert.Equal(t, "PENDING", Outcome(false, true))
	assert.Equal(t, "PENDING", Outcome(true, true))
}

func TestQuality(t *testing.T) {
	noColor(t)

	for _, c := range []string{"excellent", "good", "medium", "low", "unknown"} {
		assert.Equal(t, c, Quality(c))
	}
}

func TestHighlight(t *testing.T) {
	noColor(t)

	assert.Equal(t, "Soja, Wasser", Highlight("Soja, Wasser", 0, 4))
	assert.Equal(t, "abc", Highlight("abc", -5, 99))
	assert.Equal(t, "abc", Highlight("abc", 2, 1))
}
