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

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/corpus"
)

func TestNewEvalProgress_Disabled(t *testing.T) {
	tests := []struct {
		name    string
		globals GlobalFlags
	}{
		{name: "defaults", globals: GlobalFlags{}},
		{name: "quiet", globals: GlobalFlags{Quiet: true}},
		{name: "json", globals: GlobalFlags{JSON: true}},
		{name: "verbose", globals: GlobalFlags{Verbose: 2}},
		{name: "no color", globals: GlobalFlags{NoColor: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Neither a buffer nor stderr under go test is a terminal.
			assert.Nil(t, newEvalProgress(&bytes.Buffer{}, tt.globals, 10))
			assert.Nil(t, newEvalProgress(os.Stderr, tt.globals, 10))
		})
	}
}

func TestEvalProgress_NilIsNoop(t *testing.T) {
	var p *evalProgress
	assert.NotPanics(t, func() {
		p.observe(corpus.Result{ID: "manual_001"})
		p.finish()
	})
	assert.Empty(t, p.options())
}

func TestEvalProgress_CountsFailures(t *testing.T) {
	var buf bytes.Buffer
	p := startEvalProgress(&buf, 3, true)
	require.NotNil(t, p)
	require.Len(t, p.options(), 1)

	p.observe(corpus.Result{ID: "a", Passed: true})
	p.observe(corpus.Result{ID: "b", Missing: []catalog.Label{catalog.SoyProtein}})
	p.observe(corpus.Result{ID: "c", Pending: true})
	p.finish()

	assert.Equal(t, int32(1), p.failed.Load())
	assert.Equal(t, "Evaluating (1 failing)", p.describe(1))
}

func TestEvalProgress_Describe(t *testing.T) {
	tests := []struct {
		name    string
		noColor bool
		failed  int
		want    string
	}{
		{name: "none failing", failed: 0, want: "Evaluating"},
		{name: "plain", noColor: true, failed: 2, want: "Evaluating (2 failing)"},
		{name: "colored", failed: 3, want: "Evaluating [red](3 failing)[reset]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &evalProgress{noColor: tt.noColor}
			assert.Equal(t, tt.want, p.describe(tt.failed))
		})
	}
}
