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
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/classifier"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEvaluate(t *testing.T) {
	c := classifier.New(catalog.Default())

	tests := []struct {
		name       string
		tc         Case
		passed     bool
		pending    bool
		missing    []catalog.Label
		wrong      []catalog.Label
		unexpected []catalog.Label
	}{
		{
			name:   "superset and disjoint",
			tc:     Case{ID: "1", Ingredients: "Molkenproteinisolat, Weizen", ExpectedDetected: []catalog.Label{catalog.WheyIsolate}, ExpectedNotDetected: []catalog.Label{catalog.WheyConcentrate}},
			passed: true, unexpected: []catalog.Label{catalog.WheatProtein},
		},
		{
			name:    "missing label",
			tc:      Case{ID: "2", Ingredients: "Reismehl, Zucker", ExpectedDetected: []catalog.Label{catalog.RiceProtein}},
			missing: []catalog.Label{catalog.RiceProtein},
		},
		{
			name:  "wrongly detected",
			tc:    Case{ID: "3", Ingredients: "Whey protein", ExpectedNotDetected: []catalog.Label{catalog.WheyConcentrate}},
			wrong: []catalog.Label{catalog.WheyConcentrate},
		},
		{
			name:    "pending never fails",
			tc:      Case{ID: "4", Ingredients: "Soja", ExpectedDetected: []catalog.Label{NeedsEvaluation}},
			pending: true, unexpected: []catalog.Label{catalog.SoyProtein},
		},
		{
			name:   "empty ingredients with empty expectations",
			tc:     Case{ID: "5"},
			passed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(c, tt.tc)
			assert.Equal(t, tt.passed, got.Passed)
			assert.Equal(t, tt.pending, got.Pending)
			assert.Equal(t, tt.missing, got.Missing)
			assert.Equal(t, tt.wrong, got.WronglyDetected)
			assert.Equal(t, tt.unexpected, got.Unexpected)
			assert.Equal(t, !tt.passed && !tt.pending, got.Failed())
		})
	}
}

func TestEvaluate_ReportsMarkers(t *testing.T) {
	c := classifier.New(catalog.Default())
	got := Evaluate(c, Case{ID: "m", Ingredients: "Sugar, soy lecithin. May contain traces of milk."})

	var kinds []catalog.MarkerKind
	for _, h := range got.Markers {
		kinds = append(kinds, h.Kind)
	}
	assert.Contains(t, kinds, catalog.MarkerEmulsifier)
	assert.Contains(t, kinds, catalog.MarkerTrace)
}

func TestEvaluateAll_Seed(t *testing.T) {
	c := classifier.New(catalog.Default())
	seed := Seed()

	var calls, pending atomic.Int32
	s, err := EvaluateAll(context.Background(), c, seed, 4, WithProgress(func(r Result) {
		calls.Add(1)
		if r.Pending {
			pending.Add(1)
		}
	}))
	require.NoError(t, err)

	assert.Equal(t, len(seed.Cases), s.Total)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 0, s.Failed, "failing cases: %v", s.FailedIDs())
	assert.Equal(t, s.Total-1, s.Passed)
	assert.True(t, s.OK())
	assert.Equal(t, int32(s.Total), calls.Load())
	assert.Equal(t, int32(s.Pending), pending.Load())

	for i, r := range s.Results {
		assert.Equal(t, seed.Cases[i].ID, r.ID, "results keep corpus order")
	}
}

func TestEvaluateAll_Fixture(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "protein_test_cases.json"))
	require.NoError(t, err)

	s, err := EvaluateAll(context.Background(), classifier.New(catalog.Default()), f, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 1, s.Pending)
	assert.Empty(t, s.FailedIDs())
}

func TestEvaluateAll_Failures(t *testing.T) {
	f := &File{Cases: []Case{
		{ID: "ok", Ingredients: "Soja", ExpectedDetected: []catalog.Label{catalog.SoyProtein}},
		{ID: "bad", Ingredients: "Reismehl", ExpectedDetected: []catalog.Label{catalog.RiceProtein}},
	}}
	s, err := EvaluateAll(context.Background(), classifier.New(catalog.Default()), f, 2)
	require.NoError(t, err)
	assert.False(t, s.OK())
	assert.Equal(t, []string{"bad"}, s.FailedIDs())
}

func TestEvaluateAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateAll(ctx, classifier.New(catalog.Default()), Seed(), 2)
	require.ErrorIs(t, err, context.Canceled)
}
