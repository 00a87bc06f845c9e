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

package classifier

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kraklabs/proteinscan/pkg/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassifyBatch_IndexAligned(t *testing.T) {
	c := newDefault(t, WithWorkers(4))

	texts := []string{
		"Reismehl, Zucker",
		"Molkenproteinisolat, Weizen",
		"Tofu, Salz",
		"",
		"Erbsenproteinisolat",
	}
	got, err := c.ClassifyBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, got, len(texts))

	for i, text := range texts {
		assert.True(t, c.Classify(text).Equal(got[i]), "index %d (%q)", i, text)
	}
}

func TestClassifyBatch_Large(t *testing.T) {
	c := newDefault(t, WithWorkers(3))

	texts := make([]string, 200)
	for i := range texts {
		if i%2 == 0 {
			texts[i] = fmt.Sprintf("Charge %d: Sojaproteinisolat", i)
		} else {
			texts[i] = fmt.Sprintf("Charge %d: Weizenmehl", i)
		}
	}
	got, err := c.ClassifyBatch(context.Background(), texts)
	require.NoError(t, err)

	for i, ls := range got {
		if i%2 == 0 {
			assert.True(t, ls.Has(catalog.SoyProteinIsolate), "index %d", i)
		} else {
			assert.True(t, ls.Has(catalog.WheatProtein), "index %d", i)
		}
	}
}

func TestClassifyBatch_Empty(t *testing.T) {
	got, err := newDefault(t).ClassifyBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClassifyBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := newDefault(t).ClassifyBatch(ctx, []string{"Soja", "Erbsen"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestClassifyBatch_RecordsMetrics(t *testing.T) {
	_, err := newDefault(t).ClassifyBatch(context.Background(), []string{"Molkenproteinisolat"})
	require.NoError(t, err)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"proteinscan_classifications_total",
		"proteinscan_labels_detected_total",
		"proteinscan_occurrences_rejected_total",
		"proteinscan_batch_seconds",
	} {
		assert.True(t, names[want], "metric %s not registered", want)
	}
}
