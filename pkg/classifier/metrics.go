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
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsClassifier holds Prometheus metrics for batch classification.
type metricsClassifier struct {
	once sync.Once

	classifications prometheus.Counter
	labelsDetected  *prometheus.CounterVec
	rejected        *prometheus.CounterVec
	batchDuration   prometheus.Histogram
}

var clsMetrics metricsClassifier

func (m *metricsClassifier) init() {
	m.once.Do(func() {
		m.classifications = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proteinscan_classifications_total",
			Help: "Ingredient texts classified in batch mode",
		})
		m.labelsDetected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proteinscan_labels_detected_total",
			Help: "Protein labels detected, by label",
		}, []string{"label"})
		m.rejected = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proteinscan_occurrences_rejected_total",
			Help: "Keyword occurrences rejected by the matcher, by reason",
		}, []string{"reason"})
		m.batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proteinscan_batch_seconds",
			Help:    "Duration of a batch classification",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		})

		prometheus.MustRegister(m.classifications, m.labelsDetected, m.rejected, m.batchDuration)
	})
}

func recordReport(r Report) {
	clsMetrics.init()
	clsMetrics.classifications.Inc()
	for _, m := range r.Matches {
		clsMetrics.labelsDetected.WithLabelValues(string(m.Label)).Inc()
	}
	for _, rj := range r.Rejections {
		clsMetrics.rejected.WithLabelValues(string(rj.Reason)).Inc()
	}
}

func recordBatch(d time.Duration) {
	clsMetrics.init()
	clsMetrics.batchDuration.Observe(d.Seconds())
}
