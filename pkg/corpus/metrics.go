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
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsCorpus holds Prometheus metrics for corpus evaluation.
type metricsCorpus struct {
	once sync.Once

	cases    *prometheus.CounterVec
	duration prometheus.Histogram
}

var corpusMetrics metricsCorpus

func (m *metricsCorpus) init() {
	m.once.Do(func() {
		m.cases = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proteinscan_corpus_cases_total",
			Help: "Evaluated corpus cases, by outcome",
		}, []string{"outcome"})
		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proteinscan_corpus_evaluation_seconds",
			Help:    "Duration of a full corpus evaluation",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		})
		prometheus.MustRegister(m.cases, m.duration)
	})
}

func recordResult(r Result) {
	corpusMetrics.init()
	outcome := "failed"
	switch {
	case r.Pending:
		outcome = "pending"
	case r.Passed:
		outcome = "passed"
	}
	corpusMetrics.cases.WithLabelValues(outcome).Inc()
}

func recordRun(d time.Duration) {
	corpusMetrics.init()
	corpusMetrics.duration.Observe(d.Seconds())
}
