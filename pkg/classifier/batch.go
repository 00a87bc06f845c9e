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
	"time"

	"golang.org/x/sync/errgroup"
)

// ClassifyBatch classifies texts in parallel using up to Workers()
// goroutines. The result is index-aligned with texts. If ctx is cancelled
// the batch stops early and the context error is returned.
//
// Unlike Classify, the batch path records Prometheus metrics.
func (c *Classifier) ClassifyBatch(ctx context.Context, texts []string) ([]LabelSet, error) {
	reports, err := c.ExplainBatch(ctx, texts)
	if err != nil {
		return nil, err
	}
	out := make([]LabelSet, len(reports))
	for i, r := range reports {
		out[i] = r.Labels()
	}
	return out, nil
}

// ExplainBatch is the parallel form of Explain without marker scanning.
func (c *Classifier) ExplainBatch(ctx context.Context, texts []string) ([]Report, error) {
	start := time.Now()
	out := make([]Report, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := c.scan(text, true)
			recordReport(r)
			out[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recordBatch(time.Since(start))
	c.logger.Debug("classify.batch.done", "texts", len(texts), "workers", c.workers, "duration", time.Since(start))
	return out, nil
}
