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

import "math"

// Quality categories derived from the weighted PDCAAS of detected sources.
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityMedium    = "medium"
	QualityLow       = "low"
	QualityUnknown   = "unknown"
)

// incidentalFactor scales the weight of incidental sources (flours, grains)
// when a primary protein source is also present.
const incidentalFactor = 0.1

// rankWeights are the weights of the 1st, 2nd and 3rd rated source; every
// later source gets the last weight.
var rankWeights = []float64{1.0, 0.7, 0.5, 0.3}

// Contribution is one rated label's share of a Score.
type Contribution struct {
	Label  Label   `json:"label"`
	PDCAAS float64 `json:"pdcaas"`
	Weight float64 `json:"weight"`
}

// Score summarises the protein quality of a set of detected labels.
type Score struct {
	// Average is the weighted mean PDCAAS, rounded to two decimals.
	Average float64 `json:"average"`
	// Rated counts the labels that contributed to Average.
	Rated         int            `json:"rated"`
	Category      string         `json:"category"`
	Contributions []Contribution `json:"contributions,omitempty"`
}

// Score computes the weighted PDCAAS of labels, which must be given in
// ingredient order (earliest mention first). Ingredient lists are ordered by
// weight, so the n-th rated label is weighted 1.0, 0.7, 0.5 and then 0.3.
// Incidental labels count a tenth as much when a primary source is present.
//
// Labels without a PDCAAS value and labels not in the catalog are skipped
// and take no rank. With nothing rated the category is QualityUnknown.
func (c *Catalog) Score(labels []Label) Score {
	type rated struct {
		label Label
		info  Info
	}
	var list []rated
	seen := make(map[Label]bool, len(labels))
	primary := false
	for _, l := range labels {
		info, ok := c.Info(l)
		if !ok || info.PDCAAS == 0 || seen[l] {
			continue
		}
		seen[l] = true
		list = append(list, rated{label: l, info: info})
		if !info.Incidental {
			primary = true
		}
	}
	if len(list) == 0 {
		return Score{Category: QualityUnknown}
	}

	var sum, total float64
	out := Score{Rated: len(list), Contributions: make([]Contribution, 0, len(list))}
	for i, r := range list {
		w := rankWeights[min(i, len(rankWeights)-1)]
		if primary && r.info.Incidental {
			w *= incidentalFactor
		}
		sum += r.info.PDCAAS * w
		total += w
		out.Contributions = append(out.Contributions, Contribution{Label: r.label, PDCAAS: r.info.PDCAAS, Weight: w})
	}
	out.Average = math.Round(sum/total*100) / 100
	out.Category = category(out.Average)
	return out
}

func category(avg float64) string {
	switch {
	case avg >= 0.9:
		return QualityExcellent
	case avg >= 0.75:
		return QualityGood
	case avg >= 0.5:
		return QualityMedium
	default:
		return QualityLow
	}
}
