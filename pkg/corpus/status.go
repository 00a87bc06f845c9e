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

// Stats counts corpus cases by source and curation state.
type Stats struct {
	Total              int `json:"total"`
	Manual             int `json:"manual"`
	OpenFoodFacts      int `json:"openfoodfacts"`
	Training           int `json:"training"`
	Other              int `json:"other"`
	AwaitingEvaluation int `json:"awaiting_evaluation"`
}

// Status summarises f for the training workflow.
func Status(f *File) Stats {
	s := Stats{Total: len(f.Cases)}
	for _, c := range f.Cases {
		switch c.Source {
		case SourceManual:
			s.Manual++
		case SourceOpenFoodFacts:
			s.OpenFoodFacts++
		case SourceTraining:
			s.Training++
		default:
			s.Other++
		}
		if c.Pending() {
			s.AwaitingEvaluation++
		}
	}
	return s
}
