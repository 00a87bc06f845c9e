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

import "github.com/kraklabs/proteinscan/pkg/catalog"

// Seed returns the starter corpus written by 'proteinscan init'. Every
// curated case passes against catalog.Default().
func Seed() *File {
	return &File{
		Description: "Protein source detection test cases",
		Version:     "1.0",
		Cases: []Case{
			{
				ID: "manual_001", Name: "Rice flour biscuits", Source: SourceManual,
				Ingredients:         "Reismehl, Zucker, Palmfett",
				ExpectedDetected:    []catalog.Label{},
				ExpectedNotDetected: []catalog.Label{catalog.RiceProtein},
				Notes:               "rice flour is not a protein source",
			},
			{
				ID: "manual_002", Name: "Rice protein powder", Source: SourceManual,
				Ingredients:         "Reisprotein, Wasser",
				ExpectedDetected:    []catalog.Label{catalog.RiceProtein},
				ExpectedNotDetected: []catalog.Label{},
			},
			{
				ID: "manual_003", Name: "Whey drink", Source: SourceManual,
				Ingredients:         "Molkeneiweiß, Zucker",
				ExpectedDetected:    []catalog.Label{catalog.WheyConcentrate},
				ExpectedNotDetected: []catalog.Label{catalog.WheyIsolate},
			},
			{
				ID: "manual_004", Name: "Isolate shake", Source: SourceManual,
				Ingredients:         "Molkenproteinisolat, Kakao, Süßungsmittel: Sucralose",
				ExpectedDetected:    []catalog.Label{catalog.WheyIsolate},
				ExpectedNotDetected: []catalog.Label{catalog.WheyConcentrate},
				Notes:               "isolate compound must not count as concentrate",
			},
			{
				ID: "manual_005", Name: "Vegan shake", Source: SourceManual,
				Ingredients:         "Erbsenproteinisolat, Kakao",
				ExpectedDetected:    []catalog.Label{catalog.PeaProteinIsolate},
				ExpectedNotDetected: []catalog.Label{catalog.PeaProtein},
			},
			{
				ID: "manual_006", Name: "Protein bread", Source: SourceManual,
				Ingredients:         "Whey protein, wheat flour, salt",
				ExpectedDetected:    []catalog.Label{catalog.WheyConcentrate, catalog.WheatProtein},
				ExpectedNotDetected: []catalog.Label{catalog.WheyIsolate},
			},
			{
				ID: "manual_007", Name: "Protein pasta", Source: SourceManual,
				Ingredients:         "Molkenproteinisolat, Weizen",
				ExpectedDetected:    []catalog.Label{catalog.WheyIsolate, catalog.WheatProtein},
				ExpectedNotDetected: []catalog.Label{catalog.WheyConcentrate},
			},
			{
				ID: "manual_008", Name: "Tofu natur", Source: SourceManual,
				Ingredients:         "Tofu (Sojabohnen, Wasser, Gerinnungsmittel: Nigari)",
				ExpectedDetected:    []catalog.Label{catalog.SoyProtein},
				ExpectedNotDetected: []catalog.Label{catalog.SoyProteinIsolate},
			},
			{
				ID: "manual_009", Name: "Salted peanuts", Source: SourceManual,
				Ingredients:         "Peanuts, salt",
				ExpectedDetected:    []catalog.Label{},
				ExpectedNotDetected: []catalog.Label{catalog.PeaProtein},
				Notes:               "pea must not match inside peanut",
			},
			{
				ID: "manual_010", Name: "Milk chocolate", Source: SourceManual,
				Ingredients:         "Sugar, cocoa butter, whole milk powder, emulsifier: soy lecithin. May contain traces of nuts.",
				ExpectedDetected:    []catalog.Label{catalog.MilkProtein},
				ExpectedNotDetected: []catalog.Label{},
				Notes:               "soy lecithin shows up as an emulsifier marker",
			},
			{
				ID: "off_4000000000002", Name: "Oat and pea porridge", Source: SourceOpenFoodFacts,
				Barcode:             "4000000000002",
				Ingredients:         "Haferflocken, Erbsenprotein",
				ExpectedDetected:    []catalog.Label{catalog.OatProtein, catalog.PeaProtein},
				ExpectedNotDetected: []catalog.Label{catalog.PeaProteinIsolate},
			},
			{
				ID: "training_4000000000001", Name: "Unreviewed protein bar", Source: SourceTraining,
				Barcode:             "4000000000001",
				Ingredients:         "Milchproteinisolat, Haselnüsse, Sojaprotein",
				ExpectedDetected:    []catalog.Label{NeedsEvaluation},
				ExpectedNotDetected: []catalog.Label{},
				Notes:               "awaiting evaluation",
			},
		},
	}
}
