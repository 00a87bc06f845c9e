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
	"strings"

	"github.com/kraklabs/proteinscan/pkg/catalog"
)

// sectionMarkers introduce the ingredient list on product labels.
var sectionMarkers = []string{
	"zutaten:", "zutaten :",
	"ingredients:", "ingredients :",
	"ingrédients:", "ingrédients :",
	"ingredienti:", "ingredienti :",
	"ingredientes:", "ingredientes :",
	"składniki:", "składniki :",
	"ingrediënten:", "ingrediënten :",
	"ainekset:", "ainekset :",
}

var emphasisStripper = strings.NewReplacer("_", "", "*", "")

// Normalize prepares ingredient text for matching: NFC, lower case, and
// Markdown emphasis characters removed.
func Normalize(text string) string {
	return emphasisStripper.Replace(catalog.Normalize(text))
}

// ExtractIngredients returns the part of normalised text after the earliest
// ingredient-section marker, or text unchanged if there is none.
func ExtractIngredients(text string) string {
	best, bestEnd := -1, 0
	for _, m := range sectionMarkers {
		idx := strings.Index(text, m)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best, bestEnd = idx, idx+len(m)
		}
	}
	if best < 0 {
		return text
	}
	return strings.TrimSpace(text[bestEnd:])
}
