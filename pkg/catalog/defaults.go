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

import "sync"

// Built-in labels.
const (
	WheyConcentrate       Label = "Whey Concentrate"
	WheyIsolate           Label = "Whey Isolate"
	WheyHydrolysate       Label = "Whey Hydrolysate"
	Casein                Label = "Casein"
	MilkProtein           Label = "Milk Protein"
	EggProtein            Label = "Egg Protein"
	SoyProtein            Label = "Soy Protein"
	SoyProteinIsolate     Label = "Soy Protein Isolate"
	SoyProteinConcentrate Label = "Soy Protein Concentrate"
	PeaProtein            Label = "Pea Protein"
	PeaProteinIsolate     Label = "Pea Protein Isolate"
	RiceProtein           Label = "Rice Protein"
	WheatProtein          Label = "Wheat Protein"
	OatProtein            Label = "Oat Protein"
	HempProtein           Label = "Hemp Protein"
	PotatoProtein         Label = "Potato Protein"
	LupinProtein          Label = "Lupin Protein"
	Collagen              Label = "Collagen"
	Gelatin               Label = "Gelatin"
	Mycoprotein           Label = "Mycoprotein"
)

// DefaultEntries returns the built-in label list.
//
// Order matters only for the Explain trace. Refined labels keep their own
// compound keywords; generic labels list their explicit concentrate forms
// first, so "pea protein concentrate" still routes to Pea Protein when the
// qualifier check rejects the bare "pea protein" match.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Label:       WheyConcentrate,
			PDCAAS:      1.0,
			Description: "Whey protein concentrate, about 70-80% protein",
			Keywords: []string{
				"whey protein concentrate", "whey concentrate", "whey powder", "whey protein", "whey",
				"molkenproteinkonzentrat", "molkenprotein", "molkenpulver", "molkeneiweiß", "molkeneiweiss",
				"concentré de protéines de lactosérum", "poudre de lactosérum", "lactosérum",
			},
		},
		{
			Label:       WheyIsolate,
			PDCAAS:      1.0,
			Description: "Whey protein isolate, 90% protein or more",
			Keywords: []string{
				"whey protein isolate", "whey isolate", "isolated whey protein",
				"molkenproteinisolat", "molkenisolat",
				"isolat de protéines de lactosérum", "isolat de lactosérum",
			},
		},
		{
			Label:       WheyHydrolysate,
			PDCAAS:      1.0,
			Description: "Pre-digested whey protein",
			Keywords: []string{
				"whey protein hydrolysate", "hydrolyzed whey", "hydrolysed whey",
				"molkenproteinhydrolysat",
				"hydrolysat de protéines de lactosérum",
			},
		},
		{
			Label:       Casein,
			PDCAAS:      1.0,
			Description: "Slow digesting milk protein",
			Keywords: []string{
				"micellar casein", "casein", "caseinate",
				"kasein", "natriumkaseinat", "calciumkaseinat",
				"caséine", "caséinate",
			},
		},
		{
			Label:       MilkProtein,
			PDCAAS:      1.0,
			Description: "Milk and milk powders",
			Keywords: []string{
				"milk protein", "milk powder", "skimmed milk", "milk",
				"milchprotein", "milcheiweiß", "milcheiweiss", "milchpulver", "milch",
				"protéines de lait", "protéine de lait", "poudre de lait", "lait",
			},
		},
		{
			Label:       EggProtein,
			PDCAAS:      1.0,
			Description: "Whole egg, egg white and egg yolk",
			Keywords: []string{
				"egg protein", "egg white", "egg yolk", "whole egg", "eggs", "egg", "albumin",
				"eiprotein", "hühnereiweiß", "hühnereiweiss", "eiklar", "eigelb", "vollei", "eier", "ei",
				"blanc d'œuf", "jaune d'œuf", "œufs", "œuf",
			},
		},
		{
			Label:       SoyProteinIsolate,
			PDCAAS:      0.95,
			Description: "Soy protein isolate, 90% protein or more",
			Keywords: []string{
				"soy protein isolate", "soy isolate", "isolated soy protein",
				"sojaproteinisolat", "sojaisolat",
				"isolat de protéines de soja", "isolat de protéine de soja",
			},
		},
		{
			Label:       SoyProteinConcentrate,
			PDCAAS:      0.91,
			Description: "Soy protein concentrate, about 70% protein",
			Keywords: []string{
				"soy protein concentrate", "soy concentrate",
				"sojaproteinkonzentrat", "sojakonzentrat",
				"concentré de protéines de soja", "concentré de protéine de soja",
			},
		},
		{
			Label:       SoyProtein,
			PDCAAS:      0.85,
			Description: "Soybeans and whole soy foods",
			Keywords: []string{
				"soy protein", "soybeans", "soya flour", "soy", "soya",
				"sojaprotein", "sojaeiweiß", "sojaeiweiss", "sojabohnen", "soja",
				"protéines de soja", "protéine de soja",
				"tofu", "tempeh", "edamame",
			},
		},
		{
			Label:       PeaProteinIsolate,
			PDCAAS:      0.85,
			Description: "Pea protein isolate",
			Keywords: []string{
				"pea protein isolate", "pea isolate",
				"erbsenproteinisolat", "erbsenisolat",
				"isolat de protéines de pois", "isolat de protéine de pois",
			},
		},
		{
			Label:       PeaProtein,
			PDCAAS:      0.73,
			Description: "Peas and pea protein concentrate",
			Keywords: []string{
				"pea protein concentrate", "pea protein", "split peas", "peas", "pea",
				"erbsenproteinkonzentrat", "erbsenprotein", "erbsen",
				"concentré de protéines de pois", "protéines de pois", "protéine de pois", "petits pois",
			},
		},
		{
			Label:       RiceProtein,
			PDCAAS:      0.47,
			Description: "Rice protein; rice flour is not a protein source",
			Keywords: []string{
				"brown rice protein", "rice protein concentrate", "rice protein",
				"reisproteinkonzentrat", "reiseiweisskonzentrat", "reisprotein", "reiseiweiß", "reiseiweiss",
				"protéines de riz", "protéine de riz",
			},
		},
		{
			Label:       WheatProtein,
			Incidental:  true,
			PDCAAS:      0.25,
			Description: "Wheat, wheat flour and wheat gluten",
			Keywords: []string{
				"wheat protein", "wheat gluten", "wheat flour", "wheat", "semolina",
				"weizenprotein", "weizeneiweiß", "weizengluten", "weizenmehl", "hartweizen", "weizen",
				"protéine de blé", "gluten de blé", "farine de blé", "blé", "froment",
			},
		},
		{
			Label:       OatProtein,
			Incidental:  true,
			PDCAAS:      0.57,
			Description: "Oats and oat protein",
			Keywords: []string{
				"oat protein", "oat flakes", "rolled oats", "oatmeal", "oat",
				"haferprotein", "haferflocken", "hafer",
				"flocons d'avoine", "avoine",
			},
		},
		{
			Label:       HempProtein,
			PDCAAS:      0.46,
			Description: "Hemp seed protein",
			Keywords: []string{
				"hemp protein", "hemp seeds", "hemp",
				"hanfprotein", "hanfsamen", "hanf",
				"protéine de chanvre", "chanvre",
			},
		},
		{
			Label:       PotatoProtein,
			PDCAAS:      0.99,
			Description: "Potato protein isolate from starch processing",
			Keywords: []string{
				"potato protein",
				"kartoffelprotein", "kartoffeleiweiß", "kartoffeleiweiss",
				"protéine de pomme de terre",
			},
		},
		{
			Label:       LupinProtein,
			PDCAAS:      0.89,
			Description: "Sweet lupin protein and flour",
			Keywords: []string{
				"lupin protein", "lupin flour", "lupin",
				"lupinenprotein", "lupinenmehl", "lupinen", "lupine",
			},
		},
		{
			Label:       Collagen,
			Description: "Collagen lacks tryptophan and has no PDCAAS",
			Keywords: []string{
				"collagen peptides", "collagen hydrolysate", "collagen",
				"kollagenhydrolysat", "kollagen",
				"collagène",
			},
		},
		{
			Label:       Gelatin,
			Description: "Gelatin lacks tryptophan and has no PDCAAS",
			Keywords: []string{
				"gelatin", "gelatine", "speisegelatine", "gélatine",
			},
		},
		{
			Label:       Mycoprotein,
			PDCAAS:      0.91,
			Description: "Fungal protein (Fusarium venenatum)",
			Keywords: []string{
				"mycoprotein", "mykoprotein", "mycoprotéine",
			},
		},
	}
}

// DefaultBaseKeywords returns the built-in base-keyword set: keywords of the
// whey, soy and pea families that also occur inside isolate and concentrate
// compounds, so their matches must pass the qualifier check.
func DefaultBaseKeywords() []string {
	return []string{
		"whey", "whey protein", "molkenprotein", "lactosérum",
		"soy", "soya", "soja", "soy protein", "sojaprotein", "protéines de soja", "protéine de soja",
		"pea", "peas", "pea protein", "erbsen", "erbsenprotein", "protéines de pois", "protéine de pois",
	}
}

// DefaultQualifiers returns the built-in qualifier substrings: the isolate
// and concentrate forms in German, English and French. Hydrolysates are not
// qualifiers; they count for the generic label of their family.
func DefaultQualifiers() []string {
	return []string{"isolat", "isolate", "konzentrat", "concentrate", "concentré"}
}

// DefaultMarkers returns the built-in exclusion-marker vocabulary.
func DefaultMarkers() []Marker {
	var out []Marker
	add := func(kind MarkerKind, phrases ...string) {
		for _, p := range phrases {
			out = append(out, Marker{Phrase: p, Kind: kind})
		}
	}
	add(MarkerTrace,
		"may contain traces of", "may contain", "traces of", "produced in a factory",
		"kann spuren", "spuren von", "enthält spuren",
		"peut contenir des traces", "peut contenir", "traces de",
		"kan sporen bevatten", "sporen van",
	)
	add(MarkerEmulsifier,
		"emulsifier", "lecithin", "lecithine",
		"emulgator", "lezithin",
		"émulsifiant", "lécithine",
	)
	add(MarkerOil,
		"soybean oil", "soy oil", "soya oil", "sunflower oil", "vegetable oil",
		"sojaöl", "sonnenblumenöl", "pflanzenöl",
		"huile de soja", "huile de tournesol", "huile végétale",
	)
	add(MarkerStarch,
		"starch", "stärke", "amidon",
	)
	return out
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. It is built once and shared.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(DefaultEntries())
		if err != nil {
			panic("catalog: invalid built-in catalog: " + err.Error())
		}
		defaultCat = c
	})
	return defaultCat
}
