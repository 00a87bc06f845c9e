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

// Package bootstrap creates and locates proteinscan workspaces.
//
// A workspace is a .proteinscan directory holding three files:
//
//	.proteinscan/
//	  config.yaml               paths and classifier settings
//	  catalog.yaml              the keyword catalog, seeded from catalog.Default()
//	  protein_test_cases.json   the evaluation corpus, seeded from corpus.Seed()
//
// # Initialization
//
//	ws, err := bootstrap.InitWorkspace(".", false, logger)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ws.Written)
//
// InitWorkspace is idempotent: existing files are left alone unless force
// is set, so a curated corpus is never overwritten by the seed.
//
// # Discovery
//
// FindWorkspace walks up from a directory to the nearest .proteinscan, the
// way git finds .git. LoadConfig reads config.yaml and resolves relative
// catalog and corpus paths against the workspace directory.
package bootstrap
