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

// Package contract holds the input limits the proteinscan CLI enforces
// before text reaches the classifier.
//
// # Input Size Limit
//
// Ingredient lists are short; anything past a few kilobytes is almost
// certainly the wrong file. The CLI rejects input above a soft limit:
//
//	text, err := contract.ReadText(os.Stdin)
//	if err != nil {
//	    errors.FatalError(err, jsonOutput)
//	}
//
// The limit defaults to 4 MiB (DefaultSoftLimitBytes) and can be changed
// with the PROTEINSCAN_SOFT_LIMIT_BYTES environment variable:
//
//	export PROTEINSCAN_SOFT_LIMIT_BYTES=65536
//
// Unset, non-numeric or non-positive values fall back to the default.
package contract
