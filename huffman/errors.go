// Copyright (c) 2026 The go-huffarc Authors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-huffarc.
//
// go-huffarc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-huffarc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-huffarc.  If not, see <https://www.gnu.org/licenses/>.

package huffman

import "errors"

// Common errors for canonical code construction.
var (
	// ErrTooFewSymbols indicates a frequency table with fewer than two
	// coded symbols; such a table would assign a zero-length code.
	ErrTooFewSymbols = errors.New("fewer than two symbols have positive frequency")

	// ErrInvalidTable indicates a canonical header whose symbols and
	// length counts do not describe a complete prefix code.
	ErrInvalidTable = errors.New("invalid canonical code table")
)
