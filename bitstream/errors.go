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

package bitstream

import "errors"

// Common errors for bit-level I/O.
var (
	// ErrEndOfStream indicates a bit was requested but the underlying
	// byte stream is exhausted.
	ErrEndOfStream = errors.New("end of bit stream")

	// ErrClosed indicates a write to a closed Writer.
	ErrClosed = errors.New("bit stream writer is closed")
)
