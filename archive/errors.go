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

package archive

import "errors"

// Common errors for archive encoding and decoding.
var (
	// ErrMalformedArchive indicates a corrupt archive: an inconsistent
	// header, a forbidden control symbol inside a name or payload, or a
	// bit stream that ends inside an entry.
	ErrMalformedArchive = errors.New("malformed archive")

	// ErrNoFiles indicates an encoder closed before any file was encoded.
	ErrNoFiles = errors.New("archive contains no files")

	// ErrDone indicates a decode was attempted past the archive end.
	ErrDone = errors.New("archive already fully decoded")
)
