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

// Package bitstream provides MSB-first bit-level I/O over byte streams.
//
// The first bit written becomes bit 7 of the first emitted byte. On close
// a partial final byte is left-aligned and its unused low bits are zero.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
)

// Writer appends individual bits and fixed-width integers to an
// underlying byte stream. Not safe for concurrent use.
type Writer struct {
	bw     *bitio.Writer
	closed bool
}

// NewWriter creates a Writer emitting bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) error {
	if w.closed {
		return ErrClosed
	}
	return w.bw.WriteBool(bit)
}

// WriteInt appends the low width bits of value, most-significant first.
func (w *Writer) WriteInt(value uint64, width uint8) error {
	if w.closed {
		return ErrClosed
	}
	return w.bw.WriteBits(value, width)
}

// Close pads a partial final byte with zero bits on the right, emits it,
// and flushes the underlying stream. Close is idempotent; writes after
// Close fail with ErrClosed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.bw.Close()
}

// Closed reports whether Close has been called.
func (w *Writer) Closed() bool {
	return w.closed
}
