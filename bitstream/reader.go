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

import (
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Reader consumes individual bits and fixed-width integers from an
// underlying byte stream, MSB-first. Trailing padding bits of the final
// byte are indistinguishable from real bits; the container format is
// responsible for terminating before them. Not safe for concurrent use.
type Reader struct {
	br *bitio.Reader
}

// NewReader creates a Reader consuming bytes from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// ReadBit reads a single bit. Returns ErrEndOfStream when no buffered
// byte has bits left and the underlying stream is exhausted.
func (r *Reader) ReadBit() (bool, error) {
	bit, err := r.br.ReadBool()
	if err != nil {
		return false, mapErr(err)
	}
	return bit, nil
}

// ReadInt reads a width-bit unsigned integer, MSB-first: the first bit
// read contributes the 2^(width-1) place.
func (r *Reader) ReadInt(width uint8) (uint64, error) {
	value, err := r.br.ReadBits(width)
	if err != nil {
		return 0, mapErr(err)
	}
	return value, nil
}

// mapErr normalizes stream exhaustion to ErrEndOfStream; other I/O
// failures pass through with their cause preserved.
func mapErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrEndOfStream
	}
	return fmt.Errorf("read bit stream: %w", err)
}
