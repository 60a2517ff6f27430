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

// Package archive implements the Huffman archive container: a sequential
// bit stream of file entries, each carrying a canonical code header, the
// file name, and the encoded payload, separated in-band by control
// symbols.
package archive

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/huffarc/go-huffarc/bitstream"
	"github.com/huffarc/go-huffarc/huffman"
)

// Encoder writes named byte streams into one compressed archive. Each
// file gets its own canonical code; the separator between files and the
// archive terminator are encoded with the code of the file they follow.
// Not safe for concurrent use.
type Encoder struct {
	w       *bitstream.Writer
	book    *huffman.CodeBook
	started bool
}

// NewEncoder creates an Encoder emitting archive bytes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bitstream.NewWriter(w)}
}

// Encode appends one file entry. The source is read twice, from offset
// zero each time: once to count symbol frequencies and once to emit the
// payload. Non-seekable sources must be buffered by the caller.
func (e *Encoder) Encode(name string, src io.ReadSeeker) error {
	if e.started {
		// The previous file's code stays live just long enough to say
		// another file follows.
		if err := e.writeSymbol(huffman.OneMoreFile); err != nil {
			return err
		}
		e.book = nil
	}

	freq, err := scanFrequencies(name, src)
	if err != nil {
		return err
	}
	book, err := huffman.Build(freq)
	if err != nil {
		return fmt.Errorf("build code table for %q: %w", name, err)
	}
	e.book = book
	e.started = true

	if err := e.writeHeader(); err != nil {
		return err
	}
	if err := e.writeName(name); err != nil {
		return err
	}
	return e.writePayload(name, src)
}

// Close terminates the archive with ARCHIVE_END and closes the bit sink,
// padding the final byte. Closing an encoder that never accepted a file
// returns ErrNoFiles. Close is safe to call more than once.
func (e *Encoder) Close() error {
	if e.w.Closed() {
		return nil
	}
	if !e.started {
		return ErrNoFiles
	}
	if err := e.writeSymbol(huffman.ArchiveEnd); err != nil {
		return err
	}
	return e.w.Close()
}

// scanFrequencies counts symbol occurrences across the file name and the
// file bytes. The three control symbols are primed to one occurrence
// each so that the separator and terminator are always expressible,
// whichever one this entry ends up needing.
func scanFrequencies(name string, src io.ReadSeeker) (*huffman.FrequencyTable, error) {
	var freq huffman.FrequencyTable
	freq.Add(huffman.FilenameEnd)
	freq.Add(huffman.OneMoreFile)
	freq.Add(huffman.ArchiveEnd)
	freq.AddBytes([]byte(name))

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %q for frequency scan: %w", name, err)
	}
	br := bufio.NewReader(src)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", name, err)
		}
		freq.AddByte(b)
	}
	return &freq, nil
}

// writeHeader emits the entry header: the coded symbol count, the
// symbols in canonical order, and the per-length counts, all as 9-bit
// integers.
func (e *Encoder) writeHeader() error {
	order := e.book.Order()
	if err := e.w.WriteInt(uint64(len(order)), huffman.AlphabetBits); err != nil {
		return err
	}
	for _, s := range order {
		if err := e.w.WriteInt(uint64(s), huffman.AlphabetBits); err != nil {
			return err
		}
	}
	for _, c := range e.book.LengthCounts() {
		if err := e.w.WriteInt(uint64(c), huffman.AlphabetBits); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) writeName(name string) error {
	for _, b := range []byte(name) {
		if err := e.writeSymbol(huffman.Symbol(b)); err != nil {
			return err
		}
	}
	return e.writeSymbol(huffman.FilenameEnd)
}

func (e *Encoder) writePayload(name string, src io.ReadSeeker) error {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %q for payload: %w", name, err)
	}
	br := bufio.NewReader(src)
	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %q: %w", name, err)
		}
		if err := e.writeSymbol(huffman.Symbol(b)); err != nil {
			return err
		}
	}
}

func (e *Encoder) writeSymbol(s huffman.Symbol) error {
	code := e.book.Code(s)
	if code == nil {
		return fmt.Errorf("symbol %d appeared after the frequency scan", s)
	}
	for _, bit := range code {
		if err := e.w.WriteBit(bit == 1); err != nil {
			return err
		}
	}
	return nil
}
