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

import (
	"errors"
	"fmt"
	"io"

	"github.com/huffarc/go-huffarc/bitstream"
	"github.com/huffarc/go-huffarc/huffman"
)

// Decoder reads file entries back out of an archive stream, in order.
// Each entry's decoding tree is rebuilt from its header alone. Not safe
// for concurrent use.
type Decoder struct {
	r    *bitstream.Reader
	tree *huffman.TreeDecoder
	done bool
}

// NewDecoder creates a Decoder consuming archive bytes from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bitstream.NewReader(r)}
}

// Done reports whether the archive terminator has been reached.
func (d *Decoder) Done() bool {
	return d.done
}

// DecodeNext decodes the next file entry, writing its content bytes to
// w, and returns the stored file name. After the final entry Done
// reports true; calling DecodeNext again returns ErrDone. Corruption
// anywhere in the entry — including the bit stream ending early — is
// reported as ErrMalformedArchive, before any content is written when
// the header itself is bad.
func (d *Decoder) DecodeNext(w io.Writer) (string, error) {
	if d.done {
		return "", ErrDone
	}

	if err := d.readHeader(); err != nil {
		return "", err
	}
	name, err := d.readName()
	if err != nil {
		return "", err
	}
	if err := d.readPayload(w); err != nil {
		return name, err
	}
	return name, nil
}

// readHeader parses K, the K canonical-ordered symbols, and per-length
// counts accumulated until they sum to K, then rebuilds the decoding
// tree.
func (d *Decoder) readHeader() error {
	k, err := d.readInt()
	if err != nil {
		return err
	}
	if k > huffman.AlphabetSize {
		return fmt.Errorf("%w: %d coded symbols exceeds the alphabet", ErrMalformedArchive, k)
	}

	order := make([]huffman.Symbol, k)
	for i := range order {
		s, err := d.readInt()
		if err != nil {
			return err
		}
		order[i] = huffman.Symbol(s)
	}

	var counts []uint16
	for sum := uint64(0); sum < k; {
		if len(counts) >= huffman.AlphabetSize {
			return fmt.Errorf("%w: code lengths exceed the alphabet size", ErrMalformedArchive)
		}
		c, err := d.readInt()
		if err != nil {
			return err
		}
		sum += c
		if sum > k {
			return fmt.Errorf("%w: length counts sum past the symbol count", ErrMalformedArchive)
		}
		counts = append(counts, uint16(c))
	}

	tree, err := huffman.NewTreeDecoder(order, counts)
	if err != nil {
		if errors.Is(err, huffman.ErrInvalidTable) {
			return fmt.Errorf("%w: %v", ErrMalformedArchive, err)
		}
		return err
	}
	d.tree = tree
	return nil
}

// readName decodes symbols into the file name until FILENAME_END. Either
// of the other control symbols here means the entry is corrupt.
func (d *Decoder) readName() (string, error) {
	var name []byte
	for {
		sym, err := d.readSymbol()
		if err != nil {
			return "", err
		}
		switch {
		case sym == huffman.FilenameEnd:
			return string(name), nil
		case sym.IsControl():
			return "", fmt.Errorf("%w: control symbol %d inside a file name", ErrMalformedArchive, sym)
		default:
			name = append(name, byte(sym))
		}
	}
}

// readPayload streams decoded content bytes to w until a separator or
// the archive terminator.
func (d *Decoder) readPayload(w io.Writer) error {
	var buf [1]byte
	for {
		sym, err := d.readSymbol()
		if err != nil {
			return err
		}
		switch sym {
		case huffman.ArchiveEnd:
			d.done = true
			return nil
		case huffman.OneMoreFile:
			return nil
		case huffman.FilenameEnd:
			return fmt.Errorf("%w: control symbol %d inside file content", ErrMalformedArchive, sym)
		}
		buf[0] = byte(sym)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("write decoded content: %w", err)
		}
	}
}

func (d *Decoder) readSymbol() (huffman.Symbol, error) {
	sym, err := d.tree.ReadSymbol(d.r)
	if err != nil {
		return 0, mapStreamErr(err)
	}
	return sym, nil
}

func (d *Decoder) readInt() (uint64, error) {
	v, err := d.r.ReadInt(huffman.AlphabetBits)
	if err != nil {
		return 0, mapStreamErr(err)
	}
	return v, nil
}

// mapStreamErr converts stream exhaustion inside an entry to
// ErrMalformedArchive; underlying I/O failures pass through.
func mapStreamErr(err error) error {
	if errors.Is(err, bitstream.ErrEndOfStream) {
		return fmt.Errorf("%w: bit stream ended inside a file entry", ErrMalformedArchive)
	}
	return err
}
