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

// Package huffman implements deterministic canonical Huffman coding over
// a 259-symbol alphabet: the 256 byte values plus three control symbols
// used by the archive container for framing.
package huffman

// Symbol is a value in the archive alphabet, [0, AlphabetSize).
// Values 0..255 are raw byte values; the rest are control symbols.
type Symbol uint16

// Control symbols and alphabet dimensions.
const (
	// FilenameEnd terminates the file-name byte sequence of an entry.
	FilenameEnd Symbol = 256

	// OneMoreFile ends an entry's payload; another entry follows.
	OneMoreFile Symbol = 257

	// ArchiveEnd ends the final entry's payload and the archive.
	ArchiveEnd Symbol = 258

	// AlphabetSize is the number of symbols in the alphabet.
	AlphabetSize = 259

	// AlphabetBits is the width of every header integer, in bits.
	AlphabetBits = 9
)

// IsControl reports whether s is one of the three control symbols.
func (s Symbol) IsControl() bool {
	return s >= FilenameEnd
}

// FrequencyTable maps each symbol to its occurrence count for one entry.
type FrequencyTable [AlphabetSize]uint64

// AddByte counts one occurrence of the raw byte value b.
func (ft *FrequencyTable) AddByte(b byte) {
	ft[b]++
}

// AddBytes counts one occurrence of each byte in p.
func (ft *FrequencyTable) AddBytes(p []byte) {
	for _, b := range p {
		ft[b]++
	}
}

// Add counts one occurrence of s.
func (ft *FrequencyTable) Add(s Symbol) {
	ft[s]++
}
