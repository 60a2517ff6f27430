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

import (
	"fmt"

	"github.com/huffarc/go-huffarc/bitstream"
)

// TreeDecoder is a decoding tree rebuilt from an entry header's
// canonical symbol order and per-length counts alone; no explicit bit
// patterns are transmitted. Its shape matches the canonical assignment
// in Build exactly, so encoder and decoder agree on every bit path.
type TreeDecoder struct {
	arena *Arena
	root  NodeID
}

type buildEntry struct {
	id    NodeID
	depth int
}

// NewTreeDecoder rebuilds the decoding tree for the given canonical
// order and per-length counts. counts[l-1] symbols take length l, in
// order. Returns ErrInvalidTable if the header does not describe a
// complete prefix code.
func NewTreeDecoder(order []Symbol, counts []uint16) (*TreeDecoder, error) {
	var total int
	for _, c := range counts {
		total += int(c)
	}
	if total != len(order) || len(order) == 0 {
		return nil, fmt.Errorf("%w: length counts sum to %d for %d symbols",
			ErrInvalidTable, total, len(order))
	}
	for _, s := range order {
		if s >= AlphabetSize {
			return nil, fmt.Errorf("%w: symbol %d out of range", ErrInvalidTable, s)
		}
	}

	arena := NewArena()
	stack := make([]buildEntry, 0, AlphabetSize)

	i := 0
	for length := 1; length <= len(counts); length++ {
		for c := uint16(0); c < counts[length-1]; c++ {
			id, depth := arena.Leaf(order[i], 0), length
			i++
			for len(stack) > 0 && stack[len(stack)-1].depth == depth {
				if depth == 0 {
					return nil, fmt.Errorf("%w: tree closes before last symbol", ErrInvalidTable)
				}
				prev := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				id = arena.Unite(prev.id, id)
				depth--
			}
			stack = append(stack, buildEntry{id: id, depth: depth})
		}
	}

	if len(stack) != 1 || stack[0].depth != 0 {
		return nil, fmt.Errorf("%w: tree does not reduce to a single root", ErrInvalidTable)
	}

	return &TreeDecoder{arena: arena, root: stack[0].id}, nil
}

// ReadSymbol consumes one bit per edge from r, descending left on 0 and
// right on 1, until a leaf is reached; it returns that leaf's symbol.
func (td *TreeDecoder) ReadSymbol(r *bitstream.Reader) (Symbol, error) {
	id := td.root
	for !td.arena.IsLeaf(id) {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			id = td.arena.Right(id)
		} else {
			id = td.arena.Left(id)
		}
	}
	return td.arena.Symbol(id), nil
}
