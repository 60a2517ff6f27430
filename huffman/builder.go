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

import "sort"

// Code is the canonical bit pattern assigned to a symbol, one byte per
// bit with values 0 and 1. Code lengths for this alphabet can exceed a
// machine word, so the pattern is kept as an explicit bit sequence.
type Code []byte

// CodeBook is the canonical Huffman code for one archive entry: the
// per-symbol bit patterns together with the canonical symbol order and
// the per-length counts that make up the entry header.
type CodeBook struct {
	codes  [AlphabetSize]Code
	order  []Symbol
	counts []uint16
}

// Code returns the bit pattern for s, or nil if s has no code.
func (cb *CodeBook) Code(s Symbol) Code {
	return cb.codes[s]
}

// Order returns the coded symbols sorted by (code length, symbol)
// ascending.
func (cb *CodeBook) Order() []Symbol {
	return cb.order
}

// LengthCounts returns, for each length l = 1..max, the number of
// symbols whose code has length l.
func (cb *CodeBook) LengthCounts() []uint16 {
	return cb.counts
}

// Build constructs the canonical code book for freq.
//
// A tree is grown by repeatedly merging the two smallest subtrees under
// the (frequency, min-symbol) order, then the tree's bit patterns are
// discarded and only the per-symbol lengths are kept: codes are
// reassigned canonically, shorter lengths first, smaller symbols first
// within a length. The result is byte-for-byte reproducible for a given
// frequency table.
func Build(freq *FrequencyTable) (*CodeBook, error) {
	arena := NewArena()
	queue := NewPriorityQueue(arena)
	for s := range freq {
		if freq[s] > 0 {
			queue.Push(arena.Leaf(Symbol(s), freq[s]))
		}
	}
	if queue.Len() < 2 {
		return nil, ErrTooFewSymbols
	}

	for queue.Len() > 1 {
		a := queue.Pop()
		b := queue.Pop()
		queue.Push(arena.Unite(a, b))
	}
	root := queue.Pop()

	var lengths [AlphabetSize]int
	arena.Paths(root, func(sym Symbol, path []byte) {
		lengths[sym] = len(path)
	})

	cb := &CodeBook{}
	for s := Symbol(0); s < AlphabetSize; s++ {
		if lengths[s] > 0 {
			cb.order = append(cb.order, s)
		}
	}
	sort.Slice(cb.order, func(i, j int) bool {
		a, b := cb.order[i], cb.order[j]
		if lengths[a] != lengths[b] {
			return lengths[a] < lengths[b]
		}
		return a < b
	})

	var current Code
	for _, s := range cb.order {
		want := lengths[s]
		if len(current) > 0 {
			if len(current) > want {
				current = current[:want]
			}
			increment(current)
		}
		for len(current) < want {
			current = append(current, 0)
		}
		cb.codes[s] = append(Code(nil), current...)
	}

	maxLen := lengths[cb.order[len(cb.order)-1]]
	cb.counts = make([]uint16, maxLen)
	for _, s := range cb.order {
		cb.counts[lengths[s]-1]++
	}

	return cb, nil
}

// increment adds one to the bit string, MSB-first, carrying right to
// left. A complete prefix code never overflows here: only the last code
// in canonical order is all ones, and no increment follows it.
func increment(code Code) {
	j := len(code) - 1
	for code[j] == 1 {
		code[j] = 0
		j--
	}
	code[j] = 1
}
