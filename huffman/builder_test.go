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
	"errors"
	"reflect"
	"testing"
)

// archiveFrequencies builds the table an encoder would: control symbols
// primed to one, plus the given byte counts.
func archiveFrequencies(byteCounts map[byte]uint64) *FrequencyTable {
	var freq FrequencyTable
	freq.Add(FilenameEnd)
	freq.Add(OneMoreFile)
	freq.Add(ArchiveEnd)
	for b, n := range byteCounts {
		freq[b] += n
	}
	return &freq
}

func codeString(c Code) string {
	s := make([]byte, len(c))
	for i, bit := range c {
		s[i] = '0' + bit
	}
	return string(s)
}

func TestBuildSingleDominantByte(t *testing.T) {
	t.Parallel()

	cb, err := Build(archiveFrequencies(map[byte]uint64{'a': 45}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantOrder := []Symbol{'a', ArchiveEnd, FilenameEnd, OneMoreFile}
	if !reflect.DeepEqual(cb.Order(), wantOrder) {
		t.Errorf("Order() = %v, want %v", cb.Order(), wantOrder)
	}

	wantCounts := []uint16{1, 1, 2}
	if !reflect.DeepEqual(cb.LengthCounts(), wantCounts) {
		t.Errorf("LengthCounts() = %v, want %v", cb.LengthCounts(), wantCounts)
	}

	wantCodes := map[Symbol]string{
		'a':         "0",
		ArchiveEnd:  "10",
		FilenameEnd: "110",
		OneMoreFile: "111",
	}
	for sym, want := range wantCodes {
		if got := codeString(cb.Code(sym)); got != want {
			t.Errorf("Code(%d) = %s, want %s", sym, got, want)
		}
	}

	if cb.Code('b') != nil {
		t.Error("Code('b') != nil for absent symbol")
	}
}

func TestBuildControlsOnly(t *testing.T) {
	t.Parallel()

	// An empty file with an empty name still codes the three controls.
	cb, err := Build(archiveFrequencies(nil))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := len(cb.Order()); got != 3 {
		t.Fatalf("len(Order()) = %d, want 3", got)
	}
	wantCodes := map[Symbol]string{
		ArchiveEnd:  "0",
		FilenameEnd: "10",
		OneMoreFile: "11",
	}
	for sym, want := range wantCodes {
		if got := codeString(cb.Code(sym)); got != want {
			t.Errorf("Code(%d) = %s, want %s", sym, got, want)
		}
	}
}

func TestBuildRejectsDegenerateTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		freq FrequencyTable
	}{
		{name: "all zero"},
		{name: "single symbol", freq: func() (ft FrequencyTable) {
			ft['x'] = 7
			return ft
		}()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			freq := tt.freq
			if _, err := Build(&freq); !errors.Is(err, ErrTooFewSymbols) {
				t.Errorf("Build() error = %v, want ErrTooFewSymbols", err)
			}
		})
	}
}

func TestBuildPrefixFree(t *testing.T) {
	t.Parallel()

	tables := map[string]map[byte]uint64{
		"skewed":     {'a': 1000, 'b': 100, 'c': 10, 'd': 1},
		"uniform":    {'a': 5, 'b': 5, 'c': 5, 'd': 5, 'e': 5},
		"fibonacci":  {'a': 1, 'b': 1, 'c': 2, 'd': 3, 'e': 5, 'f': 8, 'g': 13},
		"full range": allBytesOnce(),
	}

	for name, counts := range tables {
		counts := counts
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cb, err := Build(archiveFrequencies(counts))
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			order := cb.Order()
			for i, a := range order {
				for _, b := range order[i+1:] {
					ca, cbits := codeString(cb.Code(a)), codeString(cb.Code(b))
					if len(ca) <= len(cbits) && cbits[:len(ca)] == ca {
						t.Errorf("code of %d (%s) is a prefix of code of %d (%s)", a, ca, b, cbits)
					}
					if len(cbits) <= len(ca) && ca[:len(cbits)] == cbits {
						t.Errorf("code of %d (%s) is a prefix of code of %d (%s)", b, cbits, a, ca)
					}
				}
			}
		})
	}
}

func allBytesOnce() map[byte]uint64 {
	counts := make(map[byte]uint64, 256)
	for i := 0; i < 256; i++ {
		counts[byte(i)] = uint64(i + 1)
	}
	return counts
}

func TestBuildCanonicalOrderLaw(t *testing.T) {
	t.Parallel()

	cb, err := Build(archiveFrequencies(map[byte]uint64{
		'e': 40, 't': 30, 'a': 20, 'o': 10, 'i': 5, 'n': 5, 's': 2, 'h': 1,
	}))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	order := cb.Order()
	for i := 1; i < len(order); i++ {
		prev, cur := order[i-1], order[i]
		lp, lc := len(cb.Code(prev)), len(cb.Code(cur))
		if lp > lc {
			t.Fatalf("order not sorted by length: %d (len %d) before %d (len %d)", prev, lp, cur, lc)
		}
		if lp == lc && prev >= cur {
			t.Fatalf("order not sorted by symbol within length %d: %d before %d", lc, prev, cur)
		}
		// Within a length, codes ascend as integers; across lengths the
		// shorter code precedes at the shared prefix length.
		cp, cc := codeString(cb.Code(prev)), codeString(cb.Code(cur))
		if cp >= cc[:len(cp)] && cp != cc[:len(cp)] {
			t.Fatalf("code %s of %d does not precede code %s of %d", cp, prev, cc, cur)
		}
		if lp == lc && cp >= cc {
			t.Fatalf("codes not ascending within length: %s then %s", cp, cc)
		}
	}

	// Kraft equality: a complete prefix code fills the code space.
	var kraft float64
	for _, s := range order {
		kraft += 1 / float64(uint64(1)<<len(cb.Code(s)))
	}
	if kraft != 1 {
		t.Errorf("Kraft sum = %v, want 1", kraft)
	}
}

func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	counts := map[byte]uint64{'x': 3, 'y': 3, 'z': 3, 'w': 3, 'v': 1, 'u': 1}
	first, err := Build(archiveFrequencies(counts))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Build(archiveFrequencies(counts))
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if !reflect.DeepEqual(again.Order(), first.Order()) {
			t.Fatalf("Order() differs between runs: %v vs %v", again.Order(), first.Order())
		}
		if !reflect.DeepEqual(again.LengthCounts(), first.LengthCounts()) {
			t.Fatalf("LengthCounts() differs between runs")
		}
		for _, s := range first.Order() {
			if codeString(again.Code(s)) != codeString(first.Code(s)) {
				t.Fatalf("Code(%d) differs between runs", s)
			}
		}
	}
}

func TestFrequencyTable(t *testing.T) {
	t.Parallel()

	var ft FrequencyTable
	ft.AddBytes([]byte("abca"))
	ft.AddByte('a')
	ft.Add(FilenameEnd)

	if ft['a'] != 3 || ft['b'] != 1 || ft['c'] != 1 {
		t.Errorf("byte counts = a:%d b:%d c:%d, want 3 1 1", ft['a'], ft['b'], ft['c'])
	}
	if ft[FilenameEnd] != 1 {
		t.Errorf("control count = %d, want 1", ft[FilenameEnd])
	}
}
