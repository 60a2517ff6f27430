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

import "container/heap"

// PriorityQueue is a min-heap of arena node handles ordered by
// (frequency, min-symbol), compared lexicographically ascending. Every
// live subtree has a distinct min-symbol, so the key is a strict total
// order and the merge order — hence the tree shape — is deterministic.
type PriorityQueue struct {
	h nodeHeap
}

// NewPriorityQueue creates an empty queue over nodes of arena.
func NewPriorityQueue(arena *Arena) *PriorityQueue {
	return &PriorityQueue{h: nodeHeap{arena: arena}}
}

// Push adds a node handle.
func (pq *PriorityQueue) Push(id NodeID) {
	heap.Push(&pq.h, id)
}

// Pop removes and returns the smallest node handle.
func (pq *PriorityQueue) Pop() NodeID {
	return heap.Pop(&pq.h).(NodeID)
}

// Top returns the smallest node handle without removing it.
func (pq *PriorityQueue) Top() NodeID {
	return pq.h.ids[0]
}

// Len returns the number of queued handles.
func (pq *PriorityQueue) Len() int {
	return len(pq.h.ids)
}

type nodeHeap struct {
	arena *Arena
	ids   []NodeID
}

func (h *nodeHeap) Len() int { return len(h.ids) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.ids[i], h.ids[j]
	if h.arena.Freq(a) != h.arena.Freq(b) {
		return h.arena.Freq(a) < h.arena.Freq(b)
	}
	return h.arena.MinSymbol(a) < h.arena.MinSymbol(b)
}

func (h *nodeHeap) Swap(i, j int) { h.ids[i], h.ids[j] = h.ids[j], h.ids[i] }

func (h *nodeHeap) Push(x any) { h.ids = append(h.ids, x.(NodeID)) }

func (h *nodeHeap) Pop() any {
	old := h.ids
	n := len(old)
	id := old[n-1]
	h.ids = old[:n-1]
	return id
}
