// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "sort"

// FromIterator builds a bitmap containing every value produced by seq.
func FromIterator(seq []uint32) *Bitmap {
	sorted := make([]uint32, len(seq))
	copy(sorted, seq)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rb := New()
	for _, v := range sorted {
		rb.Add(v)
	}
	return rb
}

// FromRange builds a bitmap containing every value in the half-open range
// [start, end).
func FromRange(start, end uint32) *Bitmap {
	rb := New()
	for v := start; v < end; v++ {
		rb.Add(v)
	}
	return rb
}

// RemoveRange deletes every value in the half-open range [start, end) from
// the bitmap.
func (rb *Bitmap) RemoveRange(start, end uint32) {
	if start >= end {
		return
	}

	startKey, startLo := split(start)
	// end is exclusive; walk it back to the inclusive last value removed.
	lastKey, lastLo := split(end - 1)

	i, _ := find16(rb.index, startKey)
	for i < len(rb.containers) {
		key := rb.index[i]
		if key > lastKey {
			break
		}

		lo, hi := uint16(0), uint16(0xFFFF)
		if key == startKey {
			lo = startLo
		}
		if key == lastKey {
			hi = lastLo
		}

		if lo == 0 && hi == 0xFFFF {
			// the whole container falls inside the range: drop it outright
			// instead of enumerating all 65,536 of its possible values.
			rb.count -= rb.containers[i].cardinality()
			rb.ctrDel(i)
			continue
		}

		values := valuesInRange(lo, hi)
		removed := rb.containers[i].removeMany(values)
		rb.count -= removed

		if rb.containers[i].isEmpty() {
			rb.ctrDel(i)
			continue
		}
		i++
	}
}

// valuesInRange returns the sorted sequence of values in [lo, hi] inclusive.
func valuesInRange(lo, hi uint16) []uint16 {
	out := make([]uint16, 0, int(hi)-int(lo)+1)
	for v := int(lo); v <= int(hi); v++ {
		out = append(out, uint16(v))
	}
	return out
}
