// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/bits"

// Iterator walks the elements of a Bitmap in ascending order. It holds a
// key-ordered cursor over the container index and the current inner
// container's iteration state; advancing the inner cursor to exhaustion
// moves the outer cursor and rebuilds the inner one.
//
// An Iterator is single-threaded and cannot be restarted once exhausted.
// Mutating the Bitmap it was created from invalidates it.
type Iterator struct {
	rb      *Bitmap
	outer   int      // index into rb.containers of the current container
	inner   []uint16 // remaining values of the current container, if array
	bmpWord int      // next word to scan, if bitmap
	bmpBit  uint64   // remaining bits of the current bitmap word
	ready   bool     // whether inner state has been primed for it.outer
}

// Iterator returns a fresh iterator positioned before the first element.
func (rb *Bitmap) Iterator() *Iterator {
	return &Iterator{rb: rb}
}

// Next advances the iterator and returns the next element in ascending
// order, or (0, false) once exhausted.
func (it *Iterator) Next() (uint32, bool) {
outer:
	for it.outer < len(it.rb.containers) {
		if !it.ready {
			it.prime()
		}

		c := &it.rb.containers[it.outer]
		base := uint32(it.rb.index[it.outer]) << 16

		switch c.kind {
		case typeArray:
			if len(it.inner) == 0 {
				it.advance()
				continue outer
			}
			v := it.inner[0]
			it.inner = it.inner[1:]
			return base | uint32(v), true

		case typeBitmap:
			for it.bmpBit == 0 {
				it.bmpWord++
				if it.bmpWord >= len(c.bmp.words) {
					it.advance()
					continue outer
				}
				it.bmpBit = c.bmp.words[it.bmpWord]
			}

			bit := bits.TrailingZeros64(it.bmpBit)
			it.bmpBit &= it.bmpBit - 1
			return base | uint32(it.bmpWord*64+bit), true
		}
	}
	return 0, false
}

// prime loads the inner cursor for the container at it.outer.
func (it *Iterator) prime() {
	c := &it.rb.containers[it.outer]
	switch c.kind {
	case typeArray:
		it.inner = c.arr
	case typeBitmap:
		it.bmpWord = -1
		it.bmpBit = 0
	}
	it.ready = true
}

// advance moves the outer cursor to the next container.
func (it *Iterator) advance() {
	it.outer++
	it.ready = false
}

// ToArray returns every element of the bitmap in ascending order.
func (rb *Bitmap) ToArray() []uint32 {
	out := make([]uint32, 0, rb.count)
	for i := range rb.containers {
		base := uint32(rb.index[i]) << 16
		rb.containers[i].iterate(func(v uint16) bool {
			out = append(out, base|uint32(v))
			return true
		})
	}
	return out
}

// Range calls fn for every element in ascending order until fn returns
// false or the bitmap is exhausted.
func (rb *Bitmap) Range(fn func(x uint32) bool) {
	for i := range rb.containers {
		base := uint32(rb.index[i]) << 16
		stop := false
		rb.containers[i].iterate(func(v uint16) bool {
			if !fn(base | uint32(v)) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}
