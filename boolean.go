// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// intersectsContainers reports whether c1 and c2 share at least one
// element, short-circuiting on disjoint [min,max] ranges before falling
// back to a representation-specific probe.
func intersectsContainers(c1, c2 *container) bool {
	min1, ok1 := c1.min()
	max1, _ := c1.max()
	min2, ok2 := c2.min()
	max2, _ := c2.max()
	if !ok1 || !ok2 || max1 < min2 || max2 < min1 {
		return false
	}

	switch {
	case c1.kind == typeArray && c2.kind == typeArray:
		return arrIntersectsArr(c1.arr, c2.arr)
	case c1.kind == typeBitmap && c2.kind == typeBitmap:
		return bmpIntersectsBmp(c1.bmp, c2.bmp)
	case c1.kind == typeArray:
		return arrIntersectsBmp(c1.arr, c2.bmp, min2)
	default:
		return arrIntersectsBmp(c2.arr, c1.bmp, min1)
	}
}

// arrIntersectsArr walks two sorted arrays with two pointers, stopping at
// the first shared value.
func arrIntersectsArr(a, b []uint16) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// bmpIntersectsBmp ANDs word by word with an early exit on the first
// non-zero result.
func bmpIntersectsBmp(a, b *bitmapWords) bool {
	for w := range a.words {
		if a.words[w]&b.words[w] != 0 {
			return true
		}
	}
	return false
}

// arrIntersectsBmp probes each array element starting from the later of the
// two minima against the bitmap.
func arrIntersectsBmp(arr []uint16, bmp *bitmapWords, from uint16) bool {
	idx, _ := find16(arr, from)
	for _, v := range arr[idx:] {
		if bmp.contains(v) {
			return true
		}
	}
	return false
}

// isSubsetContainers reports whether every element of c1 is also an element
// of c2.
func isSubsetContainers(c1, c2 *container) bool {
	switch {
	case c1.kind == typeArray && c2.kind == typeArray:
		return arrSubsetArr(c1.arr, c2.arr)
	case c1.kind == typeArray && c2.kind == typeBitmap:
		for _, v := range c1.arr {
			if !c2.bmp.contains(v) {
				return false
			}
		}
		return true
	case c1.kind == typeBitmap && c2.kind == typeBitmap:
		for w := range c1.bmp.words {
			if c1.bmp.words[w]&^c2.bmp.words[w] != 0 {
				return false
			}
		}
		return true
	default: // c1 is a bitmap, c2 is an array
		if c1.cardinality() > c2.cardinality() {
			return false
		}
		ok := true
		c1.bmp.iterate(func(v uint16) bool {
			if !c2.arrHas(v) {
				ok = false
				return false
			}
			return true
		})
		return ok
	}
}

// arrSubsetArr reports whether every element of a is present in sorted
// array b, via a single merge-style pass.
func arrSubsetArr(a, b []uint16) bool {
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j >= len(b) || b[j] != v {
			return false
		}
	}
	return true
}
