// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/bits"

// differenceContainers returns a fresh container holding the elements of c1
// that are not present in c2.
func differenceContainers(c1, c2 *container) *container {
	switch {
	case c1.kind == typeArray && c2.kind == typeArray:
		return arrSubArr(c1, c2)
	case c1.kind == typeArray && c2.kind == typeBitmap:
		return arrSubBmp(c1, c2)
	case c1.kind == typeBitmap && c2.kind == typeArray:
		return bmpSubArr(c1, c2)
	default:
		return bmpSubBmp(c1, c2)
	}
}

// arrSubArr filters the elements of c1 not present in c2, both arrays.
func arrSubArr(c1, c2 *container) *container {
	a, b := c1.arr, c2.arr
	out := make([]uint16, 0, len(a))

	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j >= len(b) || b[j] != a[i] {
			out = append(out, a[i])
		}
		i++
	}
	return &container{kind: typeArray, arr: out}
}

// arrSubBmp filters the array elements absent from the bitmap.
func arrSubBmp(arr, bmp *container) *container {
	out := make([]uint16, 0, len(arr.arr))
	for _, v := range arr.arr {
		if !bmp.bmp.contains(v) {
			out = append(out, v)
		}
	}
	return &container{kind: typeArray, arr: out}
}

// bmpSubArr filters the bitmap's elements that are absent from the array.
func bmpSubArr(bmp, arr *container) *container {
	out := bmp.bmp.clone()
	for _, v := range arr.arr {
		out.remove(v)
	}

	result := &container{kind: typeBitmap, bmp: out}
	result.downgrade()
	return result
}

// bmpSubBmp subtracts two bitmap containers word by word (AND-NOT).
func bmpSubBmp(c1, c2 *container) *container {
	out := &bitmapWords{}
	pop := 0
	for w := range out.words {
		word := c1.bmp.words[w] &^ c2.bmp.words[w]
		out.words[w] = word
		pop += bits.OnesCount64(word)
	}
	out.pop = pop

	result := &container{kind: typeBitmap, bmp: out}
	result.downgrade()
	return result
}
