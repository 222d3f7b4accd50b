// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "math/bits"

// unionContainers returns a fresh container holding the elements present in
// either c1 or c2.
func unionContainers(c1, c2 *container) *container {
	switch {
	case c1.kind == typeArray && c2.kind == typeArray:
		return arrOrArr(c1, c2)
	case c1.kind == typeArray && c2.kind == typeBitmap:
		return arrOrBmp(c2, c1)
	case c1.kind == typeBitmap && c2.kind == typeArray:
		return arrOrBmp(c1, c2)
	default:
		return bmpOrBmp(c1, c2)
	}
}

// arrOrArr unions two array containers via sorted merge with dedup. If the
// merged size reaches the threshold, the result is built as a bitmap.
func arrOrArr(c1, c2 *container) *container {
	a, b := c1.arr, c2.arr
	out := make([]uint16, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	result := &container{kind: typeArray, arr: out}
	result.upgrade()
	return result
}

// arrOrBmp unions a bitmap container with an array container by cloning the
// bitmap and inserting the array's elements into it.
func arrOrBmp(bmp, arr *container) *container {
	out := bmp.bmp.clone()
	for _, v := range arr.arr {
		out.set(v)
	}

	result := &container{kind: typeBitmap, bmp: out}
	result.downgrade()
	return result
}

// bmpOrBmp unions two bitmap containers word by word.
func bmpOrBmp(c1, c2 *container) *container {
	out := &bitmapWords{}
	pop := 0
	for w := range out.words {
		word := c1.bmp.words[w] | c2.bmp.words[w]
		out.words[w] = word
		pop += bits.OnesCount64(word)
	}
	out.pop = pop

	result := &container{kind: typeBitmap, bmp: out}
	result.downgrade()
	return result
}
