// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// newArr builds an array container from the given values.
func newArr(values ...uint16) *container {
	c := newArrayContainer()
	for _, v := range values {
		c.arrSet(v)
	}
	return c
}

// newBmp builds a bitmap container from the given values.
func newBmp(values ...uint16) *container {
	bmp := &bitmapWords{}
	for _, v := range values {
		bmp.set(v)
	}
	return &container{kind: typeBitmap, bmp: bmp}
}

// valuesOf returns the ascending values held by a container.
func valuesOf(c *container) []uint16 {
	out := []uint16{}
	c.iterate(func(v uint16) bool {
		out = append(out, v)
		return true
	})
	return out
}
