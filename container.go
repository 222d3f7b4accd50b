// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// arrayMaxSize is the upgrade/downgrade threshold between an array and a
// bitmap representation: the point at which the two footprints cross over.
const arrayMaxSize = 4096

type ctype byte

const (
	typeArray ctype = iota
	typeBitmap
)

// container is a tagged variant over the two supported representations of a
// single 16-bit partition: a sparse sorted array or a dense 65,536-bit
// bitmap. Exactly one of arr/bmp is meaningful at any time, selected by kind.
type container struct {
	kind ctype
	arr  []uint16
	bmp  *bitmapWords
}

// newArrayContainer returns an empty array-backed container.
func newArrayContainer() *container {
	return &container{kind: typeArray, arr: make([]uint16, 0, 4)}
}

// clone returns an independent copy that shares no backing storage with c.
func (c *container) clone() *container {
	switch c.kind {
	case typeBitmap:
		return &container{kind: typeBitmap, bmp: c.bmp.clone()}
	default:
		arr := make([]uint16, len(c.arr))
		copy(arr, c.arr)
		return &container{kind: typeArray, arr: arr}
	}
}

// set inserts value, applying the upgrade rule afterwards.
func (c *container) set(value uint16) bool {
	var ok bool
	switch c.kind {
	case typeArray:
		if ok = c.arrSet(value); ok && len(c.arr) >= arrayMaxSize {
			c.arrToBitmap()
		}
	case typeBitmap:
		ok = c.bmp.set(value)
	}
	return ok
}

// remove deletes value from the container.
func (c *container) remove(value uint16) bool {
	switch c.kind {
	case typeArray:
		return c.arrDel(value)
	case typeBitmap:
		return c.bmp.remove(value)
	}
	return false
}

// removeMany batch-removes every value in the sorted slice values and
// returns the count actually removed.
func (c *container) removeMany(values []uint16) int {
	switch c.kind {
	case typeArray:
		return c.arrDelMany(values)
	case typeBitmap:
		removed := 0
		for _, v := range values {
			if c.bmp.remove(v) {
				removed++
			}
		}
		c.downgrade()
		return removed
	}
	return 0
}

// contains reports whether value is a member of the container.
func (c *container) contains(value uint16) bool {
	switch c.kind {
	case typeArray:
		return c.arrHas(value)
	case typeBitmap:
		return c.bmp.contains(value)
	}
	return false
}

// cardinality returns the number of elements held by the container.
func (c *container) cardinality() int {
	switch c.kind {
	case typeArray:
		return len(c.arr)
	case typeBitmap:
		return c.bmp.cardinality()
	}
	return 0
}

// isEmpty reports whether the container holds no elements.
func (c *container) isEmpty() bool {
	return c.cardinality() == 0
}

// min returns the smallest element, if any.
func (c *container) min() (uint16, bool) {
	switch c.kind {
	case typeArray:
		return c.arrMin()
	case typeBitmap:
		return c.bmp.min()
	}
	return 0, false
}

// max returns the largest element, if any.
func (c *container) max() (uint16, bool) {
	switch c.kind {
	case typeArray:
		return c.arrMax()
	case typeBitmap:
		return c.bmp.max()
	}
	return 0, false
}

// selectAt returns the i-th smallest element (0-indexed).
func (c *container) selectAt(i int) (uint16, bool) {
	switch c.kind {
	case typeArray:
		return c.arrSelect(i)
	case typeBitmap:
		return c.bmp.selectAt(i)
	}
	return 0, false
}

// rank returns the number of elements at or below v.
func (c *container) rank(v uint16) int {
	switch c.kind {
	case typeArray:
		return c.arrRank(v)
	case typeBitmap:
		return c.bmp.rank(v)
	}
	return 0
}

// iterate yields every element in ascending order, stopping early if fn
// returns false.
func (c *container) iterate(fn func(v uint16) bool) {
	switch c.kind {
	case typeArray:
		for _, v := range c.arr {
			if !fn(v) {
				return
			}
		}
	case typeBitmap:
		c.bmp.iterate(fn)
	}
}

// downgrade replaces a bitmap representation with an array when its
// cardinality has dropped below the threshold. It is the mirror of the
// upgrade applied by set, and is invoked after operations that can shrink a
// container: removeMany and every pairwise set-algebra operation.
func (c *container) downgrade() {
	if c.kind != typeBitmap || c.bmp.cardinality() >= arrayMaxSize {
		return
	}

	arr := make([]uint16, 0, c.bmp.cardinality())
	c.bmp.iterate(func(v uint16) bool {
		arr = append(arr, v)
		return true
	})
	c.arr = arr
	c.bmp = nil
	c.kind = typeArray
}

// upgrade replaces an array representation with a bitmap once its
// cardinality reaches the threshold. Used by set-algebra operations whose
// output may grow past the point where a bitmap is cheaper.
func (c *container) upgrade() {
	if c.kind == typeArray && len(c.arr) >= arrayMaxSize {
		c.arrToBitmap()
	}
}
