// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Union returns a new bitmap holding every element present in rb or other
// (or both). Neither input is modified.
func (rb *Bitmap) Union(other *Bitmap) *Bitmap {
	out := New()
	i, j := 0, 0
	for i < len(rb.containers) || j < len(other.containers) {
		switch {
		case j >= len(other.containers) || (i < len(rb.containers) && rb.index[i] < other.index[j]):
			out.appendContainer(rb.index[i], rb.containers[i].clone())
			i++
		case i >= len(rb.containers) || other.index[j] < rb.index[i]:
			out.appendContainer(other.index[j], other.containers[j].clone())
			j++
		default:
			out.appendContainer(rb.index[i], unionContainers(&rb.containers[i], &other.containers[j]))
			i++
			j++
		}
	}
	return out
}

// Intersection returns a new bitmap holding every element present in both rb
// and other. Neither input is modified.
func (rb *Bitmap) Intersection(other *Bitmap) *Bitmap {
	out := New()
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		switch {
		case rb.index[i] < other.index[j]:
			i++
		case other.index[j] < rb.index[i]:
			j++
		default:
			out.appendNonEmpty(rb.index[i], intersectContainers(&rb.containers[i], &other.containers[j]))
			i++
			j++
		}
	}
	return out
}

// Difference returns a new bitmap holding every element of rb that is not
// present in other. Neither input is modified.
func (rb *Bitmap) Difference(other *Bitmap) *Bitmap {
	out := New()
	i, j := 0, 0
	for i < len(rb.containers) {
		switch {
		case j >= len(other.containers) || rb.index[i] < other.index[j]:
			out.appendContainer(rb.index[i], rb.containers[i].clone())
			i++
		case other.index[j] < rb.index[i]:
			j++
		default:
			out.appendNonEmpty(rb.index[i], differenceContainers(&rb.containers[i], &other.containers[j]))
			i++
			j++
		}
	}
	return out
}

// SymmetricDifference returns a new bitmap holding every element present in
// exactly one of rb, other. Neither input is modified.
func (rb *Bitmap) SymmetricDifference(other *Bitmap) *Bitmap {
	out := New()
	i, j := 0, 0
	for i < len(rb.containers) || j < len(other.containers) {
		switch {
		case j >= len(other.containers) || (i < len(rb.containers) && rb.index[i] < other.index[j]):
			out.appendContainer(rb.index[i], rb.containers[i].clone())
			i++
		case i >= len(rb.containers) || other.index[j] < rb.index[i]:
			out.appendContainer(other.index[j], other.containers[j].clone())
			j++
		default:
			out.appendNonEmpty(rb.index[i], symDiffContainers(&rb.containers[i], &other.containers[j]))
			i++
			j++
		}
	}
	return out
}

// Intersects reports whether rb and other share at least one element.
func (rb *Bitmap) Intersects(other *Bitmap) bool {
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		switch {
		case rb.index[i] < other.index[j]:
			i++
		case other.index[j] < rb.index[i]:
			j++
		default:
			if intersectsContainers(&rb.containers[i], &other.containers[j]) {
				return true
			}
			i++
			j++
		}
	}
	return false
}

// IsSubset reports whether every element of rb is also an element of other.
func (rb *Bitmap) IsSubset(other *Bitmap) bool {
	j := 0
	for i := range rb.containers {
		key := rb.index[i]
		for j < len(other.containers) && other.index[j] < key {
			j++
		}
		if j >= len(other.containers) || other.index[j] != key {
			return false
		}
		if !isSubsetContainers(&rb.containers[i], &other.containers[j]) {
			return false
		}
	}
	return true
}

// appendContainer appends a container verbatim at the next index slot. Keys
// must be supplied in ascending order.
func (rb *Bitmap) appendContainer(key uint16, c *container) {
	rb.containers = append(rb.containers, *c)
	rb.index = append(rb.index, key)
	rb.count += c.cardinality()
}

// appendNonEmpty appends a container only if it holds at least one element,
// implementing the "drop empty results" rule for set-algebra operations.
func (rb *Bitmap) appendNonEmpty(key uint16, c *container) {
	if c.isEmpty() {
		return
	}
	rb.appendContainer(key, c)
}

// And is operator sugar for Intersection.
func (rb *Bitmap) And(other *Bitmap) *Bitmap { return rb.Intersection(other) }

// Or is operator sugar for Union.
func (rb *Bitmap) Or(other *Bitmap) *Bitmap { return rb.Union(other) }

// Sub is operator sugar for Difference.
func (rb *Bitmap) Sub(other *Bitmap) *Bitmap { return rb.Difference(other) }
