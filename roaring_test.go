// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicOperations(t *testing.T) {
	rb := New()
	assert.Equal(t, 0, rb.Cardinality())
	assert.False(t, rb.Contains(123))

	assert.True(t, rb.Add(42))
	assert.True(t, rb.Contains(42))
	assert.False(t, rb.Contains(41))
	assert.Equal(t, 1, rb.Cardinality())

	assert.False(t, rb.Add(42))
	assert.Equal(t, 1, rb.Cardinality())

	rb.Add(100)
	rb.Add(1000)
	rb.Add(10000)
	assert.Equal(t, 4, rb.Cardinality())

	assert.True(t, rb.Remove(42))
	assert.False(t, rb.Contains(42))
	assert.Equal(t, 3, rb.Cardinality())

	assert.False(t, rb.Remove(999))
	assert.Equal(t, 3, rb.Cardinality())
}

func TestCrossContainerBoundaries(t *testing.T) {
	rb := New()
	values := []uint32{0, 1, 65535, 65536, 131072, 131073, 4294967295}
	for _, v := range values {
		rb.Add(v)
	}
	assert.Equal(t, len(values), rb.Cardinality())

	for _, v := range values {
		assert.True(t, rb.Contains(v))
	}

	nonValues := []uint32{2, 65534, 65537, 131071, 131074}
	for _, v := range nonValues {
		assert.False(t, rb.Contains(v))
	}
}

func TestAddRemove70000Scenario(t *testing.T) {
	rb := New()
	assert.True(t, rb.Add(10))
	assert.True(t, rb.Add(70000))
	assert.False(t, rb.Add(70000))
	assert.Equal(t, 2, rb.Cardinality())

	assert.True(t, rb.Remove(10))
	assert.True(t, rb.Remove(70000))
	assert.False(t, rb.Remove(70000))
	assert.Equal(t, 0, rb.Cardinality())
}

func TestArrayToBitmapTransition(t *testing.T) {
	rb := New()
	for i := 0; i < 5000; i++ {
		rb.Add(uint32(i))
	}
	assert.Equal(t, 5000, rb.Cardinality())
	assert.True(t, rb.Contains(0))
	assert.True(t, rb.Contains(4999))
	assert.False(t, rb.Contains(5000))
}

func TestEmptyContainersAreDropped(t *testing.T) {
	rb := New()
	rb.Add(42)
	rb.Remove(42)
	assert.Equal(t, 0, len(rb.containers))
	assert.Equal(t, 0, len(rb.index))
}

func TestMinMax(t *testing.T) {
	rb := New()
	_, ok := rb.Minimum()
	assert.False(t, ok)
	_, ok = rb.Maximum()
	assert.False(t, ok)

	rb = FromRange(0, 65537)
	min, ok := rb.Minimum()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), min)

	max, ok := rb.Maximum()
	assert.True(t, ok)
	assert.Equal(t, uint32(65536), max)
	assert.Equal(t, 65537, rb.Cardinality())
}

func TestSelectOverLargeRange(t *testing.T) {
	rb := FromRange(1, 1<<17)
	v, ok := rb.Select(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), v)

	v, ok = rb.Select(1)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), v)

	v, ok = rb.Select(70000)
	assert.True(t, ok)
	assert.Equal(t, uint32(70001), v)

	_, ok = rb.Select(1 << 17)
	assert.False(t, ok)
}

// TestRankOverLargeRange exercises rank's "elements <= v" (inclusive)
// definition, per the spec's resolution of the source's inconsistent
// per-container rank semantics.
func TestRankOverLargeRange(t *testing.T) {
	rb := FromRange(0, 1<<17)
	assert.Equal(t, 9, rb.Rank(8))
	assert.Equal(t, 2, rb.Rank(1))
	assert.Equal(t, 6, rb.Rank(5))
	assert.Equal(t, 70001, rb.Rank(70000))
}
