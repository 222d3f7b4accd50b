// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math/rand"
	"testing"

	ref "github.com/RoaringBitmap/roaring"
	"github.com/stretchr/testify/assert"
)

// TestAgainstReferenceImplementation cross-validates point operations
// (cardinality, membership and minimum) against
// github.com/RoaringBitmap/roaring across sequential, sparse and random
// value shapes, mirroring how the upstream bench suite compares
// implementations shape by shape.
func TestAgainstReferenceImplementation(t *testing.T) {
	shapes := map[string]func(n int) []uint32{
		"seq": func(n int) []uint32 {
			out := make([]uint32, n)
			for i := range out {
				out[i] = uint32(i)
			}
			return out
		},
		"sparse": func(n int) []uint32 {
			out := make([]uint32, n)
			for i := range out {
				out[i] = uint32(i * 1000)
			}
			return out
		},
		"rand": func(n int) []uint32 {
			rng := rand.New(rand.NewSource(1))
			out := make([]uint32, n)
			for i := range out {
				out[i] = uint32(rng.Intn(n * 4))
			}
			return out
		},
	}

	for name, gen := range shapes {
		t.Run(name, func(t *testing.T) {
			data := gen(20000)
			ours, theirs := New(), ref.NewBitmap()
			for i, v := range data {
				if i%2 == 0 {
					ours.Add(v)
					theirs.Add(v)
				}
			}

			assert.Equal(t, int(theirs.GetCardinality()), ours.Cardinality())
			for _, v := range data {
				assert.Equal(t, theirs.Contains(v), ours.Contains(v))
			}

			oMin, oOK := ours.Minimum()
			assert.Equal(t, !theirs.IsEmpty(), oOK)
			if oOK {
				assert.Equal(t, theirs.Minimum(), oMin)
			}
		})
	}
}

// TestSetAlgebraAgainstReference checks union/intersection/difference
// cardinalities against the reference implementation over overlapping
// random sets.
func TestSetAlgebraAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	genSet := func(n int, max uint32) (*Bitmap, *ref.Bitmap) {
		ours, theirs := New(), ref.NewBitmap()
		for i := 0; i < n; i++ {
			v := uint32(rng.Intn(int(max)))
			ours.Add(v)
			theirs.Add(v)
		}
		return ours, theirs
	}

	a, aRef := genSet(5000, 20000)
	b, bRef := genSet(5000, 20000)

	assert.Equal(t, int(ref.And(aRef, bRef).GetCardinality()), a.Intersection(b).Cardinality())
	assert.Equal(t, int(ref.Or(aRef, bRef).GetCardinality()), a.Union(b).Cardinality())
	assert.Equal(t, int(ref.AndNot(aRef, bRef).GetCardinality()), a.Difference(b).Cardinality())
	assert.Equal(t, int(ref.Xor(aRef, bRef).GetCardinality()), a.SymmetricDifference(b).Cardinality())
}
