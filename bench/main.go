// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Command bench compares this package's operations against
// github.com/RoaringBitmap/roaring across several value distributions.
package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	ref "github.com/RoaringBitmap/roaring"
	"github.com/kelindar/bench"

	rb "github.com/flowroot/roaring"
)

var sizes = []int{1e3, 1e6}

func main() {
	bench.Run(func(runner *bench.B) {
		runOps(runner)
		runMath(runner)
		runRange(runner)
	}, bench.WithReference(),
		bench.WithDuration(10*time.Millisecond),
		bench.WithSamples(100),
	)
}

func runOps(b *bench.B) {
	operations := []struct {
		name  string
		ourFn func(*rb.Bitmap, uint32)
		refFn func(*ref.Bitmap, uint32)
	}{
		{"add", func(bm *rb.Bitmap, v uint32) { bm.Add(v) }, func(bm *ref.Bitmap, v uint32) { bm.Add(v) }},
		{"has", func(bm *rb.Bitmap, v uint32) { bm.Contains(v) }, func(bm *ref.Bitmap, v uint32) { bm.Contains(v) }},
		{"del", func(bm *rb.Bitmap, v uint32) { bm.Remove(v) }, func(bm *ref.Bitmap, v uint32) { bm.Remove(v) }},
	}

	for _, op := range operations {
		for _, size := range sizes {
			for _, shape := range shapes {
				data := shape.gen(size)
				our, theirs := randomBitmaps(data)

				name := fmt.Sprintf("%s %s (%s) ", op.name, formatSize(size), shape.name)
				b.Run(name,
					func(i int) { op.ourFn(our, data[i%len(data)]) },
					func(i int) { op.refFn(theirs, data[i%len(data)]) })
			}
		}
	}
}

func runMath(b *bench.B) {
	operations := []struct {
		name  string
		ourFn func(*rb.Bitmap, *rb.Bitmap) *rb.Bitmap
		refFn func(*ref.Bitmap, *ref.Bitmap) *ref.Bitmap
	}{
		{"and", (*rb.Bitmap).Intersection, func(a, b *ref.Bitmap) *ref.Bitmap { return ref.And(a, b) }},
		{"or", (*rb.Bitmap).Union, func(a, b *ref.Bitmap) *ref.Bitmap { return ref.Or(a, b) }},
		{"xor", (*rb.Bitmap).SymmetricDifference, func(a, b *ref.Bitmap) *ref.Bitmap { return ref.Xor(a, b) }},
		{"sub", (*rb.Bitmap).Difference, func(a, b *ref.Bitmap) *ref.Bitmap { return ref.AndNot(a, b) }},
	}

	for _, op := range operations {
		for _, size := range sizes {
			for _, shape := range shapes {
				data := shape.gen(size)
				our, theirs := randomBitmaps(data)
				ourSrc, theirSrc := randomBitmaps(data)

				name := fmt.Sprintf("%s %s (%s) ", op.name, formatSize(size), shape.name)
				b.Run(name,
					func(_ int) { op.ourFn(our, ourSrc) },
					func(_ int) { op.refFn(theirs, theirSrc) })
			}
		}
	}
}

func runRange(b *bench.B) {
	for _, size := range sizes {
		for _, shape := range shapes {
			data := shape.gen(size)
			our, theirs := randomBitmaps(data)

			name := fmt.Sprintf("range %s (%s) ", formatSize(size), shape.name)
			b.Run(name,
				func(int) { our.Range(func(uint32) bool { return true }) },
				func(int) { theirs.Iterate(func(uint32) bool { return true }) })
		}
	}
}

var shapes = []struct {
	name string
	gen  func(size int) []uint32
}{
	{"seq", dataSeq},
	{"rnd", dataRand},
	{"sps", dataSparse},
	{"dns", dataDense},
}

func formatSize(size int) string {
	if size >= 1e6 {
		return fmt.Sprintf("%.0fM", float64(size)/1e6)
	}
	return fmt.Sprintf("%.0fK", float64(size)/1e3)
}

func dataSeq(size int) []uint32 {
	data := make([]uint32, size)
	for i := range data {
		data[i] = uint32(i)
	}
	return data
}

func dataRand(size int) []uint32 {
	data := make([]uint32, size)
	for i := range data {
		data[i] = uint32(rand.IntN(size))
	}
	return data
}

func dataSparse(size int) []uint32 {
	data := make([]uint32, size)
	for i := range data {
		data[i] = uint32(i * 1000)
	}
	return data
}

func dataDense(size int) []uint32 {
	data := make([]uint32, size)
	for i := range data {
		data[i] = uint32(rand.IntN(size / 10))
	}
	return data
}

// randomBitmaps creates bitmaps with 50% of the values set.
func randomBitmaps(data []uint32) (*rb.Bitmap, *ref.Bitmap) {
	our := rb.New()
	theirs := ref.NewBitmap()
	for _, v := range data {
		if rand.IntN(2) == 0 {
			our.Add(v)
			theirs.Add(v)
		}
	}
	return our, theirs
}
