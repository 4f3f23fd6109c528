// Copyright 2025 breadsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pack

import (
	"hash/maphash"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadScenarios(t *testing.T) {
	t.Run("AddInt32", func(t *testing.T) {
		got := NewQuad([4]int32{1, 2, 3, 4}).Add(NewQuad([4]int32{5, 6, 7, 8}))
		assert.Equal(t, NewQuad([4]int32{6, 8, 10, 12}), got)
	})
	t.Run("AddUint32", func(t *testing.T) {
		got := NewQuad([4]uint32{1, 2, 3, 4}).Add(NewQuad([4]uint32{5, 6, 7, 8}))
		assert.Equal(t, NewQuad([4]uint32{6, 8, 10, 12}), got)
	})
	t.Run("AddFloat32", func(t *testing.T) {
		got := NewQuad([4]float32{1, 2, 3, 4}).Add(NewQuad([4]float32{5, 6, 7, 8}))
		assert.Equal(t, NewQuad([4]float32{6, 8, 10, 12}), got)
	})
	t.Run("DivInt32Truncates", func(t *testing.T) {
		got := NewQuad([4]int32{12, 34, 56, 78}).Div(NewQuad([4]int32{9, 8, 7, 6}))
		assert.Equal(t, [4]int32{1, 4, 8, 13}, got.Array())
	})
	t.Run("DivFloat32", func(t *testing.T) {
		got := NewQuad([4]float32{12, 34, 56, 78}).Div(NewQuad([4]float32{8, 8, 7, 6}))
		assert.Equal(t, [4]float32{1.5, 4.25, 8, 13}, got.Array())
	})
	t.Run("AndInt32", func(t *testing.T) {
		got := QuadAnd(NewQuad([4]int32{0b1010, 0b1100, 0b1110, 0b1101}), NewQuad([4]int32{0b0101, 0b0011, 0b0001, 0b0110}))
		assert.Equal(t, [4]int32{0, 0, 0, 0b0100}, got.Array())
	})
	t.Run("DoubleMulAssign", func(t *testing.T) {
		d := NewDouble([2]int32{1, 2})
		d.MulAssign(SplatDouble[int32](2))
		assert.Equal(t, int32(2), d.Lane(0))
		assert.Equal(t, int32(4), d.Lane(1))
	})
	t.Run("PartialCompare", func(t *testing.T) {
		a := NewQuad([4]int32{1, 4, 3, 4})
		b := NewQuad([4]int32{1, 3, 3, 5})

		ord, ok := a.PartialCompare(b)
		require.True(t, ok)
		assert.Equal(t, Greater, ord)

		ord, ok = b.PartialCompare(a)
		require.True(t, ok)
		assert.Equal(t, Less, ord)

		assert.True(t, a.Equal(a))
		assert.False(t, a.Equal(b))
		assert.True(t, a == a)
		assert.True(t, a != b)
	})
}

func testQuadBasics[T Lanes](t *testing.T) {
	q := NewQuad([4]T{1, 2, 3, 4})
	o := NewQuad([4]T{5, 6, 7, 8})
	assert.Equal(t, [4]T{1, 2, 3, 4}, q.Array())
	assert.Equal(t, [4]T{5, 5, 5, 5}, SplatQuad(T(5)).Array())
	assert.Equal(t, [4]T{6, 8, 10, 12}, q.Add(o).Array())
	assert.Equal(t, [4]T{4, 4, 4, 4}, o.Sub(q).Array())
	assert.Equal(t, [4]T{5, 12, 21, 32}, q.Mul(o).Array())

	acc := q
	acc.AddAssign(o)
	acc.SubAssign(q)
	assert.Equal(t, o, acc)
	acc.MulAssign(SplatQuad(T(2)))
	acc.DivAssign(SplatQuad(T(2)))
	assert.Equal(t, o, acc)
}

func testDoubleBasics[T Lanes](t *testing.T) {
	d := NewDouble([2]T{1, 2})
	o := NewDouble([2]T{5, 6})
	assert.Equal(t, [2]T{1, 2}, d.Array())
	assert.Equal(t, [2]T{5, 5}, SplatDouble(T(5)).Array())
	assert.Equal(t, [2]T{6, 8}, d.Add(o).Array())
	assert.Equal(t, [2]T{4, 4}, o.Sub(d).Array())
	assert.Equal(t, [2]T{5, 12}, d.Mul(o).Array())
	assert.Equal(t, [2]T{5, 3}, o.Div(d).Array())

	acc := d
	acc.AddAssign(o)
	acc.SubAssign(d)
	acc.DivAssign(SplatDouble(T(1)))
	assert.Equal(t, o, acc)
}

func TestBasics(t *testing.T) {
	t.Run("Quad/uint64", testQuadBasics[uint64])
	t.Run("Quad/uint32", testQuadBasics[uint32])
	t.Run("Quad/int32", testQuadBasics[int32])
	t.Run("Quad/float32", testQuadBasics[float32])
	t.Run("Quad/int8", testQuadBasics[int8])
	t.Run("Quad/float64", testQuadBasics[float64])
	t.Run("Double/uint64", testDoubleBasics[uint64])
	t.Run("Double/uint32", testDoubleBasics[uint32])
	t.Run("Double/int32", testDoubleBasics[int32])
	t.Run("Double/float32", testDoubleBasics[float32])
	t.Run("Double/uintptr", testDoubleBasics[uintptr])
}

func TestLaneAccess(t *testing.T) {
	q := SplatQuad[int16](0)
	for i := range 4 {
		q.SetLane(i, int16(10*i))
	}
	assert.Equal(t, [4]int16{0, 10, 20, 30}, q.Array())
	*q.LanePtr(3) = -1
	assert.Equal(t, int16(-1), q.Lane(3))

	d := NewDouble([2]float64{1, 2})
	*d.LanePtr(0) += 0.5
	d.SetLane(1, 4)
	assert.Equal(t, [2]float64{1.5, 4}, d.Array())
	assert.Equal(t, [2]float64{4, 1.5}, d.Swap().Array())
}

func TestPanics(t *testing.T) {
	four, two := 4, 2
	q := NewQuad([4]int32{1, 2, 3, 4})
	d := NewDouble([2]uint8{1, 2})

	assert.Panics(t, func() { q.Lane(four) }, "Quad lane out of range")
	assert.Panics(t, func() { q.SetLane(-1, 0) }, "Quad negative lane")
	assert.Panics(t, func() { d.Lane(two) }, "Double lane out of range")
	assert.Panics(t, func() { q.Div(NewQuad([4]int32{1, 0, 1, 1})) }, "integer division by zero")
	assert.Panics(t, func() { d.Div(NewDouble([2]uint8{0, 1})) }, "Double division by zero")
	assert.Panics(t, func() { QuadShl(q, NewQuad([4]int32{0, 0, -1, 0})) }, "negative shift count")

	// Float division by zero is not a failure.
	assert.NotPanics(t, func() { NewQuad([4]float32{1, 2, 3, 4}).Div(SplatQuad[float32](0)) })
}

func TestElementwise(t *testing.T) {
	a := [4]int32{7, -8, math.MaxInt32, 100}
	b := [4]int32{3, 5, 1, -7}
	qa, qb := NewQuad(a), NewQuad(b)
	shifts := [4]int32{1, 2, 31, 40}
	qs := NewQuad(shifts)

	for i := range 4 {
		assert.Equal(t, a[i]+b[i], qa.Add(qb).Lane(i), "add lane %d", i)
		assert.Equal(t, a[i]-b[i], qa.Sub(qb).Lane(i), "sub lane %d", i)
		assert.Equal(t, a[i]*b[i], qa.Mul(qb).Lane(i), "mul lane %d", i)
		assert.Equal(t, a[i]/b[i], qa.Div(qb).Lane(i), "div lane %d", i)
		assert.Equal(t, a[i]&b[i], QuadAnd(qa, qb).Lane(i), "and lane %d", i)
		assert.Equal(t, a[i]|b[i], QuadOr(qa, qb).Lane(i), "or lane %d", i)
		assert.Equal(t, a[i]^b[i], QuadXor(qa, qb).Lane(i), "xor lane %d", i)
		assert.Equal(t, a[i]&^b[i], QuadAndNot(qa, qb).Lane(i), "andnot lane %d", i)
		assert.Equal(t, ^a[i], QuadNot(qa).Lane(i), "not lane %d", i)
		assert.Equal(t, a[i]<<shifts[i], QuadShl(qa, qs).Lane(i), "shl lane %d", i)
		assert.Equal(t, a[i]>>shifts[i], QuadShr(qa, qs).Lane(i), "shr lane %d", i)
		assert.Equal(t, -a[i], QuadNeg(qa).Lane(i), "neg lane %d", i)
	}
}

func TestIntegerAssignOps(t *testing.T) {
	q := NewQuad([4]uint16{0b1100, 0b1010, 1, 0xFFFF})
	QuadAndAssign(&q, SplatQuad[uint16](0b1000))
	assert.Equal(t, [4]uint16{0b1000, 0b1000, 0, 0b1000}, q.Array())
	QuadOrAssign(&q, NewQuad([4]uint16{1, 2, 3, 4}))
	assert.Equal(t, [4]uint16{0b1001, 0b1010, 3, 0b1100}, q.Array())
	QuadXorAssign(&q, SplatQuad[uint16](1))
	assert.Equal(t, [4]uint16{0b1000, 0b1011, 2, 0b1101}, q.Array())
	QuadShlAssign(&q, SplatQuad[uint16](1))
	assert.Equal(t, [4]uint16{0b10000, 0b10110, 4, 0b11010}, q.Array())
	QuadShrAssign(&q, SplatQuad[uint16](2))
	assert.Equal(t, [4]uint16{0b100, 0b101, 1, 0b110}, q.Array())

	d := NewDouble([2]int64{-8, 8})
	DoubleShrAssign(&d, SplatDouble[int64](1))
	assert.Equal(t, [2]int64{-4, 4}, d.Array(), "signed shift is arithmetic")
	DoubleShlAssign(&d, SplatDouble[int64](2))
	DoubleAndAssign(&d, SplatDouble[int64](0xFF))
	DoubleOrAssign(&d, NewDouble([2]int64{1, 0}))
	DoubleXorAssign(&d, NewDouble([2]int64{0, 0x10}))
	assert.Equal(t, [2]int64{0xF1, 0x00}, d.Array())
	assert.Equal(t, [2]int64{^0xF1, -1}, DoubleNot(d).Array())
	assert.Equal(t, [2]int64{0xF0, 0}, DoubleAndNot(d, SplatDouble[int64](1)).Array())
	assert.Equal(t, [2]int64{0xF1, 1}, DoubleOr(d, NewDouble([2]int64{0, 1})).Array())
	assert.Equal(t, [2]int64{0xF0, 1}, DoubleXor(d, NewDouble([2]int64{1, 1})).Array())
	assert.Equal(t, [2]int64{1, 0}, DoubleAnd(d, SplatDouble[int64](1)).Array())
	assert.Equal(t, [2]int64{0x1E2, 0}, DoubleShl(d, SplatDouble[int64](1)).Array())
	assert.Equal(t, [2]int64{0x78, 0}, DoubleShr(d, SplatDouble[int64](1)).Array())
}

func TestMinMaxClamp(t *testing.T) {
	a := NewQuad([4]int32{1, 5, -3, 9})
	b := NewQuad([4]int32{2, 4, -3, -9})
	assert.Equal(t, [4]int32{1, 4, -3, -9}, a.Min(b).Array())
	assert.Equal(t, [4]int32{2, 5, -3, 9}, a.Max(b).Array())
	assert.Equal(t, [4]int32{1, 3, 0, 3}, a.Clamp(SplatQuad[int32](0), SplatQuad[int32](3)).Array())

	nan := float32(math.NaN())
	f := NewQuad([4]float32{nan, 1, 2, nan})
	g := NewQuad([4]float32{0, nan, 3, nan})
	minFG := f.Min(g).Array()
	assert.True(t, math.IsNaN(float64(minFG[0])), "NaN in the receiver is kept")
	assert.Equal(t, float32(1), minFG[1], "NaN in the argument is ignored")
	assert.Equal(t, float32(2), minFG[2])
	assert.Equal(t, float32(3), f.Max(g).Array()[2])

	d := NewDouble([2]float64{-1, 10})
	assert.Equal(t, [2]float64{0, 5}, d.Clamp(SplatDouble(0.0), SplatDouble(5.0)).Array())
	assert.Equal(t, [2]float64{-1, 2}, d.Min(SplatDouble(2.0)).Array())
	assert.Equal(t, [2]float64{2, 10}, d.Max(SplatDouble(2.0)).Array())
}

func TestComparisonMasks(t *testing.T) {
	a := NewQuad([4]uint32{1, 2, 3, math.MaxUint32})
	b := NewQuad([4]uint32{2, 2, 2, 1})

	assert.Equal(t, [4]bool{false, true, false, false}, a.Eq(b).Array())
	assert.Equal(t, [4]bool{true, false, true, true}, a.Ne(b).Array())
	assert.Equal(t, [4]bool{true, false, false, false}, a.Lt(b).Array(), "MaxUint32 is not less than 1")
	assert.Equal(t, [4]bool{true, true, false, false}, a.Le(b).Array())
	assert.Equal(t, [4]bool{false, false, true, true}, a.Gt(b).Array())
	assert.Equal(t, [4]bool{false, true, true, true}, a.Ge(b).Array())

	nan := math.NaN()
	x := NewDouble([2]float64{nan, 1})
	y := NewDouble([2]float64{nan, 1})
	assert.Equal(t, [2]bool{false, true}, x.Eq(y).Array())
	assert.Equal(t, [2]bool{true, false}, x.Ne(y).Array())
	assert.Equal(t, [2]bool{false, true}, x.Le(y).Array())
	assert.Equal(t, [2]bool{false, true}, x.Ge(y).Array())
	assert.Equal(t, [2]bool{false, false}, x.Lt(y).Array())
	assert.Equal(t, [2]bool{false, false}, x.Gt(y).Array())
	assert.False(t, x.Equal(y), "NaN lanes are never equal")
}

func TestOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]int32
		want Ordering
	}{
		{"equal", [4]int32{1, 2, 3, 4}, [4]int32{1, 2, 3, 4}, Equal},
		{"first lane decides", [4]int32{0, 9, 9, 9}, [4]int32{1, 0, 0, 0}, Less},
		{"last lane decides", [4]int32{1, 2, 3, 5}, [4]int32{1, 2, 3, 4}, Greater},
		{"negative", [4]int32{-1, 0, 0, 0}, [4]int32{0, 0, 0, 0}, Less},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewQuad(tt.a), NewQuad(tt.b)
			assert.Equal(t, tt.want, QuadCompare(a, b))
			ord, ok := a.PartialCompare(b)
			assert.True(t, ok)
			assert.Equal(t, tt.want, ord, "total and partial orders agree")
			assert.Equal(t, -tt.want, QuadCompare(b, a))
		})
	}

	// Unsigned lanes above the signed range still order as unsigned.
	assert.Equal(t, Greater, QuadCompare(NewQuad([4]uint32{1 << 31, 0, 0, 0}), NewQuad([4]uint32{1, 0, 0, 0})))
	assert.Equal(t, Less, DoubleCompare(NewDouble([2]uint32{5, 1}), NewDouble([2]uint32{5, math.MaxUint32})))
	assert.Equal(t, Equal, DoubleCompare(SplatDouble[int8](-3), SplatDouble[int8](-3)))
}

func TestPartialCompareNaN(t *testing.T) {
	nan := float32(math.NaN())

	_, ok := NewQuad([4]float32{1, nan, 0, 0}).PartialCompare(NewQuad([4]float32{1, 2, 0, 0}))
	assert.False(t, ok, "NaN before the first differing lane")

	ord, ok := NewQuad([4]float32{0, nan, 0, 0}).PartialCompare(NewQuad([4]float32{1, 2, 0, 0}))
	assert.True(t, ok, "an earlier lane decides before the NaN is reached")
	assert.Equal(t, Less, ord)

	ord, ok = NewDouble([2]float32{2, nan}).PartialCompare(NewDouble([2]float32{1, 0}))
	assert.True(t, ok)
	assert.Equal(t, Greater, ord)

	_, ok = NewDouble([2]float32{1, nan}).PartialCompare(NewDouble([2]float32{1, 0}))
	assert.False(t, ok)

	negZero := float32(math.Copysign(0, -1))
	ord, ok = NewDouble([2]float32{negZero, 1}).PartialCompare(NewDouble([2]float32{0, 1}))
	assert.True(t, ok)
	assert.Equal(t, Equal, ord, "signed zeros compare equal")
}

func TestSignedOps(t *testing.T) {
	q := NewQuad([4]int32{math.MinInt32, -5, 0, 7})
	assert.Equal(t, [4]int32{math.MinInt32, 5, 0, -7}, QuadNeg(q).Array())
	assert.Equal(t, [4]int32{math.MinInt32, 5, 0, 7}, QuadAbs(q).Array())

	f := NewQuad([4]float32{-1.5, 0, 2, float32(math.Inf(-1))})
	assert.Equal(t, [4]float32{1.5, 0, -2, float32(math.Inf(1))}, QuadNeg(f).Array())
	assert.Equal(t, [4]float32{1.5, 0, 2, float32(math.Inf(1))}, QuadAbs(f).Array())
	assert.True(t, math.Signbit(float64(QuadNeg(f).Lane(1))), "negating +0 gives -0")

	d := NewDouble([2]float64{-2, 3})
	assert.Equal(t, [2]float64{2, -3}, DoubleNeg(d).Array())
	assert.Equal(t, [2]float64{2, 3}, DoubleAbs(d).Array())
	assert.Equal(t, [2]int8{127, -127}, DoubleNeg(NewDouble([2]int8{-127, 127})).Array())
}

func TestFloatMath(t *testing.T) {
	q := NewQuad([4]float32{-1.5, -0.5, 2.5, 4})
	assert.Equal(t, [4]float32{-2, -1, 2, 4}, QuadFloor(q).Array())
	assert.Equal(t, [4]float32{-1, 0, 3, 4}, QuadCeil(q).Array())
	assert.Equal(t, [4]float32{-2, -1, 3, 4}, QuadRound(q).Array(), "halves round away from zero")
	assert.Equal(t, [4]float32{-2.0 / 3, -2, 0.4, 0.25}, QuadRecip(q).Array())
	assert.Equal(t, float32(2), QuadSqrt(q).Lane(3))
	assert.True(t, math.IsNaN(float64(QuadSqrt(q).Lane(0))))

	d := NewDouble([2]float32{9, 0})
	assert.Equal(t, [2]float32{3, 0}, DoubleSqrt(d).Array())
	assert.Equal(t, float32(1.0/9), DoubleRecip(d).Lane(0))
	assert.True(t, math.IsInf(float64(DoubleRecip(d).Lane(1)), 1), "1/0 is +Inf")
	assert.Equal(t, [2]float64{-3, 2}, DoubleFloor(NewDouble([2]float64{-2.1, 2.9})).Array())
	assert.Equal(t, [2]float64{-2, 3}, DoubleCeil(NewDouble([2]float64{-2.1, 2.1})).Array())
	assert.Equal(t, [2]float64{-3, 3}, DoubleRound(NewDouble([2]float64{-2.5, 2.5})).Array())
}

func TestSplitMerge(t *testing.T) {
	q := NewQuad([4]uint8{1, 2, 3, 4})
	lo, hi := q.Low(), q.High()
	assert.Equal(t, [2]uint8{1, 2}, lo.Array())
	assert.Equal(t, [2]uint8{3, 4}, hi.Array())
	assert.Equal(t, q, FromHalves(lo, hi))
	assert.Equal(t, [4]uint8{3, 4, 1, 2}, FromHalves(hi, lo).Array())
}

func TestSelect(t *testing.T) {
	a := NewQuad([4]float32{1, 2, 3, 4})
	b := NewQuad([4]float32{10, 20, 30, 40})
	m := NewQuadMask[float32]([4]bool{true, false, false, true})
	assert.Equal(t, [4]float32{1, 20, 30, 4}, QuadSelect(m, a, b).Array())
	assert.Equal(t, b, QuadSelect(SplatQuadMask[float32](false), a, b))

	// Select by a comparison result: keep the larger lane.
	x := NewDouble([2]int32{5, -5})
	y := NewDouble([2]int32{1, 1})
	assert.Equal(t, [2]int32{5, 1}, DoubleSelect(x.Gt(y), x, y).Array())
}

func TestFolds(t *testing.T) {
	quads := []Quad[int32]{
		NewQuad([4]int32{1, 2, 3, 4}),
		NewQuad([4]int32{5, 6, 7, 8}),
		SplatQuad[int32](-1),
	}
	assert.Equal(t, [4]int32{5, 7, 9, 11}, QuadSum(slices.Values(quads)).Array())
	assert.Equal(t, [4]int32{-5, -12, -21, -32}, QuadProduct(slices.Values(quads)).Array())

	assert.Equal(t, SplatQuad[float32](0), QuadSum(slices.Values([]Quad[float32](nil))), "empty sum is the additive identity")
	assert.Equal(t, SplatDouble[float32](1), DoubleProduct(slices.Values([]Double[float32](nil))), "empty product is the multiplicative identity")

	doubles := []Double[float64]{NewDouble([2]float64{0.5, 2}), NewDouble([2]float64{4, 0.25})}
	assert.Equal(t, [2]float64{4.5, 2.25}, DoubleSum(slices.Values(doubles)).Array())
	assert.Equal(t, [2]float64{2, 0.5}, DoubleProduct(slices.Values(doubles)).Array())
}

func TestHashAndString(t *testing.T) {
	seed := maphash.MakeSeed()
	a := NewQuad([4]int32{1, 2, 3, 4})
	b := NewQuad([4]int32{1, 2, 3, 4})
	assert.Equal(t, a.Hash(seed), b.Hash(seed))
	assert.Equal(t, NewDouble([2]float32{1, 2}).Hash(seed), NewDouble([2]float32{1, 2}).Hash(seed))

	nan := float32(math.NaN())
	nanQuad := SplatQuad(nan)
	assert.Equal(t, nanQuad.Hash(seed), nanQuad.Hash(seed), "NaN lanes hash the same on every call")
	nanDouble := NewDouble([2]float64{math.NaN(), 1})
	assert.Equal(t, nanDouble.Hash(seed), nanDouble.Hash(seed))

	negZero := float32(math.Copysign(0, -1))
	pos, neg := NewQuad([4]float32{0, 1, 2, 3}), NewQuad([4]float32{negZero, 1, 2, 3})
	require.True(t, pos.Equal(neg))
	assert.Equal(t, pos.Hash(seed), neg.Hash(seed), "-0 and +0 hash alike")
	assert.Equal(t, SplatQuad(celsius(nan)).Hash(seed), SplatQuad(celsius(nan)).Hash(seed))
	assert.NotEqual(t, a.Hash(seed), NewQuad([4]int32{1, 2, 3, 5}).Hash(seed))

	assert.Equal(t, "Quad(1, 2, 3, 4)", a.String())
	assert.Equal(t, "Double(1.5, -2)", NewDouble([2]float64{1.5, -2}).String())

	// Quads are comparable and work as map keys.
	seen := map[Quad[int32]]int{a: 1}
	seen[b]++
	assert.Equal(t, 2, seen[a])
}

func TestRoundTrip(t *testing.T) {
	lanes := [4]float64{math.Inf(-1), math.Copysign(0, -1), math.SmallestNonzeroFloat64, math.MaxFloat64}
	assert.Equal(t, lanes, NewQuad(lanes).Array())
	for _, v := range []int64{math.MinInt64, -1, 0, math.MaxInt64} {
		assert.Equal(t, [4]int64{v, v, v, v}, SplatQuad(v).Array())
		assert.Equal(t, [2]int64{v, v}, SplatDouble(v).Array())
	}
	assert.Equal(t, Quad[uint16]{}, NewQuad([4]uint16{}), "zero value has every lane zero")
}

type celsius float32

type handle uintptr

func TestNamedLaneTypes(t *testing.T) {
	assert.Equal(t, DispatchArray, QuadLevel[celsius]())
	assert.Equal(t, DispatchArray, DoubleLevel[handle]())

	c := NewQuad([4]celsius{-4, 9, 16, 25})
	assert.Equal(t, [4]celsius{-8, 18, 32, 50}, c.Add(c).Array())
	assert.Equal(t, [4]bool{true, false, false, false}, c.Lt(SplatQuad[celsius](0)).Array())
	assert.Equal(t, [4]celsius{4, 9, 16, 25}, QuadAbs(c).Array())
	assert.Equal(t, celsius(5), QuadSqrt(c).Lane(3))

	h := NewDouble([2]handle{0xF0, 0x0F})
	assert.Equal(t, [2]handle{0, 0}, DoubleAnd(h, h.Swap()).Array())
	assert.Equal(t, [2]handle{0xFF, 0xFF}, DoubleOr(h, h.Swap()).Array())
}
