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
	"fmt"
	"hash/maphash"
	"iter"
)

// Double is a tuple of two lanes of T. It mirrors Quad; see Quad for the
// semantics shared by both widths.
type Double[T Lanes] struct {
	v [2]T
}

// NewDouble creates a Double holding the given lanes.
func NewDouble[T Lanes](lanes [2]T) Double[T] {
	return Double[T]{v: lanes}
}

// SplatDouble creates a Double with both lanes set to v.
func SplatDouble[T Lanes](v T) Double[T] {
	return Double[T]{v: [2]T{v, v}}
}

// Array returns the lanes as an array.
func (d Double[T]) Array() [2]T {
	return d.v
}

// Lane returns lane i. It panics if i is out of range.
func (d Double[T]) Lane(i int) T {
	return d.v[i]
}

// SetLane sets lane i to v. It panics if i is out of range.
func (d *Double[T]) SetLane(i int, v T) {
	d.v[i] = v
}

// LanePtr returns a pointer to lane i. It panics if i is out of range.
func (d *Double[T]) LanePtr(i int) *T {
	return &d.v[i]
}

// Add returns d + o lane by lane.
func (d Double[T]) Add(o Double[T]) Double[T] {
	return doubleOpsFor[T]().add(d, o)
}

// Sub returns d - o lane by lane.
func (d Double[T]) Sub(o Double[T]) Double[T] {
	return doubleOpsFor[T]().sub(d, o)
}

// Mul returns d * o lane by lane.
func (d Double[T]) Mul(o Double[T]) Double[T] {
	return doubleOpsFor[T]().mul(d, o)
}

// Div returns d / o lane by lane. Integer division by zero panics exactly as
// it does for a scalar.
func (d Double[T]) Div(o Double[T]) Double[T] {
	return doubleOpsFor[T]().div(d, o)
}

// AddAssign sets d to d + o.
func (d *Double[T]) AddAssign(o Double[T]) {
	*d = doubleOpsFor[T]().add(*d, o)
}

// SubAssign sets d to d - o.
func (d *Double[T]) SubAssign(o Double[T]) {
	*d = doubleOpsFor[T]().sub(*d, o)
}

// MulAssign sets d to d * o.
func (d *Double[T]) MulAssign(o Double[T]) {
	*d = doubleOpsFor[T]().mul(*d, o)
}

// DivAssign sets d to d / o.
func (d *Double[T]) DivAssign(o Double[T]) {
	*d = doubleOpsFor[T]().div(*d, o)
}

// Min returns, for each lane, o if o is less than d and d otherwise.
// A NaN in either lane keeps d's lane.
func (d Double[T]) Min(o Double[T]) Double[T] {
	return doubleOpsFor[T]().min(d, o)
}

// Max returns, for each lane, o if o is greater than d and d otherwise.
func (d Double[T]) Max(o Double[T]) Double[T] {
	return doubleOpsFor[T]().max(d, o)
}

// Clamp limits both lanes to [lo, hi].
func (d Double[T]) Clamp(lo, hi Double[T]) Double[T] {
	ops := doubleOpsFor[T]()
	return ops.min(ops.max(d, lo), hi)
}

// Eq returns the mask of lanes where d == o.
func (d Double[T]) Eq(o Double[T]) DoubleMask[T] {
	return doubleOpsFor[T]().eq(d, o)
}

// Ne returns the mask of lanes where d != o.
func (d Double[T]) Ne(o Double[T]) DoubleMask[T] {
	return doubleOpsFor[T]().eq(d, o).Not()
}

// Lt returns the mask of lanes where d < o.
func (d Double[T]) Lt(o Double[T]) DoubleMask[T] {
	return doubleOpsFor[T]().lt(d, o)
}

// Le returns the mask of lanes where d <= o.
func (d Double[T]) Le(o Double[T]) DoubleMask[T] {
	return doubleOpsFor[T]().le(d, o)
}

// Gt returns the mask of lanes where d > o.
func (d Double[T]) Gt(o Double[T]) DoubleMask[T] {
	return doubleOpsFor[T]().gt(d, o)
}

// Ge returns the mask of lanes where d >= o.
func (d Double[T]) Ge(o Double[T]) DoubleMask[T] {
	return doubleOpsFor[T]().ge(d, o)
}

// Equal reports whether each lane of d equals the same lane of o.
// It agrees with d == o.
func (d Double[T]) Equal(o Double[T]) bool {
	return doubleOpsFor[T]().eq(d, o).All()
}

// PartialCompare orders d and o lexicographically; see Quad.PartialCompare.
func (d Double[T]) PartialCompare(o Double[T]) (ord Ordering, ok bool) {
	return doubleOpsFor[T]().partialCmp(d, o)
}

// Hash returns a hash of the lane bit patterns; see Quad.Hash.
func (d Double[T]) Hash(seed maphash.Seed) uint64 {
	return hashLanes(seed, d.v[:])
}

// Swap exchanges the two lanes.
func (d Double[T]) Swap() Double[T] {
	return Double[T]{v: [2]T{d.v[1], d.v[0]}}
}

// widen places d in the low half of a Quad and fills the high half with pad.
func (d Double[T]) widen(pad T) Quad[T] {
	return Quad[T]{v: [4]T{d.v[0], d.v[1], pad, pad}}
}

// String formats d as Double(a, b).
func (d Double[T]) String() string {
	return fmt.Sprintf("Double(%v, %v)", d.v[0], d.v[1])
}

// DoubleSelect returns a's lane where m is set and b's lane elsewhere.
func DoubleSelect[T Lanes](m DoubleMask[T], a, b Double[T]) Double[T] {
	return doubleOpsFor[T]().sel(m, a, b)
}

// DoubleSum adds every double in seq, starting from SplatDouble(0).
func DoubleSum[T Lanes](seq iter.Seq[Double[T]]) Double[T] {
	ops := doubleOpsFor[T]()
	var acc Double[T]
	for d := range seq {
		acc = ops.add(acc, d)
	}
	return acc
}

// DoubleProduct multiplies every double in seq, starting from SplatDouble(1).
func DoubleProduct[T Lanes](seq iter.Seq[Double[T]]) Double[T] {
	ops := doubleOpsFor[T]()
	acc := SplatDouble(T(1))
	for d := range seq {
		acc = ops.mul(acc, d)
	}
	return acc
}

// DoubleAnd returns a & b.
func DoubleAnd[T Integers](a, b Double[T]) Double[T] {
	return doubleIntOpsFor[T]().and(a, b)
}

// DoubleOr returns a | b.
func DoubleOr[T Integers](a, b Double[T]) Double[T] {
	return doubleIntOpsFor[T]().or(a, b)
}

// DoubleXor returns a ^ b.
func DoubleXor[T Integers](a, b Double[T]) Double[T] {
	return doubleIntOpsFor[T]().xor(a, b)
}

// DoubleAndNot returns a &^ b.
func DoubleAndNot[T Integers](a, b Double[T]) Double[T] {
	return doubleIntOpsFor[T]().andNot(a, b)
}

// DoubleNot returns ^a.
func DoubleNot[T Integers](a Double[T]) Double[T] {
	return doubleIntOpsFor[T]().not(a)
}

// DoubleShl shifts each lane of a left by the matching lane of b.
// A negative count panics, as it does for a scalar shift.
func DoubleShl[T Integers](a, b Double[T]) Double[T] {
	return doubleIntOpsFor[T]().shl(a, b)
}

// DoubleShr shifts each lane of a right by the matching lane of b. Signed lanes
// shift arithmetically.
func DoubleShr[T Integers](a, b Double[T]) Double[T] {
	return doubleIntOpsFor[T]().shr(a, b)
}

// DoubleAndAssign sets *dst to *dst & o.
func DoubleAndAssign[T Integers](dst *Double[T], o Double[T]) {
	*dst = doubleIntOpsFor[T]().and(*dst, o)
}

// DoubleOrAssign sets *dst to *dst | o.
func DoubleOrAssign[T Integers](dst *Double[T], o Double[T]) {
	*dst = doubleIntOpsFor[T]().or(*dst, o)
}

// DoubleXorAssign sets *dst to *dst ^ o.
func DoubleXorAssign[T Integers](dst *Double[T], o Double[T]) {
	*dst = doubleIntOpsFor[T]().xor(*dst, o)
}

// DoubleShlAssign sets *dst to *dst << o.
func DoubleShlAssign[T Integers](dst *Double[T], o Double[T]) {
	*dst = doubleIntOpsFor[T]().shl(*dst, o)
}

// DoubleShrAssign sets *dst to *dst >> o.
func DoubleShrAssign[T Integers](dst *Double[T], o Double[T]) {
	*dst = doubleIntOpsFor[T]().shr(*dst, o)
}

// DoubleCompare orders a and b lexicographically. Integer lanes are always
// ordered, so the result is total.
func DoubleCompare[T Integers](a, b Double[T]) Ordering {
	return doubleIntOpsFor[T]().cmp(a, b)
}

// DoubleNeg returns -a. Float lanes flip their sign bit; integer lanes wrap.
func DoubleNeg[T Signed](a Double[T]) Double[T] {
	return doubleNegOpsFor[T]().neg(a)
}

// DoubleAbs returns |a|. Float lanes clear their sign bit; the minimum signed
// integer stays negative, as with scalar negation.
func DoubleAbs[T Signed](a Double[T]) Double[T] {
	return doubleNegOpsFor[T]().abs(a)
}

// DoubleRecip returns 1 / a.
func DoubleRecip[T Floats](a Double[T]) Double[T] {
	return doubleMathOpsFor[T]().recip(a)
}

// DoubleFloor rounds both lanes toward negative infinity.
func DoubleFloor[T Floats](a Double[T]) Double[T] {
	return doubleMathOpsFor[T]().floor(a)
}

// DoubleCeil rounds both lanes toward positive infinity.
func DoubleCeil[T Floats](a Double[T]) Double[T] {
	return doubleMathOpsFor[T]().ceil(a)
}

// DoubleRound rounds both lanes to the nearest integer, half away from zero.
func DoubleRound[T Floats](a Double[T]) Double[T] {
	return doubleMathOpsFor[T]().round(a)
}

// DoubleSqrt returns the square root of both lanes.
func DoubleSqrt[T Floats](a Double[T]) Double[T] {
	return doubleMathOpsFor[T]().sqrt(a)
}
