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

// Quad is a tuple of four lanes of T.
//
// A Quad behaves exactly like a [4]T: lanes keep their order, == compares
// lane by lane, and the zero value has every lane zero. Arithmetic and
// comparisons run on whichever backend the capability table selected for T.
// Quads are plain values and are safe to copy and share between goroutines.
type Quad[T Lanes] struct {
	v [4]T
}

// NewQuad creates a Quad holding the given lanes.
func NewQuad[T Lanes](lanes [4]T) Quad[T] {
	return Quad[T]{v: lanes}
}

// SplatQuad creates a Quad with every lane set to v.
func SplatQuad[T Lanes](v T) Quad[T] {
	return Quad[T]{v: [4]T{v, v, v, v}}
}

// Array returns the lanes as an array.
func (q Quad[T]) Array() [4]T {
	return q.v
}

// Lane returns lane i. It panics if i is out of range.
func (q Quad[T]) Lane(i int) T {
	return q.v[i]
}

// SetLane sets lane i to v. It panics if i is out of range.
func (q *Quad[T]) SetLane(i int, v T) {
	q.v[i] = v
}

// LanePtr returns a pointer to lane i. It panics if i is out of range.
func (q *Quad[T]) LanePtr(i int) *T {
	return &q.v[i]
}

// Add returns q + o lane by lane.
func (q Quad[T]) Add(o Quad[T]) Quad[T] {
	return quadOpsFor[T]().add(q, o)
}

// Sub returns q - o lane by lane.
func (q Quad[T]) Sub(o Quad[T]) Quad[T] {
	return quadOpsFor[T]().sub(q, o)
}

// Mul returns q * o lane by lane.
func (q Quad[T]) Mul(o Quad[T]) Quad[T] {
	return quadOpsFor[T]().mul(q, o)
}

// Div returns q / o lane by lane. Integer division by zero panics exactly as
// it does for a scalar.
func (q Quad[T]) Div(o Quad[T]) Quad[T] {
	return quadOpsFor[T]().div(q, o)
}

// AddAssign sets q to q + o.
func (q *Quad[T]) AddAssign(o Quad[T]) {
	*q = quadOpsFor[T]().add(*q, o)
}

// SubAssign sets q to q - o.
func (q *Quad[T]) SubAssign(o Quad[T]) {
	*q = quadOpsFor[T]().sub(*q, o)
}

// MulAssign sets q to q * o.
func (q *Quad[T]) MulAssign(o Quad[T]) {
	*q = quadOpsFor[T]().mul(*q, o)
}

// DivAssign sets q to q / o.
func (q *Quad[T]) DivAssign(o Quad[T]) {
	*q = quadOpsFor[T]().div(*q, o)
}

// Min returns, for each lane, o if o is less than q and q otherwise.
// A NaN in either lane keeps q's lane.
func (q Quad[T]) Min(o Quad[T]) Quad[T] {
	return quadOpsFor[T]().min(q, o)
}

// Max returns, for each lane, o if o is greater than q and q otherwise.
func (q Quad[T]) Max(o Quad[T]) Quad[T] {
	return quadOpsFor[T]().max(q, o)
}

// Clamp limits every lane to [lo, hi].
func (q Quad[T]) Clamp(lo, hi Quad[T]) Quad[T] {
	ops := quadOpsFor[T]()
	return ops.min(ops.max(q, lo), hi)
}

// Eq returns the mask of lanes where q == o.
func (q Quad[T]) Eq(o Quad[T]) QuadMask[T] {
	return quadOpsFor[T]().eq(q, o)
}

// Ne returns the mask of lanes where q != o.
func (q Quad[T]) Ne(o Quad[T]) QuadMask[T] {
	return quadOpsFor[T]().eq(q, o).Not()
}

// Lt returns the mask of lanes where q < o.
func (q Quad[T]) Lt(o Quad[T]) QuadMask[T] {
	return quadOpsFor[T]().lt(q, o)
}

// Le returns the mask of lanes where q <= o.
func (q Quad[T]) Le(o Quad[T]) QuadMask[T] {
	return quadOpsFor[T]().le(q, o)
}

// Gt returns the mask of lanes where q > o.
func (q Quad[T]) Gt(o Quad[T]) QuadMask[T] {
	return quadOpsFor[T]().gt(q, o)
}

// Ge returns the mask of lanes where q >= o.
func (q Quad[T]) Ge(o Quad[T]) QuadMask[T] {
	return quadOpsFor[T]().ge(q, o)
}

// Equal reports whether every lane of q equals the same lane of o.
// It agrees with q == o.
func (q Quad[T]) Equal(o Quad[T]) bool {
	return quadOpsFor[T]().eq(q, o).All()
}

// PartialCompare orders q and o lexicographically. The first lane that
// differs decides. ok is false when a lane pair is unordered, which only
// happens for NaN float lanes.
func (q Quad[T]) PartialCompare(o Quad[T]) (ord Ordering, ok bool) {
	return quadOpsFor[T]().partialCmp(q, o)
}

// Hash returns a hash of the lane bit patterns. It is stable for a given seed,
// NaN lanes included, and quads that are Equal hash equally.
func (q Quad[T]) Hash(seed maphash.Seed) uint64 {
	return hashLanes(seed, q.v[:])
}

// Low returns lanes 0 and 1.
func (q Quad[T]) Low() Double[T] {
	return Double[T]{v: [2]T{q.v[0], q.v[1]}}
}

// High returns lanes 2 and 3.
func (q Quad[T]) High() Double[T] {
	return Double[T]{v: [2]T{q.v[2], q.v[3]}}
}

// FromHalves joins two doubles into a quad: lo fills lanes 0 and 1, hi fills
// lanes 2 and 3.
func FromHalves[T Lanes](lo, hi Double[T]) Quad[T] {
	return Quad[T]{v: [4]T{lo.v[0], lo.v[1], hi.v[0], hi.v[1]}}
}

// String formats q as Quad(a, b, c, d).
func (q Quad[T]) String() string {
	return fmt.Sprintf("Quad(%v, %v, %v, %v)", q.v[0], q.v[1], q.v[2], q.v[3])
}

// QuadSelect returns a's lane where m is set and b's lane elsewhere.
func QuadSelect[T Lanes](m QuadMask[T], a, b Quad[T]) Quad[T] {
	return quadOpsFor[T]().sel(m, a, b)
}

// QuadSum adds every quad in seq, starting from SplatQuad(0).
func QuadSum[T Lanes](seq iter.Seq[Quad[T]]) Quad[T] {
	ops := quadOpsFor[T]()
	var acc Quad[T]
	for q := range seq {
		acc = ops.add(acc, q)
	}
	return acc
}

// QuadProduct multiplies every quad in seq, starting from SplatQuad(1).
func QuadProduct[T Lanes](seq iter.Seq[Quad[T]]) Quad[T] {
	ops := quadOpsFor[T]()
	acc := SplatQuad(T(1))
	for q := range seq {
		acc = ops.mul(acc, q)
	}
	return acc
}

// Integer operations. Go methods cannot narrow the type parameter, so these
// are functions; calling them with a float Quad does not compile.

// QuadAnd returns a & b.
func QuadAnd[T Integers](a, b Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().and(a, b)
}

// QuadOr returns a | b.
func QuadOr[T Integers](a, b Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().or(a, b)
}

// QuadXor returns a ^ b.
func QuadXor[T Integers](a, b Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().xor(a, b)
}

// QuadAndNot returns a &^ b.
func QuadAndNot[T Integers](a, b Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().andNot(a, b)
}

// QuadNot returns ^a.
func QuadNot[T Integers](a Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().not(a)
}

// QuadShl shifts each lane of a left by the matching lane of b.
// A negative count panics, as it does for a scalar shift.
func QuadShl[T Integers](a, b Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().shl(a, b)
}

// QuadShr shifts each lane of a right by the matching lane of b. Signed lanes
// shift arithmetically.
func QuadShr[T Integers](a, b Quad[T]) Quad[T] {
	return quadIntOpsFor[T]().shr(a, b)
}

// QuadAndAssign sets *dst to *dst & o.
func QuadAndAssign[T Integers](dst *Quad[T], o Quad[T]) {
	*dst = quadIntOpsFor[T]().and(*dst, o)
}

// QuadOrAssign sets *dst to *dst | o.
func QuadOrAssign[T Integers](dst *Quad[T], o Quad[T]) {
	*dst = quadIntOpsFor[T]().or(*dst, o)
}

// QuadXorAssign sets *dst to *dst ^ o.
func QuadXorAssign[T Integers](dst *Quad[T], o Quad[T]) {
	*dst = quadIntOpsFor[T]().xor(*dst, o)
}

// QuadShlAssign sets *dst to *dst << o.
func QuadShlAssign[T Integers](dst *Quad[T], o Quad[T]) {
	*dst = quadIntOpsFor[T]().shl(*dst, o)
}

// QuadShrAssign sets *dst to *dst >> o.
func QuadShrAssign[T Integers](dst *Quad[T], o Quad[T]) {
	*dst = quadIntOpsFor[T]().shr(*dst, o)
}

// QuadCompare orders a and b lexicographically. Integer lanes are always
// ordered, so the result is total.
func QuadCompare[T Integers](a, b Quad[T]) Ordering {
	return quadIntOpsFor[T]().cmp(a, b)
}

// QuadNeg returns -a. Float lanes flip their sign bit; integer lanes wrap.
func QuadNeg[T Signed](a Quad[T]) Quad[T] {
	return quadNegOpsFor[T]().neg(a)
}

// QuadAbs returns |a|. Float lanes clear their sign bit; the minimum signed
// integer stays negative, as with scalar negation.
func QuadAbs[T Signed](a Quad[T]) Quad[T] {
	return quadNegOpsFor[T]().abs(a)
}

// QuadRecip returns 1 / a.
func QuadRecip[T Floats](a Quad[T]) Quad[T] {
	return quadMathOpsFor[T]().recip(a)
}

// QuadFloor rounds every lane toward negative infinity.
func QuadFloor[T Floats](a Quad[T]) Quad[T] {
	return quadMathOpsFor[T]().floor(a)
}

// QuadCeil rounds every lane toward positive infinity.
func QuadCeil[T Floats](a Quad[T]) Quad[T] {
	return quadMathOpsFor[T]().ceil(a)
}

// QuadRound rounds every lane to the nearest integer, half away from zero.
func QuadRound[T Floats](a Quad[T]) Quad[T] {
	return quadMathOpsFor[T]().round(a)
}

// QuadSqrt returns the square root of every lane.
func QuadSqrt[T Floats](a Quad[T]) Quad[T] {
	return quadMathOpsFor[T]().sqrt(a)
}
