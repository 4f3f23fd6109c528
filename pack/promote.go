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

// Neither archsimd nor the NEON kernels have a separate two-lane type, so the
// native Double backends run on the four-lane backend. The operands are
// widened with two padding lanes, the four-lane operation runs, and the low
// two lanes are kept. Padding is zero, except where a zero could fault or
// produce a special value: division pads with one.

type promoted[T Lanes] struct {
	quad quadOps[T]
}

func (p promoted[T]) level() DispatchLevel { return p.quad.level() }

func (p promoted[T]) add(a, b Double[T]) Double[T] {
	return p.quad.add(a.widen(0), b.widen(0)).Low()
}

func (p promoted[T]) sub(a, b Double[T]) Double[T] {
	return p.quad.sub(a.widen(0), b.widen(0)).Low()
}

func (p promoted[T]) mul(a, b Double[T]) Double[T] {
	return p.quad.mul(a.widen(0), b.widen(0)).Low()
}

func (p promoted[T]) div(a, b Double[T]) Double[T] {
	return p.quad.div(a.widen(1), b.widen(1)).Low()
}

func (p promoted[T]) min(a, b Double[T]) Double[T] {
	return p.quad.min(a.widen(0), b.widen(0)).Low()
}

func (p promoted[T]) max(a, b Double[T]) Double[T] {
	return p.quad.max(a.widen(0), b.widen(0)).Low()
}

func (p promoted[T]) eq(a, b Double[T]) DoubleMask[T] {
	return narrowMask(p.quad.eq(a.widen(0), b.widen(0)))
}

func (p promoted[T]) lt(a, b Double[T]) DoubleMask[T] {
	return narrowMask(p.quad.lt(a.widen(0), b.widen(0)))
}

func (p promoted[T]) le(a, b Double[T]) DoubleMask[T] {
	return narrowMask(p.quad.le(a.widen(0), b.widen(0)))
}

func (p promoted[T]) gt(a, b Double[T]) DoubleMask[T] {
	return narrowMask(p.quad.gt(a.widen(0), b.widen(0)))
}

func (p promoted[T]) ge(a, b Double[T]) DoubleMask[T] {
	return narrowMask(p.quad.ge(a.widen(0), b.widen(0)))
}

// partialCmp relies on the padding lanes comparing equal, so they never
// decide the result.
func (p promoted[T]) partialCmp(a, b Double[T]) (Ordering, bool) {
	return p.quad.partialCmp(a.widen(0), b.widen(0))
}

func (p promoted[T]) sel(m DoubleMask[T], a, b Double[T]) Double[T] {
	return p.quad.sel(QuadMask[T]{bits: m.bits}, a.widen(0), b.widen(0)).Low()
}

type promotedInt[T Integers] struct {
	ints quadIntOps[T]
}

func (p promotedInt[T]) and(a, b Double[T]) Double[T] {
	return p.ints.and(a.widen(0), b.widen(0)).Low()
}

func (p promotedInt[T]) or(a, b Double[T]) Double[T] {
	return p.ints.or(a.widen(0), b.widen(0)).Low()
}

func (p promotedInt[T]) xor(a, b Double[T]) Double[T] {
	return p.ints.xor(a.widen(0), b.widen(0)).Low()
}

func (p promotedInt[T]) andNot(a, b Double[T]) Double[T] {
	return p.ints.andNot(a.widen(0), b.widen(0)).Low()
}

func (p promotedInt[T]) not(a Double[T]) Double[T] {
	return p.ints.not(a.widen(0)).Low()
}

func (p promotedInt[T]) shl(a, b Double[T]) Double[T] {
	return p.ints.shl(a.widen(0), b.widen(0)).Low()
}

func (p promotedInt[T]) shr(a, b Double[T]) Double[T] {
	return p.ints.shr(a.widen(0), b.widen(0)).Low()
}

func (p promotedInt[T]) cmp(a, b Double[T]) Ordering {
	return p.ints.cmp(a.widen(0), b.widen(0))
}

type promotedNeg[T Signed] struct {
	negs quadNegOps[T]
}

func (p promotedNeg[T]) neg(a Double[T]) Double[T] {
	return p.negs.neg(a.widen(0)).Low()
}

func (p promotedNeg[T]) abs(a Double[T]) Double[T] {
	return p.negs.abs(a.widen(0)).Low()
}

type promotedMath[T Floats] struct {
	maths quadMathOps[T]
}

func (p promotedMath[T]) recip(a Double[T]) Double[T] {
	return p.maths.recip(a.widen(1)).Low()
}

func (p promotedMath[T]) floor(a Double[T]) Double[T] {
	return p.maths.floor(a.widen(0)).Low()
}

func (p promotedMath[T]) ceil(a Double[T]) Double[T] {
	return p.maths.ceil(a.widen(0)).Low()
}

func (p promotedMath[T]) round(a Double[T]) Double[T] {
	return p.maths.round(a.widen(0)).Low()
}

func (p promotedMath[T]) sqrt(a Double[T]) Double[T] {
	return p.maths.sqrt(a.widen(0)).Low()
}

type promotedU[T UnsignedInts] struct {
	promoted[T]
	promotedInt[T]
}

type promotedS[T SignedInts] struct {
	promoted[T]
	promotedInt[T]
	promotedNeg[T]
}

type promotedF[T Floats] struct {
	promoted[T]
	promotedNeg[T]
	promotedMath[T]
}

func promoteU[T UnsignedInts](q quadOps[T]) promotedU[T] {
	return promotedU[T]{
		promoted[T]{q},
		promotedInt[T]{capability[quadIntOps[T]](q, "integer")},
	}
}

func promoteS[T SignedInts](q quadOps[T]) promotedS[T] {
	return promotedS[T]{
		promoted[T]{q},
		promotedInt[T]{capability[quadIntOps[T]](q, "integer")},
		promotedNeg[T]{capability[quadNegOps[T]](q, "signed")},
	}
}

func promoteF[T Floats](q quadOps[T]) promotedF[T] {
	return promotedF[T]{
		promoted[T]{q},
		promotedNeg[T]{capability[quadNegOps[T]](q, "signed")},
		promotedMath[T]{capability[quadMathOps[T]](q, "float")},
	}
}

func narrowMask[T Lanes](m QuadMask[T]) DoubleMask[T] {
	return DoubleMask[T]{bits: m.bits & 0b11}
}
