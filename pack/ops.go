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

import "fmt"

// The operation set is split by capability. Every backend implements quadOps
// (or doubleOps); the integer, negation and float-math groups are implemented
// only for element types that have them, so a float backend has no bitwise
// methods at all. Construction, extraction and lane access are not part of
// these interfaces: a tuple's array layout is the spilled register image, so
// they behave the same on every backend.

// quadOps is implemented by every backend that holds four lanes of T.
type quadOps[T Lanes] interface {
	level() DispatchLevel
	add(a, b Quad[T]) Quad[T]
	sub(a, b Quad[T]) Quad[T]
	mul(a, b Quad[T]) Quad[T]
	div(a, b Quad[T]) Quad[T]
	min(a, b Quad[T]) Quad[T]
	max(a, b Quad[T]) Quad[T]
	eq(a, b Quad[T]) QuadMask[T]
	lt(a, b Quad[T]) QuadMask[T]
	le(a, b Quad[T]) QuadMask[T]
	gt(a, b Quad[T]) QuadMask[T]
	ge(a, b Quad[T]) QuadMask[T]
	partialCmp(a, b Quad[T]) (Ordering, bool)
	sel(m QuadMask[T], a, b Quad[T]) Quad[T]
}

// quadIntOps holds the integer-only operations.
type quadIntOps[T Integers] interface {
	and(a, b Quad[T]) Quad[T]
	or(a, b Quad[T]) Quad[T]
	xor(a, b Quad[T]) Quad[T]
	andNot(a, b Quad[T]) Quad[T]
	not(a Quad[T]) Quad[T]
	shl(a, b Quad[T]) Quad[T]
	shr(a, b Quad[T]) Quad[T]
	cmp(a, b Quad[T]) Ordering
}

// quadNegOps holds negation and absolute value.
type quadNegOps[T Signed] interface {
	neg(a Quad[T]) Quad[T]
	abs(a Quad[T]) Quad[T]
}

// quadMathOps holds the float rounding and root functions.
type quadMathOps[T Floats] interface {
	recip(a Quad[T]) Quad[T]
	floor(a Quad[T]) Quad[T]
	ceil(a Quad[T]) Quad[T]
	round(a Quad[T]) Quad[T]
	sqrt(a Quad[T]) Quad[T]
}

// doubleOps is implemented by every backend that holds two lanes of T.
type doubleOps[T Lanes] interface {
	level() DispatchLevel
	add(a, b Double[T]) Double[T]
	sub(a, b Double[T]) Double[T]
	mul(a, b Double[T]) Double[T]
	div(a, b Double[T]) Double[T]
	min(a, b Double[T]) Double[T]
	max(a, b Double[T]) Double[T]
	eq(a, b Double[T]) DoubleMask[T]
	lt(a, b Double[T]) DoubleMask[T]
	le(a, b Double[T]) DoubleMask[T]
	gt(a, b Double[T]) DoubleMask[T]
	ge(a, b Double[T]) DoubleMask[T]
	partialCmp(a, b Double[T]) (Ordering, bool)
	sel(m DoubleMask[T], a, b Double[T]) Double[T]
}

type doubleIntOps[T Integers] interface {
	and(a, b Double[T]) Double[T]
	or(a, b Double[T]) Double[T]
	xor(a, b Double[T]) Double[T]
	andNot(a, b Double[T]) Double[T]
	not(a Double[T]) Double[T]
	shl(a, b Double[T]) Double[T]
	shr(a, b Double[T]) Double[T]
	cmp(a, b Double[T]) Ordering
}

type doubleNegOps[T Signed] interface {
	neg(a Double[T]) Double[T]
	abs(a Double[T]) Double[T]
}

type doubleMathOps[T Floats] interface {
	recip(a Double[T]) Double[T]
	floor(a Double[T]) Double[T]
	ceil(a Double[T]) Double[T]
	round(a Double[T]) Double[T]
	sqrt(a Double[T]) Double[T]
}

// capability asserts that a table entry implements the operation group C.
// The public API only asks for groups the element type supports, so a failed
// assertion means the table was wired with the wrong backend.
func capability[C any](backend any, group string) C {
	c, ok := backend.(C)
	if !ok {
		panic(fmt.Sprintf("pack: backend %T has no %s operations", backend, group))
	}
	return c
}

// partialOrder derives a lexicographic ordering from per-lane <= and >= masks.
// The first lane that is not both <= and >= decides; a lane that is neither
// (a NaN) makes the tuples unordered.
func partialOrder(le, ge uint8, n int) (Ordering, bool) {
	for i := range n {
		bit := uint8(1) << i
		l, g := le&bit != 0, ge&bit != 0
		switch {
		case l && g:
			continue
		case l:
			return Less, true
		case g:
			return Greater, true
		default:
			return Equal, false
		}
	}
	return Equal, true
}

// totalOrder derives a lexicographic ordering from per-lane < and > masks.
func totalOrder(lt, gt uint8, n int) Ordering {
	for i := range n {
		bit := uint8(1) << i
		if lt&bit != 0 {
			return Less
		}
		if gt&bit != 0 {
			return Greater
		}
	}
	return Equal
}
