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
	"math"
	"reflect"
)

// The array backend works lane by lane on the tuple's own array. It is the
// reference every native backend is tested against, and the backend for every
// element type or platform without a native entry.
//
// Each operation group is a separate type so that the capability table can
// compose exactly the groups an element type supports.

type arrayQuad[T Lanes] struct{}

func (arrayQuad[T]) level() DispatchLevel { return DispatchArray }

func (arrayQuad[T]) add(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] + b.v[i]
	}
	return r
}

func (arrayQuad[T]) sub(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] - b.v[i]
	}
	return r
}

func (arrayQuad[T]) mul(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] * b.v[i]
	}
	return r
}

func (arrayQuad[T]) div(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] / b.v[i]
	}
	return r
}

func (arrayQuad[T]) min(a, b Quad[T]) Quad[T] {
	r := a
	for i := range r.v {
		if b.v[i] < a.v[i] {
			r.v[i] = b.v[i]
		}
	}
	return r
}

func (arrayQuad[T]) max(a, b Quad[T]) Quad[T] {
	r := a
	for i := range r.v {
		if b.v[i] > a.v[i] {
			r.v[i] = b.v[i]
		}
	}
	return r
}

func (arrayQuad[T]) eq(a, b Quad[T]) QuadMask[T] {
	var m QuadMask[T]
	for i := range a.v {
		if a.v[i] == b.v[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

func (arrayQuad[T]) lt(a, b Quad[T]) QuadMask[T] {
	var m QuadMask[T]
	for i := range a.v {
		if a.v[i] < b.v[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

func (arrayQuad[T]) le(a, b Quad[T]) QuadMask[T] {
	var m QuadMask[T]
	for i := range a.v {
		if a.v[i] <= b.v[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

func (arrayQuad[T]) gt(a, b Quad[T]) QuadMask[T] {
	var m QuadMask[T]
	for i := range a.v {
		if a.v[i] > b.v[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

func (arrayQuad[T]) ge(a, b Quad[T]) QuadMask[T] {
	var m QuadMask[T]
	for i := range a.v {
		if a.v[i] >= b.v[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

func (arrayQuad[T]) partialCmp(a, b Quad[T]) (Ordering, bool) {
	return lexicalOrder(a.v[:], b.v[:])
}

func (arrayQuad[T]) sel(m QuadMask[T], a, b Quad[T]) Quad[T] {
	r := b
	for i := range r.v {
		if m.bits&(1<<i) != 0 {
			r.v[i] = a.v[i]
		}
	}
	return r
}

type arrayQuadInt[T Integers] struct{}

func (arrayQuadInt[T]) and(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] & b.v[i]
	}
	return r
}

func (arrayQuadInt[T]) or(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] | b.v[i]
	}
	return r
}

func (arrayQuadInt[T]) xor(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] ^ b.v[i]
	}
	return r
}

func (arrayQuadInt[T]) andNot(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] &^ b.v[i]
	}
	return r
}

func (arrayQuadInt[T]) not(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = ^a.v[i]
	}
	return r
}

func (arrayQuadInt[T]) shl(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] << b.v[i]
	}
	return r
}

func (arrayQuadInt[T]) shr(a, b Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = a.v[i] >> b.v[i]
	}
	return r
}

func (arrayQuadInt[T]) cmp(a, b Quad[T]) Ordering {
	o, _ := lexicalOrder(a.v[:], b.v[:])
	return o
}

type arrayQuadNeg[T Signed] struct{}

func (arrayQuadNeg[T]) neg(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = -a.v[i]
	}
	return r
}

func (arrayQuadNeg[T]) abs(a Quad[T]) Quad[T] {
	var r Quad[T]
	abs := absFunc[T]()
	for i := range r.v {
		r.v[i] = abs(a.v[i])
	}
	return r
}

type arrayQuadMath[T Floats] struct{}

func (arrayQuadMath[T]) recip(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = 1 / a.v[i]
	}
	return r
}

func (arrayQuadMath[T]) floor(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = T(math.Floor(float64(a.v[i])))
	}
	return r
}

func (arrayQuadMath[T]) ceil(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = T(math.Ceil(float64(a.v[i])))
	}
	return r
}

func (arrayQuadMath[T]) round(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = T(math.Round(float64(a.v[i])))
	}
	return r
}

// sqrt computes in float64 and rounds once; for float32 lanes that is the
// correctly rounded result a hardware square root gives.
func (arrayQuadMath[T]) sqrt(a Quad[T]) Quad[T] {
	var r Quad[T]
	for i := range r.v {
		r.v[i] = T(math.Sqrt(float64(a.v[i])))
	}
	return r
}

// Composites stored in the capability table, one per element category.

type arrayQuadU[T UnsignedInts] struct {
	arrayQuad[T]
	arrayQuadInt[T]
}

type arrayQuadS[T SignedInts] struct {
	arrayQuad[T]
	arrayQuadInt[T]
	arrayQuadNeg[T]
}

type arrayQuadF[T Floats] struct {
	arrayQuad[T]
	arrayQuadNeg[T]
	arrayQuadMath[T]
}

type arrayDouble[T Lanes] struct{}

func (arrayDouble[T]) level() DispatchLevel { return DispatchArray }

func (arrayDouble[T]) add(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] + b.v[0], a.v[1] + b.v[1]}}
}

func (arrayDouble[T]) sub(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] - b.v[0], a.v[1] - b.v[1]}}
}

func (arrayDouble[T]) mul(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] * b.v[0], a.v[1] * b.v[1]}}
}

func (arrayDouble[T]) div(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] / b.v[0], a.v[1] / b.v[1]}}
}

func (arrayDouble[T]) min(a, b Double[T]) Double[T] {
	r := a
	for i := range r.v {
		if b.v[i] < a.v[i] {
			r.v[i] = b.v[i]
		}
	}
	return r
}

func (arrayDouble[T]) max(a, b Double[T]) Double[T] {
	r := a
	for i := range r.v {
		if b.v[i] > a.v[i] {
			r.v[i] = b.v[i]
		}
	}
	return r
}

func (arrayDouble[T]) eq(a, b Double[T]) DoubleMask[T] {
	return NewDoubleMask[T]([2]bool{a.v[0] == b.v[0], a.v[1] == b.v[1]})
}

func (arrayDouble[T]) lt(a, b Double[T]) DoubleMask[T] {
	return NewDoubleMask[T]([2]bool{a.v[0] < b.v[0], a.v[1] < b.v[1]})
}

func (arrayDouble[T]) le(a, b Double[T]) DoubleMask[T] {
	return NewDoubleMask[T]([2]bool{a.v[0] <= b.v[0], a.v[1] <= b.v[1]})
}

func (arrayDouble[T]) gt(a, b Double[T]) DoubleMask[T] {
	return NewDoubleMask[T]([2]bool{a.v[0] > b.v[0], a.v[1] > b.v[1]})
}

func (arrayDouble[T]) ge(a, b Double[T]) DoubleMask[T] {
	return NewDoubleMask[T]([2]bool{a.v[0] >= b.v[0], a.v[1] >= b.v[1]})
}

func (arrayDouble[T]) partialCmp(a, b Double[T]) (Ordering, bool) {
	return lexicalOrder(a.v[:], b.v[:])
}

func (arrayDouble[T]) sel(m DoubleMask[T], a, b Double[T]) Double[T] {
	r := b
	for i := range r.v {
		if m.bits&(1<<i) != 0 {
			r.v[i] = a.v[i]
		}
	}
	return r
}

type arrayDoubleInt[T Integers] struct{}

func (arrayDoubleInt[T]) and(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] & b.v[0], a.v[1] & b.v[1]}}
}

func (arrayDoubleInt[T]) or(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] | b.v[0], a.v[1] | b.v[1]}}
}

func (arrayDoubleInt[T]) xor(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] ^ b.v[0], a.v[1] ^ b.v[1]}}
}

func (arrayDoubleInt[T]) andNot(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] &^ b.v[0], a.v[1] &^ b.v[1]}}
}

func (arrayDoubleInt[T]) not(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{^a.v[0], ^a.v[1]}}
}

func (arrayDoubleInt[T]) shl(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] << b.v[0], a.v[1] << b.v[1]}}
}

func (arrayDoubleInt[T]) shr(a, b Double[T]) Double[T] {
	return Double[T]{v: [2]T{a.v[0] >> b.v[0], a.v[1] >> b.v[1]}}
}

func (arrayDoubleInt[T]) cmp(a, b Double[T]) Ordering {
	o, _ := lexicalOrder(a.v[:], b.v[:])
	return o
}

type arrayDoubleNeg[T Signed] struct{}

func (arrayDoubleNeg[T]) neg(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{-a.v[0], -a.v[1]}}
}

func (arrayDoubleNeg[T]) abs(a Double[T]) Double[T] {
	abs := absFunc[T]()
	return Double[T]{v: [2]T{abs(a.v[0]), abs(a.v[1])}}
}

type arrayDoubleMath[T Floats] struct{}

func (arrayDoubleMath[T]) recip(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{1 / a.v[0], 1 / a.v[1]}}
}

func (arrayDoubleMath[T]) floor(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{T(math.Floor(float64(a.v[0]))), T(math.Floor(float64(a.v[1])))}}
}

func (arrayDoubleMath[T]) ceil(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{T(math.Ceil(float64(a.v[0]))), T(math.Ceil(float64(a.v[1])))}}
}

func (arrayDoubleMath[T]) round(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{T(math.Round(float64(a.v[0]))), T(math.Round(float64(a.v[1])))}}
}

func (arrayDoubleMath[T]) sqrt(a Double[T]) Double[T] {
	return Double[T]{v: [2]T{T(math.Sqrt(float64(a.v[0]))), T(math.Sqrt(float64(a.v[1])))}}
}

type arrayDoubleU[T UnsignedInts] struct {
	arrayDouble[T]
	arrayDoubleInt[T]
}

type arrayDoubleS[T SignedInts] struct {
	arrayDouble[T]
	arrayDoubleInt[T]
	arrayDoubleNeg[T]
}

type arrayDoubleF[T Floats] struct {
	arrayDouble[T]
	arrayDoubleNeg[T]
	arrayDoubleMath[T]
}

// lexicalOrder compares two equal-length lane slices in index order.
// A pair of lanes that is neither <, > nor == (a NaN) makes the result
// unordered.
func lexicalOrder[T Lanes](a, b []T) (Ordering, bool) {
	for i := range a {
		x, y := a[i], b[i]
		switch {
		case x < y:
			return Less, true
		case x > y:
			return Greater, true
		case x != y:
			return Equal, false
		}
	}
	return Equal, true
}

// absFunc returns the absolute value function for T. Float lanes clear the
// sign bit, matching the vector instructions bit for bit even for NaN;
// integer lanes wrap at the minimum value like Go's own negation.
func absFunc[T Signed]() func(T) T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return func(x T) T {
			return T(math.Float32frombits(math.Float32bits(float32(x)) &^ (1 << 31)))
		}
	case reflect.Float64:
		return func(x T) T {
			return T(math.Abs(float64(x)))
		}
	default:
		return func(x T) T {
			if x < 0 {
				return -x
			}
			return x
		}
	}
}
