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
	"strings"
)

// QuadMask is the result of comparing two Quad[T] values lane by lane.
// Bit i of the mask is lane i. T only ties the mask to the tuple type that
// produced it; a mask holds no lane values.
type QuadMask[T Lanes] struct {
	bits uint8
}

// NewQuadMask creates a mask from four booleans.
func NewQuadMask[T Lanes](lanes [4]bool) QuadMask[T] {
	var m QuadMask[T]
	for i, set := range lanes {
		if set {
			m.bits |= 1 << i
		}
	}
	return m
}

// SplatQuadMask creates a mask with every lane set to v.
func SplatQuadMask[T Lanes](v bool) QuadMask[T] {
	if v {
		return QuadMask[T]{bits: 0b1111}
	}
	return QuadMask[T]{}
}

// Array returns the lanes as booleans.
func (m QuadMask[T]) Array() [4]bool {
	var lanes [4]bool
	for i := range lanes {
		lanes[i] = m.bits&(1<<i) != 0
	}
	return lanes
}

// Bits returns the mask as a bit set, lane i in bit i.
func (m QuadMask[T]) Bits() uint8 {
	return m.bits
}

// Test reports whether lane i is set. It panics if i is out of range.
func (m QuadMask[T]) Test(i int) bool {
	checkLane(i, 4)
	return m.bits&(1<<i) != 0
}

// Set sets lane i to v. It panics if i is out of range.
func (m *QuadMask[T]) Set(i int, v bool) {
	checkLane(i, 4)
	if v {
		m.bits |= 1 << i
	} else {
		m.bits &^= 1 << i
	}
}

// All reports whether every lane is set.
func (m QuadMask[T]) All() bool {
	return m.bits == 0b1111
}

// Any reports whether at least one lane is set.
func (m QuadMask[T]) Any() bool {
	return m.bits != 0
}

// And returns the lanes set in both m and o.
func (m QuadMask[T]) And(o QuadMask[T]) QuadMask[T] {
	return QuadMask[T]{bits: m.bits & o.bits}
}

// Or returns the lanes set in m or o.
func (m QuadMask[T]) Or(o QuadMask[T]) QuadMask[T] {
	return QuadMask[T]{bits: m.bits | o.bits}
}

// Xor returns the lanes set in exactly one of m and o.
func (m QuadMask[T]) Xor(o QuadMask[T]) QuadMask[T] {
	return QuadMask[T]{bits: m.bits ^ o.bits}
}

// AndNot returns m & ^o.
func (m QuadMask[T]) AndNot(o QuadMask[T]) QuadMask[T] {
	return QuadMask[T]{bits: m.bits &^ o.bits}
}

// Not returns the lanes not set in m.
func (m QuadMask[T]) Not() QuadMask[T] {
	return QuadMask[T]{bits: ^m.bits & 0b1111}
}

// String formats m as QuadMask(true, false, ...).
func (m QuadMask[T]) String() string {
	lanes := m.Array()
	return formatMask("QuadMask", lanes[:])
}

// DoubleMask is the two-lane counterpart of QuadMask.
type DoubleMask[T Lanes] struct {
	bits uint8
}

// NewDoubleMask creates a mask from two booleans.
func NewDoubleMask[T Lanes](lanes [2]bool) DoubleMask[T] {
	var m DoubleMask[T]
	for i, set := range lanes {
		if set {
			m.bits |= 1 << i
		}
	}
	return m
}

// SplatDoubleMask creates a mask with both lanes set to v.
func SplatDoubleMask[T Lanes](v bool) DoubleMask[T] {
	if v {
		return DoubleMask[T]{bits: 0b11}
	}
	return DoubleMask[T]{}
}

// Array returns the lanes as booleans.
func (m DoubleMask[T]) Array() [2]bool {
	return [2]bool{m.bits&1 != 0, m.bits&2 != 0}
}

// Bits returns the mask as a bit set, lane i in bit i.
func (m DoubleMask[T]) Bits() uint8 {
	return m.bits
}

// Test reports whether lane i is set. It panics if i is out of range.
func (m DoubleMask[T]) Test(i int) bool {
	checkLane(i, 2)
	return m.bits&(1<<i) != 0
}

// Set sets lane i to v. It panics if i is out of range.
func (m *DoubleMask[T]) Set(i int, v bool) {
	checkLane(i, 2)
	if v {
		m.bits |= 1 << i
	} else {
		m.bits &^= 1 << i
	}
}

// All reports whether both lanes are set.
func (m DoubleMask[T]) All() bool {
	return m.bits == 0b11
}

// Any reports whether at least one lane is set.
func (m DoubleMask[T]) Any() bool {
	return m.bits != 0
}

// And returns the lanes set in both m and o.
func (m DoubleMask[T]) And(o DoubleMask[T]) DoubleMask[T] {
	return DoubleMask[T]{bits: m.bits & o.bits}
}

// Or returns the lanes set in m or o.
func (m DoubleMask[T]) Or(o DoubleMask[T]) DoubleMask[T] {
	return DoubleMask[T]{bits: m.bits | o.bits}
}

// Xor returns the lanes set in exactly one of m and o.
func (m DoubleMask[T]) Xor(o DoubleMask[T]) DoubleMask[T] {
	return DoubleMask[T]{bits: m.bits ^ o.bits}
}

// AndNot returns m & ^o.
func (m DoubleMask[T]) AndNot(o DoubleMask[T]) DoubleMask[T] {
	return DoubleMask[T]{bits: m.bits &^ o.bits}
}

// Not returns the lanes not set in m.
func (m DoubleMask[T]) Not() DoubleMask[T] {
	return DoubleMask[T]{bits: ^m.bits & 0b11}
}

// String formats m as DoubleMask(true, false).
func (m DoubleMask[T]) String() string {
	lanes := m.Array()
	return formatMask("DoubleMask", lanes[:])
}

// checkLane panics like an array index when i is outside [0, n).
func checkLane(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("pack: mask lane %d out of range [0:%d]", i, n))
	}
}

func formatMask(name string, lanes []bool) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, set := range lanes {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, set)
	}
	sb.WriteByte(')')
	return sb.String()
}
