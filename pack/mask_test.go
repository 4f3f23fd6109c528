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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadMaskLaws(t *testing.T) {
	for ab := range 16 {
		for bb := range 16 {
			a := QuadMask[int32]{bits: uint8(ab)}
			b := QuadMask[int32]{bits: uint8(bb)}

			assert.Equal(t, a.Or(b).Not(), a.Not().And(b.Not()), "De Morgan: ^(a|b) == ^a & ^b for %04b, %04b", ab, bb)
			assert.Equal(t, a.And(b).Not(), a.Not().Or(b.Not()), "De Morgan: ^(a&b) == ^a | ^b for %04b, %04b", ab, bb)
			assert.Equal(t, a.And(b.Not()), a.AndNot(b))
			assert.Equal(t, a.Or(b).AndNot(a.And(b)), a.Xor(b))
		}

		m := QuadMask[float32]{bits: uint8(ab)}
		lanes := m.Array()
		allSet, anySet := true, false
		for _, set := range lanes {
			allSet = allSet && set
			anySet = anySet || set
		}
		assert.Equal(t, allSet, m.All(), "All(%04b)", ab)
		assert.Equal(t, anySet, m.Any(), "Any(%04b)", ab)
		assert.Equal(t, m, NewQuadMask[float32](lanes), "round trip %04b", ab)
		assert.Equal(t, m, m.Not().Not())
	}
}

func TestDoubleMaskLaws(t *testing.T) {
	for ab := range 4 {
		for bb := range 4 {
			a := DoubleMask[uint8]{bits: uint8(ab)}
			b := DoubleMask[uint8]{bits: uint8(bb)}
			assert.Equal(t, a.Or(b).Not(), a.Not().And(b.Not()))
			assert.Equal(t, a.And(b).Not(), a.Not().Or(b.Not()))
			assert.Equal(t, a.Xor(b), a.Or(b).AndNot(a.And(b)))
		}
		m := DoubleMask[uint8]{bits: uint8(ab)}
		assert.Equal(t, ab == 3, m.All())
		assert.Equal(t, ab != 0, m.Any())
		assert.Equal(t, m, NewDoubleMask[uint8](m.Array()))
		assert.Equal(t, uint8(ab), m.Bits())
	}
}

func TestMaskSplatAndSet(t *testing.T) {
	assert.True(t, SplatQuadMask[int8](true).All())
	assert.False(t, SplatQuadMask[int8](false).Any())
	assert.True(t, SplatDoubleMask[int8](true).All())
	assert.Equal(t, uint8(0b1111), SplatQuadMask[int8](true).Bits())

	var m QuadMask[uint64]
	m.Set(2, true)
	m.Set(0, true)
	m.Set(0, false)
	assert.Equal(t, [4]bool{false, false, true, false}, m.Array())
	assert.True(t, m.Test(2))
	assert.False(t, m.Test(3))

	var d DoubleMask[uint64]
	d.Set(1, true)
	assert.Equal(t, [2]bool{false, true}, d.Array())
	assert.True(t, d.Test(1))

	assert.PanicsWithValue(t, "pack: mask lane 4 out of range [0:4]", func() { m.Test(4) })
	assert.PanicsWithValue(t, "pack: mask lane -1 out of range [0:2]", func() { d.Set(-1, true) })
}

func TestMaskNotStaysInRange(t *testing.T) {
	// Not must not set bits beyond the lane count, or All would never hold.
	assert.Equal(t, uint8(0b1111), QuadMask[int16]{}.Not().Bits())
	assert.Equal(t, uint8(0b11), DoubleMask[int16]{}.Not().Bits())
	assert.True(t, DoubleMask[int16]{}.Not().All())
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "QuadMask(true, false, true, false)", NewQuadMask[int32]([4]bool{true, false, true, false}).String())
	assert.Equal(t, "DoubleMask(false, true)", NewDoubleMask[int32]([2]bool{false, true}).String())
}
