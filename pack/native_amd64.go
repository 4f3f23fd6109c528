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

//go:build goexperiment.simd && !noasm

package pack

import (
	"math"
	"simd/archsimd"
)

type (
	f32x4    = archsimd.Float32x4
	i32x4    = archsimd.Int32x4
	u32x4    = archsimd.Uint32x4
	mask32x4 = archsimd.Mask32x4
)

const nativeLevel = DispatchAVX2

func loadF32x4(a *[4]float32) f32x4 {
	return archsimd.LoadFloat32x4Slice(a[:])
}

func loadI32x4(a *[4]int32) i32x4 {
	return archsimd.LoadInt32x4Slice(a[:])
}

func loadU32x4(a *[4]uint32) u32x4 {
	return archsimd.LoadUint32x4Slice(a[:])
}

func maskFromBits(bits uint8) mask32x4 {
	return archsimd.Mask32x4FromBits(bits)
}

// The 128-bit rounding instruction has no half-away-from-zero mode, and the
// three directions are cheap enough per lane that all of them go through the
// scalar path to stay bit-identical with the array backend.

func floorF32x4(v f32x4) f32x4 {
	return mapF32x4(v, math.Floor)
}

func ceilF32x4(v f32x4) f32x4 {
	return mapF32x4(v, math.Ceil)
}

func roundF32x4(v f32x4) f32x4 {
	return mapF32x4(v, math.Round)
}

func mapF32x4(v f32x4, f func(float64) float64) f32x4 {
	var a [4]float32
	v.StoreSlice(a[:])
	for i := range a {
		a[i] = float32(f(float64(a[i])))
	}
	return loadF32x4(&a)
}

func negI32x4(v i32x4) i32x4 {
	return splatI32x4(0).Sub(v)
}

// absI32x4 uses the sign-mask identity |x| = (x ^ s) - s, s = x >> 31.
func absI32x4(v i32x4) i32x4 {
	s := v.ShiftAllRight(31)
	return v.Xor(s).Sub(s)
}
