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

//go:build !noasm

package pack

import "github.com/notgull/breadsimd/pack/asm"

type (
	f32x4    = asm.Float32x4
	i32x4    = asm.Int32x4
	u32x4    = asm.Uint32x4
	mask32x4 = asm.Mask32x4
)

const nativeLevel = DispatchNEON

func loadF32x4(a *[4]float32) f32x4 {
	return asm.LoadFloat32x4(a)
}

func loadI32x4(a *[4]int32) i32x4 {
	return asm.LoadInt32x4(a)
}

func loadU32x4(a *[4]uint32) u32x4 {
	return asm.LoadUint32x4(a)
}

func maskFromBits(bits uint8) mask32x4 {
	return asm.Mask32x4FromBits(bits)
}

func floorF32x4(v f32x4) f32x4 { return v.Floor() }

func ceilF32x4(v f32x4) f32x4 { return v.Ceil() }

func roundF32x4(v f32x4) f32x4 { return v.Round() }

func negI32x4(v i32x4) i32x4 { return v.Neg() }

func absI32x4(v i32x4) i32x4 { return v.Abs() }
