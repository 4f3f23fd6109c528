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

//go:build (amd64 && goexperiment.simd && !noasm) || (arm64 && !noasm)

package pack

import "math"

// This file implements the native backends once, against the 128-bit vector
// types f32x4, i32x4, u32x4 and mask32x4. native_amd64.go binds them to
// simd/archsimd and native_arm64.go to the NEON types in pack/asm; both
// expose the same method names, so the code below is shared.
//
// Vector constants are built inside the methods rather than in package
// variables: package initialization runs before the CPU check, and a vector
// load there could fault on a machine without the extension.
//
// registerNative, in native_gen.go, installs these backends in the table.

func bitsOf(m mask32x4) uint8 {
	return uint8(m.ToBits()) & 0b1111
}

func splatI32x4(v int32) i32x4 {
	return loadI32x4(&[4]int32{v, v, v, v})
}

// ===== float32 =====

type nativeQuadF32 struct{}

func f32In(q Quad[float32]) f32x4 {
	return loadF32x4(&q.v)
}

func f32Out(v f32x4) Quad[float32] {
	var q Quad[float32]
	v.StoreSlice(q.v[:])
	return q
}

func (nativeQuadF32) level() DispatchLevel { return nativeLevel }

func (nativeQuadF32) add(a, b Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).Add(f32In(b)))
}

func (nativeQuadF32) sub(a, b Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).Sub(f32In(b)))
}

func (nativeQuadF32) mul(a, b Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).Mul(f32In(b)))
}

func (nativeQuadF32) div(a, b Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).Div(f32In(b)))
}

// min keeps a unless b < a, so a NaN in either operand yields a.
func (nativeQuadF32) min(a, b Quad[float32]) Quad[float32] {
	va, vb := f32In(a), f32In(b)
	return f32Out(vb.Merge(va, vb.Less(va)))
}

func (nativeQuadF32) max(a, b Quad[float32]) Quad[float32] {
	va, vb := f32In(a), f32In(b)
	return f32Out(vb.Merge(va, vb.Greater(va)))
}

func (nativeQuadF32) eq(a, b Quad[float32]) QuadMask[float32] {
	return QuadMask[float32]{bits: bitsOf(f32In(a).Equal(f32In(b)))}
}

func (nativeQuadF32) lt(a, b Quad[float32]) QuadMask[float32] {
	return QuadMask[float32]{bits: bitsOf(f32In(a).Less(f32In(b)))}
}

func (nativeQuadF32) le(a, b Quad[float32]) QuadMask[float32] {
	return QuadMask[float32]{bits: bitsOf(f32In(a).LessEqual(f32In(b)))}
}

func (nativeQuadF32) gt(a, b Quad[float32]) QuadMask[float32] {
	return QuadMask[float32]{bits: bitsOf(f32In(a).Greater(f32In(b)))}
}

func (nativeQuadF32) ge(a, b Quad[float32]) QuadMask[float32] {
	return QuadMask[float32]{bits: bitsOf(f32In(a).GreaterEqual(f32In(b)))}
}

func (nativeQuadF32) partialCmp(a, b Quad[float32]) (Ordering, bool) {
	va, vb := f32In(a), f32In(b)
	return partialOrder(bitsOf(va.LessEqual(vb)), bitsOf(va.GreaterEqual(vb)), 4)
}

func (nativeQuadF32) sel(m QuadMask[float32], a, b Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).Merge(f32In(b), maskFromBits(m.bits)))
}

// neg flips the sign bit, which is what Go's unary minus does for floats.
func (nativeQuadF32) neg(a Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).AsInt32x4().Xor(splatI32x4(math.MinInt32)).AsFloat32x4())
}

func (nativeQuadF32) abs(a Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).AsInt32x4().And(splatI32x4(math.MaxInt32)).AsFloat32x4())
}

func (nativeQuadF32) recip(a Quad[float32]) Quad[float32] {
	one := loadF32x4(&[4]float32{1, 1, 1, 1})
	return f32Out(one.Div(f32In(a)))
}

func (nativeQuadF32) floor(a Quad[float32]) Quad[float32] {
	return f32Out(floorF32x4(f32In(a)))
}

func (nativeQuadF32) ceil(a Quad[float32]) Quad[float32] {
	return f32Out(ceilF32x4(f32In(a)))
}

func (nativeQuadF32) round(a Quad[float32]) Quad[float32] {
	return f32Out(roundF32x4(f32In(a)))
}

func (nativeQuadF32) sqrt(a Quad[float32]) Quad[float32] {
	return f32Out(f32In(a).Sqrt())
}

// ===== int32 =====

type nativeQuadI32 struct{}

func i32In(q Quad[int32]) i32x4 {
	return loadI32x4(&q.v)
}

func i32Out(v i32x4) Quad[int32] {
	var q Quad[int32]
	v.StoreSlice(q.v[:])
	return q
}

func (nativeQuadI32) level() DispatchLevel { return nativeLevel }

func (nativeQuadI32) add(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Add(i32In(b)))
}

func (nativeQuadI32) sub(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Sub(i32In(b)))
}

func (nativeQuadI32) mul(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Mul(i32In(b)))
}

// div has no vector instruction on either architecture. The lanes are
// already laid out as an array, so this is the scalar loop.
func (nativeQuadI32) div(a, b Quad[int32]) Quad[int32] {
	return arrayQuad[int32]{}.div(a, b)
}

func (nativeQuadI32) min(a, b Quad[int32]) Quad[int32] {
	va, vb := i32In(a), i32In(b)
	return i32Out(vb.Merge(va, va.Greater(vb)))
}

func (nativeQuadI32) max(a, b Quad[int32]) Quad[int32] {
	va, vb := i32In(a), i32In(b)
	return i32Out(vb.Merge(va, vb.Greater(va)))
}

func (nativeQuadI32) eq(a, b Quad[int32]) QuadMask[int32] {
	return QuadMask[int32]{bits: bitsOf(i32In(a).Equal(i32In(b)))}
}

func (nativeQuadI32) lt(a, b Quad[int32]) QuadMask[int32] {
	return QuadMask[int32]{bits: bitsOf(i32In(b).Greater(i32In(a)))}
}

func (nativeQuadI32) le(a, b Quad[int32]) QuadMask[int32] {
	return QuadMask[int32]{bits: ^bitsOf(i32In(a).Greater(i32In(b))) & 0b1111}
}

func (nativeQuadI32) gt(a, b Quad[int32]) QuadMask[int32] {
	return QuadMask[int32]{bits: bitsOf(i32In(a).Greater(i32In(b)))}
}

func (nativeQuadI32) ge(a, b Quad[int32]) QuadMask[int32] {
	return QuadMask[int32]{bits: ^bitsOf(i32In(b).Greater(i32In(a))) & 0b1111}
}

func (q nativeQuadI32) partialCmp(a, b Quad[int32]) (Ordering, bool) {
	return q.cmp(a, b), true
}

func (nativeQuadI32) sel(m QuadMask[int32], a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Merge(i32In(b), maskFromBits(m.bits)))
}

func (nativeQuadI32) and(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).And(i32In(b)))
}

func (nativeQuadI32) or(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Or(i32In(b)))
}

func (nativeQuadI32) xor(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Xor(i32In(b)))
}

func (nativeQuadI32) andNot(a, b Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).And(i32In(b).Xor(splatI32x4(-1))))
}

func (nativeQuadI32) not(a Quad[int32]) Quad[int32] {
	return i32Out(i32In(a).Xor(splatI32x4(-1)))
}

// Shifts take a per-lane count with Go semantics (a negative count panics,
// counts of 32 or more saturate), which no single instruction provides.
func (nativeQuadI32) shl(a, b Quad[int32]) Quad[int32] {
	return arrayQuadInt[int32]{}.shl(a, b)
}

func (nativeQuadI32) shr(a, b Quad[int32]) Quad[int32] {
	return arrayQuadInt[int32]{}.shr(a, b)
}

func (nativeQuadI32) cmp(a, b Quad[int32]) Ordering {
	va, vb := i32In(a), i32In(b)
	return totalOrder(bitsOf(vb.Greater(va)), bitsOf(va.Greater(vb)), 4)
}

func (nativeQuadI32) neg(a Quad[int32]) Quad[int32] {
	return i32Out(negI32x4(i32In(a)))
}

func (nativeQuadI32) abs(a Quad[int32]) Quad[int32] {
	return i32Out(absI32x4(i32In(a)))
}

// ===== uint32 =====

// Both architectures compare through the signed instruction. Flipping the
// top bit of each operand maps unsigned order onto signed order.

type nativeQuadU32 struct{}

func u32In(q Quad[uint32]) u32x4 {
	return loadU32x4(&q.v)
}

func u32Out(v u32x4) Quad[uint32] {
	var q Quad[uint32]
	v.StoreSlice(q.v[:])
	return q
}

func u32Ordered(v u32x4) i32x4 {
	return v.Xor(loadU32x4(&[4]uint32{1 << 31, 1 << 31, 1 << 31, 1 << 31})).AsInt32x4()
}

func u32Greater(a, b u32x4) mask32x4 {
	return u32Ordered(a).Greater(u32Ordered(b))
}

func (nativeQuadU32) level() DispatchLevel { return nativeLevel }

func (nativeQuadU32) add(a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).Add(u32In(b)))
}

func (nativeQuadU32) sub(a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).Sub(u32In(b)))
}

func (nativeQuadU32) mul(a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).Mul(u32In(b)))
}

func (nativeQuadU32) div(a, b Quad[uint32]) Quad[uint32] {
	return arrayQuad[uint32]{}.div(a, b)
}

func (nativeQuadU32) min(a, b Quad[uint32]) Quad[uint32] {
	va, vb := u32In(a), u32In(b)
	return u32Out(vb.Merge(va, u32Greater(va, vb)))
}

func (nativeQuadU32) max(a, b Quad[uint32]) Quad[uint32] {
	va, vb := u32In(a), u32In(b)
	return u32Out(vb.Merge(va, u32Greater(vb, va)))
}

func (nativeQuadU32) eq(a, b Quad[uint32]) QuadMask[uint32] {
	return QuadMask[uint32]{bits: bitsOf(u32In(a).Equal(u32In(b)))}
}

func (nativeQuadU32) lt(a, b Quad[uint32]) QuadMask[uint32] {
	return QuadMask[uint32]{bits: bitsOf(u32Greater(u32In(b), u32In(a)))}
}

func (nativeQuadU32) le(a, b Quad[uint32]) QuadMask[uint32] {
	return QuadMask[uint32]{bits: ^bitsOf(u32Greater(u32In(a), u32In(b))) & 0b1111}
}

func (nativeQuadU32) gt(a, b Quad[uint32]) QuadMask[uint32] {
	return QuadMask[uint32]{bits: bitsOf(u32Greater(u32In(a), u32In(b)))}
}

func (nativeQuadU32) ge(a, b Quad[uint32]) QuadMask[uint32] {
	return QuadMask[uint32]{bits: ^bitsOf(u32Greater(u32In(b), u32In(a))) & 0b1111}
}

func (q nativeQuadU32) partialCmp(a, b Quad[uint32]) (Ordering, bool) {
	return q.cmp(a, b), true
}

func (nativeQuadU32) sel(m QuadMask[uint32], a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).Merge(u32In(b), maskFromBits(m.bits)))
}

func (nativeQuadU32) and(a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).And(u32In(b)))
}

func (nativeQuadU32) or(a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).Or(u32In(b)))
}

func (nativeQuadU32) xor(a, b Quad[uint32]) Quad[uint32] {
	return u32Out(u32In(a).Xor(u32In(b)))
}

func (nativeQuadU32) andNot(a, b Quad[uint32]) Quad[uint32] {
	ones := loadU32x4(&[4]uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32})
	return u32Out(u32In(a).And(u32In(b).Xor(ones)))
}

func (nativeQuadU32) not(a Quad[uint32]) Quad[uint32] {
	ones := loadU32x4(&[4]uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32})
	return u32Out(u32In(a).Xor(ones))
}

func (nativeQuadU32) shl(a, b Quad[uint32]) Quad[uint32] {
	return arrayQuadInt[uint32]{}.shl(a, b)
}

func (nativeQuadU32) shr(a, b Quad[uint32]) Quad[uint32] {
	return arrayQuadInt[uint32]{}.shr(a, b)
}

func (nativeQuadU32) cmp(a, b Quad[uint32]) Ordering {
	va, vb := u32In(a), u32In(b)
	return totalOrder(bitsOf(u32Greater(vb, va)), bitsOf(u32Greater(va, vb)), 4)
}
