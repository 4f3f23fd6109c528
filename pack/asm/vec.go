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

// Package asm provides 128-bit NEON vector types for arm64 with the method
// names of simd/archsimd, so the pack package can share one backend between
// both architectures.
//
// Each vector is a [16]byte held in memory; every operation loads its
// operands into V registers, runs one instruction and stores the result.
// The lane layout matches the Go array of the same element type.
//
// On other architectures, or with the noasm build tag, the loads, stores and
// mask conversions still work but every arithmetic method panics.
package asm

import (
	"fmt"
	"unsafe"
)

// Float32x4 represents a 128-bit NEON vector of 4 float32 values.
type Float32x4 [16]byte

// Int32x4 represents a 128-bit NEON vector of 4 int32 values.
type Int32x4 [16]byte

// Uint32x4 represents a 128-bit NEON vector of 4 uint32 values.
type Uint32x4 [16]byte

// Mask32x4 is a comparison result: each 32-bit lane is all ones or all zeros.
type Mask32x4 [16]byte

// ===== Loads and stores =====

// LoadFloat32x4 loads 4 float32 values.
func LoadFloat32x4(a *[4]float32) Float32x4 {
	return *(*Float32x4)(unsafe.Pointer(a))
}

// LoadInt32x4 loads 4 int32 values.
func LoadInt32x4(a *[4]int32) Int32x4 {
	return *(*Int32x4)(unsafe.Pointer(a))
}

// LoadUint32x4 loads 4 uint32 values.
func LoadUint32x4(a *[4]uint32) Uint32x4 {
	return *(*Uint32x4)(unsafe.Pointer(a))
}

// StoreSlice stores the vector to the first 4 elements of s.
// It panics if s is shorter than 4.
func (v Float32x4) StoreSlice(s []float32) {
	checkLen(len(s))
	*(*Float32x4)(unsafe.Pointer(&s[0])) = v
}

// StoreSlice stores the vector to the first 4 elements of s.
func (v Int32x4) StoreSlice(s []int32) {
	checkLen(len(s))
	*(*Int32x4)(unsafe.Pointer(&s[0])) = v
}

// StoreSlice stores the vector to the first 4 elements of s.
func (v Uint32x4) StoreSlice(s []uint32) {
	checkLen(len(s))
	*(*Uint32x4)(unsafe.Pointer(&s[0])) = v
}

func checkLen(n int) {
	if n < 4 {
		panic(fmt.Sprintf("asm: store of 4 lanes into slice of length %d", n))
	}
}

// ===== Reinterpretation =====

// AsInt32x4 reinterprets the bits of v.
func (v Float32x4) AsInt32x4() Int32x4 { return Int32x4(v) }

// AsFloat32x4 reinterprets the bits of v.
func (v Int32x4) AsFloat32x4() Float32x4 { return Float32x4(v) }

// AsUint32x4 reinterprets the bits of v.
func (v Int32x4) AsUint32x4() Uint32x4 { return Uint32x4(v) }

// AsInt32x4 reinterprets the bits of v.
func (v Uint32x4) AsInt32x4() Int32x4 { return Int32x4(v) }

// ===== Masks =====

// ToBits packs the mask into the low 4 bits, lane i in bit i.
// Only the top bit of each lane is read.
func (m Mask32x4) ToBits() uint8 {
	var bits uint8
	for i := range 4 {
		if m[4*i+3]&0x80 != 0 {
			bits |= 1 << i
		}
	}
	return bits
}

// Mask32x4FromBits expands the low 4 bits of bits into a lane mask.
func Mask32x4FromBits(bits uint8) Mask32x4 {
	var lanes [4]int32
	for i := range lanes {
		if bits&(1<<i) != 0 {
			lanes[i] = -1
		}
	}
	return *(*Mask32x4)(unsafe.Pointer(&lanes))
}

// ===== Float32x4 methods =====

// Add performs element-wise addition.
func (v Float32x4) Add(o Float32x4) (r Float32x4) {
	add_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(o Float32x4) (r Float32x4) {
	sub_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(o Float32x4) (r Float32x4) {
	mul_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Div performs element-wise division.
func (v Float32x4) Div(o Float32x4) (r Float32x4) {
	div_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Sqrt performs element-wise square root.
func (v Float32x4) Sqrt() (r Float32x4) {
	fsqrt_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&r))
	return r
}

// Floor rounds toward negative infinity (FRINTM).
func (v Float32x4) Floor() (r Float32x4) {
	frintm_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&r))
	return r
}

// Ceil rounds toward positive infinity (FRINTP).
func (v Float32x4) Ceil() (r Float32x4) {
	frintp_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&r))
	return r
}

// Round rounds to nearest with ties away from zero (FRINTA), like math.Round.
func (v Float32x4) Round() (r Float32x4) {
	frinta_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&r))
	return r
}

// Equal returns a mask of lanes where v == o (FCMEQ). NaN lanes are false.
func (v Float32x4) Equal(o Float32x4) (m Mask32x4) {
	fcmeq_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&m))
	return m
}

// Greater returns a mask of lanes where v > o (FCMGT).
func (v Float32x4) Greater(o Float32x4) (m Mask32x4) {
	fcmgt_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&m))
	return m
}

// GreaterEqual returns a mask of lanes where v >= o (FCMGE).
func (v Float32x4) GreaterEqual(o Float32x4) (m Mask32x4) {
	fcmge_f32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&m))
	return m
}

// Less is Greater with the operands swapped. NaN lanes are false either way.
func (v Float32x4) Less(o Float32x4) (m Mask32x4) {
	fcmgt_f32x4(unsafe.Pointer(&o), unsafe.Pointer(&v), unsafe.Pointer(&m))
	return m
}

// LessEqual is GreaterEqual with the operands swapped.
func (v Float32x4) LessEqual(o Float32x4) (m Mask32x4) {
	fcmge_f32x4(unsafe.Pointer(&o), unsafe.Pointer(&v), unsafe.Pointer(&m))
	return m
}

// Merge returns v where mask is set and o elsewhere.
func (v Float32x4) Merge(o Float32x4, mask Mask32x4) (r Float32x4) {
	bsl_b128(unsafe.Pointer(&mask), unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// ===== Int32x4 methods =====

// Add performs element-wise wrapping addition.
func (v Int32x4) Add(o Int32x4) (r Int32x4) {
	add_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Sub performs element-wise wrapping subtraction.
func (v Int32x4) Sub(o Int32x4) (r Int32x4) {
	sub_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Mul performs element-wise multiplication, keeping the low 32 bits.
func (v Int32x4) Mul(o Int32x4) (r Int32x4) {
	mul_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// And performs element-wise bitwise AND.
func (v Int32x4) And(o Int32x4) (r Int32x4) {
	and_b128(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Or performs element-wise bitwise OR.
func (v Int32x4) Or(o Int32x4) (r Int32x4) {
	orr_b128(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Xor performs element-wise bitwise XOR.
func (v Int32x4) Xor(o Int32x4) (r Int32x4) {
	eor_b128(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Neg negates every lane; the minimum int32 wraps to itself.
func (v Int32x4) Neg() (r Int32x4) {
	neg_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&r))
	return r
}

// Abs returns the absolute value of every lane; the minimum int32 stays
// negative.
func (v Int32x4) Abs() (r Int32x4) {
	abs_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&r))
	return r
}

// Equal returns a mask of lanes where v == o (CMEQ).
func (v Int32x4) Equal(o Int32x4) (m Mask32x4) {
	cmeq_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&m))
	return m
}

// Greater is a signed comparison.
func (v Int32x4) Greater(o Int32x4) (m Mask32x4) {
	cmgt_s32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&m))
	return m
}

// Less is the signed Greater with the operands swapped.
func (v Int32x4) Less(o Int32x4) (m Mask32x4) {
	cmgt_s32x4(unsafe.Pointer(&o), unsafe.Pointer(&v), unsafe.Pointer(&m))
	return m
}

// Merge returns v where mask is set and o elsewhere.
func (v Int32x4) Merge(o Int32x4, mask Mask32x4) (r Int32x4) {
	bsl_b128(unsafe.Pointer(&mask), unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// ===== Uint32x4 methods =====

// Add performs element-wise wrapping addition.
func (v Uint32x4) Add(o Uint32x4) (r Uint32x4) {
	add_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Sub performs element-wise wrapping subtraction.
func (v Uint32x4) Sub(o Uint32x4) (r Uint32x4) {
	sub_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Mul performs element-wise multiplication, keeping the low 32 bits.
func (v Uint32x4) Mul(o Uint32x4) (r Uint32x4) {
	mul_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// And performs element-wise bitwise AND.
func (v Uint32x4) And(o Uint32x4) (r Uint32x4) {
	and_b128(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Or performs element-wise bitwise OR.
func (v Uint32x4) Or(o Uint32x4) (r Uint32x4) {
	orr_b128(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Xor performs element-wise bitwise XOR.
func (v Uint32x4) Xor(o Uint32x4) (r Uint32x4) {
	eor_b128(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}

// Equal returns a mask of lanes where v == o (CMEQ).
func (v Uint32x4) Equal(o Uint32x4) (m Mask32x4) {
	cmeq_i32x4(unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&m))
	return m
}

// Merge returns v where mask is set and o elsewhere.
func (v Uint32x4) Merge(o Uint32x4, mask Mask32x4) (r Uint32x4) {
	bsl_b128(unsafe.Pointer(&mask), unsafe.Pointer(&v), unsafe.Pointer(&o), unsafe.Pointer(&r))
	return r
}
