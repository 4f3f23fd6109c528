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

//go:build !noasm && arm64

package asm

import "unsafe"

// Kernels are in kernels_arm64.s. Each loads its operands from memory into
// V0 and V1, runs a single instruction into V2 and stores V2 to dst.

//go:noescape
func add_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func sub_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func mul_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func div_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func add_i32x4(a, b, dst unsafe.Pointer)

//go:noescape
func sub_i32x4(a, b, dst unsafe.Pointer)

//go:noescape
func mul_i32x4(a, b, dst unsafe.Pointer)

//go:noescape
func and_b128(a, b, dst unsafe.Pointer)

//go:noescape
func orr_b128(a, b, dst unsafe.Pointer)

//go:noescape
func eor_b128(a, b, dst unsafe.Pointer)

//go:noescape
func cmeq_i32x4(a, b, dst unsafe.Pointer)

//go:noescape
func cmgt_s32x4(a, b, dst unsafe.Pointer)

//go:noescape
func fcmeq_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func fcmgt_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func fcmge_f32x4(a, b, dst unsafe.Pointer)

//go:noescape
func fsqrt_f32x4(a, dst unsafe.Pointer)

//go:noescape
func frintm_f32x4(a, dst unsafe.Pointer)

//go:noescape
func frintp_f32x4(a, dst unsafe.Pointer)

//go:noescape
func frinta_f32x4(a, dst unsafe.Pointer)

//go:noescape
func abs_i32x4(a, dst unsafe.Pointer)

//go:noescape
func neg_i32x4(a, dst unsafe.Pointer)

// bsl_b128 stores a where mask is set and b elsewhere, bit by bit.
//
//go:noescape
func bsl_b128(mask, a, b, dst unsafe.Pointer)
