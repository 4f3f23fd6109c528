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

//go:build !arm64 || noasm

package asm

import "unsafe"

// Stub implementations for non-ARM64 or noasm builds.
// These should never be called: the pack package only selects the NEON
// backend on arm64.

func add_f32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func sub_f32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func mul_f32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func div_f32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func add_i32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func sub_i32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func mul_i32x4(a, b, dst unsafe.Pointer)    { panic("NEON not available") }
func and_b128(a, b, dst unsafe.Pointer)     { panic("NEON not available") }
func orr_b128(a, b, dst unsafe.Pointer)     { panic("NEON not available") }
func eor_b128(a, b, dst unsafe.Pointer)     { panic("NEON not available") }
func cmeq_i32x4(a, b, dst unsafe.Pointer)   { panic("NEON not available") }
func cmgt_s32x4(a, b, dst unsafe.Pointer)   { panic("NEON not available") }
func fcmeq_f32x4(a, b, dst unsafe.Pointer)  { panic("NEON not available") }
func fcmgt_f32x4(a, b, dst unsafe.Pointer)  { panic("NEON not available") }
func fcmge_f32x4(a, b, dst unsafe.Pointer)  { panic("NEON not available") }

func fsqrt_f32x4(a, dst unsafe.Pointer)     { panic("NEON not available") }
func frintm_f32x4(a, dst unsafe.Pointer)    { panic("NEON not available") }
func frintp_f32x4(a, dst unsafe.Pointer)    { panic("NEON not available") }
func frinta_f32x4(a, dst unsafe.Pointer)    { panic("NEON not available") }
func abs_i32x4(a, dst unsafe.Pointer)       { panic("NEON not available") }
func neg_i32x4(a, dst unsafe.Pointer)       { panic("NEON not available") }

func bsl_b128(mask, a, b, dst unsafe.Pointer) { panic("NEON not available") }
