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

// Package pack provides Double and Quad, fixed-width tuples of two and four
// numeric lanes that behave like plain arrays but run on SIMD registers when
// the element type and CPU allow it.
//
// # Basic Usage
//
//	a := pack.NewQuad([4]float32{1, 2, 3, 4})
//	b := pack.SplatQuad[float32](2)
//	c := a.Mul(b)                // Quad(2, 4, 6, 8)
//	m := c.Gt(pack.SplatQuad[float32](5))
//	fmt.Println(m.Any(), m.All()) // true false
//
// # Backends
//
// Every element type is served by the array backend, a per-lane Go
// implementation. On amd64 builds with GOEXPERIMENT=simd and an AVX2 CPU,
// float32, int32 and uint32 tuples run on simd/archsimd 128-bit vectors. On
// arm64 they run on NEON kernels from the pack/asm package. Two-lane tuples
// use the four-lane registers with padding. All backends produce bit-identical
// results, down to the sign of zero and the payload of a NaN.
//
// The selection is made once, during package initialization. Setting
// BREADSIMD_NO_SIMD=1 or building with -tags noasm keeps every type on the
// array backend.
//
// # Capabilities
//
// Operations that only make sense for some element types are functions
// constrained on them: QuadAnd and QuadShl take Integers, QuadNeg takes Signed,
// QuadSqrt takes Floats. Using them with another element type does not
// compile. Float tuples have only a partial order (PartialCompare); integer
// tuples also have the total order QuadCompare.
package pack

//go:generate go run ../cmd/packgen -o table_gen.go --native-output native_gen.go
