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
	"os"
	"strconv"
)

// DispatchLevel identifies the backend family that runs tuple operations.
type DispatchLevel int

const (
	// DispatchArray indicates the per-lane Go implementation.
	DispatchArray DispatchLevel = iota

	// DispatchAVX2 indicates 128-bit archsimd vectors on an AVX2 machine.
	DispatchAVX2

	// DispatchNEON indicates 128-bit ARM NEON registers.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchArray:
		return "array"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the best level selected for this process.
// Set by init() in dispatch_*.go files, never changed afterwards.
var currentLevel DispatchLevel

// CurrentLevel returns the best backend family selected for this process.
// Individual element types may still use the array backend; see QuadLevel.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the name of CurrentLevel, for example "avx2" or "array".
func CurrentName() string {
	return currentLevel.String()
}

// QuadLevel reports which backend runs Quad[T] operations.
func QuadLevel[T Lanes]() DispatchLevel {
	return quadOpsFor[T]().level()
}

// DoubleLevel reports which backend runs Double[T] operations.
func DoubleLevel[T Lanes]() DispatchLevel {
	return doubleOpsFor[T]().level()
}

// NoSimdEnv checks if the BREADSIMD_NO_SIMD environment variable is set.
// When set, every element type uses the array backend regardless of CPU
// capabilities. The variable is read once, at package initialization.
func NoSimdEnv() bool {
	val := os.Getenv("BREADSIMD_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
