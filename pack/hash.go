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
	"encoding/binary"
	"hash/maphash"
	"math"
	"reflect"
)

// hashLanes feeds the bit pattern of every lane to a seeded maphash.Hash.
// Float lanes hash their bits, so a NaN hashes the same on every call, and
// -0 is folded into +0 so that tuples that compare Equal hash equally.
func hashLanes[T Lanes](seed maphash.Seed, lanes []T) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	bits := laneBits[T]()
	var buf [8]byte
	for _, v := range lanes {
		binary.LittleEndian.PutUint64(buf[:], bits(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func laneBits[T Lanes]() func(T) uint64 {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return func(x T) uint64 {
			f := float32(x)
			if f == 0 {
				return 0
			}
			return uint64(math.Float32bits(f))
		}
	case reflect.Float64:
		return func(x T) uint64 {
			f := float64(x)
			if f == 0 {
				return 0
			}
			return math.Float64bits(f)
		}
	default:
		return func(x T) uint64 { return uint64(x) }
	}
}
