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

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer lane types. Bitwise operations,
// shifts and the total order are only available for these.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for lane types with a negation: signed integers and
// floats.
type Signed interface {
	SignedInts | Floats
}

// Lanes is a constraint for every type that can be stored in a Double or Quad.
//
// Only the predeclared types themselves are eligible for a native backend.
// Named types built on them, such as `type Celsius float32`, always use the
// array backend.
type Lanes interface {
	Floats | Integers
}

// Ordering is the result of a lexicographic comparison of two tuples.
type Ordering int

const (
	// Less means the first tuple orders before the second.
	Less Ordering = -1
	// Equal means every lane pair compared equal.
	Equal Ordering = 0
	// Greater means the first tuple orders after the second.
	Greater Ordering = 1
)

// String returns "less", "equal" or "greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}
