// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

package seqbytes

import (
	"encoding/binary"
	"math"
)

// Decode interprets b as the canonical encoding of T and returns the value.
// The canonical order is little-endian. b must be exactly Size[T]() bytes,
// otherwise ErrInvalidWidth is returned.
func Decode[T Number](b []byte) (T, error) {
	return DecodeOrder[T](b, binary.LittleEndian)
}

// Encode returns the canonical (little-endian) encoding of v, always
// Size[T]() bytes long.
func Encode[T Number](v T) []byte {
	return EncodeOrder(v, binary.LittleEndian)
}

// fromBits reinterprets the low Size[T]() bytes of bits as a T. Floats are
// rebuilt from their IEEE 754 bit pattern, integers truncate to their width.
func fromBits[T Number](bits uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(bits))).(T)
	case float64:
		return any(math.Float64frombits(bits)).(T)
	default:
		return T(bits)
	}
}

// toBits is the inverse of fromBits. Signed values sign-extend into the
// unused high bytes, which the encoders never emit.
func toBits[T Number](v T) uint64 {
	switch t := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(t))
	case float64:
		return math.Float64bits(t)
	default:
		return uint64(v)
	}
}
