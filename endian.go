// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

package seqbytes

import (
	"encoding/binary"
)

// DecodeOrder interprets b as the encoding of T under the given byte order.
// b must be exactly Size[T]() bytes, otherwise ErrInvalidWidth is returned.
// For 1-byte types both orders decode identically.
func DecodeOrder[T Number](b []byte, order binary.ByteOrder) (T, error) {
	var zero T
	if len(b) != Size[T]() {
		return zero, ErrInvalidWidth
	}

	var bits uint64
	switch len(b) {
	case 1:
		bits = uint64(b[0])
	case 2:
		bits = uint64(order.Uint16(b))
	case 4:
		bits = uint64(order.Uint32(b))
	case 8:
		bits = order.Uint64(b)
	}

	return fromBits[T](bits), nil
}

// EncodeOrder returns the encoding of v under the given byte order, always
// Size[T]() bytes long.
func EncodeOrder[T Number](v T, order binary.ByteOrder) []byte {
	bits := toBits(v)
	b := make([]byte, Size[T]())

	switch len(b) {
	case 1:
		b[0] = byte(bits)
	case 2:
		order.PutUint16(b, uint16(bits))
	case 4:
		order.PutUint32(b, uint32(bits))
	case 8:
		order.PutUint64(b, bits)
	}

	return b
}
