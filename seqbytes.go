// Package seqbytes provides sequential decoding of fixed-width binary values
// from byte sources. Instead of slicing buffers and tracking offsets by hand,
// callers ask for "the next value of type T" and the source's cursor advances
// by exactly the bytes consumed. Byte order defaults to little-endian and can
// be selected explicitly per read.
//
// The package works on the smallest capability a source can offer: consuming
// reads need only io.Reader, peeking reads need io.ReadSeeker. Any file,
// bytes.Reader or network buffer gains sequential decoding without adapter
// code.
//
// Example usage:
//
//	src := bytes.NewReader([]byte{69, 96, 255, 255, 'h', 'e', 'l', 'l', 'o'})
//
//	num, err := seqbytes.Shift[int32](src) // -40891
//	str, err := seqbytes.ShiftString(src, 5) // "hello"
//
// Copyright (c) 2025 by pk910. See LICENSE file for details.
package seqbytes

import (
	"unsafe"
)

// Number is the set of fixed-width numeric types this package can decode and
// encode. The set is exact types only: decoding dispatches on the concrete
// type to reinterpret float bit patterns, so named types with a numeric
// underlying type are intentionally excluded.
type Number interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

// Size returns the encoded byte width of T. The width is a static property
// of the type; every decode and encode of a T consumes or produces exactly
// this many bytes.
func Size[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
