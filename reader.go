// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

package seqbytes

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// readExact fills buf from src. A short read is reported as ErrUnexpectedEOF,
// any other source fault is returned wrapped. The source's cursor after a
// failed read is wherever the source left it; callers that need atomicity
// must snapshot and restore the position themselves.
func readExact(src io.Reader, buf []byte) error {
	if _, err := io.ReadFull(src, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrUnexpectedEOF
		}
		return errors.Wrap(err, "seqbytes: reading from source")
	}
	return nil
}

// unread rewinds src by n bytes after a successful read of n bytes.
func unread(src io.Seeker, n int) error {
	_, err := src.Seek(int64(-n), io.SeekCurrent)
	return errors.Wrap(err, "seqbytes: rewinding source")
}

// Shift reads the next Size[T]() bytes from src and decodes them in
// canonical (little-endian) order, advancing the source's cursor by the
// bytes consumed.
func Shift[T Number](src io.Reader) (T, error) {
	return ShiftOrder[T](src, binary.LittleEndian)
}

// ShiftOrder reads the next Size[T]() bytes from src and decodes them in
// the given byte order, advancing the source's cursor by the bytes consumed.
func ShiftOrder[T Number](src io.Reader, order binary.ByteOrder) (T, error) {
	var zero T
	buf := make([]byte, Size[T]())
	if err := readExact(src, buf); err != nil {
		return zero, err
	}
	return DecodeOrder[T](buf, order)
}

// Next decodes the next value like Shift but seeks the source back
// afterwards, leaving the cursor where it was.
func Next[T Number](src io.ReadSeeker) (T, error) {
	return NextOrder[T](src, binary.LittleEndian)
}

// NextOrder decodes the next value like ShiftOrder but seeks the source
// back afterwards, leaving the cursor where it was.
func NextOrder[T Number](src io.ReadSeeker, order binary.ByteOrder) (T, error) {
	v, err := ShiftOrder[T](src, order)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := unread(src, Size[T]()); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ShiftSlice reads the next n raw bytes from src, advancing the cursor by n.
// n == 0 succeeds with an empty slice and does not touch the source.
func ShiftSlice(src io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := readExact(src, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// NextSlice reads the next n raw bytes like ShiftSlice but seeks the source
// back afterwards, leaving the cursor where it was.
func NextSlice(src io.ReadSeeker, n int) ([]byte, error) {
	buf, err := ShiftSlice(src, n)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		if err := unread(src, n); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// ShiftString reads the next n bytes from src and returns them as a string,
// advancing the cursor by n. The bytes are taken verbatim; no encoding
// validation is applied.
func ShiftString(src io.Reader, n int) (string, error) {
	buf, err := ShiftSlice(src, n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// NextString reads the next n bytes as a string like ShiftString but leaves
// the cursor where it was.
func NextString(src io.ReadSeeker, n int) (string, error) {
	buf, err := NextSlice(src, n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
