// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

package seqbytes

import (
	"io"

	"github.com/pkg/errors"
)

//go:generate go run github.com/pk910/seqbytes/seqbytes-gen -output reader_gen.go

// Reader provides typed sequential reads over an io.ReadSeeker for callers
// that prefer concrete methods over the generic functions. The Reader holds
// no state of its own; the cursor lives in the wrapped source, so generic
// functions and Reader methods can be mixed freely on the same source.
//
// Go methods cannot take type parameters, so the typed method surface in
// reader_gen.go is produced by seqbytes-gen.
type Reader struct {
	src io.ReadSeeker
}

// NewReader returns a Reader over src. The source's current position is
// used as-is; nothing is read until the first method call.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src}
}

// Pos returns the source's current cursor position.
func (r *Reader) Pos() (int64, error) {
	pos, err := r.src.Seek(0, io.SeekCurrent)
	return pos, errors.Wrap(err, "seqbytes: querying source position")
}

// SetPos repositions the source's cursor relative to the start.
func (r *Reader) SetPos(pos int64) error {
	_, err := r.src.Seek(pos, io.SeekStart)
	return errors.Wrap(err, "seqbytes: seeking source")
}

// ShiftSlice reads the next n raw bytes, advancing the cursor by n.
func (r *Reader) ShiftSlice(n int) ([]byte, error) {
	return ShiftSlice(r.src, n)
}

// NextSlice reads the next n raw bytes without moving the cursor.
func (r *Reader) NextSlice(n int) ([]byte, error) {
	return NextSlice(r.src, n)
}

// ShiftString reads the next n bytes as a string, advancing the cursor by n.
func (r *Reader) ShiftString(n int) (string, error) {
	return ShiftString(r.src, n)
}

// NextString reads the next n bytes as a string without moving the cursor.
func (r *Reader) NextString(n int) (string, error) {
	return NextString(r.src, n)
}
