// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

package seqbytes_test

import (
	"encoding/hex"
	"strings"
)

func fromHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return b
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// errSource fails with err after serving the first bytes of data.
// It models a source reporting a transport fault mid-read.
type errSource struct {
	data []byte
	pos  int
	err  error
}

func (r *errSource) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, r.err
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *errSource) Seek(offset int64, whence int) (int64, error) {
	return 0, r.err
}
