// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the seqbytes library.

package seqbytes_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	. "github.com/pk910/seqbytes"
)

// runCodecTest checks the full codec contract for one value: canonical
// decode, canonical encode, big-endian duality over reversed bytes, and an
// explicit-order round trip.
func runCodecTest[T Number](t *testing.T, name string, data []byte, expected T) {
	t.Run(name, func(t *testing.T) {
		if len(data) != Size[T]() {
			t.Fatalf("test vector has %d bytes, type width is %d", len(data), Size[T]())
		}

		value, err := Decode[T](data)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if value != expected {
			t.Errorf("decoded %v, expected %v", value, expected)
		}

		if encoded := Encode(expected); !bytes.Equal(encoded, data) {
			t.Errorf("encoded 0x%x, expected 0x%x", encoded, data)
		}

		// little-endian and big-endian decoding are byte-reversed duals
		dual, err := DecodeOrder[T](reversed(data), binary.BigEndian)
		if err != nil {
			t.Fatalf("big-endian decode failed: %v", err)
		}
		if dual != expected {
			t.Errorf("big-endian decode of reversed bytes yielded %v, expected %v", dual, expected)
		}

		roundTrip, err := DecodeOrder[T](EncodeOrder(expected, binary.BigEndian), binary.BigEndian)
		if err != nil {
			t.Fatalf("round trip decode failed: %v", err)
		}
		if roundTrip != expected {
			t.Errorf("round trip yielded %v, expected %v", roundTrip, expected)
		}
	})
}

func TestCodec(t *testing.T) {
	runCodecTest(t, "uint8_min", fromHex("0x00"), uint8(0))
	runCodecTest(t, "uint8_max", fromHex("0xff"), uint8(255))
	runCodecTest(t, "uint8", fromHex("0x2a"), uint8(42))
	runCodecTest(t, "int8_neg", fromHex("0xff"), int8(-1))
	runCodecTest(t, "int8", fromHex("0x2a"), int8(42))
	runCodecTest(t, "uint16_min", fromHex("0x0000"), uint16(0))
	runCodecTest(t, "uint16_max", fromHex("0xffff"), uint16(65535))
	runCodecTest(t, "uint16", fromHex("0x3905"), uint16(1337))
	runCodecTest(t, "int16_neg", fromHex("0xfeff"), int16(-2))
	runCodecTest(t, "uint32_max", fromHex("0xffffffff"), uint32(4294967295))
	runCodecTest(t, "uint32", fromHex("0xe7c9b930"), uint32(817482215))
	runCodecTest(t, "int32_neg", fromHex("0x4560ffff"), int32(-40891))
	runCodecTest(t, "uint64_max", fromHex("0xffffffffffffffff"), uint64(18446744073709551615))
	runCodecTest(t, "uint64", fromHex("0x9c4f7572c5000000"), uint64(848028848028))
	runCodecTest(t, "int64_neg", fromHex("0xfeffffffffffffff"), int64(-2))
	runCodecTest(t, "float32", fromHex("0x0000c03f"), float32(1.5))
	runCodecTest(t, "float64", fromHex("0x6666666666663640"), float64(22.4))
}

func TestDecodeInvalidWidth(t *testing.T) {
	if _, err := Decode[uint32](fromHex("0x020406")); err != ErrInvalidWidth {
		t.Errorf("3-byte uint32 decode returned %v, expected ErrInvalidWidth", err)
	}
	if _, err := Decode[uint32](fromHex("0x0204060810")); err != ErrInvalidWidth {
		t.Errorf("5-byte uint32 decode returned %v, expected ErrInvalidWidth", err)
	}
	if _, err := Decode[uint8](nil); err != ErrInvalidWidth {
		t.Errorf("empty uint8 decode returned %v, expected ErrInvalidWidth", err)
	}
	if _, err := DecodeOrder[uint16](fromHex("0x00"), binary.BigEndian); err != ErrInvalidWidth {
		t.Errorf("1-byte uint16 decode returned %v, expected ErrInvalidWidth", err)
	}
}

// single byte types decode identically under both orders
func TestWidthOneOrderInvariance(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := []byte{byte(i)}

		le, err := DecodeOrder[uint8](b, binary.LittleEndian)
		if err != nil {
			t.Fatalf("little-endian decode failed: %v", err)
		}
		be, err := DecodeOrder[uint8](b, binary.BigEndian)
		if err != nil {
			t.Fatalf("big-endian decode failed: %v", err)
		}
		if le != be {
			t.Fatalf("uint8 0x%02x decodes differently per order: %d != %d", i, le, be)
		}

		sle, _ := DecodeOrder[int8](b, binary.LittleEndian)
		sbe, _ := DecodeOrder[int8](b, binary.BigEndian)
		if sle != sbe {
			t.Fatalf("int8 0x%02x decodes differently per order: %d != %d", i, sle, sbe)
		}
	}
}

func TestSize(t *testing.T) {
	sizeMatrix := []struct {
		name  string
		size  int
		width int
	}{
		{"uint8", Size[uint8](), 1},
		{"int8", Size[int8](), 1},
		{"uint16", Size[uint16](), 2},
		{"int16", Size[int16](), 2},
		{"uint32", Size[uint32](), 4},
		{"int32", Size[int32](), 4},
		{"float32", Size[float32](), 4},
		{"uint64", Size[uint64](), 8},
		{"int64", Size[int64](), 8},
		{"float64", Size[float64](), 8},
	}

	for _, tc := range sizeMatrix {
		if tc.size != tc.width {
			t.Errorf("Size[%s]() = %d, expected %d", tc.name, tc.size, tc.width)
		}
	}
}
