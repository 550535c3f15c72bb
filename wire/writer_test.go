// Copyright 2025 Hashmesh Labs
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

package wire_test

import (
	"encoding/hex"
	"testing"

	"github.com/hashmesh-io/gohashmesh/wire"
)

type writerTestDefinition struct {
	ExpectedHex string
	Encode      func(w *wire.Writer)
}

var writerTests = []writerTestDefinition{
	// Single-byte varint
	{
		ExpectedHex: "087f",
		Encode: func(w *wire.Writer) {
			w.WriteVarintField(1, 127)
		},
	},
	// Two-byte varint (first value needing a continuation byte)
	{
		ExpectedHex: "088001",
		Encode: func(w *wire.Writer) {
			w.WriteVarintField(1, 128)
		},
	},
	// Boolean true
	{
		ExpectedHex: "1001",
		Encode: func(w *wire.Writer) {
			w.WriteBoolField(2, true)
		},
	},
	// Zig-zag: -1 encodes as 1
	{
		ExpectedHex: "1801",
		Encode: func(w *wire.Writer) {
			w.WriteSignedField(3, -1)
		},
	},
	// Length-prefixed bytes
	{
		ExpectedHex: "2203616263",
		Encode: func(w *wire.Writer) {
			w.WriteBytesField(4, []byte("abc"))
		},
	},
	// Nested message: field 1 varint 5 inside field 5
	{
		ExpectedHex: "2a020805",
		Encode: func(w *wire.Writer) {
			w.WriteNestedField(5, func(nested *wire.Writer) {
				nested.WriteVarintField(1, 5)
			})
		},
	},
	// Fixed-width fields are little-endian
	{
		ExpectedHex: "310100000000000000",
		Encode: func(w *wire.Writer) {
			w.WriteFixed64Field(6, 1)
		},
	},
	{
		ExpectedHex: "3d01000000",
		Encode: func(w *wire.Writer) {
			w.WriteFixed32Field(7, 1)
		},
	},
}

func TestWriter(t *testing.T) {
	for _, test := range writerTests {
		w := wire.NewWriter()
		test.Encode(w)
		encodedHex := hex.EncodeToString(w.Bytes())
		if encodedHex != test.ExpectedHex {
			t.Fatalf(
				"fields did not encode to expected bytes\n  got: %s\n  wanted: %s",
				encodedHex,
				test.ExpectedHex,
			)
		}
	}
}

func TestWriterReset(t *testing.T) {
	w := wire.NewWriter()
	w.WriteVarintField(1, 42)
	if w.Len() == 0 {
		t.Fatal("expected non-empty buffer before reset")
	}
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("expected empty buffer after reset, got %d bytes", w.Len())
	}
}
