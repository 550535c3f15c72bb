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
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/hashmesh-io/gohashmesh/wire"
)

var varintBoundaryTests = []uint64{
	0,
	127,
	128,
	math.MaxInt64,
	math.MaxUint64,
}

func TestVarintBoundaryRoundTrip(t *testing.T) {
	for _, value := range varintBoundaryTests {
		w := wire.NewWriter()
		w.WriteVarintField(1, value)
		r := wire.NewReader(w.Bytes())
		field, err := r.ReadField()
		if err != nil {
			t.Fatalf("unexpected error decoding varint %d: %s", value, err)
		}
		if field.Varint != value {
			t.Fatalf(
				"varint did not round-trip\n  got: %d\n  wanted: %d",
				field.Varint,
				value,
			)
		}
		if !r.Done() {
			t.Fatalf("expected reader to be exhausted after varint %d", value)
		}
	}
}

func TestVarintOverflow(t *testing.T) {
	// Eleven continuation bytes cannot fit in 64 bits
	data := bytes.Repeat([]byte{0xff}, 11)
	r := wire.NewReader(data)
	if _, err := r.ReadVarint(); !errors.Is(err, wire.ErrVarintOverflow) {
		t.Fatalf("expected varint overflow error, got: %v", err)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	for _, value := range []int64{0, -1, 1, -64, 63, math.MinInt64, math.MaxInt64} {
		w := wire.NewWriter()
		w.WriteSignedField(1, value)
		r := wire.NewReader(w.Bytes())
		field, err := r.ReadField()
		if err != nil {
			t.Fatalf("unexpected error decoding signed value %d: %s", value, err)
		}
		if field.Signed() != value {
			t.Fatalf(
				"signed value did not round-trip\n  got: %d\n  wanted: %d",
				field.Signed(),
				value,
			)
		}
	}
}

func TestFieldSequenceRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	w.WriteVarintField(1, 42)
	w.WriteBoolField(2, true)
	w.WriteSignedField(3, -7)
	w.WriteBytesField(4, []byte("payload"))
	w.WriteFixed64Field(5, 0xdeadbeef)
	w.WriteFixed32Field(6, 0xcafe)
	w.WriteNestedField(7, func(nested *wire.Writer) {
		nested.WriteVarintField(1, 99)
	})

	r := wire.NewReader(w.Bytes())

	field, err := r.ReadField()
	if err != nil || field.Number != 1 || field.Varint != 42 {
		t.Fatalf("unexpected field 1: %+v (error: %v)", field, err)
	}
	field, err = r.ReadField()
	if err != nil || field.Number != 2 || !field.Bool() {
		t.Fatalf("unexpected field 2: %+v (error: %v)", field, err)
	}
	field, err = r.ReadField()
	if err != nil || field.Number != 3 || field.Signed() != -7 {
		t.Fatalf("unexpected field 3: %+v (error: %v)", field, err)
	}
	field, err = r.ReadField()
	if err != nil || field.Number != 4 || string(field.Bytes) != "payload" {
		t.Fatalf("unexpected field 4: %+v (error: %v)", field, err)
	}
	field, err = r.ReadField()
	if err != nil || field.Number != 5 || field.Fixed64 != 0xdeadbeef {
		t.Fatalf("unexpected field 5: %+v (error: %v)", field, err)
	}
	field, err = r.ReadField()
	if err != nil || field.Number != 6 || field.Fixed32 != 0xcafe {
		t.Fatalf("unexpected field 6: %+v (error: %v)", field, err)
	}
	field, err = r.ReadField()
	if err != nil || field.Number != 7 {
		t.Fatalf("unexpected field 7: %+v (error: %v)", field, err)
	}
	nested := wire.NewReader(field.Bytes)
	nestedField, err := nested.ReadField()
	if err != nil || nestedField.Number != 1 || nestedField.Varint != 99 {
		t.Fatalf("unexpected nested field: %+v (error: %v)", nestedField, err)
	}
	if !r.Done() {
		t.Fatalf("expected reader to be exhausted, %d bytes remain", r.Remaining())
	}
}

func TestSkipUnknownField(t *testing.T) {
	// A recognized field followed by a field with an unknown number must
	// still decode once the unknown field is skipped
	w := wire.NewWriter()
	w.WriteVarintField(1, 7)
	w.WriteBytesField(12345, []byte("from a future schema"))
	w.WriteVarintField(2, 8)

	r := wire.NewReader(w.Bytes())
	var got []uint64
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			t.Fatalf("unexpected decode error: %s", err)
		}
		switch field.Number {
		case 1, 2:
			got = append(got, field.Varint)
		default:
			// Unknown field: payload already consumed by ReadField
		}
	}
	if len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Fatalf("unexpected recognized field values: %v", got)
	}
}

func TestSkipAdvancesCursor(t *testing.T) {
	w := wire.NewWriter()
	w.WriteBytesField(9, []byte("skipped"))
	w.WriteVarintField(1, 3)

	r := wire.NewReader(w.Bytes())
	// Consume only the first tag, then skip the payload
	tag, err := r.ReadVarint()
	if err != nil {
		t.Fatalf("unexpected error reading tag: %s", err)
	}
	if tag>>3 != 9 {
		t.Fatalf("unexpected field number: %d", tag>>3)
	}
	if err := r.Skip(wire.WireType(tag & 0x7)); err != nil {
		t.Fatalf("unexpected skip error: %s", err)
	}
	field, err := r.ReadField()
	if err != nil || field.Number != 1 || field.Varint != 3 {
		t.Fatalf("unexpected field after skip: %+v (error: %v)", field, err)
	}
}

func TestTruncatedInput(t *testing.T) {
	w := wire.NewWriter()
	w.WriteBytesField(1, []byte("truncate me"))
	encoded := w.Bytes()
	// Every strict prefix of a valid message must fail cleanly
	for i := 1; i < len(encoded); i++ {
		r := wire.NewReader(encoded[:i])
		if _, err := r.ReadField(); !errors.Is(err, wire.ErrUnexpectedEof) {
			t.Fatalf(
				"expected unexpected-EOF for %d-byte prefix, got: %v",
				i,
				err,
			)
		}
	}
}

func TestUnsupportedWireType(t *testing.T) {
	// Tag with wire type 3 (unsupported group type)
	r := wire.NewReader([]byte{0x0b})
	if _, err := r.ReadField(); !errors.Is(err, wire.ErrUnsupportedWireType) {
		t.Fatalf("expected unsupported wire type error, got: %v", err)
	}
}
