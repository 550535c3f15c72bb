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

package wire

import "encoding/binary"

// Writer builds an encoded message by appending tagged fields to an internal
// buffer. It performs no validation of field semantics; callers are expected
// to emit fields that match their schema. A Writer never fails.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded output. The returned slice aliases the Writer's
// internal buffer and is only valid until the next write
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of encoded bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset discards all written data, retaining the allocated buffer
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// WriteVarintField appends an unsigned integer field
func (w *Writer) WriteVarintField(fieldNumber uint32, value uint64) {
	w.writeTag(fieldNumber, TypeVarint)
	w.writeVarint(value)
}

// WriteBoolField appends a boolean field encoded as a 0/1 varint
func (w *Writer) WriteBoolField(fieldNumber uint32, value bool) {
	var tmp uint64
	if value {
		tmp = 1
	}
	w.WriteVarintField(fieldNumber, tmp)
}

// WriteSignedField appends a signed integer field using the zig-zag
// transform so that small negative values stay compact
func (w *Writer) WriteSignedField(fieldNumber uint32, value int64) {
	w.writeTag(fieldNumber, TypeVarint)
	w.writeVarint(zigzag(value))
}

// WriteBytesField appends a length-prefixed byte string field
func (w *Writer) WriteBytesField(fieldNumber uint32, data []byte) {
	w.writeTag(fieldNumber, TypeBytes)
	w.writeVarint(uint64(len(data)))
	w.buf = append(w.buf, data...)
}

// WriteStringField appends a length-prefixed UTF-8 string field
func (w *Writer) WriteStringField(fieldNumber uint32, value string) {
	w.writeTag(fieldNumber, TypeBytes)
	w.writeVarint(uint64(len(value)))
	w.buf = append(w.buf, value...)
}

// WriteFixed64Field appends an 8-byte little-endian field
func (w *Writer) WriteFixed64Field(fieldNumber uint32, value uint64) {
	w.writeTag(fieldNumber, TypeFixed64)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, value)
}

// WriteFixed32Field appends a 4-byte little-endian field
func (w *Writer) WriteFixed32Field(fieldNumber uint32, value uint32) {
	w.writeTag(fieldNumber, TypeFixed32)
	w.buf = binary.LittleEndian.AppendUint32(w.buf, value)
}

// WriteNestedField encodes a sub-message into a scratch Writer via the
// provided function and appends it as a length-prefixed field under the
// parent tag
func (w *Writer) WriteNestedField(fieldNumber uint32, encode func(*Writer)) {
	nested := NewWriter()
	encode(nested)
	w.WriteBytesField(fieldNumber, nested.Bytes())
}

func (w *Writer) writeTag(fieldNumber uint32, wireType WireType) {
	w.writeVarint(makeTag(fieldNumber, wireType))
}

// writeVarint appends a value in LEB128 form: little-endian base-128 groups
// with the high bit set on all but the final byte
func (w *Writer) writeVarint(value uint64) {
	for value >= 0x80 {
		w.buf = append(w.buf, byte(value)|0x80)
		value >>= 7
	}
	w.buf = append(w.buf, byte(value))
}
