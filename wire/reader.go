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

// Field is one decoded field. Exactly one of the payload members is
// populated, according to Type
type Field struct {
	Number  uint32
	Type    WireType
	Varint  uint64
	Fixed64 uint64
	Fixed32 uint32
	// Bytes aliases the Reader's input buffer rather than copying
	Bytes []byte
}

// Signed returns the field's varint payload with the zig-zag transform
// reversed
func (f Field) Signed() int64 {
	return unzigzag(f.Varint)
}

// Bool returns the field's varint payload as a boolean
func (f Field) Bool() bool {
	return f.Varint != 0
}

// Reader decodes fields from a borrowed byte slice. It holds no state
// beyond a cursor, and decoding is a pure function of the input bytes.
// The Reader never reads out of bounds; a truncated buffer produces
// ErrUnexpectedEof
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader over the provided bytes. The Reader borrows
// the slice and never modifies it
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Done reports whether the cursor has reached the end of the input
func (r *Reader) Done() bool {
	return r.pos >= len(r.data)
}

// Remaining returns the number of undecoded bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadField decodes the next field. Callers should check Done before
// calling; reading at end of input returns ErrUnexpectedEof
func (r *Reader) ReadField() (Field, error) {
	tag, err := r.ReadVarint()
	if err != nil {
		return Field{}, err
	}
	fieldNumber, wireType := splitTag(tag)
	field := Field{
		Number: fieldNumber,
		Type:   wireType,
	}
	switch wireType {
	case TypeVarint:
		field.Varint, err = r.ReadVarint()
	case TypeFixed64:
		field.Fixed64, err = r.readFixed64()
	case TypeBytes:
		field.Bytes, err = r.readBytes()
	case TypeFixed32:
		field.Fixed32, err = r.readFixed32()
	default:
		err = ErrUnsupportedWireType
	}
	if err != nil {
		return Field{}, err
	}
	return field, nil
}

// Skip advances past the payload of a field whose tag has already been
// consumed, without materializing it. This allows unknown field numbers
// from newer schema revisions to be ignored
func (r *Reader) Skip(wireType WireType) error {
	switch wireType {
	case TypeVarint:
		_, err := r.ReadVarint()
		return err
	case TypeFixed64:
		return r.advance(8)
	case TypeBytes:
		length, err := r.ReadVarint()
		if err != nil {
			return err
		}
		return r.advance(int(length))
	case TypeFixed32:
		return r.advance(4)
	}
	return ErrUnsupportedWireType
}

// ReadVarint decodes a single LEB128 varint. At most 10 bytes are consumed;
// longer sequences cannot fit in 64 bits and fail with ErrVarintOverflow
func (r *Reader) ReadVarint() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxVarintLen; i++ {
		if r.pos >= len(r.data) {
			return 0, ErrUnexpectedEof
		}
		currByte := r.data[r.pos]
		r.pos++
		result |= uint64(currByte&0x7f) << shift
		if currByte&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, ErrVarintOverflow
}

func (r *Reader) readFixed64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, ErrUnexpectedEof
	}
	result := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return result, nil
}

func (r *Reader) readFixed32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrUnexpectedEof
	}
	result := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return result, nil
}

func (r *Reader) readBytes() ([]byte, error) {
	length, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	if length > uint64(r.Remaining()) {
		return nil, ErrUnexpectedEof
	}
	result := r.data[r.pos : r.pos+int(length)]
	r.pos += int(length)
	return result, nil
}

func (r *Reader) advance(count int) error {
	if count < 0 || count > r.Remaining() {
		return ErrUnexpectedEof
	}
	r.pos += count
	return nil
}
