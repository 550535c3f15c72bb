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

// Package wire implements the tag-based, length-prefixed binary format used
// on the Hashmesh network. Each field is a tag byte sequence followed by a
// wire-type-specific payload. Integers use LEB128 varint encoding, with a
// zig-zag transform for signed values. Unknown field numbers can be skipped,
// so decoders remain compatible with newer schema revisions.
package wire

import "errors"

// WireType identifies the payload encoding that follows a field tag
type WireType uint8

const (
	TypeVarint  WireType = 0
	TypeFixed64 WireType = 1
	TypeBytes   WireType = 2
	TypeFixed32 WireType = 5
)

// maxVarintLen is the most bytes a single varint may occupy. Ten 7-bit
// groups are enough for any 64-bit value; an eleventh byte is an error.
const maxVarintLen = 10

var (
	ErrUnexpectedEof       = errors.New("unexpected end of input")
	ErrVarintOverflow      = errors.New("varint exceeds 64 bits")
	ErrUnsupportedWireType = errors.New("unsupported wire type")
)

func (w WireType) String() string {
	switch w {
	case TypeVarint:
		return "varint"
	case TypeFixed64:
		return "fixed64"
	case TypeBytes:
		return "bytes"
	case TypeFixed32:
		return "fixed32"
	}
	return "unknown"
}

// makeTag combines a field number and wire type into a tag value
func makeTag(fieldNumber uint32, wireType WireType) uint64 {
	return uint64(fieldNumber)<<3 | uint64(wireType)
}

// splitTag is the inverse of makeTag
func splitTag(tag uint64) (uint32, WireType) {
	return uint32(tag >> 3), WireType(tag & 0x7)
}

// zigzag maps signed integers onto unsigned ones so that values of small
// magnitude (positive or negative) produce short varints
func zigzag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// unzigzag is the inverse of zigzag
func unzigzag(n uint64) int64 {
	return int64(n>>1) ^ -int64(n&1)
}
