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

package transport

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// maxFramePayload bounds a frame so a misbehaving peer cannot force an
// arbitrarily large allocation
const maxFramePayload = 1 << 20

var ErrFrameTooLarge = errors.New("frame payload exceeds maximum size")

// frameHeader is the fixed 8-byte preamble of every frame
type frameHeader struct {
	PayloadLength uint32
	MessageType   uint16
	Reserved      uint16
}

// writeFrame writes one frame (header plus payload) to the connection
func writeFrame(w io.Writer, messageType uint16, payload []byte) error {
	if len(payload) > maxFramePayload {
		return ErrFrameTooLarge
	}
	header := frameHeader{
		PayloadLength: uint32(len(payload)),
		MessageType:   messageType,
	}
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, header); err != nil {
		return err
	}
	buf.Write(payload)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}
	return nil
}

// readFrame reads one frame from the connection, returning the message
// type and payload
func readFrame(r io.Reader) (uint16, []byte, error) {
	var header frameHeader
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return 0, nil, err
	}
	if header.PayloadLength > maxFramePayload {
		return 0, nil, fmt.Errorf(
			"%w: %d bytes",
			ErrFrameTooLarge,
			header.PayloadLength,
		)
	}
	payload := make([]byte, header.PayloadLength)
	// ReadFull guarantees the expected number of bytes or an error
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return header.MessageType, payload, nil
}
