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

package ledger

import (
	"fmt"
	"time"

	"github.com/hashmesh-io/gohashmesh/wire"
)

// Timestamp is a point in time as seconds and nanoseconds since the Unix
// epoch. Nanos is always in [0, 1e9)
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// NewTimestamp returns a normalized Timestamp from the provided seconds and
// nanoseconds
func NewTimestamp(seconds int64, nanos int32) Timestamp {
	for nanos < 0 {
		nanos += 1_000_000_000
		seconds--
	}
	for nanos >= 1_000_000_000 {
		nanos -= 1_000_000_000
		seconds++
	}
	return Timestamp{
		Seconds: seconds,
		Nanos:   nanos,
	}
}

// TimestampFromTime converts a time.Time to a Timestamp
func TimestampFromTime(t time.Time) Timestamp {
	return NewTimestamp(t.Unix(), int32(t.Nanosecond()))
}

// Time converts the Timestamp to a time.Time
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos))
}

// Before reports whether t is strictly earlier than other
func (t Timestamp) Before(other Timestamp) bool {
	if t.Seconds != other.Seconds {
		return t.Seconds < other.Seconds
	}
	return t.Nanos < other.Nanos
}

// String returns the "seconds.nanos" form used inside transaction IDs
func (t Timestamp) String() string {
	return fmt.Sprintf("%d.%09d", t.Seconds, t.Nanos)
}

// EncodeWire writes the timestamp's fields to the provided Writer
func (t Timestamp) EncodeWire(w *wire.Writer) {
	w.WriteSignedField(1, t.Seconds)
	w.WriteSignedField(2, int64(t.Nanos))
}

// DecodeTimestampWire decodes a timestamp from its wire form. Unknown
// fields are skipped
func DecodeTimestampWire(data []byte) (Timestamp, error) {
	var t Timestamp
	r := wire.NewReader(data)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return Timestamp{}, err
		}
		switch field.Number {
		case 1:
			t.Seconds = field.Signed()
		case 2:
			t.Nanos = int32(field.Signed())
		}
	}
	return t, nil
}
