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

// TransactionID uniquely identifies one logical transaction. The same ID
// addressed to different candidate nodes still names a single transaction.
// It is generated once and never mutated
type TransactionID struct {
	Payer      EntityID
	ValidStart Timestamp
}

// NewTransactionID returns a TransactionID for the given payer with the
// valid-start time taken from the wall clock
func NewTransactionID(payer EntityID) TransactionID {
	return TransactionID{
		Payer:      payer,
		ValidStart: TimestampFromTime(time.Now()),
	}
}

// String returns the "payer@seconds.nanos" form
func (id TransactionID) String() string {
	return fmt.Sprintf("%s@%s", id.Payer, id.ValidStart)
}

// EncodeWire writes the transaction ID's fields to the provided Writer
func (id TransactionID) EncodeWire(w *wire.Writer) {
	w.WriteNestedField(1, id.Payer.EncodeWire)
	w.WriteNestedField(2, id.ValidStart.EncodeWire)
}

// DecodeTransactionIDWire decodes a transaction ID from its wire form.
// Unknown fields are skipped
func DecodeTransactionIDWire(data []byte) (TransactionID, error) {
	var id TransactionID
	r := wire.NewReader(data)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return TransactionID{}, err
		}
		switch field.Number {
		case 1:
			payer, err := DecodeEntityIDWire(field.Bytes)
			if err != nil {
				return TransactionID{}, err
			}
			id.Payer = payer
		case 2:
			validStart, err := DecodeTimestampWire(field.Bytes)
			if err != nil {
				return TransactionID{}, err
			}
			id.ValidStart = validStart
		}
	}
	return id, nil
}
