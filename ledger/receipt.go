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

import "github.com/hashmesh-io/gohashmesh/wire"

// TransactionReceipt is the network's durable statement of a transaction's
// final outcome. It is immutable once obtained
type TransactionReceipt struct {
	Status        Status
	TransactionID TransactionID
	// CreatedEntity is set when the transaction created a new entity
	CreatedEntity *EntityID
}

// EncodeWire writes the receipt's fields to the provided Writer
func (r TransactionReceipt) EncodeWire(w *wire.Writer) {
	w.WriteVarintField(1, uint64(r.Status))
	w.WriteNestedField(2, r.TransactionID.EncodeWire)
	if r.CreatedEntity != nil {
		w.WriteNestedField(3, r.CreatedEntity.EncodeWire)
	}
}

// DecodeTransactionReceiptWire decodes a receipt from its wire form.
// Unknown fields are skipped
func DecodeTransactionReceiptWire(data []byte) (TransactionReceipt, error) {
	var receipt TransactionReceipt
	r := wire.NewReader(data)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return TransactionReceipt{}, err
		}
		switch field.Number {
		case 1:
			receipt.Status = Status(field.Varint)
		case 2:
			id, err := DecodeTransactionIDWire(field.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			receipt.TransactionID = id
		case 3:
			entity, err := DecodeEntityIDWire(field.Bytes)
			if err != nil {
				return TransactionReceipt{}, err
			}
			receipt.CreatedEntity = &entity
		}
	}
	return receipt, nil
}

// TransactionResponse is the immediate acknowledgment of a submission. It
// records which node accepted the transaction and the hash of the submitted
// envelope bytes
type TransactionResponse struct {
	NodeID        EntityID
	TransactionID TransactionID
	Hash          TransactionHash
}

// SubmitResult is a node's transport-level answer to a submission. A
// response that arrived intact but was refused carries the rejection status
type SubmitResult struct {
	Accepted bool
	Status   Status
}

// PollResult is a node's answer to a receipt query. Known is false while
// the transaction has not yet reached consensus
type PollResult struct {
	Known   bool
	Receipt *TransactionReceipt
}
