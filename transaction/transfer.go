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

package transaction

import (
	"fmt"

	"github.com/hashmesh-io/gohashmesh/ledger"
	"github.com/hashmesh-io/gohashmesh/wire"
)

// Transfer payload field numbers
const (
	transferPayloadFieldNumber = 10

	fieldTransferEntry   = 1
	fieldTransferAccount = 1
	fieldTransferAmount  = 2
)

// Transfer is one leg of a balanced transfer: a debit (negative amount) or
// credit (positive amount) against an account
type Transfer struct {
	Account ledger.EntityID
	Amount  ledger.Amount
}

// TransferPayload moves tinymesh between accounts. The amounts across all
// legs must sum to exactly zero, which is checked when the enclosing
// transaction is frozen
type TransferPayload struct {
	transfers []Transfer
}

// NewTransferPayload returns an empty transfer payload
func NewTransferPayload() *TransferPayload {
	return &TransferPayload{}
}

// AddTransfer appends a transfer leg
func (p *TransferPayload) AddTransfer(
	account ledger.EntityID,
	amount ledger.Amount,
) *TransferPayload {
	p.transfers = append(p.transfers, Transfer{
		Account: account,
		Amount:  amount,
	})
	return p
}

// Transfers returns the payload's transfer legs
func (p *TransferPayload) Transfers() []Transfer {
	return p.transfers
}

// FieldNumber returns the body field number the payload is nested under
func (p *TransferPayload) FieldNumber() uint32 {
	return transferPayloadFieldNumber
}

// Validate checks that the transfer legs sum to exactly zero
func (p *TransferPayload) Validate() error {
	if len(p.transfers) == 0 {
		return fmt.Errorf("%w: transfer list is empty", ErrInvalidPayload)
	}
	var sum ledger.Amount
	for _, transfer := range p.transfers {
		var err error
		sum, err = sum.Add(transfer.Amount)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidPayload, err)
		}
	}
	if sum != 0 {
		return fmt.Errorf(
			"%w: transfer amounts sum to %d, expected zero",
			ErrInvalidPayload,
			sum.Tinymesh(),
		)
	}
	return nil
}

// EncodeWire writes each transfer leg as a nested field
func (p *TransferPayload) EncodeWire(w *wire.Writer) {
	for _, transfer := range p.transfers {
		w.WriteNestedField(fieldTransferEntry, func(nested *wire.Writer) {
			nested.WriteNestedField(
				fieldTransferAccount,
				transfer.Account.EncodeWire,
			)
			nested.WriteSignedField(
				fieldTransferAmount,
				transfer.Amount.Tinymesh(),
			)
		})
	}
}
