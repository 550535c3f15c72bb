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

// Package transaction implements the transaction envelope and its lifecycle:
// a mutable body is frozen into a canonical byte encoding, signed by one or
// more keys over those exact bytes, and serialized into the wire blob that
// is submitted to the network.
package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashmesh-io/gohashmesh/keys"
	"github.com/hashmesh-io/gohashmesh/ledger"
	"github.com/hashmesh-io/gohashmesh/wire"
)

// MaxMemoLength is the maximum memo size in bytes
const MaxMemoLength = 100

// DefaultValidDuration is the window after the transaction ID's valid-start
// time during which nodes will accept the transaction
const DefaultValidDuration = 120 * time.Second

// Body field numbers
const (
	fieldTransactionID = 1
	fieldNodeID        = 2
	fieldMaxFee        = 3
	fieldValidDuration = 4
	fieldMemo          = 5
)

// Envelope field numbers
const (
	fieldEnvelopeBody      = 1
	fieldEnvelopeSignature = 2
)

var (
	ErrAlreadyFrozen     = errors.New("transaction is already frozen")
	ErrNotFrozen         = errors.New("transaction is not frozen")
	ErrNoSignatures      = errors.New("transaction has no signatures")
	ErrAlreadySerialized = errors.New("transaction is already serialized")
	ErrInvalidPayload    = errors.New("invalid payload")
)

// State is a transaction's position in its lifecycle
type State uint8

const (
	StateBuilding State = iota + 1
	StateFrozen
	StateSigned
	StateSerialized
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "Building"
	case StateFrozen:
		return "Frozen"
	case StateSigned:
		return "Signed"
	case StateSerialized:
		return "Serialized"
	}
	return "Unknown"
}

// Payload is one transaction-specific body variant. The envelope treats it
// as an opaque sequence of encodable fields
type Payload interface {
	// FieldNumber returns the body field number the payload is nested under
	FieldNumber() uint32
	// EncodeWire writes the payload's fields to the provided Writer
	EncodeWire(w *wire.Writer)
	// Validate checks payload-specific invariants before freezing
	Validate() error
}

// Transaction is the envelope for one logical transaction. It moves through
// Building, Frozen, Signed, and Serialized states; the body may only be
// mutated while Building, and the frozen body bytes never change afterwards.
// A Transaction is not safe for concurrent use and is not reusable across
// submissions
type Transaction struct {
	id            ledger.TransactionID
	idSet         bool
	nodeID        ledger.EntityID
	maxFee        ledger.Amount
	validDuration time.Duration
	memo          string
	payload       Payload
	state         State
	bodyBytes     []byte
	signatures    SignatureMap
	envelope      []byte
}

// New returns a Transaction in the Building state carrying the provided
// payload
func New(payload Payload) *Transaction {
	return &Transaction{
		payload:       payload,
		state:         StateBuilding,
		validDuration: DefaultValidDuration,
	}
}

// State returns the transaction's lifecycle state
func (t *Transaction) State() State {
	return t.state
}

// TransactionID returns the transaction's ID. Only meaningful once set via
// SetPayer or SetTransactionID
func (t *Transaction) TransactionID() ledger.TransactionID {
	return t.id
}

// SetPayer generates a fresh transaction ID for the given payer account.
// Fails with ErrAlreadyFrozen once the transaction has been frozen
func (t *Transaction) SetPayer(payer ledger.EntityID) error {
	return t.mutate(func() {
		t.id = ledger.NewTransactionID(payer)
		t.idSet = true
	})
}

// SetTransactionID sets an explicit transaction ID. Fails with
// ErrAlreadyFrozen once the transaction has been frozen
func (t *Transaction) SetTransactionID(id ledger.TransactionID) error {
	return t.mutate(func() {
		t.id = id
		t.idSet = true
	})
}

// SetNodeID designates the node the transaction is addressed to. Fails with
// ErrAlreadyFrozen once the transaction has been frozen
func (t *Transaction) SetNodeID(nodeID ledger.EntityID) error {
	return t.mutate(func() {
		t.nodeID = nodeID
	})
}

// SetMaxFee sets the fee ceiling the payer is willing to pay. Fails with
// ErrAlreadyFrozen once the transaction has been frozen
func (t *Transaction) SetMaxFee(maxFee ledger.Amount) error {
	return t.mutate(func() {
		t.maxFee = maxFee
	})
}

// SetValidDuration sets how long after the valid-start time nodes will
// accept the transaction. Fails with ErrAlreadyFrozen once the transaction
// has been frozen
func (t *Transaction) SetValidDuration(d time.Duration) error {
	return t.mutate(func() {
		t.validDuration = d
	})
}

// SetMemo attaches a short UTF-8 memo. Length is validated at freeze time.
// Fails with ErrAlreadyFrozen once the transaction has been frozen
func (t *Transaction) SetMemo(memo string) error {
	return t.mutate(func() {
		t.memo = memo
	})
}

func (t *Transaction) mutate(apply func()) error {
	if t.state != StateBuilding {
		return ErrAlreadyFrozen
	}
	apply()
	return nil
}

// Freeze canonically encodes the transaction body, checks payload
// invariants, and makes the body immutable. Freezing an already-frozen
// transaction is a no-op returning the same bytes. The returned slice must
// not be modified
func (t *Transaction) Freeze() ([]byte, error) {
	if t.state != StateBuilding {
		return t.bodyBytes, nil
	}
	if t.payload == nil {
		return nil, fmt.Errorf("%w: no payload", ErrInvalidPayload)
	}
	if !t.idSet {
		return nil, fmt.Errorf("%w: transaction ID not set", ErrInvalidPayload)
	}
	if len(t.memo) > MaxMemoLength {
		return nil, fmt.Errorf(
			"%w: memo exceeds %d bytes",
			ErrInvalidPayload,
			MaxMemoLength,
		)
	}
	if err := t.payload.Validate(); err != nil {
		return nil, err
	}
	w := wire.NewWriter()
	w.WriteNestedField(fieldTransactionID, t.id.EncodeWire)
	w.WriteNestedField(fieldNodeID, t.nodeID.EncodeWire)
	w.WriteVarintField(fieldMaxFee, uint64(t.maxFee.Tinymesh()))
	w.WriteVarintField(fieldValidDuration, uint64(t.validDuration/time.Second))
	w.WriteStringField(fieldMemo, t.memo)
	w.WriteNestedField(t.payload.FieldNumber(), t.payload.EncodeWire)
	// Copy out of the writer so the frozen bytes can never alias a reused
	// buffer
	t.bodyBytes = append([]byte(nil), w.Bytes()...)
	t.state = StateFrozen
	return t.bodyBytes, nil
}

// BodyBytes returns the frozen body encoding, or nil before freeze
func (t *Transaction) BodyBytes() []byte {
	return t.bodyBytes
}

// Sign signs the frozen body bytes with the provided key and records the
// signature in the signature map. Signing again with the same key replaces
// the prior entry rather than duplicating it. The transaction must be
// frozen first
func (t *Transaction) Sign(priv keys.PrivateKey) error {
	switch t.state {
	case StateBuilding:
		return ErrNotFrozen
	case StateSerialized:
		return ErrAlreadySerialized
	}
	sig := priv.Sign(t.bodyBytes)
	t.signatures.Put(priv.PublicKey().Bytes(), sig)
	t.state = StateSigned
	return nil
}

// Signatures returns the current signature map
func (t *Transaction) Signatures() SignatureMap {
	return t.signatures
}

// Serialize emits the signed envelope (frozen body bytes plus signature
// map) as the final wire blob. This is a terminal state: the transaction
// cannot be signed or mutated afterwards, and a fresh Transaction must be
// built for a new logical submission. Calling Serialize again returns the
// same bytes
func (t *Transaction) Serialize() ([]byte, error) {
	switch t.state {
	case StateSerialized:
		return t.envelope, nil
	case StateBuilding:
		return nil, ErrNotFrozen
	case StateFrozen:
		return nil, ErrNoSignatures
	}
	w := wire.NewWriter()
	w.WriteBytesField(fieldEnvelopeBody, t.bodyBytes)
	for _, entry := range t.signatures {
		w.WriteNestedField(fieldEnvelopeSignature, entry.EncodeWire)
	}
	t.envelope = append([]byte(nil), w.Bytes()...)
	t.state = StateSerialized
	return t.envelope, nil
}
