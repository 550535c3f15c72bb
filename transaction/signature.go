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
	"bytes"

	"github.com/hashmesh-io/gohashmesh/wire"
)

// Signature entry field numbers
const (
	fieldSignaturePrefix = 1
	fieldSignatureBytes  = 2
)

// SignatureEntry pairs a public key prefix with a signature over the frozen
// body bytes
type SignatureEntry struct {
	PublicKeyPrefix []byte
	Signature       []byte
}

// EncodeWire writes the entry's fields to the provided Writer
func (e SignatureEntry) EncodeWire(w *wire.Writer) {
	w.WriteBytesField(fieldSignaturePrefix, e.PublicKeyPrefix)
	w.WriteBytesField(fieldSignatureBytes, e.Signature)
}

// SignatureMap is an ordered sequence of signature entries with unique
// public key prefixes
type SignatureMap []SignatureEntry

// Put inserts a signature entry, replacing any existing entry with the same
// public key prefix. Insertion order is preserved for new prefixes
func (m *SignatureMap) Put(publicKeyPrefix []byte, signature []byte) {
	for i, entry := range *m {
		if bytes.Equal(entry.PublicKeyPrefix, publicKeyPrefix) {
			(*m)[i].Signature = signature
			return
		}
	}
	*m = append(*m, SignatureEntry{
		PublicKeyPrefix: publicKeyPrefix,
		Signature:       signature,
	})
}

// Get returns the signature for the given prefix, or nil if not present
func (m SignatureMap) Get(publicKeyPrefix []byte) []byte {
	for _, entry := range m {
		if bytes.Equal(entry.PublicKeyPrefix, publicKeyPrefix) {
			return entry.Signature
		}
	}
	return nil
}

// SignedEnvelope is a decoded envelope: the frozen body bytes paired with
// the signatures over them
type SignedEnvelope struct {
	BodyBytes  []byte
	Signatures SignatureMap
}

// DecodeSignedEnvelope decodes an envelope produced by Serialize. Unknown
// fields are skipped
func DecodeSignedEnvelope(data []byte) (SignedEnvelope, error) {
	var envelope SignedEnvelope
	r := wire.NewReader(data)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return SignedEnvelope{}, err
		}
		switch field.Number {
		case fieldEnvelopeBody:
			envelope.BodyBytes = field.Bytes
		case fieldEnvelopeSignature:
			entry, err := decodeSignatureEntry(field.Bytes)
			if err != nil {
				return SignedEnvelope{}, err
			}
			envelope.Signatures = append(envelope.Signatures, entry)
		}
	}
	return envelope, nil
}

func decodeSignatureEntry(data []byte) (SignatureEntry, error) {
	var entry SignatureEntry
	r := wire.NewReader(data)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return SignatureEntry{}, err
		}
		switch field.Number {
		case fieldSignaturePrefix:
			entry.PublicKeyPrefix = field.Bytes
		case fieldSignatureBytes:
			entry.Signature = field.Bytes
		}
	}
	return entry, nil
}
