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

// Package keys provides the Ed25519 signing keys used to authorize
// transactions
package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Bech32 human-readable prefix for rendered public keys
const publicKeyHrp = "hmpub"

var (
	ErrInvalidPrivateKeyLength = errors.New(
		"private key must be a 32-byte seed or 64-byte expanded key",
	)
	ErrInvalidPublicKey = errors.New("invalid Ed25519 public key")
)

// PrivateKey is an Ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// PublicKey is an Ed25519 verification key
type PublicKey struct {
	key ed25519.PublicKey
}

// GeneratePrivateKey returns a new random private key
func GeneratePrivateKey() (PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, err
	}
	return PrivateKey{key: priv}, nil
}

// PrivateKeyFromBytes builds a private key from a 32-byte seed or a 64-byte
// expanded key
func PrivateKeyFromBytes(data []byte) (PrivateKey, error) {
	switch len(data) {
	case ed25519.SeedSize:
		return PrivateKey{key: ed25519.NewKeyFromSeed(data)}, nil
	case ed25519.PrivateKeySize:
		priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(priv, data)
		return PrivateKey{key: priv}, nil
	}
	return PrivateKey{}, ErrInvalidPrivateKeyLength
}

// PrivateKeyFromHex builds a private key from a hex-encoded seed or
// expanded key
func PrivateKeyFromHex(s string) (PrivateKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("invalid private key hex: %w", err)
	}
	return PrivateKeyFromBytes(data)
}

// Sign produces a 64-byte Ed25519 signature over the provided data
func (k PrivateKey) Sign(data []byte) []byte {
	return ed25519.Sign(k.key, data)
}

// PublicKey returns the corresponding verification key
func (k PrivateKey) PublicKey() PublicKey {
	return PublicKey{key: k.key.Public().(ed25519.PublicKey)}
}

// Bytes returns the 32-byte seed followed by the public key
func (k PrivateKey) Bytes() []byte {
	ret := make([]byte, len(k.key))
	copy(ret, k.key)
	return ret
}

// PublicKeyFromBytes builds a public key from its 32-byte form. The bytes
// must decode to a canonical point on the Edwards curve
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return PublicKey{}, ErrInvalidPublicKey
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return PublicKey{}, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, data)
	return PublicKey{key: pub}, nil
}

// Verify reports whether sig is a valid signature over data by this key
func (k PublicKey) Verify(data []byte, sig []byte) bool {
	return ed25519.Verify(k.key, data, sig)
}

// Bytes returns the 32-byte public key
func (k PublicKey) Bytes() []byte {
	ret := make([]byte, len(k.key))
	copy(ret, k.key)
	return ret
}

// String renders the public key as bech32 with the "hmpub" prefix
func (k PublicKey) String() string {
	convData, err := bech32.ConvertBits(k.key, 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(publicKeyHrp, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}
