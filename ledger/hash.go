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
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// TransactionHashSize is the size of a transaction hash in bytes
const TransactionHashSize = 32

// TransactionHash is the Blake2b-256 digest of a submitted envelope's bytes
type TransactionHash [TransactionHashSize]byte

// NewTransactionHash generates a transaction hash from the provided data
func NewTransactionHash(data []byte) TransactionHash {
	tmpHash, err := blake2b.New(TransactionHashSize, nil)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error creating blake2b hasher: %s", err),
		)
	}
	tmpHash.Write(data)
	return TransactionHash(tmpHash.Sum(nil))
}

func (h TransactionHash) String() string {
	return hex.EncodeToString(h[:])
}

func (h TransactionHash) Bytes() []byte {
	return h[:]
}
