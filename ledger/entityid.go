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

// Package ledger contains the value types shared across the SDK: entity
// identifiers, amounts, timestamps, transaction identifiers, statuses, and
// receipts
package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashmesh-io/gohashmesh/wire"
)

// EntityID identifies any addressable entity on the network: accounts,
// tokens, topics, contracts, files, and schedules all share this form.
// It is an immutable value type with structural equality
type EntityID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// NewEntityID returns an EntityID with the specified shard, realm, and
// entity number
func NewEntityID(shard uint64, realm uint64, num uint64) EntityID {
	return EntityID{
		Shard: shard,
		Realm: realm,
		Num:   num,
	}
}

// ParseEntityID parses the canonical "shard.realm.num" string form
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return EntityID{}, fmt.Errorf(
			"invalid entity ID %q: expected shard.realm.num",
			s,
		)
	}
	var values [3]uint64
	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return EntityID{}, fmt.Errorf("invalid entity ID %q: %w", s, err)
		}
		values[i] = value
	}
	return NewEntityID(values[0], values[1], values[2]), nil
}

// String returns the canonical "shard.realm.num" form
func (e EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", e.Shard, e.Realm, e.Num)
}

// EncodeWire writes the entity ID's fields to the provided Writer
func (e EntityID) EncodeWire(w *wire.Writer) {
	w.WriteVarintField(1, e.Shard)
	w.WriteVarintField(2, e.Realm)
	w.WriteVarintField(3, e.Num)
}

// DecodeEntityIDWire decodes an entity ID from its wire form. Unknown
// fields are skipped
func DecodeEntityIDWire(data []byte) (EntityID, error) {
	var e EntityID
	r := wire.NewReader(data)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return EntityID{}, err
		}
		switch field.Number {
		case 1:
			e.Shard = field.Varint
		case 2:
			e.Realm = field.Varint
		case 3:
			e.Num = field.Varint
		}
	}
	return e, nil
}
