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

// Status is a response code returned by the network, either as an immediate
// precheck result on submission or as the final outcome in a receipt
type Status uint32

const (
	StatusUnknown Status = iota
	StatusOk
	StatusDuplicateTransaction
	StatusTransactionExpired
	StatusInvalidTransaction
	StatusInsufficientFee
	StatusInvalidSignature
	StatusReceiptNotFound
	StatusBusy
)

func (s Status) String() string {
	tmp := map[Status]string{
		StatusUnknown:              "Unknown",
		StatusOk:                   "Ok",
		StatusDuplicateTransaction: "DuplicateTransaction",
		StatusTransactionExpired:   "TransactionExpired",
		StatusInvalidTransaction:   "InvalidTransaction",
		StatusInsufficientFee:      "InsufficientFee",
		StatusInvalidSignature:     "InvalidSignature",
		StatusReceiptNotFound:      "ReceiptNotFound",
		StatusBusy:                 "Busy",
	}
	ret, ok := tmp[s]
	if !ok {
		return "Unknown"
	}
	return ret
}

// Terminal reports whether the status represents a final outcome. A
// non-terminal status in a receipt poll means the result is not yet known
// and polling should continue
func (s Status) Terminal() bool {
	switch s {
	case StatusUnknown, StatusReceiptNotFound, StatusBusy:
		return false
	}
	return true
}
