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
	"errors"
	"fmt"
	"math"
)

// TinymeshPerMesh is the number of tinymesh in one mesh. Tinymesh is the
// smallest indivisible unit on the network; all on-wire amounts are
// denominated in it
const TinymeshPerMesh = 100_000_000

var ErrAmountOverflow = errors.New("amount overflows 64 bits")

// Amount is a signed quantity of tinymesh
type Amount int64

// AmountFromTinymesh returns an Amount holding the given number of tinymesh
func AmountFromTinymesh(tinymesh int64) Amount {
	return Amount(tinymesh)
}

// AmountFromMesh converts a whole-mesh quantity to an Amount. The scaling
// is exact; values outside the representable range fail rather than wrap
func AmountFromMesh(mesh int64) (Amount, error) {
	if mesh > math.MaxInt64/TinymeshPerMesh ||
		mesh < math.MinInt64/TinymeshPerMesh {
		return 0, ErrAmountOverflow
	}
	return Amount(mesh * TinymeshPerMesh), nil
}

// Tinymesh returns the amount in tinymesh
func (a Amount) Tinymesh() int64 {
	return int64(a)
}

// Add returns a+b, or ErrAmountOverflow if the sum is not representable
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}

// Negate returns -a, or ErrAmountOverflow for the most negative value
func (a Amount) Negate() (Amount, error) {
	if a == math.MinInt64 {
		return 0, ErrAmountOverflow
	}
	return -a, nil
}

// String renders the amount as a decimal mesh quantity, e.g. "1.50000000 HM"
func (a Amount) String() string {
	sign := ""
	value := int64(a)
	if value < 0 {
		sign = "-"
		// Avoid negating MinInt64
		whole := value / TinymeshPerMesh
		frac := value % TinymeshPerMesh
		return fmt.Sprintf("%s%d.%08d HM", sign, -whole, -frac)
	}
	return fmt.Sprintf(
		"%d.%08d HM",
		value/TinymeshPerMesh,
		value%TinymeshPerMesh,
	)
}
