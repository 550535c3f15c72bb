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

package hashmesh

import (
	"errors"
	"fmt"

	"github.com/hashmesh-io/gohashmesh/ledger"
)

var (
	ErrNoTransport = errors.New("no transport configured")
	ErrNoNodes     = errors.New("no nodes configured")

	// ErrReceiptTimeout does not mean the transaction failed: it may still
	// reach consensus after the caller's budget elapsed
	ErrReceiptTimeout = errors.New(
		"receipt not available before timeout; the transaction may still reach consensus",
	)
)

// SubmissionExhaustedError is returned when every submission attempt failed
// at the transport level. It carries the per-attempt errors for diagnosis
type SubmissionExhaustedError struct {
	Attempts []error
}

func (e *SubmissionExhaustedError) Error() string {
	return fmt.Sprintf(
		"submission exhausted after %d attempts, last error: %s",
		len(e.Attempts),
		e.Attempts[len(e.Attempts)-1],
	)
}

func (e *SubmissionExhaustedError) Unwrap() []error {
	return e.Attempts
}

// RejectedError is returned when a node's precheck explicitly declined the
// transaction. Resubmitting the same payload would deterministically fail
// again, so the client never retries these
type RejectedError struct {
	Status ledger.Status
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transaction rejected during precheck: %s", e.Status)
}
