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

package ledger_test

import (
	"math"
	"testing"
	"time"

	"github.com/hashmesh-io/gohashmesh/ledger"
	"github.com/hashmesh-io/gohashmesh/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIDString(t *testing.T) {
	id := ledger.NewEntityID(0, 0, 1001)
	assert.Equal(t, "0.0.1001", id.String())
}

func TestParseEntityID(t *testing.T) {
	id, err := ledger.ParseEntityID("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, ledger.NewEntityID(1, 2, 3), id)

	_, err = ledger.ParseEntityID("1.2")
	assert.Error(t, err)
	_, err = ledger.ParseEntityID("1.2.x")
	assert.Error(t, err)
}

func TestEntityIDWireRoundTrip(t *testing.T) {
	id := ledger.NewEntityID(1, 2, 98765)
	w := wire.NewWriter()
	id.EncodeWire(w)
	decoded, err := ledger.DecodeEntityIDWire(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestAmountFromMesh(t *testing.T) {
	amount, err := ledger.AmountFromMesh(3)
	require.NoError(t, err)
	assert.Equal(t, int64(300_000_000), amount.Tinymesh())

	_, err = ledger.AmountFromMesh(math.MaxInt64)
	assert.ErrorIs(t, err, ledger.ErrAmountOverflow)
}

func TestAmountAddOverflow(t *testing.T) {
	sum, err := ledger.AmountFromTinymesh(1).Add(ledger.AmountFromTinymesh(2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.Tinymesh())

	_, err = ledger.AmountFromTinymesh(math.MaxInt64).
		Add(ledger.AmountFromTinymesh(1))
	assert.ErrorIs(t, err, ledger.ErrAmountOverflow)

	_, err = ledger.AmountFromTinymesh(math.MinInt64).
		Add(ledger.AmountFromTinymesh(-1))
	assert.ErrorIs(t, err, ledger.ErrAmountOverflow)
}

func TestAmountString(t *testing.T) {
	amount, err := ledger.AmountFromMesh(1)
	require.NoError(t, err)
	assert.Equal(t, "1.00000000 HM", amount.String())
	assert.Equal(
		t,
		"-0.50000000 HM",
		ledger.AmountFromTinymesh(-50_000_000).String(),
	)
}

func TestTimestampNormalization(t *testing.T) {
	ts := ledger.NewTimestamp(10, 1_500_000_000)
	assert.Equal(t, int64(11), ts.Seconds)
	assert.Equal(t, int32(500_000_000), ts.Nanos)

	ts = ledger.NewTimestamp(10, -1)
	assert.Equal(t, int64(9), ts.Seconds)
	assert.Equal(t, int32(999_999_999), ts.Nanos)
}

func TestTimestampTimeRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 123456789)
	ts := ledger.TimestampFromTime(now)
	assert.True(t, ts.Time().Equal(now))
}

func TestTransactionIDString(t *testing.T) {
	id := ledger.TransactionID{
		Payer:      ledger.NewEntityID(0, 0, 7),
		ValidStart: ledger.NewTimestamp(1700000000, 42),
	}
	assert.Equal(t, "0.0.7@1700000000.000000042", id.String())
}

func TestNewTransactionIDUsesWallClock(t *testing.T) {
	payer := ledger.NewEntityID(0, 0, 7)
	before := time.Now().Add(-time.Second)
	id := ledger.NewTransactionID(payer)
	after := time.Now().Add(time.Second)
	assert.Equal(t, payer, id.Payer)
	assert.True(t, ledger.TimestampFromTime(before).Before(id.ValidStart))
	assert.True(t, id.ValidStart.Before(ledger.TimestampFromTime(after)))
}

func TestTransactionReceiptWireRoundTrip(t *testing.T) {
	created := ledger.NewEntityID(0, 0, 2002)
	receipt := ledger.TransactionReceipt{
		Status: ledger.StatusOk,
		TransactionID: ledger.TransactionID{
			Payer:      ledger.NewEntityID(0, 0, 7),
			ValidStart: ledger.NewTimestamp(1700000000, 42),
		},
		CreatedEntity: &created,
	}
	w := wire.NewWriter()
	receipt.EncodeWire(w)
	decoded, err := ledger.DecodeTransactionReceiptWire(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, receipt, decoded)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, ledger.StatusOk.Terminal())
	assert.True(t, ledger.StatusInvalidTransaction.Terminal())
	assert.False(t, ledger.StatusReceiptNotFound.Terminal())
	assert.False(t, ledger.StatusBusy.Terminal())
	assert.False(t, ledger.StatusUnknown.Terminal())
}

func TestTransactionHash(t *testing.T) {
	h1 := ledger.NewTransactionHash([]byte("envelope"))
	h2 := ledger.NewTransactionHash([]byte("envelope"))
	h3 := ledger.NewTransactionHash([]byte("other"))
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1.Bytes(), ledger.TransactionHashSize)
}
