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

// Package transport provides a framed TCP implementation of the node
// submit/poll contract. Each request and response is one frame: an 8-byte
// header carrying the payload length and message type, followed by the
// payload in the network's wire format. One connection is dialed per call;
// the client above this layer owns retry and failover policy.
package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/hashmesh-io/gohashmesh/ledger"
	"github.com/hashmesh-io/gohashmesh/wire"
)

// Message types
const (
	msgTypeSubmit      uint16 = 1
	msgTypeSubmitAck   uint16 = 2
	msgTypePollReceipt uint16 = 3
	msgTypeReceipt     uint16 = 4
)

// Submit acknowledgment field numbers
const (
	fieldAckAccepted = 1
	fieldAckStatus   = 2
)

// Poll request/response field numbers
const (
	fieldPollTransactionID = 1

	fieldPollKnown   = 1
	fieldPollReceipt = 2
)

const (
	DefaultDialTimeout    = 10 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// Transport submits envelopes to nodes over framed TCP connections
type Transport struct {
	dialTimeout    time.Duration
	requestTimeout time.Duration
	dialFunc       func(ctx context.Context, address string) (net.Conn, error)
}

// TransportOptionFunc is a function that modifies the Transport config
type TransportOptionFunc func(*Transport)

// WithDialTimeout specifies the per-call connection timeout
func WithDialTimeout(timeout time.Duration) TransportOptionFunc {
	return func(t *Transport) {
		t.dialTimeout = timeout
	}
}

// WithRequestTimeout specifies the per-call read/write deadline
func WithRequestTimeout(timeout time.Duration) TransportOptionFunc {
	return func(t *Transport) {
		t.requestTimeout = timeout
	}
}

// WithDialFunc overrides how connections are established. Used by tests
func WithDialFunc(
	dialFunc func(ctx context.Context, address string) (net.Conn, error),
) TransportOptionFunc {
	return func(t *Transport) {
		t.dialFunc = dialFunc
	}
}

// New returns a Transport with the provided options applied
func New(options ...TransportOptionFunc) *Transport {
	t := &Transport{
		dialTimeout:    DefaultDialTimeout,
		requestTimeout: DefaultRequestTimeout,
	}
	for _, option := range options {
		option(t)
	}
	if t.dialFunc == nil {
		t.dialFunc = t.dialTCP
	}
	return t
}

func (t *Transport) dialTCP(
	ctx context.Context,
	address string,
) (net.Conn, error) {
	dialer := net.Dialer{
		Timeout: t.dialTimeout,
	}
	return dialer.DialContext(ctx, "tcp", address)
}

// Submit sends a serialized envelope to the node at the given address and
// returns the node's immediate acknowledgment
func (t *Transport) Submit(
	ctx context.Context,
	address string,
	envelope []byte,
) (ledger.SubmitResult, error) {
	payload, err := t.roundTrip(ctx, address, msgTypeSubmit, envelope, msgTypeSubmitAck)
	if err != nil {
		return ledger.SubmitResult{}, err
	}
	var result ledger.SubmitResult
	r := wire.NewReader(payload)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return ledger.SubmitResult{}, fmt.Errorf(
				"malformed submit acknowledgment: %w",
				err,
			)
		}
		switch field.Number {
		case fieldAckAccepted:
			result.Accepted = field.Bool()
		case fieldAckStatus:
			result.Status = ledger.Status(field.Varint)
		}
	}
	return result, nil
}

// PollReceipt asks the node at the given address for the receipt of the
// specified transaction
func (t *Transport) PollReceipt(
	ctx context.Context,
	address string,
	id ledger.TransactionID,
) (ledger.PollResult, error) {
	w := wire.NewWriter()
	w.WriteNestedField(fieldPollTransactionID, id.EncodeWire)
	payload, err := t.roundTrip(ctx, address, msgTypePollReceipt, w.Bytes(), msgTypeReceipt)
	if err != nil {
		return ledger.PollResult{}, err
	}
	var result ledger.PollResult
	r := wire.NewReader(payload)
	for !r.Done() {
		field, err := r.ReadField()
		if err != nil {
			return ledger.PollResult{}, fmt.Errorf(
				"malformed receipt response: %w",
				err,
			)
		}
		switch field.Number {
		case fieldPollKnown:
			result.Known = field.Bool()
		case fieldPollReceipt:
			receipt, err := ledger.DecodeTransactionReceiptWire(field.Bytes)
			if err != nil {
				return ledger.PollResult{}, fmt.Errorf(
					"malformed receipt response: %w",
					err,
				)
			}
			result.Receipt = &receipt
		}
	}
	return result, nil
}

// roundTrip dials the node, writes one request frame, and reads one
// response frame of the expected type
func (t *Transport) roundTrip(
	ctx context.Context,
	address string,
	requestType uint16,
	payload []byte,
	responseType uint16,
) ([]byte, error) {
	conn, err := t.dialFunc(ctx, address)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	// Abandon the in-flight call if the context is cancelled; the watcher
	// goroutine closes the connection, which unblocks any pending read
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-watchDone:
		}
	}()
	deadline := time.Now().Add(t.requestTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}
	if err := writeFrame(conn, requestType, payload); err != nil {
		return nil, fmt.Errorf("write to %s failed: %w", address, err)
	}
	msgType, response, err := readFrame(conn)
	if err != nil {
		return nil, fmt.Errorf("read from %s failed: %w", address, err)
	}
	if msgType != responseType {
		return nil, fmt.Errorf(
			"unexpected response message type %d from %s",
			msgType,
			address,
		)
	}
	return response, nil
}
