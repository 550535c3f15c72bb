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

// Package hashmesh implements a client for submitting signed transactions
// to the Hashmesh ledger network and learning their outcome.
//
// A transaction is built and frozen via the transaction package, signed by
// one or more keys, and handed to a Client, which selects among the
// configured consensus nodes, retries transient transport failures with
// backoff and failover, and polls for the eventual receipt.
//
// This package is the main entry point into this library. The other
// packages can be used outside of this one, but it's not a primary design
// goal.
package hashmesh

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashmesh-io/gohashmesh/ledger"
	"github.com/hashmesh-io/gohashmesh/nodepool"
	"github.com/hashmesh-io/gohashmesh/transaction"
)

const (
	DefaultMaxAttempts    = 5
	DefaultRetryBase      = 250 * time.Millisecond
	DefaultRetryMax       = 4 * time.Second
	DefaultPollInterval   = 2 * time.Second
	DefaultReceiptTimeout = 30 * time.Second
)

// Transport is the abstract node contract the Client drives. Implementations
// perform one network call per method; retry and failover policy belongs to
// the Client
type Transport interface {
	Submit(
		ctx context.Context,
		address string,
		envelope []byte,
	) (ledger.SubmitResult, error)
	PollReceipt(
		ctx context.Context,
		address string,
		id ledger.TransactionID,
	) (ledger.PollResult, error)
}

// Client submits serialized transaction envelopes to the network. It is
// safe for concurrent use: multiple transactions may be in flight on one
// Client, sharing its node health bookkeeping. The Client holds no state
// that must survive a process restart
type Client struct {
	transport      Transport
	pool           *nodepool.Pool
	poolOptions    []nodepool.PoolOptionFunc
	maxAttempts    int
	retryBase      time.Duration
	retryMax       time.Duration
	pollInterval   time.Duration
	receiptTimeout time.Duration
	logger         *slog.Logger
}

// NewClient returns a new Client with the specified options. A transport
// and at least one node are required
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		maxAttempts:    DefaultMaxAttempts,
		retryBase:      DefaultRetryBase,
		retryMax:       DefaultRetryMax,
		pollInterval:   DefaultPollInterval,
		receiptTimeout: DefaultReceiptTimeout,
	}
	// Apply provided options functions
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.transport == nil {
		return nil, ErrNoTransport
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = 1
	}
	c.pool = nodepool.New(c.poolOptions...)
	if c.pool.Len() == 0 {
		return nil, ErrNoNodes
	}
	return c, nil
}

// Nodes returns a snapshot of the client's node health state
func (c *Client) Nodes() []nodepool.Node {
	return c.pool.Nodes()
}

// Submit sends a serialized envelope to the network, trying up to the
// configured number of attempts across nodes with exponential backoff
// between attempts. Transport failures rotate to another node; an intact
// response that declines the transaction is terminal and returned as a
// RejectedError. A node answering Busy is treated as a transient node
// condition and retried elsewhere
func (c *Client) Submit(
	ctx context.Context,
	envelope []byte,
	id ledger.TransactionID,
) (*ledger.TransactionResponse, error) {
	var attemptErrs []error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, c.retryDelay(attempt)); err != nil {
				return nil, err
			}
		}
		node := c.pool.SelectNext()
		result, err := c.transport.Submit(ctx, node.Address, envelope)
		if err != nil {
			if ctx.Err() != nil {
				// Cancelled mid-call; whether the node accepted the
				// transaction before cancellation is unknown
				return nil, ctx.Err()
			}
			c.pool.RecordFailure(node)
			attemptErrs = append(
				attemptErrs,
				fmt.Errorf("node %s: %w", node.ID, err),
			)
			c.logger.Debug(
				"submit attempt failed",
				"node", node.ID.String(),
				"address", node.Address,
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}
		if !result.Accepted {
			if result.Status == ledger.StatusBusy {
				c.pool.RecordFailure(node)
				attemptErrs = append(
					attemptErrs,
					fmt.Errorf("node %s: %w", node.ID, &RejectedError{Status: result.Status}),
				)
				c.logger.Debug(
					"node busy, rotating",
					"node", node.ID.String(),
					"attempt", attempt+1,
				)
				continue
			}
			// The node answered cleanly; the rejection is a property of
			// the transaction, not the node
			c.pool.RecordSuccess(node)
			return nil, &RejectedError{Status: result.Status}
		}
		c.pool.RecordSuccess(node)
		c.logger.Debug(
			"transaction accepted",
			"node", node.ID.String(),
			"transaction_id", id.String(),
		)
		return &ledger.TransactionResponse{
			NodeID:        node.ID,
			TransactionID: id,
			Hash:          ledger.NewTransactionHash(envelope),
		}, nil
	}
	return nil, &SubmissionExhaustedError{Attempts: attemptErrs}
}

// AwaitReceipt polls the network for the receipt of the given transaction
// until a terminal status is observed or the receipt timeout elapses.
// "Not yet known" responses do not count against any retry budget. On
// ErrReceiptTimeout the transaction may still reach consensus later
func (c *Client) AwaitReceipt(
	ctx context.Context,
	id ledger.TransactionID,
) (*ledger.TransactionReceipt, error) {
	deadline := time.Now().Add(c.receiptTimeout)
	for {
		node := c.pool.SelectNext()
		result, err := c.transport.PollReceipt(ctx, node.Address, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.pool.RecordFailure(node)
			c.logger.Debug(
				"receipt poll failed",
				"node", node.ID.String(),
				"error", err,
			)
		} else {
			c.pool.RecordSuccess(node)
			if result.Known && result.Receipt != nil &&
				result.Receipt.Status.Terminal() {
				return result.Receipt, nil
			}
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, ErrReceiptTimeout
		}
		wait := c.pollInterval
		if wait > remaining {
			wait = remaining
		}
		if err := c.sleep(ctx, wait); err != nil {
			return nil, err
		}
		if !time.Now().Before(deadline) {
			return nil, ErrReceiptTimeout
		}
	}
}

// Execute serializes the transaction, submits it, and waits for its
// receipt. This is the synchronous convenience path
func (c *Client) Execute(
	ctx context.Context,
	tx *transaction.Transaction,
) (*ledger.TransactionReceipt, error) {
	response, err := c.ExecuteAsync(ctx, tx)
	if err != nil {
		return nil, err
	}
	return c.AwaitReceipt(ctx, response.TransactionID)
}

// ExecuteAsync serializes the transaction and submits it without waiting
// for a receipt, supporting fire-and-forget and batched submission. The
// caller retrieves the receipt later via AwaitReceipt
func (c *Client) ExecuteAsync(
	ctx context.Context,
	tx *transaction.Transaction,
) (*ledger.TransactionResponse, error) {
	envelope, err := tx.Serialize()
	if err != nil {
		return nil, err
	}
	return c.Submit(ctx, envelope, tx.TransactionID())
}

// retryDelay returns the backoff before the given attempt number. This is
// independent of the per-node cooldown tracked by the pool
func (c *Client) retryDelay(attempt int) time.Duration {
	delay := c.retryBase << (attempt - 1)
	if delay > c.retryMax || delay <= 0 {
		delay = c.retryMax
	}
	return delay
}

// sleep blocks for the given duration or until the context is cancelled
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
