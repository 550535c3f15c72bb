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
	"log/slog"
	"time"

	"github.com/hashmesh-io/gohashmesh/ledger"
	"github.com/hashmesh-io/gohashmesh/nodepool"
)

// ClientOptionFunc is a type that represents functions that modify the
// Client config
type ClientOptionFunc func(*Client)

// WithTransport specifies the transport used to reach nodes
func WithTransport(transport Transport) ClientOptionFunc {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithNode adds a single node to the client's node pool
func WithNode(id ledger.EntityID, address string) ClientOptionFunc {
	return func(c *Client) {
		c.poolOptions = append(c.poolOptions, nodepool.WithNode(id, address))
	}
}

// WithNetwork adds all nodes of a predefined network to the client's node
// pool
func WithNetwork(network Network) ClientOptionFunc {
	return func(c *Client) {
		for _, node := range network.Nodes {
			c.poolOptions = append(
				c.poolOptions,
				nodepool.WithNode(node.ID, node.Address),
			)
		}
	}
}

// WithNodeCooldown specifies the base and maximum cooldown applied to
// failing nodes
func WithNodeCooldown(base time.Duration, max time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.poolOptions = append(c.poolOptions, nodepool.WithCooldown(base, max))
	}
}

// WithMaxAttempts specifies the maximum number of submission attempts
// before giving up
func WithMaxAttempts(maxAttempts int) ClientOptionFunc {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
	}
}

// WithRetryBackoff specifies the base and maximum inter-attempt backoff.
// This backoff is independent of the per-node cooldown
func WithRetryBackoff(base time.Duration, max time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.retryBase = base
		c.retryMax = max
	}
}

// WithPollInterval specifies how often to poll for a receipt
func WithPollInterval(interval time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

// WithReceiptTimeout specifies the overall budget for AwaitReceipt
func WithReceiptTimeout(timeout time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.receiptTimeout = timeout
	}
}

// WithLogger specifies the logger to use. If none is provided,
// slog.Default() is used
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}
