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

// Package nodepool tracks the set of candidate network nodes and their
// health. Selection is round-robin with a per-node cooldown that grows
// exponentially on consecutive failures. The pool performs no I/O; it is
// pure bookkeeping, shared by all in-flight submissions on a client
package nodepool

import (
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/copier"

	"github.com/hashmesh-io/gohashmesh/ledger"
)

const (
	DefaultCooldownBase = 250 * time.Millisecond
	DefaultCooldownMax  = 5 * time.Second

	// Cap on the backoff shift so the doubling cannot overflow a Duration
	maxBackoffShift = 16
)

// Node is one candidate endpoint and its health state. Nodes are created
// when the pool is built and never removed; an unhealthy node cools down
// instead of being deleted
type Node struct {
	ID      ledger.EntityID
	Address string

	LastFailureAt       time.Time
	ConsecutiveFailures uint32
	CooldownUntil       time.Time
}

// Pool is a node directory with health tracking. All methods are safe for
// concurrent use; the internal mutex is held only for bookkeeping, never
// across network calls
type Pool struct {
	mutex        sync.Mutex
	nodes        []*Node
	next         int
	cooldownBase time.Duration
	cooldownMax  time.Duration
	now          func() time.Time
}

// PoolOptionFunc is a function that modifies the Pool configuration
type PoolOptionFunc func(*Pool)

// WithNode adds a node to the pool
func WithNode(id ledger.EntityID, address string) PoolOptionFunc {
	return func(p *Pool) {
		p.nodes = append(p.nodes, &Node{
			ID:      id,
			Address: address,
		})
	}
}

// WithCooldown specifies the base and maximum cooldown windows applied to
// failing nodes
func WithCooldown(base time.Duration, max time.Duration) PoolOptionFunc {
	return func(p *Pool) {
		p.cooldownBase = base
		p.cooldownMax = max
	}
}

// WithClock overrides the pool's time source. Used by tests
func WithClock(now func() time.Time) PoolOptionFunc {
	return func(p *Pool) {
		p.now = now
	}
}

// New returns a Pool with the provided options applied
func New(options ...PoolOptionFunc) *Pool {
	p := &Pool{
		cooldownBase: DefaultCooldownBase,
		cooldownMax:  DefaultCooldownMax,
		now:          time.Now,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Len returns the number of nodes in the pool
func (p *Pool) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.nodes)
}

// SelectNext returns the next node in round-robin order, skipping nodes
// whose cooldown has not yet expired. If every node is cooling down, the
// node soonest to recover is returned rather than failing outright.
// Returns nil if the pool is empty
func (p *Pool) SelectNext() *Node {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if len(p.nodes) == 0 {
		return nil
	}
	now := p.now()
	for i := 0; i < len(p.nodes); i++ {
		node := p.nodes[p.next%len(p.nodes)]
		p.next++
		if node.CooldownUntil.After(now) {
			continue
		}
		return node
	}
	// All nodes are cooling down: pick the one that recovers soonest
	soonest := p.nodes[0]
	for _, node := range p.nodes[1:] {
		if node.CooldownUntil.Before(soonest.CooldownUntil) {
			soonest = node
		}
	}
	return soonest
}

// RecordFailure notes a failed attempt against the node and extends its
// cooldown window exponentially, up to the configured maximum
func (p *Pool) RecordFailure(node *Node) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	now := p.now()
	node.ConsecutiveFailures++
	node.LastFailureAt = now
	shift := node.ConsecutiveFailures
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	cooldown := p.cooldownBase << shift
	if cooldown > p.cooldownMax || cooldown <= 0 {
		cooldown = p.cooldownMax
	}
	node.CooldownUntil = now.Add(cooldown)
}

// RecordSuccess notes a successful attempt against the node, clearing its
// failure count and cooldown
func (p *Pool) RecordSuccess(node *Node) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	node.ConsecutiveFailures = 0
	node.CooldownUntil = time.Time{}
}

// Nodes returns a deep copy of the pool's nodes for inspection. The copies
// are detached from the pool's health bookkeeping
func (p *Pool) Nodes() []Node {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	ret := make([]Node, 0, len(p.nodes))
	for _, node := range p.nodes {
		var tmp Node
		if err := copier.Copy(&tmp, node); err != nil {
			panic(fmt.Sprintf("unexpected error copying node: %s", err))
		}
		ret = append(ret, tmp)
	}
	return ret
}
