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

import "github.com/hashmesh-io/gohashmesh/ledger"

// NetworkNode is one consensus node in a predefined network
type NetworkNode struct {
	ID      ledger.EntityID
	Address string
}

// Network is a named set of consensus nodes
type Network struct {
	Name  string
	Nodes []NetworkNode
}

func (n Network) String() string {
	return n.Name
}

// Network definitions
var (
	NetworkMainnet = Network{
		Name: "mainnet",
		Nodes: []NetworkNode{
			{ID: ledger.NewEntityID(0, 0, 3), Address: "0.node.mainnet.hashmesh.io:50211"},
			{ID: ledger.NewEntityID(0, 0, 4), Address: "1.node.mainnet.hashmesh.io:50211"},
			{ID: ledger.NewEntityID(0, 0, 5), Address: "2.node.mainnet.hashmesh.io:50211"},
			{ID: ledger.NewEntityID(0, 0, 6), Address: "3.node.mainnet.hashmesh.io:50211"},
		},
	}
	NetworkTestnet = Network{
		Name: "testnet",
		Nodes: []NetworkNode{
			{ID: ledger.NewEntityID(0, 0, 3), Address: "0.node.testnet.hashmesh.io:50211"},
			{ID: ledger.NewEntityID(0, 0, 4), Address: "1.node.testnet.hashmesh.io:50211"},
			{ID: ledger.NewEntityID(0, 0, 5), Address: "2.node.testnet.hashmesh.io:50211"},
		},
	}
	NetworkPreviewnet = Network{
		Name: "previewnet",
		Nodes: []NetworkNode{
			{ID: ledger.NewEntityID(0, 0, 3), Address: "0.node.previewnet.hashmesh.io:50211"},
			{ID: ledger.NewEntityID(0, 0, 4), Address: "1.node.previewnet.hashmesh.io:50211"},
		},
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkPreviewnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}
