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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashmesh-io/gohashmesh/ledger"
)

// NetworkConfig represents a custom network definition as stored on disk
type NetworkConfig struct {
	Name  string              `json:"name"`
	Nodes []NetworkConfigNode `json:"nodes"`
}

type NetworkConfigNode struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

// NewNetworkFromFile loads a custom network definition from a JSON file
func NewNetworkFromFile(path string) (Network, error) {
	dataFile, err := os.Open(path)
	if err != nil {
		return NetworkInvalid, err
	}
	defer dataFile.Close()
	return NewNetworkFromReader(dataFile)
}

// NewNetworkFromReader loads a custom network definition from JSON
func NewNetworkFromReader(r io.Reader) (Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return NetworkInvalid, err
	}
	config := &NetworkConfig{}
	if err := json.Unmarshal(data, config); err != nil {
		return NetworkInvalid, err
	}
	network := Network{
		Name: config.Name,
	}
	for _, node := range config.Nodes {
		id, err := ledger.ParseEntityID(node.ID)
		if err != nil {
			return NetworkInvalid, fmt.Errorf(
				"invalid node ID in network config: %w",
				err,
			)
		}
		network.Nodes = append(network.Nodes, NetworkNode{
			ID:      id,
			Address: node.Address,
		})
	}
	return network, nil
}
