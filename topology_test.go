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

package hashmesh_test

import (
	"reflect"
	"strings"
	"testing"

	hashmesh "github.com/hashmesh-io/gohashmesh"
	"github.com/hashmesh-io/gohashmesh/ledger"
)

type networkConfigTestDefinition struct {
	jsonData       string
	expectedObject hashmesh.Network
}

var networkConfigTests = []networkConfigTestDefinition{
	{
		jsonData: `
{
  "name": "devnet",
  "nodes": [
    {
      "id": "0.0.3",
      "address": "devnet-node-0.example.com:50211"
    },
    {
      "id": "0.0.4",
      "address": "devnet-node-1.example.com:50211"
    }
  ]
}
`,
		expectedObject: hashmesh.Network{
			Name: "devnet",
			Nodes: []hashmesh.NetworkNode{
				{
					ID:      ledger.NewEntityID(0, 0, 3),
					Address: "devnet-node-0.example.com:50211",
				},
				{
					ID:      ledger.NewEntityID(0, 0, 4),
					Address: "devnet-node-1.example.com:50211",
				},
			},
		},
	},
	{
		jsonData: `{"name": "empty"}`,
		expectedObject: hashmesh.Network{
			Name: "empty",
		},
	},
}

func TestParseNetworkConfig(t *testing.T) {
	for _, test := range networkConfigTests {
		network, err := hashmesh.NewNetworkFromReader(
			strings.NewReader(test.jsonData),
		)
		if err != nil {
			t.Fatalf("failed to load Network from JSON data: %s", err)
		}
		if !reflect.DeepEqual(network, test.expectedObject) {
			t.Fatalf(
				"did not get expected object\n  got:\n    %#v\n  wanted:\n    %#v",
				network,
				test.expectedObject,
			)
		}
	}
}

func TestParseNetworkConfigInvalidNodeID(t *testing.T) {
	_, err := hashmesh.NewNetworkFromReader(
		strings.NewReader(`{"name": "bad", "nodes": [{"id": "xyz", "address": "a:1"}]}`),
	)
	if err == nil {
		t.Fatal("expected error for invalid node ID")
	}
}

func TestNetworkByName(t *testing.T) {
	network := hashmesh.NetworkByName("testnet")
	if network.Name != "testnet" || len(network.Nodes) == 0 {
		t.Fatalf("unexpected network: %#v", network)
	}
	if hashmesh.NetworkByName("nope").Name != "invalid" {
		t.Fatal("expected invalid network for unknown name")
	}
}
