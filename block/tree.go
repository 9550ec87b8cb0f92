// Copyright 2026 Blink Labs Software
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

package block

import (
	"slices"

	"github.com/ipfs/go-cid"
)

// treePaths is the enumeration order of the first-level paths
var treePaths = []string{
	PathVersion,
	PathTimestamp,
	PathDifficulty,
	PathNonce,
	PathParent,
	PathTx,
}

// Paths returns the first-level paths of a header in enumeration order
func Paths() []string {
	return slices.Clone(treePaths)
}

// TreeConfig controls what Tree returns
type TreeConfig struct {
	// Values requests the resolved value of each path in addition to the path
	// names
	Values bool
}

// TreeOptionFunc represents a function used to modify the tree config
type TreeOptionFunc func(*TreeConfig)

// NewTreeConfig returns a new tree config object with the provided options
func NewTreeConfig(options ...TreeOptionFunc) TreeConfig {
	c := TreeConfig{}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithValues specifies whether to resolve the value of each path
func WithValues(values bool) TreeOptionFunc {
	return func(c *TreeConfig) {
		c.Values = values
	}
}

// TreeResult holds the enumerated paths, and their values when requested.
// Values is nil unless requested. Links are not followed, and their values
// are Link, whose CID is available through Cid
type TreeResult struct {
	Paths  []string
	Values map[string]any
}

// Cids returns the content identifiers of the link values, keyed by path.
// It is empty unless values were requested
func (r *TreeResult) Cids() map[string]cid.Cid {
	ret := make(map[string]cid.Cid)
	for path, value := range r.Values {
		if c, ok := LinkCid(value); ok {
			ret[path] = c
		}
	}
	return ret
}

// Tree enumerates the first-level paths of a header
func Tree(node *BlockHeader, options ...TreeOptionFunc) (*TreeResult, error) {
	if node == nil {
		return nil, newMalformedInputError("block header is nil")
	}
	cfg := NewTreeConfig(options...)
	ret := &TreeResult{
		Paths: Paths(),
	}
	if !cfg.Values {
		return ret, nil
	}
	ret.Values = make(map[string]any, len(treePaths))
	for _, path := range treePaths {
		res, err := Resolve(node, path)
		if err != nil {
			return nil, err
		}
		ret.Values[path] = res.Value
	}
	return ret, nil
}

// Tree enumerates the first-level paths of the header. See Tree
func (h *BlockHeader) Tree(options ...TreeOptionFunc) (*TreeResult, error) {
	return Tree(h, options...)
}
