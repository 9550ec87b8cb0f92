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
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
)

const PathSeparator = "/"

const (
	PathVersion    = "version"
	PathTimestamp  = "timestamp"
	PathDifficulty = "difficulty"
	PathNonce      = "nonce"
	PathParent     = "parent"
	PathTx         = "tx"
)

// ResolveResult is the outcome of resolving a path. Value is the header
// itself, a scalar field value, or a Link. RemainderPath is only non-empty
// for links. Use Cid to get the content identifier of a link
type ResolveResult struct {
	Value         any
	RemainderPath string
}

// Cid returns the content identifier of a resolved link. It returns false
// when the value is not a link
func (r *ResolveResult) Cid() (cid.Cid, bool) {
	return LinkCid(r.Value)
}

// LinkCid returns the content identifier of a Link value, as found in
// ResolveResult.Value or TreeResult.Values
func LinkCid(value any) (cid.Cid, bool) {
	link, ok := value.(Link)
	if !ok {
		return cid.Undef, false
	}
	return link.Cid(), true
}

// pathHandler resolves a single first-level path segment
type pathHandler struct {
	// Links pass the rest of the path through instead of rejecting it
	link    bool
	resolve func(*BlockHeader) any
}

var pathHandlers = map[string]pathHandler{
	PathVersion: {
		resolve: func(h *BlockHeader) any { return h.Version },
	},
	PathTimestamp: {
		resolve: func(h *BlockHeader) any { return h.Timestamp },
	},
	PathDifficulty: {
		resolve: func(h *BlockHeader) any { return h.Bits },
	},
	PathNonce: {
		resolve: func(h *BlockHeader) any { return h.Nonce },
	},
	PathParent: {
		link:    true,
		resolve: func(h *BlockHeader) any { return h.ParentLink() },
	},
	PathTx: {
		link:    true,
		resolve: func(h *BlockHeader) any { return h.TransactionsLink() },
	},
}

// Resolve resolves a slash-delimited path against a header. An empty path
// resolves to the header itself. Resolution stops at the first link, and the
// rest of the path is returned as the remainder without being interpreted.
// A link resolves to a Link value, whose CID is available through Cid on the
// result or on the Link itself
func Resolve(node *BlockHeader, path string) (*ResolveResult, error) {
	if node == nil {
		return nil, newMalformedInputError("block header is nil")
	}
	if path == "" {
		return &ResolveResult{Value: node}, nil
	}
	if strings.HasPrefix(path, PathSeparator) {
		return nil, &PathError{
			Path: path,
			Err: fmt.Errorf(
				"%w: must not start with %q",
				ErrInvalidPath,
				PathSeparator,
			),
		}
	}
	segments := strings.Split(path, PathSeparator)
	for idx, segment := range segments {
		if segment == "" {
			return nil, &PathError{
				Path: path,
				Err: fmt.Errorf(
					"%w: empty segment at position %d",
					ErrNoSuchPath,
					idx,
				),
			}
		}
	}
	handler, ok := pathHandlers[segments[0]]
	if !ok {
		return nil, &PathError{
			Path:    path,
			Segment: segments[0],
			Err:     ErrNoSuchPath,
		}
	}
	rest := segments[1:]
	if handler.link {
		return &ResolveResult{
			Value:         handler.resolve(node),
			RemainderPath: strings.Join(rest, PathSeparator),
		}, nil
	}
	if len(rest) > 0 {
		return nil, &PathError{
			Path:    path,
			Segment: rest[0],
			Err:     ErrNotTraversable,
		}
	}
	return &ResolveResult{Value: handler.resolve(node)}, nil
}

// Resolve resolves a path against the header. See Resolve
func (h *BlockHeader) Resolve(path string) (*ResolveResult, error) {
	return Resolve(h, path)
}
