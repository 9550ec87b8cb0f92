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
	"io"

	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/datamodel"
	"github.com/ipld/go-ipld-prime/fluent/qp"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"
)

// Node returns the header as an IPLD data model map with the same fields as
// Tree, with links as CID links
func (h *BlockHeader) Node() (datamodel.Node, error) {
	tree, err := Tree(h, WithValues(true))
	if err != nil {
		return nil, err
	}
	var assembleErr error
	n, err := qp.BuildMap(
		basicnode.Prototype.Map,
		int64(len(tree.Paths)),
		func(ma datamodel.MapAssembler) {
			for _, path := range tree.Paths {
				switch v := tree.Values[path].(type) {
				case int32:
					qp.MapEntry(ma, path, qp.Int(int64(v)))
				case uint32:
					qp.MapEntry(ma, path, qp.Int(int64(v)))
				case Link:
					qp.MapEntry(
						ma,
						path,
						qp.Link(cidlink.Link{Cid: v.Cid()}),
					)
				default:
					assembleErr = fmt.Errorf(
						"unexpected value type for %q: %T",
						path,
						v,
					)
					return
				}
			}
		},
	)
	if assembleErr != nil {
		return nil, assembleErr
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// EncodeDagJSON writes the data model form of the header as DAG-JSON
func (h *BlockHeader) EncodeDagJSON(w io.Writer) error {
	n, err := h.Node()
	if err != nil {
		return err
	}
	return dagjson.Encode(n, w)
}

// EncodeDagCbor writes the data model form of the header as DAG-CBOR using
// the go-ipld-prime encoder. The output matches MarshalCBOR
func (h *BlockHeader) EncodeDagCbor(w io.Writer) error {
	n, err := h.Node()
	if err != nil {
		return err
	}
	return dagcbor.Encode(n, w)
}
