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

	"github.com/blinklabs-io/go-ipld-bitcoin/cbor"
)

// headerCbor is the DAG-CBOR form of a header. Digests travel inside the
// parent and tx links, so the form is lossless
type headerCbor struct {
	Version    int32     `cbor:"version"`
	Timestamp  uint32    `cbor:"timestamp"`
	Difficulty uint32    `cbor:"difficulty"`
	Nonce      uint32    `cbor:"nonce"`
	Parent     cbor.Link `cbor:"parent"`
	Tx         cbor.Link `cbor:"tx"`
}

func (c *headerCbor) UnmarshalCBOR(cborData []byte) error {
	// Every key must be present, since a missing integer would otherwise
	// decode as zero
	var tmpMap map[string]cbor.RawMessage
	if _, err := cbor.Decode(cborData, &tmpMap); err != nil {
		return err
	}
	for _, path := range treePaths {
		if _, ok := tmpMap[path]; !ok {
			return fmt.Errorf("missing key %q", path)
		}
	}
	return cbor.DecodeGeneric(cborData, c)
}

// MarshalCBOR encodes the header as a DAG-CBOR map of its six paths
func (h *BlockHeader) MarshalCBOR() ([]byte, error) {
	if h == nil {
		return nil, newMalformedInputError("block header is nil")
	}
	tmp := headerCbor{
		Version:    h.Version,
		Timestamp:  h.Timestamp,
		Difficulty: h.Bits,
		Nonce:      h.Nonce,
		Parent:     cbor.NewLink(h.ParentLink().Cid()),
		Tx:         cbor.NewLink(h.TransactionsLink().Cid()),
	}
	return cbor.Encode(&tmp)
}

// UnmarshalCBOR decodes the DAG-CBOR form produced by MarshalCBOR
func (h *BlockHeader) UnmarshalCBOR(cborData []byte) error {
	if len(cborData) == 0 || cborData[0]&cbor.CborTypeMask != cbor.CborTypeMap {
		return newMalformedInputError("DAG-CBOR header is not a map")
	}
	var tmp headerCbor
	n, err := cbor.Decode(cborData, &tmp)
	if err != nil {
		return newMalformedInputError("decode DAG-CBOR header: %s", err)
	}
	if n != len(cborData) {
		return newMalformedInputError(
			"trailing data after DAG-CBOR header: %d bytes",
			len(cborData)-n,
		)
	}
	parent, err := LinkFromCid(LinkRoleParent, tmp.Parent.Cid)
	if err != nil {
		return newMalformedInputError("parent link: %s", err)
	}
	tx, err := LinkFromCid(LinkRoleTransactions, tmp.Tx.Cid)
	if err != nil {
		return newMalformedInputError("tx link: %s", err)
	}
	*h = BlockHeader{
		Version:    tmp.Version,
		PrevHash:   parent.Digest,
		MerkleRoot: tx.Digest,
		Timestamp:  tmp.Timestamp,
		Bits:       tmp.Difficulty,
		Nonce:      tmp.Nonce,
	}
	return nil
}

// NewBlockHeaderFromCbor decodes the DAG-CBOR form of a header
func NewBlockHeaderFromCbor(cborData []byte) (*BlockHeader, error) {
	h := &BlockHeader{}
	if err := h.UnmarshalCBOR(cborData); err != nil {
		return nil, err
	}
	return h, nil
}
