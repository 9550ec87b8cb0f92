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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// base58btc multibase prefix
const base58Prefix = "z"

type LinkRole int

const (
	LinkRoleParent LinkRole = iota
	LinkRoleTransactions
)

func (r LinkRole) String() string {
	switch r {
	case LinkRoleParent:
		return PathParent
	case LinkRoleTransactions:
		return PathTx
	default:
		return fmt.Sprintf("LinkRole(%d)", int(r))
	}
}

// Link is a reference from a header to another node. The digest is an
// existing double SHA-256 hash from the header, in wire order, and is wrapped
// as-is when materialized as a CID
type Link struct {
	Role   LinkRole
	Digest chainhash.Hash
}

// ParentLink returns the link to the previous block
func (h *BlockHeader) ParentLink() Link {
	return Link{Role: LinkRoleParent, Digest: h.PrevHash}
}

// TransactionsLink returns the link to the transaction merkle root
func (h *BlockHeader) TransactionsLink() Link {
	return Link{Role: LinkRoleTransactions, Digest: h.MerkleRoot}
}

// Cid returns the link as a CIDv1 with the bitcoin-block codec and a
// dbl-sha2-256 multihash. This does not depend on how the containing header
// is addressed
func (l Link) Cid() cid.Cid {
	mhash, err := mh.Encode(l.Digest[:], mh.DBL_SHA2_256)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding link multihash: %s", err),
		)
	}
	return cid.NewCidV1(Codec, mhash)
}

// String returns the link CID in base58btc
func (l Link) String() string {
	return CidBase58(l.Cid())
}

// MarshalJSON renders the link in the DAG-JSON link form
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"/": l.Cid().String()})
}

// LinkFromCid recovers a link from a CID, which must be a CIDv1 with the
// bitcoin-block codec and a 32-byte dbl-sha2-256 multihash
func LinkFromCid(role LinkRole, c cid.Cid) (Link, error) {
	if !c.Defined() {
		return Link{}, errors.New("CID is undefined")
	}
	if c.Version() != DefaultCidVersion {
		return Link{}, fmt.Errorf(
			"%w: %d",
			ErrUnsupportedCidVersion,
			c.Version(),
		)
	}
	if c.Type() != Codec {
		return Link{}, fmt.Errorf("unexpected CID codec: 0x%x", c.Type())
	}
	decoded, err := mh.Decode(c.Hash())
	if err != nil {
		return Link{}, fmt.Errorf("decode multihash: %w", err)
	}
	if decoded.Code != mh.DBL_SHA2_256 {
		return Link{}, fmt.Errorf(
			"%w: link multihash code 0x%x",
			ErrUnsupportedHashAlg,
			decoded.Code,
		)
	}
	if len(decoded.Digest) != HashSize {
		return Link{}, fmt.Errorf(
			"link digest must be %d bytes, got %d",
			HashSize,
			len(decoded.Digest),
		)
	}
	ret := Link{Role: role}
	copy(ret.Digest[:], decoded.Digest)
	return ret, nil
}

// CidBase58 returns the base58btc multibase text form of a CID
func CidBase58(c cid.Cid) string {
	return base58Prefix + base58.Encode(c.Bytes())
}

// ParseCid parses the text form of a CID. The base58btc form is decoded
// directly and anything else is handed to go-cid
func ParseCid(s string) (cid.Cid, error) {
	if encoded, ok := strings.CutPrefix(s, base58Prefix); ok {
		data := base58.Decode(encoded)
		if len(data) == 0 {
			return cid.Undef, fmt.Errorf("invalid base58 CID: %q", s)
		}
		return cid.Cast(data)
	}
	return cid.Decode(s)
}
