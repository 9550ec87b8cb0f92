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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/blinklabs-io/go-ipld-bitcoin/utils"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// Version 4 bytes + PrevHash 32 bytes + MerkleRoot 32 bytes +
	// Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes
	BlockHeaderSize = 80
	HashSize        = chainhash.HashSize
)

// BlockHeader is the structured form of a Bitcoin block header. The two
// digests are kept in wire byte order
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version
	Version int32
	// Hash of the previous block header
	PrevHash chainhash.Hash
	// Merkle tree reference to hash of all transactions for the block
	MerkleRoot chainhash.Hash
	// Time the block was created, in seconds since the epoch
	Timestamp uint32
	// Difficulty target for the block, in compact form
	Bits uint32
	// Nonce used to generate the block
	Nonce uint32
}

// NewBlockHeaderFromBytes decodes the 80-byte wire form of a block header
func NewBlockHeaderFromBytes(data []byte) (*BlockHeader, error) {
	if len(data) != BlockHeaderSize {
		return nil, newMalformedInputError(
			"block header must be %d bytes, got %d",
			BlockHeaderSize,
			len(data),
		)
	}
	h := &BlockHeader{}
	c := utils.NewByteCursor(data)
	var err error
	if h.Version, err = c.ReadInt32(); err != nil {
		return nil, newMalformedInputError("read version: %s", err)
	}
	if err := c.ReadInto(h.PrevHash[:]); err != nil {
		return nil, newMalformedInputError("read previous hash: %s", err)
	}
	if err := c.ReadInto(h.MerkleRoot[:]); err != nil {
		return nil, newMalformedInputError("read merkle root: %s", err)
	}
	if h.Timestamp, err = c.ReadUint32(); err != nil {
		return nil, newMalformedInputError("read timestamp: %s", err)
	}
	if h.Bits, err = c.ReadUint32(); err != nil {
		return nil, newMalformedInputError("read bits: %s", err)
	}
	if h.Nonce, err = c.ReadUint32(); err != nil {
		return nil, newMalformedInputError("read nonce: %s", err)
	}
	return h, nil
}

// Deserialize is an alias for NewBlockHeaderFromBytes
func Deserialize(data []byte) (*BlockHeader, error) {
	return NewBlockHeaderFromBytes(data)
}

// HeaderFromBlock decodes the header at the start of a serialized block
func HeaderFromBlock(data []byte) (*BlockHeader, error) {
	if len(data) < BlockHeaderSize {
		return nil, newMalformedInputError(
			"block must be at least %d bytes, got %d",
			BlockHeaderSize,
			len(data),
		)
	}
	return NewBlockHeaderFromBytes(data[:BlockHeaderSize])
}

// Bytes returns the 80-byte wire form of the header
func (h *BlockHeader) Bytes() ([]byte, error) {
	if h == nil {
		return nil, newMalformedInputError("block header is nil")
	}
	ret := make([]byte, BlockHeaderSize)
	c := utils.NewByteCursor(ret)
	if err := c.WriteInt32(h.Version); err != nil {
		return nil, newMalformedInputError("write version: %s", err)
	}
	if err := c.WriteBytes(h.PrevHash[:]); err != nil {
		return nil, newMalformedInputError("write previous hash: %s", err)
	}
	if err := c.WriteBytes(h.MerkleRoot[:]); err != nil {
		return nil, newMalformedInputError("write merkle root: %s", err)
	}
	if err := c.WriteUint32(h.Timestamp); err != nil {
		return nil, newMalformedInputError("write timestamp: %s", err)
	}
	if err := c.WriteUint32(h.Bits); err != nil {
		return nil, newMalformedInputError("write bits: %s", err)
	}
	if err := c.WriteUint32(h.Nonce); err != nil {
		return nil, newMalformedInputError("write nonce: %s", err)
	}
	return ret, nil
}

// Serialize encodes a node into the 80-byte wire form. The node may be a
// *BlockHeader, a BlockHeader, or a generic map as accepted by
// NewBlockHeaderFromMap
func Serialize(node any) ([]byte, error) {
	h, err := headerFromNode(node)
	if err != nil {
		return nil, err
	}
	return h.Bytes()
}

func headerFromNode(node any) (*BlockHeader, error) {
	switch v := node.(type) {
	case *BlockHeader:
		if v == nil {
			return nil, newMalformedInputError("block header is nil")
		}
		return v, nil
	case BlockHeader:
		return &v, nil
	case map[string]any:
		return NewBlockHeaderFromMap(v)
	case nil:
		return nil, newMalformedInputError("node is nil")
	default:
		return nil, newMalformedInputError("unsupported node type %T", node)
	}
}

// BlockHash returns the double SHA-256 of the serialized header. Its String()
// is the conventional byte-reversed display form
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encoding a non-nil header cannot fail
	data, _ := h.Bytes()
	return chainhash.DoubleHashH(data)
}

// Time returns the header timestamp
func (h *BlockHeader) Time() time.Time {
	return time.Unix(int64(h.Timestamp), 0).UTC()
}

// NewBlockHeaderFromMap builds a header from a generic map, such as one
// decoded from JSON. All six keys (version, prevHash, merkleRoot, timestamp,
// bits, nonce) are required. Digests may be given as 32 bytes or as hex in
// wire order
func NewBlockHeaderFromMap(m map[string]any) (*BlockHeader, error) {
	if m == nil {
		return nil, newMalformedInputError("node is nil")
	}
	h := &BlockHeader{}
	version, err := mapInteger(m, "version", math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	// #nosec G115 -- range checked above
	h.Version = int32(version)
	if h.PrevHash, err = mapHash(m, "prevHash"); err != nil {
		return nil, err
	}
	if h.MerkleRoot, err = mapHash(m, "merkleRoot"); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		key  string
		dest *uint32
	}{
		{"timestamp", &h.Timestamp},
		{"bits", &h.Bits},
		{"nonce", &h.Nonce},
	} {
		tmp, err := mapInteger(m, field.key, 0, math.MaxUint32)
		if err != nil {
			return nil, err
		}
		// #nosec G115 -- range checked above
		*field.dest = uint32(tmp)
	}
	return h, nil
}

func mapInteger(m map[string]any, key string, minVal int64, maxVal int64) (int64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, newMalformedInputError("missing field %q", key)
	}
	var val int64
	switch v := raw.(type) {
	case int:
		val = int64(v)
	case int8:
		val = int64(v)
	case int16:
		val = int64(v)
	case int32:
		val = int64(v)
	case int64:
		val = v
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, newMalformedInputError("field %q out of range: %d", key, v)
		}
		val = int64(v)
	case uint8:
		val = int64(v)
	case uint16:
		val = int64(v)
	case uint32:
		val = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, newMalformedInputError("field %q out of range: %d", key, v)
		}
		val = int64(v)
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v > math.MaxInt64 {
			return 0, newMalformedInputError("field %q is not an integer: %v", key, v)
		}
		val = int64(v)
	case json.Number:
		tmp, err := v.Int64()
		if err != nil {
			return 0, newMalformedInputError("field %q is not an integer: %s", key, v)
		}
		val = tmp
	default:
		return 0, newMalformedInputError("field %q has unexpected type %T", key, raw)
	}
	if val < minVal || val > maxVal {
		return 0, newMalformedInputError("field %q out of range: %d", key, val)
	}
	return val, nil
}

func mapHash(m map[string]any, key string) (chainhash.Hash, error) {
	var ret chainhash.Hash
	raw, ok := m[key]
	if !ok {
		return ret, newMalformedInputError("missing field %q", key)
	}
	var data []byte
	switch v := raw.(type) {
	case chainhash.Hash:
		return v, nil
	case []byte:
		data = v
	case string:
		tmp, err := hex.DecodeString(v)
		if err != nil {
			return ret, newMalformedInputError("field %q is not valid hex: %s", key, err)
		}
		data = tmp
	default:
		return ret, newMalformedInputError("field %q has unexpected type %T", key, raw)
	}
	if len(data) != HashSize {
		return ret, newMalformedInputError(
			"field %q must be %d bytes, got %d",
			key,
			HashSize,
			len(data),
		)
	}
	copy(ret[:], data)
	return ret, nil
}

// ToMap returns the generic map form accepted by NewBlockHeaderFromMap, with
// digests as wire-order hex
func (h *BlockHeader) ToMap() map[string]any {
	return map[string]any{
		"version":    h.Version,
		"prevHash":   hex.EncodeToString(h.PrevHash[:]),
		"merkleRoot": hex.EncodeToString(h.MerkleRoot[:]),
		"timestamp":  h.Timestamp,
		"bits":       h.Bits,
		"nonce":      h.Nonce,
	}
}

func (h *BlockHeader) String() string {
	return fmt.Sprintf(
		"BlockHeader{Hash: %s, Version: %d, Timestamp: %d, Bits: 0x%08x, Nonce: %d}",
		h.BlockHash(),
		h.Version,
		h.Timestamp,
		h.Bits,
		h.Nonce,
	)
}
