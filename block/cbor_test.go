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

package block_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/go-ipld-bitcoin/block"
	"github.com/blinklabs-io/go-ipld-bitcoin/cbor"
	"github.com/blinklabs-io/go-ipld-bitcoin/hashalg"
	"github.com/blinklabs-io/go-ipld-bitcoin/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DAG-CBOR form of the main test header, keys in length-first order
const testBlockDagCborHex = "a6627478d82a58260001b001562011a5b9a70acebedbbf71ef8ca341e8a98cf279c49eee8f92e10a2227743b6aeb656e6f6e63651abc4fc40066706172656e74d82a58260001b001562087d6242b27d248a9e145fe764a0bcef03a403883a2e4c85902000000000000006776657273696f6e026974696d657374616d701a52aba79f6a646966666963756c74791a1904ba6e"

func TestBlockHeaderMarshalCbor(t *testing.T) {
	h := testHeader(t)
	cborData, err := h.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, testBlockDagCborHex, hex.EncodeToString(cborData))
	// Encoding through the generic encoder gives the same bytes
	cborData2, err := cbor.Encode(h)
	require.NoError(t, err)
	assert.Equal(t, cborData, cborData2)
}

func TestBlockHeaderCborRoundTrip(t *testing.T) {
	for _, testDef := range testdata.GetTestBlockHeaders() {
		t.Run(testDef.Name, func(t *testing.T) {
			h, err := block.Deserialize(testDef.Header)
			require.NoError(t, err)
			cborData, err := h.MarshalCBOR()
			require.NoError(t, err)
			decoded, err := block.NewBlockHeaderFromCbor(cborData)
			require.NoError(t, err)
			assert.Equal(t, h, decoded)
			data, err := decoded.Bytes()
			require.NoError(t, err)
			assert.Equal(t, testDef.Header, data)
		})
	}
}

func TestBlockHeaderUnmarshalCborErrors(t *testing.T) {
	h := testHeader(t)
	validCbor, err := h.MarshalCBOR()
	require.NoError(t, err)
	sha3Cid, err := h.Cid(block.WithHashAlg(hashalg.Sha3_256))
	require.NoError(t, err)
	encodeMap := func(m map[string]any) []byte {
		ret, err := cbor.Encode(m)
		require.NoError(t, err)
		return ret
	}
	validMap := func() map[string]any {
		return map[string]any{
			"version":    h.Version,
			"timestamp":  h.Timestamp,
			"difficulty": h.Bits,
			"nonce":      h.Nonce,
			"parent":     cbor.NewLink(h.ParentLink().Cid()),
			"tx":         cbor.NewLink(h.TransactionsLink().Cid()),
		}
	}
	missingNonce := validMap()
	delete(missingNonce, "nonce")
	extraKey := validMap()
	extraKey["prevHash"] = uint64(1)
	wrongLinkHash := validMap()
	wrongLinkHash["parent"] = cbor.NewLink(sha3Cid)
	wrongType := validMap()
	wrongType["version"] = "two"
	testDefs := []struct {
		name     string
		cborData []byte
	}{
		{name: "Empty", cborData: []byte{}},
		{name: "NotAMap", cborData: []byte{0x01}},
		{name: "TrailingData", cborData: append(bytes.Clone(validCbor), 0x00)},
		{name: "MissingKey", cborData: encodeMap(missingNonce)},
		{name: "UnknownKey", cborData: encodeMap(extraKey)},
		{name: "WrongLinkHash", cborData: encodeMap(wrongLinkHash)},
		{name: "WrongType", cborData: encodeMap(wrongType)},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := block.NewBlockHeaderFromCbor(testDef.cborData)
			if !errors.Is(err, block.ErrMalformedInput) {
				t.Fatalf("did not get expected error: got %v", err)
			}
		})
	}
}
