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
	"encoding/json"
	"testing"

	"github.com/ipld/go-ipld-prime/datamodel"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockHeaderNode(t *testing.T) {
	h := testHeader(t)
	n, err := h.Node()
	require.NoError(t, err)
	assert.Equal(t, datamodel.Kind_Map, n.Kind())
	assert.Equal(t, int64(len(expectedTreePaths)), n.Length())
	version, err := n.LookupByString("version")
	require.NoError(t, err)
	versionVal, err := version.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(2), versionVal)
	nonce, err := n.LookupByString("nonce")
	require.NoError(t, err)
	nonceVal, err := nonce.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3159344128), nonceVal)
	parent, err := n.LookupByString("parent")
	require.NoError(t, err)
	parentLink, err := parent.AsLink()
	require.NoError(t, err)
	cl, ok := parentLink.(cidlink.Link)
	require.True(t, ok)
	assert.True(t, cl.Cid.Equals(h.ParentLink().Cid()))
	if _, err := n.LookupByString("prevHash"); err == nil {
		t.Fatalf("did not get expected error")
	}
}

func TestBlockHeaderEncodeDagCborMatches(t *testing.T) {
	h := testHeader(t)
	var buf bytes.Buffer
	require.NoError(t, h.EncodeDagCbor(&buf))
	cborData, err := h.MarshalCBOR()
	require.NoError(t, err)
	if !bytes.Equal(buf.Bytes(), cborData) {
		t.Fatalf(
			"DAG-CBOR encodings differ\n  go-ipld-prime: %x\n  MarshalCBOR: %x",
			buf.Bytes(),
			cborData,
		)
	}
}

func TestBlockHeaderEncodeDagJSON(t *testing.T) {
	h := testHeader(t)
	var buf bytes.Buffer
	require.NoError(t, h.EncodeDagJSON(&buf))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, len(expectedTreePaths))
	assert.Equal(t, float64(2), decoded["version"])
	assert.Equal(t, float64(1386981279), decoded["timestamp"])
	assert.Equal(t, float64(419740270), decoded["difficulty"])
	assert.Equal(
		t,
		map[string]any{"/": h.ParentLink().Cid().String()},
		decoded["parent"],
	)
	assert.Equal(
		t,
		map[string]any{"/": h.TransactionsLink().Cid().String()},
		decoded["tx"],
	)
}
