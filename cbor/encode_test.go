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

package cbor_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/go-ipld-bitcoin/cbor"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMapKeyOrder(t *testing.T) {
	// DAG-CBOR sorts map keys by length first, then bytewise
	data := map[string]int{
		"bb": 1,
		"a":  2,
		"c":  3,
	}
	cborData, err := cbor.Encode(data)
	require.NoError(t, err)
	assert.Equal(t, "a3616102616303626262"+"01", hex.EncodeToString(cborData))
}

func TestDecodeTrailingData(t *testing.T) {
	var dest uint64
	bytesRead, err := cbor.Decode([]byte{0x05, 0x06}, &dest)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), dest)
	assert.Equal(t, 1, bytesRead)
}

func TestDecodeIndefiniteLengthForbidden(t *testing.T) {
	var dest []uint64
	// Indefinite-length array containing 1
	if _, err := cbor.Decode([]byte{0x9f, 0x01, 0xff}, &dest); err == nil {
		t.Fatalf("did not get expected error")
	}
}

func TestDumpCbor(t *testing.T) {
	c, err := cid.Decode(testLinkCid)
	require.NoError(t, err)
	cborData, err := cbor.Encode(
		map[string]any{
			"n":    uint64(7),
			"link": cbor.NewLink(c),
		},
	)
	require.NoError(t, err)
	dump, err := cbor.DumpCbor(cborData)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dump, "{\n"), dump)
	assert.Contains(t, dump, "<link> "+testLinkCid)
	assert.Contains(t, dump, "0x7 (7)")
}
