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

// Package testdata provides shared block header fixtures for tests.
package testdata

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

// Mainnet block header
// Hash: 0000000000000002909eabb1da3710351faf452374946a0dfdb247d491c6c23e
//
//go:embed block.hex
var BlockHeaderHex string

// Mainnet block header with SegWit transactions
// Hash: 00000000000000000006d921ce47d509544dec06838a2ff9303c50d12f4a0199
//
//go:embed segwit.hex
var SegwitBlockHeaderHex string

// Mainnet block header with SegWit transactions
// Hash: 000000000000000000ac2a49162ec7c457212134e46ab24daa63e0fae949bd90
//
//go:embed segwit2.hex
var Segwit2BlockHeaderHex string

// Mainnet block header with SegWit transactions
// Hash: 000000000000000000d172ef46944db6127dbebe815664f26f37fef3e22fd65b
//
//go:embed segwit3.hex
var Segwit3BlockHeaderHex string

// TestBlockHeader contains a block header and its expected decoded fields.
// Digests are hex in wire order
type TestBlockHeader struct {
	Name       string
	Header     []byte
	Version    int32
	PrevHash   string
	MerkleRoot string
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
	// Expected multihash of the header CID, as hex
	Multihash string
}

// GetTestBlockHeaders returns the block header fixtures
func GetTestBlockHeaders() []TestBlockHeader {
	return []TestBlockHeader{
		{
			Name:       "Block",
			Header:     MustDecodeHex(BlockHeaderHex),
			Version:    2,
			PrevHash:   "87d6242b27d248a9e145fe764a0bcef03a403883a2e4c8590200000000000000",
			MerkleRoot: "11a5b9a70acebedbbf71ef8ca341e8a98cf279c49eee8f92e10a2227743b6aeb",
			Timestamp:  1386981279,
			Bits:       419740270,
			Nonce:      3159344128,
			Multihash:  "56203ec2c691d447b2fd0d6a94742345af1f351037dab1ab9e900200000000000000",
		},
		{
			Name:       "Segwit",
			Header:     MustDecodeHex(SegwitBlockHeaderHex),
			Version:    536870914,
			PrevHash:   "1b7c39197e95b49b38ff96c7bf9e1db4a9f36b5698ecd6000000000000000000",
			MerkleRoot: "c3f2244dfb3c833c62e72e05b7fd1bd6bcba2d6cd455984a1059db7a4bf38348",
			Timestamp:  1503722576,
			Bits:       402734313,
			Nonce:      3781004001,
			Multihash:  "562099014a2fd1503c30f92f8a8306ec4d5409d547ce21d906000000000000000000",
		},
		{
			Name:       "Segwit2",
			Header:     MustDecodeHex(Segwit2BlockHeaderHex),
			Version:    536870914,
			PrevHash:   "92f0d678374dbb0a205345d38f35be782412207bbdaa71000000000000000000",
			MerkleRoot: "99e3557bb520c3d45d6eb6ee18f93b3665bf4c8d9747200db4292fdbacc278c3",
			Timestamp:  1503851731,
			Bits:       402734313,
			Nonce:      3911763601,
			Multihash:  "562090bd49e9fae063aa4db26ae434212157c4c72e16492aac000000000000000000",
		},
		{
			Name:       "Segwit3",
			Header:     MustDecodeHex(Segwit3BlockHeaderHex),
			Version:    536870912,
			PrevHash:   "92fed79ebe58e1604dc08037488567c0881e1ae6a67831010000000000000000",
			MerkleRoot: "654f3617284e0c0f71baeaea9f54e337645550832b63de3dce4b66b2fbb27309",
			Timestamp:  1503848099,
			Bits:       402734313,
			Nonce:      2945767029,
			Multihash:  "56205bd62fe2f3fe376ff2645681bebe7d12b64d9446ef72d1000000000000000000",
		},
	}
}

// MustDecodeHex decodes a hex string to bytes, panicking on error.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		panic(err)
	}
	return b
}
