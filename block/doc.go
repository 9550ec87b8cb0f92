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

// Package block implements a Bitcoin block header as an IPLD node.
//
// A BlockHeader is decoded from (and encoded back to) the fixed 80-byte wire
// layout, addressed with a CID using the bitcoin-block codec, and navigated
// by slash-delimited paths. The parent block and the transaction merkle root
// are exposed as links, which are CIDs wrapping the existing double-SHA-256
// digests from the header.
//
// # Paths
//
// The first-level paths, in enumeration order, are:
//
//	version     int32
//	timestamp   uint32
//	difficulty  uint32 (the compact "bits" target)
//	nonce       uint32
//	parent      Link to the previous block
//	tx          Link to the transaction merkle root
//
// Resolving through a link stops at the link and returns the unconsumed part
// of the path as the remainder. Following it is up to the caller.
package block
