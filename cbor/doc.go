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

// Package cbor provides CBOR encoding/decoding utilities for DAG-CBOR data.
//
// This package wraps github.com/fxamacker/cbor/v2 with the strictness rules
// that DAG-CBOR requires.
//
// # Key Types
//
//   - Link: CBOR tag 42 content identifier link
//   - RawMessage: Deferred decoding (like json.RawMessage)
//   - Tag, RawTag: CBOR semantic tags
//
// # Encoding Rules
//
//  1. Map keys are sorted length-first, then bytewise (RFC 7049 canonical)
//  2. Indefinite-length items are rejected in both directions
//  3. Duplicate map keys are rejected when decoding
//  4. Links are tag 42 wrapping a bytestring of 0x00 followed by the binary CID
//
// Use DecodeGeneric from a custom UnmarshalCBOR() to decode into the same
// type without recursing into the custom function.
package cbor
