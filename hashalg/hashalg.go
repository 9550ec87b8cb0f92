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

// Package hashalg provides the named hash algorithms that can be used to
// address a block header, along with their multihash codes
package hashalg

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	mh "github.com/multiformats/go-multihash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

const (
	DblSha2_256 = "dbl-sha2-256"
	Sha2_256    = "sha2-256"
	Sha2_512    = "sha2-512"
	Sha3_256    = "sha3-256"
	Sha3_512    = "sha3-512"
	Keccak256   = "keccak-256"
	Blake2b256  = "blake2b-256"
	Blake3      = "blake3"
)

var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// SumFunc computes the digest of data using the named algorithm. It is the
// shape of an injectable hash primitive
type SumFunc func(data []byte, name string) ([]byte, error)

// Algorithm describes a supported hash algorithm
type Algorithm struct {
	Name string
	// Multihash code
	Code uint64
	// Digest size in bytes
	Size int
	sum  func([]byte) []byte
}

// Sum returns the digest of data
func (a Algorithm) Sum(data []byte) []byte {
	return a.sum(data)
}

func (a Algorithm) String() string {
	return a.Name
}

// algorithms is ordered, and this order is what Names returns
var algorithms = []Algorithm{
	{
		Name: DblSha2_256,
		Code: mh.DBL_SHA2_256,
		Size: chainhash.HashSize,
		sum:  chainhash.DoubleHashB,
	},
	{
		Name: Sha2_256,
		Code: mh.SHA2_256,
		Size: sha256.Size,
		sum: func(data []byte) []byte {
			tmp := sha256.Sum256(data)
			return tmp[:]
		},
	},
	{
		Name: Sha2_512,
		Code: mh.SHA2_512,
		Size: sha512.Size,
		sum: func(data []byte) []byte {
			tmp := sha512.Sum512(data)
			return tmp[:]
		},
	},
	{
		Name: Sha3_256,
		Code: mh.SHA3_256,
		Size: 32,
		sum: func(data []byte) []byte {
			tmp := sha3.Sum256(data)
			return tmp[:]
		},
	},
	{
		Name: Sha3_512,
		Code: mh.SHA3_512,
		Size: 64,
		sum: func(data []byte) []byte {
			tmp := sha3.Sum512(data)
			return tmp[:]
		},
	},
	{
		Name: Keccak256,
		Code: mh.KECCAK_256,
		Size: 32,
		sum: func(data []byte) []byte {
			h := sha3.NewLegacyKeccak256()
			h.Write(data)
			return h.Sum(nil)
		},
	},
	{
		Name: Blake2b256,
		// blake2b codes are offset by the digest length in bytes
		Code: mh.BLAKE2B_MIN + blake2b.Size256 - 1,
		Size: blake2b.Size256,
		sum: func(data []byte) []byte {
			tmp := blake2b.Sum256(data)
			return tmp[:]
		},
	},
	{
		Name: Blake3,
		Code: mh.BLAKE3,
		Size: 32,
		sum: func(data []byte) []byte {
			tmp := blake3.Sum256(data)
			return tmp[:]
		},
	},
}

var (
	algorithmsByName = map[string]Algorithm{}
	algorithmsByCode = map[uint64]Algorithm{}
)

func init() {
	for _, alg := range algorithms {
		// Names must match the multihash table for the code
		if mhName := mh.Codes[alg.Code]; mhName != alg.Name {
			panic(
				fmt.Sprintf(
					"unexpected multihash name for code 0x%x: %q, expected %q",
					alg.Code,
					mhName,
					alg.Name,
				),
			)
		}
		algorithmsByName[alg.Name] = alg
		algorithmsByCode[alg.Code] = alg
	}
}

// Lookup returns the algorithm with the given name
func Lookup(name string) (Algorithm, error) {
	alg, ok := algorithmsByName[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// LookupCode returns the algorithm with the given multihash code
func LookupCode(code uint64) (Algorithm, error) {
	alg, ok := algorithmsByCode[code]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: code 0x%x", ErrUnknownAlgorithm, code)
	}
	return alg, nil
}

// Names returns the names of all supported algorithms
func Names() []string {
	ret := make([]string, 0, len(algorithms))
	for _, alg := range algorithms {
		ret = append(ret, alg.Name)
	}
	return ret
}

// Sum computes the digest of data using the named algorithm. It satisfies SumFunc
func Sum(data []byte, name string) ([]byte, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return alg.Sum(data), nil
}
