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

	"github.com/blinklabs-io/go-ipld-bitcoin/hashalg"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

const (
	// Codec is the multicodec code for a Bitcoin block header
	Codec = cid.BitcoinBlock
	// CodecName is the multicodec name for a Bitcoin block header
	CodecName = "bitcoin-block"
	// DefaultHashAlg is the native hash algorithm of a Bitcoin block header
	DefaultHashAlg = hashalg.DblSha2_256
	// DefaultCidVersion is the only CID version able to carry the codec
	DefaultCidVersion uint64 = 1
)

// CidConfig controls how a header is addressed
type CidConfig struct {
	// HashAlg names the hash algorithm used for the digest. An empty value
	// means DefaultHashAlg
	HashAlg string
	// CidVersion is the CID envelope version. Only version 1 is supported,
	// since a version 0 CID cannot carry the bitcoin-block codec
	CidVersion uint64
	// Hasher computes the digest. It defaults to hashalg.Sum
	Hasher hashalg.SumFunc
}

// CidOptionFunc represents a function used to modify the CID config
type CidOptionFunc func(*CidConfig)

// NewCidConfig returns a new CID config object with the provided options
func NewCidConfig(options ...CidOptionFunc) CidConfig {
	c := CidConfig{
		HashAlg:    DefaultHashAlg,
		CidVersion: DefaultCidVersion,
		Hasher:     hashalg.Sum,
	}
	// Apply provided options functions
	for _, option := range options {
		option(&c)
	}
	if c.HashAlg == "" {
		c.HashAlg = DefaultHashAlg
	}
	if c.Hasher == nil {
		c.Hasher = hashalg.Sum
	}
	return c
}

// WithHashAlg specifies the hash algorithm by name
func WithHashAlg(name string) CidOptionFunc {
	return func(c *CidConfig) {
		c.HashAlg = name
	}
}

// WithCidVersion specifies the CID version
func WithCidVersion(version uint64) CidOptionFunc {
	return func(c *CidConfig) {
		c.CidVersion = version
	}
}

// WithHasher specifies the hash primitive used to compute digests
func WithHasher(hasher hashalg.SumFunc) CidOptionFunc {
	return func(c *CidConfig) {
		c.Hasher = hasher
	}
}

// Cid computes the content identifier of a node. The node is serialized with
// Serialize, so the same node types are accepted and the same errors apply
func Cid(node any, options ...CidOptionFunc) (cid.Cid, error) {
	data, err := Serialize(node)
	if err != nil {
		return cid.Undef, err
	}
	return CidFromBytes(data, NewCidConfig(options...))
}

// Cid computes the content identifier of the header
func (h *BlockHeader) Cid(options ...CidOptionFunc) (cid.Cid, error) {
	return Cid(h, options...)
}

// CidFromBytes computes the content identifier of an already serialized header
func CidFromBytes(data []byte, cfg CidConfig) (cid.Cid, error) {
	if cfg.CidVersion != DefaultCidVersion {
		return cid.Undef, fmt.Errorf(
			"%w: %d",
			ErrUnsupportedCidVersion,
			cfg.CidVersion,
		)
	}
	alg, err := hashalg.Lookup(cfg.HashAlg)
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %w", ErrUnsupportedHashAlg, err)
	}
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = hashalg.Sum
	}
	digest, err := hasher(data, alg.Name)
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %w", ErrUnsupportedHashAlg, err)
	}
	if len(digest) != alg.Size {
		return cid.Undef, fmt.Errorf(
			"%w: %s digest must be %d bytes, got %d",
			ErrUnsupportedHashAlg,
			alg.Name,
			alg.Size,
			len(digest),
		)
	}
	mhash, err := mh.Encode(digest, alg.Code)
	if err != nil {
		return cid.Undef, fmt.Errorf("encode multihash: %w", err)
	}
	return cid.NewCidV1(Codec, mhash), nil
}
