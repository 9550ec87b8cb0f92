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

// Package ipldbitcoin exposes Bitcoin block headers as IPLD nodes with the
// bitcoin-block codec.
package ipldbitcoin

import (
	"log/slog"

	"github.com/blinklabs-io/go-ipld-bitcoin/block"
	"github.com/blinklabs-io/go-ipld-bitcoin/hashalg"
	"github.com/ipfs/go-cid"
)

// Format bundles the bitcoin-block codec operations with default addressing
// options and a logger. A Format is immutable after New and safe for
// concurrent use
type Format struct {
	logger     *slog.Logger
	hashAlg    string
	cidVersion uint64
	hasher     hashalg.SumFunc
}

// New returns a Format with the provided options applied
func New(options ...FormatOptionFunc) *Format {
	f := &Format{
		hashAlg:    block.DefaultHashAlg,
		cidVersion: block.DefaultCidVersion,
	}
	for _, option := range options {
		option(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.hashAlg == "" {
		f.hashAlg = block.DefaultHashAlg
	}
	return f
}

// Name returns the multicodec name
func (f *Format) Name() string {
	return block.CodecName
}

// Codec returns the multicodec code
func (f *Format) Codec() uint64 {
	return block.Codec
}

// DefaultHashAlg returns the hash algorithm used by Cid when no option
// overrides it
func (f *Format) DefaultHashAlg() string {
	return f.hashAlg
}

// DefaultCidVersion returns the CID version used by Cid when no option
// overrides it
func (f *Format) DefaultCidVersion() uint64 {
	return f.cidVersion
}

// Deserialize decodes an 80-byte block header
func (f *Format) Deserialize(data []byte) (*block.BlockHeader, error) {
	header, err := block.Deserialize(data)
	if err != nil {
		f.logger.Debug(
			"failed to decode block header",
			"length",
			len(data),
			"error",
			err,
		)
		return nil, err
	}
	f.logger.Debug(
		"decoded block header",
		"hash",
		header.BlockHash().String(),
	)
	return header, nil
}

// Serialize encodes a node back to its 80-byte form. See block.Serialize for
// the accepted node types
func (f *Format) Serialize(node any) ([]byte, error) {
	data, err := block.Serialize(node)
	if err != nil {
		f.logger.Debug(
			"failed to encode block header",
			"error",
			err,
		)
		return nil, err
	}
	return data, nil
}

// Cid computes the content identifier of a node. The Format defaults are
// applied first, so the provided options override them
func (f *Format) Cid(node any, options ...block.CidOptionFunc) (cid.Cid, error) {
	opts := make([]block.CidOptionFunc, 0, len(options)+3)
	opts = append(
		opts,
		block.WithHashAlg(f.hashAlg),
		block.WithCidVersion(f.cidVersion),
	)
	if f.hasher != nil {
		opts = append(opts, block.WithHasher(f.hasher))
	}
	opts = append(opts, options...)
	cfg := block.NewCidConfig(opts...)
	c, err := block.Cid(node, opts...)
	if err != nil {
		f.logger.Debug(
			"failed to compute CID",
			"hash_alg",
			cfg.HashAlg,
			"cid_version",
			cfg.CidVersion,
			"error",
			err,
		)
		return cid.Undef, err
	}
	f.logger.Debug(
		"computed CID",
		"cid",
		c.String(),
		"hash_alg",
		cfg.HashAlg,
	)
	return c, nil
}

// Resolve decodes a block header and resolves a path against it
func (f *Format) Resolve(
	data []byte,
	path string,
) (*block.ResolveResult, error) {
	header, err := f.Deserialize(data)
	if err != nil {
		return nil, err
	}
	res, err := block.Resolve(header, path)
	if err != nil {
		f.logger.Debug(
			"failed to resolve path",
			"path",
			path,
			"error",
			err,
		)
		return nil, err
	}
	f.logger.Debug(
		"resolved path",
		"path",
		path,
		"remainder",
		res.RemainderPath,
	)
	return res, nil
}

// Tree decodes a block header and enumerates its paths
func (f *Format) Tree(
	data []byte,
	options ...block.TreeOptionFunc,
) (*block.TreeResult, error) {
	header, err := f.Deserialize(data)
	if err != nil {
		return nil, err
	}
	return block.Tree(header, options...)
}
