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

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	ipldbitcoin "github.com/blinklabs-io/go-ipld-bitcoin"
	"github.com/blinklabs-io/go-ipld-bitcoin/block"
	"github.com/blinklabs-io/go-ipld-bitcoin/cbor"
)

type output struct {
	w    io.Writer
	json bool
}

func (o *output) writeJson(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (o *output) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(o.w, format, args...)
	return err
}

func runDecode(format *ipldbitcoin.Format, data []byte, out *output) error {
	header, err := format.Deserialize(data)
	if err != nil {
		return err
	}
	if out.json {
		if err := header.EncodeDagJSON(out.w); err != nil {
			return err
		}
		return out.printf("\n")
	}
	return out.printf(
		"hash = %s\nversion = %d\nprevHash = %s\nmerkleRoot = %s\ntimestamp = %d (%s)\nbits = 0x%08x\nnonce = %d\n",
		header.BlockHash(),
		header.Version,
		hex.EncodeToString(header.PrevHash[:]),
		hex.EncodeToString(header.MerkleRoot[:]),
		header.Timestamp,
		header.Time(),
		header.Bits,
		header.Nonce,
	)
}

func runCid(format *ipldbitcoin.Format, data []byte, out *output) error {
	header, err := format.Deserialize(data)
	if err != nil {
		return err
	}
	c, err := format.Cid(header)
	if err != nil {
		return err
	}
	if out.json {
		return out.writeJson(
			map[string]string{
				"cid":       c.String(),
				"base58btc": block.CidBase58(c),
			},
		)
	}
	return out.printf("%s\n%s\n", c, block.CidBase58(c))
}

func runResolve(
	format *ipldbitcoin.Format,
	data []byte,
	path string,
	out *output,
) error {
	res, err := format.Resolve(data, path)
	if err != nil {
		return err
	}
	value := res.Value
	if header, ok := value.(*block.BlockHeader); ok {
		value = header.ToMap()
	}
	if out.json {
		return out.writeJson(
			map[string]any{
				"value":         value,
				"remainderPath": res.RemainderPath,
			},
		)
	}
	if err := out.printf("value = %v\n", value); err != nil {
		return err
	}
	if _, ok := res.Value.(block.Link); ok {
		return out.printf("remainderPath = %q\n", res.RemainderPath)
	}
	return nil
}

type treeFlags struct {
	flagset *flag.FlagSet
	values  bool
}

func newTreeFlags() *treeFlags {
	f := &treeFlags{
		flagset: flag.NewFlagSet("tree", flag.ExitOnError),
	}
	f.flagset.BoolVar(
		&f.values,
		"values",
		false,
		"include the value of each path",
	)
	return f
}

func runTree(
	format *ipldbitcoin.Format,
	data []byte,
	values bool,
	out *output,
) error {
	res, err := format.Tree(data, block.WithValues(values))
	if err != nil {
		return err
	}
	if out.json {
		return out.writeJson(
			map[string]any{
				"paths":  res.Paths,
				"values": res.Values,
			},
		)
	}
	for _, path := range res.Paths {
		if !values {
			if err := out.printf("%s\n", path); err != nil {
				return err
			}
			continue
		}
		if err := out.printf("%s = %v\n", path, res.Values[path]); err != nil {
			return err
		}
	}
	return nil
}

func runDagCbor(format *ipldbitcoin.Format, data []byte, out *output) error {
	header, err := format.Deserialize(data)
	if err != nil {
		return err
	}
	cborData, err := header.MarshalCBOR()
	if err != nil {
		return err
	}
	if out.json {
		return out.writeJson(
			map[string]string{
				"cbor": hex.EncodeToString(cborData),
			},
		)
	}
	dump, err := cbor.DumpCbor(cborData)
	if err != nil {
		return err
	}
	return out.printf("%s\n%s", hex.EncodeToString(cborData), dump)
}
