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
	"fmt"
	"os"

	ipldbitcoin "github.com/blinklabs-io/go-ipld-bitcoin"
	"github.com/blinklabs-io/go-ipld-bitcoin/block"
	"github.com/blinklabs-io/go-ipld-bitcoin/cmd/common"
)

func main() {
	// Parse commandline
	f := common.NewGlobalFlags()
	f.Parse()

	logger, err := f.Logger()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	format := ipldbitcoin.New(
		ipldbitcoin.WithLogger(logger),
		ipldbitcoin.WithDefaultHashAlg(f.HashAlg),
		ipldbitcoin.WithDefaultCidVersion(f.CidVersion),
	)

	if len(f.Flagset.Args()) == 0 {
		fmt.Printf("You must specify a subcommand (decode, cid, resolve, tree, dagcbor)\n")
		os.Exit(1)
	}
	data, err := common.ReadInput(f.Hex, f.File, os.Stdin)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if f.Block {
		header, err := block.HeaderFromBlock(data)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		if data, err = header.Bytes(); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}

	out := &output{
		w:    os.Stdout,
		json: f.Json,
	}
	switch f.Flagset.Arg(0) {
	case "decode":
		err = runDecode(format, data, out)
	case "cid":
		err = runCid(format, data, out)
	case "resolve":
		err = runResolve(format, data, f.Flagset.Arg(1), out)
	case "tree":
		treeFlags := newTreeFlags()
		if err := treeFlags.flagset.Parse(f.Flagset.Args()[1:]); err != nil {
			fmt.Printf("failed to parse subcommand args: %s\n", err)
			os.Exit(1)
		}
		err = runTree(format, data, treeFlags.values, out)
	case "dagcbor":
		err = runDagCbor(format, data, out)
	default:
		fmt.Printf("Unknown subcommand: %s\n", f.Flagset.Arg(0))
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}
