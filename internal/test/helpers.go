package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeHashString decodes a wire-order hex digest into a chainhash.Hash
func DecodeHashString(hexData string) chainhash.Hash {
	var ret chainhash.Hash
	if err := ret.SetBytes(DecodeHexString(hexData)); err != nil {
		panic(fmt.Sprintf("error decoding hash: %s", err))
	}
	return ret
}

// PadBlock appends filler bytes to a block header to mimic a full serialized
// block with transaction data following the header
func PadBlock(header []byte, size int) []byte {
	ret := make([]byte, len(header), len(header)+size)
	copy(ret, header)
	for i := range size {
		ret = append(ret, byte(i))
	}
	return ret
}
