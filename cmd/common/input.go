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

package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadInput returns the input bytes from a hex string, a file, or the
// provided reader, in that order of preference. File and reader contents are
// decoded as hex when they look like hex and used as-is otherwise
func ReadInput(hexData string, path string, r io.Reader) ([]byte, error) {
	if hexData != "" {
		data, err := hex.DecodeString(string(bytes.TrimSpace([]byte(hexData))))
		if err != nil {
			return nil, fmt.Errorf("decode hex input: %w", err)
		}
		return data, nil
	}
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}
	} else {
		if r == nil {
			return nil, errors.New("no input provided")
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}
	return maybeHex(data), nil
}

// maybeHex decodes data as hex if it consists only of hex digits, ignoring
// surrounding whitespace
func maybeHex(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || len(trimmed)%2 != 0 {
		return data
	}
	for _, b := range trimmed {
		isHex := (b >= '0' && b <= '9') ||
			(b >= 'a' && b <= 'f') ||
			(b >= 'A' && b <= 'F')
		if !isHex {
			return data
		}
	}
	decoded, err := hex.DecodeString(string(trimmed))
	if err != nil {
		return data
	}
	return decoded
}
