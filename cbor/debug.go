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

package cbor

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ipfs/go-cid"
)

// DumpCbor decodes arbitrary CBOR data and returns an indented string representing
// its structure for debugging purposes
func DumpCbor(cborData []byte) (string, error) {
	var tmp any
	if _, err := Decode(cborData, &tmp); err != nil {
		return "", err
	}
	return DumpCborStructure(tmp, ""), nil
}

// DumpCborStructure generates an indented string representing an arbitrary data structure for debugging purposes
func DumpCborStructure(data any, prefix string) string {
	var ret bytes.Buffer
	newPrefix := "  " + prefix
	switch v := data.(type) {
	case int, uint, int16, uint16, int32, uint32, int64, uint64:
		return fmt.Sprintf("%s0x%x (%d),\n", prefix, v, v)
	case []uint8:
		return fmt.Sprintf("%s<bytes> (length %d),\n", prefix, len(v))
	case Tag:
		if content, ok := v.Content.([]byte); ok && v.Number == CborTagCid &&
			len(content) > 1 {
			if tmpCid, err := cid.Cast(content[1:]); err == nil {
				return fmt.Sprintf("%s<link> %s,\n", prefix, tmpCid)
			}
		}
		ret.WriteString(fmt.Sprintf("%s<tag %d>\n", prefix, v.Number))
		ret.WriteString(DumpCborStructure(v.Content, newPrefix))
	case []any:
		ret.WriteString(prefix + "[\n")
		for _, val := range v {
			ret.WriteString(DumpCborStructure(val, newPrefix))
		}
		ret.WriteString(prefix + "],\n")
	case map[any]any:
		// Sort keys so that the output is stable
		keys := make([]string, 0, len(v))
		values := make(map[string]any, len(v))
		for key, val := range v {
			tmpKey := fmt.Sprintf("%#v", key)
			keys = append(keys, tmpKey)
			values[tmpKey] = val
		}
		sort.Strings(keys)
		ret.WriteString(prefix + "{\n")
		for _, key := range keys {
			ret.WriteString(
				fmt.Sprintf(
					"%s%s =>\n%s",
					newPrefix,
					key,
					DumpCborStructure(values[key], "  "+newPrefix),
				),
			)
		}
		ret.WriteString(prefix + "},\n")
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
