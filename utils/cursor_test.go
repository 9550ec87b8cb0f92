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

package utils_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/blinklabs-io/go-ipld-bitcoin/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteCursorRead(t *testing.T) {
	data := []byte{
		0x02, 0x00, 0x00, 0x00, // 2
		0xff, 0xff, 0xff, 0xff, // -1 / 0xffffffff
		0xaa, 0xbb, 0xcc,
	}
	c := utils.NewByteCursor(data)
	v, err := c.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(2), v)
	assert.Equal(t, 4, c.Offset())
	signed, err := c.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), signed)
	b, err := c.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, b)
	// ReadBytes returns a copy
	b[0] = 0x00
	assert.Equal(t, byte(0xaa), data[8])
	assert.Equal(t, 1, c.Remaining())
	var dest [1]byte
	require.NoError(t, c.ReadInto(dest[:]))
	assert.Equal(t, byte(0xcc), dest[0])
	assert.Equal(t, 0, c.Remaining())
}

func TestByteCursorShortBuffer(t *testing.T) {
	c := utils.NewByteCursor([]byte{0x01, 0x02, 0x03})
	if _, err := c.ReadUint32(); !errors.Is(err, utils.ErrShortBuffer) {
		t.Fatalf("did not get expected error: got %v", err)
	}
	// A failed read does not consume anything
	assert.Equal(t, 0, c.Offset())
	if _, err := c.ReadBytes(-1); !errors.Is(err, utils.ErrShortBuffer) {
		t.Fatalf("did not get expected error: got %v", err)
	}
	if err := c.WriteBytes([]byte{1, 2, 3, 4}); !errors.Is(err, utils.ErrShortBuffer) {
		t.Fatalf("did not get expected error: got %v", err)
	}
}

func TestByteCursorWrite(t *testing.T) {
	buf := make([]byte, 11)
	c := utils.NewByteCursor(buf)
	require.NoError(t, c.WriteInt32(-2))
	require.NoError(t, c.WriteUint32(0x11223344))
	require.NoError(t, c.WriteBytes([]byte{0xde, 0xad, 0xbe}))
	expected := []byte{
		0xfe, 0xff, 0xff, 0xff,
		0x44, 0x33, 0x22, 0x11,
		0xde, 0xad, 0xbe,
	}
	if !bytes.Equal(c.Bytes(), expected) {
		t.Fatalf(
			"did not get expected bytes\n  got: %x\n  wanted: %x",
			c.Bytes(),
			expected,
		)
	}
	if err := c.WriteUint32(0); !errors.Is(err, utils.ErrShortBuffer) {
		t.Fatalf("did not get expected error: got %v", err)
	}
}
