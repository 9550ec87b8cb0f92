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

// Package utils provides low-level helpers shared by the codec packages
package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrShortBuffer = errors.New("cursor: not enough bytes remaining")

// ByteCursor reads and writes little-endian values sequentially over a fixed
// buffer. The buffer is never grown: writes past the end fail with
// ErrShortBuffer, the same as reads.
type ByteCursor struct {
	data []byte
	pos  int
}

// NewByteCursor returns a cursor positioned at the start of data
func NewByteCursor(data []byte) *ByteCursor {
	return &ByteCursor{data: data}
}

// Offset returns the number of bytes consumed so far
func (c *ByteCursor) Offset() int {
	return c.pos
}

// Remaining returns the number of bytes left before the end of the buffer
func (c *ByteCursor) Remaining() int {
	return len(c.data) - c.pos
}

// Bytes returns the underlying buffer
func (c *ByteCursor) Bytes() []byte {
	return c.data
}

func (c *ByteCursor) next(size int) ([]byte, error) {
	if size < 0 || c.Remaining() < size {
		return nil, fmt.Errorf(
			"%w: need %d at offset %d, have %d",
			ErrShortBuffer,
			size,
			c.pos,
			c.Remaining(),
		)
	}
	ret := c.data[c.pos : c.pos+size]
	c.pos += size
	return ret, nil
}

func (c *ByteCursor) ReadUint32() (uint32, error) {
	buf, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (c *ByteCursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	// #nosec G115 -- reinterpreting the wire bits as signed
	return int32(v), nil
}

// ReadBytes copies the next size bytes out of the buffer
func (c *ByteCursor) ReadBytes(size int) ([]byte, error) {
	buf, err := c.next(size)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, size)
	copy(ret, buf)
	return ret, nil
}

// ReadInto fills dest from the buffer without allocating
func (c *ByteCursor) ReadInto(dest []byte) error {
	buf, err := c.next(len(dest))
	if err != nil {
		return err
	}
	copy(dest, buf)
	return nil
}

func (c *ByteCursor) WriteUint32(val uint32) error {
	buf, err := c.next(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf, val)
	return nil
}

func (c *ByteCursor) WriteInt32(val int32) error {
	// #nosec G115 -- reinterpreting the signed value as wire bits
	return c.WriteUint32(uint32(val))
}

func (c *ByteCursor) WriteBytes(val []byte) error {
	buf, err := c.next(len(val))
	if err != nil {
		return err
	}
	copy(buf, val)
	return nil
}
