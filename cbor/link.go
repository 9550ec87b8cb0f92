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
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
)

// CborTagCid is the CBOR tag used by DAG-CBOR for content identifier links
const CborTagCid = 42

// Link corresponds to CBOR tag 42 and holds a CID. The tag content is a
// bytestring with a leading zero byte (the identity multibase prefix)
// followed by the binary CID
type Link struct {
	Cid cid.Cid
}

func NewLink(c cid.Cid) Link {
	return Link{Cid: c}
}

func (l Link) MarshalCBOR() ([]byte, error) {
	if !l.Cid.Defined() {
		return nil, errors.New("cannot encode undefined CID link")
	}
	cidBytes := l.Cid.Bytes()
	content := make([]byte, 0, len(cidBytes)+1)
	content = append(content, 0x00)
	content = append(content, cidBytes...)
	tmpData := Tag{
		Number:  CborTagCid,
		Content: content,
	}
	return Encode(&tmpData)
}

func (l *Link) UnmarshalCBOR(cborData []byte) error {
	if len(cborData) == 0 || cborData[0]&CborTypeMask != CborTypeTag {
		return errors.New("CID link is not a CBOR tag")
	}
	var tmpTag RawTag
	if _, err := Decode(cborData, &tmpTag); err != nil {
		return err
	}
	if tmpTag.Number != CborTagCid {
		return fmt.Errorf("unexpected CBOR tag for link: %d", tmpTag.Number)
	}
	var content []byte
	if _, err := Decode(tmpTag.Content, &content); err != nil {
		return err
	}
	if len(content) < 2 || content[0] != 0x00 {
		return errors.New("CID link is missing identity multibase prefix")
	}
	tmpCid, err := cid.Cast(content[1:])
	if err != nil {
		return fmt.Errorf("invalid CID in link: %w", err)
	}
	l.Cid = tmpCid
	return nil
}

func (l Link) String() string {
	return l.Cid.String()
}
