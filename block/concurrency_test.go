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

package block_test

import (
	"sync"
	"testing"

	"github.com/blinklabs-io/go-ipld-bitcoin/block"
	"github.com/blinklabs-io/go-ipld-bitcoin/hashalg"
	"go.uber.org/goleak"
)

func TestConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := testHeader(t)
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := range 16 {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hashAlg := hashalg.Names()[idx%len(hashalg.Names())]
			for range 50 {
				if _, err := block.Cid(h, block.WithHashAlg(hashAlg)); err != nil {
					errs <- err
					return
				}
				res, err := block.Resolve(h, "parent/version")
				if err != nil {
					errs <- err
					return
				}
				if res.Value.(block.Link).String() != testParentCid {
					t.Errorf("unexpected parent link: %v", res.Value)
					return
				}
				if _, err := h.MarshalCBOR(); err != nil {
					errs <- err
					return
				}
				if _, err := block.Tree(h, block.WithValues(true)); err != nil {
					errs <- err
					return
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %s", err)
	}
}
