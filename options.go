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

package ipldbitcoin

import (
	"log/slog"

	"github.com/blinklabs-io/go-ipld-bitcoin/hashalg"
)

// FormatOptionFunc represents a function used to modify a Format
type FormatOptionFunc func(*Format)

// WithLogger specifies the logger used for debug output
func WithLogger(logger *slog.Logger) FormatOptionFunc {
	return func(f *Format) {
		f.logger = logger
	}
}

// WithDefaultHashAlg specifies the hash algorithm used by Cid when the caller
// does not pass one
func WithDefaultHashAlg(name string) FormatOptionFunc {
	return func(f *Format) {
		f.hashAlg = name
	}
}

// WithDefaultCidVersion specifies the CID version used by Cid when the caller
// does not pass one
func WithDefaultCidVersion(version uint64) FormatOptionFunc {
	return func(f *Format) {
		f.cidVersion = version
	}
}

// WithHasher specifies the hash primitive used by Cid
func WithHasher(hasher hashalg.SumFunc) FormatOptionFunc {
	return func(f *Format) {
		f.hasher = hasher
	}
}
