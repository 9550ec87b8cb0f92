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

package block

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput        = errors.New("malformed input")
	ErrInvalidPath           = errors.New("invalid path")
	ErrNoSuchPath            = errors.New("no such path")
	ErrNotTraversable        = errors.New("path is not traversable")
	ErrUnsupportedHashAlg    = errors.New("unsupported hash algorithm")
	ErrUnsupportedCidVersion = errors.New("unsupported CID version")
)

// MalformedInputError indicates bytes or a node that do not form a block header
type MalformedInputError struct {
	Reason string
}

func newMalformedInputError(format string, args ...any) MalformedInputError {
	return MalformedInputError{Reason: fmt.Sprintf(format, args...)}
}

func (e MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

func (MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// PathError records a path that could not be resolved, along with the
// offending segment when there is one
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("resolve %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf(
		"resolve %q: segment %q: %v",
		e.Path,
		e.Segment,
		e.Err,
	)
}

func (e *PathError) Unwrap() error { return e.Err }
