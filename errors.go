// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import goerrors "github.com/go-errors/errors"

// Kind classifies a core failure the way spec §7 abstractly names them.
type Kind int

const (
	// InvalidStructure marks a missing field, wrong shape, a saturated
	// accumulator, or a tail index outside the published table.
	InvalidStructure Kind = iota
	// InvalidParam marks a caller-side bad input.
	InvalidParam
	// OperationFailed marks RNG exhaustion, prime-generation failure, or
	// pairing failure.
	OperationFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidStructure:
		return "InvalidStructure"
	case InvalidParam:
		return "InvalidParam"
	case OperationFailed:
		return "OperationFailed"
	default:
		return "Unknown"
	}
}

// Error is the core's single error type: every fallible operation returns
// one of these (or nil), never recovering locally (spec §7).
type Error struct {
	Kind Kind
	err  *goerrors.Error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.err.Error() }

// Unwrap exposes the underlying stack-trace-carrying error for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

func newErr(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, err: goerrors.Errorf(format, args...)}
}

func wrapErr(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: goerrors.Errorf("%w", err)}
}
