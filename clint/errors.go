// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clint

import goerrors "github.com/go-errors/errors"

// Errorf builds a stack-trace-carrying error, mirroring gabi's use of
// github.com/go-errors/errors throughout clsignature.go and keys.go.
func Errorf(format string, args ...interface{}) error {
	return goerrors.Errorf(format, args...)
}
