// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import "github.com/sirupsen/logrus"

// Logger is the package-level logger, following gabi's credential.go
// convention of a package-level Logger. It defaults to Warn level; no
// function in this package currently writes to it.
var Logger = logrus.New()

func init() {
	Logger.SetLevel(logrus.WarnLevel)
}
