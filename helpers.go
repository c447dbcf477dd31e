// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"strings"

	"github.com/sercher/anoncreds-core/clint"
)

// ByteOrder selects the endianness EncodeAttribute reinterprets its
// truncated hash prefix in.
type ByteOrder int

const (
	// Big keeps the hash prefix in its natural (big-endian) order.
	Big ByteOrder = iota
	// Little reverses the hash prefix before interpreting it as an integer.
	Little
)

// CanonicalizeAttr is spec §4.3's canonicalize_attr: strip all spaces and
// lowercase. All lookups into PublicKey.R and all credential-value builders
// go through this first.
func CanonicalizeAttr(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// EncodeAttribute hashes s, truncates the digest at its first zero byte
// (keeping the prefix before it), optionally reverses that prefix, and
// interprets the result as an unsigned big-endian integer (spec §4.3). This
// truncation-at-zero behavior is an intentional compatibility choice
// inherited from the source service and must not be "fixed" (spec §9).
func EncodeAttribute(s string, order ByteOrder) *clint.Int {
	digest := clint.Hash([]byte(s))
	if i := indexOfZero(digest); i >= 0 {
		digest = digest[:i]
	}
	if order == Little {
		digest = reversed(digest)
	}
	return clint.FromBytes(digest)
}

func indexOfZero(b []byte) int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	return -1
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// U32ToBytesBE is spec §4.3's u32_to_bytes_be: the canonical 4-byte
// big-endian encoding used to turn an accumulator index into bytes before
// it is folded into a pairing scalar.
func U32ToBytesBE(i uint32) []byte {
	return []byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)}
}
