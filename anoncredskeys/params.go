// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anoncredskeys holds the primary CL-signature key types and the
// bit-length budgets that govern them, the way gabi's gabikeys package
// holds PublicKey/PrivateKey/SystemParameters for its RSA-only scheme.
package anoncredskeys

// SystemParameters are the bit-exact size constants spec §6 requires.
// Unlike gabi's per-keylength table (gabikeys.DefaultSystemParameters),
// this scheme uses a single fixed parameter set, matching the source
// service it is ported from.
type SystemParameters struct {
	// LargePrime is the bit length of the safe primes P, Q from which the
	// RSA modulus n = P*Q is built.
	LargePrime uint
	// LargeEStart, LargeEEndRange bound the certificate exponent e: e is
	// drawn uniformly from the prime range
	// [2^LargeEStart, 2^LargeEStart + 2^LargeEEndRange).
	LargeEStart    uint
	LargeEEndRange uint
	// LargeMasterSecret bounds the context attribute m2 (2^LargeMasterSecret).
	LargeMasterSecret uint
	// LargeVPrimePrime is the bit length of the blinding factor v''.
	LargeVPrimePrime uint
}

// DefaultSystemParameters is the parameter set this module's Issuer Core
// always uses (spec §6 constants, carried over bit-exact from the source
// service's cl/constants.rs).
var DefaultSystemParameters = SystemParameters{
	LargePrime:        1536,
	LargeEStart:       596,
	LargeEEndRange:    119,
	LargeMasterSecret: 256,
	LargeVPrimePrime:  2724,
}

// DefaultSignatureType is the default value for ClaimDefinition.SignatureType.
const DefaultSignatureType = "CL"
