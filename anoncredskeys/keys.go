// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncredskeys

import (
	"github.com/sercher/anoncreds-core/clint"
	"github.com/sercher/anoncreds-core/pairing"
)

// PublicKey is the issuer's primary CL public key (spec §3 PublicKey). All
// values live in Z/nZ. R is keyed by canonicalized attribute name rather
// than gabi's fixed-size Bases slice, since this scheme's schema has an
// open attribute set instead of a hard maximum of six attributes.
type PublicKey struct {
	N     *clint.Int
	S     *clint.Int
	RMS   *clint.Int
	R     map[string]*clint.Int
	Rctxt *clint.Int
	Z     *clint.Int
}

// SecretKey is the issuer's primary CL secret key (spec §3 SecretKey): the
// Sophie-Germain halves p, q of the safe primes P = 2p+1, Q = 2q+1 whose
// product is PublicKey.N. Field names match gabi's PrivateKey.PPrime/QPrime
// convention, renamed to the spec's p/q.
type SecretKey struct {
	P *clint.Int
	Q *clint.Int
}

// RevocationPublicKey holds the bilinear-group bases for the non-revocation
// sub-scheme (spec §3). Invariant: Y = H.Mul(X), PK = G.Mul(SK) (established
// when the issuer generates the key pair, not re-verified on every use).
type RevocationPublicKey struct {
	G      *pairing.Point
	H      *pairing.Point
	H0     *pairing.Point
	H1     *pairing.Point
	H2     *pairing.Point
	HTilde *pairing.Point
	U      *pairing.Point
	PK     *pairing.Point
	Y      *pairing.Point
	X      *pairing.Scalar
}

// RevocationSecretKey holds the non-revocation secret scalars.
type RevocationSecretKey struct {
	X  *pairing.Scalar
	SK *pairing.Scalar
}
