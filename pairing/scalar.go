// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pairing is the Pairing Group Adapter (spec §4.2): two source
// groups G1/G2, a target group GT, and the scalar field Fq, backed by
// github.com/consensys/gnark-crypto's bls12-381 curve.
package pairing

import (
	"crypto/rand"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/sercher/anoncreds-core/clint"
)

// Scalar is an element of Fq, the scalar field of bls12-381 (spec's
// GroupOrderElement). It is represented as a reduced *big.Int rather than
// fr.Element because the core's pow_mod operation (spec §4.2: raising one
// field element to the power of another, read as an integer) has no
// analogue in fr.Element's multiplicative-only API.
type Scalar struct {
	v *big.Int
}

// Order returns the group order r (the modulus of Fq).
func Order() *big.Int {
	return fr.Modulus()
}

func reduce(v *big.Int) *Scalar {
	return &Scalar{new(big.Int).Mod(v, Order())}
}

// NewScalar returns a uniformly random element of Fq.
func NewScalar() (*Scalar, error) {
	v, err := rand.Int(rand.Reader, Order())
	if err != nil {
		return nil, clint.Errorf("scalar generation failed: %w", err)
	}
	return &Scalar{v}, nil
}

// ScalarFromBytes interprets b as an unsigned big-endian integer, reduced
// mod the group order (spec's GroupOrderElement::from_bytes).
func ScalarFromBytes(b []byte) *Scalar {
	return reduce(new(big.Int).SetBytes(b))
}

// ScalarFromUint32 encodes i as a 4-byte big-endian value and reduces it
// into Fq, the canonical index-to-scalar encoding (spec §6).
func ScalarFromUint32(i uint32) *Scalar {
	return ScalarFromBytes(u32ToBytesBE(i))
}

func u32ToBytesBE(i uint32) []byte {
	return []byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)}
}

// Bytes returns the big-endian encoding of s.
func (s *Scalar) Bytes() []byte { return s.v.Bytes() }

// BigInt exposes the underlying integer value for adapters (e.g. scalar
// multiplication) that need a *big.Int; it never leaves this package's
// callers without going through a Scalar constructor first.
func (s *Scalar) BigInt() *big.Int { return new(big.Int).Set(s.v) }

// AddMod returns s + t mod r.
func (s *Scalar) AddMod(t *Scalar) *Scalar { return reduce(new(big.Int).Add(s.v, t.v)) }

// PowMod returns s^e mod r, i.e. integer exponentiation of the field element
// s by the field element e, reduced mod r (spec's pow_mod).
func (s *Scalar) PowMod(e *Scalar) *Scalar { return reduce(new(big.Int).Exp(s.v, e.v, Order())) }

// ModNeg returns -s mod r.
func (s *Scalar) ModNeg() *Scalar { return reduce(new(big.Int).Neg(s.v)) }

// Inverse returns s^-1 mod r.
func (s *Scalar) Inverse() (*Scalar, error) {
	inv := new(big.Int).ModInverse(s.v, Order())
	if inv == nil {
		return nil, clint.Errorf("scalar %s has no inverse mod r", s.v.String())
	}
	return &Scalar{inv}, nil
}

// Equal reports whether s and t are the same field element.
func (s *Scalar) Equal(t *Scalar) bool { return s.v.Cmp(t.v) == 0 }

// MarshalCBOR encodes s as a CBOR byte string (spec §6 artifact encoding).
func (s *Scalar) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.Bytes())
}

// UnmarshalCBOR decodes what MarshalCBOR produced.
func (s *Scalar) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	s.v = new(big.Int).SetBytes(b)
	return nil
}
