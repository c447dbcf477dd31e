// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairing

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/fxamacker/cbor/v2"

	"github.com/sercher/anoncreds-core/clint"
)

// GT is an element of the pairing target group.
type GT struct {
	v bls12381.GT
}

// Mul returns t * u.
func (t *GT) Mul(u *GT) *GT {
	var r bls12381.GT
	r.Mul(&t.v, &u.v)
	return &GT{v: r}
}

// Inverse returns t^-1.
func (t *GT) Inverse() *GT {
	var r bls12381.GT
	r.Inverse(&t.v)
	return &GT{v: r}
}

// Pow returns t^e for a scalar exponent e (spec's GT exponentiation).
func (t *GT) Pow(e *Scalar) *GT {
	var r bls12381.GT
	r.Exp(t.v, e.BigInt())
	return &GT{v: r}
}

// Equal reports whether t and u are the same target-group element.
func (t *GT) Equal(u *GT) bool { return t.v.Equal(&u.v) }

// MarshalCBOR encodes t as a CBOR byte string (spec §6 artifact encoding).
func (t *GT) MarshalCBOR() ([]byte, error) {
	b := t.v.Bytes()
	return cbor.Marshal(b[:])
}

// UnmarshalCBOR decodes what MarshalCBOR produced.
func (t *GT) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if _, err := t.v.SetBytes(b); err != nil {
		return clint.Errorf("decoding GT element: %w", err)
	}
	return nil
}
