// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pairing

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/fxamacker/cbor/v2"

	"github.com/sercher/anoncreds-core/clint"
)

// baseG1Jac, baseG2Jac are the fixed generators every Point is built from.
// bls12-381 is a type-3 curve (G1 != G2); spec §4.2 allows the adapter to
// present "a single G1 with type-3 interface" to callers. Point realizes
// that: every Point carries a G1 and a G2 coordinate that are always the
// same scalar multiple of these generators, so it can stand on either side
// of a pairing without the caller ever naming which underlying curve group
// it lives in.
var baseG1Jac, baseG2Jac, _, _ = bls12381.Generators()

// Point is a group element usable on either side of a pairing (spec's G1
// element with "type-3 interface").
type Point struct {
	g1 bls12381.G1Affine
	g2 bls12381.G2Affine
}

// Identity returns the point at infinity (spec's PointG1::new_inf()). The
// zero value of a Point is already the identity: gnark-crypto represents
// infinity in affine coordinates as (0, 0).
func Identity() *Point {
	return &Point{}
}

// RandomPoint returns an independently sampled random point, i.e. r*G for a
// fresh uniformly random scalar r (spec's PointG1::new()).
func RandomPoint() (*Point, error) {
	r, err := NewScalar()
	if err != nil {
		return nil, err
	}
	return generatorMul(r), nil
}

func generatorMul(s *Scalar) *Point {
	var g1 bls12381.G1Jac
	var g2 bls12381.G2Jac
	g1.ScalarMultiplication(&baseG1Jac, s.BigInt())
	g2.ScalarMultiplication(&baseG2Jac, s.BigInt())
	return &Point{g1: jacToAffineG1(g1), g2: jacToAffineG2(g2)}
}

func jacToAffineG1(j bls12381.G1Jac) bls12381.G1Affine {
	var a bls12381.G1Affine
	a.FromJacobian(&j)
	return a
}

func jacToAffineG2(j bls12381.G2Jac) bls12381.G2Affine {
	var a bls12381.G2Affine
	a.FromJacobian(&j)
	return a
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	var g1, rg1 bls12381.G1Jac
	var g2, rg2 bls12381.G2Jac
	g1.FromAffine(&p.g1)
	rg1.FromAffine(&q.g1)
	g1.AddAssign(&rg1)
	g2.FromAffine(&p.g2)
	rg2.FromAffine(&q.g2)
	g2.AddAssign(&rg2)
	return &Point{g1: jacToAffineG1(g1), g2: jacToAffineG2(g2)}
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point { return p.Add(q.Neg()) }

// Neg returns -p.
func (p *Point) Neg() *Point {
	var g1 bls12381.G1Jac
	var g2 bls12381.G2Jac
	g1.FromAffine(&p.g1)
	g1.Neg(&g1)
	g2.FromAffine(&p.g2)
	g2.Neg(&g2)
	return &Point{g1: jacToAffineG1(g1), g2: jacToAffineG2(g2)}
}

// Mul returns p scalar-multiplied by s.
func (p *Point) Mul(s *Scalar) *Point {
	var g1 bls12381.G1Jac
	var g2 bls12381.G2Jac
	g1.FromAffine(&p.g1)
	g1.ScalarMultiplication(&g1, s.BigInt())
	g2.FromAffine(&p.g2)
	g2.ScalarMultiplication(&g2, s.BigInt())
	return &Point{g1: jacToAffineG1(g1), g2: jacToAffineG2(g2)}
}

// Equal reports whether p and q are the same point.
func (p *Point) Equal(q *Point) bool { return p.g1.Equal(&q.g1) }

// cborPoint is Point's wire form: the compressed G1 and G2 coordinates,
// since Point's real fields are unexported and gnark-crypto's affine types
// carry no cbor struct tags of their own.
type cborPoint struct {
	G1 []byte
	G2 []byte
}

// MarshalCBOR encodes p as its compressed G1 and G2 coordinates (spec §6
// artifact encoding).
func (p *Point) MarshalCBOR() ([]byte, error) {
	g1 := p.g1.Bytes()
	g2 := p.g2.Bytes()
	return cbor.Marshal(cborPoint{G1: g1[:], G2: g2[:]})
}

// UnmarshalCBOR decodes what MarshalCBOR produced.
func (p *Point) UnmarshalCBOR(data []byte) error {
	var c cborPoint
	if err := cbor.Unmarshal(data, &c); err != nil {
		return err
	}
	if _, err := p.g1.SetBytes(c.G1); err != nil {
		return clint.Errorf("decoding G1 coordinate: %w", err)
	}
	if _, err := p.g2.SetBytes(c.G2); err != nil {
		return clint.Errorf("decoding G2 coordinate: %w", err)
	}
	return nil
}

// Pair evaluates the bilinear pairing e(a, b) -> GT, using a's G1 coordinate
// and b's G2 coordinate.
func Pair(a, b *Point) (*GT, error) {
	res, err := bls12381.Pair([]bls12381.G1Affine{a.g1}, []bls12381.G2Affine{b.g2})
	if err != nil {
		return nil, clint.Errorf("pairing evaluation failed: %w", err)
	}
	return &GT{v: res}, nil
}
