// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clint is the BigInt Arithmetic Adapter: it wraps math/big with
// the modular-arithmetic, safe-prime-generation and hashing operations the
// CL-signature and accumulator core needs, without leaking *big.Int into
// the core's public API (see DESIGN.md).
package clint

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// Int is an arbitrary-precision integer.
type Int struct {
	v *big.Int
}

var one = big.NewInt(1)

// Zero returns the integer 0.
func Zero() *Int { return &Int{new(big.Int)} }

// One returns the integer 1.
func One() *Int { return &Int{big.NewInt(1)} }

// FromUint32 constructs an Int from a uint32.
func FromUint32(i uint32) *Int { return &Int{new(big.Int).SetUint64(uint64(i))} }

// FromInt64 constructs an Int from an int64.
func FromInt64(i int64) *Int { return &Int{big.NewInt(i)} }

// FromDecimalString parses a base-10 string. Returns an error if s is not a
// valid decimal integer.
func FromDecimalString(s string) (*Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, Errorf("invalid decimal string %q", s)
	}
	return &Int{v}, nil
}

// FromBytes interprets b as an unsigned big-endian integer.
func FromBytes(b []byte) *Int { return &Int{new(big.Int).SetBytes(b)} }

// Bytes returns the big-endian, minimal (no leading zero byte) encoding of x.
func (x *Int) Bytes() []byte { return x.v.Bytes() }

// Dec returns the base-10 string representation of x.
func (x *Int) Dec() string { return x.v.String() }

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int { return &Int{new(big.Int).Set(x.v)} }

// Cmp compares x and y as math/big.Int.Cmp does.
func (x *Int) Cmp(y *Int) int { return x.v.Cmp(y.v) }

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool { return x.v.Sign() == 0 }

// BitLen returns the number of bits required to represent x.
func (x *Int) BitLen() int { return x.v.BitLen() }

// MarshalCBOR encodes x as a CBOR byte string holding its big-endian
// representation; Int's only field is unexported, so without this the cbor
// library would see nothing to encode (spec §6 artifact encoding).
func (x *Int) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(x.v.Bytes())
}

// UnmarshalCBOR decodes what MarshalCBOR produced.
func (x *Int) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	x.v = new(big.Int).SetBytes(b)
	return nil
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int { return &Int{new(big.Int).Add(x.v, y.v)} }

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return &Int{new(big.Int).Sub(x.v, y.v)} }

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int { return &Int{new(big.Int).Mul(x.v, y.v)} }

// AddWord returns x + w.
func (x *Int) AddWord(w uint64) *Int { return &Int{new(big.Int).Add(x.v, new(big.Int).SetUint64(w))} }

// SubWord returns x - w.
func (x *Int) SubWord(w uint64) *Int { return &Int{new(big.Int).Sub(x.v, new(big.Int).SetUint64(w))} }

// DivWord returns x / w, floor division.
func (x *Int) DivWord(w uint64) *Int {
	return &Int{new(big.Int).Div(x.v, new(big.Int).SetUint64(w))}
}

// Modulus returns x mod n (always non-negative).
func (x *Int) Modulus(n *Int) *Int { return &Int{new(big.Int).Mod(x.v, n.v)} }

// Exp returns x^e with no modular reduction.
func (x *Int) Exp(e *Int) *Int { return &Int{new(big.Int).Exp(x.v, e.v, nil)} }

// ModExp returns x^e mod n.
func (x *Int) ModExp(e, n *Int) *Int { return &Int{new(big.Int).Exp(x.v, e.v, n.v)} }

// ModDiv returns x * y^-1 mod n, i.e. the modular quotient x/y.
func (x *Int) ModDiv(y, n *Int) (*Int, error) {
	inv, ok := x.inverse(y, n)
	if !ok {
		return nil, Errorf("%s has no inverse mod %s", y.Dec(), n.Dec())
	}
	return &Int{new(big.Int).Mod(new(big.Int).Mul(x.v, inv.v), n.v)}, nil
}

// Inverse returns x^-1 mod n.
func (x *Int) Inverse(n *Int) (*Int, error) {
	inv, ok := x.inverse(x, n)
	if !ok {
		return nil, Errorf("%s has no inverse mod %s", x.Dec(), n.Dec())
	}
	return inv, nil
}

func (x *Int) inverse(of, n *Int) (*Int, bool) {
	inv := new(big.Int).ModInverse(of.v, n.v)
	if inv == nil {
		return nil, false
	}
	return &Int{inv}, true
}

// BitwiseOr ORs the little-endian byte representations of a and b, zero-padded
// to the longer of the two, and reinterprets the result as a big-endian
// unsigned integer. This mirrors the issuer's v'' top-bit-setting idiom and
// the context-attribute id/DID combinator (spec §4.3 bitwise_or).
func BitwiseOr(a, b *Int) *Int {
	ab, bb := reverseBytes(a.v.Bytes()), reverseBytes(b.v.Bytes())
	if len(ab) < len(bb) {
		ab, bb = bb, ab
	}
	out := make([]byte, len(ab))
	copy(out, ab)
	for i, v := range bb {
		out[i] |= v
	}
	return &Int{new(big.Int).SetBytes(reverseBytes(out))}
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// RandomInRange returns a uniformly random integer in [0, n).
func RandomInRange(n *Int) (*Int, error) {
	if n.v.Sign() <= 0 {
		return nil, Errorf("range upper bound must be positive")
	}
	v, err := rand.Int(rand.Reader, n.v)
	if err != nil {
		return nil, Errorf("random generation failed: %w", err)
	}
	return &Int{v}, nil
}

// RandomBits returns a uniformly random integer in [0, 2^bits).
func RandomBits(bits uint) (*Int, error) {
	bound := new(big.Int).Lsh(one, bits)
	v, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, Errorf("random generation failed: %w", err)
	}
	return &Int{v}, nil
}

// GenerateSafePrime returns a prime P of the given bit length such that
// (P-1)/2 is also prime.
func GenerateSafePrime(bits int) (*Int, error) {
	for {
		p, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, Errorf("safe prime generation failed: %w", err)
		}
		half := new(big.Int).Rsh(p, 1)
		if half.ProbablyPrime(32) {
			return &Int{p}, nil
		}
	}
}

// GeneratePrimeInRange returns a uniformly-chosen prime in [lo, hi).
func GeneratePrimeInRange(lo, hi *Int) (*Int, error) {
	span := new(big.Int).Sub(hi.v, lo.v)
	if span.Sign() <= 0 {
		return nil, Errorf("empty range for prime generation")
	}
	for {
		offset, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, Errorf("random generation failed: %w", err)
		}
		cand := new(big.Int).Add(lo.v, offset)
		cand.SetBit(cand, 0, 1) // bias towards odd candidates
		if cand.Cmp(lo.v) < 0 || cand.Cmp(hi.v) >= 0 {
			continue
		}
		if cand.ProbablyPrime(40) {
			return &Int{cand}, nil
		}
	}
}

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashInt concatenates chunks, hashes the result, reverses the digest bytes,
// and interprets the result as an unsigned big-endian integer (spec §4.3
// hash_as_int, matching get_hash_as_int's final byte-reversal).
func HashInt(chunks ...[]byte) *Int {
	var buf []byte
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	digest := Hash(buf)
	for i, j := 0, len(digest)-1; i < j; i, j = i+1, j-1 {
		digest[i], digest[j] = digest[j], digest[i]
	}
	return FromBytes(digest)
}

