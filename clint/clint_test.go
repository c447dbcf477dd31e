// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clint

import "testing"

func TestModExpAndInverseRoundTrip(t *testing.T) {
	n, err := FromDecimalString("170141183460469231731687303715884105727") // prime
	if err != nil {
		t.Fatal(err)
	}
	x := FromUint32(12345)
	inv, err := x.Inverse(n)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if got := x.Mul(inv).Modulus(n); got.Cmp(One()) != 0 {
		t.Fatalf("x * x^-1 mod n = %s, want 1", got.Dec())
	}
}

func TestModDivMatchesManualInverse(t *testing.T) {
	n, err := FromDecimalString("170141183460469231731687303715884105727")
	if err != nil {
		t.Fatal(err)
	}
	x := FromUint32(999)
	y := FromUint32(7)
	got, err := x.ModDiv(y, n)
	if err != nil {
		t.Fatalf("ModDiv: %v", err)
	}
	if got.Mul(y).Modulus(n).Cmp(x.Modulus(n)) != 0 {
		t.Fatalf("(x/y)*y mod n != x mod n")
	}
}

func TestBitwiseOrIsSymmetricAndIdempotent(t *testing.T) {
	a := FromUint32(0b1010)
	b := FromUint32(0b0110)
	if BitwiseOr(a, b).Cmp(BitwiseOr(b, a)) != 0 {
		t.Fatal("BitwiseOr should be symmetric")
	}
	if BitwiseOr(a, a).Cmp(a) != 0 {
		t.Fatal("BitwiseOr(a, a) should equal a")
	}
	want := FromUint32(0b1110)
	if BitwiseOr(a, b).Cmp(want) != 0 {
		t.Fatalf("BitwiseOr(0b1010, 0b0110) = %s, want %s", BitwiseOr(a, b).Dec(), want.Dec())
	}
}

func TestGenerateSafePrime(t *testing.T) {
	p, err := GenerateSafePrime(64)
	if err != nil {
		t.Fatalf("GenerateSafePrime: %v", err)
	}
	if p.BitLen() != 64 {
		t.Fatalf("BitLen() = %d, want 64", p.BitLen())
	}
	half := p.SubWord(1).DivWord(2)
	// half*2+1 must reconstruct p exactly.
	if half.Mul(FromUint32(2)).AddWord(1).Cmp(p) != 0 {
		t.Fatal("(p-1)/2 * 2 + 1 != p")
	}
}

func TestGeneratePrimeInRange(t *testing.T) {
	lo := FromUint32(1000)
	hi := FromUint32(2000)
	p, err := GeneratePrimeInRange(lo, hi)
	if err != nil {
		t.Fatalf("GeneratePrimeInRange: %v", err)
	}
	if p.Cmp(lo) < 0 || p.Cmp(hi) >= 0 {
		t.Fatalf("prime %s out of range [%s, %s)", p.Dec(), lo.Dec(), hi.Dec())
	}
}

func TestHashIntIsDeterministic(t *testing.T) {
	a := HashInt([]byte("hello"), []byte("world"))
	b := HashInt([]byte("hello"), []byte("world"))
	if a.Cmp(b) != 0 {
		t.Fatal("HashInt should be deterministic")
	}
	c := HashInt([]byte("hello"), []byte("World"))
	if a.Cmp(c) == 0 {
		t.Fatal("HashInt should differ for different inputs")
	}
}

func TestIntCBORRoundTrip(t *testing.T) {
	x, err := FromDecimalString("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	data, err := x.MarshalCBOR()
	if err != nil {
		t.Fatalf("MarshalCBOR: %v", err)
	}
	var y Int
	if err := y.UnmarshalCBOR(data); err != nil {
		t.Fatalf("UnmarshalCBOR: %v", err)
	}
	if x.Cmp(&y) != 0 {
		t.Fatalf("round trip mismatch: %s != %s", x.Dec(), y.Dec())
	}
}
