// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"testing"

	"github.com/sercher/anoncreds-core/anoncredskeys"
	"github.com/sercher/anoncreds-core/pairing"
)

// taulistFixture builds a registry, an issued non-revocation claim, and a
// syntactically well-formed proof-commitment/exponent pair derived from it
// (not a zero-knowledge-sound one — the point is to exercise every term of
// both tau-list functions with non-degenerate group elements, spec §4.5).
func taulistFixture(t *testing.T) (*anoncredskeys.RevocationPublicKey, *Accumulator, *AccumulatorPublicKey, *NonRevocProofCList, *NonRevocProofXList) {
	t.Helper()

	claimDef, claimDefPriv, err := GenerateKeys(NewSchema(1, []string{"name", "age", "sex", "height"}), "", true)
	if err != nil {
		t.Fatal(err)
	}
	registry, registryPriv, err := IssueAccumulator(claimDef.PublicKeyRevoc, 5, claimDef.SchemaSeqNo)
	if err != nil {
		t.Fatal(err)
	}

	index := int32(1)
	claims, err := CreateClaim(claimDef, claimDefPriv, registry, registryPriv, newClaimRequest(t, "did:test:1"), gvtAttributes(), &index)
	if err != nil {
		t.Fatal(err)
	}
	claim := claims.NonRevocationClaim

	proofC := &NonRevocProofCList{
		E: claim.Witness.SigmaI,
		D: claim.Witness.UI,
		A: claim.Sigma,
		G: claim.GI,
		W: claim.Witness.Omega,
		S: claim.Witness.SigmaI,
		U: claim.Witness.UI,
	}

	mk := func(seed uint32) *pairing.Scalar { return pairing.ScalarFromUint32(seed) }
	params := &NonRevocProofXList{
		Rho: mk(1), R: mk(2), RPrime: mk(3), RPrimePrime: mk(4), RPrimePrimePrime: mk(5),
		O: mk(6), OPrime: mk(7),
		M: mk(8), MPrime: mk(9),
		T: mk(10), TPrime: mk(11),
		M2: claim.M2, S: claim.VRPrimePrime, C: claim.C,
	}

	return claimDef.PublicKeyRevoc, &registry.Accumulator, &registry.AccPK, proofC, params
}

func TestCreateTauListValuesIsDeterministic(t *testing.T) {
	pkR, acc, _, proofC, params := taulistFixture(t)

	a, err := CreateTauListValues(pkR, acc, params, proofC)
	if err != nil {
		t.Fatalf("CreateTauListValues: %v", err)
	}
	b, err := CreateTauListValues(pkR, acc, params, proofC)
	if err != nil {
		t.Fatalf("CreateTauListValues: %v", err)
	}

	if !a.T1.Equal(b.T1) || !a.T2.Equal(b.T2) || !a.T5.Equal(b.T5) || !a.T6.Equal(b.T6) {
		t.Fatal("CreateTauListValues is not deterministic in its G1-valued terms")
	}
	if !a.T3.Equal(b.T3) || !a.T4.Equal(b.T4) || !a.T7.Equal(b.T7) || !a.T8.Equal(b.T8) {
		t.Fatal("CreateTauListValues is not deterministic in its GT-valued terms")
	}
}

func TestCreateTauListExpectedValuesIsDeterministic(t *testing.T) {
	pkR, acc, accPK, proofC, _ := taulistFixture(t)

	a, err := CreateTauListExpectedValues(pkR, acc, accPK, proofC)
	if err != nil {
		t.Fatalf("CreateTauListExpectedValues: %v", err)
	}
	b, err := CreateTauListExpectedValues(pkR, acc, accPK, proofC)
	if err != nil {
		t.Fatalf("CreateTauListExpectedValues: %v", err)
	}

	if !a.T1.Equal(b.T1) || !a.T2.Equal(b.T2) || !a.T5.Equal(b.T5) || !a.T6.Equal(b.T6) {
		t.Fatal("CreateTauListExpectedValues is not deterministic in its G1-valued terms")
	}
	if !a.T3.Equal(b.T3) || !a.T4.Equal(b.T4) || !a.T7.Equal(b.T7) || !a.T8.Equal(b.T8) {
		t.Fatal("CreateTauListExpectedValues is not deterministic in its GT-valued terms")
	}
}

func TestCreateTauListExpectedValuesT1AndT5EchoProofC(t *testing.T) {
	pkR, acc, accPK, proofC, _ := taulistFixture(t)

	expected, err := CreateTauListExpectedValues(pkR, acc, accPK, proofC)
	if err != nil {
		t.Fatalf("CreateTauListExpectedValues: %v", err)
	}
	if !expected.T1.Equal(proofC.E) {
		t.Fatal("t1 should echo proof_c.e verbatim")
	}
	if !expected.T5.Equal(proofC.D) {
		t.Fatal("t5 should echo proof_c.d verbatim")
	}
	if !expected.T2.Equal(pairing.Identity()) {
		t.Fatal("t2 should be the G1 identity")
	}
	if !expected.T6.Equal(pairing.Identity()) {
		t.Fatal("t6 should be the G1 identity")
	}
}
