// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"testing"

	"github.com/sercher/anoncreds-core/clint"
	"github.com/sercher/anoncreds-core/pairing"
)

func TestIssueAccumulatorTailsInvariant(t *testing.T) {
	pkR, _, err := generateRevocationKeys()
	if err != nil {
		t.Fatal(err)
	}
	const maxClaimNum = int32(5)
	_, registryPriv, err := IssueAccumulator(pkR, maxClaimNum, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(registryPriv.Tails) != int(2*maxClaimNum) {
		t.Fatalf("len(Tails) = %d, want %d", len(registryPriv.Tails), 2*maxClaimNum)
	}
	if _, ok := registryPriv.Tails[maxClaimNum+1]; ok {
		t.Fatalf("tails must not have an entry at index L+1 = %d", maxClaimNum+1)
	}
}

// newClaimRequest builds a claim request with no master-secret blinding
// (U = 0, which sign() treats as "no blinding term", spec §4.4.3) — enough
// to exercise issuance end to end without a prover-side master secret.
func newClaimRequest(t *testing.T, proverDID string) *ClaimRequest {
	t.Helper()
	ur, err := pairing.RandomPoint()
	if err != nil {
		t.Fatal(err)
	}
	return &ClaimRequest{ProverDID: proverDID, U: clint.Zero(), Ur: ur}
}

func TestIssueAndRevokeRoundTrip(t *testing.T) {
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
		t.Fatalf("CreateClaim: %v", err)
	}
	if claims.NonRevocationClaim == nil {
		t.Fatal("expected a non-revocation claim")
	}
	if _, present := registry.Accumulator.V[index]; !present {
		t.Fatalf("index %d should be a member after issuance", index)
	}
	if registry.Accumulator.Acc.Equal(pairing.Identity()) {
		t.Fatal("accumulator should not be identity after issuance")
	}

	if _, err := Revoke(registry, registryPriv.Tails, index); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, present := registry.Accumulator.V[index]; present {
		t.Fatalf("index %d should not be a member after revocation", index)
	}
	if !registry.Accumulator.Acc.Equal(pairing.Identity()) {
		t.Fatal("accumulator should return to identity once its only member is revoked")
	}
}

func TestAccumulatorRejectsIssuanceWhenFull(t *testing.T) {
	claimDef, claimDefPriv, err := GenerateKeys(NewSchema(1, []string{"name", "age", "sex", "height"}), "", true)
	if err != nil {
		t.Fatal(err)
	}
	registry, registryPriv, err := IssueAccumulator(claimDef.PublicKeyRevoc, 1, claimDef.SchemaSeqNo)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := CreateClaim(claimDef, claimDefPriv, registry, registryPriv, newClaimRequest(t, "did:test:1"), gvtAttributes(), nil); err != nil {
		t.Fatalf("first issuance: %v", err)
	}
	if _, err := CreateClaim(claimDef, claimDefPriv, registry, registryPriv, newClaimRequest(t, "did:test:2"), gvtAttributes(), nil); err == nil {
		t.Fatal("expected the second issuance against a full accumulator to fail")
	}
}

func TestWitnessIsIndependentSnapshot(t *testing.T) {
	claimDef, claimDefPriv, err := GenerateKeys(NewSchema(1, []string{"name", "age", "sex", "height"}), "", true)
	if err != nil {
		t.Fatal(err)
	}
	registry, registryPriv, err := IssueAccumulator(claimDef.PublicKeyRevoc, 5, claimDef.SchemaSeqNo)
	if err != nil {
		t.Fatal(err)
	}

	firstIndex := int32(1)
	claims1, err := CreateClaim(claimDef, claimDefPriv, registry, registryPriv, newClaimRequest(t, "did:test:1"), gvtAttributes(), &firstIndex)
	if err != nil {
		t.Fatal(err)
	}
	if len(claims1.NonRevocationClaim.Witness.V) != 1 {
		t.Fatalf("first witness should see 1 member, saw %d", len(claims1.NonRevocationClaim.Witness.V))
	}

	secondIndex := int32(2)
	if _, err := CreateClaim(claimDef, claimDefPriv, registry, registryPriv, newClaimRequest(t, "did:test:2"), gvtAttributes(), &secondIndex); err != nil {
		t.Fatal(err)
	}

	if len(claims1.NonRevocationClaim.Witness.V) != 1 {
		t.Fatalf("issuing a second claim mutated the first claim's witness snapshot: now sees %d members", len(claims1.NonRevocationClaim.Witness.V))
	}
	if len(registry.Accumulator.V) != 2 {
		t.Fatalf("registry should now have 2 members, has %d", len(registry.Accumulator.V))
	}
}
