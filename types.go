// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anoncreds is the cryptographic core of an anonymous-credential
// issuance and revocation engine: CL signatures over an RSA group for
// primary credentials, plus a pairing-based dynamic accumulator for
// non-revocation. It is a from-scratch generalization, in the style of
// github.com/privacybydesign/gabi (our teacher), of the anoncreds core of
// sercher/indy-sdk. See SPEC_FULL.md and DESIGN.md for the full mapping.
//
// The package is pure and value-oriented: it has no transport, no
// persistence, and no identifier namespacing (those are the surrounding
// command layer's job). It consumes already-normalized inputs (schema
// attribute sets, attribute value maps, claim requests) and returns opaque
// credential/registry artifacts.
package anoncreds

import (
	"sync"

	"github.com/sercher/anoncreds-core/anoncredskeys"
	"github.com/sercher/anoncreds-core/clint"
	"github.com/sercher/anoncreds-core/pairing"
)

// Schema is the immutable set of attribute names a credential definition is
// built over, plus its sequence number on the originating ledger (opaque to
// this package beyond being an integer it echoes back).
type Schema struct {
	SeqNo          int32
	AttributeNames map[string]struct{}
}

// NewSchema canonicalizes and deduplicates attrNames into a Schema.
func NewSchema(seqNo int32, attrNames []string) *Schema {
	names := make(map[string]struct{}, len(attrNames))
	for _, a := range attrNames {
		names[CanonicalizeAttr(a)] = struct{}{}
	}
	return &Schema{SeqNo: seqNo, AttributeNames: names}
}

// ClaimRequest is what a prover sends an issuer to start issuance (spec §3).
type ClaimRequest struct {
	ProverDID string
	U         *clint.Int
	Ur        *pairing.Point // nil when the credential definition has no revocation support
}

// PrimaryClaim is the CL signature over a credential's attributes plus its
// blinded master secret (spec §3).
type PrimaryClaim struct {
	M2     *clint.Int
	A      *clint.Int
	E      *clint.Int
	VPrime *clint.Int
}

// Witness is a prover's snapshot of accumulator membership at the moment a
// non-revocation credential was issued (spec §3). V is a defensive copy;
// mutating it does not affect the registry.
type Witness struct {
	SigmaI *pairing.Point
	UI     *pairing.Point
	GI     *pairing.Point
	Omega  *pairing.Point
	V      map[int32]struct{}
}

// NonRevocationClaim is the non-revocation half of an issued credential
// (spec §3).
type NonRevocationClaim struct {
	Sigma        *pairing.Point
	GI           *pairing.Point
	Witness      *Witness
	C            *pairing.Scalar
	VRPrimePrime *pairing.Scalar
	I            int32
	M2           *pairing.Scalar
}

// Claims bundles the primary and (optional) non-revocation halves of an
// issued credential, mirroring the source service's Claims return type.
type Claims struct {
	PrimaryClaim        *PrimaryClaim
	NonRevocationClaim  *NonRevocationClaim
	NonRevocationIssued int64 // seconds since epoch; zero if no non-revocation claim was issued
}

// Accumulator is the dynamic accumulator state backing non-revocation (spec
// §3). CurrentI starts at 1 and is monotonically non-decreasing; V is
// mutated by issuance (insert) and revocation (remove); Acc is mutated in
// lockstep with V.
type Accumulator struct {
	Acc         *pairing.Point
	V           map[int32]struct{}
	MaxClaimNum int32
	CurrentI    int32
}

// IsFull reports whether the accumulator has reached its capacity.
func (a *Accumulator) IsFull() bool { return int32(len(a.V)) >= a.MaxClaimNum }

// AccumulatorPublicKey is z = e(g,g)^(gamma^(L+1)) in GT (spec §3).
type AccumulatorPublicKey struct {
	Z *pairing.GT
}

// AccumulatorSecretKey holds the accumulator trapdoor gamma (spec §3).
type AccumulatorSecretKey struct {
	Gamma *pairing.Scalar
}

// RevocationRegistry is the published, mutable state shared by issuance and
// revocation (spec §3, §5). Lock must be held for the full duration of any
// operation that reads or writes Accumulator, enforcing the single-writer
// discipline spec §5 requires; it is not serialized (see codec.go).
type RevocationRegistry struct {
	Accumulator   Accumulator
	AccPK         AccumulatorPublicKey
	ClaimDefSeqNo int32

	lock sync.Mutex
}

// RevocationRegistryPrivate is the issuer-only half of a registry: the
// accumulator trapdoor and the full tails table (spec §3). Tails has
// exactly 2*MaxClaimNum entries; index MaxClaimNum+1 is intentionally
// absent (spec §4.4.2 invariant — publishing it would allow forging
// non-revocation witnesses).
type RevocationRegistryPrivate struct {
	AccSK AccumulatorSecretKey
	Tails map[int32]*pairing.Point
}

// ClaimDefinition is the public artifact generate_keys produces (spec §3).
type ClaimDefinition struct {
	PublicKey      anoncredskeys.PublicKey
	PublicKeyRevoc *anoncredskeys.RevocationPublicKey
	SchemaSeqNo    int32
	SignatureType  string
}

// ClaimDefinitionPrivate is the issuer-only artifact generate_keys produces
// alongside ClaimDefinition (spec §3).
type ClaimDefinitionPrivate struct {
	SecretKey      anoncredskeys.SecretKey
	SecretKeyRevoc *anoncredskeys.RevocationSecretKey
}

// NonRevocProofXList is the prover's private non-revocation proof exponents
// (spec §3), all elements of Fq.
type NonRevocProofXList struct {
	Rho, R, RPrime, RPrimePrime, RPrimePrimePrime *pairing.Scalar
	O, OPrime                                     *pairing.Scalar
	M, MPrime                                     *pairing.Scalar
	T, TPrime                                     *pairing.Scalar
	M2, S, C                                      *pairing.Scalar
}

// NonRevocProofCList is the prover's published non-revocation commitments
// (spec §3), all points.
type NonRevocProofCList struct {
	E, D, A, G, W, S, U *pairing.Point
}

// NonRevocProofTauList is the 8-tuple both the prover and the verifier
// compute for the non-revocation sub-proof (spec §4.5). T1, T2, T5, T6 live
// in G1; T3, T4, T7, T8 live in GT.
type NonRevocProofTauList struct {
	T1, T2, T5, T6 *pairing.Point
	T3, T4, T7, T8 *pairing.GT
}
