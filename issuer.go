// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"strconv"
	"time"

	"golang.org/x/exp/maps"

	"github.com/sercher/anoncreds-core/anoncredskeys"
	"github.com/sercher/anoncreds-core/clint"
	"github.com/sercher/anoncreds-core/pairing"
)

// AttributeValue is one schema attribute's raw and cryptographically
// encoded form. Only Encoded (a decimal string) is used by signing; Raw is
// carried through for the caller's benefit (spec §6 encodings).
type AttributeValue struct {
	Raw     string
	Encoded string
}

// GenerateKeys builds a credential definition's primary key pair, and (if
// createNonRevoc) its revocation key pair (spec §4.4.1). signatureType
// defaults to anoncredskeys.DefaultSignatureType when empty.
func GenerateKeys(schema *Schema, signatureType string, createNonRevoc bool) (*ClaimDefinition, *ClaimDefinitionPrivate, error) {
	if signatureType == "" {
		signatureType = anoncredskeys.DefaultSignatureType
	}

	pk, sk, err := generatePrimaryKeys(schema)
	if err != nil {
		return nil, nil, err
	}

	var pkR *anoncredskeys.RevocationPublicKey
	var skR *anoncredskeys.RevocationSecretKey
	if createNonRevoc {
		pkR, skR, err = generateRevocationKeys()
		if err != nil {
			return nil, nil, err
		}
	}

	claimDef := &ClaimDefinition{
		PublicKey:      *pk,
		PublicKeyRevoc: pkR,
		SchemaSeqNo:    schema.SeqNo,
		SignatureType:  signatureType,
	}
	claimDefPriv := &ClaimDefinitionPrivate{
		SecretKey:      *sk,
		SecretKeyRevoc: skR,
	}
	return claimDef, claimDefPriv, nil
}

func generatePrimaryKeys(schema *Schema) (*anoncredskeys.PublicKey, *anoncredskeys.SecretKey, error) {
	bits := int(anoncredskeys.DefaultSystemParameters.LargePrime)

	P, err := clint.GenerateSafePrime(bits)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}
	Q, err := clint.GenerateSafePrime(bits)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}

	p := P.SubWord(1).DivWord(2)
	q := Q.SubWord(1).DivWord(2)
	n := P.Mul(Q)

	s, err := randomQR(n)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}

	xz, err := genX(p, q)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}
	z := s.ModExp(xz, n)

	r := make(map[string]*clint.Int, len(schema.AttributeNames))
	for attr := range schema.AttributeNames {
		xa, err := genX(p, q)
		if err != nil {
			return nil, nil, wrapErr(OperationFailed, err)
		}
		r[attr] = s.ModExp(xa, n)
	}

	xrms, err := genX(p, q)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}
	xrctxt, err := genX(p, q)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}

	pk := &anoncredskeys.PublicKey{
		N:     n,
		S:     s,
		RMS:   s.ModExp(xrms, n),
		R:     r,
		Rctxt: s.ModExp(xrctxt, n),
		Z:     z,
	}
	sk := &anoncredskeys.SecretKey{P: p, Q: q}
	return pk, sk, nil
}

// randomQR samples a non-trivial quadratic residue mod n, following the
// source service's random_qr: pick x uniformly in [0, n), square it mod n,
// and reject the degenerate residues 0 and 1.
func randomQR(n *clint.Int) (*clint.Int, error) {
	for {
		x, err := clint.RandomInRange(n)
		if err != nil {
			return nil, err
		}
		s := x.Mul(x).Modulus(n)
		if !s.IsZero() && s.Cmp(clint.One()) != 0 {
			return s, nil
		}
	}
}

// genX is the source service's gen_x(p, q): a fresh base exponent uniform in
// [2, p*q - 1).
func genX(p, q *clint.Int) (*clint.Int, error) {
	bound := p.Mul(q).SubWord(3)
	r, err := clint.RandomInRange(bound)
	if err != nil {
		return nil, err
	}
	return r.AddWord(2), nil
}

func generateRevocationKeys() (*anoncredskeys.RevocationPublicKey, *anoncredskeys.RevocationSecretKey, error) {
	points := make([]*pairing.Point, 7)
	for i := range points {
		p, err := pairing.RandomPoint()
		if err != nil {
			return nil, nil, wrapErr(OperationFailed, err)
		}
		points[i] = p
	}
	g, h, h0, h1, h2, htilde, u := points[0], points[1], points[2], points[3], points[4], points[5], points[6]

	x, err := pairing.NewScalar()
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}
	sk, err := pairing.NewScalar()
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}

	pkR := &anoncredskeys.RevocationPublicKey{
		G: g, H: h, H0: h0, H1: h1, H2: h2, HTilde: htilde, U: u,
		PK: g.Mul(sk),
		Y:  h.Mul(x),
		X:  x,
	}
	skR := &anoncredskeys.RevocationSecretKey{X: x, SK: sk}
	return pkR, skR, nil
}

// IssueAccumulator sets up a fresh dynamic accumulator and its tails table
// (spec §4.4.2). The slot at index maxClaimNum+1 is never allocated: the
// tails map simply has no entry there, and any lookup at that index fails
// InvalidStructure — this is the soundness-critical omission spec §9 calls
// out (publishing it would let a holder forge non-revocation witnesses).
func IssueAccumulator(pkR *anoncredskeys.RevocationPublicKey, maxClaimNum int32, claimDefSeqNo int32) (*RevocationRegistry, *RevocationRegistryPrivate, error) {
	gamma, err := pairing.NewScalar()
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}

	tails := make(map[int32]*pairing.Point, 2*maxClaimNum)
	for i := int32(0); i <= 2*maxClaimNum; i++ {
		if i == maxClaimNum+1 {
			continue
		}
		pow := gamma.PowMod(pairing.ScalarFromUint32(uint32(i)))
		tails[i] = pkR.G.Mul(pow)
	}

	lPlus1 := gamma.PowMod(pairing.ScalarFromUint32(uint32(maxClaimNum + 1)))
	ggPair, err := pairing.Pair(pkR.G, pkR.G)
	if err != nil {
		return nil, nil, wrapErr(OperationFailed, err)
	}
	z := ggPair.Pow(lPlus1)

	registry := &RevocationRegistry{
		Accumulator: Accumulator{
			Acc:         pairing.Identity(),
			V:           make(map[int32]struct{}),
			MaxClaimNum: maxClaimNum,
			CurrentI:    1,
		},
		AccPK:         AccumulatorPublicKey{Z: z},
		ClaimDefSeqNo: claimDefSeqNo,
	}
	registryPriv := &RevocationRegistryPrivate{
		AccSK: AccumulatorSecretKey{Gamma: gamma},
		Tails: tails,
	}
	return registry, registryPriv, nil
}

// CreateClaim issues a credential against claimRequest: a primary CL
// signature always, and — when claimDef carries revocation support — a
// non-revocation credential tied to registry's accumulator (spec §4.4.3,
// §4.4.4).
//
// userRevocIndex lets the caller pin the accumulator index a credential is
// issued against instead of letting the registry auto-assign the next free
// one. This mirrors the source service bit-exactly: registry.CurrentI is
// incremented unconditionally even when userRevocIndex is supplied, which
// can leave CurrentI ahead of what was actually auto-assigned, or collide
// with a later auto-assigned index if the caller is not careful (spec §9
// open question — flagged here rather than silently changed).
func CreateClaim(
	claimDef *ClaimDefinition,
	claimDefPriv *ClaimDefinitionPrivate,
	registry *RevocationRegistry,
	registryPriv *RevocationRegistryPrivate,
	claimRequest *ClaimRequest,
	attributes map[string]AttributeValue,
	userRevocIndex *int32,
) (*Claims, error) {
	contextAttribute, err := generateContextAttribute(registry.ClaimDefSeqNo, claimRequest.ProverDID)
	if err != nil {
		return nil, err
	}

	primaryClaim, err := issuePrimaryClaim(&claimDef.PublicKey, &claimDefPriv.SecretKey, claimRequest.U, contextAttribute, attributes)
	if err != nil {
		return nil, err
	}

	claims := &Claims{PrimaryClaim: primaryClaim}

	if claimDef.PublicKeyRevoc != nil {
		if claimDefPriv.SecretKeyRevoc == nil {
			return nil, newErr(InvalidStructure, "field secret_key_revocation not found")
		}
		if claimRequest.Ur == nil {
			return nil, newErr(InvalidStructure, "field ur not found")
		}
		nonRevClaim, timestamp, err := issueNonRevocationClaim(
			registry, claimDef.PublicKeyRevoc, claimDefPriv.SecretKeyRevoc,
			registryPriv.Tails, registryPriv.AccSK, contextAttribute, claimRequest.Ur, userRevocIndex,
		)
		if err != nil {
			return nil, err
		}
		claims.NonRevocationClaim = nonRevClaim
		claims.NonRevocationIssued = timestamp
	}

	return claims, nil
}

func generateContextAttribute(accumulatorID int32, proverDID string) (*clint.Int, error) {
	idEncoded := EncodeAttribute(strconv.Itoa(int(accumulatorID)), Little)
	didEncoded := EncodeAttribute(proverDID, Little)
	orred := clint.BitwiseOr(idEncoded, didEncoded)

	pow2 := clint.FromUint32(2).Exp(clint.FromUint32(uint32(anoncredskeys.DefaultSystemParameters.LargeMasterSecret)))
	h := clint.HashInt(orred.Bytes())
	return h.Modulus(pow2), nil
}

func issuePrimaryClaim(pk *anoncredskeys.PublicKey, sk *anoncredskeys.SecretKey, u, contextAttribute *clint.Int, attributes map[string]AttributeValue) (*PrimaryClaim, error) {
	vPrimePrime, err := generateVPrimePrime()
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}

	params := anoncredskeys.DefaultSystemParameters
	eStart := clint.FromUint32(2).Exp(clint.FromUint32(uint32(params.LargeEStart)))
	eEnd := clint.FromUint32(2).Exp(clint.FromUint32(uint32(params.LargeEEndRange))).Add(eStart)
	e, err := clint.GeneratePrimeInRange(eStart, eEnd)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}

	a, err := sign(pk, sk, contextAttribute, attributes, vPrimePrime, u, e)
	if err != nil {
		return nil, err
	}

	return &PrimaryClaim{M2: contextAttribute, A: a, E: e, VPrime: vPrimePrime}, nil
}

// sign computes A = (Z / (S^v * Rx * u))^(e^-1 mod n') mod n, where
// Rx = prod_a r[a]^encoded_a * rctxt^m2 (spec §4.4.3 step 4).
func sign(pk *anoncredskeys.PublicKey, sk *anoncredskeys.SecretKey, contextAttribute *clint.Int, attributes map[string]AttributeValue, v, u, e *clint.Int) (*clint.Int, error) {
	rx := clint.One()
	for name, value := range attributes {
		base, ok := pk.R[CanonicalizeAttr(name)]
		if !ok {
			return nil, newErr(InvalidStructure, "value by key %q not found in pk.r", name)
		}
		encoded, err := clint.FromDecimalString(value.Encoded)
		if err != nil {
			return nil, wrapErr(InvalidStructure, err)
		}
		rx = rx.Mul(base.ModExp(encoded, pk.N)).Modulus(pk.N)
	}

	rx = rx.Mul(pk.Rctxt.ModExp(contextAttribute, pk.N)).Modulus(pk.N)

	if !u.IsZero() {
		rx = rx.Mul(u.Modulus(pk.N)).Modulus(pk.N)
	}

	n := sk.P.Mul(sk.Q)
	eInv, err := e.Modulus(n).Inverse(n)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}

	denom := pk.S.ModExp(v, pk.N).Mul(rx).Modulus(pk.N)
	a, err := pk.Z.ModDiv(denom, pk.N)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	return a.ModExp(eInv, pk.N), nil
}

func generateVPrimePrime() (*clint.Int, error) {
	bits := anoncredskeys.DefaultSystemParameters.LargeVPrimePrime
	a, err := clint.RandomBits(bits)
	if err != nil {
		return nil, err
	}
	topBit := clint.FromUint32(2).Exp(clint.FromUint32(uint32(bits - 1)))
	return clint.BitwiseOr(a, topBit), nil
}

// issueNonRevocationClaim issues a non-revocation credential tied to index
// i into registry's accumulator and updates the accumulator in lockstep
// (spec §4.4.4). All fallible steps are computed into local variables first;
// the registry is only mutated once every step has succeeded, so a failure
// never leaves it half-updated (spec §5).
func issueNonRevocationClaim(
	registry *RevocationRegistry,
	pkR *anoncredskeys.RevocationPublicKey,
	skR *anoncredskeys.RevocationSecretKey,
	tails map[int32]*pairing.Point,
	accSK AccumulatorSecretKey,
	contextAttribute *clint.Int,
	ur *pairing.Point,
	seqNumber *int32,
) (*NonRevocationClaim, int64, error) {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	acc := &registry.Accumulator
	if acc.IsFull() {
		return nil, 0, newErr(InvalidStructure, "accumulator is full, new one must be issued")
	}

	i := acc.CurrentI
	if seqNumber != nil {
		i = *seqNumber
	}

	vrPrimePrime, err := pairing.NewScalar()
	if err != nil {
		return nil, 0, wrapErr(OperationFailed, err)
	}
	c, err := pairing.NewScalar()
	if err != nil {
		return nil, 0, wrapErr(OperationFailed, err)
	}
	m2 := pairing.ScalarFromBytes(contextAttribute.Bytes())

	gI, ok := tails[i]
	if !ok {
		return nil, 0, newErr(InvalidStructure, "value by key %d not found in tails", i)
	}

	xc := skR.X.AddMod(c)
	xcInv, err := xc.Inverse()
	if err != nil {
		return nil, 0, wrapErr(OperationFailed, err)
	}
	sigma := pkR.H0.Add(pkR.H1.Mul(m2)).Add(ur).Add(gI).Add(pkR.H2.Mul(vrPrimePrime)).Mul(xcInv)

	omega := pairing.Identity()
	for j := range acc.V {
		idx := acc.MaxClaimNum + 1 - j + i
		t, ok := tails[idx]
		if !ok {
			return nil, 0, newErr(InvalidStructure, "value by key %d not found in tails", idx)
		}
		omega = omega.Add(t)
	}

	iScalar := pairing.ScalarFromUint32(uint32(i))
	gammaPowI := accSK.Gamma.PowMod(iScalar)

	skPlusGammaIInv, err := skR.SK.AddMod(gammaPowI).Inverse()
	if err != nil {
		return nil, 0, wrapErr(OperationFailed, err)
	}
	sigmaI := pkR.G.Mul(skPlusGammaIInv)
	uI := pkR.U.Mul(gammaPowI)

	accIdx := acc.MaxClaimNum + 1 - i
	accTail, ok := tails[accIdx]
	if !ok {
		return nil, 0, newErr(InvalidStructure, "value by key %d not found in tails", accIdx)
	}

	// Everything above is computed without touching registry state; only now
	// do we commit, so a failure never leaves acc/v/current_i inconsistent.
	acc.CurrentI++
	acc.Acc = acc.Acc.Add(accTail)
	acc.V[i] = struct{}{}

	witness := &Witness{
		SigmaI: sigmaI,
		UI:     uI,
		GI:     gI,
		Omega:  omega,
		V:      maps.Clone(acc.V),
	}

	return &NonRevocationClaim{
		Sigma:        sigma,
		GI:           gI,
		Witness:      witness,
		C:            c,
		VRPrimePrime: vrPrimePrime,
		I:            i,
		M2:           m2,
	}, time.Now().Unix(), nil
}

// Revoke removes index i from registry's accumulator (spec §4.4.5).
// Revoking an index not currently in V is tolerated (set removal is
// idempotent), but Acc is subtracted unconditionally regardless — callers
// must not revoke the same index twice.
func Revoke(registry *RevocationRegistry, tails map[int32]*pairing.Point, i int32) (int64, error) {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	acc := &registry.Accumulator
	idx := acc.MaxClaimNum + 1 - i
	tail, ok := tails[idx]
	if !ok {
		return 0, newErr(InvalidStructure, "value by key %d not found in tails", idx)
	}

	delete(acc.V, i)
	acc.Acc = acc.Acc.Sub(tail)

	return time.Now().Unix(), nil
}
