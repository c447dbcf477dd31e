// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"github.com/sercher/anoncreds-core/anoncredskeys"
	"github.com/sercher/anoncreds-core/pairing"
)

// CreateTauListValues computes the prover's 8-tuple of non-revocation
// sub-proof commitments (spec §4.5.1), from the prover's secret exponents
// params and published commitments proofC. An honest prover's tuple equals
// CreateTauListExpectedValues' tuple computed from the same proofC.
func CreateTauListValues(pkR *anoncredskeys.RevocationPublicKey, accumulator *Accumulator, params *NonRevocProofXList, proofC *NonRevocProofCList) (*NonRevocProofTauList, error) {
	t1 := pkR.H.Mul(params.Rho).Add(pkR.HTilde.Mul(params.O))

	t2 := proofC.E.Mul(params.C).
		Add(pkR.H.Mul(params.M.ModNeg())).
		Add(pkR.HTilde.Mul(params.T.ModNeg()))

	t3, err := tauT3(pkR, proofC.A, params)
	if err != nil {
		return nil, err
	}

	t4, err := tauT4Value(pkR, accumulator, params)
	if err != nil {
		return nil, err
	}

	t5 := pkR.G.Mul(params.R).Add(pkR.HTilde.Mul(params.OPrime))

	t6 := proofC.D.Mul(params.RPrimePrime).
		Add(pkR.G.Mul(params.MPrime.ModNeg())).
		Add(pkR.HTilde.Mul(params.TPrime.ModNeg()))

	t7, err := tauT7Value(pkR, proofC, params)
	if err != nil {
		return nil, err
	}

	t8, err := tauT8Value(pkR, params)
	if err != nil {
		return nil, err
	}

	return &NonRevocProofTauList{T1: t1, T2: t2, T5: t5, T6: t6, T3: t3, T4: t4, T7: t7, T8: t8}, nil
}

func tauT3(pkR *anoncredskeys.RevocationPublicKey, a *pairing.Point, params *NonRevocProofXList) (*pairing.GT, error) {
	p1, err := pairing.Pair(a, pkR.H)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p1 = p1.Pow(params.C)

	p2, err := pairing.Pair(pkR.HTilde, pkR.H)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2 = p2.Pow(params.R)

	p3, err := pairing.Pair(pkR.HTilde, pkR.Y)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p3 = p3.Pow(params.Rho)

	p4, err := pairing.Pair(pkR.HTilde, pkR.H)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p4 = p4.Pow(params.M)

	p5, err := pairing.Pair(pkR.H1, pkR.H)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p5 = p5.Pow(params.M2)

	p6, err := pairing.Pair(pkR.H2, pkR.H)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p6 = p6.Pow(params.S)

	inner := p3.Mul(p4).Mul(p5).Mul(p6)
	return p1.Mul(p2).Mul(inner.Inverse()), nil
}

func tauT4Value(pkR *anoncredskeys.RevocationPublicKey, accumulator *Accumulator, params *NonRevocProofXList) (*pairing.GT, error) {
	p1, err := pairing.Pair(pkR.HTilde, accumulator.Acc)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p1 = p1.Pow(params.R)

	p2, err := pairing.Pair(pkR.G.Neg(), pkR.HTilde)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2 = p2.Pow(params.RPrime)

	return p1.Mul(p2), nil
}

func tauT7Value(pkR *anoncredskeys.RevocationPublicKey, proofC *NonRevocProofCList, params *NonRevocProofXList) (*pairing.GT, error) {
	p1, err := pairing.Pair(pkR.PK.Add(proofC.G), pkR.HTilde)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p1 = p1.Pow(params.RPrimePrime)

	p2, err := pairing.Pair(pkR.HTilde, pkR.HTilde)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2 = p2.Pow(params.MPrime.ModNeg())

	p3, err := pairing.Pair(pkR.HTilde, proofC.S)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p3 = p3.Pow(params.R)

	return p1.Mul(p2).Mul(p3), nil
}

func tauT8Value(pkR *anoncredskeys.RevocationPublicKey, params *NonRevocProofXList) (*pairing.GT, error) {
	p1, err := pairing.Pair(pkR.HTilde, pkR.U)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p1 = p1.Pow(params.R)

	p2, err := pairing.Pair(pkR.G.Neg(), pkR.HTilde)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2 = p2.Pow(params.RPrimePrimePrime)

	return p1.Mul(p2), nil
}

// CreateTauListExpectedValues recomputes the same 8-tuple from only the
// published commitments proofC and the registry's public state — no
// prover secrets — so the verifier can check it against the prover's
// claimed tuple (spec §4.5.2).
func CreateTauListExpectedValues(pkR *anoncredskeys.RevocationPublicKey, accumulator *Accumulator, accPK *AccumulatorPublicKey, proofC *NonRevocProofCList) (*NonRevocProofTauList, error) {
	t1 := proofC.E
	t2 := pairing.Identity()

	t3, err := tauT3Expected(pkR, proofC)
	if err != nil {
		return nil, err
	}

	t4, err := tauT4Expected(pkR, accumulator, accPK, proofC)
	if err != nil {
		return nil, err
	}

	t5 := proofC.D
	t6 := pairing.Identity()

	t7, err := tauT7Expected(pkR, proofC)
	if err != nil {
		return nil, err
	}

	t8, err := tauT8Expected(pkR, proofC)
	if err != nil {
		return nil, err
	}

	return &NonRevocProofTauList{T1: t1, T2: t2, T5: t5, T6: t6, T3: t3, T4: t4, T7: t7, T8: t8}, nil
}

func tauT3Expected(pkR *anoncredskeys.RevocationPublicKey, proofC *NonRevocProofCList) (*pairing.GT, error) {
	p1, err := pairing.Pair(pkR.H0.Add(proofC.G), pkR.H)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2, err := pairing.Pair(proofC.A, pkR.Y)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	return p1.Mul(p2.Inverse()), nil
}

func tauT4Expected(pkR *anoncredskeys.RevocationPublicKey, accumulator *Accumulator, accPK *AccumulatorPublicKey, proofC *NonRevocProofCList) (*pairing.GT, error) {
	p1, err := pairing.Pair(proofC.G, accumulator.Acc)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2, err := pairing.Pair(pkR.G, proofC.W)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2 = p2.Mul(accPK.Z)
	return p1.Mul(p2.Inverse()), nil
}

func tauT7Expected(pkR *anoncredskeys.RevocationPublicKey, proofC *NonRevocProofCList) (*pairing.GT, error) {
	p1, err := pairing.Pair(pkR.PK.Add(proofC.G), proofC.S)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2, err := pairing.Pair(pkR.G, pkR.G)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	return p1.Mul(p2.Inverse()), nil
}

func tauT8Expected(pkR *anoncredskeys.RevocationPublicKey, proofC *NonRevocProofCList) (*pairing.GT, error) {
	p1, err := pairing.Pair(proofC.G, pkR.U)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	p2, err := pairing.Pair(pkR.G, proofC.U)
	if err != nil {
		return nil, wrapErr(OperationFailed, err)
	}
	return p1.Mul(p2.Inverse()), nil
}
