// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"github.com/fxamacker/cbor/v2"
)

// MarshalClaimDefinition encodes a claim definition for wire transport or
// storage (spec §6: artifacts are opaque to callers beyond round-tripping).
func MarshalClaimDefinition(def *ClaimDefinition) ([]byte, error) {
	b, err := cbor.Marshal(def)
	if err != nil {
		return nil, wrapErr(InvalidStructure, err)
	}
	return b, nil
}

// UnmarshalClaimDefinition decodes what MarshalClaimDefinition produced.
func UnmarshalClaimDefinition(b []byte) (*ClaimDefinition, error) {
	var def ClaimDefinition
	if err := cbor.Unmarshal(b, &def); err != nil {
		return nil, wrapErr(InvalidStructure, err)
	}
	return &def, nil
}

// MarshalClaims encodes an issued credential (primary plus, if present,
// non-revocation half) for handoff to the holder.
func MarshalClaims(c *Claims) ([]byte, error) {
	b, err := cbor.Marshal(c)
	if err != nil {
		return nil, wrapErr(InvalidStructure, err)
	}
	return b, nil
}

// UnmarshalClaims decodes what MarshalClaims produced.
func UnmarshalClaims(b []byte) (*Claims, error) {
	var c Claims
	if err := cbor.Unmarshal(b, &c); err != nil {
		return nil, wrapErr(InvalidStructure, err)
	}
	return &c, nil
}

// MarshalRevocationRegistry encodes a registry's published half (the
// accumulator and its public key) — never RevocationRegistryPrivate, which
// holds the accumulator trapdoor and must never leave the issuer.
func MarshalRevocationRegistry(r *RevocationRegistry) ([]byte, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	b, err := cbor.Marshal(r)
	if err != nil {
		return nil, wrapErr(InvalidStructure, err)
	}
	return b, nil
}

// UnmarshalRevocationRegistry decodes what MarshalRevocationRegistry
// produced into a fresh registry with its own zero-valued mutex.
func UnmarshalRevocationRegistry(b []byte) (*RevocationRegistry, error) {
	var r RevocationRegistry
	if err := cbor.Unmarshal(b, &r); err != nil {
		return nil, wrapErr(InvalidStructure, err)
	}
	return &r, nil
}
