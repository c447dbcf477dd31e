// Copyright 2026 The anoncreds-core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anoncreds

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaCanonicalizesAndDeduplicates(t *testing.T) {
	s := NewSchema(7, []string{"Name", " name ", "Age"})
	require.Len(t, s.AttributeNames, 2)
	require.Contains(t, s.AttributeNames, "name")
	require.Contains(t, s.AttributeNames, "age")
	require.EqualValues(t, 7, s.SeqNo)
}

func TestAccumulatorIsFull(t *testing.T) {
	acc := &Accumulator{MaxClaimNum: 2, V: map[int32]struct{}{1: {}}}
	require.False(t, acc.IsFull())
	acc.V[2] = struct{}{}
	require.True(t, acc.IsFull())
}

func TestNewSchemaIsOrderIndependent(t *testing.T) {
	a := NewSchema(1, []string{"Name", "Age"})
	b := NewSchema(1, []string{"age", "NAME"})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("schemas built from reordered/differently-cased attribute lists should be identical (-a +b):\n%s", diff)
	}
}
