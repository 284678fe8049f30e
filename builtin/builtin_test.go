// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package builtin

import (
	"testing"

	"github.com/oahumap/geodesy/operator"
	"github.com/stretchr/testify/require"
)

// testRegistry resolves method ids against a private snapshot of the
// built-in table, the same shape every Context gives operator.New.
type testRegistry map[string]operator.Method

func (r testRegistry) OperatorMethod(id string) (operator.Method, bool) {
	m, ok := r[id]
	return m, ok
}

func newTestRegistry() testRegistry {
	return testRegistry(All())
}

func newOperator(t *testing.T, definition string) *operator.Operator {
	t.Helper()
	op, err := operator.New(definition, newTestRegistry())
	require.NoError(t, err)
	return op
}
