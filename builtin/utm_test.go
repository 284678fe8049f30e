// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package builtin

import (
	"testing"

	"github.com/oahumap/geodesy/internal/coordsettest"
	"github.com/oahumap/geodesy/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Zone 32's central meridian is 9 degrees, the same lon_0 the tmerc test
// uses directly, so the two must agree on this point.
func TestUtmZone32MatchesTmercCentralMeridian(t *testing.T) {
	op := newOperator(t, "utm zone=32 ellps=GRS80")
	reg := newTestRegistry()

	lam := 12.0 * degToRad
	phi := 55.0 * degToRad
	ops := coordsettest.New(2, [][]float64{{lam, phi}})

	n, err := op.Fwd(reg, ops)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got := ops.Get(0)
	assert.InDelta(t, 691875.632, got[0], 0.005)
	assert.InDelta(t, 6098907.825, got[1], 0.005)

	_, err = op.Inv(reg, ops)
	require.NoError(t, err)
	back := ops.Get(0)
	assert.InDelta(t, lam, back[0], 1e-9)
	assert.InDelta(t, phi, back[1], 1e-9)
}

func TestUtmSouthFlagShiftsFalseNorthing(t *testing.T) {
	opNorth := newOperator(t, "utm zone=32 ellps=GRS80")
	opSouth := newOperator(t, "utm zone=32 ellps=GRS80 south")
	reg := newTestRegistry()

	lam := 12.0 * degToRad
	phi := -10.0 * degToRad

	north := coordsettest.New(2, [][]float64{{lam, phi}})
	_, err := opNorth.Fwd(reg, north)
	require.NoError(t, err)

	south := coordsettest.New(2, [][]float64{{lam, phi}})
	_, err = opSouth.Fwd(reg, south)
	require.NoError(t, err)

	assert.InDelta(t, north.Get(0)[1]+10000000, south.Get(0)[1], 1e-6)
}

func TestUtmRequiresZone(t *testing.T) {
	_, err := operator.New("utm ellps=GRS80", newTestRegistry())
	require.Error(t, err)
}
