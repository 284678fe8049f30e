// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package geodesy

import (
	"testing"

	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/internal/coordsettest"
	"github.com/oahumap/geodesy/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsListsCatalogue(t *testing.T) {
	ctx := NewContext()
	ids := ctx.Builtins()

	for _, want := range []string{"pipeline", "helmert", "cart", "tmerc", "utm", "geo", "gis", "ne", "addone", "subone", "lcc", "wintri"} {
		assert.Contains(t, ids, want)
	}
}

func TestOpHandlesArePairwiseDistinct(t *testing.T) {
	ctx := NewContext()

	seen := map[OpHandle]bool{}
	for i := 0; i < 5; i++ {
		h, err := ctx.Op("addone")
		require.NoError(t, err)
		assert.False(t, seen[h], "handle %v reused", h)
		seen[h] = true
	}
}

func TestUnknownHandleIsSoftFailure(t *testing.T) {
	ctx := NewContext()
	ops := coordsettest.New(4, [][]float64{{1, 2, 3, 4}})
	n := ctx.Apply(OpHandle(999), DirectionFwd, ops)
	assert.Equal(t, 0, n)
}

// Scenario 1: addone forward increments the first component; inverse
// restores it.
func TestScenario1AddOne(t *testing.T) {
	ctx := NewContext()
	h, err := ctx.Op("addone")
	require.NoError(t, err)

	ops := coordsettest.New(4, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	n := ctx.Apply(h, DirectionFwd, ops)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2.0, ops.Get(0)[0])
	assert.Equal(t, 6.0, ops.Get(1)[0])

	n = ctx.Apply(h, DirectionInv, ops)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1.0, ops.Get(0)[0])
	assert.Equal(t, 5.0, ops.Get(1)[0])
}

// Scenario 2: "inv addone" forward dispatches to addone's inverse.
func TestScenario2InvModifier(t *testing.T) {
	ctx := NewContext()
	h, err := ctx.Op("inv addone")
	require.NoError(t, err)

	ops := coordsettest.New(4, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	n := ctx.Apply(h, DirectionFwd, ops)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0.0, ops.Get(0)[0])
	assert.Equal(t, 4.0, ops.Get(1)[0])
}

// Scenario 3: a caller-registered custom method composes into a pipeline
// with a built-in.
func TestScenario3CustomMethodInPipeline(t *testing.T) {
	ctx := NewContext()
	ctx.RegisterOperatorMethod(operator.Method{
		ID: "addtwo",
		Forward: func(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
			n := ops.Len()
			for i := 0; i < n; i++ {
				v := ops.Get(i)
				v[0] += 2
				ops.Set(i, v)
			}
			return n, nil
		},
		Inverse: func(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
			n := ops.Len()
			for i := 0; i < n; i++ {
				v := ops.Get(i)
				v[0] -= 2
				ops.Set(i, v)
			}
			return n, nil
		},
	})

	h, err := ctx.Op("addtwo | subone")
	require.NoError(t, err)

	ops := coordsettest.New(4, [][]float64{{1, 2, 3, 4}})
	n := ctx.Apply(h, DirectionFwd, ops)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2.0, ops.Get(0)[0])
}

// Scenario 4: helmert translation applies componentwise and inverts.
func TestScenario4Helmert(t *testing.T) {
	ctx := NewContext()
	h, err := ctx.Op("helmert translation=1,2,3")
	require.NoError(t, err)

	ops := coordsettest.New(4, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})
	n := ctx.Apply(h, DirectionFwd, ops)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{2, 4, 6, 4}, ops.Get(0))
	assert.Equal(t, []float64{6, 8, 10, 8}, ops.Get(1))

	n = ctx.Apply(h, DirectionInv, ops)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{1, 2, 3, 4}, ops.Get(0))
	assert.Equal(t, []float64{5, 6, 7, 8}, ops.Get(1))
}

// Scenario 5: the full geo | tmerc | ne pipeline against four quadrant
// points, within 5 mm forward and 3 micro-degrees on the inverse round trip.
func TestScenario5GeoTmercNePipeline(t *testing.T) {
	ctx := NewContext()
	h, err := ctx.Op("geo | tmerc x_0=500000 lon_0=9 k_0=0.9996 ellps=GRS80 | ne")
	require.NoError(t, err)

	type point struct{ lat, lon, n, e float64 }
	points := []point{
		{55, 12, 6098907.825, 691875.632},
		{-55, 12, -6098907.825, 691875.632},
		{55, -6, 6198246.671, -455673.814},
		{-55, -6, -6198246.671, -455673.814},
	}

	for _, p := range points {
		ops := coordsettest.New(2, [][]float64{{p.lat, p.lon}})
		n := ctx.Apply(h, DirectionFwd, ops)
		require.Equal(t, 1, n)
		got := ops.Get(0)
		assert.InDelta(t, p.n, got[0], 0.005)
		assert.InDelta(t, p.e, got[1], 0.005)

		n = ctx.Apply(h, DirectionInv, ops)
		require.Equal(t, 1, n)
		back := ops.Get(0)
		assert.InDelta(t, p.lat, back[0], 3e-6)
		assert.InDelta(t, p.lon, back[1], 3e-6)
	}
}

func TestOpNoopDefinitions(t *testing.T) {
	ctx := NewContext()
	for _, def := range []string{"", " ||| | "} {
		h, err := ctx.Op(def)
		require.NoError(t, err)
		ops := coordsettest.New(2, [][]float64{{1, 2}})
		n := ctx.Apply(h, DirectionFwd, ops)
		assert.Equal(t, 1, n)
		assert.Equal(t, []float64{1, 2}, ops.Get(0))
	}
}

func TestOpPropagatesUnknownMethod(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.Op("bogus")
	require.Error(t, err)
}

func TestRegisterOperatorMethodOverwrites(t *testing.T) {
	ctx := NewContext()
	calls := 0
	ctx.RegisterOperatorMethod(operator.Method{
		ID: "addone",
		Forward: func(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
			calls++
			return ops.Len(), nil
		},
		Inverse: func(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
			return ops.Len(), nil
		},
	})

	h, err := ctx.Op("addone")
	require.NoError(t, err)
	ops := coordsettest.New(2, [][]float64{{1, 2}})
	ctx.Apply(h, DirectionFwd, ops)
	assert.Equal(t, 1, calls)
}
