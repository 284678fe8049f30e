// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package builtin

import (
	"math"

	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/ellipsoid"
	"github.com/oahumap/geodesy/geoerr"
	"github.com/oahumap/geodesy/operator"
)

func init() {
	register(operator.Method{
		ID:          "cart",
		Description: "ellps= (default GRS80); geographic <-> geocentric Cartesian",
		Forward:     cartForward,
		Inverse:     cartInverse,
		Prepare:     cartPrepare,
	})
}

var cartPromoteMask = []float64{math.NaN(), math.NaN(), 0}

func cartPrepare(params map[string]string) (map[string]any, error) {
	name := params["ellps"]
	if name == "" {
		name = "GRS80"
	}
	e, err := ellipsoid.Named(name)
	if err != nil {
		return nil, err
	}

	_, south := params["south"]

	return map[string]any{
		"ellps": e,
		"south": south,
	}, nil
}

func cartEllipsoid(prepared map[string]any) ellipsoid.Ellipsoid {
	return prepared["ellps"].(ellipsoid.Ellipsoid)
}

func cartForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if ops.Dim() < 2 {
		return 0, geoerr.New(geoerr.KindDimension, "cart requires at least 2 dimensions, got %d", ops.Dim())
	}
	e := cartEllipsoid(op.Prepared)

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := coordset.Promoted(ops, i, cartPromoteMask)
		lam, phi, h := v[0], v[1], v[2]
		x, y, z := e.Cartesian(lam, phi, h)
		out := ops.Get(i)
		out[0], out[1] = x, y
		if len(out) > 2 {
			out[2] = z
		}
		ops.Set(i, out)
	}
	return n, nil
}

func cartInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if ops.Dim() < 2 {
		return 0, geoerr.New(geoerr.KindDimension, "cart requires at least 2 dimensions, got %d", ops.Dim())
	}
	e := cartEllipsoid(op.Prepared)
	south := op.Prepared["south"].(bool)

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		out := ops.Get(i)

		if ops.Dim() == 2 {
			x, y := v[0], v[1]
			lam := math.Atan2(y, x)
			p := math.Hypot(x, y)
			a := e.SemimajorAxis()
			cr := p / a
			sr := math.Sqrt(1 - cr*cr)
			phi := math.Atan2(a*sr, (1-e.Flattening())*p)
			if south {
				phi = -phi
			}
			out[0], out[1] = lam, phi
		} else {
			x, y, z := v[0], v[1], v[2]
			lam, phi, h := e.Geographic(x, y, z)
			out[0], out[1], out[2] = lam, phi, h
		}
		ops.Set(i, out)
	}
	return n, nil
}
