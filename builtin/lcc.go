// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// lcc.go adapts operations/Lambert.go's Lambert Conic Conformal into this
// module's OperatorMethod shape. Unlike the teacher's version -- whose x0,
// y0 and lon0 fields are set up but never applied in Forward/Inverse,
// presumably because the teacher's core.Operation wrapper folds those
// shifts in generically across every projection -- this adaptation applies
// them directly, the same way tmerc.go does, since this module has no such
// implicit wrapper.
package builtin

import (
	"math"

	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/ellipsoid"
	"github.com/oahumap/geodesy/operator"
)

const lccIterationEpsilon = 1e-18

func init() {
	register(operator.Method{
		ID:          "lcc",
		Description: "ellps=, lat_0=, lat_1=, lat_2= (default lat_1), lon_0=, x_0=, y_0= (defaults 0); Lambert Conic Conformal",
		Forward:     lccForward,
		Inverse:     lccInverse,
		Prepare:     lccPrepare,
	})
}

type lccBundle struct {
	ellps        ellipsoid.Ellipsoid
	lon0, x0, y0 float64
	n, f, rho0   float64
}

func lccPrepare(params map[string]string) (map[string]any, error) {
	name := params["ellps"]
	if name == "" {
		name = "GRS80"
	}
	e, err := ellipsoid.Named(name)
	if err != nil {
		return nil, err
	}

	phi0, err := tmercFloatParam(params, "lat_0", 0)
	if err != nil {
		return nil, err
	}
	phi1, err := tmercFloatParam(params, "lat_1", 0)
	if err != nil {
		return nil, err
	}
	phi2, ok := params["lat_2"]
	var phi2v float64
	if ok && phi2 != "" {
		if phi2v, err = tmercFloatParam(params, "lat_2", 0); err != nil {
			return nil, err
		}
	} else {
		phi2v = phi1
	}
	lon0, err := tmercFloatParam(params, "lon_0", 0)
	if err != nil {
		return nil, err
	}
	x0, err := tmercFloatParam(params, "x_0", 0)
	if err != nil {
		return nil, err
	}
	y0, err := tmercFloatParam(params, "y_0", 0)
	if err != nil {
		return nil, err
	}

	phi0 *= degToRad
	phi1 *= degToRad
	phi2v *= degToRad
	lon0 *= degToRad

	ecc := e.Eccentricity()
	m1 := msfn(math.Sin(phi1), math.Cos(phi1), e.EccentricitySquared())
	t1 := tsfn(phi1, math.Sin(phi1), ecc)
	m2 := msfn(math.Sin(phi2v), math.Cos(phi2v), e.EccentricitySquared())
	t2 := tsfn(phi2v, math.Sin(phi2v), ecc)

	var n float64
	if math.Abs(phi1-phi2v) >= 1e-10 {
		n = math.Log(m1/m2) / math.Log(t1/t2)
	} else {
		n = math.Sin(phi1)
	}
	f := e.SemimajorAxis() * m1 / (n * math.Pow(t1, n))
	t0 := tsfn(phi0, math.Sin(phi0), ecc)
	rho0 := f * math.Pow(t0, n)

	return map[string]any{
		"ellps": e,
		"lon_0": lon0,
		"x_0":   x0,
		"y_0":   y0,
		"n":     n,
		"f":     f,
		"rho0":  rho0,
	}, nil
}

func lccUnpack(prepared map[string]any) lccBundle {
	return lccBundle{
		ellps: prepared["ellps"].(ellipsoid.Ellipsoid),
		lon0:  prepared["lon_0"].(float64),
		x0:    prepared["x_0"].(float64),
		y0:    prepared["y_0"].(float64),
		n:     prepared["n"].(float64),
		f:     prepared["f"].(float64),
		rho0:  prepared["rho0"].(float64),
	}
}

// msfn and tsfn are the standard PROJ conformal-latitude support functions.
func msfn(sinphi, cosphi, e2 float64) float64 {
	return cosphi / math.Sqrt(1-e2*sinphi*sinphi)
}

func tsfn(phi, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(math.Pi/2-phi)) / math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}

func lccForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	b := lccUnpack(op.Prepared)
	ecc := b.ellps.Eccentricity()

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		lam, phi := v[0], v[1]

		t := tsfn(phi, math.Sin(phi), ecc)
		rho := b.f * math.Pow(t, b.n)
		dlam := b.n * (lam - b.lon0)

		v[0] = b.x0 + rho*math.Sin(dlam)
		v[1] = b.y0 + b.rho0 - rho*math.Cos(dlam)
		ops.Set(i, v)
	}
	return n, nil
}

func lccInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	b := lccUnpack(op.Prepared)
	e := b.ellps.Eccentricity()

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		x, y := v[0], v[1]

		de := x - b.x0
		dn := b.rho0 - (y - b.y0)

		rho := math.Hypot(de, dn)
		if b.n < 0 {
			rho = -rho
		}
		t := math.Pow(rho/b.f, 1.0/b.n)
		theta := math.Atan2(de, dn)

		lon := theta/b.n + b.lon0

		phi := math.Pi/2 - 2*math.Atan(t)
		for range 10 {
			next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2))
			if math.Abs(next-phi) < lccIterationEpsilon {
				phi = next
				break
			}
			phi = next
		}

		v[0], v[1] = lon, phi
		ops.Set(i, v)
	}
	return n, nil
}
