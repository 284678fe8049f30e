// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// Package builtin's tmerc.go implements the transverse Mercator projection
// following Bowring (1989); utm.go reuses these same forward/inverse
// closures with a Prepare step that hard-codes the UTM zone conventions.
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
		ID:          "tmerc",
		Description: "ellps=, x_0=, y_0=, lon_0=, lat_0=, k_0= (defaults 0,0,0,0,1); Bowring (1989) transverse Mercator",
		Forward:     tmercForward,
		Inverse:     tmercInverse,
		Prepare:     tmercPrepare,
	})
}

const degToRad = math.Pi / 180

func tmercPrepare(params map[string]string) (map[string]any, error) {
	name := params["ellps"]
	if name == "" {
		name = "GRS80"
	}
	e, err := ellipsoid.Named(name)
	if err != nil {
		return nil, err
	}

	floats, err := tmercFloatParams(params, "x_0", "y_0", "lon_0", "lat_0")
	if err != nil {
		return nil, err
	}
	k0, err := tmercFloatParam(params, "k_0", 1)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"ellps": e,
		"x_0":   floats[0],
		"y_0":   floats[1],
		"lon_0": floats[2] * degToRad,
		"lat_0": floats[3] * degToRad,
		"k_0":   k0,
	}, nil
}

// tmercFloatParams reads several independently-defaulted-to-zero numeric
// parameters in one call.
func tmercFloatParams(params map[string]string, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		v, err := tmercFloatParam(params, k, 0)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func tmercFloatParam(params map[string]string, key string, def float64) (float64, error) {
	v, err := operator.ParameterAsFloats(params, key, []float64{def})
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

type tmercBundle struct {
	ellps                       ellipsoid.Ellipsoid
	x0, y0, lon0, lat0, k0, ep2 float64
}

func tmercUnpack(prepared map[string]any) tmercBundle {
	e := prepared["ellps"].(ellipsoid.Ellipsoid)
	return tmercBundle{
		ellps: e,
		x0:    prepared["x_0"].(float64),
		y0:    prepared["y_0"].(float64),
		lon0:  prepared["lon_0"].(float64),
		lat0:  prepared["lat_0"].(float64),
		k0:    prepared["k_0"].(float64),
		ep2:   e.SecondEccentricitySquared(),
	}
}

func tmercForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if ops.Dim() < 2 {
		return 0, geoerr.New(geoerr.KindDimension, "tmerc requires at least 2 dimensions, got %d", ops.Dim())
	}
	b := tmercUnpack(op.Prepared)

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		lam, phi := v[0], v[1]+b.lat0

		dlam := lam - b.lon0
		s, c := math.Sincos(phi)
		N := b.ellps.PrimeVerticalRadiusOfCurvature(phi)
		m := b.ellps.MeridianLatitudeToDistance(phi)

		z := b.ep2 * dlam * dlam * dlam * c * c * c * c * c / 6

		easting := b.x0 + b.k0*N*(math.Atanh(c*math.Sin(dlam))+z*(1+dlam*dlam*(36*c*c-29)/10))

		halfSin := math.Sin(dlam / 2)
		theta2 := math.Atan2(2*s*c*halfSin*halfSin, s*s+c*c*math.Cos(dlam))

		northing := b.y0 + b.k0*(m+N*theta2+z*N*dlam*s/4*(9+4*b.ep2*c*c+dlam*dlam*(20*c*c-11)))

		v[0], v[1] = easting, northing
		ops.Set(i, v)
	}
	return n, nil
}

func tmercInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if ops.Dim() < 2 {
		return 0, geoerr.New(geoerr.KindDimension, "tmerc requires at least 2 dimensions, got %d", ops.Dim())
	}
	b := tmercUnpack(op.Prepared)

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		easting, northing := v[0], v[1]

		phiF := b.ellps.MeridianDistanceToLatitude((northing - b.y0) / b.k0)
		Nf := b.ellps.PrimeVerticalRadiusOfCurvature(phiF)
		cf := math.Cos(phiF)
		tf := math.Tan(phiF)

		x := (easting - b.x0) / (b.k0 * Nf)
		theta4 := math.Atan2(math.Sinh(x), cf)
		theta5 := math.Atan(tf * math.Cos(theta4))

		phi := b.lat0 + (1+cf*cf*b.ep2)*(theta5-x*x*x*x*b.ep2*tf/24*(9-10*cf*cf)) - b.ep2*cf*cf*phiF
		lam := b.lon0 + theta4 - (b.ep2/60)*x*x*x*cf*(10-4*x*x/(cf*cf)+x*x*cf*cf)

		v[0], v[1] = lam, phi
		ops.Set(i, v)
	}
	return n, nil
}
