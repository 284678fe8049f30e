// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package builtin

import (
	"github.com/golang/geo/s1"
	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/geoerr"
	"github.com/oahumap/geodesy/operator"
)

func init() {
	register(operator.Method{
		ID:          "geo",
		Description: "(lat deg, lon deg) <-> (lon rad, lat rad)",
		Forward:     geoForward,
		Inverse:     geoInverse,
	})
	register(operator.Method{
		ID:          "gis",
		Description: "(lon deg, lat deg) <-> (lon rad, lat rad)",
		Forward:     gisForward,
		Inverse:     gisInverse,
	})
	register(operator.Method{
		ID:          "ne",
		Description: "swaps the first two components; its own inverse",
		Forward:     neSwap,
		Inverse:     neSwap,
	})
}

// degreesToRadians and radiansToDegrees go through golang/geo's s1.Angle
// value type, the same layer tzneal-coordconv uses for its own degree/
// radian bookkeeping, rather than hand-rolled * math.Pi / 180 arithmetic.
func degreesToRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func radiansToDegrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

func requireAtLeast2D(ops coordset.CoordinateSet, method string) error {
	if ops.Dim() < 2 {
		return geoerr.New(geoerr.KindDimension, "%s requires at least 2 dimensions, got %d", method, ops.Dim())
	}
	return nil
}

func geoForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if err := requireAtLeast2D(ops, "geo"); err != nil {
		return 0, err
	}
	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		lat, lon := v[0], v[1]
		v[0], v[1] = degreesToRadians(lon), degreesToRadians(lat)
		ops.Set(i, v)
	}
	return n, nil
}

func geoInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if err := requireAtLeast2D(ops, "geo"); err != nil {
		return 0, err
	}
	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		lon, lat := v[0], v[1]
		v[0], v[1] = radiansToDegrees(lat), radiansToDegrees(lon)
		ops.Set(i, v)
	}
	return n, nil
}

func gisForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if err := requireAtLeast2D(ops, "gis"); err != nil {
		return 0, err
	}
	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		lon, lat := v[0], v[1]
		v[0], v[1] = degreesToRadians(lon), degreesToRadians(lat)
		ops.Set(i, v)
	}
	return n, nil
}

func gisInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if err := requireAtLeast2D(ops, "gis"); err != nil {
		return 0, err
	}
	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		lon, lat := v[0], v[1]
		v[0], v[1] = radiansToDegrees(lon), radiansToDegrees(lat)
		ops.Set(i, v)
	}
	return n, nil
}

func neSwap(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	if err := requireAtLeast2D(ops, "ne"); err != nil {
		return 0, err
	}
	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		v[0], v[1] = v[1], v[0]
		ops.Set(i, v)
	}
	return n, nil
}
