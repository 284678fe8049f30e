// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// wintri.go adapts operations/Wintri.go's Winkel Tripel projection into this
// module's OperatorMethod shape: spherical only (the teacher's wintriSetup
// forces Es to zero), rewritten against coordinate-set tuples in place of
// *core.CoordLP/*core.CoordXY pointers.
package builtin

import (
	"math"

	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/geoerr"
	"github.com/oahumap/geodesy/operator"
)

func init() {
	register(operator.Method{
		ID:          "wintri",
		Description: "lat_1= (default: acos(2/pi), about 50.4598 deg); spherical Winkel Tripel",
		Forward:     wintriForward,
		Inverse:     wintriInverse,
		Prepare:     wintriPrepare,
	})
}

const wintriEps = 1.0e-10

func wintriPrepare(params map[string]string) (map[string]any, error) {
	lat1 := math.Acos(2.0 / math.Pi)
	if raw, ok := params["lat_1"]; ok && raw != "" {
		v, err := tmercFloatParam(params, "lat_1", 0)
		if err != nil {
			return nil, err
		}
		lat1 = v * degToRad
	}
	if math.Abs(lat1) > math.Pi/2 {
		lat1 = math.Copysign(math.Pi/2, lat1)
	}
	return map[string]any{
		"cosLat1": math.Cos(lat1),
	}, nil
}

func wintriProject(lam, phi, cosLat1 float64) (x, y float64) {
	x1 := lam * cosLat1
	y1 := phi

	cosPhi := math.Cos(phi)
	cosHalfLam := math.Cos(lam * 0.5)
	alpha := math.Acos(cosPhi * cosHalfLam)

	var x2, y2 float64
	if alpha < wintriEps {
		x2, y2 = lam, phi
	} else {
		sinAlpha := math.Sin(alpha)
		if sinAlpha < wintriEps {
			x2, y2 = 0, 0
		} else {
			factor := alpha / sinAlpha
			x2 = 2.0 * cosPhi * math.Sin(lam*0.5) * factor
			y2 = math.Sin(phi) * factor
		}
	}

	return 0.5 * (x1 + x2), 0.5 * (y1 + y2)
}

func wintriForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	cosLat1, err := operator.PreparedFloat(op.Prepared, "cosLat1")
	if err != nil {
		return 0, err
	}

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		v[0], v[1] = wintriProject(v[0], v[1], cosLat1)
		ops.Set(i, v)
	}
	return n, nil
}

func wintriInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	cosLat1, err := operator.PreparedFloat(op.Prepared, "cosLat1")
	if err != nil {
		return 0, err
	}

	const maxIter = 30
	const tolerance = 1e-14

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		x, y := v[0], v[1]

		phi := clampAbs(y, math.Pi/2)
		lam := clampAbs(x/cosLat1, math.Pi)

		for iter := 0; iter < maxIter; iter++ {
			tx, ty := wintriProject(lam, phi, cosLat1)
			dx, dy := tx-x, ty-y
			if math.Abs(dx) < tolerance && math.Abs(dy) < tolerance {
				break
			}
			if math.Abs(dx) > 10 || math.Abs(dy) > 10 {
				phi = y * 0.9
				lam = x * 0.9 / cosLat1
				continue
			}

			delta := math.Max(1e-8, math.Min(1e-6, math.Max(math.Abs(phi), math.Abs(lam))*1e-8))

			tx1, ty1 := wintriProject(lam, phi+delta, cosLat1)
			dxdPhi := (tx1 - tx) / delta
			dydPhi := (ty1 - ty) / delta

			tx2, ty2 := wintriProject(lam+delta, phi, cosLat1)
			dxdLam := (tx2 - tx) / delta
			dydLam := (ty2 - ty) / delta

			det := dxdPhi*dydLam - dydPhi*dxdLam
			if math.Abs(det) < 1e-15 {
				return i, geoerr.New(geoerr.KindValue, "wintri inverse: Jacobian determinant too small")
			}

			dphi := (dydLam*dx - dxdLam*dy) / det
			dlam := (dxdPhi*dy - dydPhi*dx) / det

			damping := 1.0
			if math.Abs(dphi) > 0.1 || math.Abs(dlam) > 0.1 {
				damping = 0.5
			}

			phi -= damping * dphi
			lam -= damping * dlam

			phi = clampAbs(phi, math.Pi/2)
			for lam > math.Pi {
				lam -= 2 * math.Pi
			}
			for lam < -math.Pi {
				lam += 2 * math.Pi
			}
		}

		v[0], v[1] = lam, phi
		ops.Set(i, v)
	}
	return n, nil
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
