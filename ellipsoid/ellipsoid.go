// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// Package ellipsoid implements the biaxial ellipsoid of revolution that
// every projection and geographic/Cartesian conversion in this module is
// built on.
package ellipsoid

import (
	"math"
	"strconv"
	"strings"

	"github.com/oahumap/geodesy/geoerr"
)

// Ellipsoid is an immutable biaxial ellipsoid of revolution defined by its
// semimajor axis a and its flattening f.
type Ellipsoid struct {
	a float64
	f float64
}

// named binds the well-known ellipsoids to fixed (a, rf) pairs.
var named = map[string]struct{ a, rf float64 }{
	"GRS80": {6378137.0, 298.257222101},
	"WGS84": {6378137.0, 298.257223563},
	"intl":  {6378388.0, 297.0},
}

// New constructs an Ellipsoid from a semimajor axis and a reciprocal
// flattening (f = 1/rf).
func New(a, rf float64) Ellipsoid {
	return Ellipsoid{a: a, f: 1.0 / rf}
}

// Named resolves a well-known ellipsoid name ("GRS80", "WGS84", "intl"), or
// else parses s as a comma-separated "a, rf" pair. It fails with
// geoerr.KindUnknownName when neither applies.
func Named(s string) (Ellipsoid, error) {
	if e, ok := named[s]; ok {
		return New(e.a, e.rf), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Ellipsoid{}, geoerr.New(geoerr.KindUnknownName, "unrecognized ellipsoid name %q", s)
	}
	a, errA := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	rf, errRF := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errA != nil || errRF != nil {
		return Ellipsoid{}, geoerr.New(geoerr.KindUnknownName, "unrecognized ellipsoid name %q", s)
	}
	return New(a, rf), nil
}

// SemimajorAxis returns a.
func (e Ellipsoid) SemimajorAxis() float64 { return e.a }

// Flattening returns f.
func (e Ellipsoid) Flattening() float64 { return e.f }

// EccentricitySquared returns e² = f(2-f).
func (e Ellipsoid) EccentricitySquared() float64 { return e.f * (2 - e.f) }

// Eccentricity returns e.
func (e Ellipsoid) Eccentricity() float64 { return math.Sqrt(e.EccentricitySquared()) }

// SecondEccentricitySquared returns e'² = e²/(1-e²).
func (e Ellipsoid) SecondEccentricitySquared() float64 {
	e2 := e.EccentricitySquared()
	return e2 / (1 - e2)
}

// SecondEccentricity returns e'.
func (e Ellipsoid) SecondEccentricity() float64 {
	return math.Sqrt(e.SecondEccentricitySquared())
}

// SemiminorAxis returns b = a(1-f).
func (e Ellipsoid) SemiminorAxis() float64 { return e.a * (1 - e.f) }

// ThirdFlattening returns n = f/(2-f).
func (e Ellipsoid) ThirdFlattening() float64 { return e.f / (2 - e.f) }

// SecondFlattening returns f' = f/(1-f) = (a-b)/b.
func (e Ellipsoid) SecondFlattening() float64 { return e.f / (1 - e.f) }

// AspectRatio returns b/a = 1-f.
func (e Ellipsoid) AspectRatio() float64 { return 1 - e.f }

// PrimeVerticalRadiusOfCurvature returns N(phi) = a / sqrt(1 - e²sin²phi).
func (e Ellipsoid) PrimeVerticalRadiusOfCurvature(phi float64) float64 {
	s := math.Sin(phi)
	return e.a / math.Sqrt(1-e.EccentricitySquared()*s*s)
}

// MeridianRadiusOfCurvature returns M(phi) = a(1-e²) / (1 - e²sin²phi)^1.5.
func (e Ellipsoid) MeridianRadiusOfCurvature(phi float64) float64 {
	e2 := e.EccentricitySquared()
	s := math.Sin(phi)
	w := 1 - e2*s*s
	return e.a * (1 - e2) / (w * math.Sqrt(w))
}

// RectifyingRadiusBowring returns A = a(1+n²/8)²/(1+n), the Bowring (1983)
// approximation of the rectifying radius, accurate to O(n⁴).
func (e Ellipsoid) RectifyingRadiusBowring() float64 {
	n := e.ThirdFlattening()
	t := 1 + n*n/8
	return e.a * t * t / (1 + n)
}

// meridianSeriesCoefficients returns the Krüger n-series coefficients used
// by both MeridianLatitudeToDistance and MeridianDistanceToLatitude, truncated
// at O(n⁴) to match RectifyingRadiusBowring's own truncation order.
func (e Ellipsoid) meridianSeriesCoefficients() (n, n2, n3, n4 float64) {
	n = e.ThirdFlattening()
	return n, n * n, n * n * n, n * n * n * n
}

// MeridianLatitudeToDistance returns the meridian arc distance M(phi) from
// the equator to geographic latitude phi, via the Bowring (1983) n-series.
func (e Ellipsoid) MeridianLatitudeToDistance(phi float64) float64 {
	n, n2, n3, n4 := e.meridianSeriesCoefficients()
	chi := phi -
		(1.5*n-9.0/16.0*n3)*math.Sin(2*phi) +
		(15.0/16.0*n2-15.0/32.0*n4)*math.Sin(4*phi) -
		(35.0/48.0*n3)*math.Sin(6*phi) +
		(315.0/512.0*n4)*math.Sin(8*phi)
	return e.RectifyingRadiusBowring() * chi
}

// MeridianDistanceToLatitude inverts MeridianLatitudeToDistance: given a
// meridian arc distance m, it returns the corresponding footpoint latitude.
func (e Ellipsoid) MeridianDistanceToLatitude(m float64) float64 {
	n, n2, n3, n4 := e.meridianSeriesCoefficients()
	mu := m / e.RectifyingRadiusBowring()
	return mu +
		(1.5*n-27.0/32.0*n3)*math.Sin(2*mu) +
		(21.0/16.0*n2-55.0/32.0*n4)*math.Sin(4*mu) +
		(151.0/96.0*n3)*math.Sin(6*mu) +
		(1097.0/512.0*n4)*math.Sin(8*mu)
}

// polarDistanceTolerance is the distance from the rotation axis below which
// Geographic snaps to a pole rather than running Fukushima's iteration-free
// formula through a near-singular divide.
const polarDistanceTolerance = 1e-12

// Cartesian converts geographic coordinates (lam, phi, h), in radians and
// meters, to geocentric Cartesian (X, Y, Z).
func (e Ellipsoid) Cartesian(lam, phi, h float64) (x, y, z float64) {
	nphi := e.PrimeVerticalRadiusOfCurvature(phi)
	sp, cp := math.Sincos(phi)
	sl, cl := math.Sincos(lam)
	x = (nphi + h) * cp * cl
	y = (nphi + h) * cp * sl
	z = (nphi*(1-e.EccentricitySquared()) + h) * sp
	return x, y, z
}

// Geographic converts geocentric Cartesian (X, Y, Z) to geographic
// coordinates (lam, phi, h), in radians and meters, via the closed-form,
// iteration-free method of Fukushima (1999).
func (e Ellipsoid) Geographic(x, y, z float64) (lam, phi, h float64) {
	p := math.Hypot(x, y)
	lam = math.Atan2(y, x)

	if p < polarDistanceTolerance {
		phi = math.Copysign(math.Pi, z)
		h = math.Abs(z) - e.SemiminorAxis()
		return lam, phi, h
	}

	a := e.a
	b := e.SemiminorAxis()
	e2 := e.EccentricitySquared()
	ep2 := e.SecondEccentricitySquared()

	t := (z * a) / (p * b)
	c := 1 / math.Sqrt(1+t*t)
	s := c * t

	phi = math.Atan2(z+ep2*b*s*s*s, p-e2*a*c*c*c)
	h = p*math.Cos(phi) + z*math.Sin(phi) - a*a/e.PrimeVerticalRadiusOfCurvature(phi)
	return lam, phi, h
}
