// Package coordsettest provides a minimal, row-wise CoordinateSet backed by
// a plain [][]float64. It exists only to exercise the coordset.CoordinateSet
// contract in this module's own test suites -- per the spec, row-/column-wise
// storage containers are a deliverable of the surrounding application, not of
// the core engine, so this type is deliberately unexported from the module's
// public surface.
package coordsettest

import (
	"github.com/golang/geo/s2"
)

// Set is a row-wise, fixed-dimension CoordinateSet.
type Set struct {
	dim  int
	rows [][]float64
}

// New builds a Set of the given native dimension from rows, which are
// defensively copied. Every row must already have length dim.
func New(dim int, rows [][]float64) *Set {
	copied := make([][]float64, len(rows))
	for i, r := range rows {
		row := make([]float64, dim)
		copy(row, r)
		copied[i] = row
	}
	return &Set{dim: dim, rows: copied}
}

// FromLatLngs builds a 2D Set of (lon, lat) tuples, in degrees, from a
// slice of golang/geo LatLng values -- the same value type
// tzneal-coordconv's own tests build operands from.
func FromLatLngs(pts []s2.LatLng) *Set {
	rows := make([][]float64, len(pts))
	for i, p := range pts {
		rows[i] = []float64{p.Lng.Degrees(), p.Lat.Degrees()}
	}
	return New(2, rows)
}

// ToLatLngs reads back a 2D Set of (lon, lat) tuples, in degrees, as
// golang/geo LatLng values.
func (s *Set) ToLatLngs() []s2.LatLng {
	out := make([]s2.LatLng, s.Len())
	for i, r := range s.rows {
		out[i] = s2.LatLngFromDegrees(r[1], r[0])
	}
	return out
}

func (s *Set) Len() int { return len(s.rows) }
func (s *Set) Dim() int { return s.dim }

func (s *Set) Get(i int) []float64 {
	out := make([]float64, s.dim)
	copy(out, s.rows[i])
	return out
}

func (s *Set) Set(i int, v []float64) {
	n := len(v)
	if n > s.dim {
		n = s.dim
	}
	copy(s.rows[i], v[:n])
}
