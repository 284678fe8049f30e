package coordset_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/internal/coordsettest"
	"github.com/stretchr/testify/assert"
)

func TestGetSetRoundTrip(t *testing.T) {
	cs := coordsettest.New(3, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, 2, cs.Len())
	assert.Equal(t, 3, cs.Dim())
	assert.Equal(t, []float64{1, 2, 3}, cs.Get(0))

	cs.Set(0, []float64{9, 9, 9})
	assert.Equal(t, []float64{9, 9, 9}, cs.Get(0))
}

func TestSetIgnoresExtraComponents(t *testing.T) {
	cs := coordsettest.New(2, [][]float64{{1, 2}})
	cs.Set(0, []float64{10, 20, 30, 40})
	assert.Equal(t, []float64{10, 20}, cs.Get(0))
}

func TestSetTruncatesShortUpdate(t *testing.T) {
	cs := coordsettest.New(3, [][]float64{{1, 2, 3}})
	cs.Set(0, []float64{99})
	assert.Equal(t, []float64{99, 2, 3}, cs.Get(0))
}

func TestPromotedLengthAndDefaultMask(t *testing.T) {
	cs := coordsettest.New(2, [][]float64{{10, 20}})
	p := coordset.Promoted(cs, 0, coordset.DefaultMask[:])
	assert.Len(t, p, 4)
	assert.Equal(t, 10.0, p[0])
	assert.Equal(t, 20.0, p[1])
	assert.Equal(t, 0.0, p[2])
	assert.True(t, math.IsNaN(p[3]))
}

func TestPromotedReplacesStoredNaN(t *testing.T) {
	cs := coordsettest.New(2, [][]float64{{10, math.NaN()}})
	p := coordset.Promoted(cs, 0, []float64{1, 2, 3, 4})
	assert.Equal(t, []float64{10, 2, 3, 4}, p)
}

func TestPromotedWithShortMaskOnlyExtends(t *testing.T) {
	cs := coordsettest.New(2, [][]float64{{10, 20}})
	p := coordset.Promoted(cs, 0, []float64{1})
	assert.Len(t, p, 2)
	assert.Equal(t, []float64{10, 20}, p)
}

func TestLatLngRoundTrip(t *testing.T) {
	pts := []s2.LatLng{s2.LatLngFromDegrees(55, 12), s2.LatLngFromDegrees(-33.9, 18.4)}
	cs := coordsettest.FromLatLngs(pts)

	back := cs.ToLatLngs()
	for i := range pts {
		assert.InDelta(t, pts[i].Lat.Degrees(), back[i].Lat.Degrees(), 1e-9)
		assert.InDelta(t, pts[i].Lng.Degrees(), back[i].Lng.Degrees(), 1e-9)
	}
}
