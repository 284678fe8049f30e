// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package builtin

import (
	"github.com/oahumap/geodesy/ellipsoid"
	"github.com/oahumap/geodesy/geoerr"
	"github.com/oahumap/geodesy/operator"
)

func init() {
	register(operator.Method{
		ID:          "utm",
		Description: "zone= (required), ellps= (default GRS80), south; a tmerc specialisation",
		Forward:     tmercForward,
		Inverse:     tmercInverse,
		Prepare:     utmPrepare,
	})
}

func utmPrepare(params map[string]string) (map[string]any, error) {
	zoneFloats, err := operator.ParameterAsFloats(params, "zone", nil)
	if err != nil {
		return nil, err
	}
	if len(zoneFloats) == 0 {
		return nil, geoerr.New(geoerr.KindValue, "utm requires a zone parameter")
	}
	zone := zoneFloats[0]

	name := params["ellps"]
	if name == "" {
		name = "GRS80"
	}
	e, err := ellipsoid.Named(name)
	if err != nil {
		return nil, err
	}

	_, south := params["south"]
	y0 := 0.0
	if south {
		y0 = 10000000.0
	}

	return map[string]any{
		"ellps": e,
		"x_0":   500000.0,
		"y_0":   y0,
		"lon_0": (-183 + 6*zone) * degToRad,
		"lat_0": 0.0,
		"k_0":   0.9996,
	}, nil
}
