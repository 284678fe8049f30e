// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package builtin

import (
	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/operator"
)

func init() {
	register(operator.Method{
		ID:          "helmert",
		Description: "translation=x,y,z (default 0,0,0)",
		Forward:     helmertForward,
		Inverse:     helmertInverse,
		Prepare:     helmertPrepare,
	})
}

func helmertPrepare(params map[string]string) (map[string]any, error) {
	t, err := operator.ParameterAsFloats(params, "translation", []float64{0, 0, 0})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"tx": t[0],
		"ty": t[1],
		"tz": t[2],
	}, nil
}

func helmertTranslation(prepared map[string]any) (x, y, z float64, err error) {
	if x, err = operator.PreparedFloat(prepared, "tx"); err != nil {
		return
	}
	if y, err = operator.PreparedFloat(prepared, "ty"); err != nil {
		return
	}
	z, err = operator.PreparedFloat(prepared, "tz")
	return
}

func helmertForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	return helmertApply(op, ops, 1)
}

func helmertInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	return helmertApply(op, ops, -1)
}

func helmertApply(op *operator.Operator, ops coordset.CoordinateSet, sign float64) (int, error) {
	tx, ty, tz, err := helmertTranslation(op.Prepared)
	if err != nil {
		return 0, err
	}
	t := [3]float64{tx, ty, tz}

	d := ops.Dim()
	upper := d
	if upper > 3 {
		upper = 3
	}

	n := ops.Len()
	for i := 0; i < n; i++ {
		v := ops.Get(i)
		for j := 0; j < upper; j++ {
			v[j] += sign * t[j]
		}
		ops.Set(i, v)
	}
	return n, nil
}
