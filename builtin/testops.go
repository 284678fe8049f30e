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
		ID:          "addone",
		Description: "adds one to the first component; exists to exercise the pipeline and inversion machinery",
		Forward:     shiftFirst(1),
		Inverse:     shiftFirst(-1),
	})
	register(operator.Method{
		ID:          "subone",
		Description: "subtracts one from the first component; exists to exercise the pipeline and inversion machinery",
		Forward:     shiftFirst(-1),
		Inverse:     shiftFirst(1),
	})
}

// shiftFirst builds a Func that adds delta to the first component of every
// tuple in the coordinate set.
func shiftFirst(delta float64) operator.Func {
	return func(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
		n := ops.Len()
		for i := 0; i < n; i++ {
			v := ops.Get(i)
			v[0] += delta
			ops.Set(i, v)
		}
		return n, nil
	}
}
