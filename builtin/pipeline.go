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
		ID:          "pipeline",
		Description: "sequential composition of operators; inverse runs steps in reverse order",
		Forward:     pipelineForward,
		Inverse:     pipelineInverse,
	})
}

func pipelineForward(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	n := ops.Len()
	for _, step := range op.Steps {
		m, err := step.Fwd(reg, ops)
		if m < n {
			n = m
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func pipelineInverse(op *operator.Operator, reg operator.Registry, ops coordset.CoordinateSet) (int, error) {
	n := ops.Len()
	for i := len(op.Steps) - 1; i >= 0; i-- {
		m, err := op.Steps[i].Inv(reg, ops)
		if m < n {
			n = m
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
