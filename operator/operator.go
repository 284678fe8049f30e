// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

package operator

import (
	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/defn"
	"github.com/oahumap/geodesy/geoerr"
)

// pipelineMethodID is the reserved method id every multi- (and zero-) step
// definition is bound to.
const pipelineMethodID = "pipeline"

// Operator is a method bound to concrete, prepared parameters: either a
// single step, or (when its method id is "pipeline") an ordered sequence of
// child Operators.
type Operator struct {
	Definition           string
	NormalizedDefinition string

	Parameters map[string]string
	Prepared   map[string]any

	ForwardFunc Func
	InverseFunc Func

	Steps []*Operator

	methodID string
}

// New parses definition and binds it against reg: a single step looks up
// its method and calls Prepare once; a pipeline (any step count other than
// exactly one, including zero) recursively constructs one Operator per step.
func New(definition string, reg Registry) (*Operator, error) {
	d := defn.Parse(definition)

	op := &Operator{
		Definition:           d.Text,
		NormalizedDefinition: d.Normalized,
	}

	if d.IsPipeline() {
		if _, ok := reg.OperatorMethod(pipelineMethodID); !ok {
			return nil, geoerr.New(geoerr.KindUnknownMethod, "method %q is not registered", pipelineMethodID)
		}
		op.methodID = pipelineMethodID
		op.Parameters = map[string]string{"_name": pipelineMethodID}
		op.Prepared = map[string]any{}

		op.Steps = make([]*Operator, len(d.Steps))
		for i, step := range d.Steps {
			child, err := New(step.Text, reg)
			if err != nil {
				return nil, err
			}
			op.Steps[i] = child
		}

		pipeline, _ := reg.OperatorMethod(pipelineMethodID)
		op.ForwardFunc = pipeline.Forward
		op.InverseFunc = pipeline.Inverse
		return op, nil
	}

	step := d.Steps[0]
	op.Parameters = step.Parameters
	op.methodID = step.Parameters["_name"]

	method, ok := reg.OperatorMethod(op.methodID)
	if !ok {
		return nil, geoerr.New(geoerr.KindUnknownMethod, "method %q is not registered", op.methodID)
	}
	op.ForwardFunc = method.Forward
	op.InverseFunc = method.Inverse

	if method.Prepare != nil {
		prepared, err := method.Prepare(op.Parameters)
		if err != nil {
			return nil, err
		}
		op.Prepared = prepared
	} else {
		op.Prepared = map[string]any{}
	}

	return op, nil
}

// MethodID returns the id of the method this operator is bound to --
// "pipeline" for a pipeline, including the no-op.
func (op *Operator) MethodID() string { return op.methodID }

// Inverted reports whether the "inv" modifier was present on this step.
func (op *Operator) Inverted() bool { return op.hasFlag("inv") }

// OmitForward reports whether the "omit_fwd" modifier was present.
func (op *Operator) OmitForward() bool { return op.hasFlag("omit_fwd") }

// OmitInverse reports whether the "omit_inv" modifier was present.
func (op *Operator) OmitInverse() bool { return op.hasFlag("omit_inv") }

// IsNoop reports whether op is a pipeline with zero steps.
func (op *Operator) IsNoop() bool { return op.methodID == pipelineMethodID && len(op.Steps) == 0 }

func (op *Operator) hasFlag(name string) bool {
	_, ok := op.Parameters[name]
	return ok
}

// Fwd applies op in the forward direction against ops, returning the count
// of tuples successfully transformed.
func (op *Operator) Fwd(reg Registry, ops coordset.CoordinateSet) (int, error) {
	if op.OmitForward() {
		return ops.Len(), nil
	}
	if op.Inverted() {
		return op.InverseFunc(op, reg, ops)
	}
	return op.ForwardFunc(op, reg, ops)
}

// Inv applies op in the inverse direction against ops, returning the count
// of tuples successfully transformed.
func (op *Operator) Inv(reg Registry, ops coordset.CoordinateSet) (int, error) {
	if op.OmitInverse() {
		return ops.Len(), nil
	}
	if op.Inverted() {
		return op.ForwardFunc(op, reg, ops)
	}
	return op.InverseFunc(op, reg, ops)
}
