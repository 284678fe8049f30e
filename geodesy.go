// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// Package geodesy implements a small, dependency-injectable coordinate
// transformation engine: an Ellipsoid primitive, a string-based operator
// Definition DSL, a built-in OperatorMethod catalogue, and a Context that
// binds definitions to handles and applies them against caller-supplied
// coordinate sets.
package geodesy

import (
	"sync"

	"github.com/oahumap/geodesy/builtin"
	"github.com/oahumap/geodesy/coordset"
	"github.com/oahumap/geodesy/operator"
)

// Direction selects which half of an Operator to apply.
type Direction int

// The two directions an Operator may be applied in.
const (
	DirectionFwd Direction = iota
	DirectionInv
)

// OpHandle identifies an Operator instantiated on a Context. The zero value
// never refers to a live operator.
type OpHandle int

// Context owns a method registry (seeded from builtin.All, then possibly
// extended by the caller) and the set of operators instantiated against it.
// Both maps grow monotonically over the Context's lifetime and are guarded
// by a single sync.RWMutex, following the same coarse single-mutex-per-
// owned-collection style the teacher uses for its system registry.
type Context struct {
	mu sync.RWMutex

	methods  map[string]operator.Method
	ops      map[OpHandle]*operator.Operator
	nextID   OpHandle
	builtins []string
}

// NewContext returns a Context seeded with the built-in operator method
// catalogue (pipeline, helmert, cart, tmerc, utm, geo, gis, ne, addone,
// subone, lcc, wintri).
func NewContext() *Context {
	return &Context{
		methods:  builtin.All(),
		ops:      map[OpHandle]*operator.Operator{},
		builtins: builtin.IDs(),
	}
}

// RegisterOperatorMethod inserts m into c's method table, overwriting any
// existing entry with the same id. Registering a method never affects any
// other Context.
func (c *Context) RegisterOperatorMethod(m operator.Method) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.methods[m.ID] = m
}

// OperatorMethod looks up a registered method by id. Context implements
// operator.Registry through this method, so pipeline steps resolve their
// children against the same table the Context itself uses.
func (c *Context) OperatorMethod(id string) (operator.Method, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.methods[id]
	return m, ok
}

// Builtins returns the ids of every operator method known to c's built-in
// registry at construction time. Methods the caller later registers via
// RegisterOperatorMethod are not reflected here, per spec.
func (c *Context) Builtins() []string {
	out := make([]string, len(c.builtins))
	copy(out, c.builtins)
	return out
}

// Op parses definition, binds it against c's method table, and stores the
// resulting Operator under a freshly allocated handle. It propagates
// UnknownMethod and ValueError from construction.
//
// Construction happens before the write lock is taken: operator.New reads
// the method table through the Registry interface, which itself takes
// c.mu.RLock via OperatorMethod, and sync.RWMutex is not reentrant -- holding
// the write lock across that call would deadlock the constructing goroutine
// against itself.
func (c *Context) Op(definition string) (OpHandle, error) {
	op, err := operator.New(definition, c)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	handle := c.nextID
	c.ops[handle] = op
	return handle, nil
}

// Apply applies the operator behind handle in direction dir against ops,
// mutating it in place, and returns the number of tuples successfully
// transformed. An unknown handle is a soft failure: Apply returns 0 without
// an error. Apply does not report errors raised by the operator (for
// instance a dimension error); it returns only the count the operator
// reported alongside such an error.
func (c *Context) Apply(handle OpHandle, dir Direction, ops coordset.CoordinateSet) int {
	c.mu.RLock()
	op, ok := c.ops[handle]
	c.mu.RUnlock()
	if !ok {
		return 0
	}

	var n int
	var err error
	switch dir {
	case DirectionInv:
		n, err = op.Inv(c, ops)
	default:
		n, err = op.Fwd(c, ops)
	}
	if err != nil {
		return n
	}
	return n
}
