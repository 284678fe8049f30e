// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// Package builtin implements the engine's published operator-method
// catalogue: pipeline, helmert, cart, tmerc/utm, the geo/gis/ne axis
// conventions, the addone/subone test methods, and (as an enrichment over
// the distilled catalogue) the lcc and wintri projections adapted from the
// teacher's operations package.
//
// Every method self-registers into the package-level table via init(), the
// same pattern operations/Lambert.go and operations/Wintri.go use for
// core.RegisterConvertLPToXY.
package builtin

import "github.com/oahumap/geodesy/operator"

var registry = map[string]operator.Method{}

// register adds m to the built-in table. Panics on a duplicate id: this
// only runs from package-level init() calls, so a collision is a
// programming error in this package, not a runtime condition callers can
// trigger.
func register(m operator.Method) {
	if _, exists := registry[m.ID]; exists {
		panic("builtin: duplicate method id " + m.ID)
	}
	registry[m.ID] = m
}

// All returns a fresh copy of the built-in method table, keyed by id. Each
// Context takes its own copy so that methods a caller registers on one
// Context can never leak into another.
func All() map[string]operator.Method {
	out := make(map[string]operator.Method, len(registry))
	for id, m := range registry {
		out[id] = m
	}
	return out
}

// IDs returns the ids of every built-in method, for Context.Builtins.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
