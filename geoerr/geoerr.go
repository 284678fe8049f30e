// Copyright (C) 2018, Michael P. Gerlek (Flaxen Consulting)
//
// Portions of this code were derived from the PROJ.4 software
// In keeping with the terms of the PROJ.4 project, this software
// is provided under the MIT-style license in `LICENSE.md` and may
// additionally be subject to the copyrights of the PROJ.4 authors.

// Package geoerr defines the error kinds the geodesy engine can raise.
//
// All of them surface synchronously, from construction-time calls
// (Ellipsoid.Named, operator.New, Context.Op) or from applying an operator
// (Operator.Fwd, Operator.Inv) -- nothing in this module retries or defers
// an error.
package geoerr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a geodesy error.
type Kind int

const (
	// KindUnknownName is raised by ellipsoid.Named for an unresolved name.
	KindUnknownName Kind = iota
	// KindUnknownMethod is raised when an operator definition references
	// a method id that is not registered in the context.
	KindUnknownMethod
	// KindValue is raised when a parameter fails to parse as required.
	KindValue
	// KindDimension is raised when an operator needs more dimensions than
	// the operand coordinate set provides.
	KindDimension
	// KindKey is raised when a caller reads a missing key from a
	// prepared-parameter bundle.
	KindKey
)

func (k Kind) String() string {
	switch k {
	case KindUnknownName:
		return "unknown name"
	case KindUnknownMethod:
		return "unknown method"
	case KindValue:
		return "value error"
	case KindDimension:
		return "dimension error"
	case KindKey:
		return "key error"
	default:
		return "geodesy error"
	}
}

// Error is the concrete error type raised throughout the engine.
type Error struct {
	Kind    Kind
	Message string
}

// New builds an Error of the given kind, formatting Message like fmt.Sprintf.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is supports errors.Is against a bare Kind-tagged sentinel Error, so
// callers can write errors.Is(err, geoerr.New(geoerr.KindDimension, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf extracts the Kind of err if it is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
