package modules

import (
	"context"
	"strconv"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

const (
	ErrTypeModuleNotFound = "module_not_found"
)

// Module is the interface that describes a puzzle solver.
type Module interface {
	// Returns the module name. It is also the puzzle identifier used to
	// load the input.
	Name() string

	// Solves the puzzle for the given raw input. A returned error aborts the
	// run: there is no partial answer.
	Solve(ctx context.Context, input string) (Answer, error)
}

// Answer is the result of a solved puzzle.
type Answer struct {
	Puzzle  string `json:"puzzle"`
	Value   int64  `json:"value"`
	Details any    `json:"details,omitempty"`
}

// String returns the bare answer value.
func (a Answer) String() string {
	return strconv.FormatInt(a.Value, 10)
}

// Sample is a known input and answer for a module.
type Sample struct {
	Name   string
	Module Module
	Input  string
	Want   int64
}

// Find returns the module with the given name.
func Find(mods []Module, name string) (Module, error) {
	for _, m := range mods {
		if m.Name() == name {
			return m, nil
		}
	}

	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name()
	}
	return nil, errors.New("module not found").
		WithType(ErrTypeModuleNotFound).
		WithTag("puzzle", name).
		WithTag("available", names)
}
