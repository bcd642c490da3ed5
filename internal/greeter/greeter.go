// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package greeter writes the greet greeting.
package greeter

import (
	"errors"
	"fmt"
	"io"

	"github.com/llbbl/greet/internal/logging"
)

// Greeting is the text written by Run, without the line terminator.
const Greeting = "Hello, world!"

var (
	// ErrWrite wraps any failure to write program output, the greeting included.
	ErrWrite = errors.New("writing output")
	// ErrCompleted is returned by Run on a Greeter that already ran.
	ErrCompleted = errors.New("greeter already completed")
)

// State is the lifecycle state of a Greeter.
type State int

const (
	StateNotStarted State = iota
	StateCompleted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Greeter writes Greeting once to an output stream.
type Greeter struct {
	out   io.Writer
	state State
}

// New creates a Greeter that writes to w.
func New(w io.Writer) *Greeter {
	return &Greeter{out: w}
}

// State returns the current lifecycle state.
func (g *Greeter) State() State {
	return g.state
}

// Run writes the greeting and a newline in a single write.
func (g *Greeter) Run() error {
	if g.state == StateCompleted {
		return ErrCompleted
	}

	log := logging.WithComponent("greeter")

	n, err := io.WriteString(g.out, Greeting+"\n")
	if err != nil {
		log.Debug("greeting write failed", "bytes", n, "error", err)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if n != len(Greeting)+1 {
		log.Debug("short greeting write", "bytes", n)
		return fmt.Errorf("%w: %w", ErrWrite, io.ErrShortWrite)
	}

	g.state = StateCompleted
	log.Debug("greeting written", "bytes", n)
	return nil
}
