// Package controller orchestrates apply and revert requests: it resolves
// tweaks from the catalog, invokes the executor, and records the outcome
// in the state tracker. Confirmation is the front end's job — by the time
// a request reaches the controller it is final.
package controller

import (
	"fmt"

	"mactweaks/internal/catalog"
	"mactweaks/internal/executor"
	"mactweaks/internal/state"
)

// Result describes a completed apply or revert.
type Result struct {
	Tweak  string
	Action state.ActionKind
	Output string
}

// Controller is the single writer of tweak run state.
type Controller struct {
	catalog *catalog.Catalog
	runner  executor.Runner
	tracker *state.Tracker
}

// New creates a controller over the given collaborators.
func New(c *catalog.Catalog, r executor.Runner, t *state.Tracker) *Controller {
	return &Controller{catalog: c, runner: r, tracker: t}
}

// Apply runs the tweak's apply command. It always re-runs the command,
// even when the tweak is already recorded as applied: the tracker has no
// oracle for true system state, so the command is the source of truth.
func (c *Controller) Apply(name string) (*Result, error) {
	tweak, ok := c.catalog.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTweak, name)
	}

	out := c.runner.Run(tweak.ApplyCommand)
	if !out.Succeeded {
		c.record(name, func(r *state.Record) {
			// A failed apply leaves Applied as it was.
			r.LastAction = state.ActionApplied
			r.LastOK = false
			r.LastMessage = out.Output
		})
		return nil, &CommandError{Op: OpApply, Tweak: name, Output: out.Output, ExitCode: out.ExitCode}
	}

	c.record(name, func(r *state.Record) {
		r.Applied = true
		r.LastAction = state.ActionApplied
		r.LastOK = true
		r.LastMessage = out.Output
	})
	return &Result{Tweak: name, Action: state.ActionApplied, Output: out.Output}, nil
}

// Revert runs the tweak's revert command. Tweaks without one fail with
// ErrNotRevertible before the executor is touched.
func (c *Controller) Revert(name string) (*Result, error) {
	tweak, ok := c.catalog.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTweak, name)
	}
	if !tweak.Revertible() {
		return nil, fmt.Errorf("%w: %s", ErrNotRevertible, name)
	}

	out := c.runner.Run(tweak.RevertCommand)
	if !out.Succeeded {
		c.record(name, func(r *state.Record) {
			r.LastAction = state.ActionReverted
			r.LastOK = false
			r.LastMessage = out.Output
		})
		return nil, &CommandError{Op: OpRevert, Tweak: name, Output: out.Output, ExitCode: out.ExitCode}
	}

	c.record(name, func(r *state.Record) {
		r.Applied = false
		r.LastAction = state.ActionReverted
		r.LastOK = true
		r.LastMessage = out.Output
	})
	return &Result{Tweak: name, Action: state.ActionReverted, Output: out.Output}, nil
}

// Status returns a snapshot of the tweak's run state. It never fails for
// a cataloged name.
func (c *Controller) Status(name string) (state.Record, error) {
	if _, ok := c.catalog.Find(name); !ok {
		return state.Record{}, fmt.Errorf("%w: %s", ErrUnknownTweak, name)
	}
	r, _ := c.tracker.Get(name)
	return r, nil
}

func (c *Controller) record(name string, mutate func(*state.Record)) {
	r, _ := c.tracker.Get(name)
	mutate(&r)
	c.tracker.Set(name, r)
}
