// Package nav is the navigation and selection state machine shared by the
// interactive and scripted front ends. It owns the cursor and mode state
// and knows nothing about rendering or command execution: transitions
// return Effect values and the caller decides what to do with them.
package nav

import (
	"fmt"

	"mactweaks/internal/catalog"
)

// Mode is the current UI mode.
type Mode int

const (
	ModeCategoryList Mode = iota
	ModeTweakList
	ModeDetail
	ModeConfirmation
)

// Action is a controller action a user can request for a tweak.
type Action int

const (
	ActionApply Action = iota
	ActionRevert
)

// String returns a display label for the action.
func (a Action) String() string {
	if a == ActionRevert {
		return "revert"
	}
	return "apply"
}

// Request is a resolved action against a specific tweak.
type Request struct {
	Tweak  catalog.Tweak
	Action Action
}

// EffectKind classifies what a transition asks of the caller.
type EffectKind int

const (
	// EffectNone means the transition was internal; just re-render.
	EffectNone EffectKind = iota

	// EffectExit means the user asked to leave the program.
	EffectExit

	// EffectRun means the caller should invoke the controller with Run.
	EffectRun

	// EffectDenied means the request can never succeed; Reason says why.
	EffectDenied
)

// Effect is the outcome of a transition.
type Effect struct {
	Kind   EffectKind
	Run    *Request // Set only for EffectRun
	Reason string   // Set only for EffectDenied
}

var none = Effect{Kind: EffectNone}

// Engine is the navigation state machine. It reads the catalog but never
// mutates it, and never touches the controller or the terminal.
type Engine struct {
	catalog  *catalog.Catalog
	mode     Mode
	category int
	tweak    int
	pending  *Request
}

// NewEngine creates an engine positioned at the first category.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode { return e.mode }

// CategoryIndex returns the current category cursor.
func (e *Engine) CategoryIndex() int { return e.category }

// TweakIndex returns the current tweak cursor within the category.
func (e *Engine) TweakIndex() int { return e.tweak }

// Pending returns the action awaiting confirmation, if any.
func (e *Engine) Pending() *Request { return e.pending }

// CurrentCategory returns the category under the cursor.
func (e *Engine) CurrentCategory() (catalog.Category, bool) {
	cats := e.catalog.Categories()
	if e.category < 0 || e.category >= len(cats) {
		return catalog.Category{}, false
	}
	return cats[e.category], true
}

// CurrentTweak returns the tweak under the cursor.
func (e *Engine) CurrentTweak() (catalog.Tweak, bool) {
	cat, ok := e.CurrentCategory()
	if !ok || e.tweak < 0 || e.tweak >= len(cat.Tweaks) {
		return catalog.Tweak{}, false
	}
	return cat.Tweaks[e.tweak], true
}

// MoveUp moves the cursor one entry up in the active list. No wrap.
func (e *Engine) MoveUp() {
	switch e.mode {
	case ModeCategoryList:
		if e.category > 0 {
			e.category--
		}
	case ModeTweakList:
		if e.tweak > 0 {
			e.tweak--
		}
	}
}

// MoveDown moves the cursor one entry down in the active list. No wrap.
func (e *Engine) MoveDown() {
	switch e.mode {
	case ModeCategoryList:
		if e.category < len(e.catalog.Categories())-1 {
			e.category++
		}
	case ModeTweakList:
		if cat, ok := e.CurrentCategory(); ok && e.tweak < len(cat.Tweaks)-1 {
			e.tweak++
		}
	}
}

// MoveLeft moves to the previous category. Valid in the category and
// tweak lists; resets the tweak cursor.
func (e *Engine) MoveLeft() {
	if e.mode != ModeCategoryList && e.mode != ModeTweakList {
		return
	}
	if e.category > 0 {
		e.category--
	}
	e.tweak = 0
}

// MoveRight moves to the next category, clamped at the last one.
func (e *Engine) MoveRight() {
	if e.mode != ModeCategoryList && e.mode != ModeTweakList {
		return
	}
	if e.category < len(e.catalog.Categories())-1 {
		e.category++
	}
	e.tweak = 0
}

// Select advances one level: category list to tweak list, tweak list to
// detail. In detail it requests an apply; in confirmation it confirms.
func (e *Engine) Select() Effect {
	switch e.mode {
	case ModeCategoryList:
		if cat, ok := e.CurrentCategory(); ok && len(cat.Tweaks) > 0 {
			e.mode = ModeTweakList
			e.tweak = 0
		}
		return none
	case ModeTweakList:
		if _, ok := e.CurrentTweak(); ok {
			e.mode = ModeDetail
		}
		return none
	case ModeDetail:
		return e.Request(ActionApply)
	case ModeConfirmation:
		return e.Confirm()
	}
	return none
}

// Request asks for an action on the tweak under the cursor. Only valid in
// detail mode. Confirmation-required tweaks park the request and switch to
// confirmation mode instead of running. A revert request on a tweak with
// no revert command is denied here, before any confirmation step.
func (e *Engine) Request(action Action) Effect {
	if e.mode != ModeDetail {
		return none
	}
	tweak, ok := e.CurrentTweak()
	if !ok {
		return none
	}
	if action == ActionRevert && !tweak.Revertible() {
		return Effect{Kind: EffectDenied, Reason: fmt.Sprintf("%q is not revertible", tweak.Name)}
	}

	req := &Request{Tweak: tweak, Action: action}
	if tweak.RequiresConfirmation {
		e.pending = req
		e.mode = ModeConfirmation
		return none
	}
	return Effect{Kind: EffectRun, Run: req}
}

// Confirm releases the pending action. Only valid in confirmation mode.
func (e *Engine) Confirm() Effect {
	if e.mode != ModeConfirmation || e.pending == nil {
		return none
	}
	req := e.pending
	e.pending = nil
	e.mode = ModeDetail
	return Effect{Kind: EffectRun, Run: req}
}

// Cancel discards the pending action and returns to detail mode.
func (e *Engine) Cancel() {
	if e.mode != ModeConfirmation {
		return
	}
	e.pending = nil
	e.mode = ModeDetail
}

// Back retreats one level. In confirmation mode it cancels; from the
// category list it signals exit intent.
func (e *Engine) Back() Effect {
	switch e.mode {
	case ModeConfirmation:
		e.Cancel()
	case ModeDetail:
		e.mode = ModeTweakList
	case ModeTweakList:
		e.mode = ModeCategoryList
	case ModeCategoryList:
		return Effect{Kind: EffectExit}
	}
	return none
}

// JumpTo positions the cursor on a tweak by name and enters detail mode.
// Used by the scripted front end to skip cursor movement.
func (e *Engine) JumpTo(name string) bool {
	for ci, cat := range e.catalog.Categories() {
		for ti, t := range cat.Tweaks {
			if t.Name == name {
				e.category = ci
				e.tweak = ti
				e.mode = ModeDetail
				e.pending = nil
				return true
			}
		}
	}
	return false
}
