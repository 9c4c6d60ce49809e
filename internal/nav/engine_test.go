package nav

import (
	"testing"

	"mactweaks/internal/catalog"
)

// threeCategories builds a small catalog for navigation tests: three
// categories covering the attribute combinations (revertible, plain
// non-revertible, confirmation-gated with and without a revert command).
func threeCategories(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.BuildFrom([]catalog.Category{
		{Name: "First", Tweaks: []catalog.Tweak{
			{Name: "one", ApplyCommand: "true", RevertCommand: "false"},
			{Name: "two", ApplyCommand: "true"},
		}},
		{Name: "Second", Tweaks: []catalog.Tweak{
			{Name: "three", ApplyCommand: "true", RevertCommand: "false", RequiresConfirmation: true},
			{Name: "seven", ApplyCommand: "true", RequiresConfirmation: true},
		}},
		{Name: "Third", Tweaks: []catalog.Tweak{
			{Name: "four", ApplyCommand: "true"},
			{Name: "five", ApplyCommand: "true"},
			{Name: "six", ApplyCommand: "true"},
		}},
	})
	if err != nil {
		t.Fatalf("BuildFrom failed: %v", err)
	}
	return c
}

func TestInitialState(t *testing.T) {
	e := NewEngine(threeCategories(t))

	if e.Mode() != ModeCategoryList {
		t.Errorf("initial mode should be category list, got %v", e.Mode())
	}
	if e.CategoryIndex() != 0 || e.TweakIndex() != 0 {
		t.Error("cursor should start at the first entry")
	}
}

func TestVerticalMoveClamps(t *testing.T) {
	e := NewEngine(threeCategories(t))

	e.MoveUp()
	if e.CategoryIndex() != 0 {
		t.Error("MoveUp at the top should clamp, not wrap")
	}

	for i := 0; i < 10; i++ {
		e.MoveDown()
	}
	if e.CategoryIndex() != 2 {
		t.Errorf("MoveDown should clamp at the last category, got %d", e.CategoryIndex())
	}

	e.MoveDown()
	if e.CategoryIndex() != 2 {
		t.Error("MoveDown at the bottom should clamp, not wrap")
	}
}

func TestLateralMoveClampsNoWrap(t *testing.T) {
	e := NewEngine(threeCategories(t))

	// Five right-moves over three categories land on the last index, not
	// back at the start.
	for i := 0; i < 5; i++ {
		e.MoveRight()
	}
	if e.CategoryIndex() != 2 {
		t.Errorf("expected clamp at index 2, got %d", e.CategoryIndex())
	}

	for i := 0; i < 5; i++ {
		e.MoveLeft()
	}
	if e.CategoryIndex() != 0 {
		t.Errorf("expected clamp at index 0, got %d", e.CategoryIndex())
	}
}

func TestLateralMoveResetsTweakCursor(t *testing.T) {
	e := NewEngine(threeCategories(t))

	e.MoveRight()
	e.MoveRight() // Third
	e.Select()    // into tweak list
	e.MoveDown()
	e.MoveDown()
	if e.TweakIndex() != 2 {
		t.Fatalf("expected tweak index 2, got %d", e.TweakIndex())
	}

	e.MoveLeft()
	if e.Mode() != ModeTweakList {
		t.Error("lateral move should stay in the tweak list")
	}
	if e.CategoryIndex() != 1 || e.TweakIndex() != 0 {
		t.Errorf("lateral move should reset the tweak cursor, got cat=%d tweak=%d",
			e.CategoryIndex(), e.TweakIndex())
	}
}

func TestSelectDescends(t *testing.T) {
	e := NewEngine(threeCategories(t))

	e.Select()
	if e.Mode() != ModeTweakList {
		t.Fatalf("select from category list should enter tweak list, got %v", e.Mode())
	}

	e.Select()
	if e.Mode() != ModeDetail {
		t.Fatalf("select from tweak list should enter detail, got %v", e.Mode())
	}

	tweak, ok := e.CurrentTweak()
	if !ok || tweak.Name != "one" {
		t.Errorf("detail should show the cursored tweak, got %v", tweak.Name)
	}
}

func TestBackAscendsAndExits(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.Select()
	e.Select()

	if eff := e.Back(); eff.Kind != EffectNone || e.Mode() != ModeTweakList {
		t.Error("back from detail should return to the tweak list")
	}
	if eff := e.Back(); eff.Kind != EffectNone || e.Mode() != ModeCategoryList {
		t.Error("back from tweak list should return to the category list")
	}
	if eff := e.Back(); eff.Kind != EffectExit {
		t.Error("back from category list should signal exit")
	}
}

func TestRequestWithoutConfirmationRuns(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.Select()
	e.Select() // detail on "one"

	eff := e.Request(ActionApply)
	if eff.Kind != EffectRun {
		t.Fatalf("expected EffectRun, got %v", eff.Kind)
	}
	if eff.Run == nil || eff.Run.Tweak.Name != "one" || eff.Run.Action != ActionApply {
		t.Errorf("unexpected run request: %+v", eff.Run)
	}
	if e.Mode() != ModeDetail {
		t.Error("non-confirmation request should stay in detail mode")
	}
}

func TestConfirmationFlow(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.MoveRight() // Second
	e.Select()
	e.Select() // detail on "three" (requires confirmation)

	eff := e.Request(ActionApply)
	if eff.Kind != EffectNone {
		t.Fatal("confirmation-required request must not run immediately")
	}
	if e.Mode() != ModeConfirmation {
		t.Fatalf("expected confirmation mode, got %v", e.Mode())
	}
	if e.Pending() == nil || e.Pending().Tweak.Name != "three" {
		t.Fatalf("pending request should be parked, got %+v", e.Pending())
	}

	eff = e.Confirm()
	if eff.Kind != EffectRun || eff.Run == nil || eff.Run.Tweak.Name != "three" {
		t.Fatalf("confirm should release the pending request, got %+v", eff)
	}
	if e.Mode() != ModeDetail {
		t.Error("confirm should return to detail mode")
	}
	if e.Pending() != nil {
		t.Error("pending request should be cleared after confirm")
	}
}

func TestCancelDiscardsPending(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.MoveRight()
	e.Select()
	e.Select()
	e.Request(ActionApply)

	e.Cancel()
	if e.Mode() != ModeDetail {
		t.Error("cancel should return to detail mode")
	}
	if e.Pending() != nil {
		t.Error("cancel should discard the pending request")
	}

	// Confirm after cancel must not resurrect the request.
	if eff := e.Confirm(); eff.Kind != EffectNone {
		t.Error("confirm with no pending request should do nothing")
	}
}

func TestBackCancelsConfirmation(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.MoveRight()
	e.Select()
	e.Select()
	e.Request(ActionRevert)

	if eff := e.Back(); eff.Kind != EffectNone {
		t.Error("back in confirmation mode should not exit")
	}
	if e.Mode() != ModeDetail || e.Pending() != nil {
		t.Error("back in confirmation mode should cancel")
	}
}

func TestRevertDeniedWithoutRevertCommand(t *testing.T) {
	e := NewEngine(threeCategories(t))

	// Confirmation-gated but not revertible: the denial must come before
	// the confirmation step, never showing a dialog for an empty command.
	e.JumpTo("seven")
	eff := e.Request(ActionRevert)
	if eff.Kind != EffectDenied {
		t.Fatalf("expected EffectDenied, got %v", eff.Kind)
	}
	if eff.Reason == "" {
		t.Error("denied effect should carry a reason")
	}
	if e.Mode() != ModeDetail {
		t.Errorf("denied request must stay in detail mode, got %v", e.Mode())
	}
	if e.Pending() != nil {
		t.Error("denied request must not park a pending action")
	}

	// Plain non-revertible tweaks are denied the same way.
	e.JumpTo("two")
	if eff := e.Request(ActionRevert); eff.Kind != EffectDenied {
		t.Errorf("expected EffectDenied, got %v", eff.Kind)
	}

	// Apply on the same tweak is unaffected.
	if eff := e.Request(ActionApply); eff.Kind != EffectRun {
		t.Errorf("apply should still run, got %v", eff.Kind)
	}
}

func TestSelectInDetailRequestsApply(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.Select()
	e.Select()

	eff := e.Select()
	if eff.Kind != EffectRun || eff.Run.Action != ActionApply {
		t.Errorf("select in detail should request apply, got %+v", eff)
	}
}

func TestJumpTo(t *testing.T) {
	e := NewEngine(threeCategories(t))

	if !e.JumpTo("five") {
		t.Fatal("JumpTo should find a cataloged tweak")
	}
	if e.Mode() != ModeDetail {
		t.Error("JumpTo should enter detail mode")
	}
	if tweak, ok := e.CurrentTweak(); !ok || tweak.Name != "five" {
		t.Errorf("cursor should sit on the jumped-to tweak, got %v", tweak.Name)
	}

	if e.JumpTo("missing") {
		t.Error("JumpTo should fail for an unknown name")
	}
}

func TestMoveIgnoredInDetail(t *testing.T) {
	e := NewEngine(threeCategories(t))
	e.Select()
	e.Select()

	e.MoveDown()
	e.MoveRight()
	if e.TweakIndex() != 0 || e.CategoryIndex() != 0 {
		t.Error("cursor moves should be ignored in detail mode")
	}
}
