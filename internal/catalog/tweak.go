package catalog

// Tweak is a single system configuration change. Names are unique across
// the whole catalog, not just within a category.
type Tweak struct {
	Name                 string // Unique display name
	Description          string
	ApplyCommand         string // Shell command line, never empty
	RevertCommand        string // Empty means the tweak cannot be reverted
	RequiresConfirmation bool   // Front ends must confirm before running
}

// Revertible reports whether the tweak has a revert command.
func (t Tweak) Revertible() bool {
	return t.RevertCommand != ""
}

// Category groups tweaks for display. Slice order is display order.
type Category struct {
	Name        string
	Description string
	Tweaks      []Tweak
}
