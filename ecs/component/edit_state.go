package component

// EditState is the single process-wide mode flag. It is owned by the game
// and shared by pointer with every mode-gated system.
type EditState struct {
	Editing    bool
	ShouldSave bool
}
