package entities

// PanelState is the UI-owned state of an interactive session: the package
// name input, the inventory, and the current selection.
type PanelState struct {
	PackageName string
	Inventory   *Inventory
	Selection   Selection
}

// NewPanelState registers fresh session state.
func NewPanelState() *PanelState {
	return &PanelState{Inventory: NewInventory()}
}

// Reset tears the session state down.
func (it *PanelState) Reset() {
	it.PackageName = ""
	it.Inventory.Clear()
	it.Selection = Selection{}
}
