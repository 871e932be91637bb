package entities

// Selection is the cursor into an Inventory used to pick the uninstall target.
type Selection struct {
	Index int
}

// NewSelection creates a selection pointing at index.
func NewSelection(index int) Selection {
	return Selection{Index: index}
}

// Resolve returns the record the selection points at. An out-of-range index
// is a validation error.
func (s Selection) Resolve(inventory *Inventory) (PackageRecord, error) {
	if inventory == nil {
		return PackageRecord{}, &ValidationError{Field: "selection", Err: ErrNoSelection}
	}
	record, ok := inventory.At(s.Index)
	if !ok {
		return PackageRecord{}, &ValidationError{Field: "selection", Err: ErrNoSelection}
	}
	return record, nil
}
