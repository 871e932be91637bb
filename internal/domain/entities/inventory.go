package entities

import "strings"

// Inventory is the ordered list of installed packages as last reported by the
// package manager. It is only ever replaced as a whole.
type Inventory struct {
	records []PackageRecord
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{records: []PackageRecord{}}
}

// Replace discards the current records and stores a copy of the given ones,
// preserving their order.
func (it *Inventory) Replace(records []PackageRecord) {
	fresh := make([]PackageRecord, len(records))
	copy(fresh, records)
	it.records = fresh
}

// Records returns a copy of the current records.
func (it *Inventory) Records() []PackageRecord {
	out := make([]PackageRecord, len(it.records))
	copy(out, it.records)
	return out
}

// Len returns the number of records.
func (it *Inventory) Len() int { return len(it.records) }

// At returns the record at index and whether the index was in range.
func (it *Inventory) At(index int) (PackageRecord, bool) {
	if index < 0 || index >= len(it.records) {
		return PackageRecord{}, false
	}
	return it.records[index], true
}

// IndexOf returns the index of the first record whose name matches (case
// insensitive), or -1.
func (it *Inventory) IndexOf(name string) int {
	for i, record := range it.records {
		if strings.EqualFold(record.Name, name) {
			return i
		}
	}
	return -1
}

// Contains reports whether a package with the given name is present.
func (it *Inventory) Contains(name string) bool {
	return it.IndexOf(name) >= 0
}

// Clear empties the inventory.
func (it *Inventory) Clear() {
	it.records = []PackageRecord{}
}
