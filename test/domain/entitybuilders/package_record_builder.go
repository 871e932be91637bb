//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/modinstaller/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageRecordBuilder helps create test package records with a fluent interface.
type PackageRecordBuilder struct {
	*testkit.BaseBuilder
	name    string
	version string
}

// NewPackageRecordBuilder creates a new package record builder with sensible defaults.
func NewPackageRecordBuilder() *PackageRecordBuilder {
	return &PackageRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "examplepkg",
		version:     "1.0.0",
	}
}

// WithName sets the package name.
func (b *PackageRecordBuilder) WithName(name string) *PackageRecordBuilder {
	b.name = name
	return b
}

// WithVersion sets the package version.
func (b *PackageRecordBuilder) WithVersion(version string) *PackageRecordBuilder {
	b.version = version
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *PackageRecordBuilder) Build() interface{} {
	return b.BuildPackageRecord()
}

// BuildPackageRecord creates the record with a concrete return type.
func (b *PackageRecordBuilder) BuildPackageRecord() entities.PackageRecord {
	return entities.PackageRecord{
		Name:    b.name,
		Version: b.version,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "examplepkg"
	b.version = "1.0.0"
	return b
}

// Clone creates a deep copy of the PackageRecordBuilder.
func (b *PackageRecordBuilder) Clone() testkit.Builder {
	return &PackageRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
	}
}

// Records builds one record per name, all at the builder's current version.
func (b *PackageRecordBuilder) Records(names ...string) []entities.PackageRecord {
	records := make([]entities.PackageRecord, 0, len(names))
	for _, name := range names {
		records = append(records, entities.PackageRecord{Name: name, Version: b.version})
	}
	return records
}
