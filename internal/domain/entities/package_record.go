package entities

// PackageRecord is a single installed package as reported by the package manager.
type PackageRecord struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
