// Package listing decodes the machine-readable package listings printed by
// `pip list --format=json` and compatible managers.
package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rios0rios0/modinstaller/internal/domain/entities"
)

type jsonEntry struct {
	Name    *string `json:"name"`
	Version *string `json:"version"`
}

// ParseJSON decodes a JSON array of {name, version} objects, preserving the
// order of the array. Extra fields are ignored. Anything else yields an
// *entities.ParseError.
func ParseJSON(data []byte) ([]entities.PackageRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &entities.ParseError{Err: errors.New("empty output")}
	}
	if trimmed[0] != '[' {
		return nil, &entities.ParseError{Err: errors.New("expected a JSON array")}
	}

	var entries []jsonEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &entities.ParseError{Err: err}
	}

	records := make([]entities.PackageRecord, 0, len(entries))
	for i, entry := range entries {
		if entry.Name == nil || *entry.Name == "" {
			return nil, &entities.ParseError{Err: fmt.Errorf("entry %d has no name", i)}
		}
		if entry.Version == nil {
			return nil, &entities.ParseError{Err: fmt.Errorf("entry %d (%s) has no version", i, *entry.Name)}
		}
		records = append(records, entities.PackageRecord{Name: *entry.Name, Version: *entry.Version})
	}

	return records, nil
}
