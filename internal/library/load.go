package library

import (
	"fmt"
	"os"
)

// LoadFiles reads the group and interaction tables from disk and returns a
// populated library.
func LoadFiles(groupPath, interactionPath string, opts ...Option) (*ParameterLibrary, error) {
	groupData, err := os.ReadFile(groupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read group data: %w", err)
	}

	interactionData, err := os.ReadFile(interactionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction data: %w", err)
	}

	lib := New(opts...)
	if err := lib.Populate(groupData, interactionData); err != nil {
		return nil, err
	}

	return lib, nil
}
