package presets

import "fmt"

// PresetNotFoundError indicates that no preset matched the requested
// name or GUID.
type PresetNotFoundError struct {
	Name string
	GUID string
}

// Error implements the error interface.
func (e *PresetNotFoundError) Error() string {
	if e.GUID != "" {
		return fmt.Sprintf("preset not found: guid=%q", e.GUID)
	}
	return fmt.Sprintf("preset not found: name=%q", e.Name)
}

// DuplicateNameError indicates that a preset with the given name already
// exists.
type DuplicateNameError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("preset already exists: name=%q", e.Name)
}

// InvalidPresetError indicates a preset failed validation before it
// reached the repository.
type InvalidPresetError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("invalid preset: %s", e.Reason)
}
