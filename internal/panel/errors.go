package panel

import "fmt"

// DuplicateNameError reports a second registration under an existing panel
// name. Registration is append-only; a collision is a configuration mistake
// by a panel author, not a runtime fault.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("panel: %q is already registered", e.Name)
}

// UnknownPanelError reports a lookup for a name that was never registered.
// Suggestion, when non-empty, is the closest registered name.
type UnknownPanelError struct {
	Name       string
	Suggestion string
}

func (e *UnknownPanelError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("panel: unknown panel %q (closest match %q)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("panel: unknown panel %q", e.Name)
}
