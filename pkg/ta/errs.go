package ta

import "fmt"

// MissingColumnError reports that a required input column could not be
// resolved from the frame and no explicit series was supplied.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// UnknownIndicatorError reports a dispatch request for an indicator kind
// that is not registered.
type UnknownIndicatorError struct {
	Kind string
}

func (e *UnknownIndicatorError) Error() string {
	return fmt.Sprintf("unknown indicator %q", e.Kind)
}
