package ta

import (
	"github.com/raykavin/taframe/pkg/core"
)

// Source identifies the input series of an indicator. It has three states:
// an explicit series supplied by the caller, the name of a frame column, or
// the zero value, which resolves to the indicator's default column.
type Source struct {
	name string
	data core.Series[float64]
}

// Data wraps an ad hoc series not stored in the frame
func Data(s core.Series[float64]) Source {
	return Source{data: s}
}

// Col refers to a named frame column
func Col(name string) Source {
	return Source{name: name}
}

// resolve maps a source to a concrete series. Explicit series pass through
// unchanged after a length check against the frame. A named column falls
// back to the default field when absent, matching the reference behavior.
func (a *Analysis) resolve(src Source, def string) (series, error) {
	if src.data != nil {
		if len(src.data) == 0 {
			return nil, core.ErrNoData
		}
		if a.frame != nil && a.frame.Len() > 0 && len(src.data) != a.frame.Len() {
			return nil, core.ErrLengthMismatch
		}
		return src.data, nil
	}

	if a.frame == nil {
		return nil, &MissingColumnError{Column: def}
	}

	if src.name != "" {
		if col, ok := a.frame.Column(src.name); ok {
			return col, nil
		}
	}

	if col, ok := a.frame.Column(def); ok {
		return col, nil
	}

	return nil, &MissingColumnError{Column: def}
}
