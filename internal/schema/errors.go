package schema

import (
	"fmt"
	"strings"
)

// FieldError describes one rejected field. Loc is the path to the field, e.g. ["body", "price"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned when input does not fit ItemSchema.
type ValidationError struct {
	Detail []FieldError `json:"detail"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Detail))
	for _, d := range e.Detail {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(d.Loc, "."), d.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(fe FieldError) {
	e.Detail = append(e.Detail, fe)
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Detail) == 0 {
		return nil
	}
	return e
}

func missing(loc ...string) FieldError {
	return FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
}

// typeError maps a Go kind name to the message a client sees.
func typeError(goType string, loc ...string) FieldError {
	switch goType {
	case "int", "int64", "int32":
		return FieldError{Loc: loc, Msg: "value is not a valid integer", Type: "type_error.integer"}
	case "float64", "float32":
		return FieldError{Loc: loc, Msg: "value is not a valid float", Type: "type_error.float"}
	case "string":
		return FieldError{Loc: loc, Msg: "str type expected", Type: "type_error.str"}
	default:
		return FieldError{Loc: loc, Msg: "value is not a valid dict", Type: "type_error.dict"}
	}
}
