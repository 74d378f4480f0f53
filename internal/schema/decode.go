package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads one JSON object and validates it into an ItemSchema.
// Numbers sent as strings are rejected. Unknown fields are ignored.
// Every rejected field is reported, not just the first.
func Decode(r io.Reader) (ItemSchema, error) {
	dec := json.NewDecoder(r)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return ItemSchema{}, decodeError(err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ItemSchema{}, &ValidationError{Detail: []FieldError{jsonDecode("unexpected data after JSON object")}}
	}

	verr := &ValidationError{}
	in := itemInput{
		ID:          bindField[int](fields, "id", verr),
		Name:        bindField[string](fields, "name", verr),
		Description: bindField[string](fields, "description", verr),
		Price:       bindField[float64](fields, "price", verr),
		Tax:         bindField[float64](fields, "tax", verr),
	}

	if err := check(in, verr); err != nil {
		return ItemSchema{}, err
	}
	return in.schema(), nil
}

// bindField decodes one field into T. Absent and null fields yield nil;
// a value of the wrong type is recorded in verr and also yields nil.
func bindField[T any](fields map[string]json.RawMessage, name string, verr *ValidationError) *T {
	raw, ok := fields[name]
	if !ok || string(raw) == "null" {
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		verr.add(typeError(reflect.TypeOf(v).String(), "body", name))
		return nil
	}
	return &v
}

// check runs presence validation and merges it into verr. Fields already
// rejected for their type are not reported again as missing.
func check(in itemInput, verr *ValidationError) error {
	err := validate.Struct(in)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate item: %w", err)
		}

		for _, fe := range fieldErrs {
			loc := []string{"body", fe.Field()}
			if verr.has(loc) {
				continue
			}
			if fe.Tag() == "required" {
				verr.add(missing(loc...))
				continue
			}
			verr.add(FieldError{Loc: loc, Msg: fe.Error(), Type: "value_error." + fe.Tag()})
		}
	}
	return verr.orNil()
}

func (e *ValidationError) has(loc []string) bool {
	for _, d := range e.Detail {
		if slices.Equal(d.Loc, loc) {
			return true
		}
	}
	return false
}

func jsonDecode(msg string) FieldError {
	return FieldError{Loc: []string{"body"}, Msg: msg, Type: "value_error.jsondecode"}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{Detail: []FieldError{typeError("object", "body")}}
	}

	if errors.Is(err, io.EOF) {
		return &ValidationError{Detail: []FieldError{missing("body")}}
	}

	return &ValidationError{Detail: []FieldError{jsonDecode(err.Error())}}
}
