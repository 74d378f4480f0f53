package schema

import (
	"fmt"
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

// FromAttributes builds an ItemSchema from any struct exposing fields named
// ID, Name, Description, Price and Tax. Named types, pointers and decimals are accepted.
// Errors are located by the JSON field name, as Decode reports them.
func FromAttributes(src any) (ItemSchema, error) {
	v := reflect.ValueOf(src)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ItemSchema{}, fmt.Errorf("cannot read attributes from nil %T", src)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ItemSchema{}, fmt.Errorf("cannot read attributes from %T", src)
	}

	verr := &ValidationError{}
	in := itemInput{
		ID:          readAttr(v, "ID", "id", "int", toInt, verr),
		Name:        readAttr(v, "Name", "name", "string", toString, verr),
		Description: readAttr(v, "Description", "description", "string", toString, verr),
		Price:       readAttr(v, "Price", "price", "float64", toFloat, verr),
		Tax:         readAttr(v, "Tax", "tax", "float64", toFloat, verr),
	}

	if err := check(in, verr); err != nil {
		return ItemSchema{}, err
	}
	return in.schema(), nil
}

func readAttr[T any](v reflect.Value, field, name, goType string, conv func(reflect.Value) (T, bool), verr *ValidationError) *T {
	f, ok := attr(v, field)
	if !ok {
		return nil
	}
	out, ok := conv(f)
	if !ok {
		verr.add(typeError(goType, "body", name))
		return nil
	}
	return &out
}

// attr returns the named field with pointers followed. Absent fields, nil
// pointers and invalid NullDecimals are reported as not set.
func attr(v reflect.Value, name string) (reflect.Value, bool) {
	f := v.FieldByName(name)
	if !f.IsValid() || !f.CanInterface() {
		return reflect.Value{}, false
	}
	for f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return reflect.Value{}, false
		}
		f = f.Elem()
	}
	if nd, ok := f.Interface().(decimal.NullDecimal); ok && !nd.Valid {
		return reflect.Value{}, false
	}
	return f, true
}

func toString(f reflect.Value) (string, bool) {
	if f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

func toInt(f reflect.Value) (int, bool) {
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := f.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := f.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	}
	return 0, false
}

func toFloat(f reflect.Value) (float64, bool) {
	switch x := f.Interface().(type) {
	case decimal.Decimal:
		return x.InexactFloat64(), true
	case decimal.NullDecimal:
		return x.Decimal.InexactFloat64(), true
	}
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		return f.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(f.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(f.Uint()), true
	}
	return 0, false
}
