package schema

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/item-catalog/internal/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T: %v", err, err)
	return verr
}

func TestDecode_Success(t *testing.T) {
	body := `{"id": 7, "name": "Widget", "description": "A widget", "price": 9.99, "tax": 2.5}`

	s, err := Decode(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, 7, s.ID)
	assert.Equal(t, "Widget", s.Name)
	if assert.NotNil(t, s.Description) {
		assert.Equal(t, "A widget", *s.Description)
	}
	assert.Equal(t, 9.99, s.Price)
	if assert.NotNil(t, s.Tax) {
		assert.Equal(t, 2.5, *s.Tax)
	}
}

func TestDecode_OptionalFieldsAbsent(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"id": 1, "name": "Widget", "price": 0, "description": null}`))
	require.NoError(t, err)

	assert.Nil(t, s.Description)
	assert.Nil(t, s.Tax)
	assert.Equal(t, 0.0, s.Price)
}

func TestDecode_ZeroTaxIsKept(t *testing.T) {
	s, err := Decode(strings.NewReader(`{"id": 1, "name": "Widget", "price": 9.99, "tax": 0}`))
	require.NoError(t, err)

	if assert.NotNil(t, s.Tax) {
		assert.Equal(t, 0.0, *s.Tax)
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id": 1, "name": "Widget", "price": 1, "colour": "red"}`))
	assert.NoError(t, err)
}

func TestDecode_MissingRequired(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"description": "only this"}`))
	verr := requireValidationError(t, err)

	var fields []string
	for _, d := range verr.Detail {
		assert.Equal(t, "value_error.missing", d.Type)
		assert.Equal(t, "body", d.Loc[0])
		fields = append(fields, d.Loc[1])
	}
	assert.ElementsMatch(t, []string{"id", "name", "price"}, fields)
}

func TestDecode_WrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		errType string
	}{
		{"price as string", `{"id": 1, "name": "Widget", "price": "9.99"}`, "price", "type_error.float"},
		{"id as float", `{"id": 1.5, "name": "Widget", "price": 1}`, "id", "type_error.integer"},
		{"name as number", `{"id": 1, "name": 42, "price": 1}`, "name", "type_error.str"},
		{"tax as bool", `{"id": 1, "name": "Widget", "price": 1, "tax": true}`, "tax", "type_error.float"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			verr := requireValidationError(t, err)
			require.Len(t, verr.Detail, 1)
			assert.Equal(t, []string{"body", tt.field}, verr.Detail[0].Loc)
			assert.Equal(t, tt.errType, verr.Detail[0].Type)
		})
	}
}

func TestDecode_MalformedBody(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id": 1,`))
	verr := requireValidationError(t, err)
	assert.Equal(t, "value_error.jsondecode", verr.Detail[0].Type)

	_, err = Decode(strings.NewReader(``))
	verr = requireValidationError(t, err)
	assert.Equal(t, "value_error.missing", verr.Detail[0].Type)

	_, err = Decode(strings.NewReader(`[1, 2]`))
	verr = requireValidationError(t, err)
	assert.Equal(t, []string{"body"}, verr.Detail[0].Loc)
	assert.Equal(t, "type_error.dict", verr.Detail[0].Type)
}

func TestToItem(t *testing.T) {
	s := ItemSchema{ID: 3, Name: "Widget", Description: strPtr("A widget"), Price: 9.99, Tax: floatPtr(2.50)}

	item := s.ToItem()
	assert.Equal(t, "Widget", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, item.HasTax())
	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("12.49")))

	noTax := ItemSchema{ID: 3, Name: "Widget", Price: 9.99}.ToItem()
	assert.False(t, noTax.HasTax())
	assert.Nil(t, noTax.Description)
}

func TestFromItem(t *testing.T) {
	item := model.NewItem("Widget", nil, decimal.RequireFromString("9.99"), decimal.NewNullDecimal(decimal.Zero))

	s := FromItem(12, item)
	assert.Equal(t, 12, s.ID)
	assert.Equal(t, 9.99, s.Price)
	if assert.NotNil(t, s.Tax) {
		assert.Equal(t, 0.0, *s.Tax)
	}
}

func TestResponse_IncludesTotalPrice(t *testing.T) {
	s := ItemSchema{ID: 1, Name: "Widget", Price: 9.99, Tax: floatPtr(2.50)}

	raw, err := json.Marshal(s.Response())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 12.49, got["total_price"])
	assert.Equal(t, float64(1), got["id"])
	assert.Contains(t, got, "description")
	assert.Nil(t, got["description"])
}

func TestFromAttributes(t *testing.T) {
	type row struct {
		ID          int64
		Name        string
		Description *string
		Price       decimal.Decimal
		Tax         decimal.NullDecimal
	}

	s, err := FromAttributes(&row{
		ID:    5,
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
		Tax:   decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, s.ID)
	assert.Equal(t, "Widget", s.Name)
	assert.Nil(t, s.Description)
	assert.Equal(t, 9.99, s.Price)
	if assert.NotNil(t, s.Tax) {
		assert.Equal(t, 2.5, *s.Tax)
	}
}

func TestFromAttributes_PlainStruct(t *testing.T) {
	s, err := FromAttributes(struct {
		ID          int
		Name        string
		Description string
		Price       float64
	}{ID: 1, Name: "Widget", Description: "A widget", Price: 3})
	require.NoError(t, err)

	if assert.NotNil(t, s.Description) {
		assert.Equal(t, "A widget", *s.Description)
	}
	assert.Nil(t, s.Tax)
}

func TestFromAttributes_EntityHasNoID(t *testing.T) {
	item := model.NewItem("Widget", nil, decimal.NewFromInt(1), decimal.NullDecimal{})

	_, err := FromAttributes(item)
	verr := requireValidationError(t, err)
	require.Len(t, verr.Detail, 1)
	assert.Equal(t, []string{"body", "id"}, verr.Detail[0].Loc)
}

func TestFromAttributes_WrongTypes(t *testing.T) {
	_, err := FromAttributes(struct {
		ID    string
		Name  string
		Price float64
	}{ID: "x", Name: "Widget", Price: 1})
	verr := requireValidationError(t, err)
	assert.Equal(t, "type_error.integer", verr.Detail[0].Type)

	_, err = FromAttributes(42)
	assert.Error(t, err)

	var nilRow *struct{ ID int }
	_, err = FromAttributes(nilRow)
	assert.Error(t, err)
}

func TestDecode_TrailingData(t *testing.T) {
	bodies := []string{
		`{"id": 1, "name": "W", "price": 1} trailing garbage`,
		`{"id": 1, "name": "W", "price": 1}{"id": 2}`,
		`{"id": 1, "name": "W", "price": 1} 7`,
	}

	for _, body := range bodies {
		_, err := Decode(strings.NewReader(body))
		verr := requireValidationError(t, err)
		require.Len(t, verr.Detail, 1, body)
		assert.Equal(t, []string{"body"}, verr.Detail[0].Loc)
		assert.Equal(t, "value_error.jsondecode", verr.Detail[0].Type)
	}

	_, err := Decode(strings.NewReader("{\"id\": 1, \"name\": \"W\", \"price\": 1}\n  \n"))
	assert.NoError(t, err)
}

func TestDecode_ReportsEveryError(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id": "x", "price": "y", "tax": []}`))
	verr := requireValidationError(t, err)

	got := map[string]string{}
	for _, d := range verr.Detail {
		got[d.Loc[1]] = d.Type
	}
	assert.Equal(t, map[string]string{
		"id":    "type_error.integer",
		"price": "type_error.float",
		"tax":   "type_error.float",
		"name":  "value_error.missing",
	}, got)
}

func TestDecode_NullRequiredFieldIsMissing(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"id": 1, "name": null, "price": 1}`))
	verr := requireValidationError(t, err)
	require.Len(t, verr.Detail, 1)
	assert.Equal(t, []string{"body", "name"}, verr.Detail[0].Loc)
	assert.Equal(t, "value_error.missing", verr.Detail[0].Type)
}

type itemName string

type unsignedRow struct {
	ID          uint16
	Name        itemName
	Description *itemName
	Price       uint
	Tax         *uint8
}

func TestFromAttributes_NamedAndUnsignedKinds(t *testing.T) {
	desc := itemName("A widget")
	tax := uint8(2)

	s, err := FromAttributes(unsignedRow{ID: 9, Name: "Widget", Description: &desc, Price: 10, Tax: &tax})
	require.NoError(t, err)

	assert.Equal(t, 9, s.ID)
	assert.Equal(t, "Widget", s.Name)
	if assert.NotNil(t, s.Description) {
		assert.Equal(t, "A widget", *s.Description)
	}
	assert.Equal(t, 10.0, s.Price)
	if assert.NotNil(t, s.Tax) {
		assert.Equal(t, 2.0, *s.Tax)
	}
}

func TestFromAttributes_IDOverflow(t *testing.T) {
	_, err := FromAttributes(struct {
		ID    uint64
		Name  string
		Price float64
	}{ID: math.MaxUint64, Name: "Widget", Price: 1})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Detail, 1)
	assert.Equal(t, []string{"body", "id"}, verr.Detail[0].Loc)
	assert.Equal(t, "type_error.integer", verr.Detail[0].Type)
}

func TestFromAttributes_ErrorLocationsUseJSONNames(t *testing.T) {
	_, err := FromAttributes(struct {
		ID   string
		Name []byte
	}{ID: "x"})
	verr := requireValidationError(t, err)

	var locs [][]string
	for _, d := range verr.Detail {
		locs = append(locs, d.Loc)
	}
	assert.ElementsMatch(t, [][]string{
		{"body", "id"},
		{"body", "name"},
		{"body", "price"},
	}, locs)
}
