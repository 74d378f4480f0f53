// Package schema converts untrusted request bodies into typed item fields and
// typed fields back into response bodies.
package schema

import (
	"github.com/shopspring/decimal"

	"fsanano/item-catalog/internal/model"
)

// ItemSchema is the item as it crosses the HTTP boundary.
type ItemSchema struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax"`
}

// ItemResponse is what the API writes back: the schema plus the derived total.
type ItemResponse struct {
	ItemSchema
	TotalPrice float64 `json:"total_price"`
}

// itemInput keeps field presence so required fields can be told apart from zero values.
type itemInput struct {
	ID          *int     `json:"id" validate:"required"`
	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax"`
}

func (in itemInput) schema() ItemSchema {
	return ItemSchema{
		ID:          *in.ID,
		Name:        *in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Tax:         in.Tax,
	}
}

// ToItem builds the domain entity from validated fields. The id is dropped.
func (s ItemSchema) ToItem() model.Item {
	var tax decimal.NullDecimal
	if s.Tax != nil {
		tax = decimal.NewNullDecimal(decimal.NewFromFloat(*s.Tax))
	}
	return model.NewItem(s.Name, s.Description, decimal.NewFromFloat(s.Price), tax)
}

// FromItem attaches an id to an entity for serialization.
func FromItem(id int, item model.Item) ItemSchema {
	s := ItemSchema{
		ID:          id,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.InexactFloat64(),
	}
	if item.HasTax() {
		t := item.Tax.Decimal.InexactFloat64()
		s.Tax = &t
	}
	return s
}

// Response pairs the schema with the entity's total price.
func (s ItemSchema) Response() ItemResponse {
	return ItemResponse{
		ItemSchema: s,
		TotalPrice: s.ToItem().TotalPrice().InexactFloat64(),
	}
}
