package model

import "github.com/shopspring/decimal"

// Item is a catalog entry. It carries no identity of its own.
type Item struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Tax         decimal.NullDecimal
}

// NewItem builds an Item as given. Values are not checked here.
func NewItem(name string, description *string, price decimal.Decimal, tax decimal.NullDecimal) Item {
	return Item{
		Name:        name,
		Description: description,
		Price:       price,
		Tax:         tax,
	}
}

// HasTax reports whether a tax value was supplied, including an explicit zero.
func (i Item) HasTax() bool {
	return i.Tax.Valid
}

// TotalPrice returns price plus tax. A zero tax counts the same as no tax.
func (i Item) TotalPrice() decimal.Decimal {
	if !i.Tax.Valid || i.Tax.Decimal.IsZero() {
		return i.Price
	}
	return i.Price.Add(i.Tax.Decimal)
}
