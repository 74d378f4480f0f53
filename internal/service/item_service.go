package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fsanano/item-catalog/internal/model"
	"fsanano/item-catalog/internal/schema"
)

// Placeholder values returned by Get until items are stored somewhere.
const (
	PlaceholderName        = "Sample Item"
	PlaceholderDescription = "This is a sample item."
)

type ItemService struct {
	log *zap.Logger
}

func NewItemService(log *zap.Logger) *ItemService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ItemService{log: log}
}

// Create accepts a validated item and hands it back unchanged. Nothing is stored.
func (s *ItemService) Create(ctx context.Context, in schema.ItemSchema) (schema.ItemSchema, error) {
	if err := ctx.Err(); err != nil {
		return schema.ItemSchema{}, err
	}

	item := in.ToItem()
	s.log.Debug("item created",
		zap.Int("id", in.ID),
		zap.String("name", item.Name),
		zap.Stringer("total_price", item.TotalPrice()),
	)

	return in, nil
}

// Get returns the same placeholder item for every id. Only the id is echoed.
func (s *ItemService) Get(ctx context.Context, id int) (schema.ItemSchema, error) {
	if err := ctx.Err(); err != nil {
		return schema.ItemSchema{}, err
	}

	item := placeholder()
	s.log.Debug("item read", zap.Int("id", id))

	return schema.FromItem(id, item), nil
}

func placeholder() model.Item {
	description := PlaceholderDescription
	return model.NewItem(PlaceholderName, &description, decimal.Zero, decimal.NullDecimal{})
}
