package interfaces

import (
	"context"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
)

// IProductRepository abstracts catalog reads against the external record
// store.
//
// SearchByName lists the product table and filters client-side by
// case-insensitive substring match on the product name, capped to the first 5
// matches in store order.
type IProductRepository interface {
	SearchByName(ctx context.Context, term string) ([]entities.Product, error)
}
