package interfaces

import (
	"context"

	"github.com/johnper68/twilio-bot-occipedido/internal/domain/entities"
)

// IOrderRepository abstracts order persistence against the external record
// store.
//
// The finalizer inserts the header first and then one line per call, in cart
// order. The repository performs no retry and no batching, so a failed line
// insert can leave a header persisted with zero or partial lines.
type IOrderRepository interface {
	CreateHeader(ctx context.Context, header entities.OrderHeader) error
	CreateLine(ctx context.Context, line entities.OrderLine) error
}
