package interfaces

import (
	"context"
	"encoding/json"
)

// IOrderCreator creates the commerce order from the payload stored at intent creation.
type IOrderCreator interface {
	CreateOrder(ctx context.Context, payload json.RawMessage) (orderID string, err error)
}
