package order

import (
	"context"

	"github.com/fekuna/retail-backoffice/internal/order/dto"
)

type UseCase interface {
	// PlaceOrder runs the all-or-nothing order workflow and returns the new
	// order header id.
	PlaceOrder(ctx context.Context, input *dto.PlaceOrderRequest) (string, error)
}

// EventPublisher emits the order-placed event consumed by downstream
// services. Implemented by pkg/broker.
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
