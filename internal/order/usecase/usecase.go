package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/retail-backoffice/internal/apperr"
	"github.com/fekuna/retail-backoffice/internal/model"
	"github.com/fekuna/retail-backoffice/internal/order"
	"github.com/fekuna/retail-backoffice/internal/order/dto"
)

// OrderPlacedEvent is the message published to the orders topic after a
// successful commit. Downstream inventory consumers decode this shape.
type OrderPlacedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	StoreID    string             `json:"store_id"`
	TotalPrice float64            `json:"total_price"`
	Items      []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderUseCase struct {
	repo      order.Repository
	publisher order.EventPublisher
	logger    *zap.Logger
}

func NewOrderUseCase(repo order.Repository, publisher order.EventPublisher, logger *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *orderUseCase) PlaceOrder(ctx context.Context, input *dto.PlaceOrderRequest) (string, error) {
	if input.StoreID == "" {
		return "", apperr.New(apperr.InvalidInput, "storeId is required")
	}
	if input.CustomerEmail == "" {
		return "", apperr.New(apperr.InvalidInput, "customerEmail is required")
	}
	if len(input.PurchaseProduct) == 0 {
		return "", apperr.New(apperr.InvalidInput, "order must contain at least one product")
	}
	for _, line := range input.PurchaseProduct {
		if line.ID == "" || line.Quantity <= 0 {
			return "", apperr.New(apperr.InvalidInput, "each line needs a product id and a positive quantity")
		}
	}

	now := time.Now()

	// Candidate only: inside the transaction an existing customer with this
	// email wins and the candidate is discarded.
	candidate := &model.Customer{
		ID:        uuid.New().String(),
		Name:      input.CustomerName,
		Email:     input.CustomerEmail,
		Phone:     input.CustomerPhone,
		CreatedAt: now,
	}

	ord := &model.Order{
		ID:         uuid.New().String(),
		StoreID:    input.StoreID,
		TotalPrice: input.TotalPrice,
		Date:       now,
	}

	items := make([]model.OrderItem, 0, len(input.PurchaseProduct))
	for _, line := range input.PurchaseProduct {
		items = append(items, model.OrderItem{
			ID:        uuid.New().String(),
			ProductID: line.ID,
			Quantity:  line.Quantity,
			// Line total is snapshotted here; later price changes never
			// touch it.
			Price: line.Price * float64(line.Quantity),
		})
	}

	if err := uc.repo.PlaceOrder(ctx, candidate, ord, items); err != nil {
		return "", err
	}

	go uc.publishOrderPlaced(context.Background(), ord, items)

	return ord.ID, nil
}

func (uc *orderUseCase) publishOrderPlaced(ctx context.Context, ord *model.Order, items []model.OrderItem) {
	if uc.publisher == nil {
		return
	}

	event := OrderPlacedEvent{
		EventID:   uuid.New().String(),
		EventType: "order.placed",
		Payload: OrderPayload{
			ID:         ord.ID,
			CustomerID: ord.CustomerID,
			StoreID:    ord.StoreID,
			TotalPrice: ord.TotalPrice,
		},
		Timestamp: time.Now(),
	}
	for _, it := range items {
		event.Payload.Items = append(event.Payload.Items, OrderItemPayload{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, []byte(ord.ID), value); err != nil {
		uc.logger.Error("failed to publish order event",
			zap.String("order_id", ord.ID), zap.Error(err))
	}
}
