package rabbitmq

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderMessage is the JSON body published to the broker. It carries the
// full order snapshot at the moment of emission, so consumers never have
// to call back into the API to learn what the event was about.
type OrderMessage struct {
	OrderID     string          `json:"orderId"`
	CustomerID  string          `json:"customerId"`
	Items       []ItemMessage   `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// ItemMessage is a single order line inside OrderMessage.
type ItemMessage struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// newOrderMessage builds the wire snapshot from a domain order.
func newOrderMessage(aggregate *order.Order) OrderMessage {
	items := make([]ItemMessage, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemMessage{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderMessage{
		OrderID:     aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID(),
		Items:       items,
		TotalAmount: aggregate.TotalAmount(),
		Status:      aggregate.Status().String(),
		OccurredAt:  aggregate.UpdatedAt(),
	}
}

// orderID parses and validates the message's order identifier.
func (m OrderMessage) orderID() (kernel.UUID, error) {
	return kernel.UUIDFromString(m.OrderID)
}
