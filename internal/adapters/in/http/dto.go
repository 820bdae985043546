package http

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single line in a create request.
type OrderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderResponse acknowledges that an order was accepted for
// asynchronous processing.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OrderResponse is the full order representation returned by reads.
type OrderResponse struct {
	OrderID     string              `json:"orderId"`
	CustomerID  string              `json:"customerId"`
	Items       []OrderItemResponse `json:"items"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// OrderItemResponse is a single order line in a read response.
type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toItems converts request lines to domain items, validating each.
func (r CreateOrderRequest) toItems() ([]order.Item, error) {
	items := make([]order.Item, 0, len(r.Items))
	for _, itemReq := range r.Items {
		item, err := order.NewItem(itemReq.ProductID, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// toOrderResponse maps a domain order to its full representation.
func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}

	return OrderResponse{
		OrderID:     aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID(),
		Items:       items,
		TotalAmount: aggregate.TotalAmount(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toOrderResponses maps a list of domain orders.
func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}
