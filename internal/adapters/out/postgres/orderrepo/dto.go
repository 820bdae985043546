// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are stored as a JSONB document on the order row since they are only
// ever read and written together with their aggregate.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  string          `gorm:"index"`
	Items       []ItemDTO       `gorm:"serializer:json;type:jsonb"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(19,4)"`
	Status      int             `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line inside the JSONB items document.
type ItemDTO struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		CustomerID:  aggregate.CustomerID(),
		Items:       items,
		TotalAmount: aggregate.TotalAmount(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		items,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
