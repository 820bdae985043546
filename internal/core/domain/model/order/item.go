package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a value object representing a single order line: a product,
// a quantity, and the unit price at the moment the order was placed.
//
// Item is immutable once created. Quantity must be at least 1 and the
// unit price must not be negative.
type Item struct {
	productID string
	quantity  int
	unitPrice decimal.Decimal
}

// NewItem creates a validated order line.
// Returns an error if the product ID is empty, the quantity is below 1,
// or the unit price is negative.
func NewItem(productID string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := errors.Join(
		validateProductID(productID),
		validateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// LineTotal returns quantity × unit price for this line.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if i.productID == "" {
		return errs.NewValueIsRequiredError("item must be created via NewItem")
	}
	return nil
}

func validateProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	return nil
}

func validateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	return nil
}
