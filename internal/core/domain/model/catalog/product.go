// Package catalog models the read-only catalog snapshot used for pricing:
// products with their authoritative price and stock, and flat-rate shipping
// methods. Values are immutable once built.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

// Product is one catalog entry. Attributes keeps the free-form fields of the
// snapshot record (brand, category, image…) so they can be frozen into line items.
type Product struct {
	id         int64
	name       string
	price      kernel.Money
	stock      int
	attributes map[string]any
}

// NewProduct validates a snapshot record. A blank name falls back to "Producto <id>".
func NewProduct(id int64, name string, price kernel.Money, stock int, attributes map[string]any) (Product, error) {
	var errList []error
	if id <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id)))
	}
	if err := price.Validate(); err != nil {
		errList = append(errList, err)
	}
	if stock < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock)))
	}
	if err := errors.Join(errList...); err != nil {
		return Product{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Producto %d", id)
	}

	return Product{
		id:         id,
		name:       name,
		price:      price,
		stock:      stock,
		attributes: maps.Clone(attributes),
	}, nil
}

func (p Product) ID() int64 {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

// Price is the authoritative unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

// Stock is the available quantity.
func (p Product) Stock() int {
	return p.stock
}

// Attributes returns a copy of the free-form snapshot fields.
func (p Product) Attributes() map[string]any {
	return maps.Clone(p.attributes)
}

// HasStockFor reports whether quantity can be sold; quantity equal to stock is allowed.
func (p Product) HasStockFor(quantity int) bool {
	return quantity <= p.stock
}
