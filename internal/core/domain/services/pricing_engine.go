package services

import (
	"context"
	"fmt"

	"checkout/internal/core/domain/model/catalog"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// ShippingMethodField is the field key for shipping method errors.
const ShippingMethodField = "metodo_envio_id"

// CartField is the field key used when the cart itself is unusable.
const CartField = "productos"

// ProductField returns the synthetic field key for errors about a cart line.
func ProductField(productID int64) string {
	return fmt.Sprintf("producto_%d", productID)
}

// CartLine is one requested product. There is deliberately no price: the
// engine only ever prices from the catalog.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// PricedLine is a cart line resolved against the catalog.
type PricedLine struct {
	Product  catalog.Product
	Quantity int
}

// Subtotal is the catalog unit price × quantity.
func (l PricedLine) Subtotal() kernel.Money {
	return l.Product.Price().Times(l.Quantity)
}

// PricedOrder is the outcome of a successful pricing run.
type PricedOrder struct {
	Lines          []PricedLine
	ShippingMethod catalog.ShippingMethod
	Subtotal       kernel.Money
	ShippingCost   kernel.Money
	Total          kernel.Money
}

// PricingEngine prices carts against a CatalogGateway.
//
// Business rules:
//   - unit prices always come from the catalog
//   - every line is checked; errors are collected per product, never short-circuited
//   - the quantity requested for a product across all lines must not exceed its stock
//   - an unknown shipping method is a field error; an unreadable snapshot is not
//   - one call reads one catalog snapshot, even if the catalog reloads meanwhile
//
// Example usage:
//
//	engine, err := services.NewPricingEngine(gateway)
//	priced, err := engine.Price(ctx, []services.CartLine{{ProductID: 1, Quantity: 2}}, 2)
//	var fieldErrs *errs.FieldErrors
//	switch {
//	case errors.As(err, &fieldErrs):
//	    // report fieldErrs.Messages() to the client
//	case err != nil:
//	    // snapshot unavailable
//	}
type PricingEngine struct {
	catalog ports.CatalogGateway
}

func NewPricingEngine(gateway ports.CatalogGateway) (PricingEngine, error) {
	if gateway == nil {
		return PricingEngine{}, errs.NewValueIsRequiredError("catalog gateway")
	}
	return PricingEngine{catalog: gateway}, nil
}

// Price resolves cart against the catalog and the shipping method.
//
// Returns:
//   - PricedOrder when every line and the shipping method are valid
//   - *errs.FieldErrors keyed by "producto_<id>", "metodo_envio_id" or "productos"
//     when any of them is not
//   - an error wrapping ports.ErrSnapshotUnavailable when a snapshot cannot be read
func (e PricingEngine) Price(ctx context.Context, cart []CartLine, shippingMethodID int64) (PricedOrder, error) {
	snapshot, err := e.catalog.Snapshot(ctx)
	if err != nil {
		return PricedOrder{}, fmt.Errorf("read catalog: %w", err)
	}

	var fieldErrs errs.FieldErrors
	method, found := snapshot.ShippingMethod(shippingMethodID)
	if !found {
		fieldErrs.Add(ShippingMethodField, errs.NewObjectNotFoundError(ShippingMethodField, shippingMethodID))
	}

	if len(cart) == 0 {
		fieldErrs.Add(CartField, errs.NewValueIsRequiredError(CartField))
	}

	requested := make(map[int64]int, len(cart))
	lines := make([]PricedLine, 0, len(cart))
	subtotal := kernel.ZeroMoney()
	for _, line := range cart {
		field := ProductField(line.ProductID)
		if line.Quantity < 1 {
			fieldErrs.Add(field, errs.NewValueIsOutOfRangeError("cantidad", line.Quantity, 1, "stock"))
			continue
		}

		product, found := snapshot.Product(line.ProductID)
		if !found {
			fieldErrs.Add(field, errs.NewObjectNotFoundError("producto_id", line.ProductID))
			continue
		}

		requested[line.ProductID] += line.Quantity
		if !product.HasStockFor(requested[line.ProductID]) {
			fieldErrs.Add(field, errs.NewStockConflictError(line.ProductID, product.Stock(), requested[line.ProductID]))
			continue
		}

		priced := PricedLine{Product: product, Quantity: line.Quantity}
		lines = append(lines, priced)
		subtotal = subtotal.Add(priced.Subtotal())
	}

	if err := fieldErrs.ErrOrNil(); err != nil {
		return PricedOrder{}, err
	}

	return PricedOrder{
		Lines:          lines,
		ShippingMethod: method,
		Subtotal:       subtotal,
		ShippingCost:   method.Price(),
		Total:          subtotal.Add(method.Price()),
	}, nil
}

// PriceProduct resolves a single product for the append path. The requested
// quantity is checked against stock in the same way as a one-line cart.
func (e PricingEngine) PriceProduct(ctx context.Context, line CartLine) (PricedLine, error) {
	field := ProductField(line.ProductID)
	if line.Quantity < 1 {
		var fieldErrs errs.FieldErrors
		fieldErrs.Add(field, errs.NewValueIsOutOfRangeError("cantidad", line.Quantity, 1, "stock"))
		return PricedLine{}, fieldErrs.ErrOrNil()
	}

	snapshot, err := e.catalog.Snapshot(ctx)
	if err != nil {
		return PricedLine{}, fmt.Errorf("read catalog: %w", err)
	}
	product, found := snapshot.Product(line.ProductID)

	var fieldErrs errs.FieldErrors
	switch {
	case !found:
		fieldErrs.Add(field, errs.NewObjectNotFoundError("producto_id", line.ProductID))
	case !product.HasStockFor(line.Quantity):
		fieldErrs.Add(field, errs.NewStockConflictError(line.ProductID, product.Stock(), line.Quantity))
	}
	if err := fieldErrs.ErrOrNil(); err != nil {
		return PricedLine{}, err
	}

	return PricedLine{Product: product, Quantity: line.Quantity}, nil
}
