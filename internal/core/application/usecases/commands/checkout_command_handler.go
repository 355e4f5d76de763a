package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/domain/services"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
)

// Field keys used in checkout validation errors.
const (
	NationalIDField = "rut"
	EmailField      = "email"
	PhoneField      = "telefono"
	AddressField    = "direccion"
)

// CheckoutState is the stage a checkout reached.
//
//	Validating ──> Priced ──> Committed
//	     │           │
//	     └───────────┴──────> Rejected
type CheckoutState int

const (
	CheckoutValidating CheckoutState = iota
	CheckoutPriced
	CheckoutCommitted
	CheckoutRejected
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutValidating:
		return "validating"
	case CheckoutPriced:
		return "priced"
	case CheckoutCommitted:
		return "committed"
	case CheckoutRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// CheckoutResult describes a finished checkout. Order is nil unless State is
// CheckoutCommitted. ReceiptPath is empty when the receipt could not be produced;
// the order stays committed and GenerateReceiptCommand can fill it later.
type CheckoutResult struct {
	State       CheckoutState
	Order       *order.Order
	Buyer       *buyer.Buyer
	ReceiptPath string
}

// CheckoutCommandHandler turns a cart into a completed order in one transaction
// and then issues the receipt on a best-effort basis.
//
// Error policy:
//   - identity, address and pricing problems are all collected into one
//     *errs.FieldErrors and returned with State CheckoutRejected
//   - a missing catalog snapshot is returned as is (wraps ports.ErrSnapshotUnavailable)
//   - persistence failures roll back everything; nothing is written
//   - receipt failures are logged and counted, never returned
//
// Example:
//
//	handler, _ := NewCheckoutCommandHandler(uowFactory, orderUoWFactory, engine, generator, metrics, logger)
//	result, err := handler.Handle(ctx, cmd)
//	var fieldErrs *errs.FieldErrors
//	if errors.As(err, &fieldErrs) {
//	    // report fieldErrs.Messages()
//	}
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingEngine
	receipts   receiptIssuer
	metrics    Metrics
	logger     *slog.Logger
}

func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	orderUoWFactory OrderUoWFactory,
	pricing services.PricingEngine,
	generator ports.ReceiptGenerator,
	metrics Metrics,
	logger *slog.Logger,
) (CheckoutCommandHandler, error) {
	if uowFactory == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("unit of work factory")
	}
	if logger == nil {
		return CheckoutCommandHandler{}, errs.NewValueIsRequiredError("logger")
	}
	logger = logger.With("component", "checkout")
	receipts, err := newReceiptIssuer(orderUoWFactory, generator, metrics, logger)
	if err != nil {
		return CheckoutCommandHandler{}, err
	}

	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		receipts:   receipts,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Handle runs Validating, Priced and Committed in that order. Pricing runs even
// when identity validation failed so that the caller sees every problem at once.
// A non-positive submitted price replaces any pricing error of the same line.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	var fieldErrs errs.FieldErrors
	contact, address := h.validate(cmd, &fieldErrs)

	priced, err := h.pricing.Price(ctx, cmd.Lines(), cmd.ShippingMethodID())
	var pricingErrs *errs.FieldErrors
	switch {
	case errors.As(err, &pricingErrs):
		fieldErrs.Merge(pricingErrs)
	case err != nil:
		h.metrics.ObserveCheckout(OutcomeFailed)
		h.logger.ErrorContext(ctx, "Checkout pricing unavailable", "error", err)
		return CheckoutResult{State: CheckoutValidating}, err
	}
	for _, p := range cmd.SubmittedPrices() {
		if !p.Price.IsPositive() {
			fieldErrs.Add(services.ProductField(p.ProductID),
				errs.NewValueIsInvalidErrorWithCause("precio", fmt.Errorf("%s is not greater than 0", p.Price)))
		}
	}

	if fieldErrs.Len() > 0 {
		h.metrics.ObserveCheckout(OutcomeRejected)
		return CheckoutResult{State: CheckoutRejected}, fieldErrs.ErrOrNil()
	}

	o, err := buildCompletedOrder(cmd.BuyerID(), priced, contact, address, time.Now())
	if err != nil {
		h.metrics.ObserveCheckout(OutcomeFailed)
		return CheckoutResult{State: CheckoutPriced}, err
	}

	b, err := h.commit(ctx, cmd.BuyerID(), o)
	if err != nil {
		h.metrics.ObserveCheckout(OutcomeFailed)
		return CheckoutResult{State: CheckoutPriced}, err
	}
	h.metrics.ObserveCheckout(OutcomeCommitted)

	result := CheckoutResult{State: CheckoutCommitted, Order: o, Buyer: b}
	path, err := h.receipts.issue(ctx, o, b)
	if err != nil {
		h.logger.ErrorContext(ctx, "Receipt generation failed", "order_id", o.ID().String(), "error", err)
		return result, nil
	}
	result.ReceiptPath = path
	return result, nil
}

func (h CheckoutCommandHandler) validate(cmd CheckoutCommand, fieldErrs *errs.FieldErrors) (order.Contact, order.Address) {
	nationalID, err := identity.ParseNationalID(cmd.NationalID())
	fieldErrs.Add(NationalIDField, err)

	email, err := identity.ParseEmail(cmd.Email())
	fieldErrs.Add(EmailField, err)

	phone, err := identity.ParsePhone(cmd.Phone())
	fieldErrs.Add(PhoneField, err)

	raw := cmd.Address()
	address, err := order.NewAddress(raw.Street, raw.PostalCode, raw.Commune, raw.City)
	fieldErrs.Add(AddressField, err)

	return order.NewContact(nationalID, email, phone), address
}

// commit loads the buyer and writes the order with its line items in one transaction.
func (h CheckoutCommandHandler) commit(ctx context.Context, buyerID kernel.UUID, o *order.Order) (*buyer.Buyer, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BuyerRepository().Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order %s: %w", o.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order %s: %w", o.ID(), err)
	}

	return b, nil
}

func buildCompletedOrder(
	buyerID kernel.UUID,
	priced services.PricedOrder,
	contact order.Contact,
	address order.Address,
	now time.Time,
) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(priced.Lines))
	for _, line := range priced.Lines {
		item, err := newLineItem(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	method := priced.ShippingMethod
	snapshot, err := order.NewShippingSnapshot(address, contact, method.ID(), method.Name(),
		method.EstimatedTime(), priced.ShippingCost, priced.Subtotal)
	if err != nil {
		return nil, err
	}

	return order.NewCompletedOrder(kernel.NewUUID(), buyerID, items, snapshot, now)
}

func newLineItem(line services.PricedLine) (order.LineItem, error) {
	p := line.Product
	return order.NewLineItem(kernel.NewUUID(), p.ID(), p.Name(), p.Price(), line.Quantity, p.Attributes())
}
