package order_test

import (
	"testing"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletedOrder(t *testing.T) {
	t.Run("total is subtotal plus shipping cost", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, 1, 1000, 2)}

		o, err := order.NewCompletedOrder(kernel.NewUUID(), kernel.NewUUID(), items, snapshot(t, 500, 2000), fixedNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.Total().IsEqual(money(t, 2500)))
		assert.True(t, o.Subtotal().IsEqual(money(t, 2000)))
		assert.True(t, o.ShippingCost().IsEqual(money(t, 500)))
		assert.Len(t, o.LineItems(), 1)
		_, hasReceipt := o.ReceiptPath()
		assert.False(t, hasReceipt)
		assert.Equal(t, fixedNow, o.CreatedAt())
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		_, err := order.NewCompletedOrder(kernel.NewUUID(), kernel.NewUUID(), nil, snapshot(t, 500, 0), fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("rejects a snapshot subtotal that differs from the items", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, 1, 1000, 2)}

		_, err := order.NewCompletedOrder(kernel.NewUUID(), kernel.NewUUID(), items, snapshot(t, 500, 1999), fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, 1, 1000, 1)}

		_, err := order.NewCompletedOrder(kernel.UUID{}, kernel.UUID{}, items, snapshot(t, 0, 1000), fixedNow)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrder_AddLineItem(t *testing.T) {
	t.Run("draft re-sums the total after every append", func(t *testing.T) {
		o, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), fixedNow)
		require.NoError(t, err)
		assert.True(t, o.Total().IsZero())

		require.NoError(t, o.AddLineItem(lineItem(t, 1, 1000, 2), fixedNow.Add(time.Minute)))
		require.NoError(t, o.AddLineItem(lineItem(t, 2, 350, 3), fixedNow.Add(2*time.Minute)))

		assert.True(t, o.Total().IsEqual(money(t, 3050)))
		assert.Len(t, o.LineItems(), 2)
		assert.Equal(t, fixedNow.Add(2*time.Minute), o.UpdatedAt())
	})

	t.Run("completed order rejects appends and keeps its total", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, 1, 1000, 2)}
		o, err := order.NewCompletedOrder(kernel.NewUUID(), kernel.NewUUID(), items, snapshot(t, 500, 2000), fixedNow)
		require.NoError(t, err)

		err = o.AddLineItem(lineItem(t, 2, 10, 1), fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, o.Total().IsEqual(money(t, 2500)))
		assert.Len(t, o.LineItems(), 1)
	})

	t.Run("rejects a duplicate line item id", func(t *testing.T) {
		o, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), fixedNow)
		require.NoError(t, err)
		item := lineItem(t, 1, 100, 1)
		require.NoError(t, o.AddLineItem(item, fixedNow))

		err = o.AddLineItem(item, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsNotUnique)
	})

	t.Run("rejects a zero value item", func(t *testing.T) {
		o, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), fixedNow)
		require.NoError(t, err)

		err = o.AddLineItem(order.LineItem{}, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, o.LineItems())
	})
}

func TestOrder_SetReceiptPath(t *testing.T) {
	newCompleted := func(t *testing.T) *order.Order {
		o, err := order.NewCompletedOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{lineItem(t, 1, 1000, 2)}, snapshot(t, 500, 2000), fixedNow)
		require.NoError(t, err)
		return o
	}

	t.Run("sets the path without touching money", func(t *testing.T) {
		o := newCompleted(t)
		path := order.ReceiptPath(o)

		require.NoError(t, o.SetReceiptPath(path, fixedNow.Add(time.Hour)))

		got, ok := o.ReceiptPath()
		assert.True(t, ok)
		assert.Equal(t, path, got)
		assert.True(t, o.Total().IsEqual(money(t, 2500)))
		assert.Equal(t, fixedNow.Add(time.Hour), o.UpdatedAt())
	})

	t.Run("same path again is a no-op", func(t *testing.T) {
		o := newCompleted(t)
		require.NoError(t, o.SetReceiptPath("2025/03/07/x.pdf", fixedNow))

		require.NoError(t, o.SetReceiptPath("2025/03/07/x.pdf", fixedNow.Add(time.Hour)))
		assert.Equal(t, fixedNow, o.UpdatedAt())
	})

	t.Run("different path fails", func(t *testing.T) {
		o := newCompleted(t)
		require.NoError(t, o.SetReceiptPath("a.pdf", fixedNow))

		err := o.SetReceiptPath("b.pdf", fixedNow)

		require.ErrorIs(t, err, order.ErrReceiptPathAlreadySet)
	})

	t.Run("draft orders carry no receipt", func(t *testing.T) {
		o, err := order.NewDraftOrder(kernel.NewUUID(), kernel.NewUUID(), fixedNow)
		require.NoError(t, err)

		require.ErrorIs(t, o.SetReceiptPath("a.pdf", fixedNow), errs.ErrValueIsInvalid)
	})

	t.Run("blank path is required", func(t *testing.T) {
		require.ErrorIs(t, newCompleted(t).SetReceiptPath("  ", fixedNow), errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	items := []order.LineItem{lineItem(t, 1, 1000, 2)}
	shipping := snapshot(t, 500, 2000)
	base := order.State{
		ID:        kernel.NewUUID(),
		BuyerID:   kernel.NewUUID(),
		Status:    order.Completed,
		Items:     items,
		Shipping:  &shipping,
		Total:     money(t, 2500),
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}

	t.Run("restores a consistent order", func(t *testing.T) {
		state := base
		state.ReceiptPath = "2025/03/07/a.pdf"

		o, err := order.RestoreOrder(state)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		path, ok := o.ReceiptPath()
		assert.True(t, ok)
		assert.Equal(t, "2025/03/07/a.pdf", path)
	})

	t.Run("refuses a total that cannot be re-derived", func(t *testing.T) {
		state := base
		state.Total = money(t, 2400)

		_, err := order.RestoreOrder(state)

		require.ErrorIs(t, err, order.ErrTotalMismatch)
	})

	t.Run("completed order needs a snapshot", func(t *testing.T) {
		state := base
		state.Shipping = nil

		_, err := order.RestoreOrder(state)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		state := base
		state.Status = order.Unknown

		_, err := order.RestoreOrder(state)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestReceiptPath(t *testing.T) {
	id, err := kernel.UUIDFromString("9b2f3c1e-6a7d-4e8f-9a0b-1c2d3e4f5a6b")
	require.NoError(t, err)
	created := time.Date(2024, time.January, 5, 23, 30, 0, 0, time.FixedZone("CLT", -3*60*60))

	o, err := order.NewDraftOrder(id, kernel.NewUUID(), created)
	require.NoError(t, err)

	assert.Equal(t, "2024/01/06/9b2f3c1e-6a7d-4e8f-9a0b-1c2d3e4f5a6b.pdf", order.ReceiptPath(o))
}
