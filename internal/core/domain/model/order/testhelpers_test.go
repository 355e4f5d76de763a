package order_test

import (
	"testing"
	"time"

	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, productID int64, price int64, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), productID, "Producto", money(t, price), qty, map[string]any{"color": "rojo"})
	require.NoError(t, err)
	return item
}

func snapshot(t *testing.T, cost, subtotal int64) order.ShippingSnapshot {
	t.Helper()
	address, err := order.NewAddress("Av. Siempre Viva 742", "", "Providencia", "Santiago")
	require.NoError(t, err)
	rut, err := identity.ParseNationalID("12.345.678-5")
	require.NoError(t, err)
	email, err := identity.ParseEmail("ana@example.com")
	require.NoError(t, err)
	phone, err := identity.ParsePhone("987654321")
	require.NoError(t, err)

	s, err := order.NewShippingSnapshot(address, order.NewContact(rut, email, phone), 2, "Envío Estándar",
		"3-5 días hábiles", money(t, cost), money(t, subtotal))
	require.NoError(t, err)
	return s
}
