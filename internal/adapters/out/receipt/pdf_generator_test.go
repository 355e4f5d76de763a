package receipt_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"checkout/internal/adapters/out/receipt"
	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func completedOrder(t *testing.T) (*order.Order, *buyer.Buyer) {
	t.Helper()
	email, err := identity.ParseEmail("ana@example.com")
	require.NoError(t, err)
	b, err := buyer.NewBuyer(kernel.NewUUID(), email, "Ana", "Pérez", "hash", time.Now())
	require.NoError(t, err)

	item, err := order.NewLineItem(kernel.NewUUID(), 1, "Polera Ñandú", money(t, 9990), 2, nil)
	require.NoError(t, err)
	address, err := order.NewAddress("Av. República 237", "8370146", "Santiago", "Santiago")
	require.NoError(t, err)
	rut, err := identity.ParseNationalID("12.345.678-5")
	require.NoError(t, err)
	phone, err := identity.ParsePhone("987654321")
	require.NoError(t, err)
	snapshot, err := order.NewShippingSnapshot(address, order.NewContact(rut, email, phone), 2,
		"Envío Estándar", "3-5 días hábiles", money(t, 5000), money(t, 19980))
	require.NoError(t, err)

	o, err := order.NewCompletedOrder(kernel.NewUUID(), b.ID(), []order.LineItem{item}, snapshot,
		time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o, b
}

func TestNewPDFGenerator_RequiresRoot(t *testing.T) {
	_, err := receipt.NewPDFGenerator(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPDFGenerator_Generate(t *testing.T) {
	root := t.TempDir()
	g, err := receipt.NewPDFGenerator(root)
	require.NoError(t, err)
	o, b := completedOrder(t)

	path, err := g.Generate(context.Background(), o, b)

	require.NoError(t, err)
	assert.Equal(t, "2024/05/17/"+o.ID().String()+".pdf", path)
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	assert.True(t, len(content) > 4 && string(content[:4]) == "%PDF")
}

func TestPDFGenerator_RegeneratingOverwritesSamePath(t *testing.T) {
	root := t.TempDir()
	g, err := receipt.NewPDFGenerator(root)
	require.NoError(t, err)
	o, b := completedOrder(t)

	first, err := g.Generate(context.Background(), o, b)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), o, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	entries, err := os.ReadDir(filepath.Join(root, "2024", "05", "17"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestPDFGenerator_DraftOrderIsRejected(t *testing.T) {
	g, err := receipt.NewPDFGenerator(t.TempDir())
	require.NoError(t, err)
	_, b := completedOrder(t)
	draft, err := order.NewDraftOrder(kernel.NewUUID(), b.ID(), time.Now())
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), draft, b)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPDFGenerator_CanceledContext(t *testing.T) {
	g, err := receipt.NewPDFGenerator(t.TempDir())
	require.NoError(t, err)
	o, b := completedOrder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Generate(ctx, o, b)

	require.ErrorIs(t, err, context.Canceled)
}

func TestPDFGenerator_UnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o600))
	g, err := receipt.NewPDFGenerator(root)
	require.NoError(t, err)
	o, b := completedOrder(t)

	_, err = g.Generate(context.Background(), o, b)

	require.Error(t, err)
}

func TestFormatCLP(t *testing.T) {
	tests := map[string]string{
		"0":       "$0",
		"990":     "$990",
		"1000":    "$1.000",
		"24980":   "$24.980",
		"1234567": "$1.234.567",
		"4500.5":  "$4.500,50",
	}
	for in, want := range tests {
		m, err := kernel.NewMoney(decimal.RequireFromString(in))
		require.NoError(t, err)
		assert.Equal(t, want, receipt.FormatCLP(m), in)
	}
}
