package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/buyer"
	"checkout/internal/core/domain/model/catalog"
	"checkout/internal/core/domain/model/identity"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) AppendLineItem(ctx context.Context, o *order.Order, item order.LineItem) error {
	return m.Called(ctx, o, item).Error(0)
}

func (m *MockOrderRepository) UpdateReceiptPath(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) MarkReceiptAttempt(ctx context.Context, id kernel.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// orderWithReceipt matches an order carrying the given id and receipt path.
func orderWithReceipt(id kernel.UUID, path string) any {
	return mock.MatchedBy(func(o *order.Order) bool {
		stored, ok := o.ReceiptPath()
		return ok && stored == path && o.ID().IsEqual(id)
	})
}

type MockBuyerRepository struct{ mock.Mock }

func (m *MockBuyerRepository) Add(ctx context.Context, b *buyer.Buyer) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBuyerRepository) Update(ctx context.Context, b *buyer.Buyer) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*buyer.Buyer)
	return b, args.Error(1)
}

func (m *MockBuyerRepository) FindByNationalID(ctx context.Context, id identity.NationalID) (*buyer.Buyer, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*buyer.Buyer)
	return b, args.Error(1)
}

func (m *MockBuyerRepository) FindByEmail(ctx context.Context, email identity.Email) (*buyer.Buyer, error) {
	args := m.Called(ctx, email)
	b, _ := args.Get(0).(*buyer.Buyer)
	return b, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BuyerRepository() ports.BuyerRepository {
	return m.Called().Get(0).(ports.BuyerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockBuyerUoWFactory struct{ mock.Mock }

func (m *MockBuyerUoWFactory) Create() commands.BuyerUoW {
	return m.Called().Get(0).(commands.BuyerUoW)
}

type MockReceiptGenerator struct{ mock.Mock }

func (m *MockReceiptGenerator) Generate(ctx context.Context, o *order.Order, b *buyer.Buyer) (string, error) {
	args := m.Called(ctx, o, b)
	return args.String(0), args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

type recordingMetrics struct {
	mu       sync.Mutex
	checkout []string
	receipt  []string
}

func (m *recordingMetrics) ObserveCheckout(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkout = append(m.checkout, outcome)
}

func (m *recordingMetrics) ObserveReceipt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receipt = append(m.receipt, outcome)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubCatalog struct {
	products map[int64]catalog.Product
	methods  map[int64]catalog.ShippingMethod
	err      error
}

func (s stubCatalog) Snapshot(_ context.Context) (catalog.Snapshot, error) {
	if s.err != nil {
		return catalog.Snapshot{}, s.err
	}
	return s.snapshot(), nil
}

func (s stubCatalog) snapshot() catalog.Snapshot {
	products := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	methods := make([]catalog.ShippingMethod, 0, len(s.methods))
	for _, m := range s.methods {
		methods = append(methods, m)
	}
	return catalog.NewSnapshot(products, methods)
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func testCatalog(t *testing.T, price int64, stock int) stubCatalog {
	t.Helper()
	product, err := catalog.NewProduct(1, "Polera", money(t, price), stock, map[string]any{"talla": "M"})
	require.NoError(t, err)
	method, err := catalog.NewShippingMethod(2, "Envío Estándar", money(t, 500), "3-5 días hábiles")
	require.NoError(t, err)
	return stubCatalog{
		products: map[int64]catalog.Product{1: product},
		methods:  map[int64]catalog.ShippingMethod{2: method},
	}
}

func testBuyer(t *testing.T) *buyer.Buyer {
	t.Helper()
	email, err := identity.ParseEmail("ana@example.com")
	require.NoError(t, err)
	b, err := buyer.NewBuyer(kernel.NewUUID(), email, "Ana", "Pérez", "hash", time.Now())
	require.NoError(t, err)
	return b
}

func completedOrder(t *testing.T, buyerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), 1, "Polera", money(t, 1000), 2, nil)
	require.NoError(t, err)
	address, err := order.NewAddress("Av. Grecia 1", "", "Ñuñoa", "Santiago")
	require.NoError(t, err)
	rut, _ := identity.ParseNationalID("12345678-5")
	email, _ := identity.ParseEmail("ana@example.com")
	phone, _ := identity.ParsePhone("987654321")
	snapshot, err := order.NewShippingSnapshot(address, order.NewContact(rut, email, phone), 2, "Envío Estándar",
		"3-5 días hábiles", money(t, 500), money(t, 2000))
	require.NoError(t, err)
	o, err := order.NewCompletedOrder(kernel.NewUUID(), buyerID, []order.LineItem{item}, snapshot, time.Now())
	require.NoError(t, err)
	return o
}
