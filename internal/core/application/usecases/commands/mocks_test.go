package commands_test

import (
	"context"
	"testing"
	"time"

	"pizzahome/internal/core/application/usecases/commands"
	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingPaymentBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, recipient, text string) error {
	args := m.Called(ctx, recipient, text)
	return args.Error(0)
}

type MockRiderDispatcher struct{ mock.Mock }

func (m *MockRiderDispatcher) Schedule(orderSummary string) {
	m.Called(orderSummary)
}

func testLines(t *testing.T) []order.Line {
	t.Helper()
	line, err := order.NewLine("Margherita", menu.SizeLarge, 800, 1)
	require.NoError(t, err)
	return []order.Line{line}
}

func awaitingPaymentOrder(t *testing.T, id kernel.OrderID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, "+923001234567", "", testLines(t), 80,
		"Street 5, City Center", nil, "City Center", order.PaymentOnlineManual, time.Now().UTC())
	require.NoError(t, err)
	return o
}
