package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzahome/internal/adapters/out/postgres/orderrepo"
	"pizzahome/internal/core/application/usecases/queries"
	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// noopTracker satisfies the repository's aggregate tracking without recording
// anything. Query tests only need the repository to seed rows.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.OrderID, any) {}

func setupQueryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&orderrepo.OrderDTO{}))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, method order.PaymentMethod, createdAt time.Time) *order.Order {
	t.Helper()

	line, err := order.NewLine("Pepperoni", menu.SizeLarge, 1000, 1)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(kernel.NewOrderID(), "+923451234567", "Bilal",
		[]order.Line{line}, 120, "Near DHQ hospital", nil, "Near DHQ",
		method, createdAt)
	require.NoError(t, err)

	repository := orderrepo.NewGormOrderRepository(db, noopTracker{})
	require.NoError(t, repository.Add(context.Background(), aggregate))
	return aggregate
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	db := setupQueryTestDB(t)
	createdAt := time.Date(2026, 8, 29, 9, 15, 0, 0, time.UTC)
	seeded := seedOrder(t, db, order.PaymentOnlineManual, createdAt)

	handler := queries.NewGetOrderQueryHandler(db)
	query, err := queries.NewGetOrderQuery(seeded.ID())
	require.NoError(t, err)

	response, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	assert.True(t, response.OrderID.IsEqual(seeded.ID()))
	assert.Equal(t, "+923451234567", response.CustomerPhone)
	assert.Equal(t, order.StatusAwaitingPayment, response.Status)
	assert.Equal(t, order.PaymentPending, response.PaymentStatus)
	assert.Equal(t, 1120, response.Total)
	assert.True(t, response.CreatedAt.Equal(createdAt))
}

func TestGetOrderQueryHandler_Handle_UnknownOrder(t *testing.T) {
	db := setupQueryTestDB(t)

	handler := queries.NewGetOrderQueryHandler(db)
	query, err := queries.NewGetOrderQuery(kernel.NewOrderID())
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_RejectsUnconstructedQuery(t *testing.T) {
	db := setupQueryTestDB(t)
	handler := queries.NewGetOrderQueryHandler(db)

	_, err := handler.Handle(context.Background(), queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
