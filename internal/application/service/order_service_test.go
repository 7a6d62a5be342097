package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/config"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	orders   *OrderService
	carts    *CartService
	cartRepo *fakeCartRepo
	products *fakeProductRepo
	kitchen  *fakePrinter
	counter  *fakePrinter
}

func newOrderServiceForTest() *orderServiceFixture {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	orderRepo := newFakeOrderRepo(cartRepo)
	locks := NewCartLocks()

	kitchen := &fakePrinter{}
	counter := &fakePrinter{}
	receipts := NewReceiptService(kitchen, counter, 32,
		config.RestaurantConfig{Name: "PRINCE BAKERY"},
		config.UPIConfig{},
	)

	return &orderServiceFixture{
		orders:   NewOrderService(orderRepo, cartRepo, locks, receipts),
		carts:    NewCartService(cartRepo, productRepo, locks),
		cartRepo: cartRepo,
		products: productRepo,
		kitchen:  kitchen,
		counter:  counter,
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderServiceForTest()

	_, err := f.orders.PlaceOrder(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, f.kitchen.jobCount())
	assert.Equal(t, 0, f.counter.jobCount())
}

func TestPlaceOrderSnapshotsCart(t *testing.T) {
	f := newOrderServiceForTest()
	puff := f.products.add("Veg Puff", "15.00")
	cheese := f.products.addExtra(puff, "Cheese", "5.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{
		ProductID: puff.ID,
		Quantity:  2,
		Note:      "extra crispy",
		Extras:    []ExtraSelection{{ExtraID: cheese.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
	require.NoError(t, err)

	order := output.Order
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Positive(t, order.TokenNo)
	assert.Equal(t, enum.OrderTypeDelivery, order.OrderType)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.False(t, order.OrderedAt.IsZero())

	// 2 x 15.00 + 1 x 5.00
	assert.Equal(t, "35.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, order.TotalAmount.StringFixed(2), order.SumLines().StringFixed(2))

	require.Len(t, order.Items, 1)
	line := order.Items[0]
	assert.Equal(t, "Veg Puff", line.ItemName)
	assert.Equal(t, "15.00", line.UnitPrice.StringFixed(2))
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "extra crispy", line.Note)
	require.Len(t, line.Extras, 1)
	assert.Equal(t, "Cheese", line.Extras[0].ExtraName)
	assert.Equal(t, "5.00", line.Extras[0].TotalAmount.StringFixed(2))

	// Both receipts went out
	assert.True(t, output.KitchenPrinted)
	assert.True(t, output.CounterPrinted)
	assert.Equal(t, 1, f.kitchen.jobCount())
	assert.Equal(t, 1, f.counter.jobCount())

	// Cart is empty afterwards
	cart, err := f.carts.GetCart(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.TotalAmount.IsZero())
}

func TestPlaceOrderImmuneToLaterCatalogEdits(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 2})
	require.NoError(t, err)

	output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
	require.NoError(t, err)

	bun.Name = "Premium Bun"
	bun.Price = bun.Price.Add(bun.Price)

	stored, err := f.orders.GetOrder(context.Background(), userID, output.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bun", stored.Items[0].ItemName)
	assert.Equal(t, "10.00", stored.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "20.00", stored.TotalAmount.StringFixed(2))
}

func TestPlaceOrderPrinterFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderServiceForTest()
	f.kitchen.err = errors.New("dial tcp: connection refused")
	bun := f.products.add("Bun", "10.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 1})
	require.NoError(t, err)

	output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
	require.NoError(t, err)

	assert.False(t, output.KitchenPrinted)
	assert.True(t, output.CounterPrinted)
	assert.Equal(t, 1, f.counter.jobCount())

	// The order exists despite the dead kitchen printer
	stored, err := f.orders.GetOrder(context.Background(), userID, output.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, output.Order.ID, stored.ID)
}

func TestPlaceOrderTableOverrideRequiresTableNumber(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 1})
	require.NoError(t, err)

	table := enum.OrderTypeTable
	_, err = f.orders.PlaceOrder(context.Background(), userID, &PlaceOrderInput{OrderType: &table})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestPlaceOrderUsesCartMode(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = f.carts.SetMode(context.Background(), userID, enum.OrderTypeTable, "12")
	require.NoError(t, err)

	output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderTypeTable, output.Order.OrderType)
	assert.Equal(t, "12", output.Order.TableNumber)
}

func TestPlaceOrderTokensIncrease(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")

	var last int64
	for i := 0; i < 3; i++ {
		userID := uuid.New()
		_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 1})
		require.NoError(t, err)

		output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
		require.NoError(t, err)
		assert.Greater(t, output.Order.TokenNo, last)
		last = output.Order.TokenNo
	}
}

func TestGetOrderOwnership(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")
	owner := uuid.New()

	_, err := f.carts.AddItem(context.Background(), owner, &AddItemInput{ProductID: bun.ID, Quantity: 1})
	require.NoError(t, err)
	output, err := f.orders.PlaceOrder(context.Background(), owner, nil)
	require.NoError(t, err)

	_, err = f.orders.GetOrder(context.Background(), uuid.New(), output.Order.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateStatusTransitions(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 1})
	require.NoError(t, err)
	output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
	require.NoError(t, err)
	orderID := output.Order.ID

	order, err := f.orders.UpdateStatus(context.Background(), orderID, enum.OrderStatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPreparing, order.Status)

	// Skipping backwards is rejected
	_, err = f.orders.UpdateStatus(context.Background(), orderID, enum.OrderStatusPending)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)

	// Cancellation works from any non-terminal state
	order, err = f.orders.UpdateStatus(context.Background(), orderID, enum.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, order.Status)

	// Terminal states are final
	_, err = f.orders.UpdateStatus(context.Background(), orderID, enum.OrderStatusPreparing)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestReprintReceipt(t *testing.T) {
	f := newOrderServiceForTest()
	bun := f.products.add("Bun", "10.00")
	userID := uuid.New()

	_, err := f.carts.AddItem(context.Background(), userID, &AddItemInput{ProductID: bun.ID, Quantity: 1})
	require.NoError(t, err)
	output, err := f.orders.PlaceOrder(context.Background(), userID, nil)
	require.NoError(t, err)

	printed, err := f.orders.ReprintReceipt(context.Background(), userID, output.Order.ID, "counter")
	require.NoError(t, err)
	assert.True(t, printed)
	assert.Equal(t, 2, f.counter.jobCount())
	assert.Equal(t, 1, f.kitchen.jobCount())

	_, err = f.orders.ReprintReceipt(context.Background(), userID, output.Order.ID, "fax")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
