package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/pkg/apperror"
	"github.com/princebakery/pos-api/pkg/pagination"
)

// OrderService turns a cart into an immutable order snapshot and drives the
// receipt printing that follows. It shares the per-user cart lock with
// CartService so checkout never races a concurrent cart mutation.
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	locks     *CartLocks
	receipts  *ReceiptService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	locks *CartLocks,
	receipts *ReceiptService,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		locks:     locks,
		receipts:  receipts,
	}
}

// PlaceOrderInput optionally overrides the cart's fulfillment mode at
// checkout time.
type PlaceOrderInput struct {
	OrderType   *enum.OrderType
	TableNumber *string
}

// PlaceOrderOutput is the result of a successful checkout. The printer
// booleans are informational: the order exists regardless of them.
type PlaceOrderOutput struct {
	Order          *entity.Order
	KitchenPrinted bool
	CounterPrinted bool
}

// PlaceOrder snapshots the user's cart into an order, clears the cart in
// the same transaction, and then prints both receipt copies. Item names
// and prices are copied by value so later menu edits never rewrite an
// already placed order. Printing happens after the commit and its failures
// are reported, not raised.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*PlaceOrderOutput, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	orderType := cart.OrderType
	tableNumber := cart.TableNumber
	if input != nil && input.OrderType != nil {
		orderType = *input.OrderType
	}
	if input != nil && input.TableNumber != nil {
		tableNumber = *input.TableNumber
	}
	if !orderType.Valid() {
		return nil, apperror.NewInvalidArgumentError("Invalid order type")
	}
	if orderType == enum.OrderTypeTable {
		if tableNumber == "" {
			return nil, apperror.NewInvalidArgumentError("Table number is required for table orders")
		}
	} else {
		tableNumber = ""
	}

	order := &entity.Order{
		UserID:      userID,
		OrderType:   orderType,
		TableNumber: tableNumber,
		TotalAmount: cart.ComputeTotal(),
		Status:      enum.OrderStatusPending,
		OrderedAt:   time.Now(),
		Items:       snapshotItems(cart.Items),
	}

	if err := s.orderRepo.Place(ctx, order, cart); err != nil {
		return nil, err
	}

	printed := s.receipts.PrintOrder(order)
	return &PlaceOrderOutput{
		Order:          order,
		KitchenPrinted: printed.Kitchen,
		CounterPrinted: printed.Counter,
	}, nil
}

// snapshotItems copies cart lines into self-contained order lines. The
// stored line total includes the extras so the rows sum to the order total
// without consulting the catalog.
func snapshotItems(items []entity.CartItem) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for i := range items {
		line := &items[i]
		item := entity.OrderItem{
			ItemName:    line.Product.Name,
			UnitPrice:   line.Product.Price,
			Quantity:    line.Quantity,
			Note:        line.Note,
			TotalAmount: line.LineTotal(),
		}
		for j := range line.Extras {
			extra := &line.Extras[j]
			item.Extras = append(item.Extras, entity.OrderItemExtra{
				ExtraName:   extra.Extra.Name,
				UnitPrice:   extra.Extra.Price,
				Quantity:    extra.Quantity,
				TotalAmount: extra.Amount(),
			})
		}
		out = append(out, item)
	}
	return out
}

// GetOrder returns one of the user's orders with its lines.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateStatus moves an order through the kitchen workflow. Only forward
// transitions are allowed; cancellation is allowed from any non-terminal
// state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewInvalidArgumentError("Invalid order status")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, apperror.NewInvalidStateError("Cannot change status from " + order.Status.String() + " to " + status.String())
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// ReprintReceipt re-renders and reprints one copy of an existing order.
func (s *OrderService) ReprintReceipt(ctx context.Context, userID, orderID uuid.UUID, copyName string) (bool, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return false, err
	}

	printed, err := s.receipts.PrintCopy(order, copyName)
	if err != nil {
		return false, apperror.NewInvalidArgumentError("Copy must be 'kitchen' or 'counter'")
	}
	return printed, nil
}
