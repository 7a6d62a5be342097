package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/pkg/apperror"
)

// CartService maintains the one active cart per user and keeps its cached
// total consistent with its lines. The total is always recomputed from the
// current lines before being persisted or returned, never adjusted
// incrementally.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	locks       *CartLocks
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	locks *CartLocks,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		locks:       locks,
	}
}

// ExtraSelection selects an extra on a cart line
type ExtraSelection struct {
	ExtraID  uuid.UUID
	Quantity int
}

// AddItemInput represents the add-to-cart input
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Note      string
	Extras    []ExtraSelection
}

// AddItem adds a product to the user's cart. Re-adding a product that is
// already in the cart increases its quantity and replaces the note and
// extras with the new submission rather than merging them.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, input *AddItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewInvalidArgumentError("Quantity must be greater than 0")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	extras, err := s.resolveExtras(ctx, product.ID, input.Extras)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if line := cart.FindItem(product.ID); line != nil {
		line.Quantity += input.Quantity
		line.Note = input.Note
		if err := s.cartRepo.UpdateItem(ctx, line); err != nil {
			return nil, err
		}
		if err := s.cartRepo.ReplaceItemExtras(ctx, line.ID, extras); err != nil {
			return nil, err
		}
	} else {
		item := &entity.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
			Note:      input.Note,
			Product:   *product,
		}
		if err := s.cartRepo.CreateItem(ctx, item); err != nil {
			return nil, err
		}
		if len(extras) > 0 {
			if err := s.cartRepo.ReplaceItemExtras(ctx, item.ID, extras); err != nil {
				return nil, err
			}
		}
	}

	return s.refreshTotal(ctx, userID)
}

// UpdateItemInput represents a partial cart line update
type UpdateItemInput struct {
	Quantity *int
	Note     *string
	Extras   *[]ExtraSelection
}

// UpdateItem partially updates a cart line belonging to the user.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input *UpdateItemInput) (*entity.Cart, error) {
	if input.Quantity != nil && *input.Quantity <= 0 {
		return nil, apperror.NewInvalidArgumentError("Quantity must be greater than 0")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	item, err := s.cartRepo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Note != nil {
		item.Note = *input.Note
	}
	if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	if input.Extras != nil {
		extras, err := s.resolveExtras(ctx, item.ProductID, *input.Extras)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.ReplaceItemExtras(ctx, item.ID, extras); err != nil {
			return nil, err
		}
	}

	return s.refreshTotal(ctx, userID)
}

// RemoveItem deletes a cart line belonging to the user.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	item, err := s.cartRepo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}

	return s.refreshTotal(ctx, userID)
}

// GetCart returns the user's cart, creating an empty delivery-mode cart on
// first use. The returned total is recomputed from the current lines.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	return s.refreshTotal(ctx, userID)
}

// SetMode updates the cart's fulfillment mode. Table mode requires a table
// number; in every other mode the table number is discarded.
func (s *CartService) SetMode(ctx context.Context, userID uuid.UUID, mode enum.OrderType, tableNumber string) (*entity.Cart, error) {
	if !mode.Valid() {
		return nil, apperror.NewInvalidArgumentError("Invalid order type")
	}
	if mode == enum.OrderTypeTable && tableNumber == "" {
		return nil, apperror.NewInvalidArgumentError("Table number is required for table orders")
	}
	if mode != enum.OrderTypeTable {
		tableNumber = ""
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.OrderType = mode
	cart.TableNumber = tableNumber
	cart.TotalAmount = cart.ComputeTotal()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear removes every line from the user's cart. The cart row survives so
// the mode and table preference are kept.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return nil, err
	}

	return s.refreshTotal(ctx, userID)
}

// resolveExtras validates the selections against the product's own extras.
// Selecting an extra that belongs to a different product is a NotFound.
func (s *CartService) resolveExtras(ctx context.Context, productID uuid.UUID, selections []ExtraSelection) ([]entity.CartItemExtra, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(selections))
	for i, sel := range selections {
		if sel.Quantity < 0 {
			return nil, apperror.NewInvalidArgumentError("Extra quantity must be greater than 0")
		}
		ids[i] = sel.ExtraID
	}

	found, err := s.productRepo.GetExtras(ctx, productID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Extra, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}

	extras := make([]entity.CartItemExtra, 0, len(selections))
	for _, sel := range selections {
		extra, ok := byID[sel.ExtraID]
		if !ok {
			return nil, apperror.NewNotFoundError("Extra")
		}
		qty := sel.Quantity
		if qty == 0 {
			qty = 1
		}
		extras = append(extras, entity.CartItemExtra{
			ExtraID:  extra.ID,
			Quantity: qty,
			Extra:    extra,
		})
	}
	return extras, nil
}

// refreshTotal reloads the cart, recomputes the derived total and persists
// it when stale.
func (s *CartService) refreshTotal(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := cart.ComputeTotal()
	if !cart.TotalAmount.Equal(total) {
		cart.TotalAmount = total
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, err
		}
	}
	return cart, nil
}
