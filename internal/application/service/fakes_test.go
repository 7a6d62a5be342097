package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	"github.com/princebakery/pos-api/internal/domain/enum"
	domainRepo "github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes shared by the service tests.

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*entity.Cart // by user ID
	saves int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (r *fakeCartRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		cart = &entity.Cart{
			ID:        uuid.New(),
			UserID:    userID,
			OrderType: enum.OrderTypeDelivery,
		}
		r.carts[userID] = cart
	}
	return cart, nil
}

func (r *fakeCartRepo) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return &cart.Items[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCartRepo) CreateItem(ctx context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	for _, cart := range r.carts {
		if cart.ID == item.CartID {
			cart.Items = append(cart.Items, *item)
			return nil
		}
	}
	return errors.New("cart not found")
}

func (r *fakeCartRepo) UpdateItem(ctx context.Context, item *entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == item.ID {
				extras := cart.Items[i].Extras
				cart.Items[i] = *item
				cart.Items[i].Extras = extras
				return nil
			}
		}
	}
	return errors.New("cart item not found")
}

func (r *fakeCartRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return errors.New("cart item not found")
}

func (r *fakeCartRepo) ReplaceItemExtras(ctx context.Context, itemID uuid.UUID, extras []entity.CartItemExtra) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				for j := range extras {
					if extras[j].ID == uuid.Nil {
						extras[j].ID = uuid.New()
					}
					extras[j].CartItemID = itemID
				}
				cart.Items[i].Extras = extras
				return nil
			}
		}
	}
	return errors.New("cart item not found")
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saves++
	stored, ok := r.carts[cart.UserID]
	if !ok {
		return errors.New("cart not found")
	}
	stored.OrderType = cart.OrderType
	stored.TableNumber = cart.TableNumber
	stored.TotalAmount = cart.TotalAmount
	return nil
}

func (r *fakeCartRepo) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cart := range r.carts {
		if cart.ID == cartID {
			cart.Items = nil
			return nil
		}
	}
	return errors.New("cart not found")
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) add(name string, price string) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &entity.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) addExtra(p *entity.Product, name string, price string) *entity.Extra {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := entity.Extra{
		ID:        uuid.New(),
		ProductID: p.ID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
	}
	p.Extras = append(p.Extras, e)
	return &p.Extras[len(p.Extras)-1]
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id], nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CreateExtra(ctx context.Context, extra *entity.Extra) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if extra.ID == uuid.Nil {
		extra.ID = uuid.New()
	}
	p, ok := r.products[extra.ProductID]
	if !ok {
		return errors.New("product not found")
	}
	p.Extras = append(p.Extras, *extra)
	return nil
}

func (r *fakeProductRepo) GetExtras(ctx context.Context, productID uuid.UUID, ids []uuid.UUID) ([]entity.Extra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, nil
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []entity.Extra
	for _, e := range p.Extras {
		if wanted[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) DeleteExtra(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		for i := range p.Extras {
			if p.Extras[i].ID == id {
				p.Extras = append(p.Extras[:i], p.Extras[i+1:]...)
				return nil
			}
		}
	}
	return errors.New("extra not found")
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[uuid.UUID]*entity.Order
	cartRepo  *fakeCartRepo
	nextToken int64
	placeErr  error
}

func newFakeOrderRepo(cartRepo *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uuid.UUID]*entity.Order),
		cartRepo: cartRepo,
	}
}

func (r *fakeOrderRepo) Place(ctx context.Context, order *entity.Order, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.placeErr != nil {
		return r.placeErr
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.nextToken++
	order.TokenNo = r.nextToken
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	r.orders[order.ID] = &stored

	// Mirror the transactional cart reset
	cart.Items = nil
	cart.TotalAmount = decimal.Zero
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, userID uuid.UUID, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.Order
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		if params.Status != nil && order.Status != *params.Status {
			continue
		}
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.Status = status
	return nil
}

// fakePrinter records every submitted job and can be told to fail.
type fakePrinter struct {
	mu   sync.Mutex
	jobs [][]byte
	err  error
}

func (p *fakePrinter) Print(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	p.jobs = append(p.jobs, copied)
	return nil
}

func (p *fakePrinter) Close() error      { return nil }
func (p *fakePrinter) IsConnected() bool { return true }

func (p *fakePrinter) jobCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}
