package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/entity"
	domainRepo "github.com/princebakery/pos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

// preloadItems loads cart lines in insertion order with their live product
// and extra references, which line totals are derived from.
func preloadItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Extras", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_item_extras.created_at ASC")
		}).
		Preload("Items.Extras.Extra")
}

func (r *cartRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := preloadItems(r.db.WithContext(ctx)).First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = entity.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	cart.Items = []entity.CartItem{}
	return &cart, nil
}

func (r *cartRepository) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		Preload("Product").
		Preload("Extras.Extra").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// CreateItem inserts only the line's own columns; the product and extras
// references are managed separately.
func (r *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *cartRepository) UpdateItem(ctx context.Context, item *entity.CartItem) error {
	return r.db.WithContext(ctx).
		Model(&entity.CartItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"quantity": item.Quantity,
			"note":     item.Note,
		}).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&entity.CartItemExtra{}, "cart_item_id = ?", itemID).Error; err != nil {
				return err
			}
			return tx.Delete(&entity.CartItem{}, "id = ?", itemID).Error
		})
}

func (r *cartRepository) ReplaceItemExtras(ctx context.Context, itemID uuid.UUID, extras []entity.CartItemExtra) error {
	return r.db.WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&entity.CartItemExtra{}, "cart_item_id = ?", itemID).Error; err != nil {
				return err
			}
			for i := range extras {
				extras[i].CartItemID = itemID
				if err := tx.Omit(clause.Associations).Create(&extras[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	return r.db.WithContext(ctx).
		Model(&entity.Cart{}).
		Where("id = ?", cart.ID).
		Updates(map[string]interface{}{
			"order_type":   cart.OrderType,
			"table_number": cart.TableNumber,
			"total_amount": cart.TotalAmount,
		}).Error
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			if err := tx.
				Where("cart_item_id IN (?)",
					tx.Model(&entity.CartItem{}).Select("id").Where("cart_id = ?", cartID)).
				Delete(&entity.CartItemExtra{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&entity.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
				return err
			}
			return tx.Model(&entity.Cart{}).
				Where("id = ?", cartID).
				Update("total_amount", 0).Error
		})
}
