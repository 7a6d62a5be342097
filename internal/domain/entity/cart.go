package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the one mutable cart a user owns. Its stored total is a cache of
// ComputeTotal over the current items; it is recomputed before every
// persist and never set independently.
type Cart struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	OrderType   enum.OrderType  `gorm:"size:20;not null;default:'delivery'" json:"order_type"`
	TableNumber string          `gorm:"size:10" json:"table_number,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Items []CartItem `gorm:"foreignKey:CartID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new cart
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave clears the table number whenever the cart is not in table
// mode, so a stale table assignment can never leak into a delivery or
// parcel order.
func (c *Cart) BeforeSave(tx *gorm.DB) error {
	if c.OrderType != enum.OrderTypeTable {
		c.TableNumber = ""
	}
	return nil
}

// TableName returns the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// ComputeTotal sums the line totals of the current items. The result is the
// only authoritative cart total; the TotalAmount column merely caches it.
func (c *Cart) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].LineTotal())
	}
	return total
}

// FindItem returns the cart line for the given product, or nil.
// A cart holds at most one line per product.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// CartItem is a line in a cart. It references the product live, so catalog
// price changes are reflected until checkout freezes them.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_product,unique" json:"cart_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_product,unique" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Cart    Cart            `gorm:"foreignKey:CartID" json:"-"`
	Product Product         `gorm:"foreignKey:ProductID" json:"product"`
	Extras  []CartItemExtra `gorm:"foreignKey:CartItemID" json:"extras,omitempty"`
}

// BeforeCreate generates a UUID before creating a new cart item
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal is product price times quantity plus all selected extras.
func (ci *CartItem) LineTotal() decimal.Decimal {
	total := ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
	for i := range ci.Extras {
		total = total.Add(ci.Extras[i].Amount())
	}
	return total
}

// CartItemExtra is an add-on selected on a cart line
type CartItemExtra struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CartItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"cart_item_id"`
	ExtraID    uuid.UUID `gorm:"type:uuid;not null" json:"extra_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Extra Extra `gorm:"foreignKey:ExtraID" json:"extra"`
}

// BeforeCreate generates a UUID before creating a new cart item extra
func (ce *CartItemExtra) BeforeCreate(tx *gorm.DB) error {
	if ce.ID == uuid.Nil {
		ce.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItemExtra model
func (CartItemExtra) TableName() string {
	return "cart_item_extras"
}

// Amount is extra price times quantity.
func (ce *CartItemExtra) Amount() decimal.Decimal {
	return ce.Extra.Price.Mul(decimal.NewFromInt(int64(ce.Quantity)))
}
