package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/princebakery/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart taken at checkout. Item names
// and prices are copied as plain values, so later catalog edits never
// change a placed order. Only Status may change afterwards.
type Order struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TokenNo     int64            `gorm:"autoIncrement;uniqueIndex" json:"token_no"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderType   enum.OrderType   `gorm:"size:20;not null" json:"order_type"`
	TableNumber string           `gorm:"size:10" json:"table_number,omitempty"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      enum.OrderStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	OrderedAt   time.Time        `gorm:"not null" json:"ordered_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Relationships
	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// SumLines recomputes the total from the snapshotted lines. Used as a
// fallback on receipts when the frozen total is missing or zero.
func (o *Order) SumLines() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].TotalAmount)
	}
	return total
}

// OrderItem mirrors a cart line with name and price captured as values
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemName    string          `gorm:"size:200;not null" json:"item_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Note        string          `gorm:"type:text" json:"note,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`

	// Relationships
	Order  Order            `gorm:"foreignKey:OrderID" json:"-"`
	Extras []OrderItemExtra `gorm:"foreignKey:OrderItemID" json:"extras,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderItemExtra mirrors a cart line extra with name and price captured
type OrderItemExtra struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderItemID uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_item_id"`
	ExtraName   string          `gorm:"size:100;not null" json:"extra_name"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new order item extra
func (oe *OrderItemExtra) BeforeCreate(tx *gorm.DB) error {
	if oe.ID == uuid.Nil {
		oe.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItemExtra model
func (OrderItemExtra) TableName() string {
	return "order_item_extras"
}
