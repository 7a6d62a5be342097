package enum

// OrderType is the fulfillment mode of a cart or order
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeParcel   OrderType = "parcel"
	OrderTypeTable    OrderType = "table"
)

// Valid reports whether t is one of the three known fulfillment modes.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDelivery, OrderTypeParcel, OrderTypeTable:
		return true
	}
	return false
}

func (t OrderType) String() string {
	return string(t)
}
