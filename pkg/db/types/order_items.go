package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderItem is a single line of an order as submitted at checkout.
type OrderItem struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	PricePerKg float64 `json:"pricePerKg"`
	Subtotal   float64 `json:"subtotal"`
}

// OrderItems is the items column, stored as a serialized JSON array.
type OrderItems []OrderItem

// Value serializes the items for storage.
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]OrderItem(o))
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the stored JSON array.
func (o *OrderItems) Scan(value any) error {
	if value == nil {
		*o = OrderItems{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("order items: unsupported column type %T", value)
	}

	if len(raw) == 0 {
		*o = OrderItems{}
		return nil
	}

	var parsed []OrderItem
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("order items: %w", err)
	}
	if parsed == nil {
		parsed = []OrderItem{}
	}
	*o = parsed
	return nil
}
