package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CustomerDetails carries the free-form contact block the frontend attaches
// to an order, stored as a serialized JSON object.
type CustomerDetails map[string]any

// Value serializes the details for storage. An empty map stores as NULL.
func (c CustomerDetails) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]any(c))
	if err != nil {
		return nil, fmt.Errorf("customer details: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the stored JSON object.
func (c *CustomerDetails) Scan(value any) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("customer details: unsupported column type %T", value)
	}

	if len(raw) == 0 {
		*c = nil
		return nil
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("customer details: %w", err)
	}
	*c = parsed
	return nil
}
