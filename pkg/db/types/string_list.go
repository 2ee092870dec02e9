package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list column stored as a serialized JSON array in a TEXT
// field. An empty or NULL column always scans back as an empty list.
type StringList []string

// Value serializes the list for storage. A nil list stores as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("string list: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the stored JSON array.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("string list: unsupported column type %T", value)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var parsed []string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	if parsed == nil {
		parsed = []string{}
	}
	*l = parsed
	return nil
}

// Contains reports whether the list holds the exact value.
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}

// ContainsAny reports whether the list shares at least one value with other.
func (l StringList) ContainsAny(other []string) bool {
	for _, candidate := range other {
		if l.Contains(candidate) {
			return true
		}
	}
	return false
}
