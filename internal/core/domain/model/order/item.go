package order

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Item is a single order line: product name, quantity and unit price.
// Orders persist their items as a serialized JSON array; Item defines the
// element shape of that array.
type Item struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ParseItems decodes a stored JSON item list. An empty or "null" payload
// yields an empty slice rather than an error, matching how historical rows
// without items are stored.
func ParseItems(raw string) ([]Item, error) {
	if raw == "" || raw == "null" {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarshalItems serializes an item list for persistence. A nil slice encodes
// as an empty array so the items column never holds SQL NULL for new rows.
func MarshalItems(items []Item) (string, error) {
	if items == nil {
		items = []Item{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
