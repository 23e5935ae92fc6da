package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProductID is the unique product key. The upstream API sends numbers, but
// string identifiers are accepted as well.
type ProductID string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("product id must be a number or string: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// MarshalJSON writes numeric identifiers as numbers.
func (id ProductID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ProductID) String() string {
	return string(id)
}

// Rating is the aggregate customer rating of a product.
type Rating struct {
	Rate  float64 `json:"rate" validate:"gte=0,lte=5"`
	Count int     `json:"count" validate:"gte=0"`
}

// Product is a single catalog record. Products are immutable once fetched.
type Product struct {
	ID          ProductID `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category"`
	Image       string    `json:"image" validate:"omitempty,url"`
	Rating      Rating    `json:"rating"`
}

// FormattedPrice renders the price with two decimals and a dollar sign.
func (p Product) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}
