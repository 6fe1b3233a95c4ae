package pos

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Catalog is the read-only price lookup the core consumes. The catalog
// data itself belongs to a collaborator; the core only asks for prices,
// at order entry time and when re-deriving a historical total for a
// receipt.
type Catalog interface {
	PriceOf(category, item string) (decimal.Decimal, bool)
}

// PriceList is an in-memory Catalog, category then item name to unit
// price.
type PriceList map[string]map[string]decimal.Decimal

func (p PriceList) PriceOf(category, item string) (decimal.Decimal, bool) {
	price, ok := p[category][item]
	return price, ok
}

// Add records a price, creating the category on first use.
func (p PriceList) Add(category, item string, price decimal.Decimal) {
	if p[category] == nil {
		p[category] = make(map[string]decimal.Decimal)
	}
	p[category][item] = price
}

// PriceOrDefault looks a price up, falling back to the caller-supplied
// default when the catalog has no entry.
func PriceOrDefault(c Catalog, category, item string, fallback decimal.Decimal) decimal.Decimal {
	if c != nil {
		if price, ok := c.PriceOf(category, item); ok {
			return price
		}
	}
	return fallback
}

// Subtotal prices an item list against the catalog. Unknown items cost
// the fallback price.
func Subtotal(c Catalog, category string, items []Item, fallback decimal.Decimal) Money {
	total := M(0)
	for _, it := range items {
		price := PriceOrDefault(c, category, it.Name, fallback)
		total = total.Add(M(price).MulInt(it.Qty))
	}
	return total
}

// DecodePriceList reads a provider-style JSON catalog export:
//
//	{"catalog": [{"category": "Drinks", "name": "Iced Tea", "price": 35.0}, ...]}
func DecodePriceList(r io.Reader) (PriceList, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("catalog export is not valid json: %w", err)
	}

	jval, err := jsonpath.Get("$.catalog[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("catalog export has no catalog entries: %w", err)
	}
	// jsonpath is never clear about whether it returns a list of answers or
	// a single answer: normalize to a list.
	entries, ok := jval.([]any)
	if !ok {
		entries = []any{jval}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog export has no catalog entries")
	}

	list := make(PriceList)
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("catalog entry %d: not an object", i)
		}
		category, _ := entry["category"].(string)
		name, _ := entry["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d: missing item name", i)
		}
		price, err := decodePrice(entry["price"])
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, name, err)
		}
		list.Add(category, name, price)
	}
	return list, nil
}

// decodePrice accepts the number or string form providers export.
func decodePrice(v any) (decimal.Decimal, error) {
	switch p := v.(type) {
	case float64:
		return decimal.NewFromFloat(p), nil
	case string:
		d, err := decimal.NewFromString(p)
		if err != nil {
			return decimal.Zero, fmt.Errorf("bad price %q: %w", p, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("bad price of type %T", v)
	}
}
