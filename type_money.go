package pos

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used for every ledger amount.
const DefaultCurrency = "PHP"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported decimal source %T", value))
	}
}

// M creates a Money in the ledger currency.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value), cur: DefaultCurrency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	return *money.New(0, cur).Currency()
}

// String returns the symbol-prefixed representation used in the ledger
// files, e.g. "₱90.00". No grouping separators: the amount columns are
// stored unquoted, a comma would split the field.
func (m Money) String() string {
	cur := m.currency()
	return cur.Grapheme + m.value.StringFixed(int32(cur.Fraction))
}

// Decimal returns the major-unit value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool  { return m.value.LessThan(n.value) }
func (m Money) Cmp(n Money) int        { return m.value.Cmp(n.value) }
func (m Money) Add(n Money) Money      { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money      { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) MulInt(n int) Money     { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur} }
func (m Money) DivInt(n int) Money     { return Money{value: m.value.Div(decimal.NewFromInt(int64(n))), cur: m.cur} }

// AsFloat is for display-side arithmetic only, exact math stays in decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}

// ParseMoney parses a currency-symbol-prefixed decimal as found in the
// amount columns, e.g. "₱1,250.00". The symbol and grouping commas are
// stripped; what remains must be a plain decimal.
func ParseMoney(s string) (Money, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, s)
	if cleaned == "" {
		return Money{}, fmt.Errorf("no amount in %q", s)
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return M(value), nil
}

// parseAmountOrZero reads a bare decimal amount, defaulting blank or
// unparseable input to zero. The cash-received column relies on this:
// a missing amount must become 0.00, never garbage.
func parseAmountOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
