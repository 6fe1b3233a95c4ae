package pos

import "testing"

func TestMoneyString(t *testing.T) {
	if got := PHP(90).String(); got != "₱90.00" {
		t.Errorf("String() = %q, want ₱90.00", got)
	}
	// No grouping separator, the amount column is stored unquoted.
	if got := PHP(1250).String(); got != "₱1250.00" {
		t.Errorf("String() = %q, want ₱1250.00", got)
	}
	if got := PHP(12.345).String(); got != "₱12.35" {
		t.Errorf("String() = %q, want ₱12.35", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	if got := PHP(35).MulInt(3); !got.Equal(PHP(105)) {
		t.Errorf("MulInt = %s, want ₱105.00", got)
	}
	if got := PHP(0.1).MulInt(3); !got.Equal(PHP(0.3)) {
		t.Errorf("MulInt = %s, want exactly ₱0.30", got)
	}
	for _, tc := range []struct {
		a, b Money
		want int
	}{
		{PHP(60), PHP(120), -1},
		{PHP(120), PHP(120), 0},
		{PHP(120), PHP(60), 1},
	} {
		if got := tc.a.Cmp(tc.b); got != tc.want {
			t.Errorf("%s.Cmp(%s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "₱90.00", want: "₱90.00"},
		{in: "90", want: "₱90.00"},
		{in: "₱1,250.00", want: "₱1250.00"},
		{in: "PHP 45.5", want: "₱45.50"},
		{in: "", wantErr: true},
		{in: "free", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMoney(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got.String() != tc.want {
			t.Errorf("ParseMoney(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAmountOrZero(t *testing.T) {
	for in, want := range map[string]string{
		"100.00": "100.00",
		"":       "0.00",
		"n/a":    "0.00",
		"-5":     "0.00",
	} {
		if got := parseAmountOrZero(in).StringFixed(2); got != want {
			t.Errorf("parseAmountOrZero(%q) = %s, want %s", in, got, want)
		}
	}
}
