package pos

import "strings"

// This file implements the line format shared by the orders and sales
// files: comma-separated fields, a field may be wrapped in double quotes
// to carry embedded commas. Quote characters toggle an "inside quotes"
// mode, they are not doubled for escaping. A line that opens a quote and
// never closes it is read permissively: the token runs to the end of the
// line. Historical data contains such lines and they must keep loading.

// DecodeLine splits one ledger line into its fields. Each field is
// trimmed of surrounding whitespace after unquoting.
func DecodeLine(line string) []string {
	fields := make([]string, 0, 11)
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}

// EncodeLine joins fields into one ledger line. The columns whose index
// appears in quoted are wrapped in double quotes: those are the free-text
// columns that may carry commas or semicolons (items list, date/time,
// reference, timestamp). Numeric and enum columns stay bare.
func EncodeLine(fields []string, quoted ...int) string {
	q := make(map[int]bool, len(quoted))
	for _, i := range quoted {
		q[i] = true
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if q[i] {
			b.WriteByte('"')
			b.WriteString(f)
			b.WriteByte('"')
		} else {
			b.WriteString(f)
		}
	}
	return b.String()
}
