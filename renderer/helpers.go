// Package renderer turns ledger values and reports into markdown for the
// terminal views and printable receipts.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// row writes one markdown table row.
func row(w io.Writer, cells ...string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

// rule writes the header separator of a markdown table.
func rule(w io.Writer, cols int) {
	cells := make([]string, cols)
	for i := range cells {
		cells[i] = "---"
	}
	row(w, cells...)
}
