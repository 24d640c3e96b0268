package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Money formats an amount with the configured currency symbol and two
// decimals.
func Money(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// RenderTable writes rows as a bordered table under the given headers.
func RenderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.AppendBulk(rows)
	table.Render()
}
