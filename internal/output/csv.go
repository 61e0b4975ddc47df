package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"pricetable/internal/market"
)

// Header is the first line of the price table.
var Header = []string{"Exchange", "Market", "Price"}

// WriteCSV writes the header followed by one "<exchange>,<symbol>,<price>" line
// per row, in the given order. Fields are written verbatim, never quoted, so
// each line equals the row's sort key.
func WriteCSV(w io.Writer, rows []market.AggregatedRow) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, strings.Join(Header, ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(bw, row.String()); err != nil {
			return fmt.Errorf("write row %s: %w", row, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
