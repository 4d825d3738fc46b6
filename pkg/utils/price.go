package utils

import "fmt"

// FormatPrice renders a daily price with exactly two fractional digits,
// matching the numeric(10,2) column and the wire format.
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
