package domain

import "fmt"

// sizeUnits covers B through TB; anything past TB is rendered in PB.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count as a human-readable magnitude with
// exactly two fractional digits, e.g. 1536 -> "1.50 KB".
func FormatSize(bytes uint64) string {
	value := float64(bytes)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2f PB", value)
}
