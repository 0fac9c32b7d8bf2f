package tables

import "fmt"

// Pct formats part/total as a percentage with one decimal place.
// A zero total renders as "0.0%" rather than dividing by zero.
func Pct(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}
