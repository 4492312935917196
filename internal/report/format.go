package report

import "fmt"

// formatPercent returns a percentage string for score output.
func formatPercent(score, total int) string {
	if total <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(score)/float64(total)*100)
}
