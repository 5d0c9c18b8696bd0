package dashboard

import (
	"fmt"
	"strconv"

	"github.com/maastricht-university/ohcr-dashboard/clients"
)

// FormatMetrics turns raw session metrics into the six display pairs of the
// metrics grid, in fixed order. Ratios are shown as percentages, depth counts
// as-is. Input ranges are not validated; an out-of-range ratio formats as-is.
func FormatMetrics(m clients.SessionMetrics) []Metric {
	return []Metric{
		{Label: "KC Score", Value: percent1(m.KCScore)},
		{Label: "OHCR Coverage", Value: percent1(m.OHCRIndex)},
		{Label: "Avg HC-Depth", Value: number(m.AvgHCDepth)},
		{Label: "Student Talk", Value: percent0(m.StudentTalkPct)},
		{Label: "Level-5 Presence", Value: percent0(m.Level5Pct)},
		{Label: "Max HC-Depth", Value: number(m.MaxHCDepth)},
	}
}

func percent1(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }
func percent0(v float64) string { return fmt.Sprintf("%.0f%%", v*100) }

// number renders without a forced decimal point, so 2 prints as "2".
func number(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
