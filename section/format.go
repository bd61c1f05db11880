package section

import (
	"fmt"
	"math"
)

// FormatElevation renders a storey elevation label for a level line.
// Elevations are stored in millimeters and displayed in meters to
// three decimals, with an explicit sign: "± 0.000", "+ 3.000",
// "- 0.300". The format is fixed; it does not follow the document's
// numeric-formatting settings.
func FormatElevation(elevation float64) string {
	m := math.Abs(elevation) / 1000
	switch {
	case elevation == 0:
		return "± 0.000"
	case elevation > 0:
		return fmt.Sprintf("+ %.3f", m)
	default:
		return fmt.Sprintf("- %.3f", m)
	}
}
