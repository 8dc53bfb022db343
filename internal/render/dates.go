package render

import (
	"fmt"
	"time"
)

var acceptedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
}

// FormatDisplayDate renders a date-like input string as "2nd January 2006".
// Inputs that do not parse are printed as-is rather than failing the
// whole document.
func FormatDisplayDate(value string) string {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return fmt.Sprintf("%d%s %s %d", t.Day(), ordinalSuffix(t.Day()), t.Month().String(), t.Year())
		}
	}

	return value
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}

	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
