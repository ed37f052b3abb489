package formatter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DueCell renders an optional due date with its distance from now.
// Overdue dates are red, dates within a week yellow.
func DueCell(d *domain.Date, now time.Time) string {
	if d == nil {
		return Dim("-")
	}
	text := fmt.Sprintf("%s (%s)", d, RelativeDateFrom(d.Time, now))
	switch days := d.Sub(now).Hours() / 24; {
	case days < 0:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	}
	return text
}

// DateCell renders an optional date.
func DateCell(d *domain.Date) string {
	if d == nil {
		return Dim("-")
	}
	return d.String()
}

// IntCell renders an optional integer.
func IntCell(v *int) string {
	if v == nil {
		return Dim("-")
	}
	return strconv.Itoa(*v)
}

func idCell(id int64) string {
	return Dim("#" + strconv.FormatInt(id, 10))
}

func orDash(s string) string {
	if s == "" {
		return Dim("-")
	}
	return s
}
