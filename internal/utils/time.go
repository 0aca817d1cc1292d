package utils

import "time"

// DateLabelLayout is the label format check-ins carry, e.g. "Jan 30 2026".
const DateLabelLayout = "Jan 2 2006"

// TodayLabel returns today's date label.
func TodayLabel() string {
	return time.Now().Format(DateLabelLayout)
}
