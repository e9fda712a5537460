package utils

import "time"

// ParseDate interpreta uma data de calendário no formato YYYY-MM-DD.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// FormatDate serializa uma data de calendário como YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
