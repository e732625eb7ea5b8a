package utils

import "time"

// ParseDate interpreta una fecha en formato 2006-01-02 o RFC3339.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			incomingDate, err = time.Parse(time.RFC3339, dateStr)
			if err != nil {
				return nil, err
			}
		}

		date = incomingDate
	}

	return &date, nil
}

// SameCalendarDay indica si dos instantes caen en el mismo día calendario.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
