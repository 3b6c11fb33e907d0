package domain

import (
	"fmt"
	"time"
)

// Period identifies one calendar month inside a reporting year.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Before reports whether p is chronologically earlier than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Quarter returns the calendar quarter (1..4) the period falls in.
func (p Period) Quarter() int {
	return (int(p.Month)-1)/3 + 1
}

func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}
