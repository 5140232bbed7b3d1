// Package easter computes Gregorian Easter Sunday dates.
package easter

import "time"

// Sunday returns Easter Sunday for the given year in the given location,
// at midnight local time.
//
// Uses the Gauss/Meeus century-corrected algorithm: pure integer arithmetic
// on the golden number, century and leap corrections, and the lunar epact.
func Sunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

// NextSunday returns the next Easter Sunday on or after the start of the
// reference day. If this year's Easter has already passed, it returns next
// year's.
func NextSunday(ref time.Time, loc *time.Location) time.Time {
	sunday := Sunday(ref.Year(), loc)
	dayStart := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
	if sunday.Before(dayStart) {
		sunday = Sunday(ref.Year()+1, loc)
	}
	return sunday
}
