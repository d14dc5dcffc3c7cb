package model

import (
	"time"
)

// Era is one coarse historical period of the card game, bucketed by the
// release date of a set. Periods follow the official numbering; newest first.
type Era struct {
	Number      int
	Start       time.Time
	End         time.Time
	DisplayName string
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// Eras lists all defined periods, newest first. The order doubles as the
// sidebar display order.
var Eras = []Era{
	{13, day(2025, 4, 1), day(2028, 3, 31), "第13期"},
	{12, day(2023, 4, 1), day(2025, 3, 31), "第12期"},
	{11, day(2020, 4, 1), day(2023, 3, 31), "第11期"},
	{10, day(2017, 4, 1), day(2020, 3, 31), "第10期"},
	{9, day(2014, 4, 1), day(2017, 3, 31), "第9期"},
	{8, day(2012, 4, 1), day(2014, 3, 31), "第8期"},
	{7, day(2010, 4, 1), day(2012, 3, 31), "第7期"},
	{6, day(2008, 4, 1), day(2010, 3, 31), "第6期"},
	{5, day(2006, 4, 1), day(2008, 3, 31), "第5期"},
	{4, day(2004, 4, 1), day(2006, 3, 31), "第4期"},
	{3, day(2002, 4, 1), day(2004, 3, 31), "第3期"},
	{2, day(2000, 4, 1), day(2002, 3, 31), "第2期"},
	{1, day(1999, 2, 4), day(2000, 3, 31), "第1期"},
}

// EraForDate returns the era whose range contains the given date. Both ends
// of a range are inclusive. Dates outside every range return ok=false.
func EraForDate(t time.Time) (Era, bool) {
	d := day(t.Year(), int(t.Month()), t.Day())
	for _, e := range Eras {
		if !d.Before(e.Start) && !d.After(e.End) {
			return e, true
		}
	}
	return Era{}, false
}

// EraDisplayName returns the display label for an era number, or the empty
// string for an unknown number.
func EraDisplayName(number int) string {
	for _, e := range Eras {
		if e.Number == number {
			return e.DisplayName
		}
	}
	return ""
}
