package models

import (
	"sort"
	"time"
)

// Log is the full set of entries, ordered ascending by date.
type Log []LogEntry

// Clone returns a copy that shares no backing array with l.
func (l Log) Clone() Log {
	if l == nil {
		return Log{}
	}
	out := make(Log, len(l))
	copy(out, l)
	return out
}

// SortByDate orders entries ascending by date. Entries on the same day keep their order.
func (l Log) SortByDate() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Date.Before(l[j].Date)
	})
}

// IndexOf returns the position of the first entry on the same calendar day as date, or -1.
func (l Log) IndexOf(date time.Time) int {
	y, m, d := date.Date()
	for i, e := range l {
		ey, em, ed := e.Date.Date()
		if ey == y && em == m && ed == d {
			return i
		}
	}
	return -1
}

// Dates returns the set of distinct calendar days (YYYY-MM-DD) present in the log.
func (l Log) Dates() map[string]struct{} {
	days := make(map[string]struct{}, len(l))
	for _, e := range l {
		days[e.Day()] = struct{}{}
	}
	return days
}

// DuplicateDates returns the days that hold more than one entry, in order of
// first appearance.
func (l Log) DuplicateDates() []string {
	counts := make(map[string]int, len(l))
	var dups []string
	for _, e := range l {
		day := e.Day()
		counts[day]++
		if counts[day] == 2 {
			dups = append(dups, day)
		}
	}
	return dups
}
