package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/models"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateDate ConflictType = "duplicate_date"
	ConflictUnsorted      ConflictType = "unsorted"
	ConflictInvalidValue  ConflictType = "invalid_value"
	ConflictFutureDate    ConflictType = "future_date"
	ConflictUnreadable    ConflictType = "unreadable_row"
)

// Conflict represents a problem detected in the stored log
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
	Rows        []int  // 1-based positions in the log
	Line        int    // file line, for unreadable rows
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Fixable reports whether Fix would change the log.
func (vr *ValidationResult) Fixable() bool {
	for _, c := range vr.Conflicts {
		if c.Type != ConflictFutureDate {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks a Log against the rules the store maintains on write
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateLog checks log for repeated dates, ordering, out-of-range values
// and entries dated after today.
func (v *Validator) ValidateLog(log models.Log, today time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	rowsByDate := make(map[string][]int)
	var order []string
	for i, e := range log {
		day := e.Day()
		if _, seen := rowsByDate[day]; !seen {
			order = append(order, day)
		}
		rowsByDate[day] = append(rowsByDate[day], i+1)
	}
	for _, day := range order {
		rows := rowsByDate[day]
		if len(rows) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateDate,
				Description: fmt.Sprintf("Date %s has %d entries (rows %v)", day, len(rows), rows),
				Date:        day,
				Rows:        rows,
			})
		}
	}

	for i := 1; i < len(log); i++ {
		if log[i].Date.Before(log[i-1].Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnsorted,
				Description: fmt.Sprintf("Row %d (%s) comes after a later date (%s)", i+1, log[i].Day(), log[i-1].Day()),
				Date:        log[i].Day(),
				Rows:        []int{i, i + 1},
			})
			break
		}
	}

	for i, e := range log {
		if err := e.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidValue,
				Description: fmt.Sprintf("Row %d: %v", i+1, err),
				Date:        e.Day(),
				Rows:        []int{i + 1},
			})
		}
	}

	limit := models.NormalizeDate(today)
	for i, e := range log {
		if models.NormalizeDate(e.Date).After(limit) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureDate,
				Description: fmt.Sprintf("Row %d is dated %s, after today (%s)", i+1, e.Day(), limit.Format(constants.DateFormat)),
				Date:        e.Day(),
				Rows:        []int{i + 1},
			})
		}
	}

	return result
}

// ValidateFile is ValidateLog for a leniently decoded file: rows that could
// not be parsed are reported first, by file line.
func (v *Validator) ValidateFile(log models.Log, skipped []storage.RowError, today time.Time) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	for _, rowErr := range skipped {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictUnreadable,
			Description: fmt.Sprintf("Line %d could not be read: %v", rowErr.Line, rowErr.Err),
			Line:        rowErr.Line,
		})
	}
	rest := v.ValidateLog(log, today)
	result.Conflicts = append(result.Conflicts, rest.Conflicts...)
	return result
}

// Fix returns a repaired copy of log: unreadable and invalid rows dropped, one entry per
// date (the most recently saved wins) and ascending order. Future-dated
// entries are reported but kept.
func (v *Validator) Fix(log models.Log, result ValidationResult) (models.Log, []FixAction) {
	var actions []FixAction
	conflictFor := func(t ConflictType, date string) Conflict {
		for _, c := range result.Conflicts {
			if c.Type == t && c.Date == date {
				return c
			}
		}
		return Conflict{Type: t, Date: date}
	}

	for _, c := range result.Conflicts {
		if c.Type == ConflictUnreadable {
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Dropped unreadable line %d", c.Line),
				SourceConflict: c,
			})
		}
	}

	valid := models.Log{}
	for _, e := range log {
		if err := e.Validate(); err != nil {
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Dropped invalid entry for %s", e.Day()),
				SourceConflict: conflictFor(ConflictInvalidValue, e.Day()),
			})
			continue
		}
		valid = append(valid, e)
	}

	latest := make(map[string]int)
	fixed := models.Log{}
	for _, e := range valid {
		e.Date = models.NormalizeDate(e.Date)
		idx, ok := latest[e.Day()]
		if !ok {
			latest[e.Day()] = len(fixed)
			fixed = append(fixed, e)
			continue
		}
		if !e.SavedAt.Before(fixed[idx].SavedAt) {
			fixed[idx] = e
		}
		actions = append(actions, FixAction{
			Action:         fmt.Sprintf("Merged duplicate entries for %s, keeping the one saved last", e.Day()),
			SourceConflict: conflictFor(ConflictDuplicateDate, e.Day()),
		})
	}

	if !sort.SliceIsSorted(fixed, func(i, j int) bool { return fixed[i].Date.Before(fixed[j].Date) }) {
		fixed.SortByDate()
		actions = append(actions, FixAction{
			Action:         "Sorted entries by date",
			SourceConflict: firstOfType(result, ConflictUnsorted),
		})
	}

	return fixed, actions
}

func firstOfType(result ValidationResult, t ConflictType) Conflict {
	for _, c := range result.Conflicts {
		if c.Type == t {
			return c
		}
	}
	return Conflict{Type: t}
}
