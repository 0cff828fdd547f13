// Package score keeps the high-score table and its on-disk store.
package score

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MaxEntries is the table length.
	MaxEntries = 10
	// MaxNameLen is the longest stored name, in characters.
	MaxNameLen = 12
)

// Entry is one high-score record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Table is a high-score list sorted by descending score.
type Table []Entry

// Qualifies reports whether score earns a place: the table has room or the
// score beats the current lowest entry.
func (t Table) Qualifies(score int) bool {
	if len(t) < MaxEntries {
		return true
	}
	return score > t[len(t)-1].Score
}

// Insert returns a new table with e added, sorted and truncated. Equal
// scores keep their existing order ahead of the new entry.
func (t Table) Insert(e Entry) Table {
	e.Name = CleanName(e.Name)
	out := make(Table, 0, len(t)+1)
	out = append(out, t...)
	out = append(out, e)
	out.normalize()
	return out
}

// normalize sorts descending and truncates to MaxEntries.
func (t *Table) normalize() {
	slices.SortStableFunc(*t, func(a, b Entry) int {
		return b.Score - a.Score
	})
	if len(*t) > MaxEntries {
		*t = (*t)[:MaxEntries]
	}
}

// CleanName trims whitespace and limits the name to MaxNameLen characters.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxNameLen {
		return name
	}
	return string([]rune(name)[:MaxNameLen])
}
