// Package analysis computes descriptive statistics, grouped counts, and
// the two comparative charge analyses over a loaded record set. Every
// result is recomputed from the records on each call; nothing here holds
// state across queries.
package analysis

import (
	"math"

	"github.com/Ericbutler1209/Team-Yellow/internal/parser"
)

// Stats is a running accumulator over one numeric column.
type Stats struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
}

// NewStats returns an empty accumulator. Min and Max start at ±Inf so the
// first Add establishes both bounds; an empty accumulator keeps them.
func NewStats() Stats {
	return Stats{Min: math.Inf(1), Max: math.Inf(-1)}
}

func (s *Stats) Add(v float64) {
	s.Count++
	s.Sum += v
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
}

// Avg returns the mean of the folded values, 0 when none were folded.
func (s Stats) Avg() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// ColumnStats pairs a column name with its accumulator.
type ColumnStats struct {
	Name  string
	Stats Stats
}

// Summarize folds every record exactly once and returns the tracked
// numeric columns in fixed order: age, bmi, children, charges.
func Summarize(records []parser.Record) []ColumnStats {
	age, bmi, children, charges := NewStats(), NewStats(), NewStats(), NewStats()
	for _, r := range records {
		age.Add(float64(r.Age))
		bmi.Add(r.BMI)
		children.Add(float64(r.Children))
		charges.Add(r.Charges)
	}
	return []ColumnStats{
		{Name: "age", Stats: age},
		{Name: "bmi", Stats: bmi},
		{Name: "children", Stats: children},
		{Name: "charges", Stats: charges},
	}
}
