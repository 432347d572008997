package analysis

import (
	"math"
	"testing"

	"github.com/Ericbutler1209/Team-Yellow/internal/parser"
)

func sampleRecords() []parser.Record {
	return []parser.Record{
		{Age: 18, Sex: "female", BMI: 20.0, Children: 0, Smoker: "no", Region: "southwest", Charges: 2000.00},
		{Age: 30, Sex: "male", BMI: 30.0, Children: 2, Smoker: "yes", Region: "northwest", Charges: 30000.00},
		{Age: 45, Sex: "female", BMI: 25.0, Children: 1, Smoker: "no", Region: "southeast", Charges: 15000.00},
	}
}

func TestSummarize(t *testing.T) {
	cols := Summarize(sampleRecords())
	wantOrder := []string{"age", "bmi", "children", "charges"}
	if len(cols) != len(wantOrder) {
		t.Fatalf("expected %d columns, got %d", len(wantOrder), len(cols))
	}
	for i, name := range wantOrder {
		if cols[i].Name != name {
			t.Fatalf("column %d: expected %q, got %q", i, name, cols[i].Name)
		}
	}

	age := cols[0].Stats
	if age.Count != 3 || age.Min != 18 || age.Max != 45 || age.Avg() != 31 {
		t.Fatalf("age stats mismatch: %+v avg=%v", age, age.Avg())
	}
	charges := cols[3].Stats
	if charges.Count != 3 || charges.Sum != 47000 {
		t.Fatalf("charges stats mismatch: %+v", charges)
	}
	for _, c := range cols {
		if c.Stats.Min > c.Stats.Max {
			t.Fatalf("%s: min %v > max %v", c.Name, c.Stats.Min, c.Stats.Max)
		}
		if c.Stats.Count != len(sampleRecords()) {
			t.Fatalf("%s: count %d != %d records", c.Name, c.Stats.Count, len(sampleRecords()))
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	for _, c := range Summarize(nil) {
		s := c.Stats
		if s.Count != 0 || s.Avg() != 0 {
			t.Fatalf("%s: empty stats should have count=0 avg=0, got %+v", c.Name, s)
		}
		if !math.IsInf(s.Min, 1) || !math.IsInf(s.Max, -1) {
			t.Fatalf("%s: empty stats should keep min=+Inf max=-Inf, got %+v", c.Name, s)
		}
	}
}

func TestStatsAdd(t *testing.T) {
	s := NewStats()
	for _, v := range []float64{3, -1, 4, 1.5} {
		s.Add(v)
	}
	if s.Count != 4 || s.Min != -1 || s.Max != 4 || s.Sum != 7.5 {
		t.Fatalf("accumulator mismatch: %+v", s)
	}
	if got := s.Avg(); math.Abs(got-1.875) > 1e-12 {
		t.Fatalf("avg = %v, want 1.875", got)
	}
}
