package histogram

import (
	"strings"
	"testing"
)

func TestHorizontal(t *testing.T) {
	buckets := []Bucket{
		{Label: "18", Count: 1},
		{Label: "30", Count: 2},
		{Label: "45", Count: 4},
	}
	got := Horizontal(buckets, Options{MaxWidth: 8, Fill: '#'})
	want := "" +
		"18: ## (1)\n" +
		"30: #### (2)\n" +
		"45: ######## (4)\n"
	if got != want {
		t.Fatalf("Horizontal:\n%s\nwant:\n%s", got, want)
	}
}

func TestHorizontalLabelAlignment(t *testing.T) {
	buckets := []Bucket{
		{Label: "5-9", Count: 1},
		{Label: "10-14", Count: 1},
	}
	got := Horizontal(buckets, DefaultOptions())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "  5-9:") {
		t.Fatalf("short label not right-aligned: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "10-14:") {
		t.Fatalf("widest label mangled: %q", lines[1])
	}
}

func TestHorizontalMinimumBar(t *testing.T) {
	// 1/1000 of a 50-wide bar rounds to zero; a non-zero count still gets
	// one fill character.
	buckets := []Bucket{
		{Label: "a", Count: 1},
		{Label: "b", Count: 1000},
	}
	got := Horizontal(buckets, Options{MaxWidth: 50, Fill: '#'})
	if !strings.Contains(got, "a: # (1)") {
		t.Fatalf("count 1 lost its bar:\n%s", got)
	}
}

func TestHorizontalZeroCountHasNoBar(t *testing.T) {
	buckets := []Bucket{
		{Label: "a", Count: 0},
		{Label: "b", Count: 3},
	}
	got := Horizontal(buckets, Options{MaxWidth: 10, Fill: '#'})
	if !strings.Contains(got, "a:  (0)") {
		t.Fatalf("zero count should render an empty bar:\n%s", got)
	}
}

func TestVertical(t *testing.T) {
	buckets := []Bucket{
		{Label: "20", Count: 1},
		{Label: "25", Count: 3},
		{Label: "30", Count: 2},
	}
	got := Vertical(buckets, DefaultOptions())
	want := "" +
		"    #    \n" +
		"    #  # \n" +
		" #  #  # \n" +
		"20 25 30 \n"
	if got != want {
		t.Fatalf("Vertical:\n%q\nwant:\n%q", got, want)
	}
}

func TestVerticalRowCount(t *testing.T) {
	buckets := []Bucket{{Label: "x", Count: 4}, {Label: "y", Count: 1}}
	got := Vertical(buckets, DefaultOptions())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 { // peak levels + label row
		t.Fatalf("expected 5 rows, got %d:\n%s", len(lines), got)
	}
}

func TestVerticalWideLabels(t *testing.T) {
	buckets := []Bucket{
		{Label: "smoker", Count: 1},
		{Label: "non-smoker", Count: 2},
	}
	got := Vertical(buckets, DefaultOptions())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", len(lines), got)
	}
	base := lines[len(lines)-1]
	if !strings.Contains(base, "smoker") || !strings.Contains(base, "non-smoker") {
		t.Fatalf("label row incomplete: %q", base)
	}
	// Top level: only non-smoker reaches count 2.
	if strings.Count(lines[0], "#") != 1 {
		t.Fatalf("top level should hold one marker: %q", lines[0])
	}
	if strings.Count(lines[1], "#") != 2 {
		t.Fatalf("base level should hold both markers: %q", lines[1])
	}
}

func TestEmptyInputIsDefined(t *testing.T) {
	if got := Horizontal(nil, DefaultOptions()); got != "(nothing to plot)\n" {
		t.Fatalf("Horizontal(nil) = %q", got)
	}
	if got := Vertical(nil, DefaultOptions()); got != "(nothing to plot)\n" {
		t.Fatalf("Vertical(nil) = %q", got)
	}
}
