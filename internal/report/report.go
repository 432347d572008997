// Package report assembles the full analysis report for one loaded
// record set: the record listing, per-column stats, histograms, the two
// charge predicates, and the children breakdown, in fixed order.
package report

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ericbutler1209/Team-Yellow/internal/analysis"
	"github.com/Ericbutler1209/Team-Yellow/internal/histogram"
	"github.com/Ericbutler1209/Team-Yellow/internal/parser"
	"github.com/Ericbutler1209/Team-Yellow/internal/utils"
)

// Options shapes report computation and rendering.
type Options struct {
	BarWidth    int
	AgeBinWidth int
	BMIBinWidth int
	Fill        rune
}

// DefaultOptions returns the report defaults.
func DefaultOptions() Options {
	return Options{BarWidth: 50, AgeBinWidth: 5, BMIBinWidth: 5, Fill: '#'}
}

// Report holds every aggregate computed for one run, plus run metadata.
// It is derived and transient: built once per query from the immutable
// records, rendered, and discarded.
type Report struct {
	ID          string
	Source      string
	GeneratedAt time.Time

	Records []parser.Record
	Columns []analysis.ColumnStats

	BMIBins        []analysis.IntCount
	SmokerCounts   []analysis.LabelCount
	AgeCounts      []analysis.IntCount
	AgeSpanBins    []analysis.LabelCount
	ChildrenCounts []analysis.IntCount

	OlderChargesAtLeastDouble   bool
	ChargePerChildNonIncreasing bool

	opt Options
}

// Build computes every aggregate in one place so rendering is a pure
// formatting pass over the result.
func Build(source string, records []parser.Record, opt Options) *Report {
	def := DefaultOptions()
	if opt.BarWidth <= 0 {
		opt.BarWidth = def.BarWidth
	}
	if opt.AgeBinWidth <= 0 {
		opt.AgeBinWidth = def.AgeBinWidth
	}
	if opt.BMIBinWidth <= 0 {
		opt.BMIBinWidth = def.BMIBinWidth
	}
	if opt.Fill == 0 {
		opt.Fill = def.Fill
	}
	return &Report{
		ID:          uuid.NewString(),
		Source:      filepath.Base(source),
		GeneratedAt: time.Now(),

		Records: records,
		Columns: analysis.Summarize(records),

		BMIBins:        analysis.BMIBins(records, opt.BMIBinWidth),
		SmokerCounts:   analysis.SmokerCounts(records),
		AgeCounts:      analysis.AgeCounts(records),
		AgeSpanBins:    analysis.AgeSpanBins(analysis.Ages(records), opt.AgeBinWidth),
		ChildrenCounts: analysis.ChildrenCounts(records),

		OlderChargesAtLeastDouble:   analysis.OlderChargesAtLeastDouble(records),
		ChargePerChildNonIncreasing: analysis.ChargePerChildNonIncreasing(records),

		opt: opt,
	}
}

// Render emits the human-readable report in its fixed section order.
func (r *Report) Render() string {
	hopt := histogram.Options{MaxWidth: r.opt.BarWidth, Fill: r.opt.Fill}
	var sb strings.Builder

	fmt.Fprintf(&sb, "Stored %d records:\n", len(r.Records))
	for i, rec := range r.Records {
		fmt.Fprintf(&sb, "#%d %s\n", i+1, rec)
	}

	sb.WriteString("\n=== Stats for age, bmi, children, and charges ===\n")
	fmt.Fprintf(&sb, "%-10s %8s %12s %12s %12s\n", "column", "count", "min", "max", "avg")
	sb.WriteString(strings.Repeat("-", 62))
	sb.WriteByte('\n')
	for _, c := range r.Columns {
		fmt.Fprintf(&sb, "%-10s %8d %12.2f %12.2f %12.2f\n",
			c.Name, c.Stats.Count, c.Stats.Min, c.Stats.Max, c.Stats.Avg())
	}

	fmt.Fprintf(&sb, "\n=== BMI Vertical Histogram (bin=%d) ===\n", r.opt.BMIBinWidth)
	sb.WriteString(histogram.Vertical(intBuckets(r.BMIBins), hopt))

	sb.WriteString("\n=== Smokers vs Non-Smokers (Vertical) ===\n")
	sb.WriteString(histogram.Vertical(labelBuckets(r.SmokerCounts), hopt))

	sb.WriteString("\n=== Avg charges age>=50 at least 2x age<=20 ? ===\n")
	sb.WriteString(boolText(r.OlderChargesAtLeastDouble))
	sb.WriteByte('\n')

	sb.WriteString("\n=== More children => lower charge per child (monotone) ? ===\n")
	sb.WriteString(boolText(r.ChargePerChildNonIncreasing))
	sb.WriteByte('\n')

	sb.WriteString("\nHorizontal Histogram (per age):\n")
	sb.WriteString(histogram.Horizontal(intBuckets(r.AgeCounts), hopt))

	fmt.Fprintf(&sb, "\nHorizontal Histogram (bins, size=%d):\n", r.opt.AgeBinWidth)
	sb.WriteString(histogram.Horizontal(labelBuckets(r.AgeSpanBins), hopt))

	sb.WriteString("\nTotal records by number of children:\n")
	for _, c := range r.ChildrenCounts {
		fmt.Fprintf(&sb, "children=%d -> %d record(s)\n", c.Key, c.Count)
	}
	return sb.String()
}

// JSON exports the computed aggregates as indented JSON. The ±Inf
// min/max sentinels of an empty column are omitted rather than
// serialized, since JSON has no encoding for them.
func (r *Report) JSON() ([]byte, error) {
	type column struct {
		Name  string   `json:"name"`
		Count int      `json:"count"`
		Min   *float64 `json:"min,omitempty"`
		Max   *float64 `json:"max,omitempty"`
		Avg   float64  `json:"avg"`
	}
	cols := make([]column, len(r.Columns))
	for i, c := range r.Columns {
		col := column{Name: c.Name, Count: c.Stats.Count, Avg: c.Stats.Avg()}
		if c.Stats.Count > 0 {
			mn, mx := c.Stats.Min, c.Stats.Max
			col.Min, col.Max = &mn, &mx
		}
		cols[i] = col
	}
	view := struct {
		ID             string                 `json:"id"`
		Source         string                 `json:"source"`
		GeneratedAt    time.Time              `json:"generated_at"`
		Records        int                    `json:"records"`
		Columns        []column               `json:"columns"`
		BMIBins        []analysis.IntCount    `json:"bmi_bins"`
		SmokerCounts   []analysis.LabelCount  `json:"smoker_counts"`
		AgeCounts      []analysis.IntCount    `json:"age_counts"`
		AgeSpanBins    []analysis.LabelCount  `json:"age_span_bins"`
		ChildrenCounts []analysis.IntCount    `json:"children_counts"`
		OlderCharges   bool                   `json:"older_charges_at_least_double"`
		PerChild       bool                   `json:"charge_per_child_non_increasing"`
	}{
		ID:             r.ID,
		Source:         r.Source,
		GeneratedAt:    r.GeneratedAt,
		Records:        len(r.Records),
		Columns:        cols,
		BMIBins:        r.BMIBins,
		SmokerCounts:   r.SmokerCounts,
		AgeCounts:      r.AgeCounts,
		AgeSpanBins:    r.AgeSpanBins,
		ChildrenCounts: r.ChildrenCounts,
		OlderCharges:   r.OlderChargesAtLeastDouble,
		PerChild:       r.ChargePerChildNonIncreasing,
	}
	return utils.PrettyJSON(view)
}

// Save writes the text render to path atomically, creating the parent
// directory if needed.
func (r *Report) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("ensure dir: %w", err)
		}
	}
	return utils.SafeWriteFile(path, []byte(r.Render()))
}

func intBuckets(counts []analysis.IntCount) []histogram.Bucket {
	out := make([]histogram.Bucket, len(counts))
	for i, c := range counts {
		out[i] = histogram.Bucket{Label: strconv.Itoa(c.Key), Count: c.Count}
	}
	return out
}

func labelBuckets(counts []analysis.LabelCount) []histogram.Bucket {
	out := make([]histogram.Bucket, len(counts))
	for i, c := range counts {
		out[i] = histogram.Bucket{Label: c.Label, Count: c.Count}
	}
	return out
}

func boolText(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}
