package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Ericbutler1209/Team-Yellow/internal/parser"
)

// IntCount is one entry of an integer-keyed grouping, emitted in
// ascending key order.
type IntCount struct {
	Key   int `json:"key"`
	Count int `json:"count"`
}

// LabelCount is one entry of a labeled grouping, emitted in declaration
// or ascending-range order.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ChildrenCounts counts records per exact children value.
func ChildrenCounts(records []parser.Record) []IntCount {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Children]++
	}
	return sortedCounts(counts)
}

// AgeCounts counts records per exact age.
func AgeCounts(records []parser.Record) []IntCount {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Age]++
	}
	return sortedCounts(counts)
}

// BMIBins buckets BMI values into width-sized bins keyed by each bin's
// lower bound. Assignment truncates toward negative infinity, not toward
// zero, so edge values on either side of zero bucket consistently.
func BMIBins(records []parser.Record, width int) []IntCount {
	bins := make(map[int]int)
	for _, r := range records {
		b := int(math.Floor(r.BMI/float64(width))) * width
		bins[b]++
	}
	return sortedCounts(bins)
}

func sortedCounts(m map[int]int) []IntCount {
	out := make([]IntCount, 0, len(m))
	for k, c := range m {
		out = append(out, IntCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Ages extracts the age column in record order.
func Ages(records []parser.Record) []int {
	ages := make([]int, len(records))
	for i, r := range records {
		ages[i] = r.Age
	}
	return ages
}

// AgeSpanBins materializes every width-sized bin from the observed
// minimum aligned down to a multiple of width through the observed
// maximum aligned up, labeled "lo-hi" and including zero-count bins.
// Values outside the span are clamped into the first or last bin; the
// alignment above makes that path unreachable for the ages that defined
// the span.
func AgeSpanBins(ages []int, width int) []LabelCount {
	if len(ages) == 0 {
		return nil
	}
	min, max := ages[0], ages[0]
	for _, a := range ages[1:] {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	start := int(math.Floor(float64(min)/float64(width))) * width
	end := int(math.Ceil(float64(max+1)/float64(width)))*width - 1

	var out []LabelCount
	index := make(map[int]int) // bin lower bound -> position in out
	for lo := start; lo <= end; lo += width {
		index[lo] = len(out)
		out = append(out, LabelCount{Label: fmt.Sprintf("%d-%d", lo, lo+width-1)})
	}
	for _, a := range ages {
		lo := int(math.Floor(float64(a)/float64(width))) * width
		i, ok := index[lo]
		if !ok {
			if a < start {
				i = 0
			} else {
				i = len(out) - 1
			}
		}
		out[i].Count++
	}
	return out
}

// SmokerCounts splits records into the two fixed smoker categories. Both
// keys are always present; a smoker field equal to "yes" in any case
// counts as "smoker", anything else as "non-smoker".
func SmokerCounts(records []parser.Record) []LabelCount {
	out := []LabelCount{{Label: "smoker"}, {Label: "non-smoker"}}
	for _, r := range records {
		if strings.EqualFold(r.Smoker, "yes") {
			out[0].Count++
		} else {
			out[1].Count++
		}
	}
	return out
}
