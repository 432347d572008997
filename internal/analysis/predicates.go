package analysis

import (
	"math"
	"sort"

	"github.com/Ericbutler1209/Team-Yellow/internal/parser"
)

// OlderChargesAtLeastDouble reports whether the mean charges of the
// age>=50 cohort is at least twice the mean charges of the age<=20
// cohort. Ages 21-49 belong to neither cohort. Either cohort being empty
// yields false, never an error.
func OlderChargesAtLeastDouble(records []parser.Record) bool {
	var oldSum, youngSum float64
	var oldCount, youngCount int
	for _, r := range records {
		if r.Age >= 50 {
			oldSum += r.Charges
			oldCount++
		}
		if r.Age <= 20 {
			youngSum += r.Charges
			youngCount++
		}
	}
	if oldCount == 0 || youngCount == 0 {
		return false
	}
	oldAvg := oldSum / float64(oldCount)
	youngAvg := youngSum / float64(youngCount)
	return oldAvg >= 2*youngAvg
}

// ChargePerChildNonIncreasing groups records by children count and walks
// the groups in ascending order. Each group's per-child charge is its
// mean charges divided by the children count, or the mean itself at zero
// children. The sequence must never increase; ties are allowed and the
// first increase decides.
func ChargePerChildNonIncreasing(records []parser.Record) bool {
	type acc struct {
		sum   float64
		count int
	}
	groups := make(map[int]*acc)
	for _, r := range records {
		a := groups[r.Children]
		if a == nil {
			a = &acc{}
			groups[r.Children] = a
		}
		a.sum += r.Charges
		a.count++
	}
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	prev := math.MaxFloat64
	for _, c := range keys {
		a := groups[c]
		avg := a.sum / float64(a.count)
		perChild := avg
		if c != 0 {
			perChild = avg / float64(c)
		}
		if perChild > prev {
			return false
		}
		prev = perChild
	}
	return true
}
