// Package histogram renders ordered label/count buckets as textual bar
// charts, horizontal or vertical.
package histogram

import (
	"fmt"
	"math"
	"strings"
)

// Bucket is one histogram column. Callers supply buckets already ordered
// by key.
type Bucket struct {
	Label string
	Count int
}

// Options shapes the rendering.
type Options struct {
	// MaxWidth caps the longest horizontal bar, in characters.
	MaxWidth int
	// Fill is the bar and marker character.
	Fill rune
}

// DefaultOptions matches the report defaults.
func DefaultOptions() Options {
	return Options{MaxWidth: 50, Fill: '#'}
}

// emptyChart is the defined output for a mapping with nothing to plot.
const emptyChart = "(nothing to plot)\n"

// Horizontal renders one line per bucket as `<label>: <bar> (<count>)`.
// Labels are right-aligned to the widest label; the bar scales against
// the peak count and never drops below one character for a non-zero
// count.
func Horizontal(buckets []Bucket, opt Options) string {
	if len(buckets) == 0 {
		return emptyChart
	}
	peak := peakCount(buckets)
	labelWidth := 0
	for _, b := range buckets {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}
	var sb strings.Builder
	for _, b := range buckets {
		fmt.Fprintf(&sb, "%*s: %s (%d)\n", labelWidth, b.Label, bar(b.Count, peak, opt), b.Count)
	}
	return sb.String()
}

func bar(count, peak int, opt Options) string {
	if count <= 0 || peak <= 0 {
		return ""
	}
	n := int(math.Round(float64(count) / float64(peak) * float64(opt.MaxWidth)))
	if n < 1 {
		n = 1
	}
	return strings.Repeat(string(opt.Fill), n)
}

// Vertical renders the chart growing upward: one row per level from the
// peak count down to 1 with a marker wherever a bucket reaches that
// level, then a base row of labels. Cells are sized per label so long
// category names stay aligned with their column.
func Vertical(buckets []Bucket, opt Options) string {
	if len(buckets) == 0 {
		return emptyChart
	}
	peak := peakCount(buckets)
	if peak < 1 {
		peak = 1
	}
	widths := make([]int, len(buckets))
	for i, b := range buckets {
		widths[i] = len(b.Label) + 1
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	var sb strings.Builder
	for level := peak; level >= 1; level-- {
		for i, b := range buckets {
			if b.Count >= level {
				sb.WriteString(cell(string(opt.Fill), widths[i]))
			} else {
				sb.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		sb.WriteByte('\n')
	}
	for i, b := range buckets {
		sb.WriteString(cell(b.Label, widths[i]))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// cell centers s in a field of the given width.
func cell(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func peakCount(buckets []Bucket) int {
	peak := 0
	for _, b := range buckets {
		if b.Count > peak {
			peak = b.Count
		}
	}
	return peak
}
