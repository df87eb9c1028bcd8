package report

import (
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// niceAxisBounds pads [min,max] by 5% and rounds outward to the span's order of
// magnitude. A lower bound of zero or more is never pushed below zero, so
// concurrency and latency axes start at the origin rather than at -10.
// Bounds that would overflow keep the unrounded value.
func niceAxisBounds(min, max float64) (float64, float64) {
	if !isFinite(min) || !isFinite(max) {
		return min, max
	}
	max = widen(min, max)
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if isFinite(mag) && mag > 0 {
		if ra := math.Floor(a/mag) * mag; isFinite(ra) {
			a = ra
		}
		if rb := math.Ceil(b/mag) * mag; isFinite(rb) {
			b = rb
		}
	}
	if !isFinite(a) {
		a = min
	}
	if !isFinite(b) {
		b = max
	}
	if min >= 0 && a < 0 {
		a = 0
	}
	return a, b
}

// widen returns an upper bound strictly above min when max <= min. Past 2^53
// adding 1 no longer changes a float64, so large values widen by 10%.
func widen(min, max float64) float64 {
	if max > min {
		return max
	}
	w := min + 1
	if w <= min {
		w = min + math.Abs(min)*0.1
	}
	return w
}

// niceTicks generates roughly n ticks covering [min,max] with steps of
// 1, 2, 2.5, 5 or 10 times a power of ten. The first tick is <= min and the
// last is >= max, since go-chart derives the axis range from explicit ticks.
// At most 2n+2 ticks are returned.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || !isFinite(min) || !isFinite(max) {
		return nil
	}
	max = widen(min, max)
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := round6(math.Ceil(max/bestStep) * bestStep)
	if !isFinite(bestStep) || bestStep <= 0 || !isFinite(start) || !isFinite(end) || start+bestStep <= start {
		return []chart.Tick{
			{Value: min, Label: formatTick(min)},
			{Value: max, Label: formatTick(max)},
		}
	}
	// Division at large magnitudes can land a step inside the range.
	if start > min {
		start -= bestStep
	}
	if end < max {
		end += bestStep
	}
	maxTicks := 2*n + 2
	var ticks []chart.Tick
	for i := 0; len(ticks) < maxTicks; i++ {
		v := round6(start + float64(i)*bestStep)
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if v >= end {
			break
		}
	}
	return ticks
}

// valueRange returns the min and max over all given columns.
func valueRange(cols ...[]float64) (float64, float64) {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, c := range cols {
		for _, v := range c {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// axisTicks is the tick set for one axis over the given columns. zeroBased
// pins the lower bound at 0.
func axisTicks(zeroBased bool, cols ...[]float64) []chart.Tick {
	lo, hi := valueRange(cols...)
	if zeroBased {
		lo = 0
		if hi <= 0 {
			hi = 1
		}
	}
	a, b := niceAxisBounds(lo, hi)
	return niceTicks(a, b, 6)
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e9:
		return strconv.FormatFloat(v, 'g', 4, 64)
	case av >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case av >= 10:
		return trimZeros(strconv.FormatFloat(v, 'f', 1, 64))
	case av >= 0.01:
		return trimZeros(strconv.FormatFloat(v, 'f', 2, 64))
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}

// trimZeros drops trailing fractional zeros so integral ticks print as integers.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// round6 rounds to six decimals. Values above 1e9 have no fractional digits
// left to round at that precision and are returned unchanged.
func round6(v float64) float64 {
	if !isFinite(v) || math.Abs(v) > 1e9 {
		return v
	}
	return math.Round(v*1e6) / 1e6
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
