package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireFinite(t *testing.T, v float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0), msgAndArgs...)
}

func TestNiceAxisBounds(t *testing.T) {
	cases := []struct {
		min, max         float64
		wantMin, wantMax float64
	}{
		{1, 100, 0, 110},
		{0, 900, 0, 1000},
		{10, 10, 9, 12},
		{-5, 5, -10, 10},
	}
	for _, c := range cases {
		a, b := niceAxisBounds(c.min, c.max)
		require.Equal(t, c.wantMin, a, "niceAxisBounds(%v,%v) min", c.min, c.max)
		require.Equal(t, c.wantMax, b, "niceAxisBounds(%v,%v) max", c.min, c.max)
	}
}

func TestNiceAxisBounds_ExtremeValues(t *testing.T) {
	cases := [][2]float64{
		{9007199254740992, 9007199254740992},
		{1e300, 1e300},
		{0, 1e308},
		{0, math.MaxFloat64},
	}
	for _, c := range cases {
		a, b := niceAxisBounds(c[0], c[1])
		requireFinite(t, a, "niceAxisBounds(%v) lower bound %v", c, a)
		requireFinite(t, b, "niceAxisBounds(%v) upper bound %v", c, b)
		require.LessOrEqual(t, a, c[0])
		require.GreaterOrEqual(t, b, c[1])
		require.Greater(t, b, a)
	}
}

func TestNiceTicksCoverRange(t *testing.T) {
	cases := [][2]float64{{0, 110}, {0, 1}, {9, 12}, {0, 0.35}, {0, 125000}}
	for _, c := range cases {
		ticks := niceTicks(c[0], c[1], 6)
		require.GreaterOrEqual(t, len(ticks), 2, "niceTicks(%v)", c)
		require.LessOrEqual(t, len(ticks), 12, "niceTicks(%v)", c)
		require.LessOrEqual(t, ticks[0].Value, c[0], "niceTicks(%v) = %v", c, ticks)
		require.GreaterOrEqual(t, ticks[len(ticks)-1].Value, c[1], "niceTicks(%v) = %v", c, ticks)
		step := ticks[1].Value - ticks[0].Value
		for i := 2; i < len(ticks); i++ {
			require.InDelta(t, step, ticks[i].Value-ticks[i-1].Value, 1e-6, "uneven tick step in %v", ticks)
		}
	}
}

func TestNiceTicks_ExtremeValuesTerminate(t *testing.T) {
	const n = 6
	cases := [][2]float64{
		{9007199254740992, 9007199254740992},
		{1e300, 1e300},
		{0, 1e308},
		{0, math.MaxFloat64},
		{-math.MaxFloat64, math.MaxFloat64},
	}
	for _, c := range cases {
		ticks := niceTicks(c[0], c[1], n)
		require.GreaterOrEqual(t, len(ticks), 2, "niceTicks(%v)", c)
		require.LessOrEqual(t, len(ticks), 2*n+2, "niceTicks(%v)", c)
		for _, tk := range ticks {
			requireFinite(t, tk.Value, "niceTicks(%v) has tick %v", c, tk.Value)
		}
		require.LessOrEqual(t, ticks[0].Value, c[0], "niceTicks(%v) = %v", c, ticks)
		require.GreaterOrEqual(t, ticks[len(ticks)-1].Value, c[1], "niceTicks(%v) = %v", c, ticks)
	}
}

func TestNiceTicksInvalid(t *testing.T) {
	require.Nil(t, niceTicks(0, 1, 1), "n<2")
	require.Nil(t, niceTicks(math.NaN(), 1, 6), "NaN bound")
	require.Nil(t, niceTicks(0, math.Inf(1), 6), "infinite bound")
}

func TestAxisTicksZeroBased(t *testing.T) {
	ticks := axisTicks(true, []float64{50, 400, 900})
	require.Equal(t, 0.0, ticks[0].Value)
	require.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 900.0)

	// all-zero column still yields a usable range
	ticks = axisTicks(true, []float64{0, 0})
	require.Greater(t, ticks[len(ticks)-1].Value, 0.0)
}

func TestAxisTicks_HugeColumnValues(t *testing.T) {
	cases := []struct {
		zeroBased bool
		col       []float64
	}{
		{false, []float64{9007199254740993}},
		{true, []float64{1e308}},
		{true, []float64{math.MaxFloat64, 1}},
	}
	for _, c := range cases {
		ticks := axisTicks(c.zeroBased, c.col)
		require.GreaterOrEqual(t, len(ticks), 2, "axisTicks(%v)", c.col)
		require.LessOrEqual(t, len(ticks), 14, "axisTicks(%v)", c.col)
		last := ticks[len(ticks)-1].Value
		requireFinite(t, last, "axisTicks(%v) upper tick %v", c.col, last)
		require.GreaterOrEqual(t, last, c.col[0])
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		120:     "120",
		1500.4:  "1500",
		12.5:    "12.5",
		20:      "20",
		2.5:     "2.5",
		0.25:    "0.25",
		1:       "1",
		0.001:   "0.001",
		1.2e308: "1.2e+308",
		8.8e15:  "8.8e+15",
	}
	for in, want := range cases {
		require.Equal(t, want, formatTick(in), "formatTick(%v)", in)
	}
}
