package buffer

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-record/internal/testutil"
)

type rangedVariable struct {
	testutil.Variable
	lower, upper float64
}

func (v *rangedVariable) Range() (float64, float64) { return v.lower, v.upper }

func newRampEntry(t *testing.T, n int) (*Entry, *testutil.Variable) {
	t.Helper()
	v := &testutil.Variable{ID: "x"}
	e, err := NewEntry(v, n)
	require.NoError(t, err)
	for i, x := range testutil.Ramp(n) {
		e.WriteValue(x, i)
	}
	return e, v
}

func TestNewEntryErrors(t *testing.T) {
	_, err := NewEntry(nil, 4)
	assert.True(t, errors.Is(err, ErrNilSignal))

	_, err = NewEntry(&testutil.Variable{ID: "x"}, 0)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestWriteReadRoundTrip(t *testing.T) {
	const n = 16
	v := &testutil.Variable{ID: "x"}
	e, err := NewEntry(v, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		v.SetValue(1.5*float64(i) - 3)
		e.writeAt(i)
	}
	for i := 0; i < n; i++ {
		v.SetValue(-999)
		e.readAt(i)
		assert.Equal(t, 1.5*float64(i)-3, v.Value(), "index %d", i)
		assert.Equal(t, v.Value(), e.ValueAt(i))
	}
}

func TestWriteUnchangedDoesNotFlagBounds(t *testing.T) {
	v := &testutil.Variable{ID: "x"}
	e, err := NewEntry(v, 4)
	require.NoError(t, err)

	v.SetValue(0)
	e.writeAt(0)
	assert.False(t, e.BoundsChanged())

	v.SetValue(3)
	e.writeAt(0)
	assert.True(t, e.BoundsChanged())

	e.ResetBoundsChanged()
	e.writeAt(1)
	assert.False(t, e.BoundsChanged(), "value already inside the bounds")
}

func TestWindowWraps(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	assert.Equal(t, []float64{8, 9, 0, 1, 2}, e.Window(8, 5))

	long := e.Window(3, 15)
	require.Len(t, long, 15)
	assert.Equal(t, 3.0, long[0])
	assert.Equal(t, 0.0, long[7])
	assert.Equal(t, 7.0, long[14])

	assert.Empty(t, e.Window(0, 0))
	assert.Equal(t, testutil.Ramp(10), e.Data())
}

func TestDataIsCopy(t *testing.T) {
	e, _ := newRampEntry(t, 4)
	d := e.Data()
	d[0] = 42
	assert.Equal(t, 0.0, e.ValueAt(0))
}

func TestEntryCrop(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	n, ok := e.crop(3, 6)
	require.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float64{3, 4, 5, 6}, e.Data())
}

func TestEntryCropMatchesPreCropWindow(t *testing.T) {
	cases := [][2]int{{0, 9}, {3, 6}, {7, 2}, {5, 5}, {6, 5}, {9, 0}}
	for _, c := range cases {
		e, _ := newRampEntry(t, 10)
		want, ok := SizeAfterCrop(c[0], c[1], 10)
		require.True(t, ok)
		before := e.Window(c[0], want)

		n, ok := e.crop(c[0], c[1])
		require.True(t, ok)
		assert.Equal(t, want, n, "crop(%d, %d)", c[0], c[1])
		assert.Equal(t, before, e.Data(), "crop(%d, %d)", c[0], c[1])
	}
}

func TestEntryCropInvalid(t *testing.T) {
	for _, c := range [][2]int{{-1, 3}, {0, 10}, {10, 2}} {
		e, _ := newRampEntry(t, 10)
		n, ok := e.crop(c[0], c[1])
		assert.False(t, ok)
		assert.Equal(t, 10, n)
		assert.Equal(t, testutil.Ramp(10), e.Data())
	}
}

func TestEntryCut(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	n, ok := e.cut(2, 4)
	require.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, []float64{0, 1, 5, 6, 7, 8, 9}, e.Data())

	e, _ = newRampEntry(t, 10)
	n, ok = e.cut(7, 9)
	require.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, testutil.Ramp(7), e.Data())
}

func TestEntryCutInvalid(t *testing.T) {
	for _, c := range [][2]int{{5, 2}, {-1, 2}, {0, 10}, {0, 9}} {
		e, _ := newRampEntry(t, 10)
		_, ok := e.cut(c[0], c[1])
		assert.False(t, ok, "cut(%d, %d)", c[0], c[1])
		assert.Equal(t, testutil.Ramp(10), e.Data())
	}
}

func TestEntryThin(t *testing.T) {
	for _, k := range []int{1, 2, 3, 4, 7} {
		e, _ := newRampEntry(t, 22)
		n, ok := e.thin(k)
		require.True(t, ok)
		assert.Equal(t, 22/k, n)
		data := e.Data()
		for j, v := range data {
			assert.Equal(t, float64(j*k), v, "thin(%d) sample %d", k, j)
		}
	}

	e, _ := newRampEntry(t, 3)
	_, ok := e.thin(4)
	assert.False(t, ok)
	_, ok = e.thin(0)
	assert.False(t, ok)
}

func TestEntryEnlarge(t *testing.T) {
	e, _ := newRampEntry(t, 4)
	e.enlarge(7)
	assert.Equal(t, []float64{0, 1, 2, 3, 3, 3, 3}, e.Data())

	e.enlarge(5)
	assert.Equal(t, 7, e.Len())
}

func TestEntryShift(t *testing.T) {
	e, _ := newRampEntry(t, 6)
	require.True(t, e.shift(4))
	assert.Equal(t, []float64{4, 5, 0, 1, 2, 3}, e.Data())

	assert.False(t, e.shift(0))
	assert.False(t, e.shift(6))
}

func TestEntryFill(t *testing.T) {
	e, v := newRampEntry(t, 4)
	v.SetValue(2.5)
	e.fill()
	assert.Equal(t, testutil.DC(2.5, 4), e.Data())
	b := e.Bounds()
	assert.Equal(t, 2.5, b.Lower())
	assert.Equal(t, 2.5, b.Upper())
}

func TestEntryAverage(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	assert.InDelta(t, 4.5, e.Average(), 1e-12)

	avg, err := e.AverageWindow(7, 3)
	require.NoError(t, err)
	assert.InDelta(t, 8, avg, 1e-12)

	avg, err = e.AverageWindow(9, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 1e-12)

	for _, c := range [][2]int{{10, 1}, {-1, 1}, {0, 0}, {0, 11}} {
		avg, err := e.AverageWindow(c[0], c[1])
		assert.True(t, errors.Is(err, ErrOutOfRange))
		assert.True(t, math.IsNaN(avg))
	}
}

func TestBoundsLazyAfterReshape(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	b := e.Bounds()
	assert.Equal(t, 0.0, b.Lower())
	assert.Equal(t, 9.0, b.Upper())

	e.ResetBoundsChanged()
	_, ok := e.crop(3, 6)
	require.True(t, ok)
	assert.False(t, e.BoundsChanged(), "bounds are only recomputed on access")

	b = e.Bounds()
	assert.Equal(t, 3.0, b.Lower())
	assert.Equal(t, 6.0, b.Upper())
	assert.True(t, e.BoundsChanged())
}

func TestBoundsChangedSurvivesRescan(t *testing.T) {
	v := &testutil.Variable{ID: "x"}
	e, err := NewEntry(v, 4)
	require.NoError(t, err)

	v.SetValue(3)
	e.writeAt(0)
	require.True(t, e.BoundsChanged())

	require.True(t, e.shift(1))
	b := e.Bounds()
	assert.Equal(t, 3.0, b.Upper())
	assert.True(t, e.BoundsChanged(), "rescan with equal bounds keeps the pending flag")
}

func TestBoundsIncrementalWrite(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	e.Bounds()
	e.WriteValue(-4, 2)
	b := e.Bounds()
	assert.Equal(t, -4.0, b.Lower())
	assert.Equal(t, 9.0, b.Upper())
}

func TestWindowBoundsCache(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	b := e.WindowBounds(2, 5)
	assert.Equal(t, 2.0, b.Lower())
	assert.Equal(t, 4.0, b.Upper())

	b = e.WindowBounds(8, 2)
	assert.Equal(t, 0.0, b.Lower())
	assert.Equal(t, 9.0, b.Upper())

	e.WriteValue(100, 9)
	b = e.WindowBounds(8, 2)
	assert.Equal(t, 100.0, b.Upper())

	// The full-buffer bounds are tracked separately.
	full := e.Bounds()
	assert.Equal(t, 0, full.Start())
	assert.Equal(t, 10, full.End())
}

func TestCustomBounds(t *testing.T) {
	e, _ := newRampEntry(t, 4)
	_, ok := e.CustomBounds()
	assert.False(t, ok)

	rv := &rangedVariable{Variable: testutil.Variable{ID: "r"}, lower: -2, upper: 2}
	re, err := NewEntry(rv, 4)
	require.NoError(t, err)
	b, ok := re.CustomBounds()
	require.True(t, ok)
	assert.Equal(t, -2.0, b.Lower())
	assert.Equal(t, 2.0, b.Upper())
	assert.Equal(t, 4, b.End())
}

func TestDisplayHints(t *testing.T) {
	e, _ := newRampEntry(t, 2)
	assert.False(t, e.Inverted())
	e.SetInverted(true)
	assert.True(t, e.Inverted())
	e.SetUseCustomBounds(true)
	assert.True(t, e.UsesCustomBounds())
}

func TestEntryStatsAndSpectrum(t *testing.T) {
	e, _ := newRampEntry(t, 10)
	s := e.Stats(8, 4)
	assert.Equal(t, 4, s.Length)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 1, s.MaxPos)

	sp, err := e.Spectrum(0, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 16, sp.FFTSize)
}

func TestEntryEpsilonEquals(t *testing.T) {
	a, _ := newRampEntry(t, 5)
	b, _ := newRampEntry(t, 5)
	assert.True(t, a.EpsilonEquals(b, 0))

	b.WriteValue(2.0001, 2)
	assert.False(t, a.EpsilonEquals(b, 1e-6))
	assert.True(t, a.EpsilonEquals(b, 1e-3))

	other, err := NewEntry(&testutil.Variable{ID: "y"}, 5)
	require.NoError(t, err)
	assert.False(t, a.EpsilonEquals(other, 100))
	assert.False(t, a.EpsilonEquals(nil, 100))
}

func TestEntryConcurrentReadWrite(t *testing.T) {
	e, v := newRampEntry(t, 64)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			e.Bounds()
			e.Window(i%64, 16)
			e.WindowBounds(0, 32)
		}
	}()
	for i := 0; i < 1000; i++ {
		v.SetValue(float64(i))
		e.writeAt(i % 64)
	}
	wg.Wait()
	assert.Equal(t, 999.0, e.ValueAt(999%64))
}
