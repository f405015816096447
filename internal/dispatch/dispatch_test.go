package dispatch

import (
	"log/slog"
	"math"
	"testing"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/history"
	"github.com/davesmith10/tricolor/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNear(t *testing.T, want, got color.RGB) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1, "R")
	assert.InDelta(t, want.G, got.G, 1, "G")
	assert.InDelta(t, want.B, got.B, 1, "B")
}

func TestSynchronize_RGB(t *testing.T) {
	res, err := Synchronize(color.ModelRGB, 128, 64, 32)
	require.NoError(t, err)

	assert.Equal(t, color.ModelRGB, res.Source)
	assert.Equal(t, color.RGB{R: 128, G: 64, B: 32}, res.RGB)
	assert.Equal(t, color.CMYK{C: 0, M: 50, Y: 75, K: 50}, res.CMYK)
	assert.False(t, res.InvalidInput)
	assert.False(t, res.OutOfGamut)

	// Each derived model must lead back to the source.
	assertNear(t, res.RGB, res.CMYK.RGB())
	fromLab, oog := res.Lab.RGB()
	assert.False(t, oog)
	assertNear(t, res.RGB, fromLab)
}

func TestSynchronize_ClampsSource(t *testing.T) {
	res, err := Synchronize(color.ModelRGB, 300, -4, 12.6)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{R: 255, G: 0, B: 13}, res.RGB)
	assert.False(t, res.InvalidInput)

	res, err = Synchronize(color.ModelLab, 120, 200, -200)
	require.NoError(t, err)
	assert.Equal(t, color.Lab{L: 100, A: 127, B: -128}, res.Lab)
}

func TestSynchronize_CMYK(t *testing.T) {
	res, err := Synchronize(color.ModelCMYK, 0, 50, 75, 50)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{R: 128, G: 64, B: 32}, res.RGB)
	assert.InDelta(t, 34.72, res.Lab.L, 0.01)
}

func TestSynchronize_Lab(t *testing.T) {
	res, err := Synchronize(color.ModelLab, 34.72, 25.00, 31.37)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{R: 128, G: 64, B: 32}, res.RGB)
	assert.Equal(t, color.CMYK{C: 0, M: 50, Y: 75, K: 50}, res.CMYK)
	assert.False(t, res.OutOfGamut)
}

func TestSynchronize_LabOutOfGamut(t *testing.T) {
	res, err := Synchronize(color.ModelLab, 50, 127, -128)
	require.NoError(t, err)
	assert.True(t, res.OutOfGamut)
	assert.Equal(t, color.RGB{R: 183, G: 0, B: 255}, res.RGB)
	assert.Equal(t, res.RGB.CMYK(), res.CMYK)
}

func TestSynchronize_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		model  color.Model
		values []float64
		want   Result
	}{
		{
			name:   "cmyk NaN",
			model:  color.ModelCMYK,
			values: []float64{math.NaN(), 0, 0, 0},
			want:   Result{CMYK: color.CMYK{C: 0, M: 0, Y: 0, K: 50}, RGB: color.RGB{R: 128, G: 128, B: 128}},
		},
		{
			name:   "rgb infinity",
			model:  color.ModelRGB,
			values: []float64{math.Inf(1), 0, 0},
			want:   Result{RGB: color.RGB{R: 127, G: 127, B: 127}, CMYK: color.CMYK{C: 0, M: 0, Y: 0, K: 50}},
		},
		{
			name:   "lab negative infinity",
			model:  color.ModelLab,
			values: []float64{50, math.Inf(-1), 0},
			want:   Result{RGB: color.RGB{R: 127, G: 127, B: 127}, CMYK: color.CMYK{C: 0, M: 0, Y: 0, K: 50}},
		},
		{
			name:   "rgb too few values",
			model:  color.ModelRGB,
			values: []float64{1, 2},
			want:   Result{RGB: color.RGB{R: 127, G: 127, B: 127}, CMYK: color.CMYK{C: 0, M: 0, Y: 0, K: 50}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Synchronize(tt.model, tt.values...)
			require.NoError(t, err)
			assert.True(t, res.InvalidInput)
			assert.Equal(t, tt.want.RGB, res.RGB)
			assert.Equal(t, tt.want.CMYK, res.CMYK)
		})
	}
}

func TestSynchronize_LabDefault(t *testing.T) {
	res, err := Synchronize(color.ModelLab, math.NaN(), 0, 0)
	require.NoError(t, err)
	assert.True(t, res.InvalidInput)
	assert.Equal(t, color.Lab{L: 53.2, A: 0, B: 0}, res.Lab)
}

func TestSynchronize_UnknownModel(t *testing.T) {
	_, err := Synchronize(color.Model(42), 1, 2, 3)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestSession_ReentrantCallIsNoop(t *testing.T) {
	var (
		calls     int
		nestedErr error
		s         *Session
	)
	s = NewSession(WithApply(func(r Result) {
		calls++
		assert.Equal(t, Synchronizing, s.State())
		// Applying the result to the caller's widgets re-triggers a sync.
		_, nestedErr = s.Synchronize(color.ModelCMYK, float64(r.CMYK.C), float64(r.CMYK.M),
			float64(r.CMYK.Y), float64(r.CMYK.K))
	}))

	assert.Equal(t, Idle, s.State())
	_, err := s.Synchronize(color.ModelRGB, 10, 20, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, nestedErr, ErrInFlight)
	assert.Equal(t, Idle, s.State())

	// The session accepts the next pass once the first is done.
	_, err = s.Synchronize(color.ModelRGB, 10, 20, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSession_PanicRestoresIdle(t *testing.T) {
	s := NewSession(WithApply(func(Result) { panic("render failed") }))
	assert.Panics(t, func() { _, _ = s.Synchronize(color.ModelRGB, 1, 2, 3) })
	assert.Equal(t, Idle, s.State())
}

func TestSession_History(t *testing.T) {
	h := history.New(0)
	s := NewSession(WithHistory(h))

	_, err := s.Synchronize(color.ModelRGB, 128, 64, 32)
	require.NoError(t, err)
	_, err = s.Synchronize(color.ModelCMYK, 0, 0, 0, 100)
	require.NoError(t, err)
	_, err = s.Synchronize(color.ModelRGB, 128, 64, 32)
	require.NoError(t, err)

	assert.Equal(t, []string{"#804020", "#000000"}, h.Recent())
}

func TestSession_Logging(t *testing.T) {
	buf := logging.NewBufferedHandler(slog.LevelWarn)
	s := NewSession(WithLogger(slog.New(buf)))

	_, err := s.Synchronize(color.ModelRGB, 1, 2, 3)
	require.NoError(t, err)
	assert.Empty(t, buf.Entries())

	_, err = s.Synchronize(color.ModelCMYK, math.NaN(), 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, buf.Contains("invalid color input"))

	_, err = s.Synchronize(color.ModelLab, 50, 127, -128)
	require.NoError(t, err)
	assert.True(t, buf.Contains("outside sRGB gamut"))

	entries := buf.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "cmyk", entries[0].Attrs["source"])
	assert.Equal(t, "#b700ff", entries[1].Attrs["rgb"])
}

func TestDefaults(t *testing.T) {
	for _, m := range color.Models {
		assert.Len(t, Defaults(m), m.Arity(), m.String())
	}
	assert.Nil(t, Defaults(color.Model(0)))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "synchronizing", Synchronizing.String())
	assert.Equal(t, "State(7)", State(7).String())
}
