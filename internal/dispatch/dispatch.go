// Package dispatch keeps the RGB, CMYK and L*a*b* renditions of a color in
// step: given the values of one model it derives the other two in a single
// pass.
package dispatch

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/history"
	"github.com/davesmith10/tricolor/internal/logging"
)

var (
	// ErrInFlight is returned by a Synchronize call made while another pass
	// on the same session is still running, typically from inside the
	// session's apply callback. Nothing is computed or recorded.
	ErrInFlight = errors.New("synchronization already in flight")

	// ErrUnknownModel is returned for a source model other than rgb, cmyk or lab.
	ErrUnknownModel = errors.New("unknown color model")
)

// Result is the outcome of one synchronization pass.
type Result struct {
	Source color.Model
	RGB    color.RGB
	CMYK   color.CMYK
	Lab    color.Lab

	// InvalidInput is set when the source values were unusable and the
	// model's defaults were substituted.
	InvalidInput bool
	// OutOfGamut is set when the L*a*b* source had to be clamped into sRGB.
	OutOfGamut bool
}

// Defaults returns the values substituted for invalid input of model m.
func Defaults(m color.Model) []float64 {
	switch m {
	case color.ModelRGB:
		return []float64{127, 127, 127}
	case color.ModelCMYK:
		return []float64{0, 0, 0, 50}
	case color.ModelLab:
		return []float64{53.2, 0, 0}
	default:
		return nil
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for gamut and invalid-input notices.
// The default is logging.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithApply registers fn to receive every completed result. fn runs while
// the session is still Synchronizing, so any Synchronize call it triggers
// on the same session returns ErrInFlight.
func WithApply(fn func(Result)) Option {
	return func(s *Session) { s.apply = fn }
}

// WithHistory records the hex form of every synchronized RGB color in h.
func WithHistory(h *history.History) Option {
	return func(s *Session) { s.history = h }
}

// Session synchronizes colors for one caller. It is not safe for
// concurrent use.
type Session struct {
	state   State
	log     *slog.Logger
	apply   func(Result)
	history *history.History
}

// NewSession returns an Idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{log: logging.Logger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Synchronize derives all three models from values given in the src model.
// Values outside the model's legal range are clamped. If the wrong number
// of values is given, or any of them is NaN or infinite, the model's
// Defaults are used instead and Result.InvalidInput is set.
func (s *Session) Synchronize(src color.Model, values ...float64) (Result, error) {
	if !src.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownModel, src)
	}
	if s.state == Synchronizing {
		s.log.Debug("synchronize skipped, pass in flight", "source", src.String())
		return Result{}, ErrInFlight
	}
	s.state = Synchronizing
	defer func() { s.state = Idle }()

	res := Result{Source: src}
	if !usable(src, values) {
		s.log.Warn("invalid color input, using defaults",
			"source", src.String(), "values", fmt.Sprint(values))
		values = Defaults(src)
		res.InvalidInput = true
	}

	derive(&res, values)
	if res.OutOfGamut {
		s.log.Warn("color outside sRGB gamut, RGB clamped",
			"lab", fmt.Sprintf("%.2f,%.2f,%.2f", res.Lab.L, res.Lab.A, res.Lab.B),
			"rgb", res.RGB.Hex())
	}
	s.log.Debug("synchronized", "source", src.String(), "rgb", res.RGB.Hex())

	if s.history != nil {
		s.history.Add(res.RGB.Hex())
	}
	if s.apply != nil {
		s.apply(res)
	}
	return res, nil
}

// Synchronize runs one pass on a fresh session without callbacks or history.
func Synchronize(src color.Model, values ...float64) (Result, error) {
	return NewSession().Synchronize(src, values...)
}

func usable(m color.Model, values []float64) bool {
	if len(values) != m.Arity() {
		return false
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// derive fills in res from values of res.Source. values has the right arity.
func derive(res *Result, v []float64) {
	switch res.Source {
	case color.ModelRGB:
		res.RGB = color.ClampRGB(v[0], v[1], v[2])
		res.CMYK = res.RGB.CMYK()
		res.Lab = res.RGB.Lab()
	case color.ModelCMYK:
		res.CMYK = color.ClampCMYK(v[0], v[1], v[2], v[3])
		res.RGB = res.CMYK.RGB()
		res.Lab = res.CMYK.Lab()
	case color.ModelLab:
		res.Lab = color.ClampLab(v[0], v[1], v[2])
		res.RGB, res.OutOfGamut = res.Lab.RGB()
		res.CMYK = res.RGB.CMYK()
	}
}
