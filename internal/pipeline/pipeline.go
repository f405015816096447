package pipeline

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/dispatch"
	"github.com/davesmith10/tricolor/internal/ir"
	"github.com/davesmith10/tricolor/internal/logging"
)

// ErrNoColors is returned when the input holds no color lines.
var ErrNoColors = errors.New("no colors in input")

// Options controls a batch conversion.
type Options struct {
	From   color.Model  // required: model of the input values
	Logger *slog.Logger // optional: defaults to logging.Logger()
}

// Result holds the output of a pipeline run.
type Result struct {
	Records    []ir.Record
	Invalid    int // lines that fell back to the model defaults
	OutOfGamut int // lines clamped into sRGB
}

// Run synchronizes every color line in data. A line holds the values of
// opts.From separated by whitespace or commas; RGB lines may instead hold
// a hex value or color name. Blank lines and lines starting with '#'
// followed by a space are skipped. Lines that cannot be read are converted
// with the model defaults and marked InvalidInput.
func Run(data []byte, opts Options) (*Result, error) {
	if !opts.From.Valid() {
		return nil, fmt.Errorf("source model: %w", dispatch.ErrUnknownModel)
	}
	log := opts.Logger
	if log == nil {
		log = logging.Logger()
	}
	session := dispatch.NewSession(dispatch.WithLogger(log))

	res := &Result{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if isComment(line) {
			continue
		}

		// 1. Parse the line into the source model's values
		values := parseValues(opts.From, line)

		// 2. Synchronize the three models
		r, err := session.Synchronize(opts.From, values...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if r.InvalidInput {
			log.Info("line fell back to defaults", "line", lineNo, "input", line)
			res.Invalid++
		}
		if r.OutOfGamut {
			res.OutOfGamut++
		}

		// 3. Flatten for the encoders
		rec := NewRecord(r)
		rec.Line = lineNo
		rec.Input = line
		res.Records = append(res.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, ErrNoColors
	}
	return res, nil
}

// NewRecord flattens a synchronization result.
func NewRecord(r dispatch.Result) ir.Record {
	return ir.Record{
		Source:       r.Source.String(),
		RGB:          [3]int{r.RGB.R, r.RGB.G, r.RGB.B},
		CMYK:         [4]int{r.CMYK.C, r.CMYK.M, r.CMYK.Y, r.CMYK.K},
		Lab:          [3]float64{r.Lab.L, r.Lab.A, r.Lab.B},
		Hex:          r.RGB.Hex(),
		InvalidInput: r.InvalidInput,
		OutOfGamut:   r.OutOfGamut,
	}
}

// isComment reports whether line carries no color. "#fff" is a color;
// "# note" and "#" are comments.
func isComment(line string) bool {
	if line == "" || line == "#" {
		return true
	}
	return strings.HasPrefix(line, "# ") || strings.HasPrefix(line, "#\t") || strings.HasPrefix(line, "//")
}

// parseValues splits line into numbers. Fields that are not numbers become
// NaN so the dispatcher substitutes defaults.
func parseValues(m color.Model, line string) []float64 {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if m == color.ModelRGB && len(fields) == 1 {
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			rgb, err := color.ParseRGB(fields[0])
			if err != nil {
				return []float64{math.NaN()}
			}
			return []float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)}
		}
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			v = math.NaN()
		}
		values[i] = v
	}
	return values
}

// ParseValues reads the values of model m from a command-line style string.
func ParseValues(m color.Model, s string) []float64 {
	return parseValues(m, strings.TrimSpace(s))
}
