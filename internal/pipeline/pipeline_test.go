package pipeline

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/dispatch"
	"github.com/davesmith10/tricolor/internal/ir"
	"github.com/davesmith10/tricolor/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func run(t *testing.T, input string, from color.Model) *Result {
	t.Helper()
	res, err := Run([]byte(input), Options{From: from})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestRun_RGB(t *testing.T) {
	input := `# palette
128 64 32
255,255,255

tomato
#000
`
	res := run(t, input, color.ModelRGB)

	want := []ir.Record{
		{Line: 2, Source: "rgb", Input: "128 64 32", RGB: [3]int{128, 64, 32}, CMYK: [4]int{0, 50, 75, 50}, Hex: "#804020"},
		{Line: 3, Source: "rgb", Input: "255,255,255", RGB: [3]int{255, 255, 255}, CMYK: [4]int{0, 0, 0, 0}, Hex: "#ffffff"},
		{Line: 5, Source: "rgb", Input: "tomato", RGB: [3]int{255, 99, 71}, CMYK: [4]int{0, 61, 72, 0}, Hex: "#ff6347"},
		{Line: 6, Source: "rgb", Input: "#000", RGB: [3]int{0, 0, 0}, CMYK: [4]int{0, 0, 0, 100}, Hex: "#000000"},
	}
	if d := cmp.Diff(want, res.Records, cmpopts.IgnoreFields(ir.Record{}, "Lab")); d != "" {
		t.Errorf("records mismatch (-want +got):\n%s", d)
	}
	if res.Invalid != 0 || res.OutOfGamut != 0 {
		t.Errorf("unexpected counters: invalid=%d out-of-gamut=%d", res.Invalid, res.OutOfGamut)
	}
}

func TestRun_LabCounters(t *testing.T) {
	input := "34.72 25 31.37\n50 127 -128\nfifty 0 0\n"
	res := run(t, input, color.ModelLab)

	if len(res.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(res.Records))
	}
	if res.Records[0].Hex != "#804020" {
		t.Errorf("line 1 hex = %s, want #804020", res.Records[0].Hex)
	}
	if !res.Records[1].OutOfGamut || res.OutOfGamut != 1 {
		t.Errorf("line 2 should be out of gamut")
	}
	if !res.Records[2].InvalidInput || res.Invalid != 1 {
		t.Errorf("line 3 should be invalid")
	}
	if got := res.Records[2].Lab; got != [3]float64{53.2, 0, 0} {
		t.Errorf("line 3 lab = %v, want defaults", got)
	}
}

func TestRun_CMYKWrongArity(t *testing.T) {
	res := run(t, "10 20 30\n", color.ModelCMYK)
	rec := res.Records[0]
	if !rec.InvalidInput {
		t.Fatal("expected invalid input for three CMYK values")
	}
	if rec.CMYK != [4]int{0, 0, 0, 50} {
		t.Errorf("cmyk = %v, want defaults", rec.CMYK)
	}
}

func TestRun_LogsInvalidLines(t *testing.T) {
	h := logging.NewBufferedHandler(nil)
	_, err := Run([]byte("nope\n"), Options{From: color.ModelRGB, Logger: slog.New(h)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !h.Contains("line fell back to defaults") {
		t.Error("expected a log entry for the invalid line")
	}
}

func TestRun_NoColors(t *testing.T) {
	_, err := Run([]byte("# nothing\n\n"), Options{From: color.ModelRGB})
	if !errors.Is(err, ErrNoColors) {
		t.Fatalf("expected ErrNoColors, got %v", err)
	}
}

func TestRun_UnknownModel(t *testing.T) {
	_, err := Run([]byte("1 2 3"), Options{})
	if !errors.Is(err, dispatch.ErrUnknownModel) {
		t.Fatalf("expected ErrUnknownModel, got %v", err)
	}
}

func TestParseValues(t *testing.T) {
	got := ParseValues(color.ModelCMYK, " 1, 2 3\t4 ")
	if d := cmp.Diff([]float64{1, 2, 3, 4}, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
