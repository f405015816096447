package color

import (
	"fmt"
	"strings"
)

// Model identifies one of the user-facing color models.
type Model int

// Model constants. The zero value is not a valid model.
const (
	ModelRGB Model = iota + 1
	ModelCMYK
	ModelLab
)

// Models lists the supported models in display order.
var Models = []Model{ModelRGB, ModelCMYK, ModelLab}

// ParseModel converts a model name ("rgb", "cmyk" or "lab", any case) to a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return ModelRGB, nil
	case "cmyk":
		return ModelCMYK, nil
	case "lab":
		return ModelLab, nil
	default:
		return 0, fmt.Errorf("unknown color model: %q", s)
	}
}

// String returns the lower-case tag used by ParseModel.
func (m Model) String() string {
	switch m {
	case ModelRGB:
		return "rgb"
	case ModelCMYK:
		return "cmyk"
	case ModelLab:
		return "lab"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Arity returns the number of components a value of the model has,
// or 0 for an unknown model.
func (m Model) Arity() int {
	switch m {
	case ModelRGB, ModelLab:
		return 3
	case ModelCMYK:
		return 4
	default:
		return 0
	}
}

// Valid reports whether m is one of the supported models.
func (m Model) Valid() bool {
	return m.Arity() != 0
}

// ComponentNames returns the display names of the model's components.
func (m Model) ComponentNames() []string {
	switch m {
	case ModelRGB:
		return []string{"R", "G", "B"}
	case ModelCMYK:
		return []string{"C", "M", "Y", "K"}
	case ModelLab:
		return []string{"L", "a", "b"}
	default:
		return nil
	}
}
