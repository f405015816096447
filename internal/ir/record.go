package ir

// Record is the flat representation of one synchronized color, passed from
// the batch pipeline to the output encoders.
type Record struct {
	Line         int        `json:"line,omitempty"`
	Source       string     `json:"source"`
	Input        string     `json:"input,omitempty"`
	RGB          [3]int     `json:"rgb"`
	CMYK         [4]int     `json:"cmyk"`
	Lab          [3]float64 `json:"lab"`
	Hex          string     `json:"hex"`
	InvalidInput bool       `json:"invalid_input,omitempty"`
	OutOfGamut   bool       `json:"out_of_gamut,omitempty"`
}
