package viz

import "math"

// values this close to a step are kept as given
const snapTolerance = 1e-9

// Slider is a bounded parameter control snapped to a fixed step.
type Slider struct {
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Value   float64
	Initial float64
}

// NewSlider starts the slider at value exactly. A value outside [min, max]
// widens the range to include it.
func NewSlider(label string, min, max, step, value float64) Slider {
	return Slider{
		Label:   label,
		Min:     math.Min(min, value),
		Max:     math.Max(max, value),
		Step:    step,
		Value:   value,
		Initial: value,
	}
}

// Set moves the slider to the nearest step inside its range.
func (s *Slider) Set(v float64) {
	k := math.Round((v - s.Min) / s.Step)
	if snapped := s.Min + k*s.Step; math.Abs(snapped-v) > snapTolerance {
		v = snapped
	}
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Nudge moves the slider by n steps.
func (s *Slider) Nudge(n int) {
	s.Set(s.Value + float64(n)*s.Step)
}

func (s *Slider) Reset() { s.Value = s.Initial }

// Fraction is the position of the slider in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}
