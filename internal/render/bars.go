package render

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/algoviz/internal/step"
)

// Bar is the presentation state of one array element.
type Bar struct {
	Value  int
	State  step.ElementState
	Dimmed bool
}

// Bars is the handle for array payloads: one bar per element, plus the
// range, target and auxiliary array of the current step.
type Bars struct {
	Frame

	Bars []Bar

	Low, High, Mid int
	Target         int
	HasTarget      bool
	FoundIndex     int
	Depth          int

	Aux      []int
	AuxLabel string
}

// NewBars returns a handle with n bars.
func NewBars(n int) *Bars {
	return &Bars{Bars: make([]Bar, n)}
}

// Caption implements Handle.
func (b *Bars) Caption() Frame { return b.Frame }

func (*Bars) isHandle() {}

// Max returns the tallest bar value, or 0.
func (b *Bars) Max() int {
	m := 0
	for _, bar := range b.Bars {
		m = max(m, bar.Value)
	}
	for _, v := range b.Aux {
		m = max(m, v)
	}
	return m
}

func renderBars(s step.Step, p *step.Array, h Handle, pos Position) error {
	b, ok := h.(*Bars)
	if !ok {
		return mismatch("a bars", h)
	}
	if len(p.Values) != len(b.Bars) {
		return fmt.Errorf("array has %d values, handle has %d bars", len(p.Values), len(b.Bars))
	}

	ranged := p.Low != step.Unset && p.High != step.Unset
	for i, v := range p.Values {
		b.Bars[i] = Bar{
			Value:  v,
			State:  step.ElementDefault,
			Dimmed: ranged && (i < p.Low || i > p.High),
		}
	}
	// Later marks take precedence over earlier ones.
	for _, m := range p.Marks {
		b.Bars[m.Index].State = m.State
		b.Bars[m.Index].Dimmed = false
	}
	if p.FoundIndex != step.Unset {
		b.Bars[p.FoundIndex].State = step.ElementFound
	}

	b.Low, b.High, b.Mid = p.Low, p.High, p.Mid
	b.Target, b.HasTarget = p.Target, p.HasTarget
	b.FoundIndex = p.FoundIndex
	b.Depth = p.Depth
	b.Aux = slices.Clone(p.Aux)
	b.AuxLabel = p.AuxLabel
	b.set(s, pos)
	return nil
}
