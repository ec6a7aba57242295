package sim

import "math"

// FixedStep turns variable frame time into fixed simulation steps.
type FixedStep struct {
	Step       float64
	MaxBacklog float64
	acc        float64
}

func NewFixedStep(step, maxBacklog float64) *FixedStep {
	return &FixedStep{Step: step, MaxBacklog: maxBacklog}
}

// Advance adds real seconds to the backlog and runs step once per whole
// Step it holds. Backlog beyond MaxBacklog is dropped. It returns the
// number of steps run.
func (f *FixedStep) Advance(real float64, step func(dt float64)) int {
	if real > 0 {
		f.acc += real
	}
	if f.MaxBacklog > 0 {
		f.acc = math.Min(f.acc, f.MaxBacklog)
	}
	n := 0
	for f.acc >= f.Step {
		step(f.Step)
		f.acc -= f.Step
		n++
	}
	return n
}

// Alpha is how far between the last two steps the leftover backlog sits.
func (f *FixedStep) Alpha() float64 { return f.acc / f.Step }

func (f *FixedStep) Reset() { f.acc = 0 }
