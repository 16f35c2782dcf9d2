package tectonics

import "math"

// ConvergenceCurve shapes how quickly a plate boundary's uplift reaches
// its equilibrium target, keyed on accumulated geological progress in
// [0,1]. Heightmap synthesis evaluates it at each plate's normalized age
// to ease stress uplift in.
type ConvergenceCurve interface {
	Evaluate(progress float64) float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// LinearConvergence approaches the target at a constant rate.
type LinearConvergence struct{}

func (LinearConvergence) Evaluate(progress float64) float64 { return clamp01(progress) }

// SCurveConvergence eases in and out using a normalized logistic function,
// appropriate for a long, slow-building mountain range rather than an
// instant jump to equilibrium elevation.
type SCurveConvergence struct {
	Steepness float64
}

// NewSCurveConvergence returns an SCurveConvergence with the default steepness.
func NewSCurveConvergence() SCurveConvergence {
	return SCurveConvergence{Steepness: 10.0}
}

func (c SCurveConvergence) Evaluate(progress float64) float64 {
	progress = clamp01(progress)
	k := c.Steepness
	if k == 0 {
		k = 10.0
	}
	sigmoid := 1.0 / (1.0 + math.Exp(-k*(progress-0.5)))
	minVal := 1.0 / (1.0 + math.Exp(k*0.5))
	maxVal := 1.0 / (1.0 + math.Exp(-k*0.5))
	return clamp01((sigmoid - minVal) / (maxVal - minVal))
}

// ExponentialConvergence starts slow and accelerates, matching young
// boundaries that take a long time to express relief before mountain
// building runs away.
type ExponentialConvergence struct {
	Exponent float64
}

func (c ExponentialConvergence) Evaluate(progress float64) float64 {
	progress = clamp01(progress)
	exp := c.Exponent
	if exp == 0 {
		exp = 2.0
	}
	return math.Pow(progress, exp)
}
