package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
)

// Parameter is the current value of one driver setting, pre-formatted.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// FloatParam builds a float Parameter.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// ParameterControl describes an adjustable setting shown on the HUD with
// minus and plus buttons.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step     float64
	Min, Max float64
}

// AdjustInt moves v by direction steps, clamped to the control's bounds.
// changed is false when the clamp leaves the value where it was.
func (c ParameterControl) AdjustInt(v, direction int) (next int, changed bool) {
	step := int(math.Round(c.Step))
	if step <= 0 {
		step = 1
	}
	next = v + direction*step
	next = max(next, int(math.Round(c.Min)))
	next = min(next, int(math.Round(c.Max)))
	return next, next != v
}

// AdjustFloat is AdjustInt for float controls.
func (c ParameterControl) AdjustFloat(v float64, direction int) (next float64, changed bool) {
	step := c.Step
	if step <= 0 {
		step = 0.05
	}
	next = v + float64(direction)*step
	next = math.Max(next, c.Min)
	next = math.Min(next, c.Max)
	// Snap to the step grid so repeated clicks do not accumulate drift.
	next = math.Round(next/step) * step
	return next, math.Abs(next-v) > 1e-9
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls
// together with their current values.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
	Parameters() []Parameter
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
