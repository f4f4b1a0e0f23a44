package ui

import (
	"image"
	"slices"
	"strconv"

	"falling-sand/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

// Controls holds the adjustable parameters of a simulation together with the
// layout of their -/+ buttons inside a panel.
type Controls struct {
	states []controlState
	setter core.IntParameterSetter
}

type controlState struct {
	control core.ParameterControl
	value   string

	// intValue is the number for int controls and the option index for
	// choice controls.
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewControls collects the controls sim exposes and lays them out for a
// panel of the given width.
func NewControls(sim core.Sim, width int) *Controls {
	c := &Controls{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.states = append(c.states, controlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		c.setter = setter
	}
	c.layout(width)
	return c
}

// Len reports the number of controls.
func (c *Controls) Len() int { return len(c.states) }

// Value returns the displayed value of the control with the given key.
func (c *Controls) Value(key string) (string, bool) {
	for _, s := range c.states {
		if s.control.Key == key {
			return s.value, s.hasValue
		}
	}
	return "", false
}

// Refresh copies current values from snap.
func (c *Controls) Refresh(snap core.ParameterSnapshot) {
	for i := range c.states {
		s := &c.states[i]
		s.hasValue = false
		s.value = "--"
		param, ok := snap.Lookup(s.control.Key)
		if !ok {
			continue
		}
		switch s.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			s.intValue = parsed
			s.value = param.Value
			s.hasValue = true
		case core.ParamTypeChoice:
			idx := slices.Index(s.control.Options, param.Value)
			if idx < 0 {
				continue
			}
			s.intValue = idx
			s.value = param.Value
			s.hasValue = true
		}
	}
}

// Click applies the button under panel coordinates (px, py), if any.
func (c *Controls) Click(px, py int) bool {
	for i := range c.states {
		s := &c.states[i]
		if !s.hasValue {
			continue
		}
		if image.Pt(px, py).In(s.minusRect) {
			return c.adjust(s, -1)
		}
		if image.Pt(px, py).In(s.plusRect) {
			return c.adjust(s, 1)
		}
	}
	return false
}

func (c *Controls) adjust(s *controlState, direction int) bool {
	target, ok := c.target(s, direction)
	if !ok || !c.setter.SetIntParameter(s.control.Key, target) {
		return false
	}
	s.intValue = target
	switch s.control.Type {
	case core.ParamTypeChoice:
		s.value = s.control.Options[target]
	default:
		s.value = strconv.Itoa(target)
	}
	return true
}

// target returns the value one step in direction, or false when the control
// is already at that end of its range.
func (c *Controls) target(s *controlState, direction int) (int, bool) {
	if c.setter == nil || direction == 0 || !s.hasValue {
		return 0, false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		step := s.control.Step
		if step <= 0 {
			step = 1
		}
		t := s.intValue + direction*step
		if s.control.HasMin && t < s.control.Min {
			return 0, false
		}
		if s.control.HasMax && t > s.control.Max {
			return 0, false
		}
		return t, true
	case core.ParamTypeChoice:
		t := s.intValue + direction
		if t < 0 || t >= len(s.control.Options) {
			return 0, false
		}
		return t, true
	}
	return 0, false
}

func (c *Controls) layout(width int) {
	for i := range c.states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		c.states[i].top = top
		c.states[i].minusRect = minusRect
		c.states[i].plusRect = plusRect
	}
}
