package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

// Parameters reports the world and brush state for HUDs and status bars.
func (w *World) Parameters() core.ParameterSnapshot {
	counts := w.Counts()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.live.Width()),
				intParam("h", "Height", w.live.Height()),
				textParam("seed", "Seed", strconv.FormatInt(w.cfg.Seed, 10)),
				choiceParam("mode", "Mode", w.mode.String()),
				textParam("ticks", "Ticks", strconv.FormatUint(w.ticks, 10)),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				choiceParam("material", "Material", w.selected.String()),
				intParam("brush", "Brush radius", w.brush),
			},
		},
		{
			Name: "Cells",
			Params: []core.Parameter{
				intParam("count_sand", "Sand", counts[Sand]),
				intParam("count_water", "Water", counts[Water]),
				intParam("count_air", "Air", counts[Air]),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "material", Label: "Material", Type: core.ParamTypeChoice, Options: w.Tools()},
		{Key: "brush", Label: "Brush", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxBrush, HasMin: true, HasMax: true},
		{Key: "mode", Label: "Mode", Type: core.ParamTypeChoice, Options: []string{Sequential.String(), Synchronous.String()}},
	}
}

// SetIntParameter applies a HUD adjustment. Choice parameters take the option
// index.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "material":
		return w.SelectTool(value)
	case "brush":
		if value < 0 || value > MaxBrush {
			return false
		}
		w.brush = value
		return true
	case "mode":
		switch Mode(value) {
		case Sequential, Synchronous:
			w.mode = Mode(value)
			return true
		}
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func choiceParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeChoice, Value: value}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
