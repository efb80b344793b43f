package life

import (
	"strconv"

	"mad-life/internal/core"
)

// Parameters describes the configuration for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("half", "Half length", w.cfg.Half),
				intParam("cells", "Cells", w.grid.Len()),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				intParam("seed_count", "Seed count", w.cfg.SeedCount),
				stringParam("seed_region", "Seed region", string(w.cfg.Region)),
			},
		},
		{
			Name: "Stepper",
			Params: []core.Parameter{
				intParam("workers", "Workers", w.cfg.Workers),
				stringParam("phase", "Phase", w.phase.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
