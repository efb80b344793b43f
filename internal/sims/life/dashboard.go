package life

import "fmt"

// Dashboard holds the counters shown next to the grid.
type Dashboard struct {
	Round    int
	Survival int
}

// Lines formats the dashboard for display.
func (d Dashboard) Lines() []string {
	return []string{
		fmt.Sprintf("Round: %d", d.Round),
		fmt.Sprintf("Survival: %d", d.Survival),
	}
}

// Phase is the lifecycle stage of a world.
type Phase uint8

const (
	PhaseSeeding Phase = iota
	PhaseStepping
	PhaseExtinct
)

func (p Phase) String() string {
	switch p {
	case PhaseSeeding:
		return "seeding"
	case PhaseStepping:
		return "stepping"
	case PhaseExtinct:
		return "extinct"
	default:
		return "unknown"
	}
}

// StatsLines formats the current dashboard for the HUD.
func (w *World) StatsLines() []string { return w.dash.Lines() }
