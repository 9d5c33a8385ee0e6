package sim

import (
	"fmt"
	"strings"
)

// RunReport summarises one simulation run for the headless runner.
type RunReport struct {
	Seed          uint64
	Ticks         int64
	UnitsAlive    int
	HostilesAlive int
	Stats         Stats
}

// Report captures the current run summary.
func (w *World) Report(seed uint64) RunReport {
	return RunReport{
		Seed:          seed,
		Ticks:         w.Tick,
		UnitsAlive:    w.AliveUnits(),
		HostilesAlive: w.AliveHostiles(),
		Stats:         w.Stats,
	}
}

// Format renders the report as fixed-width text.
func (r RunReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "seed=%d ticks=%d\n", r.Seed, r.Ticks)
	fmt.Fprintf(&sb, "  units alive     %2d / %d\n", r.UnitsAlive, MaxUnits)
	fmt.Fprintf(&sb, "  hostiles alive  %2d / %d\n", r.HostilesAlive, MaxHostiles)
	fmt.Fprintf(&sb, "  shots fired     %d (dropped %d)\n", r.Stats.ShotsFired, r.Stats.ShotsDropped)
	fmt.Fprintf(&sb, "  kills / losses  %d / %d\n", r.Stats.HostilesKilled, r.Stats.UnitsLost)
	fmt.Fprintf(&sb, "  path requests   %d (capped %d)\n", r.Stats.PathRequests, r.Stats.PathsCapped)
	return sb.String()
}
