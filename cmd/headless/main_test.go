package main

import (
	"strings"
	"testing"

	"github.com/voidforge/skirmish/internal/sim"
)

func TestRunOnce_AdvancesAndReports(t *testing.T) {
	r := runOnce(42, 600)
	if r.Seed != 42 {
		t.Fatalf("report seed = %d, want 42", r.Seed)
	}
	if r.Ticks != 600 {
		t.Fatalf("report ticks = %d, want 600", r.Ticks)
	}
	if r.Stats.PathRequests != sim.MaxUnits {
		t.Fatalf("path requests = %d, want %d", r.Stats.PathRequests, sim.MaxUnits)
	}
}

func TestAggregate_CountsClearedRuns(t *testing.T) {
	reports := []sim.RunReport{
		{UnitsAlive: 4, HostilesAlive: 0, Stats: sim.Stats{HostilesKilled: 24}},
		{UnitsAlive: 0, HostilesAlive: 3, Stats: sim.Stats{UnitsLost: 4}},
	}
	out := aggregate(reports)
	if !strings.Contains(out, "cleared runs    1 / 2") {
		t.Fatalf("aggregate missing cleared-run count:\n%s", out)
	}
	if !strings.Contains(out, "total kills     24   total losses 4") {
		t.Fatalf("aggregate missing totals:\n%s", out)
	}
}
