package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/voidforge/skirmish/internal/sim"
)

// maxFrameDt caps the real time consumed per rendered frame so a long stall
// (window drag, debugger pause) does not unleash a burst of catch-up ticks.
const maxFrameDt = 0.25

// App adapts the fixed-step simulation to the ebiten frame loop. Rendering
// runs at whatever rate the display wants; Step always advances in TickDt
// quanta via the accumulator.
type App struct {
	world   *sim.World
	seed    uint64
	publish func(sim.Snapshot)

	last    time.Time
	started bool
	acc     float64

	prevLeft bool
	reset    button
}

// New builds the app around a fresh world. publish may be nil; when set it
// receives a snapshot every frame (the observer server feed).
func New(seed uint64, publish func(sim.Snapshot)) *App {
	return &App{
		world:   sim.NewWorld(seed),
		seed:    seed,
		publish: publish,
		reset:   resetButton(),
	}
}

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	if !a.started {
		a.started = true
		a.last = now
	}
	dt := now.Sub(a.last).Seconds()
	a.last = now
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !a.prevLeft {
		if a.reset.contains(mx, my) {
			a.world = sim.NewWorld(a.seed)
			a.acc = 0
		} else {
			a.world.IssueMove(float64(mx), float64(my))
		}
	}
	a.prevLeft = left

	in := sim.StepInput{
		Fire: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		AimX: float64(mx),
		AimY: float64(my),
	}

	a.acc += dt
	for a.acc >= sim.TickDt {
		a.world.Step(in)
		a.acc -= sim.TickDt
	}
	a.world.AmbientHostileFire()

	if a.publish != nil {
		a.publish(a.world.Snapshot())
	}
	return nil
}

func (a *App) Layout(_, _ int) (int, int) {
	return sim.WorldW, sim.WorldH
}
