package core

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/shared/hexgrid"
	"github.com/automoto/hexwall/shared/leveldata"
	"github.com/automoto/hexwall/systems"
	"github.com/automoto/hexwall/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Totals accumulates pass statistics over a run.
type Totals struct {
	Ticks       int
	Passes      int
	Toggles     int
	Invalidated int
	Issues      int
	MaxPass     time.Duration
	TotalPass   time.Duration
}

// Options configures the random tile churn of a host.
type Options struct {
	// Churn is the number of random tiles toggled per tick.
	Churn int
	// Radius bounds the toggled tiles around the grid origin.
	Radius int
	Seed   int64
}

// Host runs the boundary pipeline without a window, toggling random tiles
// every tick to exercise incremental recomputation.
type Host struct {
	ecs    *ecs.ECS
	opts   Options
	rng    *rand.Rand
	area   []hexgrid.Hex
	totals Totals
	loop   *GameLoop
	log    *logrus.Entry
}

func NewHost(tiles []leveldata.TileSpawn, opts Options, tickRate int) *Host {
	h := &Host{
		ecs:  ecs.NewECS(donburi.NewWorld()),
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		area: hexgrid.Range(hexgrid.Hex{}, opts.Radius),
		log:  logger.System("headless"),
	}
	h.loop = NewGameLoop(h, tickRate)

	h.ecs.AddSystem(h.churn)
	h.ecs.AddSystem(h.boundaries)
	h.ecs.AddSystem(systems.ReapTiles)

	factory.CreateSpace(h.ecs, cfg.Space.Width, cfg.Space.Height, cfg.Space.CellSize, cfg.Space.CellSize)
	factory.CreateTileIndex(h.ecs)
	factory.CreateBoundaryRoot(h.ecs)
	systems.SpawnTiles(h.ecs, tiles)
	return h
}

// Start runs the game loop in the background.
func (h *Host) Start() {
	go h.loop.Run()
}

// Stop stops the game loop started by Start and waits for it to finish.
func (h *Host) Stop() {
	h.loop.Stop()
	h.loop.Wait()
}

// Running reports whether the game loop is still ticking.
func (h *Host) Running() bool {
	return h.loop.Running()
}

// Tick runs one frame.
func (h *Host) Tick() {
	h.ecs.Update()
	h.totals.Ticks++
}

func (h *Host) Totals() Totals {
	return h.totals
}

func (h *Host) World() donburi.World {
	return h.ecs.World
}

func (h *Host) churn(e *ecs.ECS) {
	if len(h.area) == 0 {
		return
	}
	for range h.opts.Churn {
		systems.ToggleTile(e, h.area[h.rng.Intn(len(h.area))])
		h.totals.Toggles++
	}
}

func (h *Host) boundaries(e *ecs.ECS) {
	stats, ran := systems.StepBoundaries(e)
	if !ran || stats == (systems.PassStats{}) {
		return
	}
	h.totals.Passes++
	h.totals.Invalidated += stats.Invalidated
	h.totals.Issues += stats.Issues
	h.totals.TotalPass += stats.Duration
	h.totals.MaxPass = max(h.totals.MaxPass, stats.Duration)
}

// LogSummary logs the totals of the run.
func (h *Host) LogSummary() {
	t := h.totals
	var avg time.Duration
	if t.Passes > 0 {
		avg = t.TotalPass / time.Duration(t.Passes)
	}
	h.log.WithFields(logrus.Fields{
		"ticks":       t.Ticks,
		"passes":      t.Passes,
		"toggles":     t.Toggles,
		"invalidated": t.Invalidated,
		"issues":      t.Issues,
		"loops":       len(systems.Boundaries(h.ecs.World)),
		"tiles":       factory.TileIndexOf(h.ecs.World).Len(),
		"avgPass":     avg,
		"maxPass":     t.MaxPass,
	}).Info("run summary")
}
