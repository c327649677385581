package core

import (
	"sync/atomic"
	"time"

	"github.com/automoto/hexwall/logger"
)

type GameLoop struct {
	host     *Host
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	done     chan struct{}
}

func NewGameLoop(host *Host, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		host:     host,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run ticks the host until Stop is called. It blocks.
func (g *GameLoop) Run() {
	defer close(g.done)
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Log.WithField("tickRate", g.tickRate).Info("game loop started")

	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			logger.Log.Info("game loop stopped")
			return
		case <-ticker.C:
			g.host.Tick()
		}
	}
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// Wait blocks until Run has returned.
func (g *GameLoop) Wait() {
	<-g.done
}
