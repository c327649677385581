package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/hexwall/config"
	"github.com/automoto/hexwall/headless/core"
	"github.com/automoto/hexwall/logger"
	"github.com/automoto/hexwall/shared/leveldata"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	tickRate := flag.Int("tickrate", 60, "Ticks per second")
	duration := flag.Duration("duration", 10*time.Second, "Run time (0 = until interrupted)")
	level := flag.String("level", "", "Path to a hexagonal .tmx level (default: ring)")
	empty := flag.Bool("empty", false, "Start without any tiles")
	churn := flag.Int("churn", 4, "Random tiles toggled per tick")
	radius := flag.Int("radius", 8, "Radius of the churned area")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	logger.Init()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var tiles []leveldata.TileSpawn
	switch {
	case *empty || config.Debug.Empty:
	case *level != "":
		data, err := leveldata.LoadLevel(os.DirFS(filepath.Dir(*level)), filepath.Base(*level))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		config.Grid.Orientation = data.Orientation
		tiles = data.Tiles
	default:
		tiles = leveldata.Ring(config.Level.RingRadius).Tiles
	}

	host := core.NewHost(tiles, core.Options{
		Churn:  *churn,
		Radius: *radius,
		Seed:   *seed,
	}, *tickRate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Log.Infof("Starting headless run with %d tiles (tick rate: %d/s, churn: %d)", len(tiles), *tickRate, *churn)
	host.Start()

	var timeout <-chan time.Time
	if *duration > 0 {
		timeout = time.After(*duration)
	}
	select {
	case <-sigChan:
		logger.Log.Info("Shutting down...")
	case <-timeout:
	}

	host.Stop()
	host.LogSummary()
}
