package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/stride/assets/clips"
	"github.com/automoto/stride/config"
	"github.com/automoto/stride/sim"
)

func main() {
	tickRate := flag.Int("tickrate", config.C.TickRate, "Simulation tick rate (updates per second)")
	table := flag.String("clips", "", "Clip table YAML file (empty = embedded locomotion table)")
	reportEvery := flag.Int("report", config.DistanceMatch.ReportEvery, "Ticks between snapshot reports (0 = never)")
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	fast := flag.Bool("fast", false, "Run ticks back to back instead of in real time (requires -ticks)")
	flag.Parse()

	lib, err := loadClips(*table)
	if err != nil {
		log.Fatalf("Failed to load clips: %v", err)
	}

	s, err := sim.New(lib, *tickRate)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	loop := sim.NewLoop(s, *tickRate, *ticks, *reportEvery, report)

	if *fast {
		if *ticks <= 0 {
			log.Fatal("-fast requires -ticks")
		}
		loop.RunFast()
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Starting stride (tick rate: %d/s, clips: %d)", *tickRate, lib.Len())
	loop.Run()
}

func loadClips(path string) (*clips.Library, error) {
	if path == "" {
		return clips.LoadDefault()
	}
	return clips.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func report(s *sim.Simulation) {
	for _, snap := range s.Snapshots() {
		log.Printf("[sim] tick %d %s", s.Ticks(), snap)
	}
}
