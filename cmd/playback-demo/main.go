// Command playback-demo walks a player through a scripted session with two
// observers attached, printing what each observer receives.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/tunedeck/playback/observe"
	"github.com/tunedeck/playback/player"
)

// Track is the demo's payload type. The player never inspects it.
type Track struct {
	Title    string
	Duration string
}

func main() {
	var (
		configFile = flag.String("config", "", "Path to player config JSON file (optional)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	cfg := player.DefaultConfig()
	if *configFile != "" {
		loaded, err := player.Load(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	hooks := player.Hooks[Track]{
		OnStart: func(t Track) { fmt.Printf("engine: start %q\n", t.Title) },
		OnPause: func(t Track) { fmt.Printf("engine: pause %q\n", t.Title) },
		OnStop:  func() { fmt.Println("engine: stop") },
	}

	p, err := player.New(&cfg, player.WithHooks(hooks), player.WithLogger[Track](logger))
	if err != nil {
		log.Fatalf("Failed to create player: %v", err)
	}

	a := namedObserver("display")
	b := namedObserver("history")
	refA := observe.Weak[Track](a)
	refB := observe.Weak[Track](b)

	p.AddObserver(refA)
	p.AddObserver(refB)

	songOne := Track{Title: "Blue in Green", Duration: "5:37"}
	songTwo := Track{Title: "So What", Duration: "9:22"}

	p.Activate(songOne)
	p.Pause()
	p.Stop()

	p.RemoveObserver(refA)
	p.Activate(songTwo)
	p.Stop()

	// The registry holds only weak refs; keep the observers alive until the
	// script is done.
	runtime.KeepAlive(a)
	runtime.KeepAlive(b)
}

// namedObserver builds an observer that prints every notification it gets.
func namedObserver(name string) *observe.Funcs[Track] {
	return &observe.Funcs[Track]{
		Activated: func(t Track) { fmt.Printf("%s: now playing %q (%s)\n", name, t.Title, t.Duration) },
		Paused:    func(t Track) { fmt.Printf("%s: paused %q\n", name, t.Title) },
		Stopped:   func() { fmt.Printf("%s: stopped\n", name) },
	}
}
