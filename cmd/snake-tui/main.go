package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"stone-snake/app"
	"stone-snake/game"
	"stone-snake/game/entity"
	"stone-snake/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

const frame = 16 * time.Millisecond

func main() {
	opts, err := app.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// The screen owns stderr while running.
	if opts.LogFile == "" {
		opts.LogFile = filepath.Join(filepath.Dir(opts.DataPath), "snake-tui.log")
	}
	logger, closeLog, err := app.NewLogger(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	sm := app.LoadStats(opts.DataPath, logger)
	g, err := game.New(opts.Config, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g.SetHighScore(sm.GetHighScore())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	run(screen, g, func() { app.RecordGameOver(g, sm, logger) })
}

func run(screen tcell.Screen, g *game.Game, onGameOver func()) {
	canvas := terminal.NewCanvas(screen)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(screen, events)

	var boost terminal.Boost
	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, dir := terminal.Translate(ev)
				switch action {
				case terminal.ActionQuit:
					return
				case terminal.ActionMove:
					g.QueueDirection(dir)
				case terminal.ActionBoost:
					boost.Press(time.Now())
				case terminal.ActionPause:
					g.TogglePause()
				case terminal.ActionReset:
					g.Reset()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			g.SetAccelerate(boost.Held(now))
			for _, ev := range g.Update(now.Sub(last)) {
				if ev.Kind == entity.EventGameOver {
					onGameOver()
				}
			}
			last = now
			canvas.Draw(g.Snapshot())
		}
	}
}

// pollEvents forwards screen events until the screen is finalized.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}
