package main

import (
	"fmt"
	"os"
	"time"

	"stone-snake/app"
	"stone-snake/game"
	"stone-snake/game/entity"
	"stone-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	opts, err := app.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
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
		logger.WithError(err).Fatal("Could not start game")
	}
	g.SetHighScore(sm.GetHighScore())

	width := int32(opts.Config.Width*opts.CellSize) + 2*10
	height := int32(opts.Config.Height*opts.CellSize) + 2*10
	rl.InitWindow(width+width/5, height, "Stone Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		switch ui.PressedCommand() {
		case ui.CommandQuit:
			return
		case ui.CommandPause:
			g.TogglePause()
		case ui.CommandReset:
			g.Reset()
		}
		if dir := ui.PressedDirection(); dir.Valid() {
			g.QueueDirection(dir)
		}
		g.SetAccelerate(ui.AccelerateHeld())

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for _, ev := range g.Update(dt) {
			if ev.Kind == entity.EventGameOver {
				app.RecordGameOver(g, sm, logger)
			}
		}

		renderer.Draw(g.Snapshot(), sm)
	}
}
