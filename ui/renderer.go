package ui

import (
	"fmt"
	"math"

	"stone-snake/game"
	"stone-snake/game/entity"
	"stone-snake/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/joonazan/vec2"
)

const (
	borderPadding = 10
	tileGap       = 0.05 // fraction of a tile left between neighbours
)

var background = rl.Color{R: 18, G: 18, B: 22, A: 255}

// Renderer paints a snapshot into the raylib window. It implements
// entity.Canvas for the snapshot's draw pass.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	graphWidth   int32
	graphHeight  int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32

	snap game.Snapshot
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 6
	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

func (r *Renderer) layout(snap game.Snapshot) {
	availableWidth := r.screenWidth - r.statsPanel - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2

	cellW := availableWidth / int32(snap.Grid.Width)
	cellH := availableHeight / int32(snap.Grid.Height)
	r.cellSize = min(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.gridWidth = r.cellSize * int32(snap.Grid.Width)
	r.gridHeight = r.cellSize * int32(snap.Grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.gridHeight) / 2
}

// Draw renders one frame. sm may be nil.
func (r *Renderer) Draw(snap game.Snapshot, sm *manager.StateManager) {
	r.UpdateDimensions()
	r.layout(snap)
	r.snap = snap

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridWidth+2, r.gridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridWidth, r.gridHeight, background)

	// Tiles hanging over an edge are drawn on both sides, clipped to the field.
	rl.BeginScissorMode(r.offsetX, r.offsetY, r.gridWidth, r.gridHeight)
	snap.Draw(r)
	rl.EndScissorMode()

	fontSize := min(r.screenHeight/40, r.statsPanel/10)
	r.drawStatsPanel(snap, sm, fontSize)
	r.drawOverlay(snap, fontSize*2)
	rl.EndDrawing()
}

// Tile draws a square of size tiles centred on the cell at pos.
func (r *Renderer) Tile(pos vec2.Vector, size float64, c entity.Color, alpha float64) {
	size -= tileGap
	half := size / 2
	side := int32(math.Round(size * float64(r.cellSize)))
	col := toRaylib(c, alpha)
	for _, p := range r.snap.Grid.SeamCopies(pos, half) {
		x, y := r.toScreen(p.X+0.5-half, p.Y+0.5-half)
		rl.DrawRectangle(x, y, side, side, col)
	}
}

// Dot draws a disc of radius tiles centred on the cell at pos.
func (r *Renderer) Dot(pos vec2.Vector, radius float64, c entity.Color, alpha float64) {
	if radius <= 0 {
		return
	}
	col := toRaylib(c, alpha)
	px := float32(radius * float64(r.cellSize))
	for _, p := range r.snap.Grid.SeamCopies(pos, radius) {
		x, y := r.toScreen(p.X+0.5, p.Y+0.5)
		rl.DrawCircle(x, y, px, col)
	}
}

func (r *Renderer) toScreen(x, y float64) (int32, int32) {
	return r.offsetX + int32(math.Round(x*float64(r.cellSize))),
		r.offsetY + int32(math.Round(y*float64(r.cellSize)))
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, sm *manager.StateManager, fontSize int32) {
	statsX := r.screenWidth - r.statsPanel + 5
	statsY := int32(borderPadding)
	lineHeight := fontSize + fontSize/2

	rl.DrawRectangle(statsX-5, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High:  %d", snap.HighScore),
		fmt.Sprintf("Length: %d", len(snap.Segments)),
		fmt.Sprintf("Speed: %.1fx", snap.Speed),
	}
	for _, l := range lines {
		rl.DrawText(l, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	statsY += lineHeight
	for _, l := range []string{"Arrows/WASD  move", "Shift/Space  boost", "P  pause", "R  restart"} {
		rl.DrawText(l, statsX, statsY, fontSize*3/4, rl.LightGray)
		statsY += lineHeight
	}

	if sm != nil {
		r.drawScoreGraph(sm.GetScoreHistory(), statsX, fontSize)
	}
}

// drawScoreGraph plots the last finals, newest on the right.
func (r *Renderer) drawScoreGraph(scores []int, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2
	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Last games", graphX, graphY-fontSize-5, fontSize, rl.White)
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	step := float32(r.graphWidth) / float32(manager.MaxScoreHistory-1)
	pointY := func(s int) int32 {
		return graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(s)/float32(maxScore))
	}
	for j := 1; j < len(scores); j++ {
		x1 := graphX + int32(step*float32(j-1))
		x2 := graphX + int32(step*float32(j))
		rl.DrawLine(x1, pointY(scores[j-1]), x2, pointY(scores[j]), rl.Green)
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot, fontSize int32) {
	var text string
	switch {
	case snap.Over:
		text = fmt.Sprintf("Game Over! Score %d - R to restart", snap.Score)
	case snap.Paused:
		text = "Paused"
	default:
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.gridWidth-w)/2,
		r.offsetY+r.gridHeight/2-fontSize/2,
		fontSize, rl.White)
}

func toRaylib(c entity.Color, alpha float64) rl.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}
