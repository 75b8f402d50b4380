//go:build ebiten

package app

import (
	"image/color"

	"agelife/internal/render"
	"agelife/internal/ui"
	"agelife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const gridTop = 10

var pageColor = color.RGBA{R: 8, G: 8, B: 10, A: 255}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	screenW, screenH int
	cellSize         int
	originX, originY int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller) *Game {
	return &Game{
		ctl:     ctl,
		painter: render.NewGridPainter(),
		hud:     ui.NewHUD(ctl),
		overlay: ui.NewOverlay(),
	}
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctl.Randomize(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ctl.SetInterval(g.ctl.Interval() - IntervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.ctl.SetInterval(g.ctl.Interval() + IntervalStep)
	}

	g.overlay.Update()
	if err := g.hud.Update(); err != nil {
		return err
	}
	g.updatePaint()

	g.ctl.Tick()
	return nil
}

func (g *Game) updatePaint() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctl.EndPaint()
		return
	}
	x, y := ebiten.CursorPosition()
	if g.hud.Contains(x, y) {
		return
	}
	grid := g.ctl.Grid()
	r, c, ok := life.CellAt(x-g.originX, y-g.originY, g.cellSize, grid.Rows, grid.Cols)
	if !ok {
		return
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.BeginPaint(r, c)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.ctl.Painting():
		g.ctl.ContinuePaint(r, c)
	}
}

// Draw renders the grid, the legend and the control bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(pageColor)
	g.painter.Blit(screen, g.ctl.Grid(), g.cellSize, float64(g.originX), float64(g.originY))
	g.overlay.Draw(screen, g.originX, g.originY)
	g.hud.Draw(screen)
}

// Layout tracks the window size and recomputes the cell size so the grid
// fills the space left by the padding.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth == g.screenW && outsideHeight == g.screenH {
		return outsideWidth, outsideHeight
	}
	g.screenW, g.screenH = outsideWidth, outsideHeight
	grid := g.ctl.Grid()
	g.cellSize = max(life.CellSize(outsideWidth, outsideHeight, grid.Cols, grid.Rows), 1)
	g.originX = max((outsideWidth-grid.Cols*g.cellSize)/2, 0)
	g.originY = gridTop
	g.hud.Relayout(outsideHeight - ui.BarHeight)
	return outsideWidth, outsideHeight
}
