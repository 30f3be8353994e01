package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/guyjump/internal/application/state"
	"github.com/younwookim/guyjump/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPortal   = color.RGBA{200, 100, 220, 255}
	colorGuy      = color.RGBA{100, 200, 100, 255}
	colorGuyFly   = color.RGBA{100, 180, 230, 255}
	colorBox      = color.RGBA{255, 255, 0, 200}
	colorGround   = color.RGBA{255, 80, 80, 200}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
	debugLineSize = 1.0
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if p.sim == nil || p.state == state.StateLoading {
		p.drawCentered(screen, "Loading...")
		return
	}

	for _, o := range p.sim.Obstacles() {
		p.fillRect(screen, o.Rect(), colorWall)
	}
	for _, portal := range p.sim.Portals() {
		p.fillRect(screen, portal.Rect(), colorPortal)
		x, y := p.camera.ToScreen(portal.Position.Truncate())
		ebitenutil.DebugPrintAt(screen, portal.Target, int(x)-len(portal.Target)*3, int(y)-28)
	}
	p.drawGuy(screen)

	if p.debug {
		p.drawDebug(screen)
	}

	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

// drawGuy draws the eased silhouette, bottom aligned with the physics box
func (p *Playing) drawGuy(screen *ebiten.Image) {
	view := p.sim.View()
	box := view.Rect
	center := entity.Vec2{X: box.Center().X, Y: box.Min.Y + p.drawSize.Y/2}

	c := colorGuy
	if view.Flying {
		c = colorGuyFly
	}
	p.fillRect(screen, entity.RectFromCenter(center, p.drawSize), c)
}

// drawDebug outlines every collision box and the last ground height
func (p *Playing) drawDebug(screen *ebiten.Image) {
	for _, o := range p.sim.Obstacles() {
		p.strokeRect(screen, o.Rect(), colorBox)
	}
	for _, portal := range p.sim.Portals() {
		p.strokeRect(screen, portal.Rect(), colorBox)
	}
	view := p.sim.View()
	p.strokeRect(screen, view.Rect, colorBox)

	if view.Grounded {
		x0, y := p.camera.ToScreen(entity.Vec2{X: view.Rect.Min.X - 10, Y: view.GroundY})
		x1, _ := p.camera.ToScreen(entity.Vec2{X: view.Rect.Max.X + 10, Y: view.GroundY})
		ebitenutil.DrawLine(screen, x0, y, x1, y, colorGround)
	}

	info := fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f\ngrounded %v groundY %.1f %s\nlast jump %s",
		view.Position.X, view.Position.Y, view.Velocity.X, view.Velocity.Y,
		view.Grounded, view.GroundY, view.Silhouette, p.lastReport.Outcome)
	ebitenutil.DebugPrintAt(screen, info, 4, 20)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("%s | Arrows/WASD: Move | Space: Jump | `: Fly | Tab: Boxes | Enter: Pause", p.level)
	if p.recorder != nil {
		status += fmt.Sprintf(" | REC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, status)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorOverlay)
	p.drawCentered(screen, "PAUSED\n\nEnter: resume\nEnter+Backspace: quit")
}

func (p *Playing) drawCentered(screen *ebiten.Image, text string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, text, w/2-50, h/2-20)
}

func (p *Playing) fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	x, y, w, h := p.camera.RectToScreen(r)
	ebitenutil.DrawRect(screen, x, y, w, h, c)
}

func (p *Playing) strokeRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	x, y, w, h := p.camera.RectToScreen(r)
	ebitenutil.DrawRect(screen, x, y, w, debugLineSize, c)
	ebitenutil.DrawRect(screen, x, y+h-debugLineSize, w, debugLineSize, c)
	ebitenutil.DrawRect(screen, x, y, debugLineSize, h, c)
	ebitenutil.DrawRect(screen, x+w-debugLineSize, y, debugLineSize, h, c)
}
