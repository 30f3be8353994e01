package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/guyjump/internal/domain/entity"
)

// Default world units covered by one terminal cell. Cells are about twice
// as tall as wide, so this keeps shapes roughly square.
const (
	DefaultCellW = 9.0
	DefaultCellH = 18.0
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	stylePortal = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleGuy    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Frame is everything drawn in one terminal frame
type Frame struct {
	Center    entity.Vec2 // world point drawn at the middle of the screen
	Guy       entity.Rect
	Obstacles []entity.Rect
	Portals   []entity.Rect
	Status    string
}

// Renderer draws frames onto a tcell screen with world Y pointing up
type Renderer struct {
	screen tcell.Screen
	CellW  float64
	CellH  float64
}

// NewRenderer creates a renderer with the default cell size
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, CellW: DefaultCellW, CellH: DefaultCellH}
}

// Draw clears the screen, draws f and shows it
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()
	// last row is the status line
	viewH := h - 1

	for _, o := range f.Obstacles {
		r.fill(f.Center, o, w, viewH, '#', styleWall)
	}
	for _, p := range f.Portals {
		r.fill(f.Center, p, w, viewH, 'O', stylePortal)
	}
	r.fill(f.Center, f.Guy, w, viewH, '@', styleGuy)

	if viewH >= 0 {
		for x := 0; x < w; x++ {
			ch := ' '
			if x < len(f.Status) {
				ch = rune(f.Status[x])
			}
			r.screen.SetContent(x, viewH, ch, nil, styleStatus)
		}
	}
	r.screen.Show()
}

// Cell returns the terminal cell holding world point p
func (r *Renderer) Cell(center, p entity.Vec2) (col, row int) {
	w, h := r.screen.Size()
	viewH := h - 1
	col = w/2 + int(math.Floor((p.X-center.X)/r.CellW))
	row = viewH/2 - int(math.Floor((p.Y-center.Y)/r.CellH))
	return col, row
}

// fill marks every visible cell whose area overlaps rect
func (r *Renderer) fill(center entity.Vec2, rect entity.Rect, w, h int, ch rune, style tcell.Style) {
	// max edges are exclusive
	c0, rowTop := r.Cell(center, entity.Vec2{X: rect.Min.X, Y: math.Nextafter(rect.Max.Y, math.Inf(-1))})
	c1, rowBottom := r.Cell(center, entity.Vec2{X: math.Nextafter(rect.Max.X, math.Inf(-1)), Y: rect.Min.Y})

	for row := max(rowTop, 0); row <= min(rowBottom, h-1); row++ {
		for col := max(c0, 0); col <= min(c1, w-1); col++ {
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
}
