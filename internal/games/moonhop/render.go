package moonhop

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/moonhop/internal/core"
	"github.com/vovakirdan/moonhop/internal/games/moonhop/world"
)

const (
	hudHeight = 2
	minCols   = 20
	minRows   = 12
	// Terminal cells are about twice as tall as wide.
	cellAspect = 2.0
)

// playfield is the screen area the world is projected onto.
type playfield struct {
	dst  *core.Screen
	vp   core.Viewport
	offX int
	offY int
}

func (p playfield) put(col, row int, r rune, c core.Color) {
	if col < 0 || col >= p.vp.Cols || row < 0 || row >= p.vp.Rows {
		return
	}
	p.dst.SetColored(p.offX+col, p.offY+row, r, c)
}

func (p playfield) hline(col, row, n int, r rune, c core.Color) {
	for i := 0; i < n; i++ {
		p.put(col+i, row, r, c)
	}
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minCols || dst.Height() < minRows {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal", core.ColorGray)
		return
	}

	rows := dst.Height() - hudHeight
	cols := min(dst.Width(), int(math.Round(float64(rows)*world.CanvasWidth/world.CanvasHeight*cellAspect)))
	pf := playfield{
		dst: dst,
		vp: core.Viewport{
			WorldW: world.CanvasWidth,
			WorldH: world.CanvasHeight,
			Cols:   cols,
			Rows:   rows,
			Top:    g.w.Camera.Y,
		},
		offX: (dst.Width() - cols) / 2,
		offY: hudHeight,
	}

	g.renderStars(pf)
	g.renderPlatforms(pf)
	g.renderMoon(pf)
	g.renderEels(pf)
	g.renderActor(pf)
	g.renderWater(pf)
	g.renderFrame(pf)
	g.renderHUD(dst, pf)
	g.renderOverlay(dst)
}

var starGlyphs = [world.StarKinds]struct {
	r rune
	c core.Color
}{
	{'.', core.ColorGray},
	{'·', core.ColorWhite},
	{'*', core.ColorBrightYellow},
}

func (g *Game) renderStars(pf playfield) {
	for _, s := range g.w.Stars {
		glyph := starGlyphs[min(max(s.Kind, 0), world.StarKinds-1)]
		pf.put(pf.vp.Col(s.X), pf.vp.Row(s.Y), glyph.r, glyph.c)
	}
}

func (g *Game) renderPlatforms(pf playfield) {
	for i, p := range g.w.Platforms {
		col, row := pf.vp.Col(p.X), pf.vp.Row(p.Y)
		width := max(1, pf.vp.Col(p.Right())-col)

		if i == 0 {
			pf.hline(col, row, width, '▀', core.ColorGreen)
			for y := row + 1; y < pf.vp.Rows; y++ {
				pf.hline(col, y, width, '▓', core.ColorGray)
			}
			continue
		}

		switch p.Type {
		case world.PlatformIce:
			pf.hline(col, row, width, '▒', core.ColorBrightCyan)
		case world.PlatformCaterpillar:
			// Tread pattern scrolls with the offset.
			phase := int(math.Floor(p.CaterpillarOffset / 6))
			for x := 0; x < width; x++ {
				r := '▚'
				if (x+phase)%2 == 0 {
					r = '▞'
				}
				pf.put(col+x, row, r, core.ColorOrange)
			}
		case world.PlatformMoving:
			pf.hline(col, row, width, '■', core.ColorMagenta)
			pf.put(col-1, row, '<', core.ColorGray)
			pf.put(col+width, row, '>', core.ColorGray)
		default:
			pf.hline(col, row, width, '█', core.ColorWhite)
		}
	}
}

func (g *Game) renderMoon(pf playfield) {
	m := g.w.Moon
	r := pf.vp.Project(m.X, m.Y, m.Size, m.Size)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			pf.put(x, y, 'O', core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderEels(pf playfield) {
	for _, e := range g.w.Eels {
		if e.Collected {
			continue
		}
		glyph := '~'
		switch {
		case e.Rotation > 0.15:
			glyph = '\\'
		case e.Rotation < -0.15:
			glyph = '/'
		}
		r := pf.vp.Project(e.X, e.Y, e.Width, e.Height)
		pf.hline(r.X, r.Y, r.W, glyph, core.ColorBrightGreen)
	}
}

func (g *Game) renderActor(pf playfield) {
	a := g.w.Actor
	col := pf.vp.Col(a.X)
	row := pf.vp.Row(a.Y - g.engine.Tuning().ActorHeight/2)

	glyph, color := '@', core.ColorBrightYellow
	switch a.State {
	case world.StateCharging:
		glyph = 'v'
		if a.ChargeRatio >= 1 {
			color = core.ColorBrightRed
		}
	case world.StateAirborne:
		glyph = 'A'
	case world.StateDead:
		glyph, color = 'x', core.ColorRed
	case world.StateGrounded:
		if a.Facing < 0 {
			glyph = '<'
		} else {
			glyph = '>'
		}
	}
	pf.put(col, row, glyph, color)
}

func (g *Game) renderWater(pf playfield) {
	w := g.w.Water
	surface := pf.vp.Row(w.Y)
	if surface >= pf.vp.Rows {
		return
	}
	for x := 0; x < pf.vp.Cols; x++ {
		r := '~'
		if math.Sin(w.WaveOffset+float64(x)*0.7) > 0 {
			r = '-'
		}
		pf.put(x, surface, r, core.ColorBrightBlue)
	}
	for y := max(surface+1, 0); y < pf.vp.Rows; y++ {
		pf.hline(0, y, pf.vp.Cols, '░', core.ColorBlue)
	}
}

func (g *Game) renderFrame(pf playfield) {
	for y := 0; y < pf.vp.Rows; y++ {
		pf.dst.SetColored(pf.offX-1, pf.offY+y, '│', core.ColorGray)
		pf.dst.SetColored(pf.offX+pf.vp.Cols, pf.offY+y, '│', core.ColorGray)
	}
}

func (g *Game) renderHUD(dst *core.Screen, pf playfield) {
	left := fmt.Sprintf("STAGE %d  SCORE %d", g.stageNum, g.score)
	dst.DrawTextColored(pf.offX, 0, left, core.ColorBrightWhite)

	lives := "∞"
	if g.lives >= 0 {
		lives = strings.Repeat("♥", g.lives)
	}
	dst.DrawTextColored(pf.offX+pf.vp.Cols-len([]rune(lives)), 0, lives, core.ColorBrightRed)

	a := g.w.Actor
	if a.State == world.StateCharging {
		const barWidth = 10
		filled := int(math.Round(a.ChargeRatio * barWidth))
		bar := "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
		dst.DrawTextColored(pf.offX, 1, "JUMP "+bar, core.ColorYellow)
	} else {
		dst.DrawTextColored(pf.offX, 1, fmt.Sprintf("%.1fs", g.w.Elapsed), core.ColorGray)
	}
	if !g.w.Water.Rising {
		msg := "water waits"
		dst.DrawTextColored(pf.offX+pf.vp.Cols-len(msg), 1, msg, core.ColorCyan)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch g.status() {
	case StatusWon:
		dst.DrawTextCentered(mid-1, " ALL MOONS REACHED ", core.ColorBrightYellow)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Final score: %d ", g.score), core.ColorBrightWhite)
		dst.DrawTextCentered(mid+1, " R restart  B menu ", core.ColorGray)
	case StatusGameOver:
		dst.DrawTextCentered(mid-1, " GAME OVER ", core.ColorBrightRed)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Score: %d  Stage: %d ", g.score, g.stageNum), core.ColorBrightWhite)
		dst.DrawTextCentered(mid+1, " R restart  B menu ", core.ColorGray)
	case StatusPaused:
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorBrightWhite)
	case StatusCleared:
		dst.DrawTextCentered(mid, fmt.Sprintf(" STAGE CLEAR +%d ", g.clearPoints), core.ColorBrightGreen)
	case StatusDead:
		dst.DrawTextCentered(mid, " SPLASH! ", core.ColorBrightBlue)
	case StatusPlaying:
	}
}
