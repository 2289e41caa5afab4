package barrage

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

// Visual characters for rendering
const (
	AvatarBodyChar  = '▓'
	CelebrateChar   = '✦'
	DestroyedChar   = 'X'
	BeamChar        = '│'
	GruntChar       = '▒'
	BossChar        = '█'
	ProjectileChar  = '●'
	InactiveChar    = '○'
	ShieldChar      = '█'
	GravityChar     = '░'
	DisableChar     = '·'
	HealthFullChar  = '▬'
	HealthEmptyChar = '▭'
	BossHealthChar  = '█'
	BossHealthEmpty = '░'
)

// ExplosionRadius is half the drawn size of an explosion, in field units.
const ExplosionRadius = 30

// Minimum terminal size the field is drawn at.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// explosionChars alternate by Explosion.Frame.
var explosionChars = [2]rune{'✶', '✷'}

// facingArrows maps a facing to the arrow drawn on the avatar.
var facingArrows = map[Dir]rune{
	{1, 0}: '→', {1, -1}: '↗', {0, -1}: '↑', {-1, -1}: '↖',
	{-1, 0}: '←', {-1, 1}: '↙', {0, 1}: '↓', {1, 1}: '↘',
}

// viewport maps field units onto screen cells. The top row is the HUD.
type viewport struct {
	fieldW, fieldH int
	x0, y0         int
	w, h           int
}

func newViewport(fieldW, fieldH, screenW, screenH int) viewport {
	return viewport{fieldW: fieldW, fieldH: fieldH, x0: 0, y0: 1, w: screenW, h: screenH - 1}
}

// cellRect converts a field rectangle to the screen cells it covers.
// Anything visible covers at least one cell.
func (v viewport) cellRect(r core.Rect) core.Rect {
	sx := float64(v.w) / float64(v.fieldW)
	sy := float64(v.h) / float64(v.fieldH)
	x0 := int(math.Floor(float64(r.X) * sx))
	y0 := int(math.Floor(float64(r.Y) * sy))
	x1 := int(math.Ceil(float64(r.Right()) * sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * sy))
	return core.NewRect(v.x0+x0, v.y0+y0, max(1, x1-x0), max(1, y1-y0))
}

// cell converts a field point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(v.w) / float64(v.fieldW)))
	cy := int(math.Floor(y * float64(v.h) / float64(v.fieldH)))
	return v.x0 + cx, v.y0 + cy
}

// Render draws the field back to front: shields, avatar, beams, enemies
// with health bars, projectiles, gravity overlay, explosions, ability
// overlays, then the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(g.world.Width, g.world.Height, dst.Width(), dst.Height())

	g.renderShields(dst, v)
	g.renderAvatar(dst, v)
	g.renderBeams(dst, v)
	g.renderEnemies(dst, v)
	g.renderProjectiles(dst, v)
	if g.world.HasEffect(AbilityGravity) {
		fillBlank(dst, v, GravityChar, core.ColorGray)
	}
	g.renderExplosions(dst, v)
	if g.world.HasEffect(AbilityDisable) {
		fillBlank(dst, v, DisableChar, core.ColorYellow)
	}
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderShields(dst *core.Screen, v viewport) {
	for _, eff := range g.world.Effects {
		if eff.Kind == AbilityShield && eff.Alive() {
			dst.DrawRectColored(v.cellRect(eff.Rect), ShieldChar, core.ColorBlue)
		}
	}
}

func (g *Game) renderAvatar(dst *core.Screen, v viewport) {
	a := g.world.Avatar
	r := v.cellRect(a.Rect)
	cx, cy := r.Center()

	switch {
	case a.Destroyed:
		dst.DrawRectColored(r, DestroyedChar, core.ColorBrightRed)
	case a.Celebrate > 0:
		dst.DrawRectColored(r, CelebrateChar, core.ColorBrightYellow)
	default:
		dst.DrawRectColored(r, AvatarBodyChar, core.ColorCyan)
		dst.SetColored(cx, cy, facingArrows[a.Facing], core.ColorBrightWhite)
	}
}

func (g *Game) renderBeams(dst *core.Screen, v viewport) {
	for _, b := range g.world.Beams {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, BeamChar, core.ColorBrightCyan)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for _, e := range g.world.Enemies {
		r := v.cellRect(e.Rect)
		switch {
		case e.Kind == KindBoss:
			dst.DrawRectColored(r, BossChar, core.ColorRed)
		case e.Disabled:
			dst.DrawRectColored(r, GruntChar, core.ColorGray)
		default:
			dst.DrawRectColored(r, GruntChar, core.ColorMagenta)
		}
		drawHealthBar(dst, r, e)
	}
}

// drawHealthBar draws the bar on the row above the enemy. The boss bar is
// two rows of solid blocks.
func drawHealthBar(dst *core.Screen, r core.Rect, e *Enemy) {
	fill := int(float64(r.W) * e.HealthRatio())
	full, empty, rows := HealthFullChar, HealthEmptyChar, 1
	if e.Kind == KindBoss {
		full, empty, rows = BossHealthChar, BossHealthEmpty, 2
	}
	for row := 1; row <= rows; row++ {
		y := r.Y - row
		for i := range r.W {
			if i < fill {
				dst.SetColored(r.X+i, y, full, core.ColorBrightGreen)
			} else {
				dst.SetColored(r.X+i, y, empty, core.ColorRed)
			}
		}
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, v viewport) {
	for _, p := range g.world.Projectiles {
		x, y := v.cell(p.X, p.Y)
		if p.Active {
			dst.SetColored(x, y, ProjectileChar, p.Color)
		} else {
			dst.SetColored(x, y, InactiveChar, core.ColorGray)
		}
	}
}

func (g *Game) renderExplosions(dst *core.Screen, v viewport) {
	for _, ex := range g.world.Explosions {
		r := core.RectAround(ex.X, ex.Y, 2*ExplosionRadius, 2*ExplosionRadius)
		c := core.ColorOrange
		if ex.Frame() == 1 {
			c = core.ColorBrightYellow
		}
		dst.DrawRectColored(v.cellRect(r), explosionChars[ex.Frame()], c)
	}
}

// fillBlank shades every empty field cell.
func fillBlank(dst *core.Screen, v viewport, r rune, c core.Color) {
	for y := v.y0; y < v.y0+v.h; y++ {
		for x := v.x0; x < v.x0+v.w; x++ {
			if dst.IsBlank(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// renderHUD draws score, level and ability prices on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	for x := range dst.Width() {
		dst.Set(x, 0, ' ')
	}
	score := fmt.Sprintf("Score: %d", g.score.Value())
	dst.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	level := fmt.Sprintf("Level: %d", g.level)
	if g.bossActive {
		level += " BOSS"
	}
	dst.DrawTextCentered(0, level)

	ab := g.cfg.Abilities
	prices := fmt.Sprintf("E:%d S:%d ⏎:%d", ab.Disable.Cost, ab.Shield.Cost, ab.Gravity.Cost)
	dst.DrawTextColored(dst.Width()-len([]rune(prices))-1, 0, prices, g.priceColor())
}

// priceColor dims the ability prices until the cheapest one is affordable.
func (g *Game) priceColor() core.Color {
	cheapest := g.cfg.Abilities.Disable.Cost
	for _, c := range []int{g.cfg.Abilities.Shield.Cost, g.cfg.Abilities.Gravity.Cost} {
		cheapest = min(cheapest, c)
	}
	if g.score.Value() >= cheapest {
		return core.ColorBrightGreen
	}
	return core.ColorGray
}

// renderOverlay draws pause and game-over panels.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.outcome == core.OutcomeDestroyed:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart, Q to quit", g.score.Value()))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
