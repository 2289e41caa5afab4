package barrage

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-barrage/internal/core"
)

func TestRenderHUDAndAvatar(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Level: 1") {
		t.Errorf("HUD row = %q, expected score and level", hud)
	}
	if !strings.Contains(screen.String(), string(facingArrows[DirEast])) {
		t.Error("avatar should be drawn with its facing arrow")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(20, 6)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("tiny screens should show a size hint")
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Step(pressed(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause panel")
	}

	g = newTestGame(1)
	g.world.Effects = append(g.world.Effects, &Effect{Kind: AbilityGravity, Life: 10})
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), GravityChar) {
		t.Error("live gravity field should shade the field")
	}

	g = newTestGame(1)
	g.tick = 1
	ax, ay := g.world.Avatar.Rect.CenterF()
	g.world.Projectiles = append(g.world.Projectiles, projectileAt(ax, ay, true))
	g.Step(core.NewInputFrame())
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 0") {
		t.Error("destroyed avatar should show the game over panel with the score")
	}
}

func TestRenderHealthBars(t *testing.T) {
	g := newTestGame(1)
	e := gruntAt(550, 300, 4)
	e.HP = 2
	g.world.Enemies = append(g.world.Enemies, e)

	screen := core.NewScreen(110, 66)
	g.Render(screen)

	v := newViewport(g.world.Width, g.world.Height, screen.Width(), screen.Height())
	r := v.cellRect(e.Rect)
	full, empty := 0, 0
	for x := r.X; x < r.Right(); x++ {
		switch screen.Get(x, r.Y-1) {
		case HealthFullChar:
			full++
		case HealthEmptyChar:
			empty++
		}
	}
	if full != r.W/2 || full+empty != r.W {
		t.Errorf("health bar %d full / %d empty over width %d, expected half full", full, empty, r.W)
	}
}

func TestViewportCellRect(t *testing.T) {
	v := newViewport(1100, 650, 110, 66)

	// 10 field units per cell, HUD row offsets y by one.
	got := v.cellRect(core.NewRect(100, 50, 20, 5))
	if got != core.NewRect(10, 6, 2, 1) {
		t.Errorf("cellRect = %+v, expected {10 6 2 1}", got)
	}

	tiny := v.cellRect(core.NewRect(0, 0, 1, 1))
	if tiny.W < 1 || tiny.H < 1 {
		t.Error("visible rects should cover at least one cell")
	}
}
