package game

import (
	"fmt"

	"github.com/mkostin/wingshot/internal/core"
)

// Glyphs for the drawable elements.
const (
	playerChar     = '▶'
	playerBodyChar = '●'
	wallChar       = '█'
	wallCapTop     = '▄'
	wallCapBottom  = '▀'
	enemyChar      = '◈'
	projectileChar = '='
	skyCharA       = '~'
	skyCharB       = '≈'
)

// bgTileWidth is the width of one background tile; the scroll offset
// selects which of the two alternating tiles covers each slot.
const bgTileWidth = 8

const startLabel = " Start Game "

// Render implements registry.Game. The screen is drawn fresh every frame
// from the current state; the simulation never waits on rendering.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case core.PhaseStart:
		g.drawBackground(dst)
		g.drawStartScreen(dst)
	case core.PhasePlaying:
		g.drawBackground(dst)
		g.drawPlayfield(dst)
		g.drawHUD(dst)
	case core.PhaseGameOver:
		g.drawBackground(dst)
		g.drawPlayfield(dst)
		g.drawHUD(dst)
		g.drawGameOver(dst)
	}
}

// drawBackground tiles the top and bottom rows with two alternating
// patterns selected by the scroll offset. Purely cosmetic.
func (g *Game) drawBackground(dst *core.Screen) {
	offset := int(g.bgOffset)
	for x := 0; x < dst.Width(); x++ {
		tile := (x + offset) / bgTileWidth
		ch := skyCharA
		if tile%2 != 0 {
			ch = skyCharB
		}
		dst.SetColored(x, 0, ch, core.ColorCyan)
		dst.SetColored(x, dst.Height()-1, ch, core.ColorBlue)
	}
}

func (g *Game) drawPlayfield(dst *core.Screen) {
	for i := range g.walls {
		g.drawWall(dst, &g.walls[i])
	}

	for _, e := range g.enemies {
		r := e.Rect()
		dst.DrawRect(r, enemyChar, core.ColorMagenta)
	}

	for _, p := range g.projectiles {
		r := p.Rect()
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Y, projectileChar, core.ColorBrightYellow)
		}
	}

	pr := g.player.Rect()
	for dy := 0; dy < pr.H; dy++ {
		for dx := 0; dx < pr.W; dx++ {
			ch := playerBodyChar
			if dx == pr.W-1 && dy == 0 {
				ch = playerChar
			}
			dst.SetColored(pr.X+dx, pr.Y+dy, ch, core.ColorYellow)
		}
	}
}

func (g *Game) drawWall(dst *core.Screen, w *Wall) {
	r := w.Rect()
	dst.DrawRect(r, wallChar, core.ColorGreen)

	// Cap the gap-facing edge: bottom row of a top segment, top row of a
	// bottom segment.
	if r.Y == 0 && r.H > 0 {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Bottom()-1, wallCapTop, core.ColorGreen)
		}
	} else if r.H > 0 {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Y, wallCapBottom, core.ColorGreen)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", int(g.score)), core.ColorBrightWhite)
	dst.DrawTextColored(2, 1, fmt.Sprintf(" Best: %d ", g.highScore), core.ColorGray)
}

// startButtonRect is the hit target for pointer activation on the start
// screen. Layout depends only on the playfield size, so hit testing stays
// consistent with what drawStartScreen renders.
func (g *Game) startButtonRect() core.Rect {
	w := len(startLabel) + 2
	h := 3
	return core.NewRect((g.rt.ScreenW-w)/2, g.rt.ScreenH/2-1, w, h)
}

func (g *Game) drawStartScreen(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/4, g.cfg.Window.Title)

	btn := g.startButtonRect()
	dst.DrawRect(btn, ' ', core.ColorDefault)
	dst.DrawBox(btn)
	dst.DrawTextColored(btn.X+1, btn.Y+1, startLabel, core.ColorBrightYellow)

	instructions := []string{
		"space to flap, f or click to fire",
		"destroy enemies for bonus points",
		"avoid walls, enemies and the screen edges",
		"enter or click the button to begin",
	}
	y := dst.Height() * 2 / 3
	for i, line := range instructions {
		dst.DrawTextCentered(y+i, line)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  Best: %d  |  R to restart", int(g.score), g.highScore)

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
