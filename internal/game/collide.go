package game

import "github.com/mkostin/wingshot/internal/core"

// resolveCollisions runs the per-tick collision and scoring pass in its
// fixed order: fatal player contacts first, then culling and projectile
// resolution. Removals use the compact-in-place pattern so no collection
// is mutated while being ranged over.
func (g *Game) resolveCollisions() {
	playerRect := g.player.Rect()

	// 1. Player vs walls: any overlap ends the session.
	for i := range g.walls {
		if playerRect.Intersects(g.walls[i].Rect()) {
			g.endSession()
			return
		}
	}

	// 2. Player vs enemies: fatal, with its own audio cue.
	for i := range g.enemies {
		if playerRect.Intersects(g.enemies[i].Rect()) {
			g.events = append(g.events, core.EventEnemyContact)
			g.endSession()
			return
		}
	}

	// 3. Player vs bounds.
	if playerRect.Y <= 0 || playerRect.Bottom() >= g.rt.ScreenH {
		g.endSession()
		return
	}

	// 4. Wall culling: each segment fully past the left edge scores +0.5,
	// so a full pair sums to +1.
	keptWalls := g.walls[:0]
	for _, w := range g.walls {
		if w.Rect().Right() < 0 {
			g.score += 0.5
			continue
		}
		keptWalls = append(keptWalls, w)
	}
	g.walls = keptWalls

	// 5. Enemy culling: off-screen left, no score.
	keptEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Rect().Right() < 0 {
			continue
		}
		keptEnemies = append(keptEnemies, e)
	}
	g.enemies = keptEnemies

	// 6. Projectiles: drop off-screen-right ones without scoring, then
	// resolve hits. A projectile consumes at most one enemy; first match
	// wins and both disappear this same tick.
	keptProjectiles := g.projectiles[:0]
	for _, p := range g.projectiles {
		pr := p.Rect()
		if pr.X > g.rt.ScreenW {
			continue
		}

		hit := -1
		for i := range g.enemies {
			if pr.Intersects(g.enemies[i].Rect()) {
				hit = i
				break
			}
		}
		if hit >= 0 {
			g.enemies = append(g.enemies[:hit], g.enemies[hit+1:]...)
			g.score += 2
			g.events = append(g.events, core.EventEnemyDown)
			continue
		}

		keptProjectiles = append(keptProjectiles, p)
	}
	g.projectiles = keptProjectiles
}
