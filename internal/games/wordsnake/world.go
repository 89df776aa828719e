package wordsnake

import (
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/events"
)

// move advances the creature one cell. Returns false when it did not move.
func (g *Game) move() bool {
	if g.dir.IsZero() {
		return false
	}

	cell := g.field.Cell
	next := g.body[0].Add(core.Vec{X: g.dir.X * cell, Y: g.dir.Y * cell})

	if !g.field.Contains(next) {
		if g.variant == VariantClassic {
			g.endGame("wall")
			return false
		}
		next = g.field.Wrap(next)
	}

	if g.variant == VariantMissions && g.isObstacle(next) {
		g.endGame("obstacle")
		return false
	}

	// Checked against the pre-move body, tail included
	if g.onBody(next) {
		g.endGame("self")
		return false
	}

	g.body = append(g.body, core.Point{})
	copy(g.body[1:], g.body)
	g.body[0] = next

	if i := g.tileAt(next); i >= 0 {
		g.pickup(i)
	} else {
		g.body = g.body[:len(g.body)-1]
	}
	return true
}

// pickup collects tile i under the head. The tail is kept, so the
// creature grows by one.
func (g *Game) pickup(i int) {
	t := g.tiles[i]
	g.tiles = append(g.tiles[:i], g.tiles[i+1:]...)

	g.buf.Append(t.Letter)
	g.prog.Pickup()
	g.notify.Notify(events.LetterPicked{
		Letter: t.Letter,
		Points: 1,
		Buffer: g.buf.String(),
	})
	g.observeScore()

	g.detectWord()
}

// shrink drops up to n tail segments, never below length 1.
func (g *Game) shrink(n int) {
	for i := 0; i < n && len(g.body) > 1; i++ {
		g.body = g.body[:len(g.body)-1]
	}
}

// topUpTiles refills the field to the level's tile target. A failed spawn
// ends the top-up for this tick.
func (g *Game) topUpTiles() {
	target := g.prog.Curve().TileTarget(g.prog.State().Level)
	for len(g.tiles) < target {
		if !g.spawnTile() {
			return
		}
	}
}

func (g *Game) spawnTile() bool {
	p, ok := g.freeCell()
	if !ok {
		return false
	}
	letter := g.gen.Next(g.buf.String(), g.alphabet(), g.dict)
	g.tiles = append(g.tiles, Tile{
		Pos:    p,
		Letter: letter,
		Color:  core.TileColor(g.rng.Intn(1 << 16)),
	})
	return true
}

// generateObstacles replaces the obstacle set for the current level.
// Obstacles that find no free cell are skipped.
func (g *Game) generateObstacles() {
	g.obstacles = g.obstacles[:0]
	n := g.prog.Curve().ObstacleCount(g.prog.State().Level)
	for range n {
		if p, ok := g.freeCell(); ok {
			g.obstacles = append(g.obstacles, p)
		}
	}
}

// freeCell draws random cells until one is not occupied by the creature, an
// obstacle or a tile.
func (g *Game) freeCell() (core.Point, bool) {
	cols := g.field.Cols()
	if cols <= 0 {
		return core.Point{}, false
	}
	for range g.cfg.Tiles.SpawnAttempts {
		p := g.field.CellAt(g.rng.Intn(cols), g.rng.Intn(cols))
		if !g.onBody(p) && !g.isObstacle(p) && g.tileAt(p) < 0 {
			return p, true
		}
	}
	return core.Point{}, false
}

func (g *Game) onBody(p core.Point) bool {
	for _, s := range g.body {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) isObstacle(p core.Point) bool {
	for _, o := range g.obstacles {
		if o == p {
			return true
		}
	}
	return false
}

func (g *Game) tileAt(p core.Point) int {
	for i, t := range g.tiles {
		if t.Pos == p {
			return i
		}
	}
	return -1
}
