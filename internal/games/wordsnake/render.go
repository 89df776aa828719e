package wordsnake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/dictionary"
)

const (
	hudRows    = 2 // HUD line and separator
	panelGap   = 2
	panelMinW  = 16
	fieldTopY  = hudRows
	fieldLeftX = 0
)

type panelLine struct {
	text  string
	color core.Color
}

// layout maps field cells onto the terminal grid.
type layout struct {
	cols   int
	cellW  int // Terminal columns per field cell
	boxW   int
	boxH   int
	panelX int
	panelW int
	fits   bool
}

func (g *Game) layout(w, h int) layout {
	l := layout{cols: g.field.Cols(), cellW: 2}
	if w < l.cols*2+2 {
		l.cellW = 1
	}
	l.boxW = l.cols*l.cellW + 2
	l.boxH = l.cols + 2
	l.fits = w >= l.boxW && h >= fieldTopY+l.boxH
	l.panelX = fieldLeftX + l.boxW + panelGap
	l.panelW = w - l.panelX
	return l
}

// toScreen converts a field point to the terminal position of its cell.
func (g *Game) toScreen(l layout, p core.Point) (int, int) {
	col := p.X / g.field.Cell
	row := p.Y / g.field.Cell
	return fieldLeftX + 1 + col*l.cellW, fieldTopY + 1 + row
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	l := g.layout(dst.Width(), dst.Height())
	if !l.fits {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst, l)
	g.renderPanel(dst, l)
	g.renderBanners(dst, l)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over: "+g.endReasonText(),
			fmt.Sprintf("Score %d  Press R to restart", g.prog.State().Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press Space to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.prog.State()
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  Level: %d  Words: %d  Streak: %d",
		g.Title(), st.Score, g.best.Best(), st.Level, st.Words, st.Streak)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderField(dst *core.Screen, l layout) {
	dst.DrawBox(fieldLeftX, fieldTopY, l.boxW, l.boxH, core.ColorGray)

	for row := range l.cols {
		for col := range l.cols {
			x, y := g.toScreen(l, g.field.CellAt(col, row))
			dst.SetColored(x, y, '·', core.ColorGray)
		}
	}

	for _, o := range g.obstacles {
		g.fillCell(dst, l, o, '#', core.ColorRed)
	}

	for _, t := range g.tiles {
		x, y := g.toScreen(l, t.Pos)
		dst.SetColored(x, y, t.Letter, t.Color)
		if l.cellW > 1 {
			dst.SetColored(x+1, y, ' ', core.ColorDefault)
		}
	}

	for i := len(g.body) - 1; i >= 0; i-- {
		if i == 0 {
			g.fillCell(dst, l, g.body[i], '█', core.ColorBrightGreen)
		} else {
			g.fillCell(dst, l, g.body[i], '▓', core.ColorGreen)
		}
	}
}

func (g *Game) fillCell(dst *core.Screen, l layout, p core.Point, r rune, c core.Color) {
	x, y := g.toScreen(l, p)
	for i := range l.cellW {
		dst.SetColored(x+i, y, r, c)
	}
}

// renderPanel draws the side panel, or the lines below the field when the
// terminal is too narrow for it.
func (g *Game) renderPanel(dst *core.Screen, l layout) {
	lines := g.panelLines()

	x, y, width := l.panelX, fieldTopY, l.panelW
	if width < panelMinW {
		x, y, width = fieldLeftX, fieldTopY+l.boxH, dst.Width()
	}

	for _, line := range lines {
		for _, part := range wrapText(line.text, width) {
			if y >= dst.Height() {
				return
			}
			dst.DrawTextColored(x, y, part, line.color)
			y++
		}
	}
}

func (g *Game) panelLines() []panelLine {
	var lines []panelLine
	add := func(text string, c core.Color) {
		lines = append(lines, panelLine{text: text, color: c})
	}

	add("LETTERS", core.ColorBrightCyan)
	if g.buf.Len() == 0 {
		add("-", core.ColorGray)
	} else {
		add(spaced(g.buf.String()), core.ColorBrightWhite)
	}
	add("", core.ColorDefault)

	add("SUGGESTIONS", core.ColorBrightCyan)
	switch g.dict.State() {
	case dictionary.StateLoading:
		add("Loading words...", core.ColorGray)
	case dictionary.StateFailed:
		add("NO WORD LIST", core.ColorBrightRed)
	default:
		switch s := g.Suggestions(); {
		case g.buf.Len() == 0:
			add("Collect letters to see suggestions", core.ColorGray)
		case len(s) == 0:
			add("No valid words found", core.ColorGray)
		default:
			for _, w := range s {
				add(w, core.ColorWhite)
			}
		}
	}

	if g.lastWord != "" {
		add("", core.ColorDefault)
		add("LAST WORD: "+g.lastWord, core.ColorGreen)
	}

	if g.variant == VariantMissions {
		add("", core.ColorDefault)
		add("MISSION", core.ColorBrightCyan)
		add(g.MissionText(), core.ColorWhite)
		if status := g.objective.Status(g.progress); status != "" {
			add(status, core.ColorBrightYellow)
		}
	}
	return lines
}

func (g *Game) renderBanners(dst *core.Screen, l layout) {
	cx := fieldLeftX + l.boxW/2
	if g.banner.ttl > 0 {
		drawCentered(dst, g.banner.text, cx, fieldTopY+1, g.banner.color)
	}
	if g.cheer > 0 {
		drawCentered(dst, "NEW HIGH SCORE!", cx, fieldTopY+2, core.ColorBrightMagenta)
	}
}

func (g *Game) endReasonText() string {
	switch g.endReason {
	case "wall":
		return "hit the wall"
	case "self":
		return "bit itself"
	case "obstacle":
		return "hit an obstacle"
	default:
		return g.endReason
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}

// drawCentered draws text centered on column cx.
func drawCentered(dst *core.Screen, text string, cx, y int, c core.Color) {
	dst.DrawTextColored(cx-len([]rune(text))/2, y, text, c)
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// wrapText breaks s into lines of at most width runes on word boundaries.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}

	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
