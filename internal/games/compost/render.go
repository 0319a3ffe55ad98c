package compost

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/compost-catch/internal/catalog"
	"github.com/vovakirdan/compost-catch/internal/core"
)

// Visual elements
const (
	binRimLeft  = '\\'
	binRimRight = '/'
	binRimFill  = '~'
	binBase     = '▀'
	heartChar   = "♥"
)

// Render draws the current frame: HUD, falling items, bin, and hint line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 {
		return
	}

	snap := g.Snapshot()
	arenaRows := dst.Height() - hudRows - hintRows
	if arenaRows <= 0 {
		dst.DrawText(0, 0, fmt.Sprintf("Score %d", snap.Score))
		return
	}

	g.drawHUD(dst, snap)

	for _, e := range snap.Entities {
		if e.Y < 0 {
			continue
		}
		col := int(e.X / 100 * float64(dst.Width()))
		row := hudRows + int(e.Y/g.cfg.Arena.CellHeightPx)
		if row >= hudRows+arenaRows {
			continue
		}
		label := e.Label
		col -= runewidth.StringWidth(label) / 2
		dst.DrawTextColored(col, row, label, entityColor(e))
	}

	g.drawBin(dst, snap, arenaRows)

	hint := "←/→ or mouse: move  P: pause  R: restart  Q: quit"
	if g.difficulty.VisuallyIndistinguishable {
		hint += "  (trash looks the same here!)"
	}
	dst.DrawTextColored(0, dst.Height()-1, hint, core.ColorGray)

	switch {
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == core.PhaseEnded:
		sum, _ := g.Summary()
		drawCenteredMessage(dst, OutcomeTitle(sum), fmt.Sprintf("Score: %d  |  Press R to restart", sum.Score))
	}
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hearts := strings.Repeat(heartChar, max(0, snap.Lives))
	left := fmt.Sprintf(" Score: %d  Lives: ", snap.Score)
	dst.DrawText(0, 0, left)
	dst.DrawTextColored(runewidth.StringWidth(left), 0, hearts, core.ColorBrightRed)

	right := fmt.Sprintf("Items %d/%d  %s ", snap.Processed, snap.Total, g.difficulty.Name)
	dst.DrawText(dst.Width()-runewidth.StringWidth(right), 0, right)
}

// drawBin renders the catcher across the catch zone width on the bottom
// arena rows.
func (g *Game) drawBin(dst *core.Screen, snap Snapshot, arenaRows int) {
	arena := g.Arena().Or(FallbackArena(g.cfg.Arena))
	catcher := NewCatcher(g.cfg.Catcher)
	catcher.MoveTo(snap.Catcher)
	zone := CatchZone(arena, catcher, g.cfg.Catcher)

	cellW := arena.Width / float64(dst.Width())
	left := int(zone.Left / cellW)
	width := max(3, int(zone.Width()/cellW))

	color := core.ColorBrown
	if snap.Damaged {
		color = core.ColorBrightRed
	}

	rimRow := hudRows + arenaRows - 2
	baseRow := hudRows + arenaRows - 1
	if rimRow >= hudRows {
		dst.SetColored(left, rimRow, binRimLeft, color)
		dst.DrawHLine(left+1, rimRow, width-2, binRimFill, color)
		dst.SetColored(left+width-1, rimRow, binRimRight, color)
	}
	dst.DrawHLine(left+1, baseRow, width-2, binBase, color)
}

// entityColor picks the item color. Disguised rounds show every item alike.
func entityColor(e EntityView) core.Color {
	if e.Disguised {
		return core.ColorYellow
	}
	if e.Category == catalog.Correct {
		return core.ColorGreen
	}
	return core.ColorRed
}

// OutcomeTitle returns the end-of-round headline.
func OutcomeTitle(s Summary) string {
	if s.Cleared() {
		return "You finished!"
	}
	return "Game Over"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := runewidth.StringWidth(title)
	subtitleW := runewidth.StringWidth(subtitle)

	boxW := max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
