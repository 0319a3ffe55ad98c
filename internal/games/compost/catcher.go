package compost

import (
	"github.com/vovakirdan/compost-catch/internal/config"
	"github.com/vovakirdan/compost-catch/internal/core"
)

// Catcher is the user-controlled bin. Its position is a percentage of the
// arena width, clamped so the bin stays fully on screen.
type Catcher struct {
	pos      float64
	min, max float64
}

// NewCatcher creates a catcher at its starting position.
func NewCatcher(cfg config.CatcherConfig) Catcher {
	c := Catcher{min: cfg.MinPct, max: cfg.MaxPct}
	c.MoveTo(cfg.StartPct)
	return c
}

// MoveTo sets the position, clamped to the allowed margin.
func (c *Catcher) MoveTo(pct float64) {
	c.pos = core.ClampF(pct, c.min, c.max)
}

// Nudge moves the catcher by delta percent.
func (c *Catcher) Nudge(delta float64) {
	c.MoveTo(c.pos + delta)
}

// Position returns the position in percent.
func (c Catcher) Position() float64 {
	return c.pos
}

// PixelX returns the catcher center in pixels for an arena width.
func (c Catcher) PixelX(width float64) float64 {
	return c.pos / 100 * width
}

// ColumnToPercent converts a pointer column on a screen of the given width
// into the percent space, using the center of the cell.
func ColumnToPercent(col, width int) float64 {
	if width <= 0 {
		return 50
	}
	return (float64(col) + 0.5) / float64(width) * 100
}
