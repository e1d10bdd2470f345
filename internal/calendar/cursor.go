package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chapterhub/internal/domain"
)

// Cursor is the navigation state of a calendar view: the mode and the anchor
// date. It is the only state that survives between recomputations.
type Cursor struct {
	Mode   domain.ViewMode
	Anchor time.Time

	w *Windower
}

// NewCursor starts a cursor at the windower's current instant.
func NewCursor(w *Windower, mode domain.ViewMode) *Cursor {
	return &Cursor{Mode: mode, Anchor: w.Now(), w: w}
}

// Today moves the anchor to the current instant.
func (c *Cursor) Today() {
	c.Anchor = c.w.Now()
}

// SetMode switches the view mode and keeps the anchor.
func (c *Cursor) SetMode(mode domain.ViewMode) error {
	if !domain.ValidViewModes[string(mode)] {
		return fmt.Errorf("setting mode %q: %w", mode, ErrUnknownViewMode)
	}
	c.Mode = mode
	return nil
}

func (c *Cursor) Prev() error { return c.step(-1) }

func (c *Cursor) Next() error { return c.step(1) }

// step moves one day, week or month. The agenda view has no navigation.
func (c *Cursor) step(dir int) error {
	if c.Mode == domain.ModeAgenda {
		return nil
	}
	if c.Anchor.IsZero() {
		return fmt.Errorf("navigating %s view: %w", c.Mode, ErrInvalidAnchorDate)
	}
	d := c.w.Dates()
	switch c.Mode {
	case domain.ModeDay:
		c.Anchor = d.AddDays(c.Anchor, dir)
	case domain.ModeWeek:
		c.Anchor = d.AddDays(c.Anchor, 7*dir)
	case domain.ModeMonth:
		c.Anchor = d.AddMonths(c.Anchor, dir)
	default:
		return fmt.Errorf("navigating %q view: %w", c.Mode, ErrUnknownViewMode)
	}
	return nil
}

// Window computes the current view window.
func (c *Cursor) Window() (domain.ViewWindow, error) {
	return c.w.ComputeWindow(c.Mode, c.Anchor)
}
