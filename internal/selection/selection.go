// Package selection tracks the single launch opened for detailed display.
package selection

import "github.com/jask/launchdeck/internal/launch"

// Controller holds at most one selected record and whether its detail view
// is shown. The zero value has nothing selected.
type Controller struct {
	current *launch.Record
	visible bool
}

// Select shows r, replacing any current selection directly.
func (c *Controller) Select(r launch.Record) {
	c.current = &r
	c.visible = true
}

// Dismiss clears the selection. It is safe to call when nothing is selected.
func (c *Controller) Dismiss() {
	c.current = nil
	c.visible = false
}

func (c *Controller) Current() (launch.Record, bool) {
	if c.current == nil {
		return launch.Record{}, false
	}
	return *c.current, true
}

func (c *Controller) Visible() bool { return c.visible }

// Prune dismisses the selection when its flight is no longer among records
// and reports whether it did.
func (c *Controller) Prune(records []launch.Record) bool {
	if c.current == nil || launch.Contains(records, c.current.FlightNumber) {
		return false
	}
	c.Dismiss()
	return true
}
