// internal/component/visual.go
package component

// Corpse - труп зомби. Frames is consumed from the front, one entry per
// tick; the corpse disappears once it is empty.
type Corpse struct {
	Angle  float64
	Sheet  int
	Frames []int
}

// Frame returns the frame to show this tick.
func (c *Corpse) Frame() int {
	if len(c.Frames) == 0 {
		return 0
	}
	return c.Frames[0]
}
