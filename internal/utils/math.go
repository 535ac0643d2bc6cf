// internal/utils/math.go
package utils

import (
	"math"

	"go-zombie-survival/internal/component"
)

// Overlaps проверяет пересечение двух прямоугольников, заданных центром и размером.
// Touching edges do not count.
func Overlaps(a *component.Position, ah *component.Hitbox, b *component.Position, bh *component.Hitbox) bool {
	return math.Abs(a.X-b.X)*2 < ah.W+bh.W && math.Abs(a.Y-b.Y)*2 < ah.H+bh.H
}

// Contains reports whether point (x, y) lies inside the box.
func Contains(p *component.Position, h *component.Hitbox, x, y float64) bool {
	return math.Abs(x-p.X)*2 <= h.W && math.Abs(y-p.Y)*2 <= h.H
}

// CenterDistance - расстояние между центрами.
func CenterDistance(a, b *component.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AngleTo returns the angle from a to (x, y) in radians.
func AngleTo(a *component.Position, x, y float64) float64 {
	return math.Atan2(y-a.Y, x-a.X)
}

// OutOfBounds reports whether the box lies entirely outside the w×h screen.
func OutOfBounds(p *component.Position, h *component.Hitbox, w, hgt float64) bool {
	return p.X+h.W/2 < 0 || p.X-h.W/2 > w || p.Y+h.H/2 < 0 || p.Y-h.H/2 > hgt
}

// SegmentCrossesBox reports whether the segment from a to b passes
// through the interior of the box centred on c.
func SegmentCrossesBox(a, b, c *component.Position, h *component.Hitbox) bool {
	tmin, tmax := 0.0, 1.0
	axes := [2][3]float64{
		{a.X, b.X - a.X, h.W / 2},
		{a.Y, b.Y - a.Y, h.H / 2},
	}
	centres := [2]float64{c.X, c.Y}
	for i, ax := range axes {
		from, d, half := ax[0], ax[1], ax[2]
		if d == 0 {
			if math.Abs(from-centres[i]) >= half {
				return false
			}
			continue
		}
		t1 := (centres[i] - half - from) / d
		t2 := (centres[i] + half - from) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin, tmax = max(tmin, t1), min(tmax, t2)
		if tmin >= tmax {
			return false
		}
	}
	return true
}

// SegmentDistance is the distance from p to the closest point of the
// segment from a to b.
func SegmentDistance(a, b, p *component.Position) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = max(0, min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
