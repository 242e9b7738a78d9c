// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2d

import "math"

// BoundRect is an axis-aligned bounding box defined by its minimum and
// maximum corners. It corresponds to spec.md §3's AABB: min <= max on both
// axes, always enclosing the shape it was computed from.
type BoundRect struct {
	Min Vector2
	Max Vector2
}

// EmptyBoundRect returns a degenerate BoundRect that expands to enclose
// the first point given to ExpandByPoint.
func EmptyBoundRect() BoundRect {
	return BoundRect{
		Min: Vector2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vector2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoundRectFromPoints returns the smallest BoundRect enclosing all points.
func BoundRectFromPoints(points []Vector2) BoundRect {
	b := EmptyBoundRect()
	for _, p := range points {
		b = b.ExpandByPoint(p)
	}
	return b
}

// ExpandByPoint returns a BoundRect enclosing both b and p.
func (b BoundRect) ExpandByPoint(p Vector2) BoundRect {
	return BoundRect{
		Min: Vector2{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Vector2{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Expand returns a BoundRect grown by margin on every side.
func (b BoundRect) Expand(margin float64) BoundRect {
	m := Vector2{X: margin, Y: margin}
	return BoundRect{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Translate returns b shifted by delta.
func (b BoundRect) Translate(delta Vector2) BoundRect {
	return BoundRect{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Overlaps returns true if b and other intersect or touch.
func (b BoundRect) Overlaps(other BoundRect) bool {
	if b.Max.X < other.Min.X || b.Min.X > other.Max.X {
		return false
	}
	if b.Max.Y < other.Min.Y || b.Min.Y > other.Max.Y {
		return false
	}
	return true
}

// Contains returns true if p lies within b (inclusive).
func (b BoundRect) Contains(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the midpoint of b.
func (b BoundRect) Center() Vector2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Valid reports whether min <= max on both axes, per spec.md §3's AABB
// invariant.
func (b BoundRect) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}
