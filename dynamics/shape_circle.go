// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "math"

// circleArea returns pi * r^2.
func circleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// circleRotationInertia returns the moment of inertia of a solid disk
// about its center: 1/2 * m * r^2 (spec.md §3).
func circleRotationInertia(mass, radius float64) float64 {
	return 0.5 * mass * radius * radius
}
