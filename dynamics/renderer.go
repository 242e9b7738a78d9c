// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

// Renderer is the single handle the World calls into at the end of each
// step (spec.md §9's "Global broadcast bus" redesign note: replace the
// source's process-wide listener registry with one handle passed in and
// called directly). The dynamics core never constructs shape paths or
// touches pixels itself (spec.md §1); Repaint is the only signal it sends.
type Renderer interface {
	// Repaint is called once per step after resolution and sleep
	// bookkeeping, asking the host to redraw.
	Repaint()
	// Bind forwards an event subscription request from World.Bind,
	// keeping the renderer's own event wiring opaque to dynamics.
	Bind(event string, fn func())
}

// NoopRenderer discards Repaint/Bind calls. Useful for headless hosts
// (tests, cmd/demo) that do not need a real display.
type NoopRenderer struct{}

func (NoopRenderer) Repaint()            {}
func (NoopRenderer) Bind(string, func()) {}
