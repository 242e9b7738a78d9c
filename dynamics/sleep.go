// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "math"

// sampleMotion pushes this step's motion sample (|v|^2 + omega^2) into
// the fixed-size ring buffer (spec.md §9, "Ring buffer for sleep" —
// avoids the source's shift-from-front cost). Sleeping bodies are never
// sampled (spec.md §9 Open Question resolution): they are only woken by
// a narrow-phase contact, never by their own stale motion history.
func (b *Body) sampleMotion() {
	if b.State == StateSleep {
		return
	}
	b.CurMotion = b.V.LengthSq() + b.Omega*b.Omega
	b.motionSamples[b.sampleNext] = b.CurMotion
	b.sampleNext = (b.sampleNext + 1) % motionSampleCapacity
	if b.sampleCount < motionSampleCapacity {
		b.sampleCount++
	}
}

// isTimeToSleep reports whether the body's last motionSampleCapacity
// motion samples have a standard deviation below sleepSigmaThreshold
// (spec.md §4.7 step 4). Returns false until the ring buffer is full.
func (b *Body) isTimeToSleep() bool {
	if b.sampleCount < motionSampleCapacity {
		return false
	}
	var sum float64
	for _, s := range b.motionSamples {
		sum += s
	}
	mean := sum / motionSampleCapacity
	var variance float64
	for _, s := range b.motionSamples {
		d := s - mean
		variance += d * d
	}
	variance /= motionSampleCapacity
	sigma := math.Sqrt(variance)
	return sigma < sleepSigmaThreshold
}

// resetMotionSamples clears the ring buffer, used when a body transitions
// back to Simulate so stale pre-sleep samples don't immediately put it
// back to sleep.
func (b *Body) resetMotionSamples() {
	b.motionSamples = [motionSampleCapacity]float64{}
	b.sampleCount = 0
	b.sampleNext = 0
}

// trySleep evaluates the sleep heuristic and transitions state, firing
// OnSleep on the transition to sleep. OnWake is fired by wakeOnContact
// (resolver.go).
func (b *Body) trySleep() {
	if b.State != StateSimulate {
		return
	}
	if b.isTimeToSleep() {
		b.State = StateSleep
		if b.OnSleep != nil {
			b.OnSleep()
		}
	}
}
