// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "fmt"

// ConfigError reports a fatal problem with a Body configuration: an
// unknown shape kind or a missing or invalid shape field (returned by
// NewBody), or a non-positive area or mass (returned at append time). It
// is returned, never logged — the caller decides whether to abort.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dynamics: config error: %s", e.Reason)
}

// DomainError reports NaN or infinity appearing in a body's kinematic
// state after integration. It is not fatal to the step: the offending
// body is put to sleep and the error is logged, but the rest of the step
// continues for the other bodies.
type DomainError struct {
	BodyID BodyID
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("dynamics: domain error on body %s: %s", e.BodyID, e.Reason)
}

// UserCallbackError wraps a panic recovered from a user-supplied callback
// (collided, separated, or a world step function). It is logged and
// swallowed; the step continues.
type UserCallbackError struct {
	Callback string
	Cause    interface{}
}

func (e *UserCallbackError) Error() string {
	return fmt.Sprintf("dynamics: user callback %q panicked: %v", e.Callback, e.Cause)
}
