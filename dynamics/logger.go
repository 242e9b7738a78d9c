// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamics

import "github.com/vortex2d/engine/logger"

// log is the package-level logger, mirroring the teacher's per-package
// logger pattern (e.g. gui/logger.go's `var log = logger.New("GUI", ...)`).
// DomainError and UserCallbackError are reported through it per spec.md §7;
// ConfigError is returned to the caller, never logged.
var log = logger.New("dynamics", logger.Default)

// SetLogLevel sets the package logger's level by name
// (debug|info|warn|error|fatal, case ignored), letting a host turn on
// per-step Debug tracing (e.g. a --log-level CLI flag) without reaching
// into the logger package directly.
func SetLogLevel(name string) error {
	return log.SetLevelByName(name)
}
