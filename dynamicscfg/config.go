// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamicscfg loads a dynamics.WorldConfig from a YAML
// description, the same way the teacher's gui.Builder parses panel
// descriptions from YAML (gui/builder.go's ParseString/ParseFile) rather
// than hand-rolling a config format.
package dynamicscfg

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/vortex2d/engine/dynamics"
	"github.com/vortex2d/engine/logger"
	"github.com/vortex2d/engine/math2d"
	"gopkg.in/yaml.v2"
)

// log is this package's logger, a child of the root logger alongside
// dynamics' own (logger.Default's hierarchy holds one child per package
// that reports through it).
var log = logger.New("dynamicscfg", logger.Default)

// SetLogLevel sets this package's logger level by name
// (debug|info|warn|error|fatal, case ignored).
func SetLogLevel(name string) error {
	return log.SetLevelByName(name)
}

// vector2Desc is the YAML-facing mirror of math2d.Vector2, naming its
// lowercase x/y keys explicitly with struct tags.
type vector2Desc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v vector2Desc) vector() math2d.Vector2 {
	return math2d.Vector2{X: v.X, Y: v.Y}
}

// worldConfigDesc is the YAML document shape: viewport size plus the
// recognized force options from spec.md §6.
type worldConfigDesc struct {
	Width       float64      `yaml:"width"`
	Height      float64      `yaml:"height"`
	Gravity     *vector2Desc `yaml:"gravity"`
	LinearDrag  *vector2Desc `yaml:"linearDrag"`
	AngularDrag *float64     `yaml:"angularDrag"`
}

// Loaded is a parsed config: the viewport size plus the WorldConfig ready
// to hand to dynamics.NewWorld.
type Loaded struct {
	Width, Height float64
	World         dynamics.WorldConfig
}

// ParseString parses a YAML world description, defaulting any omitted
// force field to dynamics.DefaultWorldConfig's value.
func ParseString(desc string) (Loaded, error) {
	var d worldConfigDesc
	if err := yaml.Unmarshal([]byte(desc), &d); err != nil {
		return Loaded{}, fmt.Errorf("dynamicscfg: %w", err)
	}
	if d.Width <= 0 || d.Height <= 0 {
		return Loaded{}, fmt.Errorf("dynamicscfg: width and height must be positive")
	}

	cfg := dynamics.DefaultWorldConfig()
	if d.Gravity != nil {
		cfg.Gravity = d.Gravity.vector()
	}
	if d.LinearDrag != nil {
		cfg.LinearDrag = d.LinearDrag.vector()
	}
	if d.AngularDrag != nil {
		cfg.AngularDrag = *d.AngularDrag
	}

	log.Debug("parsed world config: %gx%g gravity=%v linearDrag=%v angularDrag=%g", d.Width, d.Height, cfg.Gravity, cfg.LinearDrag, cfg.AngularDrag)
	return Loaded{Width: d.Width, Height: d.Height, World: cfg}, nil
}

// ParseFile reads filepath and parses it as a world description, mirroring
// gui.Builder.ParseFile's read-then-ParseString shape.
func ParseFile(filepath string) (Loaded, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return Loaded{}, err
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return Loaded{}, err
	}
	return ParseString(string(data))
}
