// Copyright 2024 The Vortex2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demo is a minimum headless runner showing how to build a World,
// drop a body into it and step the simulation, the dynamics-core analogue
// of hellog3n/main.go's "create window, add objects, render loop" shape —
// minus the window, GLFW context and renderer: this program uses
// dynamics.NoopRenderer and prints state to stdout instead of painting.
package main

import (
	"flag"
	"fmt"

	"github.com/vortex2d/engine/dynamics"
	"github.com/vortex2d/engine/dynamicscfg"
	"github.com/vortex2d/engine/math2d"
)

func main() {
	logLevel := flag.String("log-level", "error", "dynamics/dynamicscfg log level: debug|info|warn|error|fatal")
	flag.Parse()

	if err := dynamics.SetLogLevel(*logLevel); err != nil {
		panic(err)
	}
	if err := dynamicscfg.SetLogLevel(*logLevel); err != nil {
		panic(err)
	}

	cfg := dynamics.DefaultWorldConfig()
	cfg.LinearDrag = math2d.Vector2{}
	world := dynamics.NewWorld(800, 600, cfg, dynamics.NoopRenderer{})

	ball, err := dynamics.NewBody(dynamics.BodyConfig{
		Shape:  dynamics.ShapeConfig{Radius: 10},
		Nature: dynamics.NatureConfig{Mass: 1},
	}, dynamics.Circle)
	if err != nil {
		panic(err)
	}
	ball.SetPos(math2d.Vector2{X: 400, Y: 0})

	if err := world.Append(ball); err != nil {
		panic(err)
	}

	world.Start()
	for i := 0; i < 10; i++ {
		world.Step()
		fmt.Printf("step %2d: pos=(%.2f, %.2f) v=(%.2f, %.2f)\n", i+1, ball.Pos.X, ball.Pos.Y, ball.V.X, ball.V.Y)
	}
}
