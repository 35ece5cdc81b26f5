package cmd

import (
	"github.com/daviskauffmann/raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("q") {
		log.SetLevel(log.Warning)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Debug)
	}
}
