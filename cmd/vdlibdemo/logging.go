package main

import (
	"github.com/urfave/cli"

	"github.com/potato3d/vdlib/log"
)

var logger = log.New("vdlibdemo")

func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	default:
		log.SetLevel(log.Notice)
	}
}
