package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "vdlibdemo"
	app.Usage = "exercise the vdlib visibility engine without a GPU or windowing system"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v", Usage: "verbose logging"},
		cli.BoolFlag{Name: "vv", Usage: "debug logging"},
	}

	app.Commands = []cli.Command{
		buildCommand(),
		demoCommand(),
	}

	app.Before = func(ctx *cli.Context) error {
		setupLogging(ctx)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
