package main

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type CLI struct {
	LogLevel string      `default:"warn" enum:"trace,debug,info,warn,error" help:"Log level written to stderr"`
	Play     PlayCmd     `cmd:"" help:"Play a game against three computer players"`
	Simulate SimulateCmd `cmd:"" help:"Play computer-only games and print the results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ohheck"),
		kong.Description("Oh Heck, the trick-taking card game"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logrus.ParseLevel(cli.LogLevel)
	ctx.FatalIfErrorf(err)
	logrus.SetLevel(level)

	ctx.FatalIfErrorf(ctx.Run())
}
