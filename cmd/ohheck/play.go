package main

import (
	"bufio"
	"errors"
	"io"
	"ohheck-server/internal/config"
	"ohheck-server/pkg/ohheck"
	"os"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type PlayCmd struct {
	Seed int64  `default:"0" help:"RNG seed (0 for random)"`
	Name string `default:"Player" help:"Your name at the table"`
	Fast bool   `help:"Skip the pauses between tricks and hands"`
}

func (p *PlayCmd) Run() error {
	cfg := config.Instance().Game
	cfg.Seed = p.Seed
	cfg.Players = []config.Player{
		{},
		{},
		{},
		{Name: p.Name, Human: true},
	}

	if p.Fast {
		cfg.ThinkTime = 0
		cfg.DealDelay = 0
		cfg.SelectWinnerDelay = 0
		cfg.TrickResultDelay = 0
		cfg.HandResultDelay = 0
		cfg.GameResultDelay = 0
	}

	game, err := ohheck.NewGame(logrus.StandardLogger(), cfg.Seats(), cfg.Options())
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	width := 0
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	t := newTerminal(os.Stdout, game, cfg.HumanPlayerIDs()[0], width)
	return t.run(quartz.NewReal(), readLines(os.Stdin))
}

// readLines sends each line of r, the channel is closed at EOF
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}

		if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
			logrus.WithError(err).Error("could not read input")
		}
	}()

	return lines
}
