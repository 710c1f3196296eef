package config

import (
	"errors"
	"ohheck-server/internal/rng"
	"ohheck-server/internal/util"
	"ohheck-server/pkg/ohheck"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Oh Heck server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game Game `yaml:"game"`
}

// Player is a seat at the table
type Player struct {
	Name  string `yaml:"name"`
	Human bool   `yaml:"human"`
}

// Game configures every game the server deals
type Game struct {
	Players           []Player      `yaml:"players" ignored:"true"`
	StartHandSize     int           `yaml:"startHandSize" envconfig:"start_hand_size"`
	FinalHandSize     int           `yaml:"finalHandSize" envconfig:"final_hand_size"`
	Dealer            int           `yaml:"dealer"`
	Seed              int64         `yaml:"seed"`
	ThinkTime         time.Duration `yaml:"thinkTime" envconfig:"think_time"`
	TickInterval      time.Duration `yaml:"tickInterval" envconfig:"tick_interval"`
	DealDelay         time.Duration `yaml:"dealDelay" envconfig:"deal_delay"`
	SelectWinnerDelay time.Duration `yaml:"selectWinnerDelay" envconfig:"select_winner_delay"`
	TrickResultDelay  time.Duration `yaml:"trickResultDelay" envconfig:"trick_result_delay"`
	HandResultDelay   time.Duration `yaml:"handResultDelay" envconfig:"hand_result_delay"`
	GameResultDelay   time.Duration `yaml:"gameResultDelay" envconfig:"game_result_delay"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	opts := ohheck.DefaultOptions()

	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Game = Game{
		Players: []Player{
			{Name: "Tom"},
			{Name: "Max"},
			{Name: "Dan"},
			{Name: "Player", Human: true},
		},
		StartHandSize:     opts.StartHandSize,
		FinalHandSize:     opts.FinalHandSize,
		Dealer:            opts.Dealer,
		ThinkTime:         opts.ThinkTime,
		TickInterval:      opts.TickInterval,
		DealDelay:         opts.Delays.Deal,
		SelectWinnerDelay: opts.Delays.SelectWinner,
		TrickResultDelay:  opts.Delays.TrickResult,
		HandResultDelay:   opts.Delays.HandResult,
		GameResultDelay:   opts.Delays.GameResult,
	}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file named by OHHECK_CONFIG_FILE is optional, environment variables prefixed with OHHECK_ take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("OHHECK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("ohheck", &cfg); err != nil {
		return err
	}

	if len(cfg.Game.Players) == 0 {
		return errors.New("at least one player must be configured")
	}

	if cfg.Game.TickInterval < 0 {
		return errors.New("game.tickInterval cannot be negative")
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Options returns the game options
func (g Game) Options() ohheck.Options {
	return ohheck.Options{
		StartHandSize: g.StartHandSize,
		FinalHandSize: g.FinalHandSize,
		Dealer:        g.Dealer,
		ThinkTime:     g.ThinkTime,
		TickInterval:  g.TickInterval,
		Delays: ohheck.Delays{
			Deal:         g.DealDelay,
			SelectWinner: g.SelectWinnerDelay,
			TrickResult:  g.TrickResultDelay,
			HandResult:   g.HandResultDelay,
			GameResult:   g.GameResultDelay,
		},
		RNG: rng.New(g.Seed),
	}
}

// Seats returns the table in seating order
// Player IDs start at 1 in seat order, computer players without a name get a random one
func (g Game) Seats() []ohheck.Seat {
	seats := make([]ohheck.Seat, len(g.Players))
	for i, player := range g.Players {
		seat := ohheck.Seat{
			PlayerID: int64(i + 1),
			Name:     player.Name,
		}

		if player.Human {
			seat.Agent = ohheck.NewHumanAgent()
		} else if seat.Name == "" {
			seat.Name = util.GetRandomName()
		}

		if seat.Name == "" {
			seat.Name = "Player"
		}

		seats[i] = seat
	}

	return seats
}

// HumanPlayerIDs returns the IDs of the seats played by people
func (g Game) HumanPlayerIDs() []int64 {
	ids := make([]int64, 0)
	for i, player := range g.Players {
		if player.Human {
			ids = append(ids, int64(i+1))
		}
	}

	return ids
}
