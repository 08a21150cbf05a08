package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kosynka/patience/config"
	"github.com/kosynka/patience/rules"
	"github.com/kosynka/patience/shell"
	"github.com/kosynka/patience/stats"
)

var GitVersion string

const banner = `
  ┌─────────────────────────────┐
  │  p a t i e n c e            │
  │  a solitaire engine         │
  └─────────────────────────────┘
`

func main() {
	fmt.Print(banner, "\n")
	if GitVersion != "" {
		fmt.Println(GitVersion)
	}

	cfg := config.New()
	debug := flag.Bool("debug", cfg.GetBool(config.KeyDebug), "enable debug logging")
	variant := flag.String("variant", cfg.GetString(config.KeyVariant), "rule variant to start with")
	statsDB := flag.String("stats-db", cfg.GetString(config.KeyStatsDB), "path to the stats database; empty disables stats")
	player := flag.String("player", cfg.GetString(config.KeyPlayer), "player name recorded with wins")
	flag.Parse()
	cfg.Set(config.KeyDebug, *debug)
	cfg.Set(config.KeyVariant, *variant)
	cfg.Set(config.KeyStatsDB, *statsDB)
	cfg.Set(config.KeyPlayer, *player)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.KeyDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	registry := rules.NewRegistry()

	var store *stats.Store
	if path := cfg.GetString(config.KeyStatsDB); path != "" {
		var err error
		store, err = stats.Open(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("stats store unavailable, continuing without it")
			store = nil
		} else {
			defer store.Close()
		}
	}

	sc, err := shell.NewController(cfg, registry, store)
	if err != nil {
		log.Fatal().Err(err).Msg("could not start shell")
	}
	defer sc.Close()

	sc.Loop()
	log.Info().Msg("goodbye")
}
