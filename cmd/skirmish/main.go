package main

import (
	"flag"
	"net/http"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/voidforge/skirmish/internal/app"
	"github.com/voidforge/skirmish/internal/obs"
	"github.com/voidforge/skirmish/internal/sim"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// .env is optional; flags and real env vars win.
	_ = godotenv.Load()

	seed := flag.Uint64("seed", envUint64("SKIRMISH_SEED", 42), "world seed")
	obsAddr := flag.String("observer-addr", os.Getenv("SKIRMISH_OBSERVER_ADDR"),
		"observer listen address, e.g. :8090 (empty = disabled)")
	flag.Parse()

	var publish func(sim.Snapshot)
	if *obsAddr != "" {
		server := obs.NewServer(log.With().Str("component", "observer").Logger())
		publish = server.Publish
		go func() {
			log.Info().Str("addr", *obsAddr).Msg("observer server listening")
			if err := http.ListenAndServe(*obsAddr, server.Router()); err != nil {
				log.Error().Err(err).Msg("observer server stopped")
			}
		}()
	}

	log.Info().Uint64("seed", *seed).Msg("starting")
	ebiten.SetWindowTitle("Skirmish")
	ebiten.SetWindowSize(sim.WorldW, sim.WorldH)
	if err := ebiten.RunGame(app.New(*seed, publish)); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}

func envUint64(key string, def uint64) uint64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}
