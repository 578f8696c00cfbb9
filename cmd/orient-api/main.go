// Command orient-api serves the address workflow over HTTP.
//
//	GET /orient?address=3+David+St,+St+Kilda+East  -> bearing, compass, road
//	GET /health
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/danielflood/microburbs/internal/config"
	"github.com/danielflood/microburbs/internal/geo"
	"github.com/danielflood/microburbs/internal/server"
	"github.com/danielflood/microburbs/internal/service"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load config")
	}

	svc := service.NewAddressService(
		geo.NewGeocoder(cfg.NominatimURL, cfg.UserAgent, cfg.HTTPTimeout),
		geo.NewRoadFetcher(cfg.OverpassURL, cfg.UserAgent, cfg.HTTPTimeout),
		cfg.SearchRadiusM,
	)

	srv := server.New(svc, logger)

	logger.Info().Str("addr", cfg.ServerAddress).Msg("starting orient-api")
	if err := srv.Run(cfg.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
