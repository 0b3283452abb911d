// Command geo-backfill geocodes events whose coordinates are missing,
// using the same search engine the admin panel uses for typeahead.
package main

import (
	"context"
	"time"

	"booking_admin_backend/internal/events/repository"
	"booking_admin_backend/internal/geo"
	geoservice "booking_admin_backend/internal/geo/service"
	"booking_admin_backend/platform/config"
	"booking_admin_backend/platform/db"
	"booking_admin_backend/platform/logger"
)

const batchSize = 25

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting event coordinate backfill")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	repo := repository.New(pool)
	search := geo.NewModule(cfg, log).Service()
	sess := geoservice.NewSession()

	for {
		pending, err := repo.ListMissingCoordinates(ctx, batchSize)
		if err != nil {
			log.Error("failed to list events", "error", err)
			return
		}
		if len(pending) == 0 {
			log.Info("no events left to geocode")
			return
		}

		progress := false

		for _, event := range pending {
			// A fresh session per lookup keeps one event's reference
			// point from biasing the next.
			sess.Reset()

			best := search.SearchBest(ctx, sess, event.Location)
			if best == nil {
				log.Info("no geocode result", "eventId", event.ID, "location", event.Location)
				time.Sleep(time.Second)
				continue
			}

			if err := repo.SetCoordinates(ctx, event.ID, best.Coordinates.Lat, best.Coordinates.Lng); err != nil {
				log.Error("failed to update event", "eventId", event.ID, "error", err)
				time.Sleep(time.Second)
				continue
			}

			log.Info("event geocoded",
				"eventId", event.ID,
				"lat", best.Coordinates.Lat,
				"lng", best.Coordinates.Lng,
				"source", best.Source.String(),
			)
			progress = true
			time.Sleep(time.Second)
		}

		if !progress {
			log.Info("no geocode progress in batch, stopping")
			return
		}
	}
}
