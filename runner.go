// Package archiver drives one fetch/process/save cycle over the
// configured stations and endpoints.
package archiver

import (
	"context"
	"log/slog"

	"github.com/berlin-open-data/bvg-archiver/bvgapi"
	"github.com/berlin-open-data/bvg-archiver/config"
	"github.com/berlin-open-data/bvg-archiver/records"
)

// Fetcher fetches one endpoint's stop events for one station.
type Fetcher interface {
	FetchStopEvents(ctx context.Context, stationID string, ep bvgapi.Endpoint, opts ...bvgapi.Option) (*bvgapi.StopEventsResponse, error)
}

// Persister writes one table to the object store.
type Persister interface {
	Persist(ctx context.Context, table records.Table, stationName string, ep bvgapi.Endpoint) error
}

// Runner processes the configured stations sequentially, one endpoint at
// a time. Failures are contained per (station, endpoint) pair.
type Runner struct {
	cfg       config.AppConfig
	fetcher   Fetcher
	persister Persister
	logger    *slog.Logger
}

// NewRunner creates a runner over the given configuration and collaborators.
func NewRunner(cfg config.AppConfig, fetcher Fetcher, persister Persister, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		fetcher:   fetcher,
		persister: persister,
		logger:    logger,
	}
}

// Run executes one full cycle and returns the number of artifacts
// persisted. An error in one pair is logged and never aborts the
// remaining pairs.
func (r *Runner) Run(ctx context.Context) int {
	archived := 0
	for _, st := range r.cfg.Stations {
		for _, ep := range bvgapi.Endpoints() {
			persisted, err := r.runPair(ctx, st, ep)
			if err != nil {
				r.logger.Error("processing failed",
					slog.String("station", st.Name),
					slog.String("endpoint", ep.String()),
					slog.String("error", err.Error()))
				continue
			}
			if persisted {
				archived++
			}
		}
	}
	return archived
}

// runPair runs fetch, build and persist for one (station, endpoint) pair.
// A fetch failure only skips the pair; it is logged here and not returned,
// matching the build step which never sees an absent response as fatal.
func (r *Runner) runPair(ctx context.Context, st config.Station, ep bvgapi.Endpoint) (bool, error) {
	resp, err := r.fetcher.FetchStopEvents(ctx, st.ID, ep)
	if err != nil {
		r.logger.Error("api request failed",
			slog.String("station", st.Name),
			slog.String("endpoint", ep.String()),
			slog.String("error", err.Error()))
		return false, nil
	}

	table := records.BuildTable(resp, st.ID, ep, r.cfg, r.logger)

	if err := r.persister.Persist(ctx, table, st.Name, ep); err != nil {
		return false, err
	}
	return len(table) > 0, nil
}
