package records

import (
	"log/slog"

	"github.com/berlin-open-data/bvg-archiver/bvgapi"
	"github.com/berlin-open-data/bvg-archiver/config"
)

// BuildTable filters and flattens one response's item list, in input
// order. Departures are restricted to the configured direction allow-list;
// arrivals are kept unfiltered. A malformed item is logged and skipped
// without discarding the rest of the batch.
func BuildTable(resp *bvgapi.StopEventsResponse, stationID string, ep bvgapi.Endpoint, cfg config.AppConfig, logger *slog.Logger) Table {
	items := resp.Events(ep)
	if items == nil {
		logger.Warn("no data in response",
			slog.String("endpoint", ep.String()),
			slog.String("station_id", stationID))
		return Table{}
	}

	table := make(Table, 0, len(items))
	for _, item := range items {
		if ep == bvgapi.Departures && !cfg.DirectionAllowed(item.Direction) {
			continue
		}
		rec, err := Extract(item, stationID)
		if err != nil {
			logger.Warn("skipping item",
				slog.String("endpoint", ep.String()),
				slog.String("station_id", stationID),
				slog.String("error", err.Error()))
			continue
		}
		table = append(table, rec)
	}
	return table
}
