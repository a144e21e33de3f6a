package records

import (
	"encoding/json"
	"fmt"

	"github.com/berlin-open-data/bvg-archiver/bvgapi"
	"github.com/berlin-open-data/bvg-archiver/internal/timeutil"
)

// Extract flattens one raw stop event into a Record. The line name, line
// product and stop name are required; an item lacking any of them fails
// extraction so the caller can skip it.
func Extract(item bvgapi.StopEvent, stationID string) (Record, error) {
	if item.Line == nil || item.Line.Name == "" {
		return Record{}, fmt.Errorf("missing line.name")
	}
	if item.Line.Product == "" {
		return Record{}, fmt.Errorf("missing line.product")
	}
	if item.Stop == nil || item.Stop.Name == "" {
		return Record{}, fmt.Errorf("missing stop.name")
	}

	remarks, err := encodeRemarks(item.Remarks)
	if err != nil {
		return Record{}, fmt.Errorf("encoding remarks: %w", err)
	}

	return Record{
		TripID:        item.TripID,
		LineName:      item.Line.Name,
		Product:       item.Line.Product,
		StationID:     stationID,
		StationName:   item.Stop.Name,
		Direction:     item.Direction,
		ScheduledTime: item.PlannedWhen,
		ActualTime:    item.When,
		Delay:         item.Delay,
		DelayCalc:     computeDelay(item.PlannedWhen, item.When),
		Occupancy:     item.Occupancy,
		Remarks:       remarks,
	}, nil
}

// computeDelay derives actual minus scheduled in seconds, positive when
// late. Nil when either timestamp is missing or unparseable.
func computeDelay(plannedWhen, when string) *float64 {
	if plannedWhen == "" || when == "" {
		return nil
	}
	planned, err := timeutil.ParseISO8601(plannedWhen)
	if err != nil {
		return nil
	}
	actual, err := timeutil.ParseISO8601(when)
	if err != nil {
		return nil
	}
	d := actual.Sub(planned).Seconds()
	return &d
}

// encodeRemarks reduces remarks to their text fields and serializes them
// as one JSON array string, keeping the remarks column scalar.
func encodeRemarks(remarks []bvgapi.Remark) (string, error) {
	texts := make([]string, 0, len(remarks))
	for _, r := range remarks {
		texts = append(texts, r.Text)
	}
	b, err := json.Marshal(texts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
