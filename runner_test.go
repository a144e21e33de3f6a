package archiver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berlin-open-data/bvg-archiver/bvgapi"
	"github.com/berlin-open-data/bvg-archiver/config"
	"github.com/berlin-open-data/bvg-archiver/logging"
	"github.com/berlin-open-data/bvg-archiver/records"
)

type pairKey struct {
	station string
	ep      bvgapi.Endpoint
}

type stubFetcher struct {
	responses map[pairKey]*bvgapi.StopEventsResponse
	errs      map[pairKey]error
	calls     []pairKey
}

func (s *stubFetcher) FetchStopEvents(_ context.Context, stationID string, ep bvgapi.Endpoint, _ ...bvgapi.Option) (*bvgapi.StopEventsResponse, error) {
	k := pairKey{stationID, ep}
	s.calls = append(s.calls, k)
	if err := s.errs[k]; err != nil {
		return nil, err
	}
	return s.responses[k], nil
}

type stubPersister struct {
	persisted map[pairKey]int
	errs      map[pairKey]error
}

func (s *stubPersister) Persist(_ context.Context, table records.Table, stationName string, ep bvgapi.Endpoint) error {
	k := pairKey{stationName, ep}
	if err := s.errs[k]; err != nil {
		return err
	}
	if s.persisted == nil {
		s.persisted = map[pairKey]int{}
	}
	s.persisted[k] = len(table)
	return nil
}

func testConfig() config.AppConfig {
	return config.AppConfig{
		Stations: []config.Station{
			{ID: "900110007", Name: "schoenhauser_alle_bornholmer_strasse"},
			{ID: "900140011", Name: "antonplatz"},
		},
		Directions: []string{"Wedding, Virchow-Klinikum"},
	}
}

func event(direction string) bvgapi.StopEvent {
	return bvgapi.StopEvent{
		TripID:      "1",
		Line:        &bvgapi.Line{Name: "S2", Product: "suburban"},
		Stop:        &bvgapi.Stop{Name: "Antonplatz"},
		Direction:   direction,
		PlannedWhen: "2024-01-01T10:00:00+01:00",
		When:        "2024-01-01T10:02:30+01:00",
	}
}

func boards(departures, arrivals []bvgapi.StopEvent) *bvgapi.StopEventsResponse {
	return &bvgapi.StopEventsResponse{Departures: departures, Arrivals: arrivals}
}

func allBoards(cfg config.AppConfig) map[pairKey]*bvgapi.StopEventsResponse {
	responses := map[pairKey]*bvgapi.StopEventsResponse{}
	for _, st := range cfg.Stations {
		responses[pairKey{st.ID, bvgapi.Departures}] = &bvgapi.StopEventsResponse{
			Departures: []bvgapi.StopEvent{event("Wedding, Virchow-Klinikum")},
		}
		responses[pairKey{st.ID, bvgapi.Arrivals}] = &bvgapi.StopEventsResponse{
			Arrivals: []bvgapi.StopEvent{event("")},
		}
	}
	return responses
}

func discard() *slog.Logger {
	return logging.New(io.Discard, slog.LevelInfo)
}

func TestRunProcessesAllPairsInOrder(t *testing.T) {
	cfg := testConfig()
	fetcher := &stubFetcher{responses: allBoards(cfg)}
	persister := &stubPersister{}
	runner := NewRunner(cfg, fetcher, persister, discard())

	archived := runner.Run(context.Background())

	assert.Equal(t, 4, archived)
	require.Len(t, fetcher.calls, 4)
	assert.Equal(t, []pairKey{
		{"900110007", bvgapi.Departures},
		{"900110007", bvgapi.Arrivals},
		{"900140011", bvgapi.Departures},
		{"900140011", bvgapi.Arrivals},
	}, fetcher.calls)

	assert.Equal(t, 1, persister.persisted[pairKey{"antonplatz", bvgapi.Departures}])
	assert.Equal(t, 1, persister.persisted[pairKey{"antonplatz", bvgapi.Arrivals}])
}

func TestRunFetchFailureSkipsPair(t *testing.T) {
	cfg := testConfig()
	fetcher := &stubFetcher{
		responses: allBoards(cfg),
		errs: map[pairKey]error{
			{"900110007", bvgapi.Departures}: errors.New("HTTP 502"),
		},
	}
	persister := &stubPersister{}
	runner := NewRunner(cfg, fetcher, persister, discard())

	archived := runner.Run(context.Background())

	assert.Equal(t, 3, archived)
	assert.Len(t, fetcher.calls, 4, "a failed fetch must not abort remaining pairs")
	_, called := persister.persisted[pairKey{"schoenhauser_alle_bornholmer_strasse", bvgapi.Departures}]
	assert.False(t, called, "failed fetch must skip persist for that pair")
}

func TestRunPersistFailureIsolated(t *testing.T) {
	cfg := testConfig()
	fetcher := &stubFetcher{responses: allBoards(cfg)}
	persister := &stubPersister{
		errs: map[pairKey]error{
			{"schoenhauser_alle_bornholmer_strasse", bvgapi.Arrivals}: errors.New("upload failed"),
		},
	}
	runner := NewRunner(cfg, fetcher, persister, discard())

	archived := runner.Run(context.Background())

	assert.Equal(t, 3, archived)
	assert.Len(t, fetcher.calls, 4)
	assert.Equal(t, 1, persister.persisted[pairKey{"antonplatz", bvgapi.Arrivals}])
}

func TestRunFilteredPairNotCounted(t *testing.T) {
	cfg := testConfig()
	responses := allBoards(cfg)
	// every departure at antonplatz heads somewhere off the allow-list
	responses[pairKey{"900140011", bvgapi.Departures}] = boards(
		[]bvgapi.StopEvent{event("Other Direction")}, nil)
	fetcher := &stubFetcher{responses: responses}
	persister := &stubPersister{}
	runner := NewRunner(cfg, fetcher, persister, discard())

	archived := runner.Run(context.Background())

	assert.Equal(t, 3, archived)
	assert.Equal(t, 0, persister.persisted[pairKey{"antonplatz", bvgapi.Departures}])
}
