package bvgapi

// Endpoint selects which side of the stop event board to fetch.
type Endpoint string

const (
	Departures Endpoint = "departures"
	Arrivals   Endpoint = "arrivals"
)

// Endpoints returns both endpoints in their fixed processing order.
func Endpoints() []Endpoint {
	return []Endpoint{Departures, Arrivals}
}

// Valid reports whether e names a known endpoint.
func (e Endpoint) Valid() bool {
	return e == Departures || e == Arrivals
}

func (e Endpoint) String() string {
	return string(e)
}

// Line identifies the transit line serving a stop event.
type Line struct {
	Name    string `json:"name"`
	Product string `json:"product"`
}

// Stop is the stop a stop event was reported for.
type Stop struct {
	Name string `json:"name"`
}

// Remark is a free-text notice attached to a stop event.
type Remark struct {
	Text string `json:"text"`
}

// StopEvent is one raw departure or arrival as returned by the API.
// Line and Stop are pointers so that an absent object can be told apart
// from an empty one.
type StopEvent struct {
	TripID      string   `json:"tripId"`
	Line        *Line    `json:"line"`
	Stop        *Stop    `json:"stop"`
	Direction   string   `json:"direction"`
	PlannedWhen string   `json:"plannedWhen"`
	When        string   `json:"when"`
	Delay       *int64   `json:"delay"`
	Occupancy   string   `json:"occupancy"`
	Remarks     []Remark `json:"remarks"`
}

// StopEventsResponse carries the item list under a key named by the
// endpoint that was requested.
type StopEventsResponse struct {
	Departures []StopEvent `json:"departures"`
	Arrivals   []StopEvent `json:"arrivals"`
}

// Events selects the item list matching ep. The slice is nil when the
// response is absent or lacks the endpoint's key.
func (r *StopEventsResponse) Events(ep Endpoint) []StopEvent {
	if r == nil {
		return nil
	}
	switch ep {
	case Departures:
		return r.Departures
	case Arrivals:
		return r.Arrivals
	}
	return nil
}
