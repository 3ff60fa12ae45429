package domain

import (
	"fmt"
	"strings"

	"sleeperbus/internal/domain/models"
)

// Route is the ordered stop list of the bus. Positions are dense indexes
// 0..N-1 in declaration order and are the only source of direction.
type Route struct {
	stations []models.Station
	index    map[string]int
}

func NewRoute(stations []models.Station) (*Route, error) {
	if len(stations) == 0 {
		return nil, ValidationError{Field: "stations", Msg: "route needs at least one station"}
	}
	r := &Route{
		stations: make([]models.Station, 0, len(stations)),
		index:    make(map[string]int, len(stations)),
	}
	for i, st := range stations {
		id := strings.TrimSpace(st.ID)
		if id == "" {
			return nil, ValidationError{Field: "stations", Msg: fmt.Sprintf("station #%d has empty id", i+1)}
		}
		if _, dup := r.index[id]; dup {
			return nil, ValidationError{Field: "stations", Msg: "duplicate station " + id}
		}
		if i > 0 && st.Distance < r.stations[i-1].Distance {
			return nil, ValidationError{Field: "stations", Msg: "distance decreases at " + id}
		}
		st.ID = id
		r.index[id] = i
		r.stations = append(r.stations, st)
	}
	return r, nil
}

// Stations returns the stops in route order.
func (r *Route) Stations() []models.Station {
	return append([]models.Station(nil), r.stations...)
}

func (r *Route) Len() int { return len(r.stations) }

func (r *Route) IndexOf(stationID string) (int, error) {
	i, ok := r.index[strings.TrimSpace(stationID)]
	if !ok {
		return -1, NotFoundError{Resource: "station", ID: stationID, Err: ErrUnknownStation}
	}
	return i, nil
}

func (r *Route) DistanceOf(stationID string) (float64, error) {
	i, err := r.IndexOf(stationID)
	if err != nil {
		return 0, err
	}
	return r.stations[i].Distance, nil
}

func (r *Route) Station(stationID string) (models.Station, error) {
	i, err := r.IndexOf(stationID)
	if err != nil {
		return models.Station{}, err
	}
	return r.stations[i], nil
}

// Normalize orders a station pair so the segment runs forward along the route.
func (r *Route) Normalize(from, to string) (models.Segment, error) {
	fi, err := r.IndexOf(from)
	if err != nil {
		return models.Segment{}, err
	}
	ti, err := r.IndexOf(to)
	if err != nil {
		return models.Segment{}, err
	}
	if ti < fi {
		fi, ti = ti, fi
	}
	return models.Segment{From: r.stations[fi].ID, To: r.stations[ti].ID}, nil
}

// Span converts a segment to its half-open position interval [from, to).
func (r *Route) Span(seg models.Segment) (Span, error) {
	fi, err := r.IndexOf(seg.From)
	if err != nil {
		return Span{}, err
	}
	ti, err := r.IndexOf(seg.To)
	if err != nil {
		return Span{}, err
	}
	if ti < fi {
		fi, ti = ti, fi
	}
	return Span{From: fi, To: ti}, nil
}
