package services

import (
	"sleeperbus/internal/domain"
	"sleeperbus/internal/utils"
)

// FareService prices a segment from the route's cumulative distances.
type FareService struct {
	Route    *domain.Route
	UnitRate float64
}

// Fare returns the per-seat price between two stations, same both ways.
func (s FareService) Fare(from, to string) (int64, error) {
	fd, err := s.Route.DistanceOf(from)
	if err != nil {
		return 0, err
	}
	td, err := s.Route.DistanceOf(to)
	if err != nil {
		return 0, err
	}
	return utils.ComputeFare(fd, td, s.UnitRate), nil
}
