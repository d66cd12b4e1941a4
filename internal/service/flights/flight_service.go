package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/service/crud"
)

// ReferenceChecker is the slice of the gateway needed to validate foreign keys.
type ReferenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service wraps the generic flight service with reference validation: a flight
// may only point at an airline, pilot and destinations that already exist.
type Service struct {
	*crud.Service[domain.Flight, domain.FlightFilter]
	airlines     ReferenceChecker
	pilots       ReferenceChecker
	destinations ReferenceChecker
}

func NewService(
	base *crud.Service[domain.Flight, domain.FlightFilter],
	airlines, pilots, destinations ReferenceChecker,
) *Service {
	return &Service{
		Service:      base,
		airlines:     airlines,
		pilots:       pilots,
		destinations: destinations,
	}
}

func (s *Service) Create(ctx context.Context, flight *domain.Flight) error {
	if err := s.checkReferences(ctx, flight); err != nil {
		return err
	}
	return s.Service.Create(ctx, flight)
}

func (s *Service) Replace(ctx context.Context, flight *domain.Flight) error {
	if err := s.checkReferences(ctx, flight); err != nil {
		return err
	}
	return s.Service.Replace(ctx, flight)
}

func (s *Service) checkReferences(ctx context.Context, flight *domain.Flight) error {
	checks := []struct {
		repo ReferenceChecker
		name string
		id   int64
	}{
		{s.airlines, "airline", flight.AirlineID},
		{s.pilots, "pilot", flight.PilotID},
		{s.destinations, "start destination", flight.StartDestinationID},
		{s.destinations, "end destination", flight.EndDestinationID},
	}
	for _, c := range checks {
		ok, err := c.repo.Exists(ctx, c.id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s %d", domain.ErrInvalidReference, c.name, c.id)
		}
	}
	return nil
}

var _ crud.UseCase[domain.Flight, domain.FlightFilter] = (*Service)(nil)
