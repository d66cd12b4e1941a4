package tickets

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/service/crud"
)

type ReferenceChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service validates that a ticket's passenger, travel class and flight exist
// before handing the write to the generic service.
type Service struct {
	*crud.Service[domain.PlaneTicket, domain.PlaneTicketFilter]
	passengers    ReferenceChecker
	travelClasses ReferenceChecker
	flights       ReferenceChecker
}

func NewService(
	base *crud.Service[domain.PlaneTicket, domain.PlaneTicketFilter],
	passengers, travelClasses, flights ReferenceChecker,
) *Service {
	return &Service{
		Service:       base,
		passengers:    passengers,
		travelClasses: travelClasses,
		flights:       flights,
	}
}

func (s *Service) Create(ctx context.Context, ticket *domain.PlaneTicket) error {
	if err := s.checkReferences(ctx, ticket); err != nil {
		return err
	}
	return s.Service.Create(ctx, ticket)
}

func (s *Service) Replace(ctx context.Context, ticket *domain.PlaneTicket) error {
	if err := s.checkReferences(ctx, ticket); err != nil {
		return err
	}
	return s.Service.Replace(ctx, ticket)
}

func (s *Service) checkReferences(ctx context.Context, ticket *domain.PlaneTicket) error {
	checks := []struct {
		repo ReferenceChecker
		name string
		id   int64
	}{
		{s.passengers, "passenger", ticket.PassengerID},
		{s.travelClasses, "travel class", ticket.TravelClassID},
		{s.flights, "flight", ticket.FlightID},
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

var _ crud.UseCase[domain.PlaneTicket, domain.PlaneTicketFilter] = (*Service)(nil)
