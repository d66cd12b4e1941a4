package api

import (
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/repository"
	"github.com/Domenick1991/airportadm/internal/service/auth"
	"github.com/Domenick1991/airportadm/internal/service/crud"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Services bundles every use case the router serves.
type Services struct {
	Airlines      crud.UseCase[domain.Airline, domain.AirlineFilter]
	Destinations  crud.UseCase[domain.Destination, domain.DestinationFilter]
	Flights       crud.UseCase[domain.Flight, domain.FlightFilter]
	Passengers    crud.UseCase[domain.Passenger, domain.PassengerFilter]
	Pilots        crud.UseCase[domain.Pilot, domain.PilotFilter]
	TravelClasses crud.UseCase[domain.TravelClass, domain.TravelClassFilter]
	Tickets       crud.UseCase[domain.PlaneTicket, domain.PlaneTicketFilter]
	Users         crud.UseCase[domain.ApiUser, domain.ApiUserFilter]
	Auth          auth.UseCase
	Audit         repository.AuditRepository
}

// NewRouter builds the full route tree. Reads are public, mutations require a
// bearer token, API user management requires the admin role.
func NewRouter(services Services, logger zerolog.Logger, swaggerDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	if swaggerDir != "" {
		router.Static("/openapi", swaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi/openapi.json"))))
	}

	public := router.Group("")
	protected := router.Group("")
	protected.Use(RequireAuth(services.Auth))
	admin := router.Group("")
	admin.Use(RequireAuth(services.Auth), RequireRole(domain.RoleAdmin))

	NewAuthHandler(services.Auth).Register(public)

	NewCrudHandler("airlines", services.Airlines,
		parseAirlineFilter, domain.AirlineFilter.Empty,
		func(a *domain.Airline, id int64) { a.ID = id },
		airlineLayout()).Register(public, protected)

	NewCrudHandler("destinations", services.Destinations,
		parseDestinationFilter, domain.DestinationFilter.Empty,
		func(d *domain.Destination, id int64) { d.ID = id },
		destinationLayout()).Register(public, protected)

	NewCrudHandler("flights", services.Flights,
		parseFlightFilter, domain.FlightFilter.Empty,
		func(f *domain.Flight, id int64) { f.ID = id },
		flightLayout()).Register(public, protected)

	NewCrudHandler("passengers", services.Passengers,
		parsePassengerFilter, domain.PassengerFilter.Empty,
		func(p *domain.Passenger, id int64) { p.ID = id },
		passengerLayout()).Register(public, protected)

	NewCrudHandler("pilots", services.Pilots,
		parsePilotFilter, domain.PilotFilter.Empty,
		func(p *domain.Pilot, id int64) { p.ID = id },
		pilotLayout()).Register(public, protected)

	NewCrudHandler("travelclasses", services.TravelClasses,
		parseTravelClassFilter, domain.TravelClassFilter.Empty,
		func(t *domain.TravelClass, id int64) { t.ID = id },
		travelClassLayout()).Register(public, protected)

	NewCrudHandler("planetickets", services.Tickets,
		parseTicketFilter, domain.PlaneTicketFilter.Empty,
		func(t *domain.PlaneTicket, id int64) { t.ID = id },
		ticketLayout()).Register(public, protected)

	NewCrudHandler("apiusers", services.Users,
		parseApiUserFilter, domain.ApiUserFilter.Empty,
		func(u *domain.ApiUser, id int64) { u.ID = id },
		apiUserLayout()).Register(admin, admin)

	NewAuditHandler(services.Audit).Register(admin)

	return router
}
