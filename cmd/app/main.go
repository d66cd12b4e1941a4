package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airportadm/api"
	"github.com/Domenick1991/airportadm/config"
	"github.com/Domenick1991/airportadm/internal/bootstrap"
	"github.com/Domenick1991/airportadm/internal/cache"
	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/kafka"
	"github.com/Domenick1991/airportadm/internal/repository"
	"github.com/Domenick1991/airportadm/internal/service/auth"
	"github.com/Domenick1991/airportadm/internal/service/crud"
	"github.com/Domenick1991/airportadm/internal/service/flights"
	"github.com/Domenick1991/airportadm/internal/service/tickets"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.Migrate(cfg.Database.MigrateURL()); err != nil {
		logger.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	listTTL := time.Duration(cfg.Cache.ListTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, listTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	topic := cfg.Kafka.ChangesTopic

	airlineRepo := repository.NewAirlineRepository(pool)
	destinationRepo := repository.NewDestinationRepository(pool)
	pilotRepo := repository.NewPilotRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	travelClassRepo := repository.NewTravelClassRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	ticketRepo := repository.NewPlaneTicketRepository(pool)
	userRepo := repository.NewApiUserRepository(pool)

	airlineSvc := crud.NewService("airline", airlineRepo,
		func(a *domain.Airline) int64 { return a.ID },
		func(a *domain.Airline, id int64) { a.ID = id },
		crud.WithCache[domain.Airline, domain.AirlineFilter](cache.NewListCache[domain.Airline](redisCache, "airline")),
		crud.WithProducer[domain.Airline, domain.AirlineFilter](producer, topic),
	)
	destinationSvc := crud.NewService("destination", destinationRepo,
		func(d *domain.Destination) int64 { return d.ID },
		func(d *domain.Destination, id int64) { d.ID = id },
		crud.WithCache[domain.Destination, domain.DestinationFilter](cache.NewListCache[domain.Destination](redisCache, "destination")),
		crud.WithProducer[domain.Destination, domain.DestinationFilter](producer, topic),
	)
	pilotSvc := crud.NewService("pilot", pilotRepo,
		func(p *domain.Pilot) int64 { return p.ID },
		func(p *domain.Pilot, id int64) { p.ID = id },
		crud.WithProducer[domain.Pilot, domain.PilotFilter](producer, topic),
	)
	passengerSvc := crud.NewService("passenger", passengerRepo,
		func(p *domain.Passenger) int64 { return p.ID },
		func(p *domain.Passenger, id int64) { p.ID = id },
		crud.WithProducer[domain.Passenger, domain.PassengerFilter](producer, topic),
	)
	travelClassSvc := crud.NewService("travel_class", travelClassRepo,
		func(t *domain.TravelClass) int64 { return t.ID },
		func(t *domain.TravelClass, id int64) { t.ID = id },
		crud.WithCache[domain.TravelClass, domain.TravelClassFilter](cache.NewListCache[domain.TravelClass](redisCache, "travel_class")),
		crud.WithProducer[domain.TravelClass, domain.TravelClassFilter](producer, topic),
	)
	flightSvc := flights.NewService(
		crud.NewService("flight", flightRepo,
			func(f *domain.Flight) int64 { return f.ID },
			func(f *domain.Flight, id int64) { f.ID = id },
			crud.WithProducer[domain.Flight, domain.FlightFilter](producer, topic),
		),
		airlineRepo, pilotRepo, destinationRepo,
	)
	ticketSvc := tickets.NewService(
		crud.NewService("plane_ticket", ticketRepo,
			func(t *domain.PlaneTicket) int64 { return t.ID },
			func(t *domain.PlaneTicket, id int64) { t.ID = id },
			crud.WithProducer[domain.PlaneTicket, domain.PlaneTicketFilter](producer, topic),
		),
		passengerRepo, travelClassRepo, flightRepo,
	)
	userSvc := crud.NewService("api_user", userRepo,
		func(u *domain.ApiUser) int64 { return u.ID },
		func(u *domain.ApiUser, id int64) { u.ID = id },
		crud.WithProducer[domain.ApiUser, domain.ApiUserFilter](producer, topic),
		crud.WithPreserve[domain.ApiUser, domain.ApiUserFilter](func(dst, src *domain.ApiUser) {
			dst.PasswordHash = src.PasswordHash
		}),
	)
	authSvc := auth.NewService(userRepo, cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	router := api.NewRouter(api.Services{
		Airlines:      airlineSvc,
		Destinations:  destinationSvc,
		Flights:       flightSvc,
		Passengers:    passengerSvc,
		Pilots:        pilotSvc,
		TravelClasses: travelClassSvc,
		Tickets:       ticketSvc,
		Users:         userSvc,
		Auth:          authSvc,
		Audit:         repository.NewAuditRepository(pool),
	}, logger, cfg.HTTP.SwaggerDir)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}
