package api

import (
	"strconv"
	"time"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/export"
	"github.com/gin-gonic/gin"
)

// Per-entity wiring: query-parameter filter parsers and export column layouts.

func parseAirlineFilter(c *gin.Context) domain.AirlineFilter {
	return domain.AirlineFilter{Name: c.Query("name")}
}

func parseDestinationFilter(c *gin.Context) domain.DestinationFilter {
	return domain.DestinationFilter{
		Airport: c.Query("airport"),
		City:    c.Query("city"),
	}
}

func parseFlightFilter(c *gin.Context) domain.FlightFilter {
	return domain.FlightFilter{
		AirlineID:     queryInt64(c, "airline_id"),
		DepartureFrom: queryTime(c, "departure_from"),
		DepartureTo:   queryTime(c, "departure_to"),
	}
}

func parsePassengerFilter(c *gin.Context) domain.PassengerFilter {
	return domain.PassengerFilter{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
		Passport:  c.Query("passport"),
	}
}

func parsePilotFilter(c *gin.Context) domain.PilotFilter {
	return domain.PilotFilter{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
	}
}

func parseTravelClassFilter(c *gin.Context) domain.TravelClassFilter {
	return domain.TravelClassFilter{Type: c.Query("type")}
}

func parseTicketFilter(c *gin.Context) domain.PlaneTicketFilter {
	return domain.PlaneTicketFilter{
		FlightID:      queryInt64(c, "flight_id"),
		PriceMinCents: queryInt64(c, "price_min_cents"),
		PriceMaxCents: queryInt64(c, "price_max_cents"),
	}
}

func parseApiUserFilter(c *gin.Context) domain.ApiUserFilter {
	return domain.ApiUserFilter{
		Username: c.Query("username"),
		Role:     c.Query("role"),
	}
}

func queryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

func queryTime(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}
	return &value
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func airlineLayout() export.Layout[domain.Airline] {
	return export.Layout[domain.Airline]{
		Title: "Airlines",
		Columns: []export.Column[domain.Airline]{
			{Header: "ID", Width: 20, Value: func(a domain.Airline) string { return formatID(a.ID) }},
			{Header: "Name", Width: 100, Value: func(a domain.Airline) string { return a.Name }},
		},
	}
}

func destinationLayout() export.Layout[domain.Destination] {
	return export.Layout[domain.Destination]{
		Title: "Destinations",
		Columns: []export.Column[domain.Destination]{
			{Header: "ID", Width: 20, Value: func(d domain.Destination) string { return formatID(d.ID) }},
			{Header: "Airport", Width: 90, Value: func(d domain.Destination) string { return d.Airport }},
			{Header: "City", Width: 60, Value: func(d domain.Destination) string { return d.City }},
			{Header: "Country", Width: 60, Value: func(d domain.Destination) string { return d.Country }},
		},
	}
}

func flightLayout() export.Layout[domain.Flight] {
	return export.Layout[domain.Flight]{
		Title: "Flights",
		Columns: []export.Column[domain.Flight]{
			{Header: "ID", Width: 20, Value: func(f domain.Flight) string { return formatID(f.ID) }},
			{Header: "Airline", Width: 30, Value: func(f domain.Flight) string { return formatID(f.AirlineID) }},
			{Header: "Pilot", Width: 30, Value: func(f domain.Flight) string { return formatID(f.PilotID) }},
			{Header: "From", Width: 30, Value: func(f domain.Flight) string { return formatID(f.StartDestinationID) }},
			{Header: "To", Width: 30, Value: func(f domain.Flight) string { return formatID(f.EndDestinationID) }},
			{Header: "Departure", Width: 50, Value: func(f domain.Flight) string { return export.FormatTime(f.DepartureTime) }},
			{Header: "Landing", Width: 50, Value: func(f domain.Flight) string { return export.FormatTime(f.LandingTime) }},
		},
	}
}

func passengerLayout() export.Layout[domain.Passenger] {
	return export.Layout[domain.Passenger]{
		Title: "Passengers",
		Columns: []export.Column[domain.Passenger]{
			{Header: "ID", Width: 20, Value: func(p domain.Passenger) string { return formatID(p.ID) }},
			{Header: "First name", Width: 60, Value: func(p domain.Passenger) string { return p.FirstName }},
			{Header: "Last name", Width: 60, Value: func(p domain.Passenger) string { return p.LastName }},
			{Header: "Passport", Width: 50, Value: func(p domain.Passenger) string { return p.Passport }},
			{Header: "Email", Width: 70, Value: func(p domain.Passenger) string { return p.Email }},
		},
	}
}

func pilotLayout() export.Layout[domain.Pilot] {
	return export.Layout[domain.Pilot]{
		Title: "Pilots",
		Columns: []export.Column[domain.Pilot]{
			{Header: "ID", Width: 20, Value: func(p domain.Pilot) string { return formatID(p.ID) }},
			{Header: "First name", Width: 70, Value: func(p domain.Pilot) string { return p.FirstName }},
			{Header: "Last name", Width: 70, Value: func(p domain.Pilot) string { return p.LastName }},
			{Header: "Flying hours", Width: 40, Value: func(p domain.Pilot) string { return strconv.Itoa(p.FlyingHours) }},
		},
	}
}

func travelClassLayout() export.Layout[domain.TravelClass] {
	return export.Layout[domain.TravelClass]{
		Title: "Travel classes",
		Columns: []export.Column[domain.TravelClass]{
			{Header: "ID", Width: 20, Value: func(t domain.TravelClass) string { return formatID(t.ID) }},
			{Header: "Type", Width: 80, Value: func(t domain.TravelClass) string { return t.Type }},
		},
	}
}

func ticketLayout() export.Layout[domain.PlaneTicket] {
	return export.Layout[domain.PlaneTicket]{
		Title: "Plane tickets",
		Columns: []export.Column[domain.PlaneTicket]{
			{Header: "ID", Width: 20, Value: func(t domain.PlaneTicket) string { return formatID(t.ID) }},
			{Header: "Price", Width: 35, Value: func(t domain.PlaneTicket) string { return export.FormatMoney(t.PriceCents) }},
			{Header: "Seat", Width: 25, Value: func(t domain.PlaneTicket) string { return strconv.Itoa(t.SeatNumber) }},
			{Header: "Purchased", Width: 50, Value: func(t domain.PlaneTicket) string { return export.FormatTime(t.PurchaseDate) }},
			{Header: "Passenger", Width: 35, Value: func(t domain.PlaneTicket) string { return formatID(t.PassengerID) }},
			{Header: "Class", Width: 30, Value: func(t domain.PlaneTicket) string { return formatID(t.TravelClassID) }},
			{Header: "Flight", Width: 30, Value: func(t domain.PlaneTicket) string { return formatID(t.FlightID) }},
		},
	}
}

func apiUserLayout() export.Layout[domain.ApiUser] {
	return export.Layout[domain.ApiUser]{
		Title: "API users",
		Columns: []export.Column[domain.ApiUser]{
			{Header: "ID", Width: 20, Value: func(u domain.ApiUser) string { return formatID(u.ID) }},
			{Header: "Username", Width: 80, Value: func(u domain.ApiUser) string { return u.Username }},
			{Header: "Role", Width: 40, Value: func(u domain.ApiUser) string { return u.Role }},
		},
	}
}
