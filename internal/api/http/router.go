package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/http/handlers"
	"github.com/signaidy/nexus-standalone/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UsersHandler
	Flights       *handlers.FlightsHandler
	Reservations  *handlers.ReservationsHandler
	Providers     *handlers.ProvidersHandler
	Comments      *handlers.CommentsHandler
	AboutUs       *handlers.AboutUsHandler
	Authenticator *auth.Authenticator
	Policy        *auth.Policy
}

// RegisterRoutes wires HTTP routes. The authenticator runs on every
// request to bind an identity when a bearer token is presented; the policy
// table then gates protected routes before any handler runs.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Authenticator.Handle)
	app.Use(auth.Enforce(cfg.Policy))

	app.Get("/healthz", cfg.Health.Live)
	app.Get("/healthz/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/signup", cfg.Auth.Signup)

	users := app.Group("/users")
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Post("/", cfg.Users.Create)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	flights := app.Group("/flights")
	flights.Get("/", cfg.Flights.List)
	flights.Get("/avianca/cities", cfg.Flights.Cities)
	flights.Get("/avianca/flights", cfg.Flights.Offers)
	flights.Get("/avianca/one-way-flights", cfg.Flights.OneWay)
	flights.Get("/avianca/round-trip-flights", cfg.Flights.RoundTrip)
	flights.Get("/user/:userId", cfg.Flights.ListByUser)
	flights.Get("/:id", cfg.Flights.Get)
	flights.Post("/", cfg.Flights.Create)
	flights.Post("/purchase", cfg.Flights.Purchase)
	flights.Put("/deactivate/:flightNumber", cfg.Flights.Deactivate)
	flights.Put("/deactivateById/:id", cfg.Flights.DeactivateByID)
	flights.Put("/deactivateTicket/:id", cfg.Flights.DeactivateTicket)
	flights.Put("/:id", cfg.Flights.Update)
	flights.Delete("/:id", cfg.Flights.Delete)

	reservations := app.Group("/reservations")
	reservations.Get("/", cfg.Reservations.List)
	reservations.Get("/cities", cfg.Reservations.Cities)
	reservations.Get("/hotelsearch", cfg.Reservations.HotelSearch)
	reservations.Get("/roomsearch", cfg.Reservations.RoomSearch)
	reservations.Get("/user/:userId", cfg.Reservations.ListByUser)
	reservations.Get("/:id", cfg.Reservations.Get)
	reservations.Post("/", cfg.Reservations.Create)
	reservations.Put("/cancel/:id", cfg.Reservations.Cancel)
	reservations.Put("/cancelHotel/:hotelId", cfg.Reservations.CancelByHotel)
	reservations.Put("/:id", cfg.Reservations.Update)
	reservations.Delete("/:id", cfg.Reservations.Delete)

	providers := app.Group("/providers")
	providers.Get("/", cfg.Providers.List)
	providers.Get("/type/:type", cfg.Providers.ListByType)
	providers.Get("/:id", cfg.Providers.Get)
	providers.Post("/", cfg.Providers.Create)
	providers.Put("/:id", cfg.Providers.Update)
	providers.Delete("/:id", cfg.Providers.Delete)

	comments := app.Group("/comments")
	comments.Get("/", cfg.Comments.List)
	comments.Get("/:id", cfg.Comments.Get)
	comments.Post("/", cfg.Comments.Create)
	comments.Put("/:id", cfg.Comments.Update)
	comments.Delete("/:id", cfg.Comments.Delete)

	aboutus := app.Group("/aboutus")
	aboutus.Get("/", cfg.AboutUs.List)
	aboutus.Get("/:id", cfg.AboutUs.Get)
	aboutus.Post("/", cfg.AboutUs.Create)
	aboutus.Put("/:id", cfg.AboutUs.Update)
}
