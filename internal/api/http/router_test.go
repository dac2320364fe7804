package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	nethttp "net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/signaidy/nexus-standalone/internal/api/http/handlers"
	"github.com/signaidy/nexus-standalone/internal/auth"
	"github.com/signaidy/nexus-standalone/internal/config"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/observability"
	"github.com/signaidy/nexus-standalone/internal/service"
)

type memoryUsers struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (r *memoryUsers) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryUsers) Update(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryUsers) Delete(_ context.Context, id int64) error {
	for email, user := range r.byEmail {
		if user.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *memoryUsers) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.byEmail))
	for _, user := range r.byEmail {
		users = append(users, *user)
	}
	return users, nil
}

type memoryFlights struct {
	byID   map[int64]*domain.Flight
	nextID int64
}

func newMemoryFlights() *memoryFlights {
	return &memoryFlights{byID: map[int64]*domain.Flight{}, nextID: 1}
}

func (r *memoryFlights) Create(_ context.Context, flight *domain.Flight) error {
	flight.ID = r.nextID
	r.nextID++
	r.byID[flight.ID] = flight
	return nil
}

func (r *memoryFlights) Update(_ context.Context, flight *domain.Flight) error {
	if _, ok := r.byID[flight.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[flight.ID] = flight
	return nil
}

func (r *memoryFlights) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *memoryFlights) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	flight, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return flight, nil
}

func (r *memoryFlights) List(_ context.Context) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0, len(r.byID))
	for _, flight := range r.byID {
		flights = append(flights, *flight)
	}
	return flights, nil
}

func (r *memoryFlights) ListByUser(_ context.Context, userID int64) ([]domain.Flight, error) {
	var flights []domain.Flight
	for _, flight := range r.byID {
		if flight.UserID == userID {
			flights = append(flights, *flight)
		}
	}
	return flights, nil
}

func (r *memoryFlights) Deactivate(_ context.Context, id int64) error {
	flight, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	flight.State = domain.FlightStateInactive
	return nil
}

func (r *memoryFlights) DeactivateByFlightNumber(_ context.Context, flightNumber string) error {
	for _, flight := range r.byID {
		if flight.FlightNumber == flightNumber {
			flight.State = domain.FlightStateInactive
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryFlights) CreateTicket(_ context.Context, _ *domain.TicketPurchase) error {
	return nil
}

func (r *memoryFlights) DeactivateTicket(_ context.Context, _ int64) error {
	return nil
}

// newBookingApp wires the request pipeline the way main does, backed by
// in-memory stores. Routes whose handlers are not under test get nil
// services; the tests never reach them.
func newBookingApp(t *testing.T) *fiber.App {
	t.Helper()
	app, _ := newBookingAppWithFlights(t)
	return app
}

func newBookingAppWithFlights(t *testing.T) (*fiber.App, *memoryFlights) {
	t.Helper()

	repo := newMemoryUsers()
	authCfg := config.AuthConfig{
		JWTSecret:       base64.StdEncoding.EncodeToString([]byte("01234567890123456789012345678901")),
		TokenTTLMinutes: 60,
		BcryptCost:      4,
	}
	authService, err := service.NewAuthService(authCfg, repo)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	flightsRepo := newMemoryFlights()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:        handlers.NewHealthHandler("nexus-test", "dev", nil, nil),
		Auth:          handlers.NewAuthHandler(authService),
		Users:         handlers.NewUsersHandler(service.NewUserService(repo, 4)),
		Flights:       handlers.NewFlightsHandler(service.NewFlightService(flightsRepo, nil, nil)),
		Reservations:  handlers.NewReservationsHandler(nil),
		Providers:     handlers.NewProvidersHandler(nil),
		Comments:      handlers.NewCommentsHandler(nil),
		AboutUs:       handlers.NewAboutUsHandler(nil),
		Authenticator: auth.NewAuthenticator(authService.TokenManager(), repo),
		Policy:        auth.DefaultPolicy(),
	})
	return app, flightsRepo
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*nethttp.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := nethttp.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestSignupLoginAndProtectedAccess(t *testing.T) {
	app := newBookingApp(t)

	// Unauthenticated access to a protected route is rejected up front.
	resp, body := doJSON(t, app, nethttp.MethodGet, "/users", "", nil)
	if resp.StatusCode != nethttp.StatusUnauthorized {
		t.Fatalf("GET /users without token: got %d (%s), want 401", resp.StatusCode, body)
	}
	var errPayload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errPayload); err != nil || errPayload.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("error envelope = %s, want code UNAUTHORIZED", body)
	}

	// Signup is open and yields a usable token.
	resp, body = doJSON(t, app, nethttp.MethodPost, "/auth/signup", "", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"password":   "s3cret",
		"age":        36,
		"country":    "GB",
	})
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("signup: got %d (%s), want 200", resp.StatusCode, body)
	}
	var signupResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &signupResp); err != nil || signupResp.Token == "" {
		t.Fatalf("signup should return a token, got %s", body)
	}

	// The token opens the protected route.
	resp, body = doJSON(t, app, nethttp.MethodGet, "/users", signupResp.Token, nil)
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("GET /users with token: got %d (%s), want 200", resp.StatusCode, body)
	}

	// Login returns the user alongside a fresh token, minus the hash.
	resp, body = doJSON(t, app, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "s3cret",
	})
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("login: got %d (%s), want 200", resp.StatusCode, body)
	}
	var loginResp struct {
		Token string `json:"token"`
		User  *struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &loginResp); err != nil {
		t.Fatalf("decode login response: %v (%s)", err, body)
	}
	if loginResp.Token == "" || loginResp.User == nil || loginResp.User.Email != "ada@example.com" {
		t.Fatalf("unexpected login response: %s", body)
	}
	if bytes.Contains(body, []byte("password")) {
		t.Fatalf("login response leaks password material: %s", body)
	}
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	app := newBookingApp(t)

	if resp, body := doJSON(t, app, nethttp.MethodPost, "/auth/signup", "", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "password": "s3cret",
	}); resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("signup: got %d (%s)", resp.StatusCode, body)
	}

	respUnknown, bodyUnknown := doJSON(t, app, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "s3cret",
	})
	respWrong, bodyWrong := doJSON(t, app, nethttp.MethodPost, "/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "wrong",
	})

	if respUnknown.StatusCode != nethttp.StatusUnauthorized || respWrong.StatusCode != nethttp.StatusUnauthorized {
		t.Fatalf("got %d and %d, want 401 for both failure modes", respUnknown.StatusCode, respWrong.StatusCode)
	}
	if !bytes.Equal(bodyUnknown, bodyWrong) {
		t.Fatalf("failure responses differ: %s vs %s", bodyUnknown, bodyWrong)
	}
}

func TestOpenRoutesNeedNoToken(t *testing.T) {
	app := newBookingApp(t)

	resp, _ := doJSON(t, app, nethttp.MethodGet, "/healthz", "", nil)
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("GET /healthz: got %d, want 200", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, nethttp.MethodOptions, "/users", "", nil)
	if resp.StatusCode == nethttp.StatusUnauthorized {
		t.Fatal("OPTIONS preflight must not require a token")
	}
}

func TestFlightResponsesUseWireFieldNames(t *testing.T) {
	app, flights := newBookingAppWithFlights(t)

	seed := &domain.Flight{
		UserID:            7,
		FlightNumber:      "AV123",
		DepartureDate:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		DepartureLocation: "BOG",
		ArrivalLocation:   "MDE",
		Type:              "oneWay",
		PurchaseDate:      time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Price:             120,
		State:             domain.FlightStateActive,
	}
	if err := flights.Create(context.Background(), seed); err != nil {
		t.Fatalf("seed flight: %v", err)
	}

	resp, body := doJSON(t, app, nethttp.MethodGet, "/flights/1", "", nil)
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("GET /flights/1: got %d (%s), want 200", resp.StatusCode, body)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode flight response: %v (%s)", err, body)
	}
	for _, key := range []string{"id", "user_id", "flight_number", "departure_location", "arrival_location", "state"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("flight response missing %q: %s", key, body)
		}
	}
	for _, key := range []string{"ID", "UserID", "FlightNumber", "DepartureLocation"} {
		if _, ok := payload[key]; ok {
			t.Errorf("flight response exposes struct field name %q: %s", key, body)
		}
	}
	if payload["flight_number"] != "AV123" {
		t.Fatalf("flight_number = %v, want AV123", payload["flight_number"])
	}
}

func TestDeactivateFlightByIDRoute(t *testing.T) {
	app, flights := newBookingAppWithFlights(t)

	seed := &domain.Flight{
		UserID:       7,
		FlightNumber: "AV123",
		State:        domain.FlightStateActive,
	}
	if err := flights.Create(context.Background(), seed); err != nil {
		t.Fatalf("seed flight: %v", err)
	}

	// Deactivation by id is an operator action, not a public cancel link.
	resp, _ := doJSON(t, app, nethttp.MethodPut, "/flights/deactivateById/1", "", nil)
	if resp.StatusCode != nethttp.StatusUnauthorized {
		t.Fatalf("deactivateById without token: got %d, want 401", resp.StatusCode)
	}

	resp, body := doJSON(t, app, nethttp.MethodPost, "/auth/signup", "", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "password": "s3cret",
	})
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("signup: got %d (%s)", resp.StatusCode, body)
	}
	var signupResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &signupResp); err != nil || signupResp.Token == "" {
		t.Fatalf("signup should return a token, got %s", body)
	}

	resp, body = doJSON(t, app, nethttp.MethodPut, "/flights/deactivateById/1", signupResp.Token, nil)
	if resp.StatusCode != nethttp.StatusOK {
		t.Fatalf("deactivateById with token: got %d (%s), want 200", resp.StatusCode, body)
	}
	if seed.State != domain.FlightStateInactive {
		t.Fatalf("flight state = %s, want inactive", seed.State)
	}

	resp, body = doJSON(t, app, nethttp.MethodPut, "/flights/deactivateById/999", signupResp.Token, nil)
	if resp.StatusCode != nethttp.StatusNotFound {
		t.Fatalf("deactivateById for missing flight: got %d (%s), want 404", resp.StatusCode, body)
	}
}

func TestInvalidTokenDoesNotGrantAccess(t *testing.T) {
	app := newBookingApp(t)

	resp, _ := doJSON(t, app, nethttp.MethodGet, "/users", "definitely-not-a-token", nil)
	if resp.StatusCode != nethttp.StatusUnauthorized {
		t.Fatalf("garbage token: got %d, want 401", resp.StatusCode)
	}
}
