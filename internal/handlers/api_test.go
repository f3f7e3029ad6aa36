package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayvista/stayvista-server/internal/handlers"
	"github.com/stayvista/stayvista-server/internal/middleware"
	"github.com/stayvista/stayvista-server/internal/models"
	"github.com/stayvista/stayvista-server/internal/store/storetest"
)

type testEnv struct {
	app      *fiber.App
	users    *storetest.FakeUserStore
	rooms    *storetest.FakeRoomStore
	bookings *storetest.FakeBookingStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	env := &testEnv{
		users:    storetest.NewFakeUserStore(),
		rooms:    storetest.NewFakeRoomStore(),
		bookings: storetest.NewFakeBookingStore(),
	}
	env.app = fiber.New()
	handlers.SetupRoutes(env.app, env.users, env.rooms, env.bookings)
	return env
}

// issueToken round-trips POST /jwt and returns the session cookie value.
func (e *testEnv) issueToken(t *testing.T, email string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email})
	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.TokenCookie {
			require.True(t, cookie.HttpOnly)
			return cookie.Value
		}
	}
	t.Fatal("no session cookie issued")
	return ""
}

func (e *testEnv) request(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAdminStatScenario(t *testing.T) {
	env := newTestEnv(t)

	// A token alone is not enough: no user record means no admin role.
	token := env.issueToken(t, "a@x.com")
	resp := env.request(t, http.MethodGet, "/admin-stat", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Promote the user and retry.
	require.NoError(t, env.users.Upsert(context.Background(), models.User{
		Email: "a@x.com",
		Role:  models.RoleAdmin,
	}))

	resp = env.request(t, http.MethodGet, "/admin-stat", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalUsers int64 `json:"totalUsers"`
	}
	decodeJSON(t, resp, &stats)
	assert.GreaterOrEqual(t, stats.TotalUsers, int64(1))
}

func TestSaveUserEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPut, "/users", "", models.User{Email: "a@x.com", Name: "A"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved models.User
	decodeJSON(t, resp, &saved)
	assert.Equal(t, models.RoleGuest, saved.Role)

	// Saving again with the same record changes nothing.
	resp = env.request(t, http.MethodPut, "/users", "", models.User{Email: "a@x.com", Name: "A"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	count, err := env.users.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestHostStatUsesSessionEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.users.Upsert(ctx, models.User{Email: "a@x.com", Role: models.RoleHost}))
	require.NoError(t, env.users.Upsert(ctx, models.User{Email: "b@x.com", Role: models.RoleHost}))

	for _, host := range []string{"a@x.com", "b@x.com"} {
		_, err := env.rooms.Insert(ctx, models.Room{Title: "Room", Host: models.HostInfo{Email: host}})
		require.NoError(t, err)
	}
	for host, price := range map[string]float64{"a@x.com": 100, "b@x.com": 500} {
		_, err := env.bookings.Insert(ctx, models.Booking{
			Guest: models.GuestInfo{Email: "g@x.com"},
			Host:  models.HostInfo{Email: host},
			Date:  time.Now(),
			Price: price,
		})
		require.NoError(t, err)
	}

	token := env.issueToken(t, "a@x.com")
	resp := env.request(t, http.MethodGet, "/host-stat", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalRooms int64   `json:"totalRooms"`
		TotalPrice float64 `json:"totalPrice"`
	}
	decodeJSON(t, resp, &stats)
	assert.EqualValues(t, 1, stats.TotalRooms)
	assert.Equal(t, 100.0, stats.TotalPrice)
}

func TestBookingEndpointGated(t *testing.T) {
	env := newTestEnv(t)

	// Unauthenticated create is rejected outright.
	resp := env.request(t, http.MethodPost, "/bookings", "", models.Booking{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	roomID, err := env.rooms.Insert(context.Background(), models.Room{
		Title: "Cabin",
		Price: 80,
		Host:  models.HostInfo{Email: "h@x.com"},
	})
	require.NoError(t, err)

	token := env.issueToken(t, "g@x.com")
	resp = env.request(t, http.MethodPost, "/bookings", token, models.Booking{
		RoomID: roomID,
		Guest:  models.GuestInfo{Email: "spoof@x.com"},
		Host:   models.HostInfo{Email: "h@x.com"},
		Date:   time.Now(),
		Price:  80,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The stored guest is the session holder, not the body's claim.
	list, err := env.bookings.ListByGuest(context.Background(), "g@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPaymentIntentValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.issueToken(t, "g@x.com")

	for _, price := range []float64{0, -5, 0.001} {
		resp := env.request(t, http.MethodPost, "/create-payment-intent", token, map[string]float64{"price": price})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.TokenCookie {
			cleared = cookie.Value == "" || cookie.Expires.Before(time.Now())
		}
	}
	assert.True(t, cleared)
}

func TestAdminRoutesRejectHost(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.users.Upsert(context.Background(), models.User{Email: "h@x.com", Role: models.RoleHost}))

	token := env.issueToken(t, "h@x.com")
	for _, path := range []string{"/users", "/admin-stat"} {
		resp := env.request(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
