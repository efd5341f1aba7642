package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trendmatch/internal/cache"
	"trendmatch/internal/config"
	"trendmatch/internal/database"
	"trendmatch/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Str0ng!Passw0rd42"

// newTestServer wires a Server against an in-memory SQLite database and a
// miniredis instance.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each connection to :memory: is a distinct database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	t.Cleanup(func() { cache.SetClient(nil) })

	cfg := &config.Config{
		Port:      "8460",
		JWTSecret: "test-secret-0123456789abcdef012345",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return srv, app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// registerUser registers an account and returns the issued token and user.
func registerUser(t *testing.T, app *fiber.App, name, email string, role models.Role) (string, models.User) {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": testPassword,
		"role":     string(role),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out AuthResponse
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token, *out.User
}

func TestHealthEndpoints(t *testing.T) {
	_, app := newTestServer(t)

	resp := doRequest(t, app, fiber.MethodGet, "/health/live", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestRegisterValidation(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name string
		body fiber.Map
		want int
	}{
		{"Missing fields", fiber.Map{"email": "a@b.com"}, fiber.StatusBadRequest},
		{"Unknown role", fiber.Map{
			"name": "Jane", "email": "jane@example.com",
			"password": testPassword, "role": "Admin",
		}, fiber.StatusBadRequest},
		{"Weak password", fiber.Map{
			"name": "Jane", "email": "jane@example.com",
			"password": "short", "role": "Influencer",
		}, fiber.StatusBadRequest},
		{"Bad email", fiber.Map{
			"name": "Jane", "email": "not-an-email",
			"password": testPassword, "role": "Influencer",
		}, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, app := newTestServer(t)

	registerUser(t, app, "Jane Doe", "jane@example.com", models.RoleInfluencer)

	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Jane Again",
		"email":    "jane@example.com",
		"password": testPassword,
		"role":     "Influencer",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	_, app := newTestServer(t)

	registerUser(t, app, "Jane Doe", "jane@example.com", models.RoleInfluencer)

	// Wrong password and unknown account are indistinguishable.
	resp := doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "jane@example.com", "password": "Wrong!Passw0rd42",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ghost@example.com", "password": testPassword,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "jane@example.com", "password": testPassword,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out AuthResponse
	decodeBody(t, resp, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "jane@example.com", out.User.Email)
}

func TestMe(t *testing.T) {
	_, app := newTestServer(t)

	token, user := registerUser(t, app, "Jane Doe", "jane@example.com", models.RoleInfluencer)

	resp := doRequest(t, app, fiber.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The password hash must never appear in a response.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotContains(t, string(raw), "password")

	var got models.User
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleInfluencer, got.Role)
}

func TestAuthRequired(t *testing.T) {
	_, app := newTestServer(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/campaigns", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/campaigns", "not-a-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
