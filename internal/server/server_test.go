package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dev404/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRoutedApp() (*fiber.App, *Server) {
	app := fiber.New()
	s := &Server{
		config: &config.Config{
			StrictRateLimitWindowMinutes: 60,
			StrictRateLimitMax:           5,
		},
		sectionRepo: new(MockSectionRepository),
		mediaRepo:   new(MockMediaRepository),
		signupRepo:  new(MockSignupRepository),
		contactRepo: new(MockContactRepository),
	}
	s.SetupRoutes(app)
	return app, s
}

func TestHealthCheck(t *testing.T) {
	app, _ := newRoutedApp()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Server is running", payload["status"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestUnknownRouteFallback(t *testing.T) {
	app, _ := newRoutedApp()

	for _, url := range []string{"/nonexistent", "/sections/music/extra", "/api/v1/media"} {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var payload map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "Endpoint not found", payload["error"])
	}
}

func TestRoutesReachHandlers(t *testing.T) {
	app, s := newRoutedApp()

	s.sectionRepo.(*MockSectionRepository).On("List", mock.Anything).Return(nil, nil)
	s.mediaRepo.(*MockMediaRepository).On("List", mock.Anything, mock.Anything).Return(nil, nil)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/sections", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/media", nil))
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
