package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"todo-api/internal/domain/model"
)

type stubHealthUseCase struct {
	response model.HealthResponse
}

func (s stubHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return s.response
}

func TestCheckHealth(t *testing.T) {
	for _, tc := range []struct {
		name     string
		response model.HealthResponse
		status   int
	}{
		{"up", model.HealthResponse{Status: model.StatusUp, Database: model.ComponentUp()}, http.StatusOK},
		{"down", model.HealthResponse{Status: model.StatusDown, Database: model.ComponentDown(errors.New("refused"))}, http.StatusServiceUnavailable},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			NewHealthController(e.Group(""), stubHealthUseCase{response: tc.response}).InitHealthRoutes()

			recorder := httptest.NewRecorder()
			e.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"status":"`+string(tc.response.Status)+`"`)
		})
	}
}
