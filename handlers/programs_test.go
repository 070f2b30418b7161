package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizschool/handlers"
	"bizschool/middleware"
	"bizschool/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProgramService is a mock implementation of the ProgramService interface.
type MockProgramService struct {
	testifymock.Mock
}

func (m *MockProgramService) ListPrograms(ctx context.Context, locale string) ([]models.LocalizedProgram, error) {
	args := m.Called(ctx, locale)
	return args.Get(0).([]models.LocalizedProgram), args.Error(1)
}

func (m *MockProgramService) GetProgramBySlug(ctx context.Context, slug, locale string) (*models.LocalizedProgram, error) {
	args := m.Called(ctx, slug, locale)
	if p, ok := args.Get(0).(*models.LocalizedProgram); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func newProgramsRouter(svc *MockProgramService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.LocaleMiddleware())
	h := handlers.NewProgramHandler(svc, zap.NewNop())
	r.GET("/api/programs", h.ListProgramsHandler)
	r.GET("/api/programs/:slug", h.GetProgramHandler)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProgramsHandler(t *testing.T) {
	t.Run("returns programs in the requested locale", func(t *testing.T) {
		svc := new(MockProgramService)
		svc.On("ListPrograms", testifymock.Anything, "en").
			Return([]models.LocalizedProgram{
				{Code: "LEAD101", Name: "Leadership Basics", Locale: "en"},
			}, nil)

		w := getJSON(t, newProgramsRouter(svc), "/api/programs", map[string]string{"x-locale": "en"})
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Programs []models.LocalizedProgram `json:"programs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Programs, 1)
		assert.Equal(t, "LEAD101", body.Programs[0].Code)
	})

	t.Run("defaults to japanese without a locale header", func(t *testing.T) {
		svc := new(MockProgramService)
		svc.On("ListPrograms", testifymock.Anything, "ja").
			Return([]models.LocalizedProgram{}, nil)

		w := getJSON(t, newProgramsRouter(svc), "/api/programs", nil)
		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("upstream failure is a generic 500", func(t *testing.T) {
		svc := new(MockProgramService)
		svc.On("ListPrograms", testifymock.Anything, "ja").
			Return([]models.LocalizedProgram{}, errors.New("filemaker down"))

		w := getJSON(t, newProgramsRouter(svc), "/api/programs", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error", decodeBody(t, w)["error"])
	})
}

func TestGetProgramHandler(t *testing.T) {
	t.Run("returns the program for a known slug", func(t *testing.T) {
		svc := new(MockProgramService)
		svc.On("GetProgramBySlug", testifymock.Anything, "lead101", "ja").
			Return(&models.LocalizedProgram{Code: "LEAD101", Name: "リーダーシップ基礎", Locale: "ja"}, nil)

		w := getJSON(t, newProgramsRouter(svc), "/api/programs/lead101", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var program models.LocalizedProgram
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &program))
		assert.Equal(t, "LEAD101", program.Code)
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		svc := new(MockProgramService)
		svc.On("GetProgramBySlug", testifymock.Anything, "nosuch", "ja").Return(nil, nil)

		w := getJSON(t, newProgramsRouter(svc), "/api/programs/nosuch", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Program not found", decodeBody(t, w)["error"])
	})
}
