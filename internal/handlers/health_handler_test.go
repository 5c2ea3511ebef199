package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"findash/internal/models"
	"findash/internal/repositories/repository_mocks"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockCatalog *repository_mocks.MockCatalogRepositoryInterface
	handler     *HealthCheckHandler
}

func TestHealthHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockCatalog = repository_mocks.NewMockCatalogRepositoryInterface(s.ctrl)
	s.handler = NewHealthCheckHandler(s.mockCatalog)
}

func (s *HealthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HealthHandlerTestSuite) TestHealthCheck_Healthy() {
	s.mockCatalog.EXPECT().ListInstitutions().
		Return([]models.AccountSnapshot{{ID: "sbi"}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("healthy", response["status"])
	s.NotEmpty(response["time"])
}

func (s *HealthHandlerTestSuite) TestHealthCheck_EmptyCatalogue() {
	s.mockCatalog.EXPECT().ListInstitutions().Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.HealthCheck(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var response map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("degraded", response["status"])
}
