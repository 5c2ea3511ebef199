package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SecurityHeadersTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestSecurityHeadersSuite(t *testing.T) {
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) SetupTest() {
	s.echo = echo.New()
}

func (s *SecurityHeadersTestSuite) run() *httptest.ResponseRecorder {
	handler := SecurityHeaders()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/sbi/metrics", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(handler(c))
	return rec
}

func (s *SecurityHeadersTestSuite) TestSetsHardeningHeaders() {
	rec := s.run()

	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Equal("DENY", rec.Header().Get("X-Frame-Options"))
	s.Equal("max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
	s.Equal("default-src 'none'; frame-ancestors 'none'", rec.Header().Get("Content-Security-Policy"))
	s.Equal("strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}

func (s *SecurityHeadersTestSuite) TestDisablesCaching() {
	rec := s.run()

	s.Equal("no-store, no-cache, must-revalidate, private", rec.Header().Get("Cache-Control"))
	s.Equal("no-cache", rec.Header().Get("Pragma"))
	s.Equal("0", rec.Header().Get("Expires"))
}

func (s *SecurityHeadersTestSuite) TestPassesRequestThrough() {
	rec := s.run()
	s.Equal(http.StatusOK, rec.Code)
}
