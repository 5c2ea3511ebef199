package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"findash/internal/dto"
	"findash/internal/models"
)

type ClientTestSuite struct {
	suite.Suite
	snapshot models.AccountSnapshot
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.snapshot = models.AccountSnapshot{
		ID: "hdfc",
		Monthly: models.PeriodTotals{
			Income:   decimal.NewFromInt(85000),
			Expenses: decimal.NewFromInt(55000),
		},
		MonthlyTrend: []models.TrendPoint{
			{Month: "May", Income: decimal.NewFromInt(87000), Expenses: decimal.NewFromInt(56000)},
			{Month: "Jun", Income: decimal.NewFromInt(90000), Expenses: decimal.NewFromInt(55000)},
		},
	}
}

func (s *ClientTestSuite) TestScore_Success() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/api/insights", r.URL.Path)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var req dto.InsightRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Require().NotNil(req.MonthlyData)
		s.True(req.MonthlyData.Income.Equal(decimal.NewFromInt(85000)))

		json.NewEncoder(w).Encode(dto.ScoringResponse{
			Score: 77,
			Insights: []models.Insight{
				{Type: models.InsightHealth, Title: "Financial Health Status"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	result, err := client.Score(context.Background(), "", s.snapshot)

	s.Require().NoError(err)
	s.Equal(float64(77), result.Score)
	s.Len(result.Insights, 1)
}

func (s *ClientTestSuite) TestScore_ForwardsBearerToken() {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dto.ScoringResponse{Score: 50, Insights: []models.Insight{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Score(context.Background(), "session-token", s.snapshot)

	s.Require().NoError(err)
	s.Equal("Bearer session-token", gotAuth)
}

func (s *ClientTestSuite) TestScore_NoAuthHeaderWithoutToken() {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dto.ScoringResponse{Score: 50, Insights: []models.Insight{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Score(context.Background(), "", s.snapshot)

	s.Require().NoError(err)
	s.Empty(gotAuth)
}

func (s *ClientTestSuite) TestScore_NonSuccessStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Score(context.Background(), "", s.snapshot)

	s.Error(err)
	s.Contains(err.Error(), "502")
}

func (s *ClientTestSuite) TestScore_InvalidBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Score(context.Background(), "", s.snapshot)

	s.Error(err)
}

func (s *ClientTestSuite) TestScore_ContextCancellation() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL, time.Second)
	_, err := client.Score(ctx, "", s.snapshot)

	s.Error(err)
}
