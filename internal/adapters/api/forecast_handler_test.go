package api

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/mock"
)

func (s *apiSuite) TestForecast_MissThenHit() {
	payload := `{"latitude":52.52,"longitude":13.41,"current":{"temperature_2m":12.3}}`
	s.forecaster.EXPECT().GetForecast(mock.Anything, 52.52, 13.41).Return([]byte(payload), nil).Once()

	w := s.do(s.router, http.MethodGet, "/api/forecast?lat=52.5200&lon=13.4100", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("MISS", w.Header().Get(headerCache))
	s.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))
	s.JSONEq(payload, w.Body.String())

	// rounds to the same key
	w = s.do(s.router, http.MethodGet, "/api/forecast?lat=52.521&lon=13.409", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("HIT", w.Header().Get(headerCache))
	s.JSONEq(payload, w.Body.String())
}

func (s *apiSuite) TestForecast_InvalidCoordinates() {
	for _, target := range []string{
		"/api/forecast",
		"/api/forecast?lat=10",
		"/api/forecast?lat=abc&lon=10",
		"/api/forecast?lat=95&lon=10",
		"/api/forecast?lat=10&lon=200",
	} {
		w := s.do(s.router, http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, w.Code, target)
	}
}

func (s *apiSuite) TestForecast_UpstreamFailure() {
	s.forecaster.EXPECT().GetForecast(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("connection refused"))

	w := s.do(s.router, http.MethodGet, "/api/forecast?lat=1&lon=1", "")
	s.Equal(http.StatusBadGateway, w.Code)
	s.Equal(ErrorResponse{Error: "Forecast failed"}, s.errorBody(w))
}
