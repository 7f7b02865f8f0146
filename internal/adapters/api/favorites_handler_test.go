package api

import (
	"net/http"
	"time"
)

const testDevice = "device-1"

func (s *apiSuite) TestFavorites_MissingDeviceID() {
	requests := []struct {
		method, target, body string
	}{
		{http.MethodGet, "/api/favorites", ""},
		{http.MethodPost, "/api/favorites", `{"city":"Rome","lat":41.9,"lon":12.5}`},
		{http.MethodDelete, "/api/favorites?city=Rome", ""},
	}

	for _, r := range requests {
		w := s.do(s.router, r.method, r.target, r.body)
		s.Equal(http.StatusBadRequest, w.Code, r.method)
		s.Equal(ErrorResponse{Error: "Missing X-Device-Id"}, s.errorBody(w), r.method)

		w = s.do(s.router, r.method, r.target, r.body, withHeader(headerDeviceID, "   "))
		s.Equal(http.StatusBadRequest, w.Code, r.method)
	}
}

func (s *apiSuite) TestFavorites_AddIsIdempotent() {
	addedAt := s.now.UnixMilli()
	for i := 0; i < 2; i++ {
		w := s.do(s.router, http.MethodPost, "/api/favorites", `{"city":"Rome","lat":41.9,"lon":12.5}`,
			withHeader(headerDeviceID, testDevice))
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		var list []FavoriteResponse
		s.decode(w, &list)
		s.Equal([]FavoriteResponse{{City: "Rome", Lat: 41.9, Lon: 12.5, AddedAt: addedAt}}, list)
		s.now = s.now.Add(time.Minute)
	}
}

func (s *apiSuite) TestFavorites_ListNewestFirstAndDeviceScoped() {
	add := func(device, body string) {
		w := s.do(s.router, http.MethodPost, "/api/favorites", body, withHeader(headerDeviceID, device))
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		s.now = s.now.Add(time.Second)
	}
	add(testDevice, `{"city":"Rome","lat":41.9,"lon":12.5}`)
	add(testDevice, `{"city":"Oslo","lat":59.91,"lon":10.75}`)
	add("device-2", `{"city":"Lima","lat":-12.05,"lon":-77.04}`)

	w := s.do(s.router, http.MethodGet, "/api/favorites", "", withHeader(headerDeviceID, testDevice))
	s.Require().Equal(http.StatusOK, w.Code)

	var list []FavoriteResponse
	s.decode(w, &list)
	s.Require().Len(list, 2)
	s.Equal("Oslo", list[0].City)
	s.Equal("Rome", list[1].City)
}

func (s *apiSuite) TestFavorites_EmptyListIsArray() {
	w := s.do(s.router, http.MethodGet, "/api/favorites", "", withHeader(headerDeviceID, testDevice))
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *apiSuite) TestFavorites_InvalidBody() {
	bodies := []string{
		`{"lat":41.9,"lon":12.5}`,
		`{"city":"   ","lat":41.9,"lon":12.5}`,
		`{"city":"Rome","lon":12.5}`,
		`{"city":"Rome","lat":"north","lon":12.5}`,
		`{"city":"Rome","lat":91,"lon":12.5}`,
		`{"city":"Rome","lat":41.9,"lon":-181}`,
		`not json`,
	}

	for _, body := range bodies {
		w := s.do(s.router, http.MethodPost, "/api/favorites", body, withHeader(headerDeviceID, testDevice))
		s.Equal(http.StatusBadRequest, w.Code, body)
		s.NotEmpty(s.errorBody(w).Error, body)
	}
}

func (s *apiSuite) TestFavorites_Remove() {
	w := s.do(s.router, http.MethodPost, "/api/favorites", `{"city":"Rome","lat":41.9,"lon":12.5}`,
		withHeader(headerDeviceID, testDevice))
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(s.router, http.MethodDelete, "/api/favorites?city=Rome", "", withHeader(headerDeviceID, testDevice))
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"ok":true}`, w.Body.String())

	w = s.do(s.router, http.MethodGet, "/api/favorites", "", withHeader(headerDeviceID, testDevice))
	s.JSONEq(`[]`, w.Body.String())

	w = s.do(s.router, http.MethodDelete, "/api/favorites", "", withHeader(headerDeviceID, testDevice))
	s.Equal(http.StatusBadRequest, w.Code)
}
