package handlers

import (
	"net/http"
	"net/url"
	"strconv"
)

func (s *E2ETestSuite) Test10_CreateMovie() {
	body := map[string]interface{}{
		"title":          "The Brain That Wouldn't Die",
		"description":    "A scientist keeps his fiancee's head alive.",
		"priceCents":     499,
		"releaseYear":    1962,
		"runtimeMinutes": 82,
		"genres":         []string{"Horror", "Sci-Fi"},
	}
	var resp struct {
		Data struct {
			ID     int      `json:"id"`
			Genres []string `json:"genres"`
		} `json:"data"`
	}
	status := s.doJSON("POST", "/movies", s.adminToken, body, &resp)
	s.Equal(http.StatusCreated, status)
	s.NotZero(resp.Data.ID)
	s.ElementsMatch([]string{"Horror", "Sci-Fi"}, resp.Data.Genres)
	s.createdMovieID = resp.Data.ID
}

func (s *E2ETestSuite) Test11_CreateMovieRequiresAdmin() {
	status := s.doJSON("POST", "/movies", "", map[string]interface{}{"title": "Nope"}, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *E2ETestSuite) Test12_ListMoviesWithSearch() {
	q := url.Values{}
	q.Set("q", "brain")
	q.Set("genre", "Horror")
	q.Set("sort", "year")
	q.Set("order", "desc")
	var resp struct {
		Data struct {
			Items []struct {
				ID    int    `json:"id"`
				Title string `json:"title"`
			} `json:"items"`
			Total    int `json:"total"`
			Page     int `json:"page"`
			PageSize int `json:"pageSize"`
		} `json:"data"`
	}
	status := s.doJSON("GET", "/movies?"+q.Encode(), "", nil, &resp)
	s.Equal(http.StatusOK, status)
	s.Equal(1, resp.Data.Page)
	s.Equal(24, resp.Data.PageSize)
	s.GreaterOrEqual(resp.Data.Total, 1)
	found := false
	for _, m := range resp.Data.Items {
		if m.ID == s.createdMovieID {
			found = true
		}
	}
	s.True(found, "created movie should match case-insensitive search")
}

// Malformed listing parameters never fail the page; they fall back to
// defaults.
func (s *E2ETestSuite) Test13_ListMoviesMalformedParams() {
	status := s.doJSON("GET", "/movies?page=banana&sort=evil&order=DESC", "", nil, nil)
	s.Equal(http.StatusOK, status)
}

func (s *E2ETestSuite) Test14_GetMovie() {
	var resp struct {
		Data struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		} `json:"data"`
	}
	status := s.doJSON("GET", "/movies/"+strconv.Itoa(s.createdMovieID), "", nil, &resp)
	s.Equal(http.StatusOK, status)
	s.Equal(s.createdMovieID, resp.Data.ID)
}

func (s *E2ETestSuite) Test15_UpdateMovie() {
	body := map[string]interface{}{"priceCents": 399}
	var resp struct {
		Data struct {
			PriceCents int `json:"priceCents"`
		} `json:"data"`
	}
	status := s.doJSON("PATCH", "/movies/"+strconv.Itoa(s.createdMovieID), s.adminToken, body, &resp)
	s.Equal(http.StatusOK, status)
	s.Equal(399, resp.Data.PriceCents)
}

func (s *E2ETestSuite) Test16_CreditRoundTrip() {
	var person struct {
		Data struct {
			ID int `json:"id"`
		} `json:"data"`
	}
	status := s.doJSON("POST", "/people", s.adminToken, map[string]interface{}{"name": "Jason Evers"}, &person)
	s.Require().Equal(http.StatusCreated, status)

	credit := map[string]interface{}{
		"personId":      person.Data.ID,
		"role":          "actor",
		"characterName": "Dr. Bill Cortner",
	}
	status = s.doJSON("PUT", "/movies/"+strconv.Itoa(s.createdMovieID)+"/credits", s.adminToken, credit, nil)
	s.Equal(http.StatusOK, status)

	var movie struct {
		Data struct {
			Credits []struct {
				PersonID int    `json:"personId"`
				Role     string `json:"role"`
			} `json:"credits"`
		} `json:"data"`
	}
	status = s.doJSON("GET", "/movies/"+strconv.Itoa(s.createdMovieID), "", nil, &movie)
	s.Equal(http.StatusOK, status)
	s.NotEmpty(movie.Data.Credits)

	var filmography struct {
		Data struct {
			Filmography []struct {
				MovieID int `json:"movieId"`
			} `json:"filmography"`
		} `json:"data"`
	}
	status = s.doJSON("GET", "/people/"+strconv.Itoa(person.Data.ID), "", nil, &filmography)
	s.Equal(http.StatusOK, status)
	s.NotEmpty(filmography.Data.Filmography)
}

func (s *E2ETestSuite) Test17_InvalidCreditRole() {
	credit := map[string]interface{}{"personId": 1, "role": "gaffer"}
	status := s.doJSON("PUT", "/movies/"+strconv.Itoa(s.createdMovieID)+"/credits", s.adminToken, credit, nil)
	s.Equal(http.StatusBadRequest, status)
}

func (s *E2ETestSuite) Test18_DeleteRestoreMovie() {
	id := strconv.Itoa(s.createdMovieID)
	status := s.doJSON("PATCH", "/movies/"+id+"/delete", s.adminToken, nil, nil)
	s.Equal(http.StatusNoContent, status)

	status = s.doJSON("GET", "/movies/"+id, "", nil, nil)
	s.Equal(http.StatusNotFound, status)

	status = s.doJSON("PATCH", "/movies/"+id+"/restore", s.adminToken, nil, nil)
	s.Equal(http.StatusNoContent, status)

	status = s.doJSON("GET", "/movies/"+id, "", nil, nil)
	s.Equal(http.StatusOK, status)
}
