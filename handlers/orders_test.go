package handlers

import (
	"net/http"
	"strconv"
)

func (s *E2ETestSuite) Test30_CreateOrder() {
	body := map[string]interface{}{
		"customerName":  "Kim Larsson",
		"customerEmail": "kim@example.com",
		"items": []map[string]interface{}{
			{"movieId": s.createdMovieID, "quantity": 2},
		},
	}
	var resp struct {
		Data struct {
			ID         int    `json:"id"`
			Status     string `json:"status"`
			TotalCents int    `json:"totalCents"`
		} `json:"data"`
	}
	status := s.doJSON("POST", "/orders", "", body, &resp)
	s.Equal(http.StatusCreated, status)
	s.Equal("pending", resp.Data.Status)
	s.NotZero(resp.Data.TotalCents)
	s.createdOrderID = resp.Data.ID
}

func (s *E2ETestSuite) Test31_CreateOrderValidation() {
	// Missing items
	status := s.doJSON("POST", "/orders", "", map[string]interface{}{
		"customerName":  "Kim Larsson",
		"customerEmail": "kim@example.com",
		"items":         []map[string]interface{}{},
	}, nil)
	s.Equal(http.StatusBadRequest, status)

	// Unknown movie
	status = s.doJSON("POST", "/orders", "", map[string]interface{}{
		"customerName":  "Kim Larsson",
		"customerEmail": "kim@example.com",
		"items":         []map[string]interface{}{{"movieId": 99999999, "quantity": 1}},
	}, nil)
	s.Equal(http.StatusBadRequest, status)
}

func (s *E2ETestSuite) Test32_ListOrdersIsAdminOnly() {
	status := s.doJSON("GET", "/orders", "", nil, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *E2ETestSuite) Test33_ListOrders() {
	var resp struct {
		Data struct {
			Items []struct {
				ID     int    `json:"id"`
				Status string `json:"status"`
			} `json:"items"`
			Total int `json:"total"`
		} `json:"data"`
	}
	status := s.doJSON("GET", "/orders?status=pending", s.adminToken, nil, &resp)
	s.Equal(http.StatusOK, status)
	s.GreaterOrEqual(resp.Data.Total, 1)
}

func (s *E2ETestSuite) Test34_UpdateOrderStatus() {
	id := strconv.Itoa(s.createdOrderID)
	status := s.doJSON("PATCH", "/orders/"+id, s.adminToken, map[string]interface{}{"status": "paid"}, nil)
	s.Equal(http.StatusOK, status)

	var resp struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	status = s.doJSON("GET", "/orders/"+id, s.adminToken, nil, &resp)
	s.Equal(http.StatusOK, status)
	s.Equal("paid", resp.Data.Status)

	status = s.doJSON("PATCH", "/orders/"+id, s.adminToken, map[string]interface{}{"status": "teleported"}, nil)
	s.Equal(http.StatusBadRequest, status)
}

func (s *E2ETestSuite) Test35_DeleteRestoreOrder() {
	id := strconv.Itoa(s.createdOrderID)
	status := s.doJSON("PATCH", "/orders/"+id+"/delete", s.adminToken, nil, nil)
	s.Equal(http.StatusNoContent, status)

	status = s.doJSON("GET", "/orders/"+id, s.adminToken, nil, nil)
	s.Equal(http.StatusNotFound, status)

	status = s.doJSON("PATCH", "/orders/"+id+"/restore", s.adminToken, nil, nil)
	s.Equal(http.StatusNoContent, status)
}
