package handlers

import (
	"net/http"
	"strconv"

	"github.com/knixan/b-movies/models"
	"github.com/knixan/b-movies/pkg/events"
	"github.com/knixan/b-movies/pkg/notify"
	"github.com/knixan/b-movies/repository"
	"github.com/knixan/b-movies/types"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	repo     *repository.OrdersRepository
	notifier notify.Notifier
}

func NewOrdersHandler(repo *repository.OrdersRepository) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

func (h *OrdersHandler) WithNotifier(n notify.Notifier) *OrdersHandler {
	h.notifier = n
	return h
}

// CreateOrder is the public checkout endpoint. New orders start pending and
// connected admins are notified in real time.
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerName  string `json:"customerName" binding:"required"`
		CustomerEmail string `json:"customerEmail" binding:"required,email"`
		Items         []struct {
			MovieID  int `json:"movieId" binding:"required"`
			Quantity int `json:"quantity" binding:"required,min=1"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{MovieID: it.MovieID, Quantity: it.Quantity})
	}

	order, err := h.repo.CreateOrder(req.CustomerName, req.CustomerEmail, items)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeInvalidRequest, "Order could not be placed: "+err.Error()))
		return
	}

	if h.notifier != nil {
		h.notifier.Broadcast(events.OrderCreated{
			Type:       "order.created",
			OrderID:    order.ID,
			TotalCents: order.TotalCents,
		})
	}

	c.JSON(http.StatusCreated, types.NewSuccessResponse(order))
}

// GetOrders lists orders for the admin dashboard, optionally filtered by
// status, newest first.
func (h *OrdersHandler) GetOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid status"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	orders, total, err := h.repo.ListOrders(status, page, types.CatalogPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(types.ListResponse{
		Items:      orders,
		Total:      total,
		Page:       page,
		PageSize:   types.CatalogPageSize,
		Pagination: types.BuildPaginationPlan(total, page, types.CatalogPageSize, types.DefaultSiblingCount),
	}))
}

func (h *OrdersHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	order, err := h.repo.GetOrderByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if order == nil || order.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Order not found"))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(order))
}

func (h *OrdersHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, err.Error()))
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid status"))
		return
	}
	existing, err := h.repo.GetOrderByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if existing == nil || existing.IsDeleted {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Order not found"))
		return
	}
	if err := h.repo.UpdateOrderStatus(id, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.JSON(http.StatusOK, types.NewSuccessResponse(gin.H{"message": "Order updated"}))
}

func (h *OrdersHandler) DeleteOrder(c *gin.Context) {
	h.setDeleted(c, true)
}

func (h *OrdersHandler) RestoreOrder(c *gin.Context) {
	h.setDeleted(c, false)
}

func (h *OrdersHandler) setDeleted(c *gin.Context, deleted bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse(types.ErrorCodeValidation, "Invalid ID"))
		return
	}
	order, err := h.repo.GetOrderByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, types.NewErrorResponse(types.ErrorCodeNotFound, "Order not found"))
		return
	}
	if err := h.repo.UpdateOrderDeleted(id, deleted); err != nil {
		c.JSON(http.StatusInternalServerError, types.NewErrorResponse(types.ErrorCodeInternal, err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
