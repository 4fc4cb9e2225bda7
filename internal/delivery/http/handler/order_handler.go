package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salestrack/internal/usecase/order"
	"salestrack/pkg/utils"
)

type OrderHandler struct {
	service *order.Service
}

func NewOrderHandler(service *order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.PUT("/:id", h.UpdateStatus)
		orders.DELETE("/:id", h.Delete)
	}
}

// List returns all orders, or one salesperson's when ?salesperson_id is set.
func (h *OrderHandler) List(c *gin.Context) {
	if raw := c.Query("salesperson_id"); raw != "" {
		salespersonID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid salesperson_id")
			return
		}

		orders, err := h.service.ListBySalesperson(c.Request.Context(), uint(salespersonID))
		if err != nil {
			respondError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
		return
	}

	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order updated successfully", nil)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order deleted successfully", nil)
}
