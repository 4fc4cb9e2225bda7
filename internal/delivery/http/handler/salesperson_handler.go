package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salestrack/internal/usecase/salesperson"
	"salestrack/pkg/utils"
)

type SalespersonHandler struct {
	service *salesperson.Service
}

func NewSalespersonHandler(service *salesperson.Service) *SalespersonHandler {
	return &SalespersonHandler{service: service}
}

func (h *SalespersonHandler) RegisterRoutes(router *gin.RouterGroup) {
	people := router.Group("/salespeople")
	{
		people.GET("", h.List)
		people.POST("", h.Create)
		people.PUT("/:id", h.Update)
		people.DELETE("/:id", h.Delete)
		people.PUT("/:id/location", h.UpdateLocation)
	}
}

func (h *SalespersonHandler) List(c *gin.Context) {
	people, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Salespeople retrieved successfully", people)
}

func (h *SalespersonHandler) Create(c *gin.Context) {
	var req salesperson.CreateSalespersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Salesperson created successfully", sp)
}

func (h *SalespersonHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req salesperson.UpdateSalespersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Salesperson updated successfully", sp)
}

func (h *SalespersonHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req salesperson.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateLocation(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", nil)
}

func (h *SalespersonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Salesperson deleted successfully", nil)
}
