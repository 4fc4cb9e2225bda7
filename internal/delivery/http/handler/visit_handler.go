package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salestrack/internal/usecase/visit"
	"salestrack/pkg/utils"
)

type VisitHandler struct {
	service *visit.Service
}

func NewVisitHandler(service *visit.Service) *VisitHandler {
	return &VisitHandler{service: service}
}

func (h *VisitHandler) RegisterRoutes(router *gin.RouterGroup) {
	visits := router.Group("/visits")
	{
		visits.GET("", h.List)
		visits.POST("", h.Create)
		visits.PUT("/:id", h.UpdateStatus)
		visits.DELETE("/:id", h.Delete)
	}
}

// List returns all visits, or one salesperson's when ?salesperson_id is set.
func (h *VisitHandler) List(c *gin.Context) {
	if raw := c.Query("salesperson_id"); raw != "" {
		salespersonID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid salesperson_id")
			return
		}

		visits, err := h.service.ListBySalesperson(c.Request.Context(), uint(salespersonID))
		if err != nil {
			respondError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Visits retrieved successfully", visits)
		return
	}

	visits, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) Create(c *gin.Context) {
	var req visit.CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Visit created successfully", v)
}

func (h *VisitHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req visit.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visit updated successfully", nil)
}

func (h *VisitHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visit deleted successfully", nil)
}
