package manufacturer

import (
	"net/http"
	"strconv"

	"taxi-fleet-service/internal/domain/manufacturer"
	xerrors "taxi-fleet-service/internal/pkg/errors"
	"taxi-fleet-service/internal/pkg/response"
	manufacturerService "taxi-fleet-service/internal/service/manufacturer"

	"github.com/gin-gonic/gin"
)

type ManufacturerHandler struct {
	service *manufacturerService.Service
}

func NewManufacturerHandler(service *manufacturerService.Service) *ManufacturerHandler {
	return &ManufacturerHandler{service: service}
}

// Create handles POST /manufacturers
func (h *ManufacturerHandler) Create(c *gin.Context) {
	var req manufacturer.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	m, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create manufacturer", err)
		return
	}

	response.Success(c, http.StatusCreated, "manufacturer created", m)
}

// Get handles GET /manufacturers/:id
func (h *ManufacturerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid manufacturer id", err)
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "manufacturer not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get manufacturer", err)
		return
	}

	response.Success(c, http.StatusOK, "manufacturer", m)
}

// List handles GET /manufacturers
func (h *ManufacturerHandler) List(c *gin.Context) {
	manufacturers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list manufacturers", err)
		return
	}

	response.Success(c, http.StatusOK, "manufacturers", manufacturers)
}

// Update handles PUT /manufacturers/:id
func (h *ManufacturerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid manufacturer id", err)
		return
	}

	var req manufacturer.UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update manufacturer", err)
		return
	}

	response.Success(c, http.StatusOK, "manufacturer updated", m)
}

// Delete handles DELETE /manufacturers/:id
func (h *ManufacturerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid manufacturer id", err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to delete manufacturer", err)
		return
	}
	if !deleted {
		response.NotFound(c, "manufacturer not found")
		return
	}

	response.Success(c, http.StatusOK, "manufacturer deleted", nil)
}
