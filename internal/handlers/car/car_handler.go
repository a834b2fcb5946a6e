package car

import (
	"net/http"
	"strconv"

	"taxi-fleet-service/internal/domain/car"
	xerrors "taxi-fleet-service/internal/pkg/errors"
	"taxi-fleet-service/internal/pkg/response"
	carService "taxi-fleet-service/internal/service/car"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	service *carService.Service
}

func NewCarHandler(service *carService.Service) *CarHandler {
	return &CarHandler{service: service}
}

// Create handles POST /cars
func (h *CarHandler) Create(c *gin.Context) {
	var req car.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "invalid reference", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to create car", err)
		return
	}

	response.Success(c, http.StatusCreated, "car created", created)
}

// Get handles GET /cars/:id
func (h *CarHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid car id", err)
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "car not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get car", err)
		return
	}

	response.Success(c, http.StatusOK, "car", found)
}

// List handles GET /cars
func (h *CarHandler) List(c *gin.Context) {
	cars, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list cars", err)
		return
	}

	response.Success(c, http.StatusOK, "cars", cars)
}

// Update handles PUT /cars/:id
func (h *CarHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid car id", err)
		return
	}

	var req car.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "invalid reference", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update car", err)
		return
	}

	response.Success(c, http.StatusOK, "car updated", updated)
}

// Delete handles DELETE /cars/:id
func (h *CarHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid car id", err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to delete car", err)
		return
	}
	if !deleted {
		response.NotFound(c, "car not found")
		return
	}

	response.Success(c, http.StatusOK, "car deleted", nil)
}

// ListByDriver handles GET /cars/by-driver/:id
func (h *CarHandler) ListByDriver(c *gin.Context) {
	driverID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid driver id", err)
		return
	}

	cars, err := h.service.GetAllByDriver(c.Request.Context(), driverID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list cars", err)
		return
	}

	response.Success(c, http.StatusOK, "cars", cars)
}
