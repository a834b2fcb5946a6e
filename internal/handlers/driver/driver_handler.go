package driver

import (
	"net/http"
	"strconv"

	"taxi-fleet-service/internal/domain/driver"
	"taxi-fleet-service/internal/middleware"
	xerrors "taxi-fleet-service/internal/pkg/errors"
	"taxi-fleet-service/internal/pkg/response"
	carService "taxi-fleet-service/internal/service/car"
	driverService "taxi-fleet-service/internal/service/driver"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	service    *driverService.Service
	carService *carService.Service
}

func NewDriverHandler(service *driverService.Service, carService *carService.Service) *DriverHandler {
	return &DriverHandler{
		service:    service,
		carService: carService,
	}
}

// Create handles POST /drivers
func (h *DriverHandler) Create(c *gin.Context) {
	var req driver.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	d, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create driver", err)
		return
	}

	response.Success(c, http.StatusCreated, "driver created", d)
}

// Get handles GET /drivers/:id
func (h *DriverHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid driver id", err)
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "driver not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to get driver", err)
		return
	}

	response.Success(c, http.StatusOK, "driver", d)
}

// List handles GET /drivers
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list drivers", err)
		return
	}

	response.Success(c, http.StatusOK, "drivers", drivers)
}

// Update handles PUT /drivers/:id
func (h *DriverHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid driver id", err)
		return
	}

	var req driver.UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update driver", err)
		return
	}

	response.Success(c, http.StatusOK, "driver updated", d)
}

// Delete handles DELETE /drivers/:id
func (h *DriverHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid driver id", err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to delete driver", err)
		return
	}
	if !deleted {
		response.NotFound(c, "driver not found")
		return
	}

	response.Success(c, http.StatusOK, "driver deleted", nil)
}

// MyCars handles GET /drivers/me/cars, the authenticated driver's own cars
func (h *DriverHandler) MyCars(c *gin.Context) {
	driverID := middleware.MustGetDriverID(c)

	cars, err := h.carService.GetAllByDriver(c.Request.Context(), driverID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list cars", err)
		return
	}

	response.Success(c, http.StatusOK, "cars", cars)
}
