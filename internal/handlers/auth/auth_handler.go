package auth

import (
	"net/http"

	"taxi-fleet-service/internal/domain/driver"
	"taxi-fleet-service/internal/middleware"
	xerrors "taxi-fleet-service/internal/pkg/errors"
	"taxi-fleet-service/internal/pkg/response"
	authService "taxi-fleet-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authService.Service
	logger      *zap.Logger
}

func NewAuthHandler(svc *authService.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: svc,
		logger:      logger,
	}
}

// Login handles driver sign-in
func (h *AuthHandler) Login(c *gin.Context) {
	var req driver.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrAuthentication) {
			response.Error(c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		h.logger.Error("login failed",
			zap.String("login", req.Login),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", resp)
}

// Logout invalidates the current session
func (h *AuthHandler) Logout(c *gin.Context) {
	driverID := middleware.MustGetDriverID(c)
	jti := middleware.MustGetJTI(c)

	if err := h.authService.Logout(c.Request.Context(), driverID, jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}

	response.Success(c, http.StatusOK, "logout successful", nil)
}
