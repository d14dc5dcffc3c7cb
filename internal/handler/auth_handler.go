package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/crosayo/cardstock/pkg/jwtutil"
	"github.com/crosayo/cardstock/pkg/logger"
	"github.com/crosayo/cardstock/prometheus"
)

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials against the user file and issues a JWT
func Login(c echo.Context) error {
	log := logger.FromContext(c)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	prometheus.AuthAttemptsCounter.Inc()

	if req.Username == "" || req.Password == "" {
		log.Warn("Login with empty username or password")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "username and password are required",
		})
	}

	if !users.Check(req.Username, req.Password) {
		prometheus.AuthErrorsCounter.Inc()
		log.Warn("Failed login attempt", zap.String("username", req.Username))
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "invalid username or password",
		})
	}

	token, err := jwtutil.GenerateToken(req.Username)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to generate token",
		})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("User logged in", zap.String("username", req.Username))
	return c.JSON(http.StatusOK, echo.Map{
		"token":    token,
		"username": req.Username,
	})
}
