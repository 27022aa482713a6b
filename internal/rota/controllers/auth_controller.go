package controllers

import (
	"errors"
	"net/http"

	"github.com/c14220110/rota-backend/internal/rota/services"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ac *AuthController) LoginHandler(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "invalid request payload: "+err.Error(), nil)
	}

	token, err := ac.Service.Login(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return respond(c, http.StatusUnauthorized, err.Error(), nil)
	}
	if err != nil {
		return respond(c, http.StatusInternalServerError, "failed to issue token: "+err.Error(), nil)
	}
	return respond(c, http.StatusOK, "login berhasil", map[string]interface{}{
		"token": token,
	})
}
