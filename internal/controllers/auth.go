package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/internal/dto"
	"taller-system/internal/services"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/utils"
)

type AuthController struct {
	authService *services.AuthService
	cookieName  string
	cookieTTL   time.Duration
	logger      *zap.Logger
}

func NewAuthController(
	authService *services.AuthService,
	cookieName string,
	cookieTTL time.Duration,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
		logger:      logger,
	}
}

func (c *AuthController) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     c.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(maxAge),
	}
}

func (c *AuthController) Login(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Formato de datos inválido"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError(err.Error()))
	}

	res, err := c.authService.Login(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.SetCookie(c.sessionCookie(res.Token, c.cookieTTL))
	return utils.SuccessResponse(ctx, dto.MeDTO{User: res.User}, "Sesión iniciada", http.StatusOK)
}

func (c *AuthController) Logout(ctx echo.Context) error {
	ctx.SetCookie(c.sessionCookie("", -time.Hour))
	return utils.SuccessResponse(ctx, struct{}{}, "Sesión cerrada", http.StatusOK)
}

func (c *AuthController) Me(ctx echo.Context) error {
	res, err := c.authService.Me(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Usuario de sesión", http.StatusOK)
}
