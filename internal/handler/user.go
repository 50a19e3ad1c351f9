package handler

import (
	"net/http"

	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	session, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *UserHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.userService.Logout(ctx); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) Session(c echo.Context) error {
	ctx := c.Request().Context()

	session, err := h.userService.CurrentSession(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *UserHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.userService.Profile(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profileResponse(profile))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	profile, err := h.userService.UpdateProfile(ctx, req.Login, req.Email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profileResponse(profile))
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.userService.UpdatePassword(ctx, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func sessionResponse(session *model.Session) dto.SessionResponse {
	return dto.SessionResponse{
		UserID: session.UserID,
		Login:  session.Login,
		Email:  session.Email,
	}
}

func profileResponse(profile *model.UserProfile) dto.Profile {
	return dto.Profile{
		ID:    profile.ID,
		Login: profile.LoginUsrio,
		Email: profile.CorreoUsuario,
	}
}
