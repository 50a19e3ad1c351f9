package handler

import (
	"errors"
	"net/http"

	"bakery-storefront/internal/checkout"
	"bakery-storefront/internal/client"
	"bakery-storefront/internal/dto"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, auth 401, missing rows 404, guard conflicts 409,
// backend-reported business failures 422, anything else 502 with a
// generic message.
func respondError(c echo.Context, err error) error {
	var vErr *checkout.ValidationError
	var bErr *service.BusinessError

	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Message})
	case errors.Is(err, service.ErrNoSession), errors.Is(err, client.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "login required", Redirect: "/login"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, service.ErrEmptyCart):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "cart is empty", Redirect: "/cart"})
	case errors.Is(err, service.ErrCheckoutInFlight):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "a checkout is already in progress"})
	case errors.As(err, &bErr):
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: bErr.Message})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "could not reach the store service, try again"})
	}
}
