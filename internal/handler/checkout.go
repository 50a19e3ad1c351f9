package handler

import (
	"net/http"

	"bakery-storefront/internal/checkout"
	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) PayWithCard(c echo.Context) error {
	ctx := c.Request().Context()

	var input checkout.CardInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.PayWithCard(ctx, &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) PayWithPSE(c echo.Context) error {
	ctx := c.Request().Context()

	var input checkout.PSEInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.PayWithPSE(ctx, &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) LastTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	record, err := h.checkoutService.LastTransaction(ctx)
	if err != nil {
		return respondError(c, err)
	}
	if record == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, record)
}
