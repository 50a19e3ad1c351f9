package handler

import (
	"net/http"
	"strconv"

	"bakery-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type TransactionHandler struct {
	transactionService service.TransactionService
}

func NewTransactionHandler(transactionService service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListAll backs the admin transactions view.
func (h *TransactionHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()

	transactions, err := h.transactionService.ListAll(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) History(c echo.Context) error {
	ctx := c.Request().Context()

	history, err := h.transactionService.History(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, history)
}

func (h *TransactionHandler) Details(c echo.Context) error {
	ctx := c.Request().Context()

	transactionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || transactionID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid transaction id")
	}

	details, err := h.transactionService.Details(ctx, transactionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, details)
}
