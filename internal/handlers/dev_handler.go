package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"
)

// DevHandler exposes the fake-account generator. It is only registered in
// the development environment.
type DevHandler struct {
	seeder *services.DemoSeeder
	logger *slog.Logger
}

func NewDevHandler(seeder *services.DemoSeeder, logger *slog.Logger) *DevHandler {
	return &DevHandler{
		seeder: seeder,
		logger: logger,
	}
}

// GenerateAccounts creates fake accounts and returns their credentials so a
// manual tester can log in as them.
func (h *DevHandler) GenerateAccounts(c echo.Context) error {
	var req dto.GenerateAccountsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeMalformedRequest)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails(err.Error()))
	}

	accounts, err := h.seeder.GenerateAccounts(req.Count)
	if err != nil {
		h.logger.Error("account generation failed", "error", err)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    accounts,
		Message: "accounts generated",
	})
}
