package handlers

import (
	"context"
	"errors"

	apierrors "investment-dashboard/internal/errors"
	"investment-dashboard/internal/models"
	"investment-dashboard/internal/repositories"
	"investment-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// handleServiceError maps report pipeline errors onto API error codes.
// Specific causes are checked before the generic report-unavailable wrapper.
func handleServiceError(c echo.Context, err error) error {
	var formatErr *models.InputFormatError
	if errors.As(err, &formatErr) {
		return SendError(c, inputFormatCode(formatErr), apierrors.WithInputLocation(err))
	}

	var missing *models.MissingKeyError
	if errors.As(err, &missing) {
		code := apierrors.LookupUnknownProduct
		if missing.Table == models.TableClients {
			code = apierrors.LookupUnknownClient
		}
		return SendError(c, code, apierrors.WithInputLocation(err))
	}

	if errors.Is(err, repositories.ErrSourceNotFound) {
		return SendError(c, apierrors.InputSourceNotFound)
	}

	if errors.Is(err, services.ErrCircuitBreakerOpen) || errors.Is(err, services.ErrSourceUnavailable) {
		return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails("input source temporarily unavailable"))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return SendError(c, apierrors.InputUnreadable, apierrors.WithDetails("timed out reading input tables"))
	}

	if errors.Is(err, services.ErrInvalidMonth) {
		return SendError(c, apierrors.ValidationInvalidMonth)
	}

	if errors.Is(err, services.ErrNoInvestments) {
		return SendError(c, apierrors.ReportEmpty)
	}

	if errors.Is(err, services.ErrUnknownChart) {
		return SendError(c, apierrors.ReportChartNotFound)
	}

	return SendSystemError(c, err)
}

func inputFormatCode(err *models.InputFormatError) apierrors.ErrorCode {
	switch {
	case errors.Is(err, models.ErrMissingColumn):
		return apierrors.InputMissingColumn
	case errors.Is(err, models.ErrDuplicateKey):
		return apierrors.InputDuplicateKey
	default:
		return apierrors.InputInvalidValue
	}
}
