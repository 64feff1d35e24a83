package api

import (
	"errors"
	"log/slog"
	"net/http"

	"workspace-booking/internal/handler/httperr"
	"workspace-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errHoldRejected = errors.New("hold rejected")

// abortWithUseCaseError maps use-case marks to a status. Unmarked errors
// and infrastructure failures surface as a generic 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, errs.ErrVariantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Variant not found", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrReservationReleased):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already released", nil)
	case errs.Is(err, errs.ErrConfiguration):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Booking configuration error", nil)
	default:
		slog.ErrorContext(c.Request.Context(), "Unhandled use case error",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortInvalid(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
