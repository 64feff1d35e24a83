package api

import (
	"net/http"

	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q        queries.AvailabilityQueries
	settings shared.Settings
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, settings shared.Settings) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, settings: settings}
}

// @Summary Check availability
// @Description Whether a window can take the requested quantity. Unavailability is a 200 verdict, not an error.
// @Tags availability
// @Produce json
// @Param kind query string false "Resource kind (required without variant_id)"
// @Param variant_id query string false "Variant ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string false "Start time (HH:MM), required for time-sliced kinds"
// @Param duration_minutes query int false "Window length in minutes"
// @Param quantity query int false "Units requested" default(1)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalid(c, err)
		return
	}
	in, err := query.ToInput(h.settings.Location)
	if err != nil {
		abortInvalid(c, err)
		return
	}
	view, err := h.q.GetAvailability(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromAvailabilityView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
