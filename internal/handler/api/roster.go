package api

import (
	"net/http"

	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	q        queries.RosterQueries
	settings shared.Settings
}

func NewRosterHandler(q queries.RosterQueries, settings shared.Settings) *RosterHandler {
	return &RosterHandler{q: q, settings: settings}
}

// @Summary Daily roster
// @Description Per-room occupancy for the coworking area and office suites on a date.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param group query string false "coworking or office_suite"
// @Success 200 {object} resdto.RosterResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/roster [get]
func (h *RosterHandler) Get(c *gin.Context) {
	var query reqdto.RosterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortInvalid(c, err)
		return
	}
	date, group, err := query.Parse(h.settings.Location)
	if err != nil {
		abortInvalid(c, err)
		return
	}
	view, err := h.q.GetRoster(c.Request.Context(), date, group)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromRosterView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
