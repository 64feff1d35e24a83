package api

import (
	"net/http"

	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.ReservationCommands
}

func NewAdminHandler(cmds commands.ReservationCommands) *AdminHandler {
	return &AdminHandler{cmds: cmds}
}

// @Summary Expire unpaid reservations
// @Description Release held reservations whose order stayed pending past the retention window.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ExpireResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/reservations/expire [post]
func (h *AdminHandler) ExpireUnpaid(c *gin.Context) {
	result, err := h.cmds.ExpireUnpaid(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromExpireResult(result)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
