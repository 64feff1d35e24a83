package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/handler/httperr"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds     commands.ReservationCommands
	q        queries.ReservationQueries
	settings shared.Settings
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, settings shared.Settings) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, settings: settings}
}

// @Summary Create reservation
// @Description Draft a reservation for an order line. With "hold": true the draft is held in the same transaction.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err)
		return
	}
	in, err := req.ToInput(h.settings.Location)
	if err != nil {
		abortInvalid(c, err)
		return
	}

	if req.Hold {
		result, holdErr := h.cmds.DraftAndHold(c.Request.Context(), in)
		if holdErr != nil {
			abortWithUseCaseError(c, holdErr)
			return
		}
		h.respondHold(c, result)
		return
	}

	res, err := h.cmds.Draft(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservation(res, h.settings.Location)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+res.ID.String())
	c.JSON(http.StatusCreated, body)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Hold reservation
// @Description Re-verify capacity under lock and hold the reservation. A rejected hold answers 409 with the verdict.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.HoldResponse "already held"
// @Success 201 {object} resdto.HoldResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/hold [post]
func (h *ReservationHandler) Hold(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	result, err := h.cmds.Hold(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondHold(c, result)
}

// @Summary Release reservation
// @Description Release a reservation. Releasing twice is a no-op reported with changed=false.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReleaseReservationRequest false "Release cause"
// @Success 200 {object} resdto.ReleaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id}/release [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ReleaseReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		abortInvalid(c, bindErr)
		return
	}
	result, err := h.cmds.Release(c.Request.Context(), id, req.ReleaseCause())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReleaseResult(result, h.settings.Location)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Complete order
// @Description Mark the held reservations of a paid order completed.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CompleteOrderResponse
// @Failure 400 {object} httperr.Response
// @Router /api/orders/{id}/complete [post]
func (h *ReservationHandler) CompleteOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	n, err := h.cmds.CompleteOrder(c.Request.Context(), orderID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CompleteOrderResponse{OrderID: orderID, Completed: n})
}

func (h *ReservationHandler) respondHold(c *gin.Context, result *commands.HoldResult) {
	body, err := resdto.FromHoldResult(result, h.settings.Location)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	switch {
	case result.AlreadyHeld:
		c.JSON(http.StatusOK, body)
	case result.Held:
		c.Header("Location", "/api/reservations/"+result.Reservation.ID.String())
		c.JSON(http.StatusCreated, body)
	default:
		httperr.AbortWithError(c, http.StatusConflict, errHoldRejected, result.Message(), body)
	}
}
