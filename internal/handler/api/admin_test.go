//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/handler/api"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/tests/common/httptest"
	commandsmock "workspace-booking/tests/mock/commands"
	queriesmock "workspace-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockRoster   *queriesmock.MockRosterQueries
	mockCommands *commandsmock.MockReservationCommands
}

func (s *AdminHandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoster = queriesmock.NewMockRosterQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)

	s.router.GET("/admin/roster", fakeAuth, api.NewRosterHandler(s.mockRoster, testSettings()).Get)
	s.router.POST("/admin/reservations/expire", fakeAuth, api.NewAdminHandler(s.mockCommands).ExpireUnpaid)
}

func (s *AdminHandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlersSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlersTestSuite))
}

func (s *AdminHandlersTestSuite) TestRoster() {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, wib)
	checkIn := time.Date(2026, 10, 20, 9, 0, 0, 0, wib)
	checkOut := checkIn.Add(2 * time.Hour)

	s.Run("success: renders every group", func() {
		s.mockRoster.EXPECT().GetRoster(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, d time.Time, _ *booking.RosterGroupType) (*queries.RosterView, error) {
				s.True(d.Equal(date))
				return &queries.RosterView{
					Date: d,
					Groups: []booking.RosterGroup{{
						RoomLabel: "Coworking Space",
						Date:      d,
						Type:      booking.GroupCoworking,
						Rows: []booking.RosterRow{
							{SubType: "Hot Desk 1", CapacityLabel: "1 pax", Occupancy: booking.OccupancyFull,
								OrderRef: "ORD-1", CustomerName: "Budi Santoso", CheckIn: &checkIn, CheckOut: &checkOut},
							{SubType: "Hot Desk 2", CapacityLabel: "1 pax", Occupancy: booking.OccupancyAvailable},
						},
					}},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/roster?date=2026-10-20", nil, "bearer-token")

		var body resdto.RosterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2026-10-20", body.Date)
		s.Require().Len(body.Groups, 1)
		g := body.Groups[0]
		s.Equal("coworking", g.Type)
		s.Require().Len(g.Rows, 2)
		s.Equal("Full", g.Rows[0].Occupancy)
		s.Equal("ORD-1", g.Rows[0].OrderRef)
		s.Require().NotNil(g.Rows[0].CheckIn)
		s.True(g.Rows[0].CheckIn.Equal(checkIn))
		s.Equal("Available", g.Rows[1].Occupancy)
		s.Nil(g.Rows[1].CheckIn)
	})

	s.Run("success: filters by group", func() {
		s.mockRoster.EXPECT().GetRoster(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, d time.Time, g *booking.RosterGroupType) (*queries.RosterView, error) {
				s.Equal(booking.GroupOfficeSuite, *g)
				return &queries.RosterView{Date: d}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/roster?date=2026-10-20&group=office_suite", nil, "bearer-token")

		var body resdto.RosterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Groups)
	})

	s.Run("error: 400 on invalid queries", func() {
		for _, q := range []string{"", "?date=20261020", "?date=2026-10-20&group=virtual"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/roster"+q, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})
}

func (s *AdminHandlersTestSuite) TestExpireUnpaid() {
	cutoff := time.Date(2026, 10, 19, 12, 0, 0, 0, wib)

	s.Run("success: reports the sweep", func() {
		s.mockCommands.EXPECT().ExpireUnpaid(gomock.Any()).
			Return(&commands.ExpireResult{Scanned: 3, Released: 2, Cutoff: cutoff}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/reservations/expire", nil, "bearer-token")

		var body resdto.ExpireResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Scanned)
		s.Equal(2, body.Released)
		s.True(body.Cutoff.Equal(cutoff))
	})
}
