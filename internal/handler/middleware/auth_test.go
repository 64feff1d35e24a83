//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"workspace-booking/internal/domain/staff"
	"workspace-booking/internal/handler/middleware"
	"workspace-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Get(1).(staff.Role), args.Error(2)
}

func newAuthRouter(v *MockTokenValidator, minRole staff.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(v)
	r.GET("/guarded", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, _ := middleware.GetStaffID(c)
		role, _ := middleware.GetStaffRole(c)
		c.JSON(http.StatusOK, gin.H{"staff_id": id.String(), "role": string(role)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	staffID := uuid.New()

	t.Run("missing token", func(t *testing.T) {
		v := new(MockTokenValidator)
		rec := httptest.PerformRequest(t, newAuthRouter(v, staff.RoleViewer), http.MethodGet, "/guarded", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
		v.AssertNotCalled(t, "ValidateToken", mock.Anything)
	})

	t.Run("invalid token", func(t *testing.T) {
		v := new(MockTokenValidator)
		v.On("ValidateToken", "bad").Return(uuid.Nil, staff.Role(""), errors.New("signature is invalid"))
		rec := httptest.PerformRequest(t, newAuthRouter(v, staff.RoleViewer), http.MethodGet, "/guarded", nil, "bad")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("valid token exposes staff id and role", func(t *testing.T) {
		v := new(MockTokenValidator)
		v.On("ValidateToken", "good").Return(staffID, staff.RoleOperator, nil)
		var body map[string]string
		rec := httptest.PerformRequest(t, newAuthRouter(v, staff.RoleViewer), http.MethodGet, "/guarded", nil, "good")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, staffID.String(), body["staff_id"])
		assert.Equal(t, "operator", body["role"])
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	tests := []struct {
		name       string
		role       staff.Role
		minRole    staff.Role
		expectCode int
	}{
		{"viewer reads roster", staff.RoleViewer, staff.RoleViewer, http.StatusOK},
		{"viewer cannot hold", staff.RoleViewer, staff.RoleOperator, http.StatusForbidden},
		{"operator holds", staff.RoleOperator, staff.RoleOperator, http.StatusOK},
		{"operator cannot sweep", staff.RoleOperator, staff.RoleAdmin, http.StatusForbidden},
		{"admin does everything", staff.RoleAdmin, staff.RoleOperator, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := new(MockTokenValidator)
			v.On("ValidateToken", "tok").Return(uuid.New(), tt.role, nil)
			rec := httptest.PerformRequest(t, newAuthRouter(v, tt.minRole), http.MethodGet, "/guarded", nil, "tok")
			assert.Equal(t, tt.expectCode, rec.Code)
		})
	}
}

func TestRequireRoleAtLeast_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(new(MockTokenValidator))
	r.GET("/guarded", m.RequireRoleAtLeast(staff.RoleViewer), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/guarded", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
