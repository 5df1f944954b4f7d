//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/handler/middleware"
	"parking-settlement/internal/usecase"
	"parking-settlement/tests/common/httptest"
	usecasemock "parking-settlement/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	identity := &usecase.OperatorIdentity{
		OperatorID:      uuid.New(),
		EstablishmentID: uuid.New(),
		Role:            operator.RoleAttendant,
	}

	testCases := []struct {
		name       string
		token      string
		minRole    operator.Role
		setupMock  func(m *usecasemock.MockTokenValidator)
		expectCode int
		expectMsg  string
	}{
		{
			name:    "success: valid token passes",
			token:   "good",
			minRole: operator.RoleAttendant,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(identity, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "error: missing token",
			minRole:    operator.RoleAttendant,
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Access token required",
		},
		{
			name:    "error: invalid token",
			token:   "bad",
			minRole: operator.RoleAttendant,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("token expired"))
			},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
		{
			name:    "error: role below minimum",
			token:   "good",
			minRole: operator.RoleSupervisor,
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good").Return(identity, nil)
			},
			expectCode: http.StatusForbidden,
			expectMsg:  "Insufficient permissions",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(validator)
			}
			mw := middleware.NewAuthMiddleware(validator)

			router := gin.New()
			router.GET("/protected", mw.RequireAuth(), mw.RequireRoleAtLeast(tc.minRole), func(c *gin.Context) {
				got, ok := middleware.GetIdentity(c)
				assert.True(t, ok)
				opID, _ := middleware.GetOperatorID(c)
				c.JSON(http.StatusOK, gin.H{"operator": opID.String(), "establishment": got.EstablishmentID.String()})
			})

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, tc.token)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, identity.OperatorID.String(), body["operator"])
			assert.Equal(t, identity.EstablishmentID.String(), body["establishment"])
		})
	}
}
