//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/handler/api"
	reqdto "parking-settlement/internal/handler/dto/request"
	resdto "parking-settlement/internal/handler/dto/response"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/tests/common/httptest"
	commandsmock "parking-settlement/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessionID := uuid.New()
	qr := payment.MethodQR

	testCases := []struct {
		name         string
		body         any
		setupMock    func(m *commandsmock.MockExitCommands)
		expectCode   int
		expectStatus string
	}{
		{
			name: "success: approved settles",
			body: reqdto.PaymentConfirmationRequest{ExternalRef: "cs_test_1", Outcome: "approved"},
			setupMock: func(m *commandsmock.MockExitCommands) {
				m.EXPECT().ConfirmExternalPayment(gomock.Any(), "cs_test_1", payment.ExternalApproved).
					Return(sampleStatus(sessionID, payment.StatusSettled, &qr), nil)
			},
			expectCode:   http.StatusOK,
			expectStatus: "settled",
		},
		{
			name: "success: rejected returns to method selection",
			body: reqdto.PaymentConfirmationRequest{ExternalRef: "cs_test_1", Outcome: "rejected"},
			setupMock: func(m *commandsmock.MockExitCommands) {
				m.EXPECT().ConfirmExternalPayment(gomock.Any(), "cs_test_1", payment.ExternalRejected).
					Return(sampleStatus(sessionID, payment.StatusMethodSelected, &qr), nil)
			},
			expectCode:   http.StatusOK,
			expectStatus: "method_selected",
		},
		{
			name:       "error: unknown outcome",
			body:       map[string]any{"externalRef": "cs_test_1", "outcome": "refunded"},
			expectCode: http.StatusBadRequest,
		},
		{
			name:       "error: missing reference",
			body:       map[string]any{"outcome": "approved"},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "error: unknown reference",
			body: reqdto.PaymentConfirmationRequest{ExternalRef: "cs_missing", Outcome: "approved"},
			setupMock: func(m *commandsmock.MockExitCommands) {
				m.EXPECT().ConfirmExternalPayment(gomock.Any(), "cs_missing", payment.ExternalApproved).
					Return(nil, errs.Wrap(commands.ErrUnknownExternalRef, "cs_missing"))
			},
			expectCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmds := commandsmock.NewMockExitCommands(ctrl)
			if tc.setupMock != nil {
				tc.setupMock(cmds)
			}
			router := gin.New()
			router.POST("/payments/confirmations", api.NewPaymentHandler(cmds).ConfirmPayment)

			rec := httptest.PerformRequest(t, router, http.MethodPost, "/payments/confirmations", tc.body, "")

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, "")
				return
			}
			var body resdto.AttemptStatusResponse
			httptest.AssertSuccessResponse(t, rec, tc.expectCode, &body)
			assert.Equal(t, tc.expectStatus, body.Status)
			assert.Equal(t, sessionID, body.SessionID)
		})
	}
}
