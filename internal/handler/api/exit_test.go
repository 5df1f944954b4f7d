//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/tariff"
	"parking-settlement/internal/handler/api"
	reqdto "parking-settlement/internal/handler/dto/request"
	resdto "parking-settlement/internal/handler/dto/response"
	"parking-settlement/internal/handler/middleware"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/internal/usecase/queries"
	"parking-settlement/tests/common/httptest"
	"parking-settlement/tests/common/testutil"
	commandsmock "parking-settlement/tests/mock/commands"
	queriesmock "parking-settlement/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubAuth stands in for RequireAuth: the bearer token names the role.
func stubAuth(identity *usecase.OperatorIdentity) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		id := *identity
		id.Role = operator.Role(token)
		middleware.SetIdentity(c, &id)
		c.Next()
	}
}

type ExitHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExitCommands
	mockQueries  *queriesmock.MockExitQueries
	handler      *api.ExitHandler
	identity     *usecase.OperatorIdentity
	// session lookups report these for any session id
	sessionEstablishment uuid.UUID
	sessionLookupErr     error
}

func (s *ExitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExitCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockExitQueries(s.mockCtrl)
	s.handler = api.NewExitHandler(s.mockCommands, s.mockQueries)
	s.identity = &usecase.OperatorIdentity{OperatorID: uuid.New(), EstablishmentID: uuid.New()}
	s.sessionEstablishment = s.identity.EstablishmentID
	s.mockQueries.EXPECT().EstablishmentOf(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) (uuid.UUID, error) {
			return s.sessionEstablishment, s.sessionLookupErr
		}).AnyTimes()

	auth := stubAuth(s.identity)
	// role checks only read the identity, so the real middleware can run here
	supervisor := (&middleware.AuthMiddleware{}).RequireRoleAtLeast(operator.RoleSupervisor)

	s.router.POST("/exits", auth, s.handler.Initiate)
	s.router.GET("/exits/:sessionId", auth, s.handler.Get)
	s.router.DELETE("/exits/:sessionId", auth, s.handler.Cancel)
	s.router.POST("/exits/:sessionId/payment-method", auth, s.handler.SelectPaymentMethod)
	s.router.POST("/exits/:sessionId/transfer-confirmation", auth, s.handler.ConfirmTransfer)
	s.router.POST("/exits/:sessionId/refresh", auth, s.handler.Refresh)
	s.router.POST("/exits/:sessionId/settle", auth, s.handler.RetrySettlement)
	s.router.POST("/exits/:sessionId/mark-paid", auth, supervisor, s.handler.MarkAsPaid)
}

func (s *ExitHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExitHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExitHandlerTestSuite))
}

type testCaseExit struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

const attendantToken = "attendant"

func sampleStatus(sessionID uuid.UUID, status payment.Status, method *payment.Method) *commands.AttemptStatusResult {
	return &commands.AttemptStatusResult{
		SessionID: sessionID,
		AttemptID: uuid.New(),
		Status:    status,
		Method:    method,
		Amount:    money.FromCents(20000),
		Basis:     tariff.BasisHourly,
	}
}

// ================================================================================
// TestInitiate
// ================================================================================

func (s *ExitHandlerTestSuite) TestInitiate() {
	url := "/exits"
	reqBody := reqdto.InitiateExitRequest{Plate: "AB123CD"}
	attemptID := uuid.New()
	quote := &commands.ExitQuote{
		SessionID: uuid.New(),
		AttemptID: &attemptID,
		Plate:     "AB123CD",
		Amount:    money.FromCents(65000),
		Basis:     tariff.BasisHourly,
		Status:    payment.StatusFeeComputed,
		Units:     4,
		Warnings:  []string{commands.WarningReservationMissing},

		RequiresReview: true,
	}

	s.Run("success: returns the quote with the operator's establishment", func() {
		s.mockCommands.EXPECT().
			InitiateExit(gomock.Any(), commands.InitiateExitParams{
				EstablishmentID: s.identity.EstablishmentID,
				Plate:           "AB123CD",
				OperatorID:      &s.identity.OperatorID,
			}).
			Return(quote, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, attendantToken)

		var body resdto.ExitQuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(quote.SessionID, body.SessionID)
		s.Equal(int64(65000), body.AmountCents)
		s.Equal("hourly", body.Basis)
		s.Equal("fee_computed", body.Status)
		s.Equal([]string{"reservation_missing"}, body.Warnings)
		s.True(body.RequiresReview)
	})

	s.Run("success: closed exits report an empty warning list", func() {
		s.mockCommands.EXPECT().InitiateExit(gomock.Any(), gomock.Any()).
			Return(&commands.ExitQuote{SessionID: uuid.New(), Amount: money.Zero(), Basis: tariff.BasisSubscriptionExempt, Closed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, attendantToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["closed"])
		s.Equal([]any{}, body["warnings"])
		s.NotContains(body, "attemptId")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseExit{
			{name: "missing plate", mutate: testutil.Field("plate", nil), expectCode: http.StatusBadRequest},
			{name: "plate too long", mutate: testutil.Field("plate", strings.Repeat("A", 17)), expectCode: http.StatusBadRequest},
			{name: "spot id not a uuid", mutate: testutil.Field("spotId", "spot-1"), expectCode: http.StatusBadRequest},
			{name: "plate at max length", mutate: testutil.Field("plate", strings.Repeat("A", 16)), expectCode: http.StatusOK},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().InitiateExit(gomock.Any(), gomock.Any()).Return(quote, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), attendantToken)
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"no open session", errs.Mark(errors.New("no rows"), commands.ErrSessionNotFound), http.StatusNotFound, "Open parking session not found"},
			{"attempt changed", errs.Wrap(commands.ErrAttemptChanged, "supersede"), http.StatusConflict, "reload and retry"},
			{"repository failure", infra.WrapRepoErr("select", errors.New("boom"), infra.KindDBFailure), http.StatusInternalServerError, "Initiate exit failed"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().InitiateExit(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, attendantToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ExitHandlerTestSuite) TestGet() {
	sessionID := uuid.New()

	s.Run("success: returns the latest attempt", func() {
		method := "qr"
		ref := "cs_test_1"
		expires := time.Date(2025, 3, 10, 12, 15, 0, 0, time.UTC)
		view := &queries.ExitView{
			AttemptID:   uuid.New(),
			SessionID:   sessionID,
			Plate:       "AB123CD",
			Method:      &method,
			AmountCents: 20000,
			Basis:       "hourly",
			Status:      "awaiting_external_confirmation",
			ExternalRef: &ref,
			ExpiresAt:   &expires,
			Warnings:    []string{},
		}
		s.mockQueries.EXPECT().GetBySession(gomock.Any(), sessionID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exits/"+sessionID.String(), nil, attendantToken)

		var body resdto.ExitViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.AttemptID, body.AttemptID)
		s.Equal("awaiting_external_confirmation", body.Status)
		s.Require().NotNil(body.ExternalRef)
		s.Equal(ref, *body.ExternalRef)
		s.Require().NotNil(body.ExpiresAt)
		s.True(expires.Equal(*body.ExpiresAt))
	})

	s.Run("error: 404 when the session has no attempt", func() {
		s.mockQueries.EXPECT().GetBySession(gomock.Any(), sessionID).
			Return(nil, infra.WrapRepoErr("exit not found", errors.New("no rows"), infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exits/"+sessionID.String(), nil, attendantToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 on malformed session id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/exits/not-a-uuid", nil, attendantToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session id")
	})
}

// ================================================================================
// TestSelectPaymentMethod
// ================================================================================

func (s *ExitHandlerTestSuite) TestSelectPaymentMethod() {
	sessionID := uuid.New()
	url := "/exits/" + sessionID.String() + "/payment-method"

	s.Run("success: qr returns the checkout", func() {
		method := payment.MethodQR
		expires := time.Date(2025, 3, 10, 12, 15, 0, 0, time.UTC)
		result := sampleStatus(sessionID, payment.StatusAwaitingExternalConfirmation, &method)
		result.ExternalRef = "cs_test_1"
		result.CheckoutURL = "https://checkout.example/cs_test_1"
		result.ExpiresAt = &expires

		s.mockCommands.EXPECT().
			SelectPaymentMethod(gomock.Any(), sessionID, payment.MethodQR, &s.identity.OperatorID).
			Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.SelectPaymentMethodRequest{Method: "qr"}, attendantToken)

		var body resdto.AttemptStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("awaiting_external_confirmation", body.Status)
		s.Require().NotNil(body.Method)
		s.Equal("qr", *body.Method)
		s.Equal("https://checkout.example/cs_test_1", body.CheckoutURL)
		s.Equal(int64(20000), body.AmountCents)
	})

	s.Run("error: 400 on unsupported method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "crypto"}, attendantToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{"provider down", errs.Mark(errors.New("timeout"), commands.ErrProviderUnavailable), http.StatusBadGateway},
			{"session closed", commands.ErrSessionClosed, http.StatusConflict},
			{"no attempt", commands.ErrNoActiveAttempt, http.StatusNotFound},
			{"bad transition", errs.Mark(payment.ErrInvalidTransition, commands.ErrInvalidTransition), http.StatusConflict},
			{"settlement failed", errs.Mark(errors.New("close"), commands.ErrSettlementFailed), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SelectPaymentMethod(gomock.Any(), sessionID, payment.MethodCash, gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.SelectPaymentMethodRequest{Method: "cash"}, attendantToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestOperatorActions
// ================================================================================

func (s *ExitHandlerTestSuite) TestOperatorActions() {
	sessionID := uuid.New()
	base := "/exits/" + sessionID.String()
	settlementID := uuid.New()
	transfer := payment.MethodTransfer

	s.Run("success: transfer confirmation settles", func() {
		result := sampleStatus(sessionID, payment.StatusSettled, &transfer)
		result.SettlementID = &settlementID
		s.mockCommands.EXPECT().ConfirmTransfer(gomock.Any(), sessionID, &s.identity.OperatorID).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/transfer-confirmation", nil, attendantToken)

		var body resdto.AttemptStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("settled", body.Status)
		s.Equal(&settlementID, body.SettlementID)
	})

	s.Run("success: retry settlement", func() {
		s.mockCommands.EXPECT().RetrySettlement(gomock.Any(), sessionID, gomock.Any()).
			Return(sampleStatus(sessionID, payment.StatusSettled, &transfer), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/settle", nil, attendantToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: refresh reports pending", func() {
		qr := payment.MethodQR
		s.mockCommands.EXPECT().RefreshExternalStatus(gomock.Any(), sessionID).
			Return(sampleStatus(sessionID, payment.StatusAwaitingExternalConfirmation, &qr), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/refresh", nil, attendantToken)

		var body resdto.AttemptStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("awaiting_external_confirmation", body.Status)
	})

	s.Run("success: cancel aborts", func() {
		s.mockCommands.EXPECT().CancelExit(gomock.Any(), sessionID, &s.identity.OperatorID).
			Return(sampleStatus(sessionID, payment.StatusAborted, nil), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, attendantToken)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("aborted", body["status"])
		s.NotContains(body, "method")
	})

	s.Run("error: mark as paid requires supervisor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/mark-paid", nil, attendantToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("success: supervisor marks as paid", func() {
		qr := payment.MethodQR
		s.mockCommands.EXPECT().MarkAsPaid(gomock.Any(), sessionID, &s.identity.OperatorID).
			Return(sampleStatus(sessionID, payment.StatusSettled, &qr), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/mark-paid", nil, string(operator.RoleSupervisor))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: mark as paid on a cash attempt is a conflict", func() {
		s.mockCommands.EXPECT().MarkAsPaid(gomock.Any(), sessionID, gomock.Any()).
			Return(nil, errs.Wrap(commands.ErrSettlementMismatch, "cash"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/mark-paid", nil, string(operator.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestEstablishmentScope
// ================================================================================

func (s *ExitHandlerTestSuite) TestEstablishmentScope() {
	sessionID := uuid.New()
	base := "/exits/" + sessionID.String()

	s.Run("error: 403 on another establishment's session", func() {
		s.sessionEstablishment = uuid.New()
		defer func() { s.sessionEstablishment = s.identity.EstablishmentID }()

		requests := []struct {
			method string
			path   string
			body   any
		}{
			{http.MethodGet, base, nil},
			{http.MethodDelete, base, nil},
			{http.MethodPost, base + "/payment-method", reqdto.SelectPaymentMethodRequest{Method: "cash"}},
			{http.MethodPost, base + "/transfer-confirmation", nil},
			{http.MethodPost, base + "/refresh", nil},
			{http.MethodPost, base + "/settle", nil},
		}
		for _, r := range requests {
			rec := httptest.PerformRequest(s.T(), s.router, r.method, r.path, r.body, attendantToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
		}
	})

	s.Run("success: admin acts on any establishment", func() {
		s.sessionEstablishment = uuid.New()
		defer func() { s.sessionEstablishment = s.identity.EstablishmentID }()

		s.mockCommands.EXPECT().CancelExit(gomock.Any(), sessionID, &s.identity.OperatorID).
			Return(sampleStatus(sessionID, payment.StatusAborted, nil), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base, nil, string(operator.RoleAdmin))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 on an unknown session", func() {
		s.sessionLookupErr = infra.WrapRepoErr("parking session not found", errors.New("no rows"), infra.KindNotFound)
		defer func() { s.sessionLookupErr = nil }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, attendantToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
