//go:build e2e

package exit_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/handler/dto/request"
	"parking-settlement/internal/handler/dto/response"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/tests/common/authtest"
	"parking-settlement/tests/common/dbtest"
	"parking-settlement/tests/common/httptest"
	"parking-settlement/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	exitsURL         = "/api/exits"
	confirmationsURL = "/api/payments/confirmations"
	settlementsURL   = "/api/settlements"
)

type ExitSuite struct {
	e2e.SharedSuite
	establishmentID uuid.UUID
	operatorID      uuid.UUID
}

func (s *ExitSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	// fresh establishment per subtest so cached catalogs never leak across cases
	s.establishmentID = uuid.New()
	s.operatorID = uuid.New()
}

func TestExitSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExitSuite))
}

func (s *ExitSuite) token(role operator.Role) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), s.operatorID, s.establishmentID, role)
}

// openHourlySession parks AB123CD for 2h30m under a 20000/15000 hourly tariff.
func (s *ExitSuite) openHourlySession(plate string) (sessionID, spotID uuid.UUID) {
	t := s.T()
	dbtest.CreateTestTariffRule(t, s.DB, s.establishmentID, "car", "hourly", 20000, 15000)
	spotID = dbtest.CreateTestSpot(t, s.DB, s.establishmentID, "A-"+plate, nil)
	sessionID = dbtest.CreateTestSession(t, s.DB, dbtest.SessionFixture{
		EstablishmentID: s.establishmentID,
		Plate:           plate,
		SpotID:          &spotID,
		EntryAt:         time.Now().Add(-150 * time.Minute),
	})
	return sessionID, spotID
}

func (s *ExitSuite) initiate(plate, token string) response.ExitQuoteResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, exitsURL, request.InitiateExitRequest{Plate: plate}, token)
	var quote response.ExitQuoteResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &quote)
	return quote
}

func (s *ExitSuite) selectMethod(sessionID uuid.UUID, method, token string) (int, response.AttemptStatusResponse) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		exitsURL+"/"+sessionID.String()+"/payment-method", request.SelectPaymentMethodRequest{Method: method}, token)
	var res response.AttemptStatusResponse
	if w.Code == http.StatusOK {
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	}
	return w.Code, res
}

// =============================================================================
// TestCashExit
// =============================================================================

func (s *ExitSuite) TestCashExit() {
	s.Run("Normal case: cash exit settles, closes the session and frees the spot", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, spotID := s.openHourlySession("AB123CD")

		quote := s.initiate("ab 123 cd", token)
		require.Equal(t, sessionID, quote.SessionID)
		require.Equal(t, int64(50000), quote.AmountCents)
		require.Equal(t, "hourly", quote.Basis)
		require.Equal(t, int64(3), quote.Units)
		require.Empty(t, quote.Warnings)

		code, res := s.selectMethod(sessionID, "cash", token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "settled", res.Status)
		require.NotNil(t, res.SettlementID)

		require.NotNil(t, dbtest.SessionExitAt(t, s.DB, sessionID))
		require.Equal(t, "free", dbtest.SpotState(t, s.DB, spotID))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.TopicSettled))

		// the session is closed now; a second exit finds nothing open
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitsURL, request.InitiateExitRequest{Plate: "AB123CD"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Open parking session not found")

		code, _ = s.selectMethod(sessionID, "cash", token)
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Normal case: re-initiating resumes the live attempt", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		s.openHourlySession("RES123")

		first := s.initiate("RES123", token)
		second := s.initiate("RES123", token)
		require.NotNil(t, first.AttemptID)
		require.Equal(t, first.AttemptID, second.AttemptID)
		require.True(t, second.Resumed)
	})

	s.Run("Exception case: another establishment cannot act on the session", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, _ := s.openHourlySession("SCOPE1")
		s.initiate("SCOPE1", token)

		foreign := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), uuid.New(), operator.RoleSupervisor)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exitsURL+"/"+sessionID.String(), nil, foreign)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, exitsURL+"/"+sessionID.String()+"/payment-method",
			request.SelectPaymentMethodRequest{Method: "cash"}, foreign)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Forbidden")
		require.Nil(t, dbtest.SessionExitAt(t, s.DB, sessionID))
	})
}

// =============================================================================
// TestExternalPayment
// =============================================================================

func (s *ExitSuite) TestExternalPayment() {
	s.Run("Normal case: qr checkout is settled by the provider confirmation", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, _ := s.openHourlySession("QR123")
		s.initiate("QR123", token)

		code, res := s.selectMethod(sessionID, "qr", token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "awaiting_external_confirmation", res.Status)
		require.NotEmpty(t, res.ExternalRef)
		require.NotEmpty(t, res.CheckoutURL)
		require.NotNil(t, res.ExpiresAt)
		require.Len(t, s.Gateway.Created(), 1)
		require.Equal(t, int64(50000), s.Gateway.Created()[0].Amount.Cents())

		confirm := request.PaymentConfirmationRequest{ExternalRef: res.ExternalRef, Outcome: "approved"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmationsURL, confirm, "")
		var waiting response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &waiting)
		require.Equal(t, "awaiting_external_confirmation", waiting.Status, "approval must be confirmed by the provider")

		s.Gateway.SetStatus(payment.ExternalApproved)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmationsURL, confirm, "")
		var settled response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &settled)
		require.Equal(t, "settled", settled.Status)

		// duplicate delivery is a no-op
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmationsURL, confirm, "")
		var again response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &again)
		require.Equal(t, settled.SettlementID, again.SettlementID)
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.TopicSettled))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, exitsURL+"/"+sessionID.String(), nil, token)
		var view response.ExitViewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "settled", view.Status)
		require.NotNil(t, view.ExitAt)
	})

	s.Run("Normal case: rejection returns the attempt to method selection", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, _ := s.openHourlySession("REJ123")
		s.initiate("REJ123", token)
		_, res := s.selectMethod(sessionID, "link", token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmationsURL,
			request.PaymentConfirmationRequest{ExternalRef: res.ExternalRef, Outcome: "rejected"}, "")
		var rejected response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rejected)
		require.Equal(t, "method_selected", rejected.Status)
		require.Nil(t, dbtest.SessionExitAt(t, s.DB, sessionID))
		require.Contains(t, s.Gateway.Cancelled(), res.ExternalRef)

		code, cash := s.selectMethod(sessionID, "cash", token)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "settled", cash.Status)
	})

	s.Run("Normal case: refresh settles once the provider reports approval", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, _ := s.openHourlySession("POLL123")
		s.initiate("POLL123", token)
		s.selectMethod(sessionID, "qr", token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, exitsURL+"/"+sessionID.String()+"/refresh", nil, token)
		var pending response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Equal(t, "awaiting_external_confirmation", pending.Status)

		s.Gateway.SetStatus(payment.ExternalApproved)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, exitsURL+"/"+sessionID.String()+"/refresh", nil, token)
		var settled response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &settled)
		require.Equal(t, "settled", settled.Status)
	})

	s.Run("Exception case: provider outage keeps the computed fee", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, _ := s.openHourlySession("DOWN123")
		s.initiate("DOWN123", token)
		s.Gateway.FailCreates(10, errors.New("provider down"))

		code, _ := s.selectMethod(sessionID, "qr", token)
		require.Equal(t, http.StatusBadGateway, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, exitsURL+"/"+sessionID.String(), nil, token)
		var view response.ExitViewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "method_selected", view.Status)
		require.Equal(t, int64(50000), view.AmountCents)
	})

	s.Run("Exception case: unknown reference", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmationsURL,
			request.PaymentConfirmationRequest{ExternalRef: "cs_nobody", Outcome: "approved"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Unknown payment reference")
	})

	s.Run("Normal case: cancel aborts and expires the checkout", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		sessionID, _ := s.openHourlySession("CAN123")
		s.initiate("CAN123", token)
		_, res := s.selectMethod(sessionID, "qr", token)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, exitsURL+"/"+sessionID.String(), nil, token)
		var aborted response.AttemptStatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &aborted)
		require.Equal(t, "aborted", aborted.Status)
		require.Contains(t, s.Gateway.Cancelled(), res.ExternalRef)
		require.Nil(t, dbtest.SessionExitAt(t, s.DB, sessionID))
	})
}

// =============================================================================
// TestDirectClose
// =============================================================================

func (s *ExitSuite) TestDirectClose() {
	s.Run("Normal case: subscriber exits without charge", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		spotID := dbtest.CreateTestSpot(t, s.DB, s.establishmentID, "S-1", nil)
		today := time.Now().UTC()
		dbtest.CreateTestSubscription(t, s.DB, s.establishmentID, spotID, today.AddDate(0, -1, 0), today.AddDate(0, 1, 0), "SUB123")
		sessionID := dbtest.CreateTestSession(t, s.DB, dbtest.SessionFixture{
			EstablishmentID: s.establishmentID,
			Plate:           "SUB123",
			SpotID:          &spotID,
			EntryAt:         time.Now().Add(-5 * time.Hour),
			Unit:            "subscription",
		})

		quote := s.initiate("SUB123", token)
		require.True(t, quote.Closed)
		require.Equal(t, "subscription_exempt", quote.Basis)
		require.Zero(t, quote.AmountCents)
		require.NotNil(t, dbtest.SessionExitAt(t, s.DB, sessionID))
		require.Equal(t, "free", dbtest.SpotState(t, s.DB, spotID))
	})

	s.Run("Normal case: reservation overstay is billed hourly for the excess", func() {
		t := s.T()
		token := s.token(operator.RoleAttendant)
		dbtest.CreateTestTariffRule(t, s.DB, s.establishmentID, "car", "hourly", 20000, 15000)
		now := time.Now()
		dbtest.CreateTestReservation(t, s.DB, s.establishmentID, "RSV123", now.Add(-4*time.Hour), now.Add(-90*time.Minute), 30000)
		dbtest.CreateTestSession(t, s.DB, dbtest.SessionFixture{
			EstablishmentID: s.establishmentID,
			Plate:           "RSV123",
			EntryAt:         now.Add(-4 * time.Hour),
			Unit:            "reservation",
		})

		quote := s.initiate("RSV123", token)
		require.False(t, quote.Closed)
		require.Equal(t, "reservation_overstay", quote.Basis)
		require.Equal(t, int64(35000), quote.AmountCents)
	})
}

// =============================================================================
// TestSettlementAudit
// =============================================================================

func (s *ExitSuite) TestSettlementAudit() {
	s.Run("Normal case: supervisor lists settlements of the establishment", func() {
		t := s.T()
		attendant := s.token(operator.RoleAttendant)
		sessionID, spotID := s.openHourlySession("AUD123")
		s.initiate("AUD123", attendant)
		_, res := s.selectMethod(sessionID, "cash", attendant)

		query := url.Values{
			"from": {time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)},
			"to":   {time.Now().Add(time.Hour).UTC().Format(time.RFC3339)},
		}

		w := httptest.PerformRequestWithQuery(t, s.Router, http.MethodGet, settlementsURL, query, attendant)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequestWithQuery(t, s.Router, http.MethodGet, settlementsURL, query, s.token(operator.RoleSupervisor))
		var got []response.SettlementResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		want := []response.SettlementResponse{{
			ID:          *res.SettlementID,
			SessionID:   sessionID,
			AttemptID:   res.AttemptID,
			Plate:       "AUD123",
			SpotID:      &spotID,
			AmountCents: 50000,
			Method:      "cash",
			OperatorID:  &s.operatorID,
		}}
		opts := cmpopts.IgnoreFields(response.SettlementResponse{}, "EntryAt", "ExitAt", "SettledAt")
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("settlement list mismatch (-want +got):\n%s", diff)
		}
	})
}
