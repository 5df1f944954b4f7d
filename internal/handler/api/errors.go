package api

import (
	"net/http"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/handler/httperr"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var exitErrorMappings = []errorMapping{
	{commands.ErrSessionNotFound, http.StatusNotFound, "Open parking session not found"},
	{commands.ErrNoActiveAttempt, http.StatusNotFound, "No active payment attempt"},
	{commands.ErrUnknownExternalRef, http.StatusNotFound, "Unknown payment reference"},
	{commands.ErrSessionClosed, http.StatusConflict, "Parking session is already closed"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Payment attempt cannot make this transition"},
	{commands.ErrAttemptChanged, http.StatusConflict, "Payment attempt changed, reload and retry"},
	{commands.ErrSettlementMismatch, http.StatusConflict, "Settlement does not match payment attempt"},
	{commands.ErrProviderUnavailable, http.StatusBadGateway, "Payment provider unavailable"},
	{commands.ErrSettlementFailed, http.StatusInternalServerError, "Settlement failed, retry settlement"},
	{payment.ErrUnknownMethod, http.StatusBadRequest, "Unknown payment method"},
	{payment.ErrUnknownExternalStatus, http.StatusBadRequest, "Unknown payment outcome"},
	{queries.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
}

// abortWithUsecaseError maps use case errors to HTTP statuses. Marked errors
// need errs.Is; stdlib errors.Is does not see cockroachdb marks.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	for _, m := range exitErrorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	if infra.IsKind(err, infra.KindNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
