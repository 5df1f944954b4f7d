package api

import (
	"context"
	"net/http"

	"parking-settlement/internal/domain/operator"
	reqdto "parking-settlement/internal/handler/dto/request"
	resdto "parking-settlement/internal/handler/dto/response"
	"parking-settlement/internal/handler/httperr"
	"parking-settlement/internal/handler/middleware"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/commands"
	"parking-settlement/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("operator identity missing")

type ExitHandler struct {
	cmds commands.ExitCommands
	q    queries.ExitQueries
}

func NewExitHandler(cmds commands.ExitCommands, q queries.ExitQueries) *ExitHandler {
	return &ExitHandler{cmds: cmds, q: q}
}

// @Summary Initiate exit
// @Description Compute the exit fee for the open session of a plate and open a payment attempt
// @Tags exits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiateExitRequest true "Initiate exit request"
// @Success 200 {object} resdto.ExitQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /exits [post]
func (h *ExitHandler) Initiate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.InitiateExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	quote, err := h.cmds.InitiateExit(c.Request.Context(), commands.InitiateExitParams{
		EstablishmentID: identity.EstablishmentID,
		Plate:           req.Plate,
		SpotID:          req.SpotID,
		Supersede:       req.Supersede,
		OperatorID:      &identity.OperatorID,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Initiate exit failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromExitQuote(quote))
}

// @Summary Get exit
// @Description Get the latest payment attempt of a session
// @Tags exits
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.ExitViewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /exits/{sessionId} [get]
func (h *ExitHandler) Get(c *gin.Context) {
	sessionID, ok := h.scopedSession(c)
	if !ok {
		return
	}
	view, err := h.q.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load exit")
		return
	}
	c.JSON(http.StatusOK, resdto.FromExitView(view))
}

// @Summary Select payment method
// @Description Choose how the exit fee is paid. Cash settles immediately; qr and link create a checkout
// @Tags exits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.SelectPaymentMethodRequest true "Payment method"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /exits/{sessionId}/payment-method [post]
func (h *ExitHandler) SelectPaymentMethod(c *gin.Context) {
	sessionID, ok := h.scopedSession(c)
	if !ok {
		return
	}
	var req reqdto.SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	method, err := req.ToMethod()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment method", nil)
		return
	}

	result, err := h.cmds.SelectPaymentMethod(c.Request.Context(), sessionID, method, operatorID(c))
	if err != nil {
		abortWithUsecaseError(c, err, "Select payment method failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptStatus(result))
}

// @Summary Confirm transfer
// @Description Operator confirms a bank transfer was received and the exit is settled
// @Tags exits
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /exits/{sessionId}/transfer-confirmation [post]
func (h *ExitHandler) ConfirmTransfer(c *gin.Context) {
	h.runAttemptCommand(c, h.cmds.ConfirmTransfer, "Confirm transfer failed")
}

// @Summary Mark as paid
// @Description Operator override that settles the attempt regardless of provider status
// @Tags exits
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /exits/{sessionId}/mark-paid [post]
func (h *ExitHandler) MarkAsPaid(c *gin.Context) {
	h.runAttemptCommand(c, h.cmds.MarkAsPaid, "Mark as paid failed")
}

// @Summary Retry settlement
// @Description Re-run settlement for an attempt left ready to settle
// @Tags exits
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /exits/{sessionId}/settle [post]
func (h *ExitHandler) RetrySettlement(c *gin.Context) {
	h.runAttemptCommand(c, h.cmds.RetrySettlement, "Retry settlement failed")
}

// @Summary Cancel exit
// @Description Abort the live payment attempt; the session stays open
// @Tags exits
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /exits/{sessionId} [delete]
func (h *ExitHandler) Cancel(c *gin.Context) {
	h.runAttemptCommand(c, h.cmds.CancelExit, "Cancel exit failed")
}

// @Summary Refresh external status
// @Description Poll the payment provider for the current checkout status
// @Tags exits
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /exits/{sessionId}/refresh [post]
func (h *ExitHandler) Refresh(c *gin.Context) {
	sessionID, ok := h.scopedSession(c)
	if !ok {
		return
	}
	result, err := h.cmds.RefreshExternalStatus(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUsecaseError(c, err, "Refresh payment status failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptStatus(result))
}

type attemptCommand func(ctx context.Context, sessionID uuid.UUID, operatorID *uuid.UUID) (*commands.AttemptStatusResult, error)

func (h *ExitHandler) runAttemptCommand(c *gin.Context, cmd attemptCommand, failMsg string) {
	sessionID, ok := h.scopedSession(c)
	if !ok {
		return
	}
	result, err := cmd(c.Request.Context(), sessionID, operatorID(c))
	if err != nil {
		abortWithUsecaseError(c, err, failMsg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptStatus(result))
}

// scopedSession reads the session id and checks the session belongs to the
// caller's establishment. Admins act on any establishment.
func (h *ExitHandler) scopedSession(c *gin.Context) (uuid.UUID, bool) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return uuid.Nil, false
	}
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	if identity.Role.AtLeast(operator.RoleAdmin) {
		return sessionID, true
	}

	establishmentID, err := h.q.EstablishmentOf(c.Request.Context(), sessionID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load parking session")
		return uuid.Nil, false
	}
	if establishmentID != identity.EstablishmentID {
		httperr.AbortWithError(c, http.StatusForbidden, errForeignEstablishment, "Forbidden", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

func sessionParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func operatorID(c *gin.Context) *uuid.UUID {
	id, ok := middleware.GetOperatorID(c)
	if !ok {
		return nil
	}
	return &id
}
