package api

import (
	"net/http"

	reqdto "parking-settlement/internal/handler/dto/request"
	resdto "parking-settlement/internal/handler/dto/response"
	"parking-settlement/internal/handler/httperr"
	"parking-settlement/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.ExitCommands
}

func NewPaymentHandler(cmds commands.ExitCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Payment confirmation
// @Description Provider callback reporting the outcome of a checkout. Repeated deliveries are no-ops
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentConfirmationRequest true "Payment confirmation"
// @Success 200 {object} resdto.AttemptStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/confirmations [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.PaymentConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	outcome, err := req.ToOutcome()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown payment outcome", nil)
		return
	}

	result, err := h.cmds.ConfirmExternalPayment(c.Request.Context(), req.ExternalRef, outcome)
	if err != nil {
		abortWithUsecaseError(c, err, "Payment confirmation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttemptStatus(result))
}
