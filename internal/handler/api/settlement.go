package api

import (
	"net/http"

	"parking-settlement/internal/domain/operator"
	reqdto "parking-settlement/internal/handler/dto/request"
	resdto "parking-settlement/internal/handler/dto/response"
	"parking-settlement/internal/handler/httperr"
	"parking-settlement/internal/handler/middleware"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errForeignEstablishment = errs.New("establishment outside operator scope")

type SettlementHandler struct {
	q queries.SettlementQueries
}

func NewSettlementHandler(q queries.SettlementQueries) *SettlementHandler {
	return &SettlementHandler{q: q}
}

// @Summary List settlements
// @Description Audit listing of settlements in [from, to), newest first. Other establishments require admin
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param establishmentId query string false "Establishment ID, defaults to the operator's"
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end, exclusive (RFC3339)"
// @Param limit query int false "Max results (1-500)"
// @Success 200 {array} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /settlements [get]
func (h *SettlementHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var query reqdto.SettlementListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	establishmentID := identity.EstablishmentID
	if query.EstablishmentID != "" {
		// binding already validated the format
		establishmentID = uuid.MustParse(query.EstablishmentID)
	}
	if establishmentID != identity.EstablishmentID && !identity.Role.AtLeast(operator.RoleAdmin) {
		httperr.AbortWithError(c, http.StatusForbidden, errForeignEstablishment, "Forbidden", nil)
		return
	}

	items, err := h.q.List(c.Request.Context(), queries.SettlementFilter{
		EstablishmentID: establishmentID,
		From:            query.From,
		To:              query.To,
		Limit:           query.Limit,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list settlements")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettlementList(items))
}
