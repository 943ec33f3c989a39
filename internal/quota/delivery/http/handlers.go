package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "mediasearch-srv/pkg/errors"
	"mediasearch-srv/pkg/paginator"
	"mediasearch-srv/pkg/response"
	"mediasearch-srv/pkg/scope"
)

var errMissingProvider = pkgErrors.NewHTTPError(
	400, "Provider is required",
)

// Usage - Current window consumption for one provider
// @Summary Current quota usage
// @Tags Quota
// @Produce json
// @Param provider query string true "Provider name"
// @Success 200 {object} usageResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/quota/usage [get]
func (h *handler) Usage(c *gin.Context) {
	ctx := c.Request.Context()

	provider := c.Query("provider")
	if provider == "" {
		response.Error(c, errMissingProvider, h.discord)
		return
	}
	sc := scope.GetScopeFromContext(ctx)

	usage, err := h.uc.Usage(ctx, sc, provider)
	if err != nil {
		h.l.Errorf(ctx, "quota.delivery.http.Usage: usecase failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newUsageResp(usage))
}

// History - Persisted charge events, newest first
// @Summary Quota charge history
// @Tags Quota
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} historyResp
// @Router /api/v1/quota/history [get]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Errorf(ctx, "quota.delivery.http.History: bind failed: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(400, "Invalid pagination"), h.discord)
		return
	}
	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.History(ctx, sc, pq)
	if err != nil {
		h.l.Errorf(ctx, "quota.delivery.http.History: usecase failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, newHistoryResp(out))
}
