package http

import (
	"github.com/gin-gonic/gin"

	"mediasearch-srv/pkg/paginator"
	"mediasearch-srv/pkg/response"
	"mediasearch-srv/pkg/scope"
)

// Create - Save a named query set
// @Summary Save a named query set
// @Tags SavedSearch
// @Accept json
// @Produce json
// @Param body body createReq true "Saved search"
// @Success 200 {object} savedSearchResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/saved-searches [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.Create: bind failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}
	sc := scope.GetScopeFromContext(ctx)

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.Create: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSavedSearchResp(created))
}

// Get - One saved search
// @Summary One saved search
// @Tags SavedSearch
// @Produce json
// @Param id path string true "Saved search ID"
// @Success 200 {object} savedSearchResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/saved-searches/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	s, err := h.uc.Get(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.Get: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSavedSearchResp(s))
}

// Update - Rename or replace stored query state
// @Summary Rename a saved search or replace its query state
// @Tags SavedSearch
// @Accept json
// @Produce json
// @Param id path string true "Saved search ID"
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} savedSearchResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/saved-searches/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.Update: bind failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}
	sc := scope.GetScopeFromContext(ctx)

	updated, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.Update: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSavedSearchResp(updated))
}

// Delete - Remove a saved search
// @Summary Remove a saved search
// @Tags SavedSearch
// @Produce json
// @Param id path string true "Saved search ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/saved-searches/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.Delete: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// List - The calling user's saved searches
// @Summary List saved searches
// @Tags SavedSearch
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listResp
// @Router /api/v1/saved-searches [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.List: bind failed: %v", err)
		response.Error(c, errInvalidRequest, h.discord)
		return
	}
	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.List(ctx, sc, pq)
	if err != nil {
		h.l.Errorf(ctx, "savedsearch.delivery.http.List: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(out))
}
