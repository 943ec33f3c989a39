package http

import (
	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processQueryRequest(c *gin.Context) (model.QueryDescriptor, model.Scope, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.QueryDescriptor{}, model.Scope{}, errInvalidRequest
	}

	q, err := req.toQuery()
	if err != nil {
		return model.QueryDescriptor{}, model.Scope{}, errInvalidDate
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return q, sc, nil
}

func (h *handler) processStoryListRequest(c *gin.Context) (model.QueryDescriptor, string, model.Scope, error) {
	var req storyListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.QueryDescriptor{}, "", model.Scope{}, errInvalidRequest
	}

	q, err := req.toQuery()
	if err != nil {
		return model.QueryDescriptor{}, "", model.Scope{}, errInvalidDate
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return q, req.PaginationToken, sc, nil
}

func (h *handler) processStoryDetailRequest(c *gin.Context) (model.QueryDescriptor, string, model.Scope, error) {
	var req storyDetailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.QueryDescriptor{}, "", model.Scope{}, errInvalidRequest
	}

	q, err := req.toQuery()
	if err != nil {
		return model.QueryDescriptor{}, "", model.Scope{}, errInvalidDate
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return q, req.StoryID, sc, nil
}
