package http

import (
	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processContentRequest(c *gin.Context) (export.ContentExportInput, model.Scope, error) {
	var req contentExportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return export.ContentExportInput{}, model.Scope{}, errInvalidRequest
	}

	input, err := req.toInput()
	if err != nil {
		return export.ContentExportInput{}, model.Scope{}, errInvalidDate
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

func (h *handler) processEmailRequest(c *gin.Context) (export.EmailExportInput, model.Scope, error) {
	var req emailExportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return export.EmailExportInput{}, model.Scope{}, errInvalidRequest
	}

	input, err := req.toInput()
	if err != nil {
		return export.EmailExportInput{}, model.Scope{}, errInvalidDate
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}
