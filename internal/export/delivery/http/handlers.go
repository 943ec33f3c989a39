package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/response"
)

// streamWriter flushes after every write so rows reach the client while the
// fetch is still running. Headers are only sent on the first write, which
// keeps JSON error responses possible for failures before the first page.
type streamWriter struct {
	c        *gin.Context
	filename string
	mime     string
	wrote    bool
}

func (w *streamWriter) Write(p []byte) (int, error) {
	if !w.wrote {
		w.c.Header("Content-Type", w.mime)
		w.c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", w.filename))
		w.c.Status(200)
		w.wrote = true
	}
	n, err := w.c.Writer.Write(p)
	w.c.Writer.Flush()
	return n, err
}

// DownloadContent - Stream all matching stories as one CSV
// @Summary Stream all matching stories as one CSV
// @Description Streams a single CSV table covering every query while fetching. A provider failure mid-stream truncates the download.
// @Tags Export
// @Accept json
// @Produce text/csv
// @Param body body contentExportReq true "Queries"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /api/v1/search/download-all-content [post]
func (h *handler) DownloadContent(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.DownloadContent: processContentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	w := &streamWriter{
		c:        c,
		filename: export.TableFilename(export.JobTimestamp(time.Now()), model.ExportKindContent),
		mime:     "text/csv",
	}
	if err := h.uc.StreamAllContent(ctx, sc, input, w); err != nil {
		if !w.wrote {
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		// Rows already reached the client; the short file is the signal.
		h.l.Errorf(ctx, "export.delivery.http.DownloadContent: stream truncated: %v", err)
	}
}

// DownloadZip - Stream a per-query CSV archive
// @Summary Stream a ZIP archive with one CSV per query
// @Tags Export
// @Accept json
// @Produce application/zip
// @Param body body contentExportReq true "Queries"
// @Success 200 {file} file
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/download-archive [post]
func (h *handler) DownloadZip(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.DownloadZip: processContentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	w := &streamWriter{
		c:        c,
		filename: export.ArchiveFilename(export.JobTimestamp(time.Now()), model.ExportKindContent),
		mime:     "application/zip",
	}
	if err := h.uc.StreamQuerySetZip(ctx, sc, input, w); err != nil {
		if !w.wrote {
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		h.l.Errorf(ctx, "export.delivery.http.DownloadZip: stream truncated: %v", err)
	}
}

// EmailExport - Queue a large export for email delivery
// @Summary Queue a large export for email delivery
// @Description Validates the total volume against the configured bounds and queues the job. The archive arrives as a ZIP attachment.
// @Tags Export
// @Accept json
// @Produce json
// @Param body body emailExportReq true "Queries and recipient"
// @Success 200 {object} enqueueResp
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /api/v1/search/send-email [post]
func (h *handler) EmailExport(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processEmailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.EmailExport: processEmailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.EnqueueEmailExport(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.EmailExport: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, enqueueResp{JobID: output.JobID})
}
