package http

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/search"
	"mediasearch-srv/pkg/response"
	"mediasearch-srv/pkg/util"
)

// TotalCount - Count matching stories
// @Summary Count matching stories
// @Description Count stories matching the query, with the collection total where the provider supports it
// @Tags Search
// @Accept json
// @Produce json
// @Param body body queryReq true "Query"
// @Success 200 {object} totalCountResp
// @Failure 400 {object} response.Resp
// @Failure 429 {object} response.Resp
// @Router /api/v1/search/total-count [post]
func (h *handler) TotalCount(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.TotalCount: processQueryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.TotalCount(ctx, sc, q)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.TotalCount: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newTotalCountResp(output))
}

// CountOverTime - Attention over time
// @Summary Attention over time
// @Description Daily counts for the query, normalized against collection volume where supported
// @Tags Search
// @Accept json
// @Produce json
// @Param body body queryReq true "Query"
// @Success 200 {object} countOverTimeResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/counts-over-time [post]
func (h *handler) CountOverTime(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.CountOverTime: processQueryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.CountOverTime(ctx, sc, q)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.CountOverTime: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newCountOverTimeResp(output))
}

// Sample - Preview matching stories
// @Summary Preview matching stories
// @Tags Search
// @Accept json
// @Produce json
// @Param body body queryReq true "Query"
// @Success 200 {object} sampleResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/sample [post]
func (h *handler) Sample(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Sample: processQueryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Sample(ctx, sc, q)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Sample: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, sampleResp{Stories: output.Stories})
}

// StoryDetail - One story by ID
// @Summary One story by provider-native ID
// @Tags Search
// @Accept json
// @Produce json
// @Param body body storyDetailReq true "Query and story ID"
// @Success 200 {object} storyDetailResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/search/story [post]
func (h *handler) StoryDetail(c *gin.Context) {
	ctx := c.Request.Context()

	q, storyID, sc, err := h.processStoryDetailRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.StoryDetail: processStoryDetailRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.StoryDetail(ctx, sc, q, storyID)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.StoryDetail: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, storyDetailResp{Story: output.Story})
}

// StoryList - One page of matching stories
// @Summary One page of matching stories
// @Description Fetch a single provider page, resuming from the pagination token of the previous response
// @Tags Search
// @Accept json
// @Produce json
// @Param body body storyListReq true "Query and pagination token"
// @Success 200 {object} storyListResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/search/story-list [post]
func (h *handler) StoryList(c *gin.Context) {
	ctx := c.Request.Context()

	q, token, sc, err := h.processStoryListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.StoryList: processStoryListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.StoryList(ctx, sc, q, token)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.StoryList: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, storyListResp{Stories: output.Stories, PaginationToken: output.PaginationToken})
}

// Sources - Top publishing sources
// @Summary Top publishing sources
// @Tags Search
// @Accept json
// @Produce json
// @Param body body queryReq true "Query"
// @Success 200 {object} termsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/sources [post]
func (h *handler) Sources(c *gin.Context) {
	h.terms(c, "Sources", h.uc.Sources)
}

// Languages - Top story languages
// @Summary Top story languages
// @Tags Search
// @Accept json
// @Produce json
// @Param body body queryReq true "Query"
// @Success 200 {object} termsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/languages [post]
func (h *handler) Languages(c *gin.Context) {
	h.terms(c, "Languages", h.uc.Languages)
}

// Words - Top terms in matching stories
// @Summary Top terms in matching stories
// @Tags Search
// @Accept json
// @Produce json
// @Param body body queryReq true "Query"
// @Success 200 {object} termsResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/words [post]
func (h *handler) Words(c *gin.Context) {
	h.terms(c, "Words", h.uc.Words)
}

type termsOp func(ctx context.Context, sc model.Scope, q model.QueryDescriptor) (search.TermsOutput, error)

func (h *handler) terms(c *gin.Context, name string, op termsOp) {
	ctx := c.Request.Context()

	q, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.%s: processQueryRequest failed: %v", name, err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := op(ctx, sc, q)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.%s: usecase failed: %v", name, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newTermsResp(output))
}

// DownloadSources - Top sources as CSV
// @Summary Download top sources as CSV
// @Tags Search
// @Accept json
// @Produce text/csv
// @Param body body queryReq true "Query"
// @Success 200 {file} file
// @Router /api/v1/search/sources/download [post]
func (h *handler) DownloadSources(c *gin.Context) {
	h.downloadTerms(c, "DownloadSources", model.ExportKindSources, h.uc.Sources)
}

// DownloadLanguages - Top languages as CSV
// @Summary Download top languages as CSV
// @Tags Search
// @Accept json
// @Produce text/csv
// @Param body body queryReq true "Query"
// @Success 200 {file} file
// @Router /api/v1/search/languages/download [post]
func (h *handler) DownloadLanguages(c *gin.Context) {
	h.downloadTerms(c, "DownloadLanguages", model.ExportKindLanguages, h.uc.Languages)
}

// DownloadWords - Top words as CSV
// @Summary Download top words as CSV
// @Tags Search
// @Accept json
// @Produce text/csv
// @Param body body queryReq true "Query"
// @Success 200 {file} file
// @Router /api/v1/search/words/download [post]
func (h *handler) DownloadWords(c *gin.Context) {
	h.downloadTerms(c, "DownloadWords", model.ExportKindWords, h.uc.Words)
}

func (h *handler) downloadTerms(c *gin.Context, name string, kind model.ExportKind, op termsOp) {
	ctx := c.Request.Context()

	q, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.%s: processQueryRequest failed: %v", name, err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := op(ctx, sc, q)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.%s: usecase failed: %v", name, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	filename := export.QuickFilename(q.ProviderName, util.FilenameTimestamp(time.Now()), kind)
	writeCSVHeaders(c, filename)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"name", "count", "ratio"})
	for _, t := range output.Terms {
		_ = w.Write([]string{
			t.Name,
			strconv.FormatInt(t.Count, 10),
			strconv.FormatFloat(t.Ratio, 'g', -1, 64),
		})
	}
	w.Flush()
}

// DownloadCountOverTime - Attention over time as CSV
// @Summary Download attention over time as CSV
// @Tags Search
// @Accept json
// @Produce text/csv
// @Param body body queryReq true "Query"
// @Success 200 {file} file
// @Router /api/v1/search/counts-over-time/download [post]
func (h *handler) DownloadCountOverTime(c *gin.Context) {
	ctx := c.Request.Context()

	q, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.DownloadCountOverTime: processQueryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.CountOverTime(ctx, sc, q)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.DownloadCountOverTime: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	filename := export.QuickFilename(q.ProviderName, util.FilenameTimestamp(time.Now()), model.ExportKindCounts)
	writeCSVHeaders(c, filename)

	// Collection totals only exist when the backend could normalize.
	w := csv.NewWriter(c.Writer)
	if output.Normalized {
		_ = w.Write([]string{"date", "count", "total_count", "ratio"})
		for _, dc := range output.Counts {
			_ = w.Write([]string{
				util.DateToStr(dc.Date),
				strconv.FormatInt(dc.Count, 10),
				strconv.FormatInt(dc.TotalCount, 10),
				strconv.FormatFloat(dc.Ratio, 'g', -1, 64),
			})
		}
	} else {
		_ = w.Write([]string{"date", "count"})
		for _, dc := range output.Counts {
			_ = w.Write([]string{
				util.DateToStr(dc.Date),
				strconv.FormatInt(dc.Count, 10),
			})
		}
	}
	w.Flush()
}

func writeCSVHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(200)
}
