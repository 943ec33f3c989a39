package http

import (
	"context"
	"encoding/csv"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/search"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/providers"
)

// fakeUseCase serves a canned counts-over-time result.
type fakeUseCase struct {
	search.UseCase

	countsOut search.CountOverTimeOutput
	countsErr error
}

func (f *fakeUseCase) CountOverTime(context.Context, model.Scope, model.QueryDescriptor) (search.CountOverTimeOutput, error) {
	return f.countsOut, f.countsErr
}

func postJSON(handle gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handle(c)
	return rec
}

func TestDownloadCountOverTimeColumns(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	body := `{"provider":"onlinenews-mediacloud","query":"climate","start":"2024-01-01","end":"2024-01-31"}`
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug"})

	t.Run("plain counts get two columns", func(t *testing.T) {
		h := &handler{l: l, uc: &fakeUseCase{countsOut: search.CountOverTimeOutput{
			Counts: []providers.NormalizedDateCount{
				{Date: day1, Count: 3},
				{Date: day2, Count: 7},
			},
			Total:      10,
			Normalized: false,
		}}}

		rec := postJSON(h.DownloadCountOverTime, body)
		if rec.Code != 200 {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		records, err := csv.NewReader(rec.Body).ReadAll()
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if strings.Join(records[0], ",") != "date,count" {
			t.Errorf("header = %v", records[0])
		}
		if len(records) != 3 || len(records[1]) != 2 {
			t.Fatalf("records = %v", records)
		}
		if records[2][0] != "2024-01-02" || records[2][1] != "7" {
			t.Errorf("last row = %v", records[2])
		}
	})

	t.Run("normalized counts carry totals and ratio", func(t *testing.T) {
		h := &handler{l: l, uc: &fakeUseCase{countsOut: search.CountOverTimeOutput{
			Counts: []providers.NormalizedDateCount{
				{Date: day1, Count: 5, TotalCount: 100, Ratio: 0.05},
			},
			Total:      5,
			Normalized: true,
		}}}

		rec := postJSON(h.DownloadCountOverTime, body)
		records, err := csv.NewReader(rec.Body).ReadAll()
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if strings.Join(records[0], ",") != "date,count,total_count,ratio" {
			t.Errorf("header = %v", records[0])
		}
		if len(records) != 2 || records[1][2] != "100" || records[1][3] != "0.05" {
			t.Errorf("records = %v", records)
		}
	})
}
