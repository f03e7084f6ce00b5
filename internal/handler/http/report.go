package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ListFormats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Generate handles GET /reports/{dataset}/{format}. The rendered document is
// streamed raw with a download disposition, not wrapped in the JSON envelope.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req := report.GenerateRequest{
		Dataset: chi.URLParam(r, "dataset"),
		Format:  chi.URLParam(r, "format"),
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		req.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		req.EndDate = &v
	}

	doc, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

// ListFormats handles GET /reports/formats
func (h *reportHandlerImpl) ListFormats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reportService.Formats())
}
