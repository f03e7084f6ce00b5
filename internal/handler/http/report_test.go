package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

type stubReportService struct {
	doc     report.Document
	err     error
	lastReq report.GenerateRequest
}

func (s *stubReportService) Generate(ctx context.Context, req report.GenerateRequest) (report.Document, error) {
	s.lastReq = req
	if s.err != nil {
		return report.Document{}, s.err
	}
	return s.doc, nil
}

func (s *stubReportService) Formats() []string {
	return []string{"csv", "json", "pdf"}
}

func newReportTestRouter(svc report.Service) *chi.Mux {
	handler := NewReportHandler(svc)
	r := chi.NewRouter()
	r.Get("/reports/formats", handler.ListFormats)
	r.Get("/reports/{dataset}/{format}", handler.Generate)
	return r
}

func TestReportHandler_Generate_StreamsDocument(t *testing.T) {
	t.Parallel()

	svc := &stubReportService{doc: report.Document{
		Filename:    "employee-directory_2026-03-02.csv",
		ContentType: "text/csv",
		Data:        []byte("a,b\n1,2\n"),
	}}
	router := newReportTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reports/employee-directory/csv?start_date=2026-03-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="employee-directory_2026-03-02.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n1,2\n", rec.Body.String())

	assert.Equal(t, "employee-directory", svc.lastReq.Dataset)
	assert.Equal(t, "csv", svc.lastReq.Format)
	require.NotNil(t, svc.lastReq.StartDate)
	assert.Equal(t, "2026-03-01", *svc.lastReq.StartDate)
	assert.Nil(t, svc.lastReq.EndDate)
}

func TestReportHandler_Generate_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	svc := &stubReportService{err: report.ErrUnsupportedFormat}
	router := newReportTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/reports/employee-directory/xlsx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestReportHandler_ListFormats(t *testing.T) {
	t.Parallel()

	router := newReportTestRouter(&stubReportService{})

	req := httptest.NewRequest(http.MethodGet, "/reports/formats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"csv", "json", "pdf"}, body.Data)
}
