package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/workforcehq/workforce-backend-go/internal/domain/performance"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.Service
}

func NewPerformanceHandler(performanceService performance.Service) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

// List handles GET /performance
func (h *performanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.performanceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: int64(len(result))})
}

// Get handles GET /performance/{id}
func (h *performanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.performanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create handles POST /performance
func (h *performanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.performanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance metric created", result)
}

// Update handles PUT /performance/{id}
func (h *performanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req performance.UpdateMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.performanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance metric updated", result)
}

// Delete handles DELETE /performance/{id}
func (h *performanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.performanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance metric deleted", nil)
}
