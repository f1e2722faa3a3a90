package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/response"
	performancesvc "github.com/hrmslite/hrms-backend-go/internal/service/performance"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performancesvc.PerformanceService
}

func NewPerformanceHandler(performanceService performancesvc.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{
		performanceService: performanceService,
	}
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create performance review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.performanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", created)
}

// List implements PerformanceHandler.
func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := performance.ReviewFilter{
		EmployeeID: queryParam(r, "employee_id"),
	}

	reviews, err := h.performanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}
