package handlers

import (
	"net/http"

	"hirehub/internal/middleware"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/utils"

	"github.com/go-chi/chi/v5"
)

// TestHandler serves the screening test endpoints.
type TestHandler struct {
	service *services.ScreeningService
}

func NewTestHandler(service *services.ScreeningService) *TestHandler {
	return &TestHandler{service: service}
}

// CreateTestHandler expects ValidateRequest[*models.CreateTestRequest] in front of it.
func (handler *TestHandler) CreateTestHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateTestRequest](request)
	test, err := handler.service.Create(request.Context(), callerOf(request), req.Job, req.Questions, req.Duration)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusCreated, test)
}

// GetTestByJobHandler is public; correct answers are only shown to the job owner.
func (handler *TestHandler) GetTestByJobHandler(writer http.ResponseWriter, request *http.Request) {
	var caller *models.Caller
	if c, ok := middleware.CallerFrom(request.Context()); ok {
		caller = &c
	}
	test, err := handler.service.GetByJob(request.Context(), caller, chi.URLParam(request, "jobId"))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, test)
}

func (handler *TestHandler) UpdateTestHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.UpdateTestRequest](request)
	test, err := handler.service.Update(request.Context(), callerOf(request), chi.URLParam(request, "id"), services.TestPatch{
		Questions: req.Questions,
		Duration:  req.Duration,
	})
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, test)
}

func (handler *TestHandler) DeleteTestHandler(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), callerOf(request), chi.URLParam(request, "id")); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, models.MessageResponse{Message: "Test deleted successfully"})
}
