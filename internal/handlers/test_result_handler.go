package handlers

import (
	"net/http"

	"hirehub/internal/middleware"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type TestResultHandler struct {
	service *services.ResultService
}

func NewTestResultHandler(service *services.ResultService) *TestResultHandler {
	return &TestResultHandler{service: service}
}

func (handler *TestResultHandler) SubmitTestHandler(writer http.ResponseWriter, request *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitTestRequest](request)
	result, err := handler.service.Submit(request.Context(), callerOf(request), req.ApplicationID, req.Answers)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusCreated, result)
}

func (handler *TestResultHandler) MyResultsHandler(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.ListMine(request.Context(), callerOf(request))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, results)
}

func (handler *TestResultHandler) ApplicationResultHandler(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.GetForApplication(request.Context(), callerOf(request), chi.URLParam(request, "applicationId"))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, result)
}
