package handlers

import (
	"net/http"

	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type statusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

// ApplyHandler accepts an empty body, JSON, or a multipart form carrying
// an optional resume file.
func (handler *ApplicationHandler) ApplyHandler(writer http.ResponseWriter, request *http.Request) {
	var upload *storage.Upload
	if isMultipart(request) {
		var err error
		if upload, err = parseMultipart(writer, request, "resume"); err != nil {
			utils.WriteError(writer, request, err)
			return
		}
	}
	app, err := handler.service.Apply(request.Context(), callerOf(request), chi.URLParam(request, "jobId"), upload)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusCreated, app)
}

func (handler *ApplicationHandler) MyApplicationsHandler(writer http.ResponseWriter, request *http.Request) {
	apps, err := handler.service.ListMine(request.Context(), callerOf(request))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, apps)
}

func (handler *ApplicationHandler) JobApplicationsHandler(writer http.ResponseWriter, request *http.Request) {
	apps, err := handler.service.ListForJob(request.Context(), callerOf(request), chi.URLParam(request, "jobId"))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, apps)
}

func (handler *ApplicationHandler) UpdateStatusHandler(writer http.ResponseWriter, request *http.Request) {
	var req statusRequest
	if err := decodeJSON(request, &req); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	app, err := handler.service.UpdateStatus(request.Context(), callerOf(request), chi.URLParam(request, "applicationId"), req.Status)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, app)
}
