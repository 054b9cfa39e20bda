package handlers

import (
	"net/http"

	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/utils"

	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	service *services.JobService
}

func NewJobHandler(service *services.JobService) *JobHandler {
	return &JobHandler{service: service}
}

func (handler *JobHandler) CreateJobHandler(writer http.ResponseWriter, request *http.Request) {
	var in services.JobInput
	if err := decodeJSON(request, &in); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	job, err := handler.service.Create(request.Context(), callerOf(request), in)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusCreated, job)
}

func (handler *JobHandler) ListJobsHandler(writer http.ResponseWriter, request *http.Request) {
	jobs, err := handler.service.ListAll(request.Context())
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, jobs)
}

func (handler *JobHandler) GetJobHandler(writer http.ResponseWriter, request *http.Request) {
	job, err := handler.service.Get(request.Context(), chi.URLParam(request, "id"))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, job)
}

func (handler *JobHandler) UpdateJobHandler(writer http.ResponseWriter, request *http.Request) {
	var patch models.JobPatch
	if err := decodeJSON(request, &patch); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	job, err := handler.service.Update(request.Context(), callerOf(request), chi.URLParam(request, "id"), patch)
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, job)
}

func (handler *JobHandler) DeleteJobHandler(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), callerOf(request), chi.URLParam(request, "id")); err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, models.MessageResponse{Message: "Job deleted successfully"})
}

func (handler *JobHandler) MyJobsHandler(writer http.ResponseWriter, request *http.Request) {
	jobs, err := handler.service.ListMine(request.Context(), callerOf(request))
	if err != nil {
		utils.WriteError(writer, request, err)
		return
	}
	utils.JSON(writer, http.StatusOK, jobs)
}
